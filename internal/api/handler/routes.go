package handler

import (
	"net/http"

	"github.com/vfg2006/sales-tracker-api/internal/api/handler/router"
	"github.com/vfg2006/sales-tracker-api/internal/usecases/cataloging"
	"github.com/vfg2006/sales-tracker-api/internal/usecases/goaltracking"
	"github.com/vfg2006/sales-tracker-api/internal/usecases/selling"
)

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

func Clients(service cataloging.CatalogService) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/clients",
			Method:  http.MethodGet,
			Handler: ListClients(service),
		},
		{
			Path:    "/v1/clients",
			Method:  http.MethodPost,
			Handler: CreateClient(service),
		},
		{
			Path:    "/v1/clients/:id",
			Method:  http.MethodGet,
			Handler: GetClient(service),
		},
		{
			Path:    "/v1/clients/:id",
			Method:  http.MethodPut,
			Handler: UpdateClient(service),
		},
		{
			Path:    "/v1/clients/:id",
			Method:  http.MethodDelete,
			Handler: DeleteClient(service),
		},
	}
}

func Products(service cataloging.CatalogService) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/products",
			Method:  http.MethodGet,
			Handler: ListProducts(service),
		},
		{
			Path:    "/v1/products",
			Method:  http.MethodPost,
			Handler: CreateProduct(service),
		},
		{
			Path:    "/v1/products/:id",
			Method:  http.MethodGet,
			Handler: GetProduct(service),
		},
		{
			Path:    "/v1/products/:id",
			Method:  http.MethodPut,
			Handler: UpdateProduct(service),
		},
		{
			Path:    "/v1/products/:id",
			Method:  http.MethodDelete,
			Handler: DeleteProduct(service),
		},
	}
}

// Catalogs retorna as rotas somente-leitura de executivos e canais
func Catalogs(service cataloging.CatalogService) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/executives",
			Method:  http.MethodGet,
			Handler: ListExecutives(service),
		},
		{
			Path:    "/v1/channels",
			Method:  http.MethodGet,
			Handler: ListChannels(service),
		},
	}
}

func Goals(service goaltracking.GoalService) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/goals",
			Method:  http.MethodGet,
			Handler: ListGoals(service),
		},
		{
			Path:    "/v1/goals",
			Method:  http.MethodPost,
			Handler: CreateGoal(service),
		},
		{
			// Também atende GET /v1/goals/exists; o httprouter não aceita
			// segmento estático ao lado de :id, então o despacho é interno
			Path:    "/v1/goals/:id",
			Method:  http.MethodGet,
			Handler: GetGoal(service),
		},
		{
			Path:    "/v1/goals/:id",
			Method:  http.MethodPut,
			Handler: UpdateGoal(service),
		},
		{
			Path:    "/v1/goals/:id",
			Method:  http.MethodDelete,
			Handler: DeleteGoal(service),
		},
		{
			Path:    "/v1/goals/:id/progress",
			Method:  http.MethodGet,
			Handler: GetGoalProgress(service),
		},
	}
}

func Sales(service selling.SaleService) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/sales",
			Method:  http.MethodGet,
			Handler: ListSales(service),
		},
		{
			Path:    "/v1/sales",
			Method:  http.MethodPost,
			Handler: CreateSale(service),
		},
		{
			Path:    "/v1/sales/:id",
			Method:  http.MethodGet,
			Handler: GetSale(service),
		},
		{
			Path:    "/v1/sales/:id",
			Method:  http.MethodPut,
			Handler: UpdateSale(service),
		},
		{
			Path:    "/v1/sales/:id",
			Method:  http.MethodDelete,
			Handler: DeleteSale(service),
		},
	}
}

func CronJobs(services CronJobServices) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/cron/:type/run",
			Method:  http.MethodPost,
			Handler: RunCronJob(services),
		},
		{
			Path:    "/v1/cron/status",
			Method:  http.MethodGet,
			Handler: GetCronStatus(services),
		},
	}
}
