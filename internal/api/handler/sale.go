package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/vfg2006/sales-tracker-api/internal/domain"
	"github.com/vfg2006/sales-tracker-api/internal/usecases/selling"
	"github.com/vfg2006/sales-tracker-api/pkg/apiErrors"
)

// saleRequest é o corpo de admissão ou edição de uma venda. Campos
// ponteiro distinguem "ausente" de "zero" para a validação do serviço.
type saleRequest struct {
	Date          *domain.Date               `json:"date"`
	Amount        *float64                   `json:"amount"`
	Client        *int                       `json:"client"`
	Product       *int                       `json:"product"`
	Executive     *int                       `json:"executive"`
	Channel       *int                       `json:"channel"`
	OnMissingGoal domain.MissingGoalDecision `json:"on_missing_goal"`
}

func (req saleRequest) toInput() *domain.SaleInput {
	return &domain.SaleInput{
		Date:          req.Date,
		Amount:        req.Amount,
		ClientID:      req.Client,
		ProductID:     req.Product,
		ExecutiveID:   req.Executive,
		ChannelID:     req.Channel,
		OnMissingGoal: req.OnMissingGoal,
	}
}

func ListSales(service selling.SaleService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		filter, err := parseSaleFilter(r)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
			return
		}

		sales, err := service.ListSales(filter)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao listar vendas", nil)
			return
		}

		writeJSON(w, http.StatusOK, sales)
	}
}

func GetSale(service selling.SaleService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := pathParamInt(r, "id")
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Identificador de venda inválido", nil)
			return
		}

		sale, err := service.GetSale(id)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao buscar venda", nil)
			return
		}

		if sale == nil {
			apiErrors.WriteError(w, apiErrors.ErrNotFound, "Venda não encontrada", nil)
			return
		}

		writeJSON(w, http.StatusOK, sale)
	}
}

func CreateSale(service selling.SaleService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req saleRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Corpo da requisição inválido", nil)
			return
		}

		sale, err := service.AdmitSale(r.Context(), req.toInput())
		if err != nil {
			writeSaleError(w, err)
			return
		}

		writeJSON(w, http.StatusCreated, sale)
	}
}

// UpdateSale edita uma venda por remoção e readmissão, repassando o
// corpo pelo workflow completo de admissão.
func UpdateSale(service selling.SaleService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := pathParamInt(r, "id")
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Identificador de venda inválido", nil)
			return
		}

		var req saleRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Corpo da requisição inválido", nil)
			return
		}

		sale, err := service.ReplaceSale(r.Context(), id, req.toInput())
		if err != nil {
			writeSaleError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, sale)
	}
}

func DeleteSale(service selling.SaleService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := pathParamInt(r, "id")
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Identificador de venda inválido", nil)
			return
		}

		deleted, err := service.DeleteSale(id)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao remover venda", nil)
			return
		}

		if !deleted {
			apiErrors.WriteError(w, apiErrors.ErrNotFound, "Venda não encontrada", nil)
			return
		}

		writeJSON(w, http.StatusOK, map[string]bool{"success": true})
	}
}

func parseSaleFilter(r *http.Request) (domain.SaleFilter, error) {
	var filter domain.SaleFilter
	query := r.URL.Query()

	var err error
	if filter.ClientID, err = queryInt(r, "client"); err != nil {
		return filter, errors.New("parâmetro client inválido")
	}
	if filter.ProductID, err = queryInt(r, "product"); err != nil {
		return filter, errors.New("parâmetro product inválido")
	}
	if filter.ExecutiveID, err = queryInt(r, "executive"); err != nil {
		return filter, errors.New("parâmetro executive inválido")
	}

	if raw := query.Get("date_from"); raw != "" {
		date, err := domain.ParseDate(raw)
		if err != nil {
			return filter, errors.New("parâmetro date_from inválido, use AAAA-MM-DD")
		}
		filter.DateFrom = &date
	}

	if raw := query.Get("date_to"); raw != "" {
		date, err := domain.ParseDate(raw)
		if err != nil {
			return filter, errors.New("parâmetro date_to inválido, use AAAA-MM-DD")
		}
		filter.DateTo = &date
	}

	filter.Query = query.Get("q")

	if raw := query.Get("limit"); raw != "" {
		limit, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			return filter, errors.New("parâmetro limit inválido")
		}
		filter.Limit = limit
	}

	if raw := query.Get("offset"); raw != "" {
		offset, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			return filter, errors.New("parâmetro offset inválido")
		}
		filter.Offset = offset
	}

	return filter, nil
}

func writeSaleError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, selling.ErrMissingRequiredData):
		apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, err.Error(), nil)
	case errors.Is(err, selling.ErrInvalidFormat):
		apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
	case errors.Is(err, selling.ErrCoverageRequired):
		apiErrors.WriteError(w, apiErrors.ErrCoverageRequired, err.Error(), nil)
	case errors.Is(err, selling.ErrGoalCreationFailed):
		apiErrors.WriteError(w, apiErrors.ErrGoalCreationFailed, err.Error(), nil)
	case errors.Is(err, selling.ErrSaleNotFound):
		apiErrors.WriteError(w, apiErrors.ErrNotFound, err.Error(), nil)
	default:
		apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao processar venda", nil)
	}
}
