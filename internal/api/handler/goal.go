package handler

import (
	"errors"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/sales-tracker-api/internal/domain"
	"github.com/vfg2006/sales-tracker-api/internal/usecases/goaltracking"
	"github.com/vfg2006/sales-tracker-api/pkg/apiErrors"
)

func ListGoals(service goaltracking.GoalService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		goals, err := service.ListGoals()
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao listar metas", nil)
			return
		}

		writeJSON(w, http.StatusOK, goals)
	}
}

// GetGoal atende GET /v1/goals/:id. O segmento literal "exists" é
// despachado para a verificação de cobertura, pois o httprouter não
// permite registrar a rota estática ao lado do parâmetro.
func GetGoal(service goaltracking.GoalService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		params := httprouter.ParamsFromContext(r.Context())
		if params.ByName("id") == "exists" {
			checkCoverage(service, w, r)
			return
		}

		id, err := pathParamInt(r, "id")
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Identificador de meta inválido", nil)
			return
		}

		goal, err := service.GetGoal(id)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao buscar meta", nil)
			return
		}

		if goal == nil {
			apiErrors.WriteError(w, apiErrors.ErrNotFound, "Meta não encontrada", nil)
			return
		}

		writeJSON(w, http.StatusOK, goal)
	}
}

// checkCoverage verifica se há meta vigente para executivo, categoria e
// data informados na query string. Os três parâmetros são obrigatórios.
func checkCoverage(service goaltracking.GoalService, w http.ResponseWriter, r *http.Request) {
	executiveID, err := queryInt(r, "executive")
	if err != nil {
		apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Parâmetro executive inválido", nil)
		return
	}

	categoryID, err := queryInt(r, "category")
	if err != nil {
		apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Parâmetro category inválido", nil)
		return
	}

	rawDate := r.URL.Query().Get("date")
	if executiveID == nil || categoryID == nil || rawDate == "" {
		apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Parâmetros executive, category e date são obrigatórios", nil)
		return
	}

	date, err := domain.ParseDate(rawDate)
	if err != nil {
		apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Parâmetro date inválido, use AAAA-MM-DD", nil)
		return
	}

	result, err := service.CheckCoverage(executiveID, categoryID, &date)
	if err != nil {
		if errors.Is(err, goaltracking.ErrStoreUnavailable) {
			apiErrors.WriteError(w, apiErrors.ErrCommunication, "Verificação de meta indisponível", nil)
			return
		}
		apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao verificar meta vigente", nil)
		return
	}

	writeJSON(w, http.StatusOK, result)
}

func CreateGoal(service goaltracking.GoalService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var goal domain.Goal
		if err := json.NewDecoder(r.Body).Decode(&goal); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Corpo da requisição inválido", nil)
			return
		}

		created, err := service.CreateGoal(&goal)
		if err != nil {
			writeGoalError(w, err)
			return
		}

		writeJSON(w, http.StatusCreated, created)
	}
}

func UpdateGoal(service goaltracking.GoalService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := pathParamInt(r, "id")
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Identificador de meta inválido", nil)
			return
		}

		var goal domain.Goal
		if err := json.NewDecoder(r.Body).Decode(&goal); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Corpo da requisição inválido", nil)
			return
		}
		goal.ID = id

		updated, err := service.UpdateGoal(&goal)
		if err != nil {
			writeGoalError(w, err)
			return
		}

		if updated == nil {
			apiErrors.WriteError(w, apiErrors.ErrNotFound, "Meta não encontrada", nil)
			return
		}

		writeJSON(w, http.StatusOK, updated)
	}
}

func DeleteGoal(service goaltracking.GoalService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := pathParamInt(r, "id")
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Identificador de meta inválido", nil)
			return
		}

		deleted, err := service.DeleteGoal(id)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao remover meta", nil)
			return
		}

		if !deleted {
			apiErrors.WriteError(w, apiErrors.ErrNotFound, "Meta não encontrada", nil)
			return
		}

		writeJSON(w, http.StatusOK, map[string]bool{"success": true})
	}
}

func GetGoalProgress(service goaltracking.GoalService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := pathParamInt(r, "id")
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Identificador de meta inválido", nil)
			return
		}

		progress, err := service.GetProgress(id)
		if err != nil {
			if errors.Is(err, goaltracking.ErrGoalNotFound) {
				apiErrors.WriteError(w, apiErrors.ErrNotFound, "Meta não encontrada", nil)
				return
			}
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao buscar avanço da meta", nil)
			return
		}

		if progress == nil {
			apiErrors.WriteError(w, apiErrors.ErrNotFound, "Avanço da meta ainda não apurado", nil)
			return
		}

		writeJSON(w, http.StatusOK, progress)
	}
}

func writeGoalError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, goaltracking.ErrMissingRequiredData):
		apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, err.Error(), nil)
	case errors.Is(err, goaltracking.ErrInvalidPeriod):
		apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
	default:
		apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao gravar meta", nil)
	}
}
