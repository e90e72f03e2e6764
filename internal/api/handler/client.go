package handler

import (
	"errors"
	"net/http"

	"github.com/vfg2006/sales-tracker-api/internal/domain"
	"github.com/vfg2006/sales-tracker-api/internal/usecases/cataloging"
	"github.com/vfg2006/sales-tracker-api/pkg/apiErrors"
)

func ListClients(service cataloging.CatalogService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		clients, err := service.ListClients()
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao listar clientes", nil)
			return
		}

		writeJSON(w, http.StatusOK, clients)
	}
}

func GetClient(service cataloging.CatalogService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := pathParamInt(r, "id")
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Identificador de cliente inválido", nil)
			return
		}

		client, err := service.GetClient(id)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao buscar cliente", nil)
			return
		}

		if client == nil {
			apiErrors.WriteError(w, apiErrors.ErrNotFound, "Cliente não encontrado", nil)
			return
		}

		writeJSON(w, http.StatusOK, client)
	}
}

func CreateClient(service cataloging.CatalogService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var client domain.Client
		if err := json.NewDecoder(r.Body).Decode(&client); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Corpo da requisição inválido", nil)
			return
		}

		created, err := service.CreateClient(&client)
		if err != nil {
			writeClientError(w, err)
			return
		}

		writeJSON(w, http.StatusCreated, created)
	}
}

func UpdateClient(service cataloging.CatalogService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := pathParamInt(r, "id")
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Identificador de cliente inválido", nil)
			return
		}

		var client domain.Client
		if err := json.NewDecoder(r.Body).Decode(&client); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Corpo da requisição inválido", nil)
			return
		}
		client.ID = id

		updated, err := service.UpdateClient(&client)
		if err != nil {
			writeClientError(w, err)
			return
		}

		if updated == nil {
			apiErrors.WriteError(w, apiErrors.ErrNotFound, "Cliente não encontrado", nil)
			return
		}

		writeJSON(w, http.StatusOK, updated)
	}
}

func DeleteClient(service cataloging.CatalogService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := pathParamInt(r, "id")
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Identificador de cliente inválido", nil)
			return
		}

		deleted, err := service.DeleteClient(id)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao remover cliente", nil)
			return
		}

		if !deleted {
			apiErrors.WriteError(w, apiErrors.ErrNotFound, "Cliente não encontrado", nil)
			return
		}

		writeJSON(w, http.StatusOK, map[string]bool{"success": true})
	}
}

func writeClientError(w http.ResponseWriter, err error) {
	if errors.Is(err, cataloging.ErrMissingClientData) {
		apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, err.Error(), nil)
		return
	}
	apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao gravar cliente", nil)
}
