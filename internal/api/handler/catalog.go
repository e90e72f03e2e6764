package handler

import (
	"net/http"

	"github.com/vfg2006/sales-tracker-api/internal/usecases/cataloging"
	"github.com/vfg2006/sales-tracker-api/pkg/apiErrors"
)

func ListExecutives(service cataloging.CatalogService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		executives, err := service.ListExecutives()
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao listar executivos", nil)
			return
		}

		writeJSON(w, http.StatusOK, executives)
	}
}

func ListChannels(service cataloging.CatalogService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		channels, err := service.ListChannels()
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao listar canais", nil)
			return
		}

		writeJSON(w, http.StatusOK, channels)
	}
}
