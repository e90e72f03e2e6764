package handler

import (
	"errors"
	"net/http"

	"github.com/vfg2006/sales-tracker-api/internal/domain"
	"github.com/vfg2006/sales-tracker-api/internal/usecases/cataloging"
	"github.com/vfg2006/sales-tracker-api/pkg/apiErrors"
)

func ListProducts(service cataloging.CatalogService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		products, err := service.ListProducts()
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao listar produtos", nil)
			return
		}

		writeJSON(w, http.StatusOK, products)
	}
}

func GetProduct(service cataloging.CatalogService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := pathParamInt(r, "id")
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Identificador de produto inválido", nil)
			return
		}

		product, err := service.GetProduct(id)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao buscar produto", nil)
			return
		}

		if product == nil {
			apiErrors.WriteError(w, apiErrors.ErrNotFound, "Produto não encontrado", nil)
			return
		}

		writeJSON(w, http.StatusOK, product)
	}
}

func CreateProduct(service cataloging.CatalogService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var product domain.Product
		if err := json.NewDecoder(r.Body).Decode(&product); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Corpo da requisição inválido", nil)
			return
		}

		created, err := service.CreateProduct(&product)
		if err != nil {
			writeProductError(w, err)
			return
		}

		writeJSON(w, http.StatusCreated, created)
	}
}

func UpdateProduct(service cataloging.CatalogService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := pathParamInt(r, "id")
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Identificador de produto inválido", nil)
			return
		}

		var product domain.Product
		if err := json.NewDecoder(r.Body).Decode(&product); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Corpo da requisição inválido", nil)
			return
		}
		product.ID = id

		updated, err := service.UpdateProduct(&product)
		if err != nil {
			writeProductError(w, err)
			return
		}

		if updated == nil {
			apiErrors.WriteError(w, apiErrors.ErrNotFound, "Produto não encontrado", nil)
			return
		}

		writeJSON(w, http.StatusOK, updated)
	}
}

func DeleteProduct(service cataloging.CatalogService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := pathParamInt(r, "id")
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Identificador de produto inválido", nil)
			return
		}

		deleted, err := service.DeleteProduct(id)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao remover produto", nil)
			return
		}

		if !deleted {
			apiErrors.WriteError(w, apiErrors.ErrNotFound, "Produto não encontrado", nil)
			return
		}

		writeJSON(w, http.StatusOK, map[string]bool{"success": true})
	}
}

func writeProductError(w http.ResponseWriter, err error) {
	if errors.Is(err, cataloging.ErrMissingProductData) {
		apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, err.Error(), nil)
		return
	}
	apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao gravar produto", nil)
}
