// Copyright (c) 2026 Darasa Academy. All rights reserved.
// Author: platform@darasa.app

/*
Package reference provides the HTTP interface for master data.

# Access Control

All taxonomy endpoints are public; the category set changes through
migrations, not the API.
*/
package reference

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	requestutil "github.com/darasahq/darasa/internal/platform/request"
	"github.com/darasahq/darasa/internal/platform/respond"
)

// Handler implements the HTTP layer for reference data.
type Handler struct {
	service *Service
}

// NewHandler constructs a new reference [Handler] with its service dependency.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns a [chi.Router] configured with the reference endpoints.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	router.Get("/categories", handler.listCategories)
	router.Get("/categories/{id}", handler.getCategory)

	return router
}

/*
GET /api/v1/reference/categories.

Description: Retrieves the full bilingual category taxonomy in display order.

Response:
  - 200: []Category: Success
*/
func (handler *Handler) listCategories(writer http.ResponseWriter, request *http.Request) {
	categories, err := handler.service.ListCategories(request.Context(), requestutil.Language(request))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, categories)
}

/*
GET /api/v1/reference/categories/{id}.

Response:
  - 200: Category: Success
  - 404: Category not found
*/
func (handler *Handler) getCategory(writer http.ResponseWriter, request *http.Request) {
	category, err := handler.service.GetCategory(request.Context(), requestutil.Param(request, "id"), requestutil.Language(request))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, category)
}
