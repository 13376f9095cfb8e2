// Copyright (c) 2026 Darasa Academy. All rights reserved.
// Author: platform@darasa.app

/*
Package outline provides the HTTP interface for AI-assisted course drafting.

# Routing Strategy

Outline generation is restricted to instructors and admins: it consumes paid
model quota and only course authors have a use for it.
*/
package outline

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/darasahq/darasa/internal/platform/middleware"
	requestutil "github.com/darasahq/darasa/internal/platform/request"
	"github.com/darasahq/darasa/internal/platform/respond"
	"github.com/darasahq/darasa/internal/platform/sec"
)

// Handler implements the HTTP layer for outline generation.
type Handler struct {
	service *Service
}

// NewHandler constructs a new outline [Handler] with its service dependency.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns a [chi.Router] configured with the outline endpoints.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	router.Use(middleware.RequireRole(sec.RoleInstructor))

	router.Post("/", handler.generateOutline)

	return router
}

/*
POST /api/v1/outlines.

Description: Generates a structured draft course outline for a topic.

Request:
  - topic: string (course subject, required)

Response:
  - 200: CourseOutline: Generated draft
  - 400: Empty topic
  - 503: Generation not configured
*/
func (handler *Handler) generateOutline(writer http.ResponseWriter, request *http.Request) {
	var input struct {
		Topic string `json:"topic"`
	}
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	outline, err := handler.service.GenerateOutline(request.Context(), input.Topic)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, outline)
}
