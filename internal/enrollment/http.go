// Copyright (c) 2026 Darasa Academy. All rights reserved.
// Author: platform@darasa.app

/*
Package enrollment provides the HTTP interface for course purchases.

# Routing Strategy

Every endpoint requires an authenticated student; the user identity always
comes from the verified access token, never from the request body.
*/
package enrollment

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/darasahq/darasa/internal/platform/middleware"
	requestutil "github.com/darasahq/darasa/internal/platform/request"
	"github.com/darasahq/darasa/internal/platform/respond"
)

// Handler implements the HTTP layer for enrollments.
type Handler struct {
	service *Service
}

// NewHandler constructs a new enrollment [Handler] with its service dependency.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns a [chi.Router] configured with the enrollment endpoints.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	router.Use(middleware.RequireAuth)

	router.Post("/", handler.createEnrollment)
	router.Get("/", handler.listEnrollments)

	return router
}

/*
POST /api/v1/enrollments.

Description: Enrolls the authenticated user in a course. The whole procedure
is one transaction: course verification, duplicate rejection, enrollment and
payment rows, counter bump. A confirmation email follows on success.

Request:
  - course_id: string (UUID)
  - payment_method: string (online, offline)
  - amount: float
  - currency: string (ISO-4217, e.g. "USD")

Response:
  - 201: Receipt: Enrollment committed
  - 401: Not signed in
  - 404: Course not found or unpublished
  - 409: Already enrolled
*/
func (handler *Handler) createEnrollment(writer http.ResponseWriter, request *http.Request) {
	var input CreateInput
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	userID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	input.UserID = userID

	receipt, err := handler.service.Enroll(request.Context(), input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Created(writer, receipt)
}

/*
GET /api/v1/enrollments.

Description: Lists the authenticated user's enrollments, most recent first.

Response:
  - 200: []Enrollment: Success
*/
func (handler *Handler) listEnrollments(writer http.ResponseWriter, request *http.Request) {
	userID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	enrollments, err := handler.service.ListEnrollments(request.Context(), userID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, enrollments)
}
