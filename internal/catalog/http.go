// Copyright (c) 2026 Darasa Academy. All rights reserved.
// Author: platform@darasa.app

/*
Package catalog provides the HTTP interface for course discovery.

It exposes the public browsing surface of the marketplace: filtered listings,
course details, full-text search suggestions, and the featured strip.

# Routing Strategy

All catalogue endpoints are public; the display language is resolved by the
language middleware and read from the request context. Listings default to
the storefront page size of nine cards.

The handler translates between the web/JSON layer and the internal domain [Service].
*/
package catalog

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/darasahq/darasa/internal/platform/constants"
	requestutil "github.com/darasahq/darasa/internal/platform/request"
	"github.com/darasahq/darasa/internal/platform/respond"
	"github.com/darasahq/darasa/pkg/convert"
	"github.com/darasahq/darasa/pkg/pagination"
	"github.com/darasahq/darasa/pkg/query"
	"github.com/darasahq/darasa/pkg/slice"
)

// # Handler Implementation

// Handler implements the HTTP layer for course discovery.
// It translates web requests into domain service calls.
type Handler struct {
	service *Service
}

// NewHandler constructs a new catalog [Handler] with its service dependency.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns a [chi.Router] configured with the catalogue's endpoints.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	// ## Public Discovery Endpoints
	router.Get("/", handler.listCourses)
	router.Get("/featured", handler.featuredCourses)
	router.Get("/search", handler.searchCourses)
	router.Get("/{id}", handler.getCourse)

	return router
}

// # Catalogue Endpoints

/*
GET /api/v1/courses.

Description: Retrieves a paginated list of published courses. Supports
filtering by search text, category, price bounds, difficulty, and content
language, plus the six catalogue sort orders.

Request:
  - q: string (substring search over localized title/description)
  - category: string (category UUID)
  - minprice: float (inclusive)
  - maxprice: float (inclusive)
  - difficulty: string (comma separated: beginner,intermediate,advanced)
  - language: string (comma separated: en,ar)
  - sort: string (relevance, popularity, rating, newest, price_asc, price_desc)
  - page: int
  - limit: int (defaults to the storefront page size of 9)

Response:
  - 200: []Course: Paginated list with exact total in meta
*/
func (handler *Handler) listCourses(writer http.ResponseWriter, request *http.Request) {
	queryParams := request.URL.Query()
	lang := requestutil.Language(request)

	// The storefront always pages in blocks of nine; explicit limits are for
	// other API consumers.
	page := convert.ToIntD(queryParams.Get("page"), pagination.DefaultPage)
	if page < 1 {
		page = pagination.DefaultPage
	}
	limit := convert.ToIntD(queryParams.Get("limit"), constants.CatalogPageSize)
	if limit < 1 || limit > pagination.MaxLimit {
		limit = constants.CatalogPageSize
	}
	params := pagination.Params{Page: page, Limit: limit}

	filter := Filter{
		Search:     queryParams.Get("q"),
		CategoryID: queryParams.Get("category"),
		MinPrice:   query.Float64(queryParams.Get("minprice")),
		MaxPrice:   query.Float64(queryParams.Get("maxprice")),
		Difficulties: slice.Map(query.StringSlice(queryParams.Get("difficulty")), func(raw string) Difficulty {
			return Difficulty(raw)
		}),
		Languages: query.StringSlice(queryParams.Get("language")),
		Sort:      ParseSort(queryParams.Get("sort")),
	}

	courses, total, err := handler.service.ListCourses(request.Context(), lang, filter, params.Limit, params.Offset())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Paginated(writer, courses, pagination.NewMeta(params.Page, params.Limit, total))
}

/*
GET /api/v1/courses/{id}.

Description: Retrieves the full course record: curriculum, instructor,
reviews, and enrollment metrics. Always read fresh from storage.

Response:
  - 200: CourseDetails: Success
  - 404: Course not found or unpublished
*/
func (handler *Handler) getCourse(writer http.ResponseWriter, request *http.Request) {
	id := requestutil.Param(request, "id")
	lang := requestutil.Language(request)

	details, err := handler.service.GetCourseDetails(request.Context(), id, lang)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, details)
}

/*
GET /api/v1/courses/search.

Description: Ranked full-text search used by the storefront's suggestion
dropdown. Terms under two characters are rejected.

Request:
  - q: string (websearch syntax)

Response:
  - 200: []Course: Ranked matches
  - 400: Term too short
*/
func (handler *Handler) searchCourses(writer http.ResponseWriter, request *http.Request) {
	term := request.URL.Query().Get("q")
	lang := requestutil.Language(request)

	courses, err := handler.service.SearchCourses(request.Context(), term, lang)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, courses)
}

/*
GET /api/v1/courses/featured.

Description: Returns the curated featured strip for the landing page,
best rated first, capped at eight cards.

Response:
  - 200: []Course: Featured selection
*/
func (handler *Handler) featuredCourses(writer http.ResponseWriter, request *http.Request) {
	lang := requestutil.Language(request)

	courses, err := handler.service.FeaturedCourses(request.Context(), lang)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, courses)
}
