// Copyright (c) 2026 Darasa Academy. All rights reserved.
// Author: platform@darasa.app

package catalog

import (
	"context"
	"log/slog"
	"strings"

	"github.com/darasahq/darasa/internal/platform/apperr"
	"github.com/darasahq/darasa/internal/platform/constants"
	"github.com/darasahq/darasa/internal/platform/validate"
)

// # Service Layer

// Service orchestrates the business logic for the course catalogue.
// It acts as the primary entry point for discovery reads.
type Service struct {
	courseRepo CourseRepository
	logger     *slog.Logger
}

// NewService constructs a new [Service] with its required repositories.
func NewService(courseRepo CourseRepository, logger *slog.Logger) *Service {
	return &Service{
		courseRepo: courseRepo,
		logger:     logger,
	}
}

// # Course Lookups

/*
ListCourses retrieves a paginated and filtered collection of published courses.

Description: This method orchestrates the discovery phase of the catalogue.
Filter criteria pass straight through to the repository for database-level
filtering and sorting; the exact match total rides along for pagination
metadata.

Parameters:
  - context: context.Context
  - lang: string (display language)
  - filter: Filter (search, category, price bounds, difficulty, language, sort)
  - limit: int (max records to return)
  - offset: int (pagination cursor)

Returns:
  - []*Course: Slice of matching course cards
  - int: Total count of records matching the filter
  - error: Validation or repository level errors
*/
func (service *Service) ListCourses(context context.Context, lang string, filter Filter, limit, offset int) ([]*Course, int, error) {

	// Price bound sanity: an inverted range can never match and usually
	// signals a client bug, so reject it loudly.
	validator := &validate.Validator{}
	if filter.MinPrice != nil {
		validator.NonNegative(FieldMinPrice, *filter.MinPrice)
	}
	if filter.MaxPrice != nil {
		validator.NonNegative(FieldMaxPrice, *filter.MaxPrice)
	}
	if filter.MinPrice != nil && filter.MaxPrice != nil {
		validator.Custom(FieldMinPrice, *filter.MinPrice > *filter.MaxPrice, "min_price must not exceed max_price")
	}
	for _, difficulty := range filter.Difficulties {
		validator.Custom(FieldDifficulty, !difficulty.IsValid(), "unknown difficulty level")
	}
	if err := validator.Err(); err != nil {
		return nil, 0, err
	}

	return service.courseRepo.List(context, lang, filter, limit, offset)
}

/*
GetCourseDetails fetches the full record for a single course.

Description: Details are always read fresh from storage so enrollment counts
and reviews reflect the current state.

Parameters:
  - context: context.Context
  - id: string (UUID)
  - lang: string (display language)

Returns:
  - *CourseDetails: The hydrated detail entity
  - error: NotFound if no published course matches
*/
func (service *Service) GetCourseDetails(context context.Context, id, lang string) (*CourseDetails, error) {
	validator := &validate.Validator{}
	validator.Required(FieldID, id).UUID(FieldID, id)
	if err := validator.Err(); err != nil {
		return nil, err
	}

	return service.courseRepo.FindDetails(context, id, lang)
}

/*
SearchCourses performs a ranked full-text search over the catalogue.

Description: Terms shorter than the platform minimum are rejected before any
storage work: the UI fires suggestions on every debounced keystroke and
single-character lookups are pure noise.

Parameters:
  - context: context.Context
  - term: string (free text)
  - lang: string (display language)

Returns:
  - []*Course: Ranked matches, best first
  - error: Validation or repository errors
*/
func (service *Service) SearchCourses(context context.Context, term, lang string) ([]*Course, error) {
	term = strings.TrimSpace(term)
	if len([]rune(term)) < constants.SearchTermMinLength {
		return nil, apperr.ValidationError("Search term is too short",
			apperr.FieldError{Field: FieldQuery, Message: "must be at least 2 characters"})
	}

	return service.courseRepo.Search(context, term, lang)
}

/*
FeaturedCourses returns the curated landing-page selection.

Parameters:
  - context: context.Context
  - lang: string (display language)

Returns:
  - []*Course: Up to [constants.FeaturedCourseLimit] cards, best rated first
  - error: Repository errors
*/
func (service *Service) FeaturedCourses(context context.Context, lang string) ([]*Course, error) {
	return service.courseRepo.Featured(context, lang, constants.FeaturedCourseLimit)
}
