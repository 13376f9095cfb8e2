// Copyright (c) 2026 Darasa Academy. All rights reserved.
// Author: platform@darasa.app

package catalog

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/darasahq/darasa/internal/platform/apperr"
	"github.com/darasahq/darasa/pkg/pointer"
)

// fakeCourseRepository records calls and serves canned responses.
type fakeCourseRepository struct {
	listCalls   int
	searchCalls int
	courses     []*Course
	total       int
	details     *CourseDetails
}

func (f *fakeCourseRepository) List(_ context.Context, _ string, _ Filter, _, _ int) ([]*Course, int, error) {
	f.listCalls++
	return f.courses, f.total, nil
}

func (f *fakeCourseRepository) FindDetails(_ context.Context, id, _ string) (*CourseDetails, error) {
	if f.details == nil || f.details.ID != id {
		return nil, apperr.NotFound("course")
	}
	return f.details, nil
}

func (f *fakeCourseRepository) Search(_ context.Context, _, _ string) ([]*Course, error) {
	f.searchCalls++
	return f.courses, nil
}

func (f *fakeCourseRepository) Featured(_ context.Context, _ string, limit int) ([]*Course, error) {
	if len(f.courses) > limit {
		return f.courses[:limit], nil
	}
	return f.courses, nil
}

func newTestService(repo *fakeCourseRepository) *Service {
	return NewService(repo, slog.Default())
}

func TestService_ListCourses_InvertedPriceRange(t *testing.T) {
	repo := &fakeCourseRepository{}
	service := newTestService(repo)

	_, _, err := service.ListCourses(context.Background(), "en", Filter{
		MinPrice: pointer.To(50.0),
		MaxPrice: pointer.To(10.0),
	}, 9, 0)

	var appErr *apperr.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "VALIDATION_ERROR", appErr.Code)
	assert.Zero(t, repo.listCalls, "storage must not be touched on invalid input")
}

func TestService_ListCourses_UnknownDifficulty(t *testing.T) {
	repo := &fakeCourseRepository{}
	service := newTestService(repo)

	_, _, err := service.ListCourses(context.Background(), "en", Filter{
		Difficulties: []Difficulty{"expert"},
	}, 9, 0)

	var appErr *apperr.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "VALIDATION_ERROR", appErr.Code)
}

func TestService_ListCourses_PassesThrough(t *testing.T) {
	repo := &fakeCourseRepository{
		courses: []*Course{{ID: "a"}, {ID: "b"}},
		total:   42,
	}
	service := newTestService(repo)

	courses, total, err := service.ListCourses(context.Background(), "ar", Filter{
		Search: "python",
		Sort:   SortRating,
	}, 9, 9)

	require.NoError(t, err)
	assert.Len(t, courses, 2)
	assert.Equal(t, 42, total)
	assert.Equal(t, 1, repo.listCalls)
}

func TestService_SearchCourses_TermTooShort(t *testing.T) {
	repo := &fakeCourseRepository{}
	service := newTestService(repo)

	tests := []string{"", "a", "  a  "}
	for _, term := range tests {
		_, err := service.SearchCourses(context.Background(), term, "en")

		var appErr *apperr.AppError
		require.ErrorAs(t, err, &appErr, "term=%q", term)
		assert.Equal(t, "VALIDATION_ERROR", appErr.Code)
	}

	assert.Zero(t, repo.searchCalls, "short terms must never reach storage")
}

func TestService_SearchCourses_TrimsBeforeMeasuring(t *testing.T) {
	repo := &fakeCourseRepository{courses: []*Course{{ID: "a"}}}
	service := newTestService(repo)

	courses, err := service.SearchCourses(context.Background(), "  go  ", "en")

	require.NoError(t, err)
	assert.Len(t, courses, 1)
	assert.Equal(t, 1, repo.searchCalls)
}

func TestService_GetCourseDetails_RejectsMalformedID(t *testing.T) {
	service := newTestService(&fakeCourseRepository{})

	_, err := service.GetCourseDetails(context.Background(), "not-a-uuid", "en")

	var appErr *apperr.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "VALIDATION_ERROR", appErr.Code)
}

func TestService_GetCourseDetails_NotFound(t *testing.T) {
	service := newTestService(&fakeCourseRepository{})

	_, err := service.GetCourseDetails(context.Background(), "0190e2a4-7d5b-7bbb-a8b4-111111111111", "en")

	var appErr *apperr.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "NOT_FOUND", appErr.Code)
}
