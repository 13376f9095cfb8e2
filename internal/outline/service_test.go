// Copyright (c) 2026 Darasa Academy. All rights reserved.
// Author: platform@darasa.app

package outline

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/darasahq/darasa/internal/platform/apperr"
)

// fakeGenerator counts calls and serves a scripted outline.
type fakeGenerator struct {
	calls   int
	outline *CourseOutline
	err     error
}

func (f *fakeGenerator) Generate(_ context.Context, _ string) (*CourseOutline, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.outline, nil
}

func TestService_GenerateOutline_EmptyTopic(t *testing.T) {
	tests := []string{"", "   ", "\t\n"}

	for _, topic := range tests {
		generator := &fakeGenerator{}
		service := NewService(generator, slog.Default())

		_, err := service.GenerateOutline(context.Background(), topic)

		var appErr *apperr.AppError
		require.ErrorAs(t, err, &appErr, "topic=%q", topic)
		assert.Equal(t, "VALIDATION_ERROR", appErr.Code)
		assert.Zero(t, generator.calls, "empty topics must never reach the model")
	}
}

func TestService_GenerateOutline_Success(t *testing.T) {
	generator := &fakeGenerator{
		outline: &CourseOutline{
			CourseTitle:       "Introduction to Machine Learning",
			CourseDescription: "Learn the foundations of ML.",
			Modules: []OutlineModule{
				{ModuleTitle: "Getting Started", Lessons: []string{"What is ML?", "Setting up Python"}},
			},
		},
	}
	service := NewService(generator, slog.Default())

	outline, err := service.GenerateOutline(context.Background(), "  machine learning  ")

	require.NoError(t, err)
	assert.Equal(t, 1, generator.calls)
	assert.Equal(t, "Introduction to Machine Learning", outline.CourseTitle)
	assert.Equal(t, "introduction-to-machine-learning", outline.SuggestedSlug)
	require.Len(t, outline.Modules, 1)
	assert.Len(t, outline.Modules[0].Lessons, 2)
}

func TestService_GenerateOutline_UnavailablePassesThrough(t *testing.T) {
	generator := &fakeGenerator{err: apperr.ServiceUnavailable("Outline generation is currently unavailable")}
	service := NewService(generator, slog.Default())

	_, err := service.GenerateOutline(context.Background(), "databases")

	var appErr *apperr.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "SERVICE_UNAVAILABLE", appErr.Code)
}

func TestGeminiClient_MissingKey(t *testing.T) {
	client := NewGeminiClient("", "gemini-2.5-flash")

	_, err := client.Generate(context.Background(), "databases")

	var appErr *apperr.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "SERVICE_UNAVAILABLE", appErr.Code)
}
