// Copyright (c) 2026 Darasa Academy. All rights reserved.
// Author: platform@darasa.app

package outline

import (
	"context"
	"log/slog"
	"strings"

	"github.com/darasahq/darasa/internal/platform/validate"
	"github.com/darasahq/darasa/pkg/slug"
)

// Service orchestrates outline generation.
type Service struct {
	generator Generator
	logger    *slog.Logger
}

// NewService constructs a new outline [Service].
func NewService(generator Generator, logger *slog.Logger) *Service {
	return &Service{
		generator: generator,
		logger:    logger,
	}
}

/*
GenerateOutline produces a draft course outline for the topic.

Description: An empty or whitespace topic fails validation before any remote
call is made. On success the generated title is also turned into a suggested
URL slug for the eventual course record.

Parameters:
  - context: context.Context
  - topic: string

Returns:
  - *CourseOutline: The generated draft with a suggested slug
  - error: ValidationError, ServiceUnavailable, or Internal
*/
func (service *Service) GenerateOutline(context context.Context, topic string) (*CourseOutline, error) {
	topic = strings.TrimSpace(topic)

	validator := &validate.Validator{}
	validator.Required(FieldTopic, topic).MaxLen(FieldTopic, topic, 200)
	if err := validator.Err(); err != nil {
		return nil, err
	}

	outline, err := service.generator.Generate(context, topic)
	if err != nil {
		return nil, err
	}

	outline.SuggestedSlug = slug.From(outline.CourseTitle)

	service.logger.InfoContext(context, "outline generated",
		slog.String("topic", topic),
		slog.Int("modules", len(outline.Modules)),
	)

	return outline, nil
}
