// Copyright (c) 2026 Darasa Academy. All rights reserved.
// Author: platform@darasa.app

package reference

import (
	"context"
	"log/slog"
)

// Service orchestrates master data reads.
type Service struct {
	categoryRepo CategoryRepository
	logger       *slog.Logger
}

// NewService constructs a new reference [Service].
func NewService(categoryRepo CategoryRepository, logger *slog.Logger) *Service {
	return &Service{
		categoryRepo: categoryRepo,
		logger:       logger,
	}
}

// ListCategories returns every course category in display order.
func (service *Service) ListCategories(context context.Context, lang string) ([]*Category, error) {
	return service.categoryRepo.List(context, lang)
}

// GetCategory returns a single category by ID.
func (service *Service) GetCategory(context context.Context, id, lang string) (*Category, error) {
	return service.categoryRepo.FindByID(context, id, lang)
}
