// Copyright (c) 2026 Darasa Academy. All rights reserved.
// Author: platform@darasa.app

package reference

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/darasahq/darasa/internal/platform/apperr"
	"github.com/darasahq/darasa/internal/platform/database/schema"
)

// categoryRepository implements [CategoryRepository] using pgx.
type categoryRepository struct {
	pool *pgxpool.Pool
}

// NewCategoryRepository constructs a PostgreSQL backed category store.
func NewCategoryRepository(pool *pgxpool.Pool) CategoryRepository {
	return &categoryRepository{pool: pool}
}

// localizedName resolves the category name column for the given language.
func localizedName(lang string) string {
	if lang == "ar" {
		return fmt.Sprintf("COALESCE(NULLIF(%s, ''), %s)", schema.CatalogCategory.NameAr, schema.CatalogCategory.Name)
	}
	return schema.CatalogCategory.Name
}

// List returns every category ordered by the curated sort order.
func (repository *categoryRepository) List(context context.Context, lang string) ([]*Category, error) {
	query := fmt.Sprintf(`
		SELECT %s, %s, %s, %s, %s
		FROM %s
		ORDER BY %s ASC, %s ASC
	`,
		schema.CatalogCategory.ID,
		localizedName(lang),
		schema.CatalogCategory.Slug,
		schema.CatalogCategory.Icon,
		schema.CatalogCategory.CreatedAt,
		schema.CatalogCategory.Table,
		schema.CatalogCategory.SortOrder,
		schema.CatalogCategory.Name,
	)

	rows, err := repository.pool.Query(context, query)
	if err != nil {
		return nil, fmt.Errorf("postgres: failed to list categories: %w", err)
	}
	defer rows.Close()

	var categories []*Category
	for rows.Next() {
		category := &Category{}
		if err := rows.Scan(&category.ID, &category.Name, &category.Slug, &category.Icon, &category.CreatedAt); err != nil {
			return nil, fmt.Errorf("postgres: failed to scan category: %w", err)
		}
		categories = append(categories, category)
	}

	return categories, nil
}

// FindByID returns a single category by primary key.
func (repository *categoryRepository) FindByID(context context.Context, id, lang string) (*Category, error) {
	query := fmt.Sprintf(`
		SELECT %s, %s, %s, %s, %s
		FROM %s
		WHERE %s = $1
	`,
		schema.CatalogCategory.ID,
		localizedName(lang),
		schema.CatalogCategory.Slug,
		schema.CatalogCategory.Icon,
		schema.CatalogCategory.CreatedAt,
		schema.CatalogCategory.Table,
		schema.CatalogCategory.ID,
	)

	category := &Category{}
	err := repository.pool.QueryRow(context, query, id).Scan(
		&category.ID, &category.Name, &category.Slug, &category.Icon, &category.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperr.NotFound("category")
		}
		return nil, fmt.Errorf("postgres: failed to find category: %w", err)
	}

	return category, nil
}
