// Copyright (c) 2026 Darasa Academy. All rights reserved.
// Author: platform@darasa.app

// Package pagination provides shared types and helpers for API list endpoints.
//
// # Overview
//
// It standardizes how page-based navigation is requested via query parameters,
// how the resulting metadata is delivered in the API response envelope, and how
// a compact page window (with ellipsis gaps) is computed for catalog navigation.
package pagination

import (
	"net/http"
	"strconv"
)

const (
	// DefaultLimit is the number of items per page if not specified.
	DefaultLimit = 20
	// MaxLimit is the upper bound for items per page to prevent system abuse.
	MaxLimit = 100
	// DefaultPage is the starting page (1-indexed).
	DefaultPage = 1

	// Ellipsis marks a gap between page numbers in a [Window] result.
	Ellipsis = -1
)

// Params holds the parsed page and limit from a request's query string.
type Params struct {
	Page  int
	Limit int
}

// Offset returns the SQL OFFSET value derived from [Page] and [Limit].
func (p Params) Offset() int {
	if p.Page <= 1 {
		return 0
	}
	return (p.Page - 1) * p.Limit
}

// Meta is the pagination metadata included in API list responses.
type Meta struct {
	Page       int `json:"page"`
	Limit      int `json:"limit"`
	Total      int `json:"total"`
	TotalPages int `json:"total_pages"`
}

// NewMeta constructs pagination metadata for a response.
//
// It automatically calculates the TotalPages based on the total count and limit.
func NewMeta(page, limit, total int) Meta {
	totalPages := 0
	if limit > 0 {
		totalPages = (total + limit - 1) / limit
	}

	return Meta{
		Page:       page,
		Limit:      limit,
		Total:      total,
		TotalPages: totalPages,
	}
}

// FromRequest parses "page" and "limit" query parameters from an HTTP request.
//
// # Clamping
//
// Invalid, negative, or excessive values are automatically clamped to
// [DefaultPage], [DefaultLimit], or [MaxLimit].
func FromRequest(r *http.Request) Params {
	page := parseIntParam(r, "page", DefaultPage)
	limit := parseIntParam(r, "limit", DefaultLimit)

	if page < 1 {
		page = DefaultPage
	}

	if limit < 1 || limit > MaxLimit {
		limit = DefaultLimit
	}

	return Params{Page: page, Limit: limit}
}

// Window computes the visible page numbers for a pager control.
//
// Gaps are represented by the [Ellipsis] sentinel. The shape depends on where
// the current page sits:
//
//   - totalPages <= 5: every page, no gaps.
//   - current near the start: 1 2 3 4 … last
//   - current near the end: 1 … last-3 last-2 last-1 last
//   - otherwise: 1 … current-1 current current+1 … last
//
// current is clamped into [1, totalPages]. A non-positive totalPages yields nil.
func Window(current, totalPages int) []int {
	if totalPages <= 0 {
		return nil
	}

	if current < 1 {
		current = 1
	}
	if current > totalPages {
		current = totalPages
	}

	if totalPages <= 5 {
		pages := make([]int, totalPages)
		for i := range pages {
			pages[i] = i + 1
		}
		return pages
	}

	if current <= 3 {
		return []int{1, 2, 3, 4, Ellipsis, totalPages}
	}

	if current >= totalPages-2 {
		return []int{1, Ellipsis, totalPages - 3, totalPages - 2, totalPages - 1, totalPages}
	}

	return []int{1, Ellipsis, current - 1, current, current + 1, Ellipsis, totalPages}
}

// parseIntParam parses a single integer query parameter with a fallback default.
func parseIntParam(r *http.Request, key string, defaultVal int) int {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return defaultVal
	}

	n, err := strconv.Atoi(raw)
	if err != nil {
		return defaultVal
	}

	return n
}
