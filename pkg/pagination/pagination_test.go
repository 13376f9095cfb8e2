// Copyright (c) 2026 Darasa Academy. All rights reserved.
// Author: platform@darasa.app

package pagination_test

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/darasahq/darasa/pkg/pagination"
)

func TestParams_Offset(t *testing.T) {
	tests := []struct {
		name   string
		params pagination.Params
		want   int
	}{
		{name: "first page", params: pagination.Params{Page: 1, Limit: 9}, want: 0},
		{name: "second page", params: pagination.Params{Page: 2, Limit: 9}, want: 9},
		{name: "deep page", params: pagination.Params{Page: 7, Limit: 9}, want: 54},
		{name: "zero page clamps to start", params: pagination.Params{Page: 0, Limit: 9}, want: 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.params.Offset())
		})
	}
}

func TestNewMeta(t *testing.T) {
	tests := []struct {
		name           string
		page           int
		limit          int
		total          int
		wantTotalPages int
	}{
		{name: "exact fit", page: 1, limit: 9, total: 18, wantTotalPages: 2},
		{name: "partial last page", page: 1, limit: 9, total: 19, wantTotalPages: 3},
		{name: "empty result", page: 1, limit: 9, total: 0, wantTotalPages: 0},
		{name: "zero limit guards division", page: 1, limit: 0, total: 50, wantTotalPages: 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			meta := pagination.NewMeta(tc.page, tc.limit, tc.total)

			assert.Equal(t, tc.page, meta.Page)
			assert.Equal(t, tc.limit, meta.Limit)
			assert.Equal(t, tc.total, meta.Total)
			assert.Equal(t, tc.wantTotalPages, meta.TotalPages)
		})
	}
}

func TestFromRequest(t *testing.T) {
	tests := []struct {
		name  string
		query string
		want  pagination.Params
	}{
		{name: "defaults", query: "", want: pagination.Params{Page: 1, Limit: 20}},
		{name: "explicit values", query: "page=3&limit=9", want: pagination.Params{Page: 3, Limit: 9}},
		{name: "negative page", query: "page=-2", want: pagination.Params{Page: 1, Limit: 20}},
		{name: "excessive limit", query: "limit=5000", want: pagination.Params{Page: 1, Limit: 20}},
		{name: "garbage input", query: "page=abc&limit=xyz", want: pagination.Params{Page: 1, Limit: 20}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			r := httptest.NewRequest("GET", "/courses?"+tc.query, nil)
			assert.Equal(t, tc.want, pagination.FromRequest(r))
		})
	}
}

func TestWindow(t *testing.T) {
	const gap = pagination.Ellipsis

	tests := []struct {
		name       string
		current    int
		totalPages int
		want       []int
	}{
		{name: "single page", current: 1, totalPages: 1, want: []int{1}},
		{name: "all pages when five or fewer", current: 3, totalPages: 5, want: []int{1, 2, 3, 4, 5}},
		{name: "four pages no gap", current: 2, totalPages: 4, want: []int{1, 2, 3, 4}},
		{name: "near start", current: 1, totalPages: 10, want: []int{1, 2, 3, 4, gap, 10}},
		{name: "start boundary", current: 3, totalPages: 10, want: []int{1, 2, 3, 4, gap, 10}},
		{name: "middle", current: 5, totalPages: 10, want: []int{1, gap, 4, 5, 6, gap, 10}},
		{name: "near end", current: 9, totalPages: 10, want: []int{1, gap, 7, 8, 9, 10}},
		{name: "end boundary", current: 8, totalPages: 10, want: []int{1, gap, 7, 8, 9, 10}},
		{name: "last page", current: 10, totalPages: 10, want: []int{1, gap, 7, 8, 9, 10}},
		{name: "current above range clamps", current: 99, totalPages: 10, want: []int{1, gap, 7, 8, 9, 10}},
		{name: "current below range clamps", current: -1, totalPages: 10, want: []int{1, 2, 3, 4, gap, 10}},
		{name: "no pages", current: 1, totalPages: 0, want: nil},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, pagination.Window(tc.current, tc.totalPages))
		})
	}
}
