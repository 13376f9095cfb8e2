// Copyright (c) 2026 Darasa Academy. All rights reserved.
// Author: platform@darasa.app

package storefront

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/darasahq/darasa/internal/catalog"
	"github.com/darasahq/darasa/internal/platform/constants"
	"github.com/darasahq/darasa/pkg/i18n"
	"github.com/darasahq/darasa/pkg/pagination"
)

const (
	// MobileBreakpoint is the viewport width (logical pixels) below which
	// the pipeline appends pages instead of replacing them.
	MobileBreakpoint = 768

	// FilterDebounce is the default settle window for filter and sort edits.
	FilterDebounce = 500 * time.Millisecond

	// SearchDebounce is the default settle window for search input.
	SearchDebounce = 300 * time.Millisecond
)

// Snapshot is an immutable view of the pipeline state for rendering.
type Snapshot struct {
	Courses      []*catalog.Course
	Total        int
	TotalPages   int
	Page         int
	Window       []int
	Loading      bool
	LoadingMore  bool
	ErrorMessage string
}

// PipelineOption tunes a CatalogPipeline at construction time.
type PipelineOption func(*CatalogPipeline)

// WithDebounce overrides the filter and search settle windows. Tests use
// short windows to keep runs fast.
func WithDebounce(filter, search time.Duration) PipelineOption {
	return func(pipeline *CatalogPipeline) {
		pipeline.filterDelay = filter
		pipeline.searchDelay = search
	}
}

// WithViewportWidth sets the initial viewport width.
func WithViewportWidth(width int) PipelineOption {
	return func(pipeline *CatalogPipeline) {
		pipeline.width = width
	}
}

// WithOnChange registers a callback invoked after every applied state
// change (fetch completion, fetch error). Shells use it to re-render.
func WithOnChange(callback func()) PipelineOption {
	return func(pipeline *CatalogPipeline) {
		pipeline.onChange = callback
	}
}

// CatalogPipeline translates filter/sort/page state into backend page
// fetches and manages the two pagination presentation modes.
//
// Rapid filter edits are debounced so N edits inside the settle window
// produce exactly one fetch with the last values. Responses carry a
// monotonically increasing sequence number; only the most recently issued
// fetch may apply its result, so a stale slow response can never overwrite
// fresher state.
type CatalogPipeline struct {
	mu sync.Mutex

	backend    CatalogBackend
	translator *i18n.Translator
	logger     *slog.Logger

	ctx    context.Context
	cancel context.CancelFunc

	filter catalog.Filter
	page   int
	width  int

	courses      []*catalog.Course
	total        int
	totalPages   int
	loading      bool
	loadingMore  bool
	errorMessage string

	sequence uint64

	filterDelay time.Duration
	searchDelay time.Duration
	filterTimer *time.Timer
	searchTimer *time.Timer

	onChange func()
	closed   bool
}

// NewCatalogPipeline constructs an idle pipeline. No fetch fires until the
// first Load or filter edit.
func NewCatalogPipeline(backend CatalogBackend, translator *i18n.Translator, logger *slog.Logger, options ...PipelineOption) *CatalogPipeline {
	ctx, cancel := context.WithCancel(context.Background())
	pipeline := &CatalogPipeline{
		backend:     backend,
		translator:  translator,
		logger:      logger,
		ctx:         ctx,
		cancel:      cancel,
		page:        1,
		width:       MobileBreakpoint, // desktop presentation until told otherwise
		filterDelay: FilterDebounce,
		searchDelay: SearchDebounce,
	}
	for _, option := range options {
		option(pipeline)
	}
	return pipeline
}

// Snapshot returns a copy of the current state for rendering.
func (pipeline *CatalogPipeline) Snapshot() Snapshot {
	pipeline.mu.Lock()
	defer pipeline.mu.Unlock()

	courses := make([]*catalog.Course, len(pipeline.courses))
	copy(courses, pipeline.courses)

	return Snapshot{
		Courses:      courses,
		Total:        pipeline.total,
		TotalPages:   pipeline.totalPages,
		Page:         pipeline.page,
		Window:       pagination.Window(pipeline.page, pipeline.totalPages),
		Loading:      pipeline.loading,
		LoadingMore:  pipeline.loadingMore,
		ErrorMessage: pipeline.errorMessage,
	}
}

// Load fires an immediate fetch for the current filter and page. Used for
// the initial render and for explicit user retries.
func (pipeline *CatalogPipeline) Load() {
	pipeline.mu.Lock()
	pipeline.fetchLocked()
	pipeline.mu.Unlock()
}

// SetFilter replaces the filter set (including sort), resets the page to 1,
// and schedules a debounced fetch.
func (pipeline *CatalogPipeline) SetFilter(filter catalog.Filter) {
	pipeline.mu.Lock()
	defer pipeline.mu.Unlock()

	filter.Search = pipeline.filter.Search // search has its own edit path
	pipeline.filter = filter
	pipeline.page = 1
	pipeline.scheduleLocked(&pipeline.filterTimer, pipeline.filterDelay)
}

// SetSearch replaces the free-text search term, resets the page to 1, and
// schedules a fetch on the shorter search settle window.
func (pipeline *CatalogPipeline) SetSearch(term string) {
	pipeline.mu.Lock()
	defer pipeline.mu.Unlock()

	pipeline.filter.Search = term
	pipeline.page = 1
	pipeline.scheduleLocked(&pipeline.searchTimer, pipeline.searchDelay)
}

// SetPage jumps to a page through the numbered pagination control and
// fetches immediately.
func (pipeline *CatalogPipeline) SetPage(page int) {
	pipeline.mu.Lock()
	defer pipeline.mu.Unlock()

	if page < 1 {
		page = 1
	}
	pipeline.page = page
	pipeline.fetchLocked()
}

// LoadMore requests the next page. On narrow viewports the result is
// appended to the visible list.
func (pipeline *CatalogPipeline) LoadMore() {
	pipeline.mu.Lock()
	defer pipeline.mu.Unlock()

	if pipeline.totalPages > 0 && pipeline.page >= pipeline.totalPages {
		return
	}
	pipeline.page++
	pipeline.fetchLocked()
}

// Resize records the live viewport width. The merge policy reads the width
// per fetch, so a rotation between two fetches takes effect on the next one.
func (pipeline *CatalogPipeline) Resize(width int) {
	pipeline.mu.Lock()
	pipeline.width = width
	pipeline.mu.Unlock()
}

// Close cancels pending debounce timers and in-flight fetches. Idempotent.
func (pipeline *CatalogPipeline) Close() {
	pipeline.mu.Lock()
	defer pipeline.mu.Unlock()

	if pipeline.closed {
		return
	}
	pipeline.closed = true
	if pipeline.filterTimer != nil {
		pipeline.filterTimer.Stop()
	}
	if pipeline.searchTimer != nil {
		pipeline.searchTimer.Stop()
	}
	pipeline.cancel()
}

// scheduleLocked resets the given debounce timer so consecutive edits
// collapse into one fetch with the last values.
func (pipeline *CatalogPipeline) scheduleLocked(timer **time.Timer, delay time.Duration) {
	if pipeline.closed {
		return
	}
	if *timer != nil {
		(*timer).Stop()
	}
	*timer = time.AfterFunc(delay, func() {
		pipeline.mu.Lock()
		defer pipeline.mu.Unlock()
		if pipeline.closed {
			return
		}
		pipeline.fetchLocked()
	})
}

// fetchLocked issues the next fetch. Callers must hold the mutex.
func (pipeline *CatalogPipeline) fetchLocked() {
	pipeline.sequence++
	sequence := pipeline.sequence

	// The merge policy is re-evaluated per fetch, never cached.
	appendPage := pipeline.width < MobileBreakpoint && pipeline.page > 1

	request := PageRequest{
		Language: pipeline.translator.Language(),
		Filter:   pipeline.filter,
		Page:     pipeline.page,
		PageSize: constants.CatalogPageSize,
	}

	if appendPage {
		pipeline.loadingMore = true
	} else {
		pipeline.loading = true
	}
	pipeline.errorMessage = ""

	go func() {
		result, err := pipeline.backend.FetchPage(pipeline.ctx, request)

		pipeline.mu.Lock()
		// A newer fetch was issued while this one was in flight: its
		// result is stale and must not overwrite fresher state.
		if sequence != pipeline.sequence || pipeline.closed {
			pipeline.mu.Unlock()
			return
		}

		pipeline.loading = false
		pipeline.loadingMore = false

		if err != nil {
			// Previous result set stays on screen; the shell renders a
			// single localized error message alongside it.
			pipeline.errorMessage = pipeline.translator.T("catalog.load_error", nil)
			pipeline.logger.WarnContext(pipeline.ctx, "catalog_fetch_failed",
				slog.Int("page", request.Page),
				slog.String("error", err.Error()),
			)
		} else {
			if appendPage {
				pipeline.courses = append(pipeline.courses, result.Courses...)
			} else {
				pipeline.courses = result.Courses
			}
			pipeline.total = result.Total
			pipeline.totalPages = (result.Total + constants.CatalogPageSize - 1) / constants.CatalogPageSize
		}
		callback := pipeline.onChange
		pipeline.mu.Unlock()

		if callback != nil {
			callback()
		}
	}()
}
