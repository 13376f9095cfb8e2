// Copyright (c) 2026 Darasa Academy. All rights reserved.
// Author: platform@darasa.app

package storefront

import (
	"context"
	"fmt"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/darasahq/darasa/internal/catalog"
	"github.com/darasahq/darasa/pkg/i18n"
)

const (
	waitTimeout  = 2 * time.Second
	pollInterval = 5 * time.Millisecond

	// Short settle windows keep the debounce tests fast.
	testFilterDebounce = 40 * time.Millisecond
	testSearchDebounce = 20 * time.Millisecond
)

// memoryStore is an in-memory language store for the translator.
type memoryStore struct {
	data map[string]string
}

func (store *memoryStore) Get(key string) (string, bool) {
	value, ok := store.data[key]
	return value, ok
}

func (store *memoryStore) Set(key, value string) {
	store.data[key] = value
}

func newTestTranslator(t *testing.T) *i18n.Translator {
	t.Helper()
	translator, err := i18n.New(slog.Default(), &memoryStore{data: map[string]string{}})
	require.NoError(t, err)
	return translator
}

// fetchReply is one scripted backend answer.
type fetchReply struct {
	result *PageResult
	err    error
}

// pendingFetch is one in-flight backend call the test controls.
type pendingFetch struct {
	request PageRequest
	respond chan fetchReply
}

// scriptedBackend hands every FetchPage call to the test, which decides
// when and how each one completes. This makes out-of-order completion
// deterministic.
type scriptedBackend struct {
	calls chan *pendingFetch
}

func newScriptedBackend() *scriptedBackend {
	return &scriptedBackend{calls: make(chan *pendingFetch, 16)}
}

func (backend *scriptedBackend) FetchPage(ctx context.Context, request PageRequest) (*PageResult, error) {
	pending := &pendingFetch{request: request, respond: make(chan fetchReply, 1)}
	backend.calls <- pending

	select {
	case reply := <-pending.respond:
		return reply.result, reply.err
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// awaitFetch blocks until the pipeline issues its next backend call.
func awaitFetch(t *testing.T, backend *scriptedBackend) *pendingFetch {
	t.Helper()
	select {
	case pending := <-backend.calls:
		return pending
	case <-time.After(waitTimeout):
		t.Fatal("timed out waiting for a backend fetch")
		return nil
	}
}

// assertNoFetch asserts that no backend call arrives within the window.
func assertNoFetch(t *testing.T, backend *scriptedBackend, window time.Duration) {
	t.Helper()
	select {
	case pending := <-backend.calls:
		t.Fatalf("unexpected fetch for page %d", pending.request.Page)
	case <-time.After(window):
	}
}

// awaitUpdate blocks until the pipeline applies a state change.
func awaitUpdate(t *testing.T, updates chan struct{}) {
	t.Helper()
	select {
	case <-updates:
	case <-time.After(waitTimeout):
		t.Fatal("timed out waiting for a pipeline update")
	}
}

func makeCourses(count int, prefix string) []*catalog.Course {
	courses := make([]*catalog.Course, count)
	for i := range courses {
		courses[i] = &catalog.Course{
			ID:    fmt.Sprintf("%s-%d", prefix, i+1),
			Title: fmt.Sprintf("%s course %d", prefix, i+1),
		}
	}
	return courses
}

func newTestPipeline(t *testing.T, backend *scriptedBackend, width int) (*CatalogPipeline, chan struct{}) {
	t.Helper()
	updates := make(chan struct{}, 16)
	pipeline := NewCatalogPipeline(backend, newTestTranslator(t), slog.Default(),
		WithDebounce(testFilterDebounce, testSearchDebounce),
		WithViewportWidth(width),
		WithOnChange(func() { updates <- struct{}{} }),
	)
	t.Cleanup(pipeline.Close)
	return pipeline, updates
}

func TestCatalogPipeline_DebounceCollapsesFilterEdits(t *testing.T) {
	backend := newScriptedBackend()
	pipeline, updates := newTestPipeline(t, backend, 1024)

	// Three rapid edits inside the settle window.
	minPrice := 10.0
	pipeline.SetFilter(catalog.Filter{CategoryID: "cat-a"})
	pipeline.SetFilter(catalog.Filter{CategoryID: "cat-b"})
	pipeline.SetFilter(catalog.Filter{CategoryID: "cat-c", MinPrice: &minPrice})

	pending := awaitFetch(t, backend)
	assert.Equal(t, "cat-c", pending.request.Filter.CategoryID, "the last edit's values win")
	require.NotNil(t, pending.request.Filter.MinPrice)
	assert.Equal(t, 1, pending.request.Page)
	assert.Equal(t, 9, pending.request.PageSize)

	pending.respond <- fetchReply{result: &PageResult{Courses: makeCourses(3, "c"), Total: 3}}
	awaitUpdate(t, updates)

	// Exactly one fetch for the three edits.
	assertNoFetch(t, backend, 3*testFilterDebounce)
}

func TestCatalogPipeline_FilterChangeResetsPage(t *testing.T) {
	backend := newScriptedBackend()
	pipeline, updates := newTestPipeline(t, backend, 1024)

	pipeline.SetPage(3)
	pending := awaitFetch(t, backend)
	assert.Equal(t, 3, pending.request.Page)
	pending.respond <- fetchReply{result: &PageResult{Courses: makeCourses(9, "p3"), Total: 90}}
	awaitUpdate(t, updates)

	pipeline.SetFilter(catalog.Filter{Sort: catalog.SortRating})

	pending = awaitFetch(t, backend)
	assert.Equal(t, 1, pending.request.Page, "filter or sort change must reset to page 1")
	assert.Equal(t, catalog.SortRating, pending.request.Filter.Sort)
	pending.respond <- fetchReply{result: &PageResult{Courses: makeCourses(9, "f"), Total: 90}}
	awaitUpdate(t, updates)
}

func TestCatalogPipeline_SearchDebounceAndReset(t *testing.T) {
	backend := newScriptedBackend()
	pipeline, updates := newTestPipeline(t, backend, 1024)

	pipeline.SetPage(2)
	pending := awaitFetch(t, backend)
	pending.respond <- fetchReply{result: &PageResult{Courses: makeCourses(9, "p2"), Total: 20}}
	awaitUpdate(t, updates)

	pipeline.SetSearch("pyth")
	pipeline.SetSearch("python")

	pending = awaitFetch(t, backend)
	assert.Equal(t, "python", pending.request.Filter.Search)
	assert.Equal(t, 1, pending.request.Page)
	pending.respond <- fetchReply{result: &PageResult{Courses: makeCourses(2, "s"), Total: 2}}
	awaitUpdate(t, updates)

	assertNoFetch(t, backend, 3*testSearchDebounce)
}

func TestCatalogPipeline_MergePolicy(t *testing.T) {
	t.Run("narrow viewport appends page 2", func(t *testing.T) {
		backend := newScriptedBackend()
		pipeline, updates := newTestPipeline(t, backend, 500)

		pipeline.Load()
		pending := awaitFetch(t, backend)
		pending.respond <- fetchReply{result: &PageResult{Courses: makeCourses(9, "p1"), Total: 18}}
		awaitUpdate(t, updates)

		pipeline.LoadMore()
		pending = awaitFetch(t, backend)
		assert.Equal(t, 2, pending.request.Page)
		pending.respond <- fetchReply{result: &PageResult{Courses: makeCourses(9, "p2"), Total: 18}}
		awaitUpdate(t, updates)

		snapshot := pipeline.Snapshot()
		assert.Len(t, snapshot.Courses, 18, "page 2 results are appended on narrow viewports")
		assert.Equal(t, "p1-1", snapshot.Courses[0].ID)
		assert.Equal(t, "p2-9", snapshot.Courses[17].ID)
	})

	t.Run("wide viewport replaces the list", func(t *testing.T) {
		backend := newScriptedBackend()
		pipeline, updates := newTestPipeline(t, backend, 1024)

		pipeline.Load()
		pending := awaitFetch(t, backend)
		pending.respond <- fetchReply{result: &PageResult{Courses: makeCourses(9, "p1"), Total: 18}}
		awaitUpdate(t, updates)

		pipeline.SetPage(2)
		pending = awaitFetch(t, backend)
		pending.respond <- fetchReply{result: &PageResult{Courses: makeCourses(9, "p2"), Total: 18}}
		awaitUpdate(t, updates)

		snapshot := pipeline.Snapshot()
		assert.Len(t, snapshot.Courses, 9, "each page replaces the list on wide viewports")
		assert.Equal(t, "p2-1", snapshot.Courses[0].ID)
	})

	t.Run("resize between fetches changes the policy", func(t *testing.T) {
		backend := newScriptedBackend()
		pipeline, updates := newTestPipeline(t, backend, 500)

		pipeline.Load()
		pending := awaitFetch(t, backend)
		pending.respond <- fetchReply{result: &PageResult{Courses: makeCourses(9, "p1"), Total: 27}}
		awaitUpdate(t, updates)

		// Rotate to a wide viewport before the next fetch.
		pipeline.Resize(1024)
		pipeline.LoadMore()
		pending = awaitFetch(t, backend)
		pending.respond <- fetchReply{result: &PageResult{Courses: makeCourses(9, "p2"), Total: 27}}
		awaitUpdate(t, updates)

		assert.Len(t, pipeline.Snapshot().Courses, 9, "the policy is re-read per fetch")
	})
}

func TestCatalogPipeline_StaleResponseDiscarded(t *testing.T) {
	backend := newScriptedBackend()
	pipeline, updates := newTestPipeline(t, backend, 1024)

	// Issue two fetches; the first is slow and completes after the second.
	pipeline.Load()
	slow := awaitFetch(t, backend)

	pipeline.SetPage(2)
	fast := awaitFetch(t, backend)
	fast.respond <- fetchReply{result: &PageResult{Courses: makeCourses(4, "fresh"), Total: 13}}
	awaitUpdate(t, updates)

	slow.respond <- fetchReply{result: &PageResult{Courses: makeCourses(9, "stale"), Total: 99}}

	// The stale result never applies, so no further update fires.
	assertNoFetch(t, backend, 50*time.Millisecond)
	snapshot := pipeline.Snapshot()
	assert.Len(t, snapshot.Courses, 4)
	assert.Equal(t, "fresh-1", snapshot.Courses[0].ID)
	assert.Equal(t, 13, snapshot.Total)
}

func TestCatalogPipeline_FetchErrorKeepsPreviousResults(t *testing.T) {
	backend := newScriptedBackend()
	pipeline, updates := newTestPipeline(t, backend, 1024)
	translator := newTestTranslator(t)

	pipeline.Load()
	pending := awaitFetch(t, backend)
	pending.respond <- fetchReply{result: &PageResult{Courses: makeCourses(5, "ok"), Total: 5}}
	awaitUpdate(t, updates)

	pipeline.SetPage(2)
	pending = awaitFetch(t, backend)
	pending.respond <- fetchReply{err: fmt.Errorf("connection reset")}
	awaitUpdate(t, updates)

	snapshot := pipeline.Snapshot()
	assert.Len(t, snapshot.Courses, 5, "previous result set stays untouched on error")
	assert.Equal(t, translator.T("catalog.load_error", nil), snapshot.ErrorMessage)
	assert.False(t, snapshot.Loading)
}

func TestCatalogPipeline_TotalPagesAndWindow(t *testing.T) {
	backend := newScriptedBackend()
	pipeline, updates := newTestPipeline(t, backend, 1024)

	pipeline.Load()
	pending := awaitFetch(t, backend)
	pending.respond <- fetchReply{result: &PageResult{Courses: makeCourses(9, "p1"), Total: 82}}
	awaitUpdate(t, updates)

	snapshot := pipeline.Snapshot()
	assert.Equal(t, 10, snapshot.TotalPages, "82 courses at 9 per page")
	assert.Equal(t, []int{1, 2, 3, 4, -1, 10}, snapshot.Window)
}

func TestCatalogPipeline_CloseCancelsPendingDebounce(t *testing.T) {
	backend := newScriptedBackend()
	pipeline, _ := newTestPipeline(t, backend, 1024)

	pipeline.SetFilter(catalog.Filter{CategoryID: "cat-a"})
	pipeline.Close()

	assertNoFetch(t, backend, 3*testFilterDebounce)
}

func TestCatalogPipeline_LoadingStates(t *testing.T) {
	backend := newScriptedBackend()
	pipeline, updates := newTestPipeline(t, backend, 500)

	pipeline.Load()
	pending := awaitFetch(t, backend)
	assert.True(t, pipeline.Snapshot().Loading, "initial load shows the full-grid state")
	assert.False(t, pipeline.Snapshot().LoadingMore)
	pending.respond <- fetchReply{result: &PageResult{Courses: makeCourses(9, "p1"), Total: 18}}
	awaitUpdate(t, updates)

	pipeline.LoadMore()
	pending = awaitFetch(t, backend)
	snapshot := pipeline.Snapshot()
	assert.True(t, snapshot.LoadingMore, "load-more keeps the list visible with a busy indicator")
	assert.False(t, snapshot.Loading)
	assert.Len(t, snapshot.Courses, 9, "existing results stay while loading more")
	pending.respond <- fetchReply{result: &PageResult{Courses: makeCourses(9, "p2"), Total: 18}}
	awaitUpdate(t, updates)

	snapshot = pipeline.Snapshot()
	assert.False(t, snapshot.LoadingMore)
}
