// Copyright (c) 2026 Darasa Academy. All rights reserved.
// Author: platform@darasa.app

package i18n_test

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/darasahq/darasa/pkg/i18n"
)

// mapStore is an in-memory [i18n.Store] for tests.
type mapStore struct {
	data map[string]string
}

func newMapStore() *mapStore {
	return &mapStore{data: make(map[string]string)}
}

func (s *mapStore) Get(key string) (string, bool) {
	v, ok := s.data[key]
	return v, ok
}

func (s *mapStore) Set(key, value string) {
	s.data[key] = value
}

func newTranslator(t *testing.T, store i18n.Store) *i18n.Translator {
	t.Helper()

	tr, err := i18n.New(slog.Default(), store)
	require.NoError(t, err)
	return tr
}

func TestTranslator_DefaultsToEnglish(t *testing.T) {
	tr := newTranslator(t, nil)

	assert.Equal(t, i18n.LangEnglish, tr.Language())
	assert.Equal(t, "ltr", tr.Dir())
}

func TestTranslator_Lookup(t *testing.T) {
	tr := newTranslator(t, nil)

	assert.Equal(t, "Explore Courses", tr.T("catalog.title", nil))
	assert.Equal(t, "By Amina Hassan", tr.T("course.by_instructor", i18n.Args{"name": "Amina Hassan"}))
}

func TestTranslator_MissingKeyReturnsKey(t *testing.T) {
	tr := newTranslator(t, nil)

	assert.Equal(t, "catalog.no_such_key", tr.T("catalog.no_such_key", nil))
}

func TestTranslator_SetLanguage(t *testing.T) {
	store := newMapStore()
	tr := newTranslator(t, store)

	require.NoError(t, tr.SetLanguage(i18n.LangArabic))

	assert.Equal(t, i18n.LangArabic, tr.Language())
	assert.Equal(t, "rtl", tr.Dir())
	assert.Equal(t, "استكشف الدورات", tr.T("catalog.title", nil))

	// restart with the same store restores the selection
	restored := newTranslator(t, store)
	assert.Equal(t, i18n.LangArabic, restored.Language())
}

func TestTranslator_SetLanguage_Unsupported(t *testing.T) {
	tr := newTranslator(t, nil)

	err := tr.SetLanguage("fr")

	assert.Error(t, err)
	assert.Equal(t, i18n.LangEnglish, tr.Language())
}

func TestTranslator_Plural_English(t *testing.T) {
	tr := newTranslator(t, nil)

	assert.Equal(t, "1 course found", tr.TN("catalog.result_count", 1, nil))
	assert.Equal(t, "0 courses found", tr.TN("catalog.result_count", 0, nil))
	assert.Equal(t, "42 courses found", tr.TN("catalog.result_count", 42, nil))
}

func TestTranslator_Plural_Arabic(t *testing.T) {
	tr := newTranslator(t, nil)
	require.NoError(t, tr.SetLanguage(i18n.LangArabic))

	tests := []struct {
		count int
		want  string
	}{
		{count: 0, want: "لا توجد دورات"},
		{count: 1, want: "دورة واحدة"},
		{count: 2, want: "دورتان"},
		{count: 7, want: "7 دورات"},
		{count: 25, want: "25 دورة"},
	}

	for _, tc := range tests {
		assert.Equal(t, tc.want, tr.TN("catalog.result_count", tc.count, nil), "count=%d", tc.count)
	}
}

func TestPluralCategory(t *testing.T) {
	tests := []struct {
		lang  string
		count int
		want  string
	}{
		{lang: i18n.LangEnglish, count: 1, want: i18n.PluralOne},
		{lang: i18n.LangEnglish, count: 0, want: i18n.PluralOther},
		{lang: i18n.LangEnglish, count: 5, want: i18n.PluralOther},
		{lang: i18n.LangArabic, count: 0, want: i18n.PluralZero},
		{lang: i18n.LangArabic, count: 1, want: i18n.PluralOne},
		{lang: i18n.LangArabic, count: 2, want: i18n.PluralTwo},
		{lang: i18n.LangArabic, count: 3, want: i18n.PluralFew},
		{lang: i18n.LangArabic, count: 10, want: i18n.PluralFew},
		{lang: i18n.LangArabic, count: 11, want: i18n.PluralMany},
		{lang: i18n.LangArabic, count: 99, want: i18n.PluralMany},
		{lang: i18n.LangArabic, count: 100, want: i18n.PluralOther},
		{lang: i18n.LangArabic, count: 103, want: i18n.PluralFew},
		{lang: i18n.LangArabic, count: 111, want: i18n.PluralMany},
		{lang: "unknown", count: 1, want: i18n.PluralOne},
		{lang: "unknown", count: 2, want: i18n.PluralOther},
	}

	for _, tc := range tests {
		assert.Equal(t, tc.want, i18n.PluralCategory(tc.lang, tc.count), "lang=%s count=%d", tc.lang, tc.count)
	}
}

func TestTranslator_PluralFallsBackToOther(t *testing.T) {
	tr := newTranslator(t, nil)
	require.NoError(t, tr.SetLanguage(i18n.LangArabic))

	// lesson_count has no _zero variant; the _other form must serve.
	assert.Equal(t, "0 درس", tr.TN("course.lesson_count", 0, nil))
}
