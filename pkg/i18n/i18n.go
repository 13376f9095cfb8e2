// Copyright (c) 2026 Darasa Academy. All rights reserved.
// Author: platform@darasa.app

/*
Package i18n provides bilingual (English/Arabic) message translation for the
storefront.

Messages live in embedded JSON bundles keyed by dotted paths
(e.g. "catalog.empty_state"). Lookups support {{name}} interpolation and
count-based pluralization following the CLDR plural categories of each
language. A missing key is never fatal: the raw key is returned and a warning
is logged so the gap shows up in observability rather than as a crash.

The active language survives restarts through a narrow [Store] abstraction;
callers supply whatever persistence they have (browser storage analogue,
config file, test map).
*/
package i18n

import (
	"embed"
	"encoding/json"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"sync"
)

//go:embed locales/*.json
var localeFS embed.FS

// Supported language tags.
const (
	LangEnglish = "en"
	LangArabic  = "ar"
)

// storageKey is the fixed key under which the active language is persisted.
const storageKey = "darasa_language"

// Args carries named interpolation values for a translated message.
type Args map[string]any

// Store persists the active language selection between sessions.
type Store interface {
	// Get returns the stored value for key and whether it was present.
	Get(key string) (string, bool)

	// Set stores the value under key, overwriting any previous value.
	Set(key, value string)
}

// Translator resolves dotted message keys against the active language bundle.
//
// It is safe for concurrent use.
type Translator struct {
	mu      sync.RWMutex
	lang    string
	bundles map[string]map[string]string
	store   Store
	logger  *slog.Logger
}

// New constructs a Translator with the embedded en/ar bundles.
//
// If the store holds a previously persisted language it becomes the active
// one; otherwise the Translator starts in English. store may be nil, in which
// case the selection is process-local only.
func New(logger *slog.Logger, store Store) (*Translator, error) {
	bundles := make(map[string]map[string]string, 2)

	for _, lang := range []string{LangEnglish, LangArabic} {
		raw, err := localeFS.ReadFile("locales/" + lang + ".json")
		if err != nil {
			return nil, fmt.Errorf("i18n: read bundle %q: %w", lang, err)
		}

		var nested map[string]any
		if err := json.Unmarshal(raw, &nested); err != nil {
			return nil, fmt.Errorf("i18n: parse bundle %q: %w", lang, err)
		}

		flat := make(map[string]string)
		flatten("", nested, flat)
		bundles[lang] = flat
	}

	t := &Translator{
		lang:    LangEnglish,
		bundles: bundles,
		store:   store,
		logger:  logger,
	}

	if store != nil {
		if saved, ok := store.Get(storageKey); ok && IsSupported(saved) {
			t.lang = saved
		}
	}

	return t, nil
}

// IsSupported reports whether lang is one of the shipped languages.
func IsSupported(lang string) bool {
	return lang == LangEnglish || lang == LangArabic
}

// Language returns the active language tag.
func (t *Translator) Language() string {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.lang
}

// SetLanguage switches the active language and persists the choice.
//
// Unsupported tags are rejected without changing state.
func (t *Translator) SetLanguage(lang string) error {
	if !IsSupported(lang) {
		return fmt.Errorf("i18n: unsupported language %q", lang)
	}

	t.mu.Lock()
	t.lang = lang
	t.mu.Unlock()

	if t.store != nil {
		t.store.Set(storageKey, lang)
	}

	return nil
}

// Dir returns the text direction of the active language: "rtl" for Arabic,
// "ltr" otherwise.
func (t *Translator) Dir() string {
	if t.Language() == LangArabic {
		return "rtl"
	}
	return "ltr"
}

// T resolves a dotted message key in the active language and interpolates
// {{name}} placeholders from args.
//
// A key absent from the bundle is returned verbatim after logging a warning.
func (t *Translator) T(key string, args Args) string {
	lang := t.Language()

	msg, ok := t.bundles[lang][key]
	if !ok {
		if t.logger != nil {
			t.logger.Warn("missing translation",
				slog.String("key", key),
				slog.String("language", lang),
			)
		}
		return key
	}

	return interpolate(msg, args)
}

// TN resolves a pluralized message for count.
//
// The plural category of count in the active language selects the variant:
// first "key_<category>", then "key_other", then the bare key. The count is
// always available to the message as {{count}}.
func (t *Translator) TN(key string, count int, args Args) string {
	lang := t.Language()
	category := PluralCategory(lang, count)

	merged := make(Args, len(args)+1)
	for k, v := range args {
		merged[k] = v
	}
	if _, ok := merged["count"]; !ok {
		merged["count"] = count
	}

	bundle := t.bundles[lang]
	for _, candidate := range []string{key + "_" + category, key + "_other"} {
		if msg, ok := bundle[candidate]; ok {
			return interpolate(msg, merged)
		}
	}

	return t.T(key, merged)
}

// flatten walks a nested JSON object and writes dotted leaf keys into out.
func flatten(prefix string, nested map[string]any, out map[string]string) {
	for k, v := range nested {
		key := k
		if prefix != "" {
			key = prefix + "." + k
		}

		switch value := v.(type) {
		case map[string]any:
			flatten(key, value, out)
		case string:
			out[key] = value
		default:
			out[key] = fmt.Sprint(value)
		}
	}
}

// interpolate replaces {{name}} placeholders with their stringified values.
func interpolate(msg string, args Args) string {
	if len(args) == 0 || !strings.Contains(msg, "{{") {
		return msg
	}

	replacements := make([]string, 0, len(args)*2)
	for name, value := range args {
		replacements = append(replacements, "{{"+name+"}}", stringify(value))
	}

	return strings.NewReplacer(replacements...).Replace(msg)
}

func stringify(v any) string {
	switch value := v.(type) {
	case string:
		return value
	case int:
		return strconv.Itoa(value)
	case float64:
		return strconv.FormatFloat(value, 'f', -1, 64)
	default:
		return fmt.Sprint(value)
	}
}
