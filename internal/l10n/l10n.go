// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Package l10n resolves localizable content values.
//
// Every localizable attribute is stored as a base value plus a map of
// per-language translations. The functions in this package turn that pair into
// the value shown for a requested language, with one fallback policy shared by
// the JSON API, the server-rendered pages and the admin API. All functions are
// pure: they never modify their arguments and never return values that alias
// them.
package l10n

import "strings"

// Text resolves a scalar text field.
//
// Precedence: a non-blank translation for lang, then a non-blank base value,
// then a non-blank translation for fallback, then base as is (possibly blank).
// A populated base value is preferred over the fallback-language translation;
// the fallback only fills in when the base itself is empty.
func Text(base string, translations map[string]string, lang, fallback string) string {
	if v, ok := translations[lang]; ok && !isBlank(v) {
		return v
	}
	if !isBlank(base) {
		return base
	}
	if v, ok := translations[fallback]; ok && !isBlank(v) {
		return v
	}
	return base
}

// Dict resolves a structured payload.
//
// The result starts as a deep copy of base. The fallback-language entry of
// translations is merged over it key by key, then, when lang differs from
// fallback, the requested-language entry is merged over that. Merges are
// shallow: a translated key replaces the whole base value under that key.
// Entries that are missing or are not objects are ignored.
func Dict(base map[string]any, translations map[string]any, lang, fallback string) map[string]any {
	out := make(map[string]any, len(base))
	for k, v := range base {
		out[k] = deepCopy(v)
	}

	merge := func(code string) {
		override, ok := translations[code].(map[string]any)
		if !ok {
			return
		}
		for k, v := range override {
			out[k] = deepCopy(v)
		}
	}

	merge(fallback)
	if lang != fallback {
		merge(lang)
	}
	return out
}

// String returns payload[key] when it is a non-blank string.
func String(payload map[string]any, key string) (string, bool) {
	s, ok := payload[key].(string)
	if !ok || isBlank(s) {
		return "", false
	}
	return s, true
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}

func deepCopy(v any) any {
	switch t := v.(type) {
	case map[string]any:
		m := make(map[string]any, len(t))
		for k, inner := range t {
			m[k] = deepCopy(inner)
		}
		return m
	case []any:
		s := make([]any, len(t))
		for i, inner := range t {
			s[i] = deepCopy(inner)
		}
		return s
	default:
		return v
	}
}
