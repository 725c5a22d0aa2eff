// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"sort"
	"strings"
)

// Translations maps a language code to the translated value of one text field.
// It is stored as a JSON object in the *_i18n sibling column of the field.
//
// Scanning is lenient: a column holding malformed JSON, a non-object value, or
// non-string entries yields only the well-formed string entries, so partially
// migrated or hand-edited rows never fail a read.
type Translations map[string]string

// Get returns the translation for lang and whether it is present.
func (t Translations) Get(lang string) (string, bool) {
	if t == nil {
		return "", false
	}
	v, ok := t[lang]
	return v, ok
}

// Set stores a trimmed translation for lang. A blank value removes the entry.
func (t Translations) Set(lang, value string) {
	value = strings.TrimSpace(value)
	if value == "" {
		delete(t, lang)
		return
	}
	t[lang] = value
}

// Unset removes the translation for lang.
func (t Translations) Unset(lang string) {
	delete(t, lang)
}

// Languages returns the language codes present, sorted.
func (t Translations) Languages() []string {
	langs := make([]string, 0, len(t))
	for lang := range t {
		langs = append(langs, lang)
	}
	sort.Strings(langs)
	return langs
}

// Clone returns an independent copy.
func (t Translations) Clone() Translations {
	out := make(Translations, len(t))
	for k, v := range t {
		out[k] = v
	}
	return out
}

// Scan implements sql.Scanner.
func (t *Translations) Scan(src any) error {
	*t = Translations{}
	raw, ok := rawJSON(src)
	if !ok {
		return nil
	}
	var decoded map[string]any
	if err := json.Unmarshal(raw, &decoded); err != nil {
		return nil
	}
	for lang, v := range decoded {
		if s, ok := v.(string); ok {
			(*t)[lang] = s
		}
	}
	return nil
}

// Value implements driver.Valuer.
func (t Translations) Value() (driver.Value, error) {
	if t == nil {
		return "{}", nil
	}
	b, err := json.Marshal(map[string]string(t))
	if err != nil {
		return nil, fmt.Errorf("encoding translations: %w", err)
	}
	return string(b), nil
}

// JSONObject is a schema-less JSON object column: section payloads, per-language
// payload overrides and the UI dictionary overrides of the site settings.
// Like Translations, anything that is not a JSON object scans as empty.
type JSONObject map[string]any

// Object returns the entry under key if it is itself an object.
func (o JSONObject) Object(key string) (map[string]any, bool) {
	if o == nil {
		return nil, false
	}
	m, ok := o[key].(map[string]any)
	return m, ok
}

// Scan implements sql.Scanner.
func (o *JSONObject) Scan(src any) error {
	*o = JSONObject{}
	raw, ok := rawJSON(src)
	if !ok {
		return nil
	}
	var decoded map[string]any
	if err := json.Unmarshal(raw, &decoded); err != nil {
		return nil
	}
	if decoded != nil {
		*o = decoded
	}
	return nil
}

// Value implements driver.Valuer.
func (o JSONObject) Value() (driver.Value, error) {
	if o == nil {
		return "{}", nil
	}
	b, err := json.Marshal(map[string]any(o))
	if err != nil {
		return nil, fmt.Errorf("encoding json object: %w", err)
	}
	return string(b), nil
}

func rawJSON(src any) ([]byte, bool) {
	switch v := src.(type) {
	case nil:
		return nil, false
	case string:
		return []byte(v), v != ""
	case []byte:
		return v, len(v) > 0
	default:
		return nil, false
	}
}
