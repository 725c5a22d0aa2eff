// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package model

// DefaultLanguageCode is used when no language is configured at all.
const DefaultLanguageCode = "en"

// LanguageCookieName is the cookie holding the visitor's language preference.
const LanguageCookieName = "lang"

// CommonLanguages provides names for commonly used languages, used when the
// admin creates a language without naming it.
var CommonLanguages = []struct {
	Code string
	Name string
}{
	{"en", "English"},
	{"ru", "Russian"},
	{"zh", "Chinese (Simplified)"},
	{"de", "German"},
	{"fr", "French"},
	{"es", "Spanish"},
	{"it", "Italian"},
	{"pt", "Portuguese"},
	{"ja", "Japanese"},
	{"uk", "Ukrainian"},
}

// CommonLanguageName returns the English name of a common language code.
func CommonLanguageName(code string) (string, bool) {
	for _, l := range CommonLanguages {
		if l.Code == code {
			return l.Name, true
		}
	}
	return "", false
}
