// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Package language resolves the language of a request against the set of
// active languages configured in the store.
package language

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"golang.org/x/text/language"

	"github.com/olegiv/folio/internal/model"
	"github.com/olegiv/folio/internal/store"
)

// ErrUnsupportedLanguage is returned by SetLanguage for a code that does not
// name an active language.
var ErrUnsupportedLanguage = errors.New("unsupported language")

// Source lists the active languages ordered by (order, id).
type Source interface {
	ListActiveLanguages(ctx context.Context) ([]store.Language, error)
}

// Resolution is the outcome of resolving a request's language.
type Resolution struct {
	// Code is the language the response is rendered in.
	Code string
	// Fallback is the site default language used when a value has no
	// translation for Code.
	Fallback string
	// Languages are the active languages in display order.
	Languages []store.Language
	// Explicit reports whether Code came from the request's query parameter.
	Explicit bool
}

// Registry resolves language codes. It holds no state besides its source, so
// every call sees the current store contents.
type Registry struct {
	src         Source
	defaultCode string
	logger      *slog.Logger
}

// NewRegistry creates a Registry. defaultCode is the last-resort language when
// the store has no usable languages; an empty value means "en".
func NewRegistry(src Source, defaultCode string, logger *slog.Logger) *Registry {
	defaultCode = Normalize(defaultCode)
	if defaultCode == "" {
		defaultCode = model.DefaultLanguageCode
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Registry{src: src, defaultCode: defaultCode, logger: logger}
}

// Normalize trims and lowercases a language code.
func Normalize(code string) string {
	return strings.ToLower(strings.TrimSpace(code))
}

// ValidCode reports whether code is a well-formed BCP 47 tag.
func ValidCode(code string) bool {
	code = Normalize(code)
	if code == "" {
		return false
	}
	_, err := language.Parse(code)
	return err == nil
}

// Active returns the active languages. A store error yields an empty list and
// is logged, never returned.
func (r *Registry) Active(ctx context.Context) []store.Language {
	langs, err := r.src.ListActiveLanguages(ctx)
	if err != nil {
		r.logger.Warn("listing active languages failed, using configured default",
			"category", model.EventCategoryLanguage, "error", err)
		return nil
	}
	return langs
}

// Resolve picks the language for a request: the requested code if it names
// an active language, then the cookie code, then the default language.
// It never fails.
func (r *Registry) Resolve(ctx context.Context, requested, cookie string) Resolution {
	langs := r.Active(ctx)
	res := Resolution{
		Fallback:  r.fallback(langs),
		Languages: langs,
	}
	if l, ok := match(langs, requested); ok {
		res.Code = l.Code
		res.Explicit = true
		return res
	}
	if l, ok := match(langs, cookie); ok {
		res.Code = l.Code
		return res
	}
	res.Code = res.Fallback
	return res
}

// Default returns the fallback language: the active language flagged default,
// else the first active language, else the configured default code.
func (r *Registry) Default(ctx context.Context) string {
	return r.fallback(r.Active(ctx))
}

// SetLanguage validates an explicit language choice. The caller persists the
// returned language, typically as a cookie.
func (r *Registry) SetLanguage(ctx context.Context, code string) (store.Language, error) {
	langs, err := r.src.ListActiveLanguages(ctx)
	if err != nil {
		return store.Language{}, err
	}
	l, ok := match(langs, code)
	if !ok {
		return store.Language{}, ErrUnsupportedLanguage
	}
	return l, nil
}

// Supported reports whether code names an active language.
func (r *Registry) Supported(ctx context.Context, code string) bool {
	_, ok := match(r.Active(ctx), code)
	return ok
}

func (r *Registry) fallback(langs []store.Language) string {
	for _, l := range langs {
		if l.IsDefault {
			return l.Code
		}
	}
	if len(langs) > 0 {
		return langs[0].Code
	}
	return r.defaultCode
}

// match finds the active language for code. An exact match wins; otherwise a
// regional tag such as "ru-RU" matches its base language "ru".
func match(langs []store.Language, code string) (store.Language, bool) {
	code = Normalize(code)
	if code == "" {
		return store.Language{}, false
	}
	for _, l := range langs {
		if Normalize(l.Code) == code {
			return l, true
		}
	}
	tag, err := language.Parse(code)
	if err != nil {
		return store.Language{}, false
	}
	base, conf := tag.Base()
	if conf == language.No {
		return store.Language{}, false
	}
	for _, l := range langs {
		if Normalize(l.Code) == base.String() {
			return l, true
		}
	}
	return store.Language{}, false
}
