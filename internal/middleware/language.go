// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Package middleware provides HTTP middleware for language resolution,
// admin authentication, rate limiting and response hardening.
package middleware

import (
	"context"
	"net/http"

	"github.com/olegiv/folio/internal/language"
	"github.com/olegiv/folio/internal/model"
)

// ContextKey is a type for context keys to avoid collisions.
type ContextKey string

// ContextKeyLanguage holds the request's language.Resolution.
const ContextKeyLanguage ContextKey = "language"

// languageCookieMaxAge is one year in seconds.
const languageCookieMaxAge = 365 * 24 * 60 * 60

// Language resolves the request language from the "lang" query parameter,
// then the language cookie, then the site default, and stores the
// resolution in the request context. An explicit, supported ?lang= choice
// is persisted in the cookie. The Content-Language header is set to the
// resolved code.
func Language(reg *language.Registry, isDev bool) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			var cookie string
			if c, err := r.Cookie(model.LanguageCookieName); err == nil {
				cookie = c.Value
			}

			res := reg.Resolve(r.Context(), r.URL.Query().Get("lang"), cookie)
			if res.Explicit && res.Code != cookie {
				SetLanguageCookie(w, res.Code, !isDev)
			}
			w.Header().Set("Content-Language", res.Code)

			ctx := context.WithValue(r.Context(), ContextKeyLanguage, res)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// GetLanguage returns the resolution stored by Language. Without one the
// default language code is used for both the language and its fallback.
func GetLanguage(r *http.Request) language.Resolution {
	if res, ok := r.Context().Value(ContextKeyLanguage).(language.Resolution); ok {
		return res
	}
	return language.Resolution{Code: model.DefaultLanguageCode, Fallback: model.DefaultLanguageCode}
}

// WithLanguage returns a copy of ctx carrying res.
func WithLanguage(ctx context.Context, res language.Resolution) context.Context {
	return context.WithValue(ctx, ContextKeyLanguage, res)
}

// SetLanguageCookie sets the language preference cookie. The frontend
// reads it, so it is not HttpOnly.
func SetLanguageCookie(w http.ResponseWriter, code string, secure bool) {
	http.SetCookie(w, &http.Cookie{
		Name:     model.LanguageCookieName,
		Value:    code,
		Path:     "/",
		MaxAge:   languageCookieMaxAge,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	})
}
