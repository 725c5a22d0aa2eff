// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package middleware

import (
	"log/slog"
	"net/http"

	"github.com/olegiv/folio/internal/auth"
	"github.com/olegiv/folio/internal/model"
)

// adminRealm is the Basic auth realm of the admin API.
const adminRealm = "folio admin"

// AdminAuth requires HTTP Basic credentials matching creds. Failed attempts
// are limited per client IP by failures; a nil limiter disables that.
// Invalid credentials configuration rejects every request.
func AdminAuth(creds auth.Credentials, failures *RateLimiter) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			user, password, ok := r.BasicAuth()
			if ok && creds.Check(user, password) {
				next.ServeHTTP(w, r)
				return
			}

			ip := ClientIP(r)
			if failures != nil && !failures.Allow(r) {
				slog.Warn("admin login rate limited",
					"category", model.EventCategoryAdmin, "ip", ip)
				WriteAPIError(w, http.StatusTooManyRequests, "rate_limit_exceeded", "Too many failed attempts.")
				return
			}
			if ok {
				slog.Warn("admin authentication failed",
					"category", model.EventCategoryAdmin, "ip", ip, "user", user)
			}
			w.Header().Set("WWW-Authenticate", `Basic realm="`+adminRealm+`", charset="UTF-8"`)
			WriteAPIError(w, http.StatusUnauthorized, "unauthorized", "Authentication required.")
		})
	}
}
