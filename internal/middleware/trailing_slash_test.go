// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestAddTrailingSlash(t *testing.T) {
	handler := AddTrailingSlash(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	tests := []struct {
		method   string
		target   string
		want     int
		location string
	}{
		{http.MethodGet, "/", http.StatusOK, ""},
		{http.MethodGet, "/about/", http.StatusOK, ""},
		{http.MethodGet, "/about", http.StatusMovedPermanently, "/about/"},
		{http.MethodGet, "/about?lang=ru", http.StatusMovedPermanently, "/about/?lang=ru"},
		{http.MethodGet, "/favicon.ico", http.StatusOK, ""},
		{http.MethodPost, "/contact", http.StatusOK, ""},
	}
	for _, tt := range tests {
		t.Run(tt.method+" "+tt.target, func(t *testing.T) {
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, httptest.NewRequest(tt.method, tt.target, nil))
			if rec.Code != tt.want {
				t.Errorf("status = %d, want %d", rec.Code, tt.want)
			}
			if loc := rec.Header().Get("Location"); loc != tt.location {
				t.Errorf("Location = %q, want %q", loc, tt.location)
			}
		})
	}
}
