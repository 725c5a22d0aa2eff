// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Package api provides the read-oriented JSON API of the site.
package api

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/olegiv/folio/internal/handler"
	"github.com/olegiv/folio/internal/service"
	"github.com/olegiv/folio/internal/store"
	"github.com/olegiv/folio/internal/version"
)

// maxBodyBytes bounds JSON request bodies.
const maxBodyBytes = 64 << 10

// Handler holds shared dependencies for all API handlers.
type Handler struct {
	site    *handler.Site
	contact *service.ContactService
	isDev   bool
	logger  *slog.Logger
}

// NewHandler creates a new API handler.
func NewHandler(site *handler.Site, contact *service.ContactService, isDev bool, logger *slog.Logger) *Handler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Handler{
		site:    site,
		contact: contact,
		isDev:   isDev,
		logger:  logger,
	}
}

// Routes registers the API endpoints on r. contactLimit, when non-nil,
// wraps the contact intake.
func (h *Handler) Routes(r chi.Router, contactLimit func(http.Handler) http.Handler) {
	r.Get("/health", h.Health)
	r.Get("/content", h.Content)
	r.Get("/i18n", h.I18n)
	r.Post("/i18n/set-language", h.SetLanguage)
	r.Get("/navigation", h.Navigation)
	r.Get("/navigation-items", h.NavigationItems)
	r.Get("/menus/{code}", h.MenuDetail)
	r.Get("/pages", h.Pages)
	r.Get("/pages/{slug}", h.PageDetail)
	r.Get("/site-structure", h.SiteStructure)
	r.Get("/site-bootstrap", h.SiteBootstrap)
	r.Get("/site-settings", h.SiteSettings)
	r.Get("/expeditions", h.Expeditions)
	r.Get("/categories", h.Categories)
	r.Get("/stories", h.Stories)

	contact := http.Handler(http.HandlerFunc(h.Contact))
	if contactLimit != nil {
		contact = contactLimit(contact)
	}
	r.Method(http.MethodPost, "/contact", contact)
}

// ErrorResponse is the standard API error response.
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail contains error information.
type ErrorDetail struct {
	Code    string            `json:"code"`
	Message string            `json:"message"`
	Details map[string]string `json:"details,omitempty"`
}

// WriteJSON writes a JSON response with the given status code.
func WriteJSON(w http.ResponseWriter, statusCode int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(data)
}

// WriteError writes an error JSON response.
func WriteError(w http.ResponseWriter, statusCode int, code, message string, details map[string]string) {
	resp := ErrorResponse{
		Error: ErrorDetail{
			Code:    code,
			Message: message,
			Details: details,
		},
	}
	WriteJSON(w, statusCode, resp)
}

// WriteBadRequest writes a 400 Bad Request response.
func WriteBadRequest(w http.ResponseWriter, message string, details map[string]string) {
	WriteError(w, http.StatusBadRequest, "bad_request", message, details)
}

// WriteNotFound writes a 404 Not Found response.
func WriteNotFound(w http.ResponseWriter, message string) {
	WriteError(w, http.StatusNotFound, "not_found", message, nil)
}

// WriteInternalError writes a 500 Internal Server Error response.
func WriteInternalError(w http.ResponseWriter, message string) {
	WriteError(w, http.StatusInternalServerError, "internal_error", message, nil)
}

// WriteValidationError writes a 422 Unprocessable Entity response with field errors.
func WriteValidationError(w http.ResponseWriter, fieldErrors map[string]string) {
	WriteError(w, http.StatusUnprocessableEntity, "validation_error", "Validation failed", fieldErrors)
}

// DecodeJSON reads a JSON request body into v. An empty body leaves v
// unchanged. On failure a 400 response has been written.
func DecodeJSON(w http.ResponseWriter, r *http.Request, v any) bool {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err := dec.Decode(v); err != nil && !errors.Is(err, io.EOF) {
		WriteBadRequest(w, "Invalid JSON body", nil)
		return false
	}
	return true
}

// StatusResponse contains API status information.
type StatusResponse struct {
	Status  string       `json:"status"`
	Version version.Info `json:"version"`
}

// Health returns the API status and the running version.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	status := "ok"
	if _, err := h.site.Queries.ListActiveLanguages(r.Context()); err != nil {
		h.logger.Error("health check failed", "error", err)
		status = "degraded"
	}
	WriteJSON(w, http.StatusOK, StatusResponse{Status: status, Version: version.Get()})
}

// languageView is a language as the API lists it.
type languageView struct {
	Code      string `json:"code"`
	Name      string `json:"name"`
	IsDefault bool   `json:"is_default"`
	Order     int64  `json:"order"`
}

func languageViews(langs []store.Language) []languageView {
	out := make([]languageView, 0, len(langs))
	for _, l := range langs {
		out = append(out, languageView{Code: l.Code, Name: l.Name, IsDefault: l.IsDefault, Order: l.Order})
	}
	return out
}
