// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Package admin provides the JSON editing API behind Basic authentication.
package admin

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/olegiv/folio/internal/handler"
	"github.com/olegiv/folio/internal/handler/api"
	"github.com/olegiv/folio/internal/model"
	"github.com/olegiv/folio/internal/service"
	"github.com/olegiv/folio/internal/store"
)

// Handler serves the admin endpoints.
type Handler struct {
	queries *store.Queries
	events  *service.EventService
	logger  *slog.Logger
}

// NewHandler creates a new admin Handler.
func NewHandler(site *handler.Site, events *service.EventService, logger *slog.Logger) *Handler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Handler{
		queries: site.Queries,
		events:  events,
		logger:  logger,
	}
}

// Routes registers the admin endpoints on r.
func (h *Handler) Routes(r chi.Router) {
	r.Get("/languages", h.ListLanguages)
	r.Post("/languages", h.CreateLanguage)
	r.Put("/languages/{id}", h.UpdateLanguage)
	r.Post("/languages/{id}/make-default", h.MakeDefaultLanguage)

	r.Get("/texts", h.ListTexts)
	r.Put("/texts/{key}", h.UpsertText)

	r.Get("/translations", h.TranslatableFields)
	r.Get("/translations/{entity}/{id}/{field}", h.GetTranslations)
	r.Put("/translations/{entity}/{id}/{field}", h.UpdateTranslations)

	r.Get("/pages", h.ListPages)
	r.Post("/pages/{id}/make-home", h.MakeHomePage)

	r.Get("/site-settings/ui", h.GetUITexts)
	r.Put("/site-settings/ui", h.UpdateUITexts)

	r.Get("/contact-messages", h.ListContactMessages)
	r.Post("/contact-messages/{id}/read", h.MarkContactMessageRead)

	r.Get("/events", h.ListEvents)
}

// parseID reads the {id} URL parameter. On failure a 400 response has been
// written.
func parseID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		api.WriteBadRequest(w, "Invalid ID", nil)
		return 0, false
	}
	return id, true
}

// writeStoreError maps a store error to a response. what names the entity in
// messages, e.g. "language".
func (h *Handler) writeStoreError(w http.ResponseWriter, err error, what string) {
	if errors.Is(err, store.ErrNotFound) {
		api.WriteNotFound(w, capitalize(what)+" not found.")
		return
	}
	h.logger.Error("admin store operation failed", "category", model.EventCategoryAdmin, "entity", what, "error", err)
	api.WriteInternalError(w, "Failed to update "+what)
}

// audit records an admin change in the event log. A logging failure never
// fails the request.
func (h *Handler) audit(r *http.Request, message string, metadata map[string]any) {
	if h.events == nil {
		return
	}
	if user, _, ok := r.BasicAuth(); ok {
		if metadata == nil {
			metadata = map[string]any{}
		}
		metadata["user"] = user
	}
	_ = h.events.LogAdminEvent(r.Context(), message, metadata)
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	b := []byte(s)
	if b[0] >= 'a' && b[0] <= 'z' {
		b[0] -= 'a' - 'A'
	}
	return string(b)
}
