// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package api

import (
	"context"
	"net/http"

	"github.com/olegiv/folio/internal/content"
	"github.com/olegiv/folio/internal/language"
	"github.com/olegiv/folio/internal/middleware"
	"github.com/olegiv/folio/internal/model"
)

// listCollection writes one localized collection loaded by list.
func listCollection[T any](h *Handler, w http.ResponseWriter, r *http.Request, name string,
	list func(ctx context.Context, lang, fallback string, texts content.Texts) ([]T, error)) {
	ctx := r.Context()
	res := middleware.GetLanguage(r)

	items, err := list(ctx, res.Code, res.Fallback, h.texts(ctx, res))
	if err != nil {
		h.logger.Error("listing collection failed", "category", model.EventCategoryContent,
			"collection", name, "error", err)
		WriteInternalError(w, "Failed to list "+name)
		return
	}
	WriteJSON(w, http.StatusOK, ItemsResponse[T]{Lang: res.Code, Items: items})
}

func (h *Handler) texts(ctx context.Context, res language.Resolution) content.Texts {
	return h.site.Texts(ctx, res)
}

// Expeditions lists the published expeditions.
func (h *Handler) Expeditions(w http.ResponseWriter, r *http.Request) {
	listCollection(h, w, r, "expeditions", h.site.Content.Expeditions)
}

// Categories lists the published categories.
func (h *Handler) Categories(w http.ResponseWriter, r *http.Request) {
	listCollection(h, w, r, "categories", h.site.Content.Categories)
}

// Stories lists the published stories.
func (h *Handler) Stories(w http.ResponseWriter, r *http.Request) {
	listCollection(h, w, r, "stories", h.site.Content.Stories)
}
