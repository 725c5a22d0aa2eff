// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package admin

import (
	"net/http"

	"github.com/olegiv/folio/internal/handler/api"
	"github.com/olegiv/folio/internal/model"
)

type pageItem struct {
	ID          int64  `json:"id"`
	Slug        string `json:"slug"`
	Title       string `json:"title"`
	IsActive    bool   `json:"is_active"`
	IsHome      bool   `json:"is_home"`
	IsPublished bool   `json:"is_published"`
	Order       int64  `json:"order"`
}

// ListPages returns every page with its base title.
func (h *Handler) ListPages(w http.ResponseWriter, r *http.Request) {
	pages, err := h.queries.ListPages(r.Context())
	if err != nil {
		h.writeStoreError(w, err, "pages")
		return
	}
	items := make([]pageItem, 0, len(pages))
	for _, p := range pages {
		items = append(items, pageItem{
			ID: p.ID, Slug: p.Slug, Title: p.Title, IsActive: p.IsActive,
			IsHome: p.IsHome, IsPublished: p.IsPublished, Order: p.Order,
		})
	}
	api.WriteJSON(w, http.StatusOK, map[string]any{"items": items})
}

// MakeHomePage flags a page as the only home page.
func (h *Handler) MakeHomePage(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}
	ctx := r.Context()

	if err := h.queries.SetHomePage(ctx, id); err != nil {
		h.writeStoreError(w, err, "page")
		return
	}
	p, err := h.queries.GetPage(ctx, id)
	if err != nil {
		h.writeStoreError(w, err, "page")
		return
	}
	h.logger.Info("home page set", "category", model.EventCategoryContent, "page_id", id, "slug", p.Slug)
	h.audit(r, "home page set", map[string]any{"slug": p.Slug})
	api.WriteJSON(w, http.StatusOK, pageItem{
		ID: p.ID, Slug: p.Slug, Title: p.Title, IsActive: p.IsActive,
		IsHome: p.IsHome, IsPublished: p.IsPublished, Order: p.Order,
	})
}
