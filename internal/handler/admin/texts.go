// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package admin

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/olegiv/folio/internal/handler/api"
	"github.com/olegiv/folio/internal/language"
	"github.com/olegiv/folio/internal/model"
	"github.com/olegiv/folio/internal/store"
)

// SiteTextRequest is the body of PUT /admin/texts/{key}.
type SiteTextRequest struct {
	Group       string             `json:"group"`
	Description string             `json:"description"`
	Text        string             `json:"text"`
	TextI18n    model.Translations `json:"text_i18n"`
	Order       int64              `json:"order"`
	IsPublished *bool              `json:"is_published"`
}

// ListTexts returns the site texts, optionally filtered by ?group=.
func (h *Handler) ListTexts(w http.ResponseWriter, r *http.Request) {
	texts, err := h.queries.ListSiteTexts(r.Context(), strings.TrimSpace(r.URL.Query().Get("group")))
	if err != nil {
		h.writeStoreError(w, err, "site texts")
		return
	}
	if texts == nil {
		texts = []store.SiteText{}
	}
	api.WriteJSON(w, http.StatusOK, map[string]any{"items": texts})
}

// UpsertText creates or replaces the site text under {key}.
func (h *Handler) UpsertText(w http.ResponseWriter, r *http.Request) {
	var req SiteTextRequest
	if !api.DecodeJSON(w, r, &req) {
		return
	}
	ctx := r.Context()

	key := strings.TrimSpace(chi.URLParam(r, "key"))
	errs := make(map[string]string)
	if key == "" || strings.ContainsAny(key, " \t\r\n") {
		errs["key"] = "Key must be a non-empty token without spaces"
	}
	tr, err := h.cleanTranslations(ctx, req.TextI18n)
	if err != nil {
		var verr *translationError
		if !errors.As(err, &verr) {
			h.writeStoreError(w, err, "site text")
			return
		}
		errs["text_i18n"] = verr.Error()
	}
	if len(errs) > 0 {
		api.WriteValidationError(w, errs)
		return
	}

	t := store.SiteText{
		Key:         key,
		Group:       strings.TrimSpace(req.Group),
		Description: strings.TrimSpace(req.Description),
		Text:        req.Text,
		TextI18n:    tr,
		Order:       req.Order,
		IsPublished: true,
	}
	if req.IsPublished != nil {
		t.IsPublished = *req.IsPublished
	}
	saved, err := h.queries.UpsertSiteText(ctx, t)
	if err != nil {
		h.writeStoreError(w, err, "site text")
		return
	}
	h.audit(r, "site text saved", map[string]any{"key": key})
	api.WriteJSON(w, http.StatusOK, saved)
}

// translationError reports language codes that are not configured.
type translationError struct {
	Codes []string
}

func (e *translationError) Error() string {
	return fmt.Sprintf("unsupported language: %s", strings.Join(e.Codes, ", "))
}

// cleanTranslations normalizes the codes of tr, drops blank values and
// rejects codes that do not name a configured language.
func (h *Handler) cleanTranslations(ctx context.Context, tr model.Translations) (model.Translations, error) {
	out := model.Translations{}
	if len(tr) == 0 {
		return out, nil
	}
	langs, err := h.queries.ListLanguages(ctx)
	if err != nil {
		return nil, err
	}
	known := make(map[string]bool, len(langs))
	for _, l := range langs {
		known[language.Normalize(l.Code)] = true
	}

	var unknown []string
	for _, code := range tr.Languages() {
		norm := language.Normalize(code)
		if !known[norm] {
			unknown = append(unknown, code)
			continue
		}
		out.Set(norm, tr[code])
	}
	if len(unknown) > 0 {
		return nil, &translationError{Codes: unknown}
	}
	return out, nil
}
