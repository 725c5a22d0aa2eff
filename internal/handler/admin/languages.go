// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package admin

import (
	"net/http"
	"strings"

	"github.com/olegiv/folio/internal/handler/api"
	"github.com/olegiv/folio/internal/language"
	"github.com/olegiv/folio/internal/model"
	"github.com/olegiv/folio/internal/store"
)

// maxLanguageCodeLength covers tags such as "zh-hant".
const maxLanguageCodeLength = 10

// LanguageRequest is the body of language create and update requests.
type LanguageRequest struct {
	Code     string `json:"code"`
	Name     string `json:"name"`
	IsActive *bool  `json:"is_active"`
	Order    *int64 `json:"order"`
}

// ListLanguages returns every language, active or not.
func (h *Handler) ListLanguages(w http.ResponseWriter, r *http.Request) {
	langs, err := h.queries.ListLanguages(r.Context())
	if err != nil {
		h.writeStoreError(w, err, "languages")
		return
	}
	if langs == nil {
		langs = []store.Language{}
	}
	api.WriteJSON(w, http.StatusOK, map[string]any{"items": langs})
}

// CreateLanguage adds a language. The name defaults to the English name of
// common codes. New languages are never the default.
func (h *Handler) CreateLanguage(w http.ResponseWriter, r *http.Request) {
	var req LanguageRequest
	if !api.DecodeJSON(w, r, &req) {
		return
	}
	ctx := r.Context()

	code := language.Normalize(req.Code)
	name := strings.TrimSpace(req.Name)
	if name == "" {
		name, _ = model.CommonLanguageName(code)
	}

	errs := make(map[string]string)
	switch {
	case code == "":
		errs["code"] = "Language code is required"
	case len(code) < 2 || len(code) > maxLanguageCodeLength:
		errs["code"] = "Language code must be 2-10 characters"
	case !language.ValidCode(code):
		errs["code"] = "Language code is not a valid BCP 47 tag"
	default:
		if _, err := h.queries.GetLanguageByCode(ctx, code); err == nil {
			errs["code"] = "Language code already exists"
		}
	}
	if name == "" {
		errs["name"] = "Name is required"
	}
	if len(errs) > 0 {
		api.WriteValidationError(w, errs)
		return
	}

	l := store.Language{Code: code, Name: name, IsActive: true}
	if req.IsActive != nil {
		l.IsActive = *req.IsActive
	}
	if req.Order != nil {
		l.Order = *req.Order
	} else if langs, err := h.queries.ListLanguages(ctx); err == nil {
		for _, existing := range langs {
			if existing.Order >= l.Order {
				l.Order = existing.Order + 1
			}
		}
	}

	created, err := h.queries.CreateLanguage(ctx, l)
	if err != nil {
		h.writeStoreError(w, err, "language")
		return
	}
	h.logger.Info("language created", "category", model.EventCategoryLanguage, "language_id", created.ID, "code", created.Code)
	h.audit(r, "language created", map[string]any{"code": created.Code})
	api.WriteJSON(w, http.StatusCreated, created)
}

// UpdateLanguage changes the name, active flag or order of a language. The
// code is immutable and the default language cannot be deactivated.
func (h *Handler) UpdateLanguage(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}
	var req LanguageRequest
	if !api.DecodeJSON(w, r, &req) {
		return
	}
	ctx := r.Context()

	l, err := h.queries.GetLanguage(ctx, id)
	if err != nil {
		h.writeStoreError(w, err, "language")
		return
	}

	errs := make(map[string]string)
	if req.Code != "" && language.Normalize(req.Code) != l.Code {
		errs["code"] = "Language code cannot be changed"
	}
	if name := strings.TrimSpace(req.Name); name != "" {
		l.Name = name
	}
	if req.IsActive != nil {
		if l.IsDefault && !*req.IsActive {
			errs["is_active"] = "The default language cannot be deactivated"
		}
		l.IsActive = *req.IsActive
	}
	if req.Order != nil {
		l.Order = *req.Order
	}
	if len(errs) > 0 {
		api.WriteValidationError(w, errs)
		return
	}

	if err := h.queries.UpdateLanguage(ctx, l); err != nil {
		h.writeStoreError(w, err, "language")
		return
	}
	h.audit(r, "language updated", map[string]any{"code": l.Code})
	api.WriteJSON(w, http.StatusOK, l)
}

// MakeDefaultLanguage makes a language the only default one, activating it.
func (h *Handler) MakeDefaultLanguage(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}
	ctx := r.Context()

	if err := h.queries.SetDefaultLanguage(ctx, id); err != nil {
		h.writeStoreError(w, err, "language")
		return
	}
	l, err := h.queries.GetLanguage(ctx, id)
	if err != nil {
		h.writeStoreError(w, err, "language")
		return
	}
	h.logger.Info("default language set", "category", model.EventCategoryLanguage, "language_id", id, "code", l.Code)
	h.audit(r, "default language set", map[string]any{"code": l.Code})
	api.WriteJSON(w, http.StatusOK, l)
}
