// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package admin

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/olegiv/folio/internal/handler/api"
	"github.com/olegiv/folio/internal/model"
	"github.com/olegiv/folio/internal/store"
)

// TranslationsResponse is a translation map of one field of one row.
type TranslationsResponse struct {
	Entity       string             `json:"entity"`
	ID           int64              `json:"id"`
	Field        string             `json:"field"`
	Translations model.Translations `json:"translations"`
}

// TranslatableFields lists the translatable fields per entity.
func (h *Handler) TranslatableFields(w http.ResponseWriter, _ *http.Request) {
	api.WriteJSON(w, http.StatusOK, store.TranslatableFields())
}

// GetTranslations returns the translations of {field} of the {entity} row
// {id}.
func (h *Handler) GetTranslations(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}
	entity, field := chi.URLParam(r, "entity"), chi.URLParam(r, "field")

	tr, err := h.queries.GetTranslations(r.Context(), entity, field, id)
	if err != nil {
		h.writeTranslationError(w, err, entity)
		return
	}
	if tr == nil {
		tr = model.Translations{}
	}
	api.WriteJSON(w, http.StatusOK, TranslationsResponse{Entity: entity, ID: id, Field: field, Translations: tr})
}

// UpdateTranslations replaces the translations of {field} of the {entity}
// row {id}. The body is the language to text map; blank texts are dropped.
func (h *Handler) UpdateTranslations(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}
	var body model.Translations
	if !api.DecodeJSON(w, r, &body) {
		return
	}
	ctx := r.Context()
	entity, field := chi.URLParam(r, "entity"), chi.URLParam(r, "field")

	tr, err := h.cleanTranslations(ctx, body)
	if err != nil {
		var verr *translationError
		if errors.As(err, &verr) {
			api.WriteValidationError(w, map[string]string{"translations": verr.Error()})
			return
		}
		h.writeStoreError(w, err, "translations")
		return
	}

	if err := h.queries.UpdateTranslations(ctx, entity, field, id, tr); err != nil {
		h.writeTranslationError(w, err, entity)
		return
	}
	h.audit(r, "translations updated", map[string]any{"entity": entity, "id": id, "field": field})
	api.WriteJSON(w, http.StatusOK, TranslationsResponse{Entity: entity, ID: id, Field: field, Translations: tr})
}

func (h *Handler) writeTranslationError(w http.ResponseWriter, err error, entity string) {
	if errors.Is(err, store.ErrUnknownField) {
		api.WriteNotFound(w, "Unknown translatable field.")
		return
	}
	h.writeStoreError(w, err, entity)
}
