// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package admin

import (
	"net/http"
	"sort"
	"strings"

	"github.com/olegiv/folio/internal/handler/api"
	"github.com/olegiv/folio/internal/l10n"
	"github.com/olegiv/folio/internal/language"
	"github.com/olegiv/folio/internal/model"
)

// UITextsResponse holds the stored UI overrides and the known keys.
type UITextsResponse struct {
	Keys      []string                     `json:"keys"`
	Overrides map[string]map[string]string `json:"overrides"`
}

// GetUITexts returns the per-language UI text overrides.
func (h *Handler) GetUITexts(w http.ResponseWriter, r *http.Request) {
	s, err := h.queries.EnsureSiteSettings(r.Context())
	if err != nil {
		h.writeStoreError(w, err, "site settings")
		return
	}

	overrides := make(map[string]map[string]string)
	for lang, v := range s.UII18n {
		entries, ok := v.(map[string]any)
		if !ok {
			continue
		}
		m := make(map[string]string, len(entries))
		for k, text := range entries {
			if str, ok := text.(string); ok {
				m[k] = str
			}
		}
		overrides[lang] = m
	}
	api.WriteJSON(w, http.StatusOK, UITextsResponse{Keys: sortedUIKeys(), Overrides: overrides})
}

// UpdateUITexts replaces the UI text overrides. The body maps a language
// code to key/text pairs; blank texts are dropped.
func (h *Handler) UpdateUITexts(w http.ResponseWriter, r *http.Request) {
	var body map[string]map[string]string
	if !api.DecodeJSON(w, r, &body) {
		return
	}
	ctx := r.Context()

	langs, err := h.queries.ListLanguages(ctx)
	if err != nil {
		h.writeStoreError(w, err, "site settings")
		return
	}
	knownLang := make(map[string]bool, len(langs))
	for _, l := range langs {
		knownLang[language.Normalize(l.Code)] = true
	}
	knownKey := make(map[string]bool)
	for _, k := range l10n.UIKeys() {
		knownKey[k] = true
	}

	errs := make(map[string]string)
	ui := model.JSONObject{}
	for code, entries := range body {
		lang := language.Normalize(code)
		if !knownLang[lang] {
			errs[code] = "Unsupported language"
			continue
		}
		stored := make(map[string]any)
		for key, text := range entries {
			if !knownKey[key] {
				errs[code+"."+key] = "Unknown UI text key"
				continue
			}
			if text = strings.TrimSpace(text); text != "" {
				stored[key] = text
			}
		}
		if len(stored) > 0 {
			ui[lang] = stored
		}
	}
	if len(errs) > 0 {
		api.WriteValidationError(w, errs)
		return
	}

	if err := h.queries.UpdateSiteUITexts(ctx, ui); err != nil {
		h.writeStoreError(w, err, "site settings")
		return
	}
	h.audit(r, "ui texts updated", map[string]any{"languages": len(ui)})
	h.GetUITexts(w, r)
}

func sortedUIKeys() []string {
	keys := l10n.UIKeys()
	sort.Strings(keys)
	return keys
}
