// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package api

import (
	"errors"
	"net/http"
	"sort"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/olegiv/folio/internal/content"
	"github.com/olegiv/folio/internal/language"
	"github.com/olegiv/folio/internal/middleware"
	"github.com/olegiv/folio/internal/model"
	"github.com/olegiv/folio/internal/navigation"
	"github.com/olegiv/folio/internal/store"
)

// ContentResponse is the payload of GET /api/content.
type ContentResponse struct {
	Lang        string                `json:"lang"`
	DefaultLang string                `json:"default_lang"`
	Languages   []languageView        `json:"languages"`
	Site        content.SiteView      `json:"site"`
	Texts       map[string]string     `json:"texts"`
	Pages       []content.PageSummary `json:"pages"`
}

// Content returns everything a client needs to render the site chrome in
// one language.
func (h *Handler) Content(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	res := middleware.GetLanguage(r)

	site, err := h.site.Content.Site(ctx, res.Code, res.Fallback)
	if err != nil {
		h.logger.Error("loading site settings failed", "category", model.EventCategoryContent, "error", err)
		WriteInternalError(w, "Failed to load site settings")
		return
	}
	pages, err := h.site.Content.Pages(ctx, res.Code, res.Fallback)
	if err != nil {
		h.logger.Error("listing pages failed", "category", model.EventCategoryContent, "error", err)
		WriteInternalError(w, "Failed to list pages")
		return
	}

	WriteJSON(w, http.StatusOK, ContentResponse{
		Lang:        res.Code,
		DefaultLang: res.Fallback,
		Languages:   languageViews(res.Languages),
		Site:        site,
		Texts:       h.site.Texts(ctx, res).Entries,
		Pages:       pages,
	})
}

// I18n returns the translation dictionary of the request language.
func (h *Handler) I18n(w http.ResponseWriter, r *http.Request) {
	res := middleware.GetLanguage(r)
	WriteJSON(w, http.StatusOK, h.site.Texts(r.Context(), res).Entries)
}

type setLanguageRequest struct {
	Lang string `json:"lang"`
}

// SetLanguage stores an explicit language choice in the language cookie.
func (h *Handler) SetLanguage(w http.ResponseWriter, r *http.Request) {
	var req setLanguageRequest
	if !DecodeJSON(w, r, &req) {
		return
	}
	if req.Lang == "" {
		req.Lang = r.URL.Query().Get("lang")
	}

	l, err := h.site.Languages.SetLanguage(r.Context(), req.Lang)
	if err != nil {
		if errors.Is(err, language.ErrUnsupportedLanguage) {
			WriteBadRequest(w, "Unsupported language.", nil)
			return
		}
		h.logger.Error("listing languages failed", "category", model.EventCategoryLanguage, "error", err)
		WriteInternalError(w, "Failed to set language")
		return
	}

	middleware.SetLanguageCookie(w, l.Code, !h.isDev)
	w.Header().Set("Content-Language", l.Code)
	WriteJSON(w, http.StatusOK, map[string]string{"lang": l.Code})
}

// NavigationResponse is the payload of GET /api/navigation.
type NavigationResponse struct {
	Lang  string                           `json:"lang"`
	Menus map[string][]navigation.ItemView `json:"menus"`
}

// Navigation returns the items of the menus named by the menu query
// parameter, or of every menu when it is absent.
func (h *Handler) Navigation(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	res := middleware.GetLanguage(r)
	texts := h.site.Texts(ctx, res)

	menus, err := h.site.Navigation.BuildMenus(ctx, res.Code, res.Fallback, texts, menuCodes(r)...)
	if err != nil {
		h.logger.Error("building menus failed", "category", model.EventCategoryMenu, "error", err)
		WriteInternalError(w, "Failed to build menus")
		return
	}
	WriteJSON(w, http.StatusOK, NavigationResponse{Lang: res.Code, Menus: menus})
}

// menuCodes reads the menu query parameter, repeated or comma separated.
func menuCodes(r *http.Request) []string {
	var codes []string
	for _, v := range r.URL.Query()["menu"] {
		for _, c := range strings.Split(v, ",") {
			if c = strings.TrimSpace(c); c != "" {
				codes = append(codes, c)
			}
		}
	}
	return codes
}

// MenuResponse is the payload of GET /api/menus/{code}.
type MenuResponse struct {
	Lang string               `json:"lang"`
	Menu *navigation.MenuView `json:"menu"`
}

// MenuDetail returns one published menu with its items.
func (h *Handler) MenuDetail(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	res := middleware.GetLanguage(r)

	menu, err := h.site.Navigation.Menu(ctx, chi.URLParam(r, "code"), res.Code, res.Fallback)
	if err != nil {
		if errors.Is(err, navigation.ErrMenuNotFound) {
			WriteNotFound(w, "Menu not found.")
			return
		}
		h.logger.Error("loading menu failed", "category", model.EventCategoryMenu, "error", err)
		WriteInternalError(w, "Failed to load menu")
		return
	}
	applyLabelTexts(menu.Items, h.site.Texts(ctx, res))
	WriteJSON(w, http.StatusOK, MenuResponse{Lang: res.Code, Menu: menu})
}

// ItemsResponse wraps a localized list.
type ItemsResponse[T any] struct {
	Lang  string `json:"lang"`
	Items []T    `json:"items"`
}

// NavigationItems returns legacy navigation items filtered by the menu and
// section query parameters.
func (h *Handler) NavigationItems(w http.ResponseWriter, r *http.Request) {
	res := middleware.GetLanguage(r)
	f := store.NavigationFilter{
		Menu:    strings.TrimSpace(r.URL.Query().Get("menu")),
		Section: strings.TrimSpace(r.URL.Query().Get("section")),
	}

	items, err := h.site.Navigation.LegacyItems(r.Context(), f, res.Code, res.Fallback)
	if err != nil {
		h.logger.Error("listing navigation items failed", "category", model.EventCategoryMenu, "error", err)
		WriteInternalError(w, "Failed to list navigation items")
		return
	}
	WriteJSON(w, http.StatusOK, ItemsResponse[navigation.ItemView]{Lang: res.Code, Items: items})
}

// menuList returns every published menu in (order, code) order with
// dictionary labels applied.
func (h *Handler) menuList(r *http.Request, texts navigation.Texts) ([]*navigation.MenuView, error) {
	ctx := r.Context()
	res := middleware.GetLanguage(r)

	menus, err := h.site.Queries.ListPublishedMenus(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]*navigation.MenuView, 0, len(menus))
	for _, m := range menus {
		view, err := h.site.Navigation.Menu(ctx, m.Code, res.Code, res.Fallback)
		if errors.Is(err, navigation.ErrMenuNotFound) {
			continue
		}
		if err != nil {
			return nil, err
		}
		applyLabelTexts(view.Items, texts)
		out = append(out, view)
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Order != out[j].Order {
			return out[i].Order < out[j].Order
		}
		return out[i].Code < out[j].Code
	})
	return out, nil
}

func applyLabelTexts(items []navigation.ItemView, texts navigation.Texts) {
	for i := range items {
		items[i].Label = texts.Text(items[i].LabelKey, items[i].Label)
	}
}
