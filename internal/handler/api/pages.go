// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package api

import (
	"net/http"
	"sort"

	"github.com/go-chi/chi/v5"

	"github.com/olegiv/folio/internal/content"
	"github.com/olegiv/folio/internal/middleware"
	"github.com/olegiv/folio/internal/model"
	"github.com/olegiv/folio/internal/navigation"
	"github.com/olegiv/folio/internal/store"
)

// Pages lists the published pages.
func (h *Handler) Pages(w http.ResponseWriter, r *http.Request) {
	res := middleware.GetLanguage(r)
	pages, err := h.site.Content.Pages(r.Context(), res.Code, res.Fallback)
	if err != nil {
		h.logger.Error("listing pages failed", "category", model.EventCategoryContent, "error", err)
		WriteInternalError(w, "Failed to list pages")
		return
	}
	WriteJSON(w, http.StatusOK, ItemsResponse[content.PageSummary]{Lang: res.Code, Items: pages})
}

// PageResponse is the payload of GET /api/pages/{slug}.
type PageResponse struct {
	Lang string            `json:"lang"`
	Page *content.PageView `json:"page"`
}

// PageDetail returns one assembled page. The slug "home" addresses the home
// page.
func (h *Handler) PageDetail(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	res := middleware.GetLanguage(r)
	texts := h.site.Texts(ctx, res)

	page, ok := h.assemble(w, r, chi.URLParam(r, "slug"), texts)
	if !ok {
		return
	}
	page.ApplyTexts(texts)
	WriteJSON(w, http.StatusOK, PageResponse{Lang: res.Code, Page: page})
}

// assemble loads a page and writes the error response when it fails.
func (h *Handler) assemble(w http.ResponseWriter, r *http.Request, slug string, texts content.Texts) (*content.PageView, bool) {
	res := middleware.GetLanguage(r)
	a := h.site.Content
	if texts != nil {
		a = a.WithTexts(texts)
	}
	page, err := a.AssemblePage(r.Context(), slug, res.Code, res.Fallback)
	if err != nil {
		if content.IsNotFound(err) {
			WriteNotFound(w, "Page not found.")
			return nil, false
		}
		h.logger.Error("assembling page failed", "category", model.EventCategoryContent, "slug", slug, "error", err)
		WriteInternalError(w, "Failed to load page")
		return nil, false
	}
	return page, true
}

// SiteSettings returns the localized site settings.
func (h *Handler) SiteSettings(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	res := middleware.GetLanguage(r)

	site, err := h.site.Content.Site(ctx, res.Code, res.Fallback)
	if err != nil {
		h.logger.Error("loading site settings failed", "category", model.EventCategoryContent, "error", err)
		WriteInternalError(w, "Failed to load site settings")
		return
	}
	WriteJSON(w, http.StatusOK, site.WithTexts(h.site.Texts(ctx, res)))
}

// BootstrapResponse is the payload of GET /api/site-bootstrap.
type BootstrapResponse struct {
	Lang  string                 `json:"lang"`
	Site  content.SiteView       `json:"site"`
	Page  *content.PageView      `json:"page"`
	Menus []*navigation.MenuView `json:"menus"`
}

// SiteBootstrap returns the site settings, the home page and every menu with
// dictionary overrides applied.
func (h *Handler) SiteBootstrap(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	res := middleware.GetLanguage(r)
	texts := h.site.Texts(ctx, res)

	site, err := h.site.Content.Site(ctx, res.Code, res.Fallback)
	if err != nil {
		h.logger.Error("loading site settings failed", "category", model.EventCategoryContent, "error", err)
		WriteInternalError(w, "Failed to load site settings")
		return
	}
	page, ok := h.assemble(w, r, "", texts)
	if !ok {
		return
	}
	page.ApplyTexts(texts)

	menus, err := h.menuList(r, texts)
	if err != nil {
		h.logger.Error("listing menus failed", "category", model.EventCategoryMenu, "error", err)
		WriteInternalError(w, "Failed to list menus")
		return
	}

	WriteJSON(w, http.StatusOK, BootstrapResponse{
		Lang:  res.Code,
		Site:  site.WithTexts(texts),
		Page:  page,
		Menus: menus,
	})
}

// siteStructure is the site settings with the dictionary key of each
// overridable field.
type siteStructure struct {
	content.SiteView
	BrandKey                 string `json:"brand_key"`
	FooterTitleKey           string `json:"footer_title_key"`
	FooterDescriptionKey     string `json:"footer_description_key"`
	FooterExploreTitleKey    string `json:"footer_explore_title_key"`
	FooterSocialTitleKey     string `json:"footer_social_title_key"`
	FooterNewsletterTitleKey string `json:"footer_newsletter_title_key"`
	NewsletterNoteKey        string `json:"newsletter_note_key"`
}

type pageStructure struct {
	Slug     string `json:"slug"`
	IsActive bool   `json:"is_active"`
	Order    int64  `json:"order"`
}

type sectionStructure struct {
	Key         string               `json:"key"`
	Anchor      string               `json:"anchor"`
	SectionType model.SectionType    `json:"section_type"`
	Order       int64                `json:"order"`
	Title       string               `json:"title"`
	TitleKey    string               `json:"title_key"`
	Subtitle    string               `json:"subtitle"`
	SubtitleKey string               `json:"subtitle_key"`
	Body        string               `json:"body"`
	BodyKey     string               `json:"body_key"`
	Payload     map[string]any       `json:"payload"`
	PayloadKeys map[string]string    `json:"payload_keys"`
	Images      []store.SectionImage `json:"images"`
}

// StructureResponse is the payload of GET /api/site-structure.
type StructureResponse struct {
	Lang      string                           `json:"lang"`
	Languages []languageView                   `json:"languages"`
	Site      siteStructure                    `json:"site"`
	Pages     []pageStructure                  `json:"pages"`
	Menus     map[string][]navigation.ItemView `json:"menus"`
	Sections  []sectionStructure               `json:"sections"`
}

// nonTextPayloadFields are payload strings that never hold display text.
var nonTextPayloadFields = map[string]bool{"anchor": true, "source": true}

// SiteStructure describes the home page together with the dictionary key
// behind every overridable text, for clients that resolve texts themselves.
func (h *Handler) SiteStructure(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	res := middleware.GetLanguage(r)

	site, err := h.site.Content.Site(ctx, res.Code, res.Fallback)
	if err != nil {
		h.logger.Error("loading site settings failed", "category", model.EventCategoryContent, "error", err)
		WriteInternalError(w, "Failed to load site settings")
		return
	}
	pages, err := h.site.Queries.ListPublishedPages(ctx)
	if err != nil {
		h.logger.Error("listing pages failed", "category", model.EventCategoryContent, "error", err)
		WriteInternalError(w, "Failed to list pages")
		return
	}
	menus, err := h.site.Navigation.BuildMenus(ctx, res.Code, res.Fallback, nil)
	if err != nil {
		h.logger.Error("building menus failed", "category", model.EventCategoryMenu, "error", err)
		WriteInternalError(w, "Failed to build menus")
		return
	}
	home, ok := h.assemble(w, r, "", nil)
	if !ok {
		return
	}

	resp := StructureResponse{
		Lang:      res.Code,
		Languages: languageViews(res.Languages),
		Site: siteStructure{
			SiteView:                 site,
			BrandKey:                 content.KeyBrandName,
			FooterTitleKey:           content.KeyFooterTitle,
			FooterDescriptionKey:     content.KeyFooterDescription,
			FooterExploreTitleKey:    content.KeyFooterExploreTitle,
			FooterSocialTitleKey:     content.KeyFooterSocialTitle,
			FooterNewsletterTitleKey: content.KeyFooterNewsletterTitle,
			NewsletterNoteKey:        content.KeyNewsletterNote,
		},
		Pages:    make([]pageStructure, 0, len(pages)),
		Menus:    menus,
		Sections: make([]sectionStructure, 0, len(home.Sections)),
	}
	for _, p := range pages {
		resp.Pages = append(resp.Pages, pageStructure{Slug: p.Slug, IsActive: p.IsActive, Order: p.Order})
	}
	sort.SliceStable(resp.Pages, func(i, j int) bool { return resp.Pages[i].Order < resp.Pages[j].Order })

	for _, s := range home.Sections {
		resp.Sections = append(resp.Sections, sectionStructure{
			Key:         s.Key,
			Anchor:      s.Anchor,
			SectionType: s.SectionType,
			Order:       s.Order,
			Title:       s.Title,
			TitleKey:    content.SectionTextKey(s.Key, "title"),
			Subtitle:    s.Subtitle,
			SubtitleKey: content.SectionTextKey(s.Key, "subtitle"),
			Body:        s.Body,
			BodyKey:     content.SectionTextKey(s.Key, "body"),
			Payload:     s.Payload,
			PayloadKeys: payloadKeys(s.Key, s.Payload),
			Images:      s.Images,
		})
	}
	WriteJSON(w, http.StatusOK, resp)
}

// payloadKeys maps each text field of payload to its dictionary key.
func payloadKeys(sectionKey string, payload map[string]any) map[string]string {
	out := make(map[string]string)
	for field, v := range payload {
		if _, ok := v.(string); !ok || nonTextPayloadFields[field] {
			continue
		}
		out[field] = content.SectionTextKey(sectionKey, field)
	}
	return out
}
