// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/olegiv/folio/internal/content"
	"github.com/olegiv/folio/internal/dictionary"
	"github.com/olegiv/folio/internal/l10n"
	"github.com/olegiv/folio/internal/language"
	"github.com/olegiv/folio/internal/middleware"
	"github.com/olegiv/folio/internal/model"
	"github.com/olegiv/folio/internal/navigation"
	"github.com/olegiv/folio/internal/render"
	"github.com/olegiv/folio/internal/service"
	"github.com/olegiv/folio/internal/session"
	"github.com/olegiv/folio/internal/util"
)

// uiTextKeys maps UI label keys to the dictionary keys that override them.
var uiTextKeys = map[string]string{
	l10n.UIDetailLocation:            "detail.location",
	l10n.UIDetailEmail:               "detail.email",
	l10n.UIDetailSocials:             "detail.socials",
	l10n.UIContactNameLabel:          "form.name.label",
	l10n.UIContactNamePlaceholder:    "form.name.placeholder",
	l10n.UIContactEmailLabel:         "form.email.label",
	l10n.UIContactEmailPlaceholder:   "form.email.placeholder",
	l10n.UIContactMessageLabel:       "form.message.label",
	l10n.UIContactMessagePlaceholder: "form.message.placeholder",
	l10n.UIContactSubmit:             "form.submit",
	l10n.UIContactSuccess:            "form.success",
	l10n.UIContactErrorDefault:       "form.error",
	l10n.UINewsletterPlaceholder:     "newsletter.placeholder",
	l10n.UINewsletterButton:          "newsletter.button",
}

// PageData is the template data of a server-rendered page.
type PageData struct {
	Lang       string
	StaticURL  string
	Site       content.SiteView
	Page       *content.PageView
	Hero       content.HeroView
	Labels     map[string]string
	MainMenu   []navigation.ItemView
	FooterMenu []navigation.ItemView
	SocialMenu []navigation.ItemView
	Languages  []content.LanguageSwitch
	// Next is the path the contact form returns to.
	Next string
}

// SectionBlock is what a section template receives.
type SectionBlock struct {
	Section    content.SectionView
	Labels     map[string]string
	SocialMenu []navigation.ItemView
	Next       string
}

// Block pairs a section with the page-wide data its template needs.
func (d PageData) Block(s content.SectionView) SectionBlock {
	return SectionBlock{Section: s, Labels: d.Labels, SocialMenu: d.SocialMenu, Next: d.Next}
}

// FrontendHandler serves the server-rendered public pages.
type FrontendHandler struct {
	site      *Site
	renderer  *render.Renderer
	contact   *service.ContactService
	staticURL string
	logger    *slog.Logger
}

// NewFrontendHandler creates a new FrontendHandler.
func NewFrontendHandler(site *Site, renderer *render.Renderer, contact *service.ContactService, staticURL string, logger *slog.Logger) *FrontendHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &FrontendHandler{
		site:      site,
		renderer:  renderer,
		contact:   contact,
		staticURL: staticURL,
		logger:    logger,
	}
}

// Home handles GET /.
func (h *FrontendHandler) Home(w http.ResponseWriter, r *http.Request) {
	h.renderPage(w, r, "")
}

// Page handles GET /{slug}/.
func (h *FrontendHandler) Page(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")
	if !util.IsValidSlug(slug) {
		h.renderNotFound(w, r)
		return
	}
	h.renderPage(w, r, slug)
}

// NotFound renders the 404 page for unmatched routes.
func (h *FrontendHandler) NotFound(w http.ResponseWriter, r *http.Request) {
	h.renderNotFound(w, r)
}

// Contact handles POST /contact/ and redirects back with a flash message.
func (h *FrontendHandler) Contact(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	res := middleware.GetLanguage(r)
	texts := h.site.Texts(ctx, res)
	labels := h.labels(ctx, res, texts)

	next := SafeRedirect(r.FormValue("next"))

	_, err := h.contact.Submit(ctx, service.ContactSubmission{
		Name:    r.FormValue("name"),
		Email:   r.FormValue("email"),
		Message: r.FormValue("message"),
	})
	if err != nil {
		var verr *service.ValidationError
		if !errors.As(err, &verr) {
			h.logger.Error("saving contact message failed", "category", model.EventCategoryContact, "error", err)
		}
		h.renderer.SetFlash(r, labels[l10n.UIContactErrorDefault], session.FlashError)
	} else {
		h.renderer.SetFlash(r, labels[l10n.UIContactSuccess], session.FlashSuccess)
	}

	http.Redirect(w, r, next, http.StatusSeeOther)
}

func (h *FrontendHandler) renderPage(w http.ResponseWriter, r *http.Request, slug string) {
	ctx := r.Context()
	res := middleware.GetLanguage(r)
	texts := h.site.Texts(ctx, res)

	page, err := h.site.Content.WithTexts(texts).AssemblePage(ctx, slug, res.Code, res.Fallback)
	if err != nil {
		if content.IsNotFound(err) {
			h.renderNotFound(w, r)
			return
		}
		h.logger.Error("assembling page failed", "category", model.EventCategoryContent, "slug", slug, "error", err)
		h.renderError(w, r)
		return
	}
	page.ApplyTexts(texts)

	data, err := h.pageData(r, page, texts)
	if err != nil {
		h.logger.Error("loading page chrome failed", "slug", slug, "error", err)
		h.renderError(w, r)
		return
	}

	title := page.SeoTitle
	if title == "" {
		title = data.Site.BrandName
		if !page.IsHome && page.Title != "" {
			title = page.Title + " · " + data.Site.BrandName
		}
	}
	description := page.SeoDescription
	if description == "" {
		description = data.Site.SeoDescription
	}

	h.render(w, r, http.StatusOK, "pages/page", render.TemplateData{
		Title:       title,
		Description: description,
		Lang:        res.Code,
		Data:        data,
	})
}

// pageData loads everything around the page: site settings, menus, labels
// and the language switcher. page may be nil.
func (h *FrontendHandler) pageData(r *http.Request, page *content.PageView, texts dictionary.Dictionary) (PageData, error) {
	ctx := r.Context()
	res := middleware.GetLanguage(r)

	site, err := h.site.Content.Site(ctx, res.Code, res.Fallback)
	if err != nil {
		return PageData{}, err
	}
	site = site.WithTexts(texts)

	menus, err := h.site.Navigation.BuildMenus(ctx, res.Code, res.Fallback, texts,
		model.MenuMain, model.MenuFooter, model.MenuSocial)
	if err != nil {
		return PageData{}, err
	}

	next := "/"
	if page != nil && !page.IsHome {
		next = "/" + page.Slug + "/"
	}

	return PageData{
		Lang:       res.Code,
		StaticURL:  h.staticURL,
		Site:       site,
		Page:       page,
		Hero:       h.site.Content.Hero(page, texts, site.BrandName),
		Labels:     labelsFor(site.UI, texts),
		MainMenu:   menus[model.MenuMain],
		FooterMenu: menus[model.MenuFooter],
		SocialMenu: menus[model.MenuSocial],
		Languages:  content.LanguageSwitches(page, res.Languages, res.Code, texts),
		Next:       next,
	}, nil
}

// labels returns the UI labels for res, falling back to the built-in
// strings when the site settings cannot be read.
func (h *FrontendHandler) labels(ctx context.Context, res language.Resolution, texts dictionary.Dictionary) map[string]string {
	site, err := h.site.Content.Site(ctx, res.Code, res.Fallback)
	if err != nil {
		h.logger.Warn("loading site settings failed", "error", err)
		return labelsFor(l10n.UITexts(nil, res.Code, res.Fallback), texts)
	}
	return labelsFor(site.UI, texts)
}

// labelsFor overlays dictionary entries on the UI texts.
func labelsFor(ui map[string]string, texts dictionary.Dictionary) map[string]string {
	out := make(map[string]string, len(ui))
	for k, v := range ui {
		out[k] = v
	}
	for uiKey, textKey := range uiTextKeys {
		out[uiKey] = texts.Text(textKey, out[uiKey])
	}
	return out
}

func (h *FrontendHandler) renderNotFound(w http.ResponseWriter, r *http.Request) {
	res := middleware.GetLanguage(r)
	texts := h.site.Texts(r.Context(), res)

	data, err := h.pageData(r, nil, texts)
	if err != nil {
		h.logger.Error("loading page chrome failed", "error", err)
		http.NotFound(w, r)
		return
	}
	h.render(w, r, http.StatusNotFound, "pages/not_found", render.TemplateData{
		Title: data.Site.BrandName,
		Lang:  res.Code,
		Data:  data,
	})
}

func (h *FrontendHandler) render(w http.ResponseWriter, r *http.Request, status int, name string, data render.TemplateData) {
	if err := h.renderer.Render(w, r, status, name, data); err != nil {
		h.logger.Error("failed to render template", "template", name, "error", err)
		h.renderError(w, r)
	}
}

func (h *FrontendHandler) renderError(w http.ResponseWriter, _ *http.Request) {
	http.Error(w, "Internal Server Error", http.StatusInternalServerError)
}

// SafeRedirect returns next when it is a local absolute path, else "/".
func SafeRedirect(next string) string {
	next = strings.TrimSpace(next)
	if next == "" || !strings.HasPrefix(next, "/") || strings.HasPrefix(next, "//") || strings.ContainsAny(next, "\\\r\n") {
		return "/"
	}
	u, err := url.Parse(next)
	if err != nil || u.IsAbs() || u.Host != "" {
		return "/"
	}
	return next
}
