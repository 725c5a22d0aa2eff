// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Package content assembles localized page trees and content collections.
package content

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/olegiv/folio/internal/l10n"
	"github.com/olegiv/folio/internal/model"
	"github.com/olegiv/folio/internal/store"
)

var (
	// ErrNoContent means there is no published, active page at all.
	ErrNoContent = errors.New("no content")
	// ErrPageNotFound means the requested page does not exist or is hidden.
	ErrPageNotFound = errors.New("page not found")
)

// IsNotFound reports whether err is one of the not-found results.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNoContent) || errors.Is(err, ErrPageNotFound)
}

// Store is the subset of store.Queries the assembler reads.
type Store interface {
	GetHomePage(ctx context.Context) (store.Page, error)
	ListPublishedPages(ctx context.Context) ([]store.Page, error)
	GetPublishedPageBySlug(ctx context.Context, slug string) (store.Page, error)
	ListPublishedSections(ctx context.Context, pageID int64) ([]store.PageSection, error)
	ListPublishedSectionImages(ctx context.Context, sectionIDs []int64) ([]store.SectionImage, error)
	ListPublishedExpeditions(ctx context.Context) ([]store.Expedition, error)
	ListPublishedCategories(ctx context.Context) ([]store.Category, error)
	ListPublishedStories(ctx context.Context) ([]store.Story, error)
	EnsureSiteSettings(ctx context.Context) (store.SiteSettings, error)
}

// PageView is a fully localized page.
type PageView struct {
	ID             int64         `json:"id"`
	Slug           string        `json:"slug"`
	Title          string        `json:"title"`
	IsHome         bool          `json:"is_home"`
	Order          int64         `json:"order"`
	IsPublished    bool          `json:"is_published"`
	SeoTitle       string        `json:"seo_title"`
	SeoDescription string        `json:"seo_description"`
	SeoImage       string        `json:"seo_image"`
	Sections       []SectionView `json:"sections"`
	CreatedAt      time.Time     `json:"created_at"`
	UpdatedAt      time.Time     `json:"updated_at"`
}

// Section returns the section with key, or nil.
func (p *PageView) Section(key string) *SectionView {
	for i := range p.Sections {
		if p.Sections[i].Key == key {
			return &p.Sections[i]
		}
	}
	return nil
}

// SectionTextKey returns the dictionary key of a section field, such as
// "section.journal_intro.title" for key "journal-intro".
func SectionTextKey(sectionKey, field string) string {
	return "section." + strings.ReplaceAll(sectionKey, "-", "_") + "." + field
}

// ApplyTexts replaces section titles and subtitles with their non-blank
// dictionary entries.
func (p *PageView) ApplyTexts(texts Texts) {
	for i := range p.Sections {
		s := &p.Sections[i]
		s.Title = override(texts, SectionTextKey(s.Key, "title"), s.Title)
		s.Subtitle = override(texts, SectionTextKey(s.Key, "subtitle"), s.Subtitle)
	}
}

// SectionView is a localized page section.
type SectionView struct {
	ID          int64                `json:"id"`
	Key         string               `json:"key"`
	Anchor      string               `json:"anchor"`
	SectionType model.SectionType    `json:"section_type"`
	Title       string               `json:"title"`
	Subtitle    string               `json:"subtitle"`
	Body        string               `json:"body"`
	Payload     map[string]any       `json:"payload"`
	Typed       Payload              `json:"-"`
	Order       int64                `json:"order"`
	IsPublished bool                 `json:"is_published"`
	Images      []store.SectionImage `json:"images"`
}

// PageSummary is an entry of the page list.
type PageSummary struct {
	Slug   string `json:"slug"`
	Title  string `json:"title"`
	IsHome bool   `json:"is_home"`
	Order  int64  `json:"order"`
}

// Assembler builds localized views from the store.
type Assembler struct {
	store Store
	media MediaURLs
	texts Texts
}

// NewAssembler creates an Assembler.
func NewAssembler(s Store, media MediaURLs) *Assembler {
	return &Assembler{store: s, media: media}
}

// WithTexts returns a copy of a whose projected collections take dictionary
// overrides from texts.
func (a *Assembler) WithTexts(texts Texts) *Assembler {
	c := *a
	c.texts = texts
	return &c
}

// Media returns the media URL resolver in use.
func (a *Assembler) Media() MediaURLs {
	return a.media
}

// AssemblePage returns the localized page with slug. An empty slug selects the
// home page. The slug "home" aliases the home page when no page has that slug.
func (a *Assembler) AssemblePage(ctx context.Context, slug, lang, fallback string) (*PageView, error) {
	page, err := a.findPage(ctx, strings.TrimSpace(slug))
	if err != nil {
		return nil, err
	}

	sections, err := a.store.ListPublishedSections(ctx, page.ID)
	if err != nil {
		return nil, fmt.Errorf("listing sections of page %d: %w", page.ID, err)
	}
	sort.SliceStable(sections, func(i, j int) bool {
		return before(sections[i].Order, sections[i].ID, sections[j].Order, sections[j].ID)
	})

	images, err := a.sectionImages(ctx, sections)
	if err != nil {
		return nil, err
	}

	view := &PageView{
		ID:             page.ID,
		Slug:           page.Slug,
		Title:          l10n.Text(page.Title, page.TitleI18n, lang, fallback),
		IsHome:         page.IsHome,
		Order:          page.Order,
		IsPublished:    page.IsPublished,
		SeoTitle:       l10n.Text(page.SeoTitle, page.SeoTitleI18n, lang, fallback),
		SeoDescription: l10n.Text(page.SeoDescription, page.SeoDescriptionI18n, lang, fallback),
		SeoImage:       page.SeoImage,
		Sections:       make([]SectionView, 0, len(sections)),
		CreatedAt:      page.CreatedAt,
		UpdatedAt:      page.UpdatedAt,
	}

	proj := &projector{a: a, lang: lang, fallback: fallback, texts: a.texts}
	for _, s := range sections {
		payload := l10n.Dict(s.Payload, s.PayloadI18n, lang, fallback)
		if err := proj.fill(ctx, s.Key, payload); err != nil {
			return nil, err
		}
		imgs := images[s.ID]
		if imgs == nil {
			imgs = []store.SectionImage{}
		}
		view.Sections = append(view.Sections, SectionView{
			ID:          s.ID,
			Key:         s.Key,
			Anchor:      Anchor(s.Key, payload),
			SectionType: s.SectionType,
			Title:       l10n.Text(s.Title, s.TitleI18n, lang, fallback),
			Subtitle:    l10n.Text(s.Subtitle, s.SubtitleI18n, lang, fallback),
			Body:        l10n.Text(s.Body, s.BodyI18n, lang, fallback),
			Payload:     payload,
			Typed:       DecodePayload(s.SectionType, payload),
			Order:       s.Order,
			IsPublished: s.IsPublished,
			Images:      imgs,
		})
	}
	return view, nil
}

// Pages lists the published, active pages with localized titles.
func (a *Assembler) Pages(ctx context.Context, lang, fallback string) ([]PageSummary, error) {
	pages, err := a.store.ListPublishedPages(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing pages: %w", err)
	}
	out := make([]PageSummary, 0, len(pages))
	for _, p := range pages {
		out = append(out, PageSummary{
			Slug:   p.Slug,
			Title:  l10n.Text(p.Title, p.TitleI18n, lang, fallback),
			IsHome: p.IsHome,
			Order:  p.Order,
		})
	}
	return out, nil
}

// Anchor returns the in-page anchor of a section: the payload's own non-blank
// anchor, else "journey" for the hero section, else the section key.
func Anchor(key string, payload map[string]any) string {
	if v, ok := l10n.String(payload, "anchor"); ok {
		return strings.TrimSpace(v)
	}
	if key == model.SectionKeyHero {
		return model.HeroAnchor
	}
	return key
}

func (a *Assembler) findPage(ctx context.Context, slug string) (store.Page, error) {
	if slug == "" {
		return a.homePage(ctx)
	}
	page, err := a.store.GetPublishedPageBySlug(ctx, slug)
	if err == nil {
		return page, nil
	}
	if !errors.Is(err, store.ErrNotFound) {
		return store.Page{}, fmt.Errorf("loading page %q: %w", slug, err)
	}
	if slug == model.HomeSlug {
		return a.homePage(ctx)
	}
	return store.Page{}, ErrPageNotFound
}

// homePage returns the page flagged home, else the first published page.
func (a *Assembler) homePage(ctx context.Context) (store.Page, error) {
	page, err := a.store.GetHomePage(ctx)
	if err == nil {
		return page, nil
	}
	if !errors.Is(err, store.ErrNotFound) {
		return store.Page{}, fmt.Errorf("loading home page: %w", err)
	}
	pages, err := a.store.ListPublishedPages(ctx)
	if err != nil {
		return store.Page{}, fmt.Errorf("listing pages: %w", err)
	}
	if len(pages) == 0 {
		return store.Page{}, ErrNoContent
	}
	sort.SliceStable(pages, func(i, j int) bool {
		return before(pages[i].Order, pages[i].ID, pages[j].Order, pages[j].ID)
	})
	return pages[0], nil
}

func (a *Assembler) sectionImages(ctx context.Context, sections []store.PageSection) (map[int64][]store.SectionImage, error) {
	ids := make([]int64, 0, len(sections))
	for _, s := range sections {
		ids = append(ids, s.ID)
	}
	images, err := a.store.ListPublishedSectionImages(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("listing section images: %w", err)
	}
	out := make(map[int64][]store.SectionImage, len(sections))
	for _, img := range images {
		if !img.IsPublished {
			continue
		}
		out[img.SectionID] = append(out[img.SectionID], img)
	}
	for id := range out {
		imgs := out[id]
		sort.SliceStable(imgs, func(i, j int) bool {
			return before(imgs[i].Order, imgs[i].ID, imgs[j].Order, imgs[j].ID)
		})
	}
	return out, nil
}

// before orders by (order, id) ascending.
func before(orderA, idA, orderB, idB int64) bool {
	if orderA != orderB {
		return orderA < orderB
	}
	return idA < idB
}
