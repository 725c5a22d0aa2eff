// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package content

import (
	"context"
	"fmt"

	"github.com/olegiv/folio/internal/l10n"
)

// Collection names, usable as a section key or as a payload "source".
const (
	CollectionExpeditions = "expeditions"
	CollectionCategories  = "categories"
	CollectionStories     = "stories"
)

// collectionListKey is the payload key each collection is projected into.
var collectionListKey = map[string]string{
	CollectionExpeditions: "cards",
	CollectionCategories:  "items",
	CollectionStories:     "items",
}

// Texts supplies dictionary overrides. A nil Texts means no overrides.
type Texts interface {
	Text(key, def string) string
}

func override(t Texts, key, def string) string {
	if t == nil {
		return def
	}
	return t.Text(key, def)
}

// ExpeditionView is a localized expedition.
type ExpeditionView struct {
	ID          int64  `json:"id"`
	Slug        string `json:"slug"`
	Title       string `json:"title"`
	Subtitle    string `json:"subtitle"`
	DateLabel   string `json:"date_label"`
	Description string `json:"description"`
	ImageURL    string `json:"image_url"`
	Order       int64  `json:"order"`
}

// CategoryView is a localized category.
type CategoryView struct {
	ID       int64  `json:"id"`
	Slug     string `json:"slug"`
	Title    string `json:"title"`
	Size     string `json:"size"`
	ImageURL string `json:"image_url"`
	Order    int64  `json:"order"`
}

// StoryView is a localized story.
type StoryView struct {
	ID          int64  `json:"id"`
	Slug        string `json:"slug"`
	Title       string `json:"title"`
	DateLabel   string `json:"date_label"`
	Description string `json:"description"`
	ImageURL    string `json:"image_url"`
	Order       int64  `json:"order"`
}

// Expeditions returns the published expeditions, localized. Dictionary
// entries "expedition.{slug}.{field}" override the resolved values.
func (a *Assembler) Expeditions(ctx context.Context, lang, fallback string, texts Texts) ([]ExpeditionView, error) {
	rows, err := a.store.ListPublishedExpeditions(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing expeditions: %w", err)
	}
	out := make([]ExpeditionView, 0, len(rows))
	for _, e := range rows {
		prefix := "expedition." + e.Slug + "."
		description := l10n.Text(e.Description, e.DescriptionI18n, lang, fallback)
		subtitle := l10n.Text(e.Subtitle, e.SubtitleI18n, lang, fallback)
		if subtitle == "" {
			subtitle = description
		}
		out = append(out, ExpeditionView{
			ID:          e.ID,
			Slug:        e.Slug,
			Title:       override(texts, prefix+"title", l10n.Text(e.Title, e.TitleI18n, lang, fallback)),
			Subtitle:    override(texts, prefix+"subtitle", subtitle),
			DateLabel:   override(texts, prefix+"date_label", l10n.Text(e.DateLabel, e.DateLabelI18n, lang, fallback)),
			Description: override(texts, prefix+"description", description),
			ImageURL:    a.media.Resolve(e.Cover, e.ImageURL, DefaultExpeditionImage),
			Order:       e.Order,
		})
	}
	return out, nil
}

// Categories returns the published categories, localized. Dictionary entries
// "category.{slug}.title" override the resolved title.
func (a *Assembler) Categories(ctx context.Context, lang, fallback string, texts Texts) ([]CategoryView, error) {
	rows, err := a.store.ListPublishedCategories(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing categories: %w", err)
	}
	out := make([]CategoryView, 0, len(rows))
	for _, c := range rows {
		out = append(out, CategoryView{
			ID:       c.ID,
			Slug:     c.Slug,
			Title:    override(texts, "category."+c.Slug+".title", l10n.Text(c.Title, c.TitleI18n, lang, fallback)),
			Size:     c.Size,
			ImageURL: a.media.Resolve(c.Cover, c.ImageURL, DefaultCategoryImage),
			Order:    c.Order,
		})
	}
	return out, nil
}

// Stories returns the published stories, localized. Dictionary entries
// "story.{slug}.{field}" override the resolved values.
func (a *Assembler) Stories(ctx context.Context, lang, fallback string, texts Texts) ([]StoryView, error) {
	rows, err := a.store.ListPublishedStories(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing stories: %w", err)
	}
	out := make([]StoryView, 0, len(rows))
	for _, s := range rows {
		prefix := "story." + s.Slug + "."
		out = append(out, StoryView{
			ID:          s.ID,
			Slug:        s.Slug,
			Title:       override(texts, prefix+"title", l10n.Text(s.Title, s.TitleI18n, lang, fallback)),
			DateLabel:   override(texts, prefix+"date_label", l10n.Text(s.DateLabel, s.DateLabelI18n, lang, fallback)),
			Description: override(texts, prefix+"description", l10n.Text(s.Description, s.DescriptionI18n, lang, fallback)),
			ImageURL:    a.media.Resolve(s.Cover, s.ImageURL, DefaultStoryImage),
			Order:       s.Order,
		})
	}
	return out, nil
}

// projector fills collection-bound section payloads. Each collection is read
// at most once per page.
type projector struct {
	a        *Assembler
	lang     string
	fallback string
	texts    Texts
	cache    map[string][]any
}

// binding returns the collection a section is bound to: the payload's
// "source", else the section key itself.
func binding(key string, payload map[string]any) (string, bool) {
	if src, ok := l10n.String(payload, "source"); ok {
		if _, known := collectionListKey[src]; known {
			return src, true
		}
	}
	if _, known := collectionListKey[key]; known {
		return key, true
	}
	return "", false
}

// fill projects the bound collection into payload unless the payload already
// carries a non-empty list there.
func (p *projector) fill(ctx context.Context, key string, payload map[string]any) error {
	name, ok := binding(key, payload)
	if !ok {
		return nil
	}
	listKey := collectionListKey[name]
	if list, ok := payload[listKey].([]any); ok && len(list) > 0 {
		return nil
	}
	items, err := p.load(ctx, name)
	if err != nil {
		return err
	}
	payload[listKey] = items
	return nil
}

func (p *projector) load(ctx context.Context, name string) ([]any, error) {
	if items, ok := p.cache[name]; ok {
		return cloneList(items), nil
	}
	var items []any
	switch name {
	case CollectionExpeditions:
		rows, err := p.a.Expeditions(ctx, p.lang, p.fallback, p.texts)
		if err != nil {
			return nil, err
		}
		for _, e := range rows {
			items = append(items, map[string]any{
				"slug": e.Slug, "title": e.Title, "subtitle": e.Subtitle, "date_label": e.DateLabel,
				"description": e.Description, "image_url": e.ImageURL,
			})
		}
	case CollectionCategories:
		rows, err := p.a.Categories(ctx, p.lang, p.fallback, p.texts)
		if err != nil {
			return nil, err
		}
		for _, c := range rows {
			items = append(items, map[string]any{
				"slug": c.Slug, "title": c.Title, "size": c.Size, "image_url": c.ImageURL,
			})
		}
	case CollectionStories:
		rows, err := p.a.Stories(ctx, p.lang, p.fallback, p.texts)
		if err != nil {
			return nil, err
		}
		for _, s := range rows {
			items = append(items, map[string]any{
				"slug": s.Slug, "title": s.Title, "date_label": s.DateLabel,
				"description": s.Description, "image_url": s.ImageURL,
			})
		}
	}
	if items == nil {
		items = []any{}
	}
	if p.cache == nil {
		p.cache = make(map[string][]any)
	}
	p.cache[name] = items
	return cloneList(items), nil
}

func cloneList(items []any) []any {
	out := make([]any, len(items))
	for i, it := range items {
		if m, ok := it.(map[string]any); ok {
			c := make(map[string]any, len(m))
			for k, v := range m {
				c[k] = v
			}
			out[i] = c
			continue
		}
		out[i] = it
	}
	return out
}
