// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Package navigation builds localized menus.
//
// Menus are read from the menu/menu item tables. A requested menu with no
// published items falls back to the legacy flat navigation table, filtered
// by its menu column. Every item carries a resolved href, a link kind and a
// synthetic dictionary key that lets editors relabel items per language.
package navigation

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/olegiv/folio/internal/l10n"
	"github.com/olegiv/folio/internal/model"
	"github.com/olegiv/folio/internal/store"
	"github.com/olegiv/folio/internal/util"
)

// ErrMenuNotFound is returned when no published menu has the requested code.
var ErrMenuNotFound = errors.New("menu not found")

// Store is the data access used by the Builder.
type Store interface {
	GetPublishedMenu(ctx context.Context, code string) (store.Menu, error)
	ListPublishedMenuItems(ctx context.Context, codes ...string) ([]store.MenuItem, error)
	ListPublishedNavigationItems(ctx context.Context, f store.NavigationFilter) ([]store.NavigationItem, error)
}

// Texts supplies dictionary label overrides.
type Texts interface {
	Text(key, def string) string
}

// ItemView is a resolved menu entry.
type ItemView struct {
	ID           int64  `json:"id"`
	Menu         string `json:"menu"`
	Section      string `json:"section"`
	Slug         string `json:"slug"`
	URLKey       string `json:"url_key"`
	Label        string `json:"label"`
	LabelKey     string `json:"label_key"`
	Kind         string `json:"kind"`
	Href         string `json:"href"`
	PageSlug     string `json:"page_slug,omitempty"`
	OpenInNewTab bool   `json:"open_in_new_tab"`
	Order        int64  `json:"order"`
	Source       string `json:"source"`
}

// IsExternal reports whether the item leaves the site.
func (i ItemView) IsExternal() bool {
	return i.Kind == model.LinkKindExternal
}

// MenuView is a single menu with its items.
type MenuView struct {
	ID       int64      `json:"id"`
	Code     string     `json:"code"`
	Title    string     `json:"title"`
	Location string     `json:"location"`
	Order    int64      `json:"order"`
	Items    []ItemView `json:"items"`
}

// Builder assembles localized menus.
type Builder struct {
	store  Store
	logger *slog.Logger
}

// NewBuilder creates a Builder.
func NewBuilder(s Store, logger *slog.Logger) *Builder {
	if logger == nil {
		logger = slog.Default()
	}
	return &Builder{store: s, logger: logger}
}

// BuildMenus returns the items of every requested menu keyed by menu code.
// Without a filter the default menus plus every menu with published items are
// returned; default menus are present even when empty. When texts is non-nil,
// a non-blank dictionary entry under an item's label key replaces its label.
func (b *Builder) BuildMenus(ctx context.Context, lang, fallback string, texts Texts, menus ...string) (map[string][]ItemView, error) {
	requested := normalizeCodes(menus)

	items, err := b.store.ListPublishedMenuItems(ctx, requested...)
	if err != nil {
		return nil, fmt.Errorf("listing menu items: %w", err)
	}

	out := make(map[string][]ItemView)
	if len(requested) == 0 {
		for _, code := range model.DefaultMenus {
			out[code] = []ItemView{}
		}
	} else {
		for _, code := range requested {
			out[code] = []ItemView{}
		}
	}
	for _, it := range items {
		if _, ok := out[it.MenuCode]; !ok && len(requested) > 0 {
			continue
		}
		out[it.MenuCode] = append(out[it.MenuCode], menuItemView(it, lang, fallback))
	}

	var empty []string
	for code, list := range out {
		if len(list) == 0 {
			empty = append(empty, code)
		}
	}
	if len(empty) > 0 {
		if err := b.fillLegacy(ctx, out, empty, lang, fallback); err != nil {
			return nil, err
		}
	}

	if texts != nil {
		for code, list := range out {
			for i := range list {
				list[i].Label = texts.Text(list[i].LabelKey, list[i].Label)
			}
			out[code] = list
		}
	}
	return out, nil
}

// Menu returns the published menu with code and its own items. Legacy
// navigation items are not consulted.
func (b *Builder) Menu(ctx context.Context, code, lang, fallback string) (*MenuView, error) {
	code = strings.TrimSpace(code)
	m, err := b.store.GetPublishedMenu(ctx, code)
	if errors.Is(err, store.ErrNotFound) {
		return nil, ErrMenuNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("loading menu %q: %w", code, err)
	}

	items, err := b.store.ListPublishedMenuItems(ctx, m.Code)
	if err != nil {
		return nil, fmt.Errorf("listing items of menu %q: %w", m.Code, err)
	}
	view := &MenuView{
		ID:       m.ID,
		Code:     m.Code,
		Title:    l10n.Text(m.Title, m.TitleI18n, lang, fallback),
		Location: m.Location,
		Order:    m.Order,
		Items:    make([]ItemView, 0, len(items)),
	}
	for _, it := range items {
		view.Items = append(view.Items, menuItemView(it, lang, fallback))
	}
	return view, nil
}

// LegacyItems returns the published legacy navigation items matching f.
func (b *Builder) LegacyItems(ctx context.Context, f store.NavigationFilter, lang, fallback string) ([]ItemView, error) {
	rows, err := b.store.ListPublishedNavigationItems(ctx, f)
	if err != nil {
		return nil, fmt.Errorf("listing navigation items: %w", err)
	}
	out := make([]ItemView, 0, len(rows))
	for _, n := range rows {
		out = append(out, legacyItemView(n, lang, fallback))
	}
	return out, nil
}

func (b *Builder) fillLegacy(ctx context.Context, out map[string][]ItemView, empty []string, lang, fallback string) error {
	var f store.NavigationFilter
	if len(empty) == 1 {
		f.Menu = empty[0]
	}
	legacy, err := b.LegacyItems(ctx, f, lang, fallback)
	if err != nil {
		return err
	}
	want := make(map[string]bool, len(empty))
	for _, code := range empty {
		want[code] = true
	}
	used := 0
	for _, it := range legacy {
		if want[it.Menu] {
			out[it.Menu] = append(out[it.Menu], it)
			used++
		}
	}
	if used > 0 {
		b.logger.Debug("menus filled from legacy navigation", "menus", empty, "items", used)
	}
	return nil
}

func menuItemView(it store.MenuItem, lang, fallback string) ItemView {
	label := l10n.Text(it.Label, it.LabelI18n, lang, fallback)
	pageSlug, isHome, linked := linkedPage(it.LinkedPage)

	// Menu items carry no external URL field; an absolute raw href still
	// loses to a linked page.
	href := Href(strings.TrimSpace(it.Href), pageSlug, isHome, linked, "", "")
	kind := Kind(href, linked, "", "")

	var tokenBase string
	switch {
	case linked:
		tokenBase = pageSlug
	case kind != model.LinkKindExternal && strings.TrimLeft(href, "/#") != "":
		tokenBase = strings.TrimLeft(href, "/#")
	default:
		tokenBase = it.Label
	}
	token := util.KeyToken(tokenBase)
	if token == "" {
		token = "item_" + strconv.FormatInt(it.ID, 10)
	}

	slug := util.Slugify(it.Label)
	if slug == "" {
		slug = "item-" + strconv.FormatInt(it.ID, 10)
	}
	var urlKey string
	if kind == model.LinkKindAnchor {
		urlKey = token
	}

	return ItemView{
		ID:           it.ID,
		Menu:         it.MenuCode,
		Section:      model.SectionForMenu(it.MenuCode),
		Slug:         slug,
		URLKey:       urlKey,
		Label:        label,
		LabelKey:     LabelKey(it.MenuCode, token),
		Kind:         kind,
		Href:         href,
		PageSlug:     pageSlug,
		OpenInNewTab: it.OpenInNewTab,
		Order:        it.Order,
		Source:       model.MenuSourceMenu,
	}
}

func legacyItemView(n store.NavigationItem, lang, fallback string) ItemView {
	menu := n.Menu
	if menu == "" {
		menu = model.MenuMain
	}
	section := n.Section
	if section == "" {
		section = model.SectionForMenu(menu)
	}
	pageSlug, isHome, linked := linkedPage(n.LinkedPage)
	urlKey := strings.TrimSpace(n.URLKey)
	external := strings.TrimSpace(n.ExternalURL)
	href := Href(strings.TrimSpace(n.Href), pageSlug, isHome, linked, urlKey, external)

	token := urlKey
	if token == "" {
		token = n.Slug
	}
	if token == "" {
		token = "item-" + strconv.FormatInt(n.ID, 10)
	}

	return ItemView{
		ID:           n.ID,
		Menu:         menu,
		Section:      section,
		Slug:         n.Slug,
		URLKey:       urlKey,
		Label:        l10n.Text(n.Title, n.TitleI18n, lang, fallback),
		LabelKey:     LabelKey(menu, token),
		Kind:         Kind(strings.TrimSpace(n.Href), linked, urlKey, external),
		Href:         href,
		PageSlug:     pageSlug,
		OpenInNewTab: n.OpenInNewTab,
		Order:        n.Order,
		Source:       model.MenuSourceLegacy,
	}
}

func linkedPage(p store.LinkedPage) (slug string, isHome, ok bool) {
	if !p.PageSlug.Valid {
		return "", false, false
	}
	return p.PageSlug.String, p.PageIsHome.Valid && p.PageIsHome.Bool, true
}

func normalizeCodes(codes []string) []string {
	var out []string
	seen := make(map[string]bool, len(codes))
	for _, c := range codes {
		c = strings.TrimSpace(c)
		if c == "" || seen[c] {
			continue
		}
		seen[c] = true
		out = append(out, c)
	}
	return out
}
