// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package navigation

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/olegiv/folio/internal/dictionary"
	"github.com/olegiv/folio/internal/model"
	"github.com/olegiv/folio/internal/store"
	"github.com/olegiv/folio/internal/testutil"
)

type fakeStore struct {
	menus      map[string]store.Menu
	items      []store.MenuItem
	legacy     []store.NavigationItem
	legacyErr  error
	legacyHits int
}

func (f *fakeStore) GetPublishedMenu(_ context.Context, code string) (store.Menu, error) {
	m, ok := f.menus[code]
	if !ok {
		return store.Menu{}, store.ErrNotFound
	}
	return m, nil
}

func (f *fakeStore) ListPublishedMenuItems(_ context.Context, codes ...string) ([]store.MenuItem, error) {
	if len(codes) == 0 {
		return f.items, nil
	}
	want := map[string]bool{}
	for _, c := range codes {
		want[c] = true
	}
	var out []store.MenuItem
	for _, it := range f.items {
		if want[it.MenuCode] {
			out = append(out, it)
		}
	}
	return out, nil
}

func (f *fakeStore) ListPublishedNavigationItems(_ context.Context, nf store.NavigationFilter) ([]store.NavigationItem, error) {
	f.legacyHits++
	if f.legacyErr != nil {
		return nil, f.legacyErr
	}
	var out []store.NavigationItem
	for _, n := range f.legacy {
		if nf.Menu != "" && n.Menu != nf.Menu {
			continue
		}
		if nf.Section != "" && n.Section != nf.Section {
			continue
		}
		out = append(out, n)
	}
	return out, nil
}

func linked(slug string, home bool) store.LinkedPage {
	return store.LinkedPage{
		PageSlug:   sql.NullString{String: slug, Valid: true},
		PageIsHome: sql.NullBool{Bool: home, Valid: true},
	}
}

func TestBuildMenusDefaultsAlwaysPresent(t *testing.T) {
	b := NewBuilder(&fakeStore{}, testutil.TestLogger())
	menus, err := b.BuildMenus(context.Background(), "en", "en", nil)
	require.NoError(t, err)

	for _, code := range model.DefaultMenus {
		list, ok := menus[code]
		assert.True(t, ok, code)
		assert.NotNil(t, list, code)
		assert.Empty(t, list, code)
	}
}

func TestBuildMenusModernItems(t *testing.T) {
	fs := &fakeStore{items: []store.MenuItem{
		{ID: 1, MenuCode: "main", Label: "Journey", LabelI18n: model.Translations{"ru": "Путь"}, Href: "/#journey", Order: 1},
		{ID: 2, MenuCode: "main", Label: "About", Order: 2, LinkedPage: linked("about", false)},
		{ID: 3, MenuCode: "main", Label: "Home", Href: "/ignored", Order: 3, LinkedPage: linked("home", true)},
		{ID: 4, MenuCode: "social", Label: "Mail", Href: "mailto:me@example.com", OpenInNewTab: true},
		{ID: 5, MenuCode: "footer", Label: "", Href: ""},
		{ID: 6, MenuCode: "extra", Label: "Press kit", Href: "/press/"},
	}}
	b := NewBuilder(fs, testutil.TestLogger())

	menus, err := b.BuildMenus(context.Background(), "ru", "en", nil)
	require.NoError(t, err)

	main := menus["main"]
	require.Len(t, main, 3)
	assert.Equal(t, ItemView{
		ID: 1, Menu: "main", Section: "header", Slug: "journey", URLKey: "journey",
		Label: "Путь", LabelKey: "nav.journey", Kind: model.LinkKindAnchor, Href: "/#journey",
		Order: 1, Source: model.MenuSourceMenu,
	}, main[0])
	assert.Equal(t, "/about/", main[1].Href)
	assert.Equal(t, model.LinkKindPage, main[1].Kind)
	assert.Equal(t, "nav.about", main[1].LabelKey)
	assert.Equal(t, "about", main[1].PageSlug)
	assert.Equal(t, "/", main[2].Href, "linked page wins over the raw href")

	social := menus["social"]
	require.Len(t, social, 1)
	assert.Equal(t, "mailto:me@example.com", social[0].Href)
	assert.Equal(t, model.LinkKindExternal, social[0].Kind)
	assert.Equal(t, "social.mail", social[0].LabelKey)
	assert.Equal(t, "footer", social[0].Section)
	assert.True(t, social[0].IsExternal())

	footer := menus["footer"]
	require.Len(t, footer, 1)
	assert.Equal(t, "#", footer[0].Href)
	assert.Equal(t, "footer.nav.item_5", footer[0].LabelKey)
	assert.Equal(t, "item-5", footer[0].Slug)

	assert.Len(t, menus["extra"], 1, "non-default menus are included without a filter")
	assert.Zero(t, fs.legacyHits, "no menu is empty")
}

func TestBuildMenusMenuItemSources(t *testing.T) {
	raws := []string{"/custom/", "#contact", "/#contact", "https://example.com/x", "mailto:me@example.com", ""}
	pages := []struct {
		name string
		page store.LinkedPage
	}{
		{"home page", linked("home", true)},
		{"about page", linked("about", false)},
		{"no page", store.LinkedPage{}},
	}

	for _, p := range pages {
		for _, raw := range raws {
			t.Run(p.name+" "+raw, func(t *testing.T) {
				fs := &fakeStore{items: []store.MenuItem{
					{ID: 7, MenuCode: "main", Label: "Item", Href: raw, LinkedPage: p.page},
				}}
				menus, err := NewBuilder(fs, testutil.TestLogger()).BuildMenus(context.Background(), "en", "en", nil, "main")
				require.NoError(t, err)
				require.Len(t, menus["main"], 1)
				item := menus["main"][0]

				wantHref, wantKind := raw, ""
				switch {
				case p.name == "home page":
					wantHref, wantKind = "/", model.LinkKindPage
				case p.name == "about page":
					wantHref, wantKind = "/about/", model.LinkKindPage
				case raw == "":
					wantHref, wantKind = "#", model.LinkKindAnchor
				case raw == "/custom/":
					wantKind = model.LinkKindPage
				case raw == "#contact", raw == "/#contact":
					wantKind = model.LinkKindAnchor
				default:
					wantKind = model.LinkKindExternal
				}
				assert.Equal(t, wantHref, item.Href)
				assert.Equal(t, wantKind, item.Kind)
			})
		}
	}
}

func TestBuildMenusLegacyFallback(t *testing.T) {
	fs := &fakeStore{
		items: []store.MenuItem{{ID: 1, MenuCode: "main", Label: "Journey", Href: "/#journey"}},
		legacy: []store.NavigationItem{
			{ID: 10, Menu: "main", Section: "header", Title: "Old main", Slug: "old"},
			{ID: 11, Menu: "footer", Title: "Studio", Slug: "studio-page", LinkedPage: linked("studio", false)},
			{ID: 12, Menu: "social", Title: "Instagram", ExternalURL: "https://instagram.com/x", URLKey: "ig"},
		},
	}
	b := NewBuilder(fs, testutil.TestLogger())

	menus, err := b.BuildMenus(context.Background(), "en", "en", nil)
	require.NoError(t, err)

	require.Len(t, menus["main"], 1)
	assert.Equal(t, model.MenuSourceMenu, menus["main"][0].Source, "legacy rows only fill empty menus")

	footer := menus["footer"]
	require.Len(t, footer, 1)
	assert.Equal(t, ItemView{
		ID: 11, Menu: "footer", Section: "footer", Slug: "studio-page", Label: "Studio",
		LabelKey: "footer.nav.studio_page", Kind: model.LinkKindPage, Href: "/studio/",
		PageSlug: "studio", Source: model.MenuSourceLegacy,
	}, footer[0])

	social := menus["social"]
	require.Len(t, social, 1)
	assert.Equal(t, "https://instagram.com/x", social[0].Href)
	assert.Equal(t, "social.ig", social[0].LabelKey)
	assert.Equal(t, model.LinkKindExternal, social[0].Kind)
}

func TestBuildMenusFilter(t *testing.T) {
	fs := &fakeStore{
		items: []store.MenuItem{
			{ID: 1, MenuCode: "main", Label: "Journey", Href: "/#journey"},
			{ID: 2, MenuCode: "footer", Label: "Journal", Href: "/#stories"},
		},
		legacy: []store.NavigationItem{{ID: 3, Menu: "custom", Title: "Custom", URLKey: "c"}},
	}
	b := NewBuilder(fs, testutil.TestLogger())

	menus, err := b.BuildMenus(context.Background(), "en", "en", nil, " footer ", "footer")
	require.NoError(t, err)
	assert.Len(t, menus, 1)
	assert.Len(t, menus["footer"], 1)

	menus, err = b.BuildMenus(context.Background(), "en", "en", nil, "custom")
	require.NoError(t, err)
	require.Len(t, menus["custom"], 1)
	assert.Equal(t, "/#c", menus["custom"][0].Href)
	assert.Equal(t, "nav.c", menus["custom"][0].LabelKey)

	menus, err = b.BuildMenus(context.Background(), "en", "en", nil, "nothing")
	require.NoError(t, err)
	assert.Equal(t, map[string][]ItemView{"nothing": {}}, menus)
}

func TestBuildMenusDictionaryOverride(t *testing.T) {
	fs := &fakeStore{items: []store.MenuItem{
		{ID: 1, MenuCode: "main", Label: "Journey", Href: "/#journey"},
		{ID: 2, MenuCode: "main", Label: "Contact", Href: "/#contact"},
	}}
	b := NewBuilder(fs, testutil.TestLogger())
	dict := dictionary.Dictionary{Entries: map[string]string{"nav.journey": "Route", "nav.contact": "  "}}

	menus, err := b.BuildMenus(context.Background(), "en", "en", dict)
	require.NoError(t, err)
	assert.Equal(t, "Route", menus["main"][0].Label)
	assert.Equal(t, "Contact", menus["main"][1].Label)

	menus, err = b.BuildMenus(context.Background(), "en", "en", nil)
	require.NoError(t, err)
	assert.Equal(t, "Journey", menus["main"][0].Label, "without a dictionary labels stay as stored")
}

func TestBuildMenusLegacyError(t *testing.T) {
	fs := &fakeStore{legacyErr: errors.New("boom")}
	_, err := NewBuilder(fs, testutil.TestLogger()).BuildMenus(context.Background(), "en", "en", nil)
	assert.Error(t, err)
}

func TestMenu(t *testing.T) {
	fs := &fakeStore{
		menus: map[string]store.Menu{"main": {ID: 1, Code: "main", Title: "Main", TitleI18n: model.Translations{"ru": "Главное"}, Location: "header"}},
		items: []store.MenuItem{{ID: 1, MenuCode: "main", Label: "Journey", Href: "/#journey"}},
	}
	b := NewBuilder(fs, testutil.TestLogger())

	m, err := b.Menu(context.Background(), "main", "ru", "en")
	require.NoError(t, err)
	assert.Equal(t, "Главное", m.Title)
	require.Len(t, m.Items, 1)
	assert.Equal(t, "/#journey", m.Items[0].Href)

	_, err = b.Menu(context.Background(), "missing", "en", "en")
	assert.ErrorIs(t, err, ErrMenuNotFound)
}

func TestLegacyItemsFilter(t *testing.T) {
	fs := &fakeStore{legacy: []store.NavigationItem{
		{ID: 1, Menu: "main", Section: "header", Title: "A"},
		{ID: 2, Menu: "footer", Section: "footer", Title: "B"},
		{ID: 3, Menu: "", Section: "", Title: "C"},
	}}
	b := NewBuilder(fs, nil)

	items, err := b.LegacyItems(context.Background(), store.NavigationFilter{Section: "footer"}, "en", "en")
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "B", items[0].Label)

	items, err = b.LegacyItems(context.Background(), store.NavigationFilter{}, "en", "en")
	require.NoError(t, err)
	require.Len(t, items, 3)
	assert.Equal(t, "main", items[2].Menu)
	assert.Equal(t, "header", items[2].Section)
	assert.Equal(t, "nav.item_3", items[2].LabelKey)
}

func TestBuildMenusSeeded(t *testing.T) {
	db, cleanup := testutil.TestSeededDB(t)
	defer cleanup()

	ctx := context.Background()
	q := store.New(db)
	dict, err := dictionary.NewBuilder(q).Build(ctx, "ru", "en")
	require.NoError(t, err)

	menus, err := NewBuilder(q, testutil.TestLogger()).BuildMenus(ctx, "ru", "en", dict)
	require.NoError(t, err)

	require.Len(t, menus["main"], 4)
	assert.Equal(t, "Путь", menus["main"][0].Label)
	assert.Equal(t, "nav.journey", menus["main"][0].LabelKey)
	require.Len(t, menus["footer"], 2)
	assert.Equal(t, "Журнал", menus["footer"][1].Label)
	require.Len(t, menus["social"], 1)
	assert.Equal(t, "Почта", menus["social"][0].Label)
	assert.Equal(t, model.LinkKindExternal, menus["social"][0].Kind)
}
