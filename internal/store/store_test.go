// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package store

import (
	"context"
	"database/sql"
	"errors"
	"os"
	"testing"

	"github.com/olegiv/folio/internal/model"
)

// testDB creates a temporary test database.
func testDB(t *testing.T) (*sql.DB, func()) {
	t.Helper()

	f, err := os.CreateTemp(t.TempDir(), "folio-test-*.db")
	if err != nil {
		t.Fatalf("creating temp file: %v", err)
	}
	dbPath := f.Name()
	_ = f.Close()

	db, err := NewDB(dbPath)
	if err != nil {
		t.Fatalf("NewDB: %v", err)
	}
	if err := Migrate(db); err != nil {
		_ = db.Close()
		t.Fatalf("Migrate: %v", err)
	}
	return db, func() { _ = db.Close() }
}

func TestEnsureSiteSettings(t *testing.T) {
	db, cleanup := testDB(t)
	defer cleanup()

	ctx := context.Background()
	q := New(db)

	if _, err := q.GetSiteSettings(ctx); !errors.Is(err, ErrNotFound) {
		t.Fatalf("GetSiteSettings before ensure: err = %v, want ErrNotFound", err)
	}

	s, err := q.EnsureSiteSettings(ctx)
	if err != nil {
		t.Fatalf("EnsureSiteSettings: %v", err)
	}
	if s.ID != 1 {
		t.Errorf("ID = %d, want 1", s.ID)
	}
	if s.BrandName != "Romanweiẞ" {
		t.Errorf("BrandName = %q, want default", s.BrandName)
	}
	if len(s.UII18n) != 0 {
		t.Errorf("UII18n = %v, want empty", s.UII18n)
	}

	if _, err := q.EnsureSiteSettings(ctx); err != nil {
		t.Fatalf("second EnsureSiteSettings: %v", err)
	}
	var n int
	if err := db.QueryRow(`SELECT COUNT(*) FROM site_settings`).Scan(&n); err != nil {
		t.Fatal(err)
	}
	if n != 1 {
		t.Errorf("site_settings rows = %d, want 1", n)
	}

	if _, err := db.Exec(`INSERT INTO site_settings (id) VALUES (2)`); err == nil {
		t.Error("inserting a second settings row should violate the check constraint")
	}
}

func TestUpdateSiteUITexts(t *testing.T) {
	db, cleanup := testDB(t)
	defer cleanup()

	ctx := context.Background()
	q := New(db)

	ui := model.JSONObject{"ru": map[string]any{"loadingContent": "Загрузка"}}
	if err := q.UpdateSiteUITexts(ctx, ui); err != nil {
		t.Fatalf("UpdateSiteUITexts: %v", err)
	}
	s, err := q.GetSiteSettings(ctx)
	if err != nil {
		t.Fatalf("GetSiteSettings: %v", err)
	}
	ru, ok := s.UII18n.Object("ru")
	if !ok || ru["loadingContent"] != "Загрузка" {
		t.Errorf("UII18n = %v", s.UII18n)
	}
}

func TestSetDefaultLanguage(t *testing.T) {
	db, cleanup := testDB(t)
	defer cleanup()

	ctx := context.Background()
	q := New(db)

	en, err := q.CreateLanguage(ctx, Language{Code: "en", Name: "English", IsActive: true, Order: 1})
	if err != nil {
		t.Fatalf("CreateLanguage: %v", err)
	}
	ru, err := q.CreateLanguage(ctx, Language{Code: "ru", Name: "Russian", IsActive: false, Order: 2})
	if err != nil {
		t.Fatalf("CreateLanguage: %v", err)
	}

	if err := q.SetDefaultLanguage(ctx, en.ID); err != nil {
		t.Fatalf("SetDefaultLanguage(en): %v", err)
	}
	if err := q.SetDefaultLanguage(ctx, ru.ID); err != nil {
		t.Fatalf("SetDefaultLanguage(ru): %v", err)
	}

	langs, err := q.ListLanguages(ctx)
	if err != nil {
		t.Fatalf("ListLanguages: %v", err)
	}
	defaults := 0
	for _, l := range langs {
		if l.IsDefault {
			defaults++
			if l.Code != "ru" {
				t.Errorf("default = %q, want ru", l.Code)
			}
			if !l.IsActive {
				t.Error("default language should be activated")
			}
		}
	}
	if defaults != 1 {
		t.Errorf("default languages = %d, want 1", defaults)
	}

	if err := q.SetDefaultLanguage(ctx, 999); !errors.Is(err, ErrNotFound) {
		t.Errorf("SetDefaultLanguage(missing) err = %v, want ErrNotFound", err)
	}
}

func TestListActiveLanguagesOrder(t *testing.T) {
	db, cleanup := testDB(t)
	defer cleanup()

	ctx := context.Background()
	q := New(db)

	for _, l := range []Language{
		{Code: "zh", Name: "Chinese", IsActive: true, Order: 2},
		{Code: "ru", Name: "Russian", IsActive: true, Order: 1},
		{Code: "de", Name: "German", IsActive: false, Order: 0},
		{Code: "en", Name: "English", IsActive: true, Order: 1},
	} {
		if _, err := q.CreateLanguage(ctx, l); err != nil {
			t.Fatalf("CreateLanguage(%s): %v", l.Code, err)
		}
	}

	langs, err := q.ListActiveLanguages(ctx)
	if err != nil {
		t.Fatalf("ListActiveLanguages: %v", err)
	}
	var got []string
	for _, l := range langs {
		got = append(got, l.Code)
	}
	want := []string{"ru", "en", "zh"}
	if len(got) != len(want) {
		t.Fatalf("codes = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("codes = %v, want %v", got, want)
			break
		}
	}
}

func TestSiteTextsLenientTranslations(t *testing.T) {
	db, cleanup := testDB(t)
	defer cleanup()

	ctx := context.Background()
	q := New(db)

	if _, err := q.UpsertSiteText(ctx, SiteText{Key: "nav.journey", Group: "navigation", Text: "Journey",
		TextI18n: model.Translations{"ru": "Путь"}, IsPublished: true}); err != nil {
		t.Fatalf("UpsertSiteText: %v", err)
	}
	if _, err := db.Exec(`INSERT INTO site_texts ("key", "group", text, text_i18n, is_published)
		VALUES ('broken', 'ui', 'Broken', 'not json', 1), ('hidden', 'ui', 'Hidden', '{}', 0)`); err != nil {
		t.Fatal(err)
	}

	texts, err := q.ListPublishedSiteTexts(ctx)
	if err != nil {
		t.Fatalf("ListPublishedSiteTexts: %v", err)
	}
	if len(texts) != 2 {
		t.Fatalf("got %d texts, want 2", len(texts))
	}
	if texts[0].Key != "nav.journey" || texts[1].Key != "broken" {
		t.Errorf("order = %q, %q", texts[0].Key, texts[1].Key)
	}
	if texts[0].TextI18n["ru"] != "Путь" {
		t.Errorf("TextI18n = %v", texts[0].TextI18n)
	}
	if len(texts[1].TextI18n) != 0 {
		t.Errorf("malformed TextI18n = %v, want empty", texts[1].TextI18n)
	}

	updated, err := q.UpsertSiteText(ctx, SiteText{Key: "nav.journey", Group: "navigation", Text: "Route",
		IsPublished: true})
	if err != nil {
		t.Fatalf("UpsertSiteText update: %v", err)
	}
	if updated.Text != "Route" || len(updated.TextI18n) != 0 {
		t.Errorf("updated = %+v", updated)
	}
}

func TestListKeyTranslations(t *testing.T) {
	db, cleanup := testDB(t)
	defer cleanup()

	ctx := context.Background()
	q := New(db)

	ru, err := q.CreateLanguage(ctx, Language{Code: "ru", Name: "Russian", IsActive: true})
	if err != nil {
		t.Fatal(err)
	}
	active, err := q.UpsertTranslationKey(ctx, TranslationKey{Key: "nav.journey", IsActive: true})
	if err != nil {
		t.Fatalf("UpsertTranslationKey: %v", err)
	}
	inactive, err := q.UpsertTranslationKey(ctx, TranslationKey{Key: "nav.old", IsActive: false})
	if err != nil {
		t.Fatalf("UpsertTranslationKey: %v", err)
	}
	if err := q.UpsertKeyTranslation(ctx, ru.ID, active.ID, "Путь"); err != nil {
		t.Fatal(err)
	}
	if err := q.UpsertKeyTranslation(ctx, ru.ID, inactive.ID, "Старое"); err != nil {
		t.Fatal(err)
	}

	got, err := q.ListKeyTranslations(ctx, "ru")
	if err != nil {
		t.Fatalf("ListKeyTranslations: %v", err)
	}
	if len(got) != 1 || got[0].KeyID != active.ID || got[0].Text != "Путь" {
		t.Errorf("translations = %+v", got)
	}

	keys, err := q.ListActiveTranslationKeys(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(keys) != 1 || keys[0].Key != "nav.journey" {
		t.Errorf("keys = %+v", keys)
	}
}

func TestSetHomePage(t *testing.T) {
	db, cleanup := testDB(t)
	defer cleanup()

	ctx := context.Background()
	q := New(db)

	first, err := q.CreatePage(ctx, Page{Slug: "home", Title: "Home", IsActive: true, IsHome: true, IsPublished: true})
	if err != nil {
		t.Fatalf("CreatePage: %v", err)
	}
	second, err := q.CreatePage(ctx, Page{Slug: "about", Title: "About", IsActive: true, IsPublished: true})
	if err != nil {
		t.Fatalf("CreatePage: %v", err)
	}

	if err := q.SetHomePage(ctx, second.ID); err != nil {
		t.Fatalf("SetHomePage: %v", err)
	}
	home, err := q.GetHomePage(ctx)
	if err != nil {
		t.Fatalf("GetHomePage: %v", err)
	}
	if home.ID != second.ID {
		t.Errorf("home = %d, want %d", home.ID, second.ID)
	}
	p, err := q.GetPage(ctx, first.ID)
	if err != nil {
		t.Fatal(err)
	}
	if p.IsHome {
		t.Error("previous home page still flagged")
	}
}

func TestSectionsAndImages(t *testing.T) {
	db, cleanup := testDB(t)
	defer cleanup()

	ctx := context.Background()
	q := New(db)

	page, err := q.CreatePage(ctx, Page{Slug: "home", Title: "Home", IsActive: true, IsPublished: true})
	if err != nil {
		t.Fatal(err)
	}
	b, err := q.CreateSection(ctx, PageSection{PageID: page.ID, Key: "b", SectionType: model.SectionRichText,
		Order: 1, IsPublished: true})
	if err != nil {
		t.Fatal(err)
	}
	a, err := q.CreateSection(ctx, PageSection{PageID: page.ID, Key: "a", SectionType: model.SectionHero,
		Payload: model.JSONObject{"kicker": "Hi"}, Order: 1, IsPublished: true})
	if err != nil {
		t.Fatal(err)
	}
	if _, err := q.CreateSection(ctx, PageSection{PageID: page.ID, Key: "draft", SectionType: model.SectionHero,
		IsPublished: false}); err != nil {
		t.Fatal(err)
	}
	if _, err := q.CreateSection(ctx, PageSection{PageID: page.ID, Key: "bad", SectionType: "video"}); err == nil {
		t.Error("unknown section type should be rejected")
	}

	sections, err := q.ListPublishedSections(ctx, page.ID)
	if err != nil {
		t.Fatalf("ListPublishedSections: %v", err)
	}
	if len(sections) != 2 || sections[0].ID != b.ID || sections[1].ID != a.ID {
		t.Fatalf("sections = %+v", sections)
	}
	if sections[1].Payload["kicker"] != "Hi" {
		t.Errorf("payload = %v", sections[1].Payload)
	}

	for _, img := range []SectionImage{
		{SectionID: a.ID, ImageURL: "/2.jpg", Order: 2, IsPublished: true},
		{SectionID: a.ID, ImageURL: "/1.jpg", Order: 1, IsPublished: true},
		{SectionID: a.ID, ImageURL: "/hidden.jpg", Order: 0, IsPublished: false},
	} {
		if _, err := q.CreateSectionImage(ctx, img); err != nil {
			t.Fatal(err)
		}
	}
	images, err := q.ListPublishedSectionImages(ctx, []int64{a.ID, b.ID})
	if err != nil {
		t.Fatalf("ListPublishedSectionImages: %v", err)
	}
	if len(images) != 2 || images[0].ImageURL != "/1.jpg" || images[1].ImageURL != "/2.jpg" {
		t.Errorf("images = %+v", images)
	}
}

func TestCollectionsCover(t *testing.T) {
	db, cleanup := testDB(t)
	defer cleanup()

	ctx := context.Background()
	q := New(db)

	asset, err := q.CreateMediaAsset(ctx, MediaAsset{Title: "Peak", FilePath: "uploads/peak.jpg", IsPublished: true})
	if err != nil {
		t.Fatal(err)
	}
	if _, err := q.CreateExpedition(ctx, Expedition{Slug: "peak", Title: "Peak", IsPublished: true,
		CoverID: sql.NullInt64{Int64: asset.ID, Valid: true}}); err != nil {
		t.Fatal(err)
	}
	if _, err := q.CreateExpedition(ctx, Expedition{Slug: "plain", Title: "Plain", Order: 1, IsPublished: true}); err != nil {
		t.Fatal(err)
	}

	list, err := q.ListPublishedExpeditions(ctx)
	if err != nil {
		t.Fatalf("ListPublishedExpeditions: %v", err)
	}
	if len(list) != 2 {
		t.Fatalf("got %d expeditions", len(list))
	}
	if list[0].CoverFile.String != "uploads/peak.jpg" {
		t.Errorf("cover = %+v", list[0].Cover)
	}
	if list[1].CoverFile.Valid {
		t.Errorf("plain cover = %+v, want NULL", list[1].Cover)
	}
}

func TestMenuItemsAndNavigation(t *testing.T) {
	db, cleanup := testDB(t)
	defer cleanup()

	ctx := context.Background()
	q := New(db)

	page, err := q.CreatePage(ctx, Page{Slug: "about", Title: "About", IsActive: true, IsPublished: true})
	if err != nil {
		t.Fatal(err)
	}
	mainMenu, err := q.CreateMenu(ctx, Menu{Code: "main", Title: "Main", Location: "main", IsPublished: true})
	if err != nil {
		t.Fatal(err)
	}
	hidden, err := q.CreateMenu(ctx, Menu{Code: "footer", Title: "Footer", Location: "footer", IsPublished: false})
	if err != nil {
		t.Fatal(err)
	}
	if _, err := q.CreateMenuItem(ctx, MenuItem{MenuID: mainMenu.ID, Label: "About", Order: 2, IsPublished: true,
		PageID: sql.NullInt64{Int64: page.ID, Valid: true}}); err != nil {
		t.Fatal(err)
	}
	if _, err := q.CreateMenuItem(ctx, MenuItem{MenuID: mainMenu.ID, Label: "Journey", Href: "#journey",
		Order: 1, IsPublished: true}); err != nil {
		t.Fatal(err)
	}
	if _, err := q.CreateMenuItem(ctx, MenuItem{MenuID: hidden.ID, Label: "Contact", Href: "#contact",
		IsPublished: true}); err != nil {
		t.Fatal(err)
	}

	items, err := q.ListPublishedMenuItems(ctx)
	if err != nil {
		t.Fatalf("ListPublishedMenuItems: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("items = %+v", items)
	}
	if items[0].Label != "Journey" || items[1].Label != "About" {
		t.Errorf("order = %q, %q", items[0].Label, items[1].Label)
	}
	if items[1].PageSlug.String != "about" || items[1].PageIsHome.Bool {
		t.Errorf("linked page = %+v", items[1].LinkedPage)
	}
	if items[0].MenuCode != "main" {
		t.Errorf("MenuCode = %q", items[0].MenuCode)
	}

	byCode, err := q.ListPublishedMenuItems(ctx, "footer")
	if err != nil {
		t.Fatal(err)
	}
	if len(byCode) != 0 {
		t.Errorf("unpublished menu items = %+v", byCode)
	}

	if _, err := q.CreateNavigationItem(ctx, NavigationItem{Section: "footer", Menu: "social", Title: "IG",
		Slug: "social-ig", ExternalURL: "https://instagram.com", IsPublished: true}); err != nil {
		t.Fatal(err)
	}
	if _, err := q.CreateNavigationItem(ctx, NavigationItem{Section: "header", Menu: "main", Title: "Journey",
		Slug: "header-journey", Href: "#journey", IsPublished: true}); err != nil {
		t.Fatal(err)
	}
	nav, err := q.ListPublishedNavigationItems(ctx, NavigationFilter{Menu: "social"})
	if err != nil {
		t.Fatal(err)
	}
	if len(nav) != 1 || nav[0].Slug != "social-ig" {
		t.Errorf("nav = %+v", nav)
	}
	all, err := q.ListPublishedNavigationItems(ctx, NavigationFilter{})
	if err != nil {
		t.Fatal(err)
	}
	if len(all) != 2 || all[0].Menu != "main" {
		t.Errorf("all nav = %+v", all)
	}
}

func TestContactMessages(t *testing.T) {
	db, cleanup := testDB(t)
	defer cleanup()

	ctx := context.Background()
	q := New(db)

	m, err := q.CreateContactMessage(ctx, ContactMessage{Ref: "r-1", Name: "Ann", Email: "ann@example.com",
		Message: "Hello"})
	if err != nil {
		t.Fatalf("CreateContactMessage: %v", err)
	}
	if _, err := q.CreateContactMessage(ctx, ContactMessage{Ref: "r-1", Name: "Dup", Email: "d@example.com",
		Message: "x"}); err == nil {
		t.Error("duplicate ref should fail")
	}

	n, err := q.CountUnreadContactMessages(ctx)
	if err != nil || n != 1 {
		t.Fatalf("unread = %d, %v", n, err)
	}
	if err := q.MarkContactMessageRead(ctx, m.ID); err != nil {
		t.Fatalf("MarkContactMessageRead: %v", err)
	}
	unread, err := q.ListContactMessages(ctx, true, 10, 0)
	if err != nil {
		t.Fatal(err)
	}
	if len(unread) != 0 {
		t.Errorf("unread = %+v", unread)
	}
	if err := q.MarkContactMessageRead(ctx, 999); !errors.Is(err, ErrNotFound) {
		t.Errorf("missing message err = %v", err)
	}
}

func TestSeedIsIdempotent(t *testing.T) {
	db, cleanup := testDB(t)
	defer cleanup()

	ctx := context.Background()
	if err := Seed(ctx, db); err != nil {
		t.Fatalf("Seed: %v", err)
	}
	if err := Seed(ctx, db); err != nil {
		t.Fatalf("second Seed: %v", err)
	}

	q := New(db)
	langs, err := q.ListActiveLanguages(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(langs) != 3 {
		t.Errorf("languages = %d, want 3", len(langs))
	}
	home, err := q.GetHomePage(ctx)
	if err != nil {
		t.Fatalf("GetHomePage: %v", err)
	}
	sections, err := q.ListPublishedSections(ctx, home.ID)
	if err != nil {
		t.Fatal(err)
	}
	if len(sections) != 6 || sections[0].Key != model.SectionKeyHero {
		t.Errorf("sections = %d", len(sections))
	}
	items, err := q.ListPublishedMenuItems(ctx, model.MenuMain)
	if err != nil {
		t.Fatal(err)
	}
	if len(items) != 4 {
		t.Errorf("main menu items = %d, want 4", len(items))
	}
}

func TestEvents(t *testing.T) {
	db, cleanup := testDB(t)
	defer cleanup()

	ctx := context.Background()
	q := New(db)

	if err := q.CreateEvent(ctx, CreateEventParams{Level: model.EventLevelWarning,
		Category: model.EventCategoryLanguage, Message: "no default language"}); err != nil {
		t.Fatalf("CreateEvent: %v", err)
	}
	events, err := q.ListEvents(ctx, 10)
	if err != nil {
		t.Fatal(err)
	}
	if len(events) != 1 || events[0].Metadata != "{}" {
		t.Errorf("events = %+v", events)
	}
}
