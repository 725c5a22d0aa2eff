// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package content

import (
	"database/sql"
	"testing"

	"github.com/olegiv/folio/internal/model"
	"github.com/olegiv/folio/internal/store"
)

func TestHero(t *testing.T) {
	a := NewAssembler(&fakeStore{}, MediaURLs{StaticPrefix: "/static/"})

	t.Run("without hero section", func(t *testing.T) {
		h := a.Hero(&PageView{}, nil, "Brand")
		if h.Title != "Brand" || h.Anchor != "journey" || h.CTAURL != "#expeditions" {
			t.Errorf("Hero() = %+v", h)
		}
		if h.ImageURL != "/static/content/images/hero-default.svg" {
			t.Errorf("ImageURL = %q", h.ImageURL)
		}
	})

	t.Run("section with dictionary overrides", func(t *testing.T) {
		p := &PageView{Sections: []SectionView{{
			Key: "hero", Anchor: "top", Title: "Title", Subtitle: "Sub",
			Typed:  HeroPayload{Kicker: "Kick", CTAURL: "#stories", ScrollLabel: "Scroll"},
			Images: []store.SectionImage{{ImageURL: "https://img/hero.jpg"}},
		}}}
		h := a.Hero(p, mapTexts{"section.hero.kicker": "Dict kicker"}, "Brand")
		want := HeroView{
			Anchor: "top", Kicker: "Dict kicker", Title: "Title", Subtitle: "Sub",
			CTAURL: "#stories", ScrollLabel: "Scroll", ImageURL: "https://img/hero.jpg",
		}
		if h != want {
			t.Errorf("Hero() = %+v, want %+v", h, want)
		}
	})
}

func TestLocalizeSite(t *testing.T) {
	s := store.SiteSettings{
		BrandName:     "Brand",
		BrandNameI18n: model.Translations{"ru": "Бренд"},
		FooterTitle:   "",
		FooterTitleI18n: model.Translations{
			"en": "Footer",
		},
		UII18n: model.JSONObject{"ru": map[string]any{"theme_light": "Светлая тема"}},
	}
	v := LocalizeSite(s, "ru", "en")
	if v.BrandName != "Бренд" {
		t.Errorf("BrandName = %q", v.BrandName)
	}
	if v.FooterTitle != "Footer" {
		t.Errorf("FooterTitle = %q", v.FooterTitle)
	}
	if v.UI["theme_light"] != "Светлая тема" {
		t.Errorf("UI[theme_light] = %q", v.UI["theme_light"])
	}
}

func TestLanguageSwitches(t *testing.T) {
	langs := []store.Language{{Code: "en", Name: "English", Order: 1}, {Code: "ru", Name: "Russian", Order: 2}}

	got := LanguageSwitches(&PageView{Slug: "about"}, langs, "ru", mapTexts{"lang.en": "EN"})
	if len(got) != 2 {
		t.Fatalf("got %d switches", len(got))
	}
	if got[0].Label != "EN" || got[0].URL != "/about/?lang=en" || got[0].IsActive {
		t.Errorf("en switch = %+v", got[0])
	}
	if got[1].Label != "Russian" || !got[1].IsActive {
		t.Errorf("ru switch = %+v", got[1])
	}

	fallback := LanguageSwitches(&PageView{IsHome: true}, nil, "en", nil)
	if len(fallback) != 1 || fallback[0].Code != "en" || fallback[0].URL != "/?lang=en" {
		t.Errorf("fallback switches = %+v", fallback)
	}
}

func TestMediaURLsResolve(t *testing.T) {
	m := MediaURLs{MediaPrefix: "/media", StaticPrefix: "/static/"}
	tests := []struct {
		name   string
		cover  store.Cover
		legacy string
		want   string
	}{
		{"file wins", store.Cover{CoverFile: nullStr("a.jpg"), CoverStatic: nullStr("b.jpg")}, "c.jpg", "/media/a.jpg"},
		{"static path", store.Cover{CoverStatic: nullStr("img/b.jpg")}, "c.jpg", "/static/img/b.jpg"},
		{"legacy url", store.Cover{}, "https://x/c.jpg", "https://x/c.jpg"},
		{"default", store.Cover{}, " ", "/static/content/images/story-default.svg"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := m.Resolve(tt.cover, tt.legacy, DefaultStoryImage); got != tt.want {
				t.Errorf("Resolve() = %q, want %q", got, tt.want)
			}
		})
	}
}

func nullStr(s string) sql.NullString {
	return sql.NullString{String: s, Valid: true}
}

func TestSiteViewWithTexts(t *testing.T) {
	v := SiteView{BrandName: "Romanweiẞ", FooterTitle: "Footer", NewsletterNote: "Note"}
	got := v.WithTexts(mapTexts{KeyBrandName: "Брэнд", KeyFooterTitle: "  "})

	if got.BrandName != "Брэнд" {
		t.Errorf("BrandName = %q", got.BrandName)
	}
	if got.FooterTitle != "Footer" {
		t.Errorf("blank entry must not override, FooterTitle = %q", got.FooterTitle)
	}
	if got.NewsletterNote != "Note" {
		t.Errorf("NewsletterNote = %q", got.NewsletterNote)
	}
	if v.BrandName != "Romanweiẞ" {
		t.Error("receiver mutated")
	}
	if same := v.WithTexts(nil); same.BrandName != v.BrandName {
		t.Errorf("nil texts changed BrandName to %q", same.BrandName)
	}
}

func TestSectionTexts(t *testing.T) {
	if got := SectionTextKey("journal-intro", "title"); got != "section.journal_intro.title" {
		t.Errorf("SectionTextKey = %q", got)
	}

	p := &PageView{Sections: []SectionView{
		{Key: "journal-intro", Title: "Intro", Subtitle: "Sub"},
		{Key: "contact", Title: "Contact"},
	}}
	p.ApplyTexts(mapTexts{
		"section.journal_intro.title": "Вступление",
		"section.contact.subtitle":    "Пишите",
	})

	if p.Sections[0].Title != "Вступление" || p.Sections[0].Subtitle != "Sub" {
		t.Errorf("section 0 = %+v", p.Sections[0])
	}
	if p.Sections[1].Title != "Contact" || p.Sections[1].Subtitle != "Пишите" {
		t.Errorf("section 1 = %+v", p.Sections[1])
	}
}
