// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package store

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/olegiv/folio/internal/model"
)

const (
	seedHeroImage   = "https://images.unsplash.com/photo-1469474968028-56623f02e42e?auto=format&fit=crop&w=2000&q=80"
	seedContactBody = "Interested in a collaboration, a print, or just want to say hello? " +
		"I am always open to discussing new projects and creative opportunities."
)

type seedText struct {
	key, group string
	en, ru, zh string
}

var seedTexts = []seedText{
	{"nav.journey", "navigation", "Journey", "Путь", "旅程"},
	{"nav.expeditions", "navigation", "Expeditions", "Экспедиции", "探险"},
	{"nav.stories", "navigation", "Stories", "Истории", "故事"},
	{"nav.contact", "navigation", "Contact", "Контакты", "联系"},
	{"footer.nav.expeditions", "navigation", "Expeditions", "Экспедиции", "探险"},
	{"footer.nav.stories", "navigation", "Journal", "Журнал", "日志"},
	{"social.mail", "navigation", "Mail", "Почта", "邮箱"},
	{"section.hero.subtitle", "sections", "Travel and expedition photography.", "Тревел и экспедиционная фотография.", "旅行与探险摄影。"},
	{"section.hero.kicker", "sections", "Travel and expedition photography", "Тревел и экспедиционная фотография", "旅行与探险摄影"},
	{"section.hero.scroll_label", "sections", "Scroll to begin", "Прокрутите вниз", "向下滚动开始"},
	{"section.expeditions.title", "sections", "Recent expeditions", "Последние экспедиции", "最新探险"},
	{"section.categories.title", "sections", "Focus areas", "Направления", "创作方向"},
	{"section.stories.title", "sections", "Selected stories", "Избранные истории", "精选故事"},
	{"section.contact.title", "sections", "Get in touch", "Связаться", "联系我"},
	{"status.loading", "ui", "Loading content...", "Загрузка контента...", "正在加载内容..."},
	{"status.unavailable", "ui", "Content is unavailable.", "Контент недоступен.", "内容不可用。"},
}

func tr(ru, zh string) model.Translations {
	return model.Translations{"ru": ru, "zh": zh}
}

// Seed fills an empty database with languages, settings and demo content.
// It does nothing when any language already exists.
func Seed(ctx context.Context, db *sql.DB) error {
	q := New(db)

	langs, err := q.ListLanguages(ctx)
	if err != nil {
		return fmt.Errorf("checking for languages: %w", err)
	}
	if len(langs) > 0 {
		slog.Info("languages already exist, skipping seed")
		return nil
	}

	return q.WithTx(ctx, func(tx *Queries) error {
		if err := seedLanguages(ctx, tx); err != nil {
			return err
		}
		settings, err := tx.EnsureSiteSettings(ctx)
		if err != nil {
			return fmt.Errorf("creating site settings: %w", err)
		}
		for i, t := range seedTexts {
			if _, err := tx.UpsertSiteText(ctx, SiteText{
				Key: t.key, Group: t.group, Text: t.en, TextI18n: tr(t.ru, t.zh),
				Order: int64(i + 1), IsPublished: true,
			}); err != nil {
				return err
			}
		}
		if err := seedCollections(ctx, tx); err != nil {
			return err
		}
		if err := seedHomePage(ctx, tx, settings); err != nil {
			return err
		}
		if err := seedMenus(ctx, tx, settings); err != nil {
			return err
		}
		slog.Info("seeded demo content", "category", model.EventCategorySystem)
		return nil
	})
}

func seedLanguages(ctx context.Context, q *Queries) error {
	for i, code := range []string{"en", "ru", "zh"} {
		name, _ := model.CommonLanguageName(code)
		l, err := q.CreateLanguage(ctx, Language{
			Code:     code,
			Name:     name,
			IsActive: true,
			Order:    int64(i + 1),
		})
		if err != nil {
			return err
		}
		if code == model.DefaultLanguageCode {
			if err := q.SetDefaultLanguage(ctx, l.ID); err != nil {
				return fmt.Errorf("setting default language: %w", err)
			}
		}
	}
	return nil
}

func seedCollections(ctx context.Context, q *Queries) error {
	expeditions := []Expedition{
		{Slug: "glacial-highlands", Title: "Glacial Highlands", TitleI18n: tr("Ледниковые нагорья", "冰川高地"),
			DateLabel: "October 2023", DateLabelI18n: tr("Октябрь 2023", "2023年10月"),
			Description: "Wind-cut ridgelines and slate-blue valleys above the tree line.",
			ImageURL:    "https://images.unsplash.com/photo-1501785888041-af3ef285b470?auto=format&fit=crop&w=1400&q=80"},
		{Slug: "desert-passage", Title: "Desert Passage", TitleI18n: tr("Пустынный переход", "沙漠通道"),
			DateLabel: "August 2023", DateLabelI18n: tr("Август 2023", "2023年8月"),
			Description: "Long asphalt ribbons leading into rust and sandstone labyrinths.",
			ImageURL:    "https://images.unsplash.com/photo-1500530855697-b586d89ba3ee?auto=format&fit=crop&w=1400&q=80"},
		{Slug: "city-at-dawn", Title: "City at Dawn", TitleI18n: tr("Город на рассвете", "黎明之城"),
			DateLabel: "May 2023", DateLabelI18n: tr("Май 2023", "2023年5月"),
			Description: "Neon traces softening into morning fog across concrete canyons.",
			ImageURL:    "https://images.unsplash.com/photo-1489515217757-5fd1be406fef?auto=format&fit=crop&w=1400&q=80"},
	}
	for i := range expeditions {
		expeditions[i].Order = int64(i + 1)
		expeditions[i].IsPublished = true
		if _, err := q.CreateExpedition(ctx, expeditions[i]); err != nil {
			return err
		}
	}

	categories := []Category{
		{Slug: "landscapes", Title: "Landscapes", TitleI18n: tr("Пейзажи", "风景"), Size: model.CategorySizeLarge,
			ImageURL: "https://images.unsplash.com/photo-1441974231531-c6227db76b6e?auto=format&fit=crop&w=1400&q=80"},
		{Slug: "architecture", Title: "Architecture", TitleI18n: tr("Архитектура", "建筑"), Size: model.CategorySizeSmall,
			ImageURL: "https://images.unsplash.com/photo-1489515217757-5fd1be406fef?auto=format&fit=crop&w=1200&q=80"},
		{Slug: "nature", Title: "Nature", TitleI18n: tr("Природа", "自然"), Size: model.CategorySizeSmall,
			ImageURL: "https://images.unsplash.com/photo-1500534314209-a25ddb2bd429?auto=format&fit=crop&w=1200&q=80"},
		{Slug: "travel-series", Title: "Travel Series", TitleI18n: tr("Серия путешествий", "旅行系列"), Size: model.CategorySizeWide,
			ImageURL: "https://images.unsplash.com/photo-1470071459604-3b5ec3a7fe05?auto=format&fit=crop&w=1400&q=80"},
	}
	for i := range categories {
		categories[i].Order = int64(i + 1)
		categories[i].IsPublished = true
		if _, err := q.CreateCategory(ctx, categories[i]); err != nil {
			return err
		}
	}

	stories := []Story{
		{Slug: "echoes-of-the-mountain", Title: "Echoes of the Mountain", TitleI18n: tr("Эхо горы", "山之回响"),
			DateLabel:   "08.02.2026",
			Description: "Why we climb when the world tells us to stay low.",
			ImageURL:    "https://images.unsplash.com/photo-1469474968028-56623f02e42e?auto=format&fit=crop&w=1400&q=80"},
		{Slug: "lost-in-the-fog", Title: "Lost in the Fog", TitleI18n: tr("Потерянные в тумане", "迷失雾中"),
			DateLabel:   "14.01.2026",
			Description: "A morning walk that turned into a journey inward.",
			ImageURL:    "https://images.unsplash.com/photo-1482192596544-9eb780fc7f66?auto=format&fit=crop&w=1400&q=80"},
	}
	for i := range stories {
		stories[i].Order = int64(i + 1)
		stories[i].IsPublished = true
		if _, err := q.CreateStory(ctx, stories[i]); err != nil {
			return err
		}
	}
	return nil
}

func seedHomePage(ctx context.Context, q *Queries, settings SiteSettings) error {
	home, err := q.CreatePage(ctx, Page{
		Slug: model.HomeSlug, Title: "Home", TitleI18n: tr("Главная", "首页"),
		SeoTitle: settings.BrandName, SeoDescription: settings.FooterDescription, SeoImage: seedHeroImage,
		IsActive: true, IsHome: true, Order: 1, IsPublished: true,
	})
	if err != nil {
		return err
	}

	sections := []PageSection{
		{Key: model.SectionKeyHero, SectionType: model.SectionHero, Title: settings.BrandName,
			Subtitle: "Exploring landscapes, architecture, and the distance between moments.",
			Payload:  model.JSONObject{"kicker": "Travel & Expedition Photography", "scroll_label": "Scroll to begin"}},
		{Key: "journal-intro", SectionType: model.SectionRichText,
			Body: "We travel not to escape life, but for life not to escape us. " +
				"This journal is a collection of moments from the road.",
			BodyI18n: tr("Мы путешествуем не чтобы сбежать от жизни, а чтобы жизнь не сбежала от нас.",
				"我们旅行不是为了逃避生活，而是为了不让生活逃离我们。")},
		{Key: model.SectionKeyExpeditions, SectionType: model.SectionCards,
			Payload: model.JSONObject{"eyebrow": "The Journal", "title": "Recent Expeditions",
				"subtitle": "Journeys into the remote.", "action_label": "View all"},
			PayloadI18n: model.JSONObject{
				"ru": map[string]any{"eyebrow": "Журнал", "title": "Последние экспедиции"},
				"zh": map[string]any{"eyebrow": "日志", "title": "最新探险"},
			}},
		{Key: model.SectionKeyCategories, SectionType: model.SectionGallery,
			Payload: model.JSONObject{"eyebrow": "Portfolio", "title": "Fields of Focus",
				"subtitle": "Visual separation through imagery, not boxes."}},
		{Key: model.SectionKeyStories, SectionType: model.SectionStories,
			Payload: model.JSONObject{"eyebrow": "Visual Stories", "title": "Selected Stories",
				"action_label": "Read full story"}},
		{Key: model.SectionKeyContact, SectionType: model.SectionContact, Title: "Get in touch",
			TitleI18n: tr("Связаться", "联系我"), Body: seedContactBody,
			Payload: model.JSONObject{"location": "Berlin, Germany", "email": settings.ContactEmail}},
	}
	for i := range sections {
		sections[i].PageID = home.ID
		sections[i].Order = int64(i + 1)
		sections[i].IsPublished = true
		s, err := q.CreateSection(ctx, sections[i])
		if err != nil {
			return err
		}
		if s.Key == model.SectionKeyHero {
			if _, err := q.CreateSectionImage(ctx, SectionImage{
				SectionID: s.ID, ImageURL: seedHeroImage, AltText: settings.BrandName + " hero image",
				Order: 1, IsPublished: true,
			}); err != nil {
				return err
			}
		}
	}
	return nil
}

func seedMenus(ctx context.Context, q *Queries, settings SiteSettings) error {
	type item struct {
		label string
		href  string
	}
	menus := []struct {
		code, title string
		items       []item
	}{
		{model.MenuMain, "Main navigation", []item{
			{"Journey", "/#journey"}, {"Expeditions", "/#expeditions"},
			{"Stories", "/#stories"}, {"Contact", "/#contact"},
		}},
		{model.MenuFooter, "Footer navigation", []item{
			{"Expeditions", "/#expeditions"}, {"Journal", "/#stories"},
		}},
		{model.MenuSocial, "Social links", []item{
			{"Mail", "mailto:" + settings.ContactEmail},
		}},
	}
	for i, m := range menus {
		menu, err := q.CreateMenu(ctx, Menu{
			Code: m.code, Title: m.title, Location: m.code, Order: int64(i + 1), IsPublished: true,
		})
		if err != nil {
			return err
		}
		for j, it := range m.items {
			if _, err := q.CreateMenuItem(ctx, MenuItem{
				MenuID: menu.ID, Label: it.label, Href: it.href, Order: int64(j + 1), IsPublished: true,
			}); err != nil {
				return err
			}
		}
	}
	return nil
}
