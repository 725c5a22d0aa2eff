// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package content

import (
	"context"
	"fmt"
	"time"

	"github.com/olegiv/folio/internal/l10n"
	"github.com/olegiv/folio/internal/model"
	"github.com/olegiv/folio/internal/store"
)

// Dictionary keys of the site settings fields.
const (
	KeyBrandName             = "brand.name"
	KeyFooterTitle           = "footer.title"
	KeyFooterDescription     = "footer.description"
	KeyFooterExploreTitle    = "footer.explore"
	KeyFooterSocialTitle     = "footer.social"
	KeyFooterNewsletterTitle = "footer.newsletter"
	KeyNewsletterNote        = "footer.newsletter_note"
)

// SiteView is the localized site settings.
type SiteView struct {
	ID                    int64             `json:"id"`
	BrandName             string            `json:"brand_name"`
	ContactEmail          string            `json:"contact_email"`
	FooterTitle           string            `json:"footer_title"`
	FooterDescription     string            `json:"footer_description"`
	FooterExploreTitle    string            `json:"footer_explore_title"`
	FooterSocialTitle     string            `json:"footer_social_title"`
	FooterNewsletterTitle string            `json:"footer_newsletter_title"`
	NewsletterNote        string            `json:"newsletter_note"`
	SeoTitle              string            `json:"seo_title"`
	SeoDescription        string            `json:"seo_description"`
	SeoImage              string            `json:"seo_image"`
	UI                    map[string]string `json:"ui"`
	CreatedAt             time.Time         `json:"created_at"`
	UpdatedAt             time.Time         `json:"updated_at"`
}

// Site returns the localized site settings, creating the settings row with
// defaults if it does not exist yet.
func (a *Assembler) Site(ctx context.Context, lang, fallback string) (SiteView, error) {
	s, err := a.store.EnsureSiteSettings(ctx)
	if err != nil {
		return SiteView{}, fmt.Errorf("loading site settings: %w", err)
	}
	return LocalizeSite(s, lang, fallback), nil
}

// LocalizeSite resolves every translatable settings field for lang.
func LocalizeSite(s store.SiteSettings, lang, fallback string) SiteView {
	return SiteView{
		ID:                    s.ID,
		BrandName:             l10n.Text(s.BrandName, s.BrandNameI18n, lang, fallback),
		ContactEmail:          s.ContactEmail,
		FooterTitle:           l10n.Text(s.FooterTitle, s.FooterTitleI18n, lang, fallback),
		FooterDescription:     l10n.Text(s.FooterDescription, s.FooterDescriptionI18n, lang, fallback),
		FooterExploreTitle:    l10n.Text(s.FooterExploreTitle, s.FooterExploreTitleI18n, lang, fallback),
		FooterSocialTitle:     l10n.Text(s.FooterSocialTitle, s.FooterSocialTitleI18n, lang, fallback),
		FooterNewsletterTitle: l10n.Text(s.FooterNewsletterTitle, s.FooterNewsletterTitleI18n, lang, fallback),
		NewsletterNote:        l10n.Text(s.NewsletterNote, s.NewsletterNoteI18n, lang, fallback),
		SeoTitle:              s.SeoTitle,
		SeoDescription:        s.SeoDescription,
		SeoImage:              s.SeoImage,
		UI:                    l10n.UITexts(s.UII18n, lang, fallback),
		CreatedAt:             s.CreatedAt,
		UpdatedAt:             s.UpdatedAt,
	}
}

// WithTexts returns v with non-blank dictionary entries under the Key*
// constants replacing the matching fields.
func (v SiteView) WithTexts(texts Texts) SiteView {
	v.BrandName = override(texts, KeyBrandName, v.BrandName)
	v.FooterTitle = override(texts, KeyFooterTitle, v.FooterTitle)
	v.FooterDescription = override(texts, KeyFooterDescription, v.FooterDescription)
	v.FooterExploreTitle = override(texts, KeyFooterExploreTitle, v.FooterExploreTitle)
	v.FooterSocialTitle = override(texts, KeyFooterSocialTitle, v.FooterSocialTitle)
	v.FooterNewsletterTitle = override(texts, KeyFooterNewsletterTitle, v.FooterNewsletterTitle)
	v.NewsletterNote = override(texts, KeyNewsletterNote, v.NewsletterNote)
	return v
}

// HeroView is the hero block of a server-rendered page.
type HeroView struct {
	Anchor      string
	Kicker      string
	Title       string
	Subtitle    string
	CTALabel    string
	CTAURL      string
	ScrollLabel string
	ImageURL    string
}

// Hero builds the hero block of page. Dictionary entries "section.hero.*"
// override the section's values; without a hero section the block falls back
// to the brand name and dictionary entries.
func (a *Assembler) Hero(page *PageView, texts Texts, brandName string) HeroView {
	h := HeroView{
		Anchor:   model.HeroAnchor,
		Title:    brandName,
		CTAURL:   "#" + model.SectionKeyExpeditions,
		ImageURL: a.media.Static(DefaultHeroImage),
	}
	if page != nil {
		if s := page.Section(model.SectionKeyHero); s != nil {
			p, _ := s.Typed.(HeroPayload)
			h.Anchor = s.Anchor
			h.Kicker = p.Kicker
			if s.Title != "" {
				h.Title = s.Title
			}
			h.Subtitle = s.Subtitle
			h.CTALabel = p.CTALabel
			if p.CTAURL != "" {
				h.CTAURL = p.CTAURL
			}
			h.ScrollLabel = p.ScrollLabel
			if len(s.Images) > 0 {
				h.ImageURL = a.media.Resolve(store.Cover{}, s.Images[0].ImageURL, DefaultHeroImage)
			}
		}
	}
	h.Kicker = override(texts, "section.hero.kicker", h.Kicker)
	h.Title = override(texts, "section.hero.title", h.Title)
	h.Subtitle = override(texts, "section.hero.subtitle", h.Subtitle)
	h.CTALabel = override(texts, "section.hero.cta_label", h.CTALabel)
	h.ScrollLabel = override(texts, "section.hero.scroll_label", h.ScrollLabel)
	return h
}

// LanguageSwitch is an entry of the language switcher.
type LanguageSwitch struct {
	Code     string
	Label    string
	URL      string
	IsActive bool
	Order    int64
}

// LanguageSwitches lists the switcher entries for page. Labels come from the
// "lang.{code}" dictionary entries, defaulting to the language name.
func LanguageSwitches(page *PageView, langs []store.Language, current string, texts Texts) []LanguageSwitch {
	path := "/"
	if page != nil && !page.IsHome {
		path = "/" + page.Slug + "/"
	}
	if len(langs) == 0 {
		name, _ := model.CommonLanguageName(model.DefaultLanguageCode)
		langs = []store.Language{{Code: model.DefaultLanguageCode, Name: name}}
	}
	out := make([]LanguageSwitch, 0, len(langs))
	for _, l := range langs {
		out = append(out, LanguageSwitch{
			Code:     l.Code,
			Label:    override(texts, "lang."+l.Code, l.Name),
			URL:      path + "?lang=" + l.Code,
			IsActive: l.Code == current,
			Order:    l.Order,
		})
	}
	return out
}
