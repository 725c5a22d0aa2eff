// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package store

import (
	"database/sql"
	"time"

	"github.com/olegiv/folio/internal/model"
)

// Language is a selectable content language.
type Language struct {
	ID        int64     `db:"id" json:"id"`
	Code      string    `db:"code" json:"code"`
	Name      string    `db:"name" json:"name"`
	IsDefault bool      `db:"is_default" json:"is_default"`
	IsActive  bool      `db:"is_active" json:"is_active"`
	Order     int64     `db:"order" json:"order"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}

// SiteSettings is the single row of site-wide settings.
type SiteSettings struct {
	ID                        int64              `db:"id"`
	BrandName                 string             `db:"brand_name"`
	BrandNameI18n             model.Translations `db:"brand_name_i18n"`
	FooterTitle               string             `db:"footer_title"`
	FooterTitleI18n           model.Translations `db:"footer_title_i18n"`
	FooterDescription         string             `db:"footer_description"`
	FooterDescriptionI18n     model.Translations `db:"footer_description_i18n"`
	FooterExploreTitle        string             `db:"footer_explore_title"`
	FooterExploreTitleI18n    model.Translations `db:"footer_explore_title_i18n"`
	FooterSocialTitle         string             `db:"footer_social_title"`
	FooterSocialTitleI18n     model.Translations `db:"footer_social_title_i18n"`
	FooterNewsletterTitle     string             `db:"footer_newsletter_title"`
	FooterNewsletterTitleI18n model.Translations `db:"footer_newsletter_title_i18n"`
	NewsletterNote            string             `db:"newsletter_note"`
	NewsletterNoteI18n        model.Translations `db:"newsletter_note_i18n"`
	UII18n                    model.JSONObject   `db:"ui_i18n"`
	ContactEmail              string             `db:"contact_email"`
	SeoTitle                  string             `db:"seo_title"`
	SeoDescription            string             `db:"seo_description"`
	SeoImage                  string             `db:"seo_image"`
	CreatedAt                 time.Time          `db:"created_at"`
	UpdatedAt                 time.Time          `db:"updated_at"`
}

// SiteText is one entry of the flat key to text dictionary.
type SiteText struct {
	ID          int64              `db:"id" json:"id"`
	Key         string             `db:"key" json:"key"`
	Group       string             `db:"group" json:"group"`
	Description string             `db:"description" json:"description"`
	Text        string             `db:"text" json:"text"`
	TextI18n    model.Translations `db:"text_i18n" json:"text_i18n"`
	Order       int64              `db:"order" json:"order"`
	IsPublished bool               `db:"is_published" json:"is_published"`
	CreatedAt   time.Time          `db:"created_at" json:"created_at"`
	UpdatedAt   time.Time          `db:"updated_at" json:"updated_at"`
}

// TranslationKey is a key of the legacy normalized translation store.
type TranslationKey struct {
	ID          int64     `db:"id"`
	Key         string    `db:"key"`
	Namespace   string    `db:"namespace"`
	Description string    `db:"description"`
	IsActive    bool      `db:"is_active"`
	CreatedAt   time.Time `db:"created_at"`
	UpdatedAt   time.Time `db:"updated_at"`
}

// KeyTranslation is the text of one legacy translation key in one language.
type KeyTranslation struct {
	KeyID int64  `db:"key_id"`
	Text  string `db:"text"`
}

// Page is a routable page made of ordered sections.
type Page struct {
	ID                 int64              `db:"id"`
	Slug               string             `db:"slug"`
	Title              string             `db:"title"`
	TitleI18n          model.Translations `db:"title_i18n"`
	SeoTitle           string             `db:"seo_title"`
	SeoTitleI18n       model.Translations `db:"seo_title_i18n"`
	SeoDescription     string             `db:"seo_description"`
	SeoDescriptionI18n model.Translations `db:"seo_description_i18n"`
	SeoImage           string             `db:"seo_image"`
	IsActive           bool               `db:"is_active"`
	IsHome             bool               `db:"is_home"`
	Order              int64              `db:"order"`
	IsPublished        bool               `db:"is_published"`
	CreatedAt          time.Time          `db:"created_at"`
	UpdatedAt          time.Time          `db:"updated_at"`
}

// PageSection is a typed content block of a page.
type PageSection struct {
	ID           int64              `db:"id"`
	PageID       int64              `db:"page_id"`
	Key          string             `db:"key"`
	SectionType  model.SectionType  `db:"section_type"`
	Title        string             `db:"title"`
	TitleI18n    model.Translations `db:"title_i18n"`
	Subtitle     string             `db:"subtitle"`
	SubtitleI18n model.Translations `db:"subtitle_i18n"`
	Body         string             `db:"body"`
	BodyI18n     model.Translations `db:"body_i18n"`
	Payload      model.JSONObject   `db:"payload"`
	PayloadI18n  model.JSONObject   `db:"payload_i18n"`
	Order        int64              `db:"order"`
	IsPublished  bool               `db:"is_published"`
	CreatedAt    time.Time          `db:"created_at"`
	UpdatedAt    time.Time          `db:"updated_at"`
}

// SectionImage is an image attached to a section.
type SectionImage struct {
	ID          int64     `db:"id" json:"id"`
	SectionID   int64     `db:"section_id" json:"-"`
	ImageURL    string    `db:"image_url" json:"image_url"`
	AltText     string    `db:"alt_text" json:"alt_text"`
	Caption     string    `db:"caption" json:"caption"`
	Order       int64     `db:"order" json:"order"`
	IsPublished bool      `db:"is_published" json:"is_published"`
	CreatedAt   time.Time `db:"created_at" json:"-"`
	UpdatedAt   time.Time `db:"updated_at" json:"-"`
}

// MediaAsset is an uploaded or bundled image.
type MediaAsset struct {
	ID          int64     `db:"id"`
	Title       string    `db:"title"`
	FilePath    string    `db:"file_path"`
	StaticPath  string    `db:"static_path"`
	AltText     string    `db:"alt_text"`
	Order       int64     `db:"order"`
	IsPublished bool      `db:"is_published"`
	CreatedAt   time.Time `db:"created_at"`
	UpdatedAt   time.Time `db:"updated_at"`
}

// Cover is the media asset joined onto a collection row, if any.
type Cover struct {
	CoverFile   sql.NullString `db:"cover_file"`
	CoverStatic sql.NullString `db:"cover_static"`
}

// Expedition is a travel expedition card.
type Expedition struct {
	ID              int64              `db:"id"`
	Slug            string             `db:"slug"`
	Title           string             `db:"title"`
	TitleI18n       model.Translations `db:"title_i18n"`
	Subtitle        string             `db:"subtitle"`
	SubtitleI18n    model.Translations `db:"subtitle_i18n"`
	DateLabel       string             `db:"date_label"`
	DateLabelI18n   model.Translations `db:"date_label_i18n"`
	Description     string             `db:"description"`
	DescriptionI18n model.Translations `db:"description_i18n"`
	ImageURL        string             `db:"image_url"`
	CoverID         sql.NullInt64      `db:"cover_id"`
	Order           int64              `db:"order"`
	IsPublished     bool               `db:"is_published"`
	CreatedAt       time.Time          `db:"created_at"`
	UpdatedAt       time.Time          `db:"updated_at"`
	Cover
}

// Category is a gallery category tile.
type Category struct {
	ID          int64              `db:"id"`
	Slug        string             `db:"slug"`
	Title       string             `db:"title"`
	TitleI18n   model.Translations `db:"title_i18n"`
	Size        string             `db:"size"`
	ImageURL    string             `db:"image_url"`
	CoverID     sql.NullInt64      `db:"cover_id"`
	Order       int64              `db:"order"`
	IsPublished bool               `db:"is_published"`
	CreatedAt   time.Time          `db:"created_at"`
	UpdatedAt   time.Time          `db:"updated_at"`
	Cover
}

// Story is a journal story card.
type Story struct {
	ID              int64              `db:"id"`
	Slug            string             `db:"slug"`
	Title           string             `db:"title"`
	TitleI18n       model.Translations `db:"title_i18n"`
	DateLabel       string             `db:"date_label"`
	DateLabelI18n   model.Translations `db:"date_label_i18n"`
	Description     string             `db:"description"`
	DescriptionI18n model.Translations `db:"description_i18n"`
	ImageURL        string             `db:"image_url"`
	CoverID         sql.NullInt64      `db:"cover_id"`
	Order           int64              `db:"order"`
	IsPublished     bool               `db:"is_published"`
	CreatedAt       time.Time          `db:"created_at"`
	UpdatedAt       time.Time          `db:"updated_at"`
	Cover
}

// Menu is a named navigation menu.
type Menu struct {
	ID          int64              `db:"id"`
	Code        string             `db:"code"`
	Title       string             `db:"title"`
	TitleI18n   model.Translations `db:"title_i18n"`
	Location    string             `db:"location"`
	Order       int64              `db:"order"`
	IsPublished bool               `db:"is_published"`
	CreatedAt   time.Time          `db:"created_at"`
	UpdatedAt   time.Time          `db:"updated_at"`
}

// LinkedPage is the page joined onto a menu or navigation item, if any.
type LinkedPage struct {
	PageSlug   sql.NullString `db:"page_slug"`
	PageIsHome sql.NullBool   `db:"page_is_home"`
}

// MenuItem is an entry of a Menu.
type MenuItem struct {
	ID           int64              `db:"id"`
	MenuID       int64              `db:"menu_id"`
	MenuCode     string             `db:"menu_code"`
	Label        string             `db:"label"`
	LabelI18n    model.Translations `db:"label_i18n"`
	PageID       sql.NullInt64      `db:"page_id"`
	Href         string             `db:"href"`
	OpenInNewTab bool               `db:"open_in_new_tab"`
	Order        int64              `db:"order"`
	IsPublished  bool               `db:"is_published"`
	CreatedAt    time.Time          `db:"created_at"`
	UpdatedAt    time.Time          `db:"updated_at"`
	LinkedPage
}

// NavigationItem is an entry of the legacy flat navigation table.
type NavigationItem struct {
	ID           int64              `db:"id"`
	Section      string             `db:"section"`
	Menu         string             `db:"menu"`
	Title        string             `db:"title"`
	TitleI18n    model.Translations `db:"title_i18n"`
	Slug         string             `db:"slug"`
	URLKey       string             `db:"url_key"`
	PageID       sql.NullInt64      `db:"page_id"`
	ExternalURL  string             `db:"external_url"`
	Href         string             `db:"href"`
	OpenInNewTab bool               `db:"open_in_new_tab"`
	Order        int64              `db:"order"`
	IsPublished  bool               `db:"is_published"`
	CreatedAt    time.Time          `db:"created_at"`
	UpdatedAt    time.Time          `db:"updated_at"`
	LinkedPage
}

// ContactMessage is a visitor message from the contact form.
type ContactMessage struct {
	ID        int64     `db:"id" json:"id"`
	Ref       string    `db:"ref" json:"ref"`
	Name      string    `db:"name" json:"name"`
	Email     string    `db:"email" json:"email"`
	Message   string    `db:"message" json:"message"`
	IsRead    bool      `db:"is_read" json:"is_read"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

// Event is an entry of the persisted event log.
type Event struct {
	ID        int64     `db:"id" json:"id"`
	Level     string    `db:"level" json:"level"`
	Category  string    `db:"category" json:"category"`
	Message   string    `db:"message" json:"message"`
	Metadata  string    `db:"metadata" json:"metadata"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}
