// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package content

import (
	"strings"

	"github.com/olegiv/folio/internal/model"
)

// Payload is the typed form of a section payload. The concrete type is
// selected by the section type.
type Payload interface {
	SectionType() model.SectionType
}

// HeroPayload is the payload of a hero section.
type HeroPayload struct {
	Anchor      string `json:"anchor,omitempty"`
	Kicker      string `json:"kicker,omitempty"`
	CTALabel    string `json:"cta_label,omitempty"`
	CTAURL      string `json:"cta_url,omitempty"`
	ScrollLabel string `json:"scroll_label,omitempty"`
}

// RichTextPayload is the payload of a rich text section.
type RichTextPayload struct {
	Anchor string `json:"anchor,omitempty"`
}

// Card is an entry of a cards or stories list.
type Card struct {
	Slug        string `json:"slug,omitempty"`
	Title       string `json:"title"`
	Subtitle    string `json:"subtitle,omitempty"`
	DateLabel   string `json:"date_label,omitempty"`
	Description string `json:"description,omitempty"`
	ImageURL    string `json:"image_url,omitempty"`
}

// CardsPayload is the payload of a cards section.
type CardsPayload struct {
	Anchor      string `json:"anchor,omitempty"`
	Source      string `json:"source,omitempty"`
	Eyebrow     string `json:"eyebrow,omitempty"`
	Title       string `json:"title,omitempty"`
	Subtitle    string `json:"subtitle,omitempty"`
	ActionLabel string `json:"action_label,omitempty"`
	Cards       []Card `json:"cards"`
}

// GalleryItem is an entry of a gallery section.
type GalleryItem struct {
	Slug     string `json:"slug,omitempty"`
	Title    string `json:"title"`
	ImageURL string `json:"image_url,omitempty"`
	Size     string `json:"size,omitempty"`
}

// GalleryPayload is the payload of a gallery section.
type GalleryPayload struct {
	Anchor   string        `json:"anchor,omitempty"`
	Source   string        `json:"source,omitempty"`
	Eyebrow  string        `json:"eyebrow,omitempty"`
	Title    string        `json:"title,omitempty"`
	Subtitle string        `json:"subtitle,omitempty"`
	Items    []GalleryItem `json:"items"`
}

// StoriesPayload is the payload of a stories section.
type StoriesPayload struct {
	Anchor      string `json:"anchor,omitempty"`
	Source      string `json:"source,omitempty"`
	Eyebrow     string `json:"eyebrow,omitempty"`
	Title       string `json:"title,omitempty"`
	ActionLabel string `json:"action_label,omitempty"`
	Items       []Card `json:"items"`
}

// ContactPayload is the payload of a contact section.
type ContactPayload struct {
	Anchor   string `json:"anchor,omitempty"`
	Location string `json:"location,omitempty"`
	Email    string `json:"email,omitempty"`
}

func (HeroPayload) SectionType() model.SectionType     { return model.SectionHero }
func (RichTextPayload) SectionType() model.SectionType { return model.SectionRichText }
func (CardsPayload) SectionType() model.SectionType    { return model.SectionCards }
func (GalleryPayload) SectionType() model.SectionType  { return model.SectionGallery }
func (StoriesPayload) SectionType() model.SectionType  { return model.SectionStories }
func (ContactPayload) SectionType() model.SectionType  { return model.SectionContact }

// DecodePayload converts a resolved payload map into the typed payload of
// section type t. Values of the wrong JSON type are ignored. An unknown
// section type yields nil.
func DecodePayload(t model.SectionType, m map[string]any) Payload {
	switch t {
	case model.SectionHero:
		return HeroPayload{
			Anchor:      str(m, "anchor"),
			Kicker:      str(m, "kicker"),
			CTALabel:    str(m, "cta_label"),
			CTAURL:      str(m, "cta_url"),
			ScrollLabel: str(m, "scroll_label"),
		}
	case model.SectionRichText:
		return RichTextPayload{Anchor: str(m, "anchor")}
	case model.SectionCards:
		return CardsPayload{
			Anchor:      str(m, "anchor"),
			Source:      str(m, "source"),
			Eyebrow:     str(m, "eyebrow"),
			Title:       str(m, "title"),
			Subtitle:    str(m, "subtitle"),
			ActionLabel: str(m, "action_label"),
			Cards:       cards(m, "cards"),
		}
	case model.SectionGallery:
		p := GalleryPayload{
			Anchor:   str(m, "anchor"),
			Source:   str(m, "source"),
			Eyebrow:  str(m, "eyebrow"),
			Title:    str(m, "title"),
			Subtitle: str(m, "subtitle"),
			Items:    []GalleryItem{},
		}
		for _, o := range objects(m, "items") {
			p.Items = append(p.Items, GalleryItem{
				Slug:     str(o, "slug"),
				Title:    str(o, "title"),
				ImageURL: str(o, "image_url"),
				Size:     str(o, "size"),
			})
		}
		return p
	case model.SectionStories:
		return StoriesPayload{
			Anchor:      str(m, "anchor"),
			Source:      str(m, "source"),
			Eyebrow:     str(m, "eyebrow"),
			Title:       str(m, "title"),
			ActionLabel: str(m, "action_label"),
			Items:       cards(m, "items"),
		}
	case model.SectionContact:
		return ContactPayload{
			Anchor:   str(m, "anchor"),
			Location: str(m, "location"),
			Email:    str(m, "email"),
		}
	}
	return nil
}

func str(m map[string]any, key string) string {
	s, _ := m[key].(string)
	return strings.TrimSpace(s)
}

func objects(m map[string]any, key string) []map[string]any {
	list, _ := m[key].([]any)
	out := make([]map[string]any, 0, len(list))
	for _, v := range list {
		if o, ok := v.(map[string]any); ok {
			out = append(out, o)
		}
	}
	return out
}

func cards(m map[string]any, key string) []Card {
	out := []Card{}
	for _, o := range objects(m, key) {
		out = append(out, Card{
			Slug:        str(o, "slug"),
			Title:       str(o, "title"),
			Subtitle:    str(o, "subtitle"),
			DateLabel:   str(o, "date_label"),
			Description: str(o, "description"),
			ImageURL:    str(o, "image_url"),
		})
	}
	return out
}
