// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package model

// SectionType identifies the shape of a page section's payload.
type SectionType string

// Section types.
const (
	SectionHero     SectionType = "hero"
	SectionRichText SectionType = "rich_text"
	SectionCards    SectionType = "cards"
	SectionGallery  SectionType = "gallery"
	SectionStories  SectionType = "stories"
	SectionContact  SectionType = "contact"
)

// SectionTypes lists every valid section type.
var SectionTypes = []SectionType{
	SectionHero, SectionRichText, SectionCards, SectionGallery, SectionStories, SectionContact,
}

// IsValid reports whether t is a known section type.
func (t SectionType) IsValid() bool {
	for _, v := range SectionTypes {
		if v == t {
			return true
		}
	}
	return false
}

// Well-known section keys.
const (
	SectionKeyHero        = "hero"
	SectionKeyExpeditions = "expeditions"
	SectionKeyCategories  = "categories"
	SectionKeyStories     = "stories"
	SectionKeyContact     = "contact"

	// HeroAnchor is the anchor used by the hero section when its payload
	// does not name one.
	HeroAnchor = "journey"

	// HomeSlug aliases the home page in page lookups.
	HomeSlug = "home"
)

// Category card sizes
const (
	CategorySizeLarge = "large"
	CategorySizeSmall = "small"
	CategorySizeWide  = "wide"
)
