// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package model

// Menu codes
const (
	MenuMain   = "main"
	MenuFooter = "footer"
	MenuSocial = "social"
)

// DefaultMenus are always present in navigation payloads, even when empty.
var DefaultMenus = []string{MenuMain, MenuFooter, MenuSocial}

// Navigation sections of the legacy navigation table.
const (
	NavSectionHeader = "header"
	NavSectionFooter = "footer"
)

// Link kinds of a resolved menu item.
const (
	LinkKindExternal = "external"
	LinkKindPage     = "page"
	LinkKindAnchor   = "anchor"
)

// Menu item sources.
const (
	MenuSourceMenu   = "menu"
	MenuSourceLegacy = "navigation"
)

// SectionForMenu returns the page region a menu is rendered in.
func SectionForMenu(code string) string {
	if code == MenuFooter || code == MenuSocial {
		return NavSectionFooter
	}
	return NavSectionHeader
}
