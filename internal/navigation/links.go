// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package navigation

import (
	"strings"

	"github.com/olegiv/folio/internal/model"
)

var externalPrefixes = []string{"http://", "https://", "mailto:"}

func isExternalHref(href string) bool {
	for _, p := range externalPrefixes {
		if strings.HasPrefix(href, p) {
			return true
		}
	}
	return false
}

// Href resolves the target of a menu item. The first present source wins:
// external URL, linked page ("/" for the home page), url key ("/#key"),
// raw href, then "#".
func Href(href, pageSlug string, pageIsHome, linked bool, urlKey, external string) string {
	switch {
	case external != "":
		return external
	case linked && pageIsHome:
		return "/"
	case linked:
		return "/" + pageSlug + "/"
	case urlKey != "":
		return "/#" + urlKey
	case href != "":
		return href
	}
	return "#"
}

// Kind classifies a menu item. Explicit sources decide first; otherwise the
// raw href is inspected: "#" and "/#" are anchors, http(s) and mailto links
// are external, other root-relative paths are pages.
func Kind(href string, linked bool, urlKey, external string) string {
	switch {
	case external != "":
		return model.LinkKindExternal
	case linked:
		return model.LinkKindPage
	case urlKey != "":
		return model.LinkKindAnchor
	case strings.HasPrefix(href, "#"), strings.HasPrefix(href, "/#"):
		return model.LinkKindAnchor
	case isExternalHref(href):
		return model.LinkKindExternal
	case strings.HasPrefix(href, "/"):
		return model.LinkKindPage
	case href == "":
		return model.LinkKindAnchor
	}
	return model.LinkKindExternal
}

// LabelKey returns the dictionary key of a menu item label. Social and footer
// menus get their own namespaces; everything else lives under "nav.".
func LabelKey(menu, token string) string {
	token = strings.ReplaceAll(token, "-", "_")
	switch menu {
	case model.MenuSocial:
		return "social." + token
	case model.MenuFooter:
		return "footer.nav." + token
	}
	return "nav." + token
}
