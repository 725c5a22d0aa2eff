// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package navigation

import (
	"testing"

	"github.com/olegiv/folio/internal/model"
)

// TestHrefPrecedence enumerates every combination of link sources and checks
// that the highest-ranked present source decides the href.
func TestHrefPrecedence(t *testing.T) {
	for mask := 0; mask < 16; mask++ {
		external, page, urlKey, raw := mask&8 != 0, mask&4 != 0, mask&2 != 0, mask&1 != 0

		var ext, key, href string
		if external {
			ext = "https://example.com"
		}
		if urlKey {
			key = "journey"
		}
		if raw {
			href = "/raw/"
		}

		var want string
		switch {
		case external:
			want = "https://example.com"
		case page:
			want = "/about/"
		case urlKey:
			want = "/#journey"
		case raw:
			want = "/raw/"
		default:
			want = "#"
		}

		if got := Href(href, "about", false, page, key, ext); got != want {
			t.Errorf("mask %04b: Href() = %q, want %q", mask, got, want)
		}
	}
}

func TestHrefHomePage(t *testing.T) {
	if got := Href("", "home", true, true, "", ""); got != "/" {
		t.Errorf("Href() = %q, want /", got)
	}
}

func TestKind(t *testing.T) {
	tests := []struct {
		name     string
		href     string
		linked   bool
		urlKey   string
		external string
		want     string
	}{
		{"external url", "/x", true, "k", "https://x", model.LinkKindExternal},
		{"linked page", "#x", true, "k", "", model.LinkKindPage},
		{"url key", "https://x", false, "k", "", model.LinkKindAnchor},
		{"hash href", "#contact", false, "", "", model.LinkKindAnchor},
		{"root hash href", "/#contact", false, "", "", model.LinkKindAnchor},
		{"http href", "http://x", false, "", "", model.LinkKindExternal},
		{"mailto href", "mailto:a@b.c", false, "", "", model.LinkKindExternal},
		{"root path", "/about/", false, "", "", model.LinkKindPage},
		{"bare word", "about", false, "", "", model.LinkKindExternal},
		{"nothing", "", false, "", "", model.LinkKindAnchor},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Kind(tt.href, tt.linked, tt.urlKey, tt.external); got != tt.want {
				t.Errorf("Kind() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestLabelKey(t *testing.T) {
	tests := []struct {
		menu, token, want string
	}{
		{model.MenuSocial, "mail", "social.mail"},
		{model.MenuFooter, "journal-page", "footer.nav.journal_page"},
		{model.MenuMain, "journey", "nav.journey"},
		{"custom", "x", "nav.x"},
	}
	for _, tt := range tests {
		if got := LabelKey(tt.menu, tt.token); got != tt.want {
			t.Errorf("LabelKey(%q, %q) = %q, want %q", tt.menu, tt.token, got, tt.want)
		}
	}
}
