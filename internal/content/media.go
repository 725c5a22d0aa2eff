// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package content

import (
	"strings"

	"github.com/olegiv/folio/internal/store"
)

// Default images served from the static directory when an entry has none.
const (
	DefaultHeroImage       = "content/images/hero-default.svg"
	DefaultExpeditionImage = "content/images/expedition-default.svg"
	DefaultCategoryImage   = "content/images/category-default.svg"
	DefaultStoryImage      = "content/images/story-default.svg"
)

// MediaURLs turns stored media references into public URLs.
type MediaURLs struct {
	// MediaPrefix is prepended to uploaded file paths.
	MediaPrefix string
	// StaticPrefix is prepended to bundled static paths.
	StaticPrefix string
}

// Resolve picks the URL of an image: the cover's uploaded file, then its
// static path, then the legacy plain URL, then the static default.
func (m MediaURLs) Resolve(cover store.Cover, legacyURL, defaultStatic string) string {
	if cover.CoverFile.Valid && strings.TrimSpace(cover.CoverFile.String) != "" {
		return join(m.MediaPrefix, cover.CoverFile.String)
	}
	if cover.CoverStatic.Valid && strings.TrimSpace(cover.CoverStatic.String) != "" {
		return m.Static(cover.CoverStatic.String)
	}
	if u := strings.TrimSpace(legacyURL); u != "" {
		return u
	}
	return m.Static(defaultStatic)
}

// Static returns the public URL of a bundled static file.
func (m MediaURLs) Static(path string) string {
	return join(m.StaticPrefix, path)
}

func join(prefix, path string) string {
	if prefix == "" {
		prefix = "/"
	}
	return strings.TrimRight(prefix, "/") + "/" + strings.TrimLeft(path, "/")
}
