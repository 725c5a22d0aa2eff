// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Package handler provides the HTTP handlers of the public site.
package handler

import (
	"context"
	"database/sql"
	"log/slog"

	"github.com/olegiv/folio/internal/content"
	"github.com/olegiv/folio/internal/dictionary"
	"github.com/olegiv/folio/internal/language"
	"github.com/olegiv/folio/internal/model"
	"github.com/olegiv/folio/internal/navigation"
	"github.com/olegiv/folio/internal/store"
)

// Site bundles the read-side builders shared by the web pages and the API.
type Site struct {
	Queries    *store.Queries
	Content    *content.Assembler
	Dictionary *dictionary.Builder
	Navigation *navigation.Builder
	Languages  *language.Registry
	Logger     *slog.Logger
}

// NewSite wires the builders over db.
func NewSite(db *sql.DB, media content.MediaURLs, defaultLang string, logger *slog.Logger) *Site {
	if logger == nil {
		logger = slog.Default()
	}
	q := store.New(db)
	return &Site{
		Queries:    q,
		Content:    content.NewAssembler(q, media),
		Dictionary: dictionary.NewBuilder(q),
		Navigation: navigation.NewBuilder(q, logger),
		Languages:  language.NewRegistry(q, defaultLang, logger),
		Logger:     logger,
	}
}

// Texts returns the dictionary for res. A build failure is logged and
// yields an empty dictionary, so pages still render with their defaults.
func (s *Site) Texts(ctx context.Context, res language.Resolution) dictionary.Dictionary {
	d, err := s.Dictionary.Build(ctx, res.Code, res.Fallback)
	if err != nil {
		s.Logger.Error("building dictionary failed",
			"category", model.EventCategoryLanguage, "lang", res.Code, "error", err)
		return dictionary.Dictionary{Lang: res.Code, Entries: map[string]string{}, Source: dictionary.SourceEmpty}
	}
	return d
}
