// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Package dictionary builds the flat key to text dictionary used by the
// frontend and the server-rendered pages.
package dictionary

import (
	"context"
	"fmt"
	"strings"

	"github.com/olegiv/folio/internal/l10n"
	"github.com/olegiv/folio/internal/store"
)

// Source values reported by Dictionary.Source.
const (
	SourceSiteText = "site_text"
	SourceLegacy   = "legacy"
	SourceEmpty    = "empty"
)

// Store is the subset of store.Queries the builder reads.
type Store interface {
	ListPublishedSiteTexts(ctx context.Context) ([]store.SiteText, error)
	ListActiveTranslationKeys(ctx context.Context) ([]store.TranslationKey, error)
	ListKeyTranslations(ctx context.Context, langCode string) ([]store.KeyTranslation, error)
}

// Dictionary is a resolved key to text mapping for one language.
//
// Built from site texts it is sparse: a missing key means no override and the
// caller supplies its own default. Built from the legacy store it is total
// over the active keys.
type Dictionary struct {
	Lang    string
	Entries map[string]string
	Source  string
}

// Text returns the entry for key when it is non-blank, else def.
func (d Dictionary) Text(key, def string) string {
	if v, ok := d.Entries[key]; ok && strings.TrimSpace(v) != "" {
		return v
	}
	return def
}

// Len returns the number of entries.
func (d Dictionary) Len() int {
	return len(d.Entries)
}

// Builder builds dictionaries from the store.
type Builder struct {
	store Store
}

// NewBuilder creates a Builder.
func NewBuilder(s Store) *Builder {
	return &Builder{store: s}
}

// Build returns the dictionary for lang. Published site texts are the primary
// source; the legacy translation tables are read only when there are none.
func (b *Builder) Build(ctx context.Context, lang, fallback string) (Dictionary, error) {
	texts, err := b.store.ListPublishedSiteTexts(ctx)
	if err != nil {
		return Dictionary{}, fmt.Errorf("listing site texts: %w", err)
	}
	if len(texts) > 0 {
		entries := make(map[string]string, len(texts))
		for _, t := range texts {
			entries[t.Key] = l10n.Text(t.Text, t.TextI18n, lang, fallback)
		}
		return Dictionary{Lang: lang, Entries: entries, Source: SourceSiteText}, nil
	}

	entries, err := b.legacy(ctx, lang, fallback)
	if err != nil {
		return Dictionary{}, err
	}
	if len(entries) == 0 {
		return Dictionary{Lang: lang, Entries: map[string]string{}, Source: SourceEmpty}, nil
	}
	return Dictionary{Lang: lang, Entries: entries, Source: SourceLegacy}, nil
}

// legacy resolves every active translation key: the lang row, else the
// fallback row, else the key itself.
func (b *Builder) legacy(ctx context.Context, lang, fallback string) (map[string]string, error) {
	keys, err := b.store.ListActiveTranslationKeys(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing translation keys: %w", err)
	}
	if len(keys) == 0 {
		return nil, nil
	}

	keyByID := make(map[int64]string, len(keys))
	for _, k := range keys {
		keyByID[k.ID] = k.Key
	}
	entries := make(map[string]string, len(keys))

	rows, err := b.store.ListKeyTranslations(ctx, lang)
	if err != nil {
		return nil, fmt.Errorf("listing %s translations: %w", lang, err)
	}
	for _, r := range rows {
		if key, ok := keyByID[r.KeyID]; ok {
			entries[key] = r.Text
		}
	}

	if fallback != lang {
		rows, err := b.store.ListKeyTranslations(ctx, fallback)
		if err != nil {
			return nil, fmt.Errorf("listing %s translations: %w", fallback, err)
		}
		for _, r := range rows {
			key, ok := keyByID[r.KeyID]
			if !ok {
				continue
			}
			if _, done := entries[key]; !done {
				entries[key] = r.Text
			}
		}
	}

	for _, k := range keys {
		if _, ok := entries[k.Key]; !ok {
			entries[k.Key] = k.Key
		}
	}
	return entries, nil
}
