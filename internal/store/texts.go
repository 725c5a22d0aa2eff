// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package store

import (
	"context"
	"fmt"
	"time"
)

const siteTextColumns = `id, "key", "group", description, text, text_i18n, "order", is_published, created_at, updated_at`

// ListPublishedSiteTexts returns published site texts ordered by group, order and key.
func (q *Queries) ListPublishedSiteTexts(ctx context.Context) ([]SiteText, error) {
	var out []SiteText
	err := q.selectAll(ctx, &out, `SELECT `+siteTextColumns+` FROM site_texts
		WHERE is_published = 1 ORDER BY "group", "order", "key"`)
	return out, err
}

// ListSiteTexts returns all site texts, optionally restricted to one group.
func (q *Queries) ListSiteTexts(ctx context.Context, group string) ([]SiteText, error) {
	var out []SiteText
	query := `SELECT ` + siteTextColumns + ` FROM site_texts`
	var args []any
	if group != "" {
		query += ` WHERE "group" = ?`
		args = append(args, group)
	}
	query += ` ORDER BY "group", "order", "key"`
	err := q.selectAll(ctx, &out, query, args...)
	return out, err
}

// GetSiteTextByKey returns the site text with the given key.
func (q *Queries) GetSiteTextByKey(ctx context.Context, key string) (SiteText, error) {
	var t SiteText
	err := q.get(ctx, &t, `SELECT `+siteTextColumns+` FROM site_texts WHERE "key" = ?`, key)
	return t, err
}

// UpsertSiteText inserts t or updates the existing row with the same key.
func (q *Queries) UpsertSiteText(ctx context.Context, t SiteText) (SiteText, error) {
	stamp(&t.CreatedAt, &t.UpdatedAt)
	if _, err := q.namedExec(ctx, `INSERT INTO site_texts
		("key", "group", description, text, text_i18n, "order", is_published, created_at, updated_at)
		VALUES (:key, :group, :description, :text, :text_i18n, :order, :is_published, :created_at, :updated_at)
		ON CONFLICT ("key") DO UPDATE SET
			"group" = excluded."group",
			description = excluded.description,
			text = excluded.text,
			text_i18n = excluded.text_i18n,
			"order" = excluded."order",
			is_published = excluded.is_published,
			updated_at = excluded.updated_at`, t); err != nil {
		return SiteText{}, fmt.Errorf("upserting site text %q: %w", t.Key, err)
	}
	return q.GetSiteTextByKey(ctx, t.Key)
}

// ListActiveTranslationKeys returns the active keys of the legacy store.
func (q *Queries) ListActiveTranslationKeys(ctx context.Context) ([]TranslationKey, error) {
	var out []TranslationKey
	err := q.selectAll(ctx, &out, `SELECT id, "key", namespace, description, is_active, created_at, updated_at
		FROM translation_keys WHERE is_active = 1 ORDER BY namespace, "key"`)
	return out, err
}

// ListKeyTranslations returns legacy translations of active keys into the
// active language with the given code.
func (q *Queries) ListKeyTranslations(ctx context.Context, langCode string) ([]KeyTranslation, error) {
	var out []KeyTranslation
	err := q.selectAll(ctx, &out, `SELECT t.key_id, t.text
		FROM translations t
		JOIN languages l ON l.id = t.language_id
		JOIN translation_keys k ON k.id = t.key_id
		WHERE l.code = ? AND l.is_active = 1 AND k.is_active = 1`, langCode)
	return out, err
}

// UpsertTranslationKey inserts a legacy key or updates the one with the same key.
func (q *Queries) UpsertTranslationKey(ctx context.Context, k TranslationKey) (TranslationKey, error) {
	stamp(&k.CreatedAt, &k.UpdatedAt)
	if _, err := q.namedExec(ctx, `INSERT INTO translation_keys
		("key", namespace, description, is_active, created_at, updated_at)
		VALUES (:key, :namespace, :description, :is_active, :created_at, :updated_at)
		ON CONFLICT ("key") DO UPDATE SET
			namespace = excluded.namespace,
			description = excluded.description,
			is_active = excluded.is_active,
			updated_at = excluded.updated_at`, k); err != nil {
		return TranslationKey{}, fmt.Errorf("upserting translation key %q: %w", k.Key, err)
	}
	var out TranslationKey
	err := q.get(ctx, &out, `SELECT id, "key", namespace, description, is_active, created_at, updated_at
		FROM translation_keys WHERE "key" = ?`, k.Key)
	return out, err
}

// UpsertKeyTranslation sets the text of a legacy key in one language.
func (q *Queries) UpsertKeyTranslation(ctx context.Context, languageID, keyID int64, text string) error {
	now := time.Now().UTC()
	_, err := q.q.ExecContext(ctx, `INSERT INTO translations (language_id, key_id, text, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT (language_id, key_id) DO UPDATE SET text = excluded.text, updated_at = excluded.updated_at`,
		languageID, keyID, text, now, now)
	return err
}
