// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package store

import (
	"context"
	"fmt"
	"time"
)

const languageColumns = `id, code, name, is_default, is_active, "order", created_at, updated_at`

// ListActiveLanguages returns active languages ordered by (order, id).
func (q *Queries) ListActiveLanguages(ctx context.Context) ([]Language, error) {
	var out []Language
	err := q.selectAll(ctx, &out, `SELECT `+languageColumns+` FROM languages
		WHERE is_active = 1 ORDER BY "order", id`)
	return out, err
}

// ListLanguages returns every language, active or not.
func (q *Queries) ListLanguages(ctx context.Context) ([]Language, error) {
	var out []Language
	err := q.selectAll(ctx, &out, `SELECT `+languageColumns+` FROM languages ORDER BY "order", id`)
	return out, err
}

// GetLanguage returns the language with the given id.
func (q *Queries) GetLanguage(ctx context.Context, id int64) (Language, error) {
	var l Language
	err := q.get(ctx, &l, `SELECT `+languageColumns+` FROM languages WHERE id = ?`, id)
	return l, err
}

// GetLanguageByCode returns the language with the given code.
func (q *Queries) GetLanguageByCode(ctx context.Context, code string) (Language, error) {
	var l Language
	err := q.get(ctx, &l, `SELECT `+languageColumns+` FROM languages WHERE code = ?`, code)
	return l, err
}

// CreateLanguage inserts l and returns it with its id set. Use SetDefaultLanguage
// to make a language the default; IsDefault is ignored here.
func (q *Queries) CreateLanguage(ctx context.Context, l Language) (Language, error) {
	stamp(&l.CreatedAt, &l.UpdatedAt)
	l.IsDefault = false
	id, err := q.insert(ctx, `INSERT INTO languages (code, name, is_default, is_active, "order", created_at, updated_at)
		VALUES (:code, :name, :is_default, :is_active, :order, :created_at, :updated_at)`, l)
	if err != nil {
		return Language{}, fmt.Errorf("inserting language %q: %w", l.Code, err)
	}
	l.ID = id
	return l, nil
}

// UpdateLanguage updates name, active flag and order of a language.
func (q *Queries) UpdateLanguage(ctx context.Context, l Language) error {
	res, err := q.q.ExecContext(ctx, `UPDATE languages SET name = ?, is_active = ?, "order" = ?, updated_at = ?
		WHERE id = ?`, l.Name, l.IsActive, l.Order, time.Now().UTC(), l.ID)
	return requireRow(res, err)
}

// SetDefaultLanguage makes the language with id the only default language.
// The language is activated as well.
func (q *Queries) SetDefaultLanguage(ctx context.Context, id int64) error {
	return q.WithTx(ctx, func(tx *Queries) error {
		if _, err := tx.GetLanguage(ctx, id); err != nil {
			return err
		}
		now := time.Now().UTC()
		if _, err := tx.q.ExecContext(ctx, `UPDATE languages SET is_default = 0, updated_at = ?
			WHERE is_default = 1 AND id <> ?`, now, id); err != nil {
			return fmt.Errorf("clearing default language: %w", err)
		}
		res, err := tx.q.ExecContext(ctx, `UPDATE languages SET is_default = 1, is_active = 1, updated_at = ?
			WHERE id = ?`, now, id)
		return requireRow(res, err)
	})
}
