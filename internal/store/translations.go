// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package store

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/olegiv/folio/internal/model"
)

// ErrUnknownField is returned for an entity/field pair that has no
// translation column.
var ErrUnknownField = errors.New("unknown translatable field")

// translatableFields maps an entity name to its translatable fields. Each
// field has a sibling "{field}_i18n" column in the entity's table.
var translatableFields = map[string][]string{
	"site_settings": {
		"brand_name", "footer_title", "footer_description", "footer_explore_title",
		"footer_social_title", "footer_newsletter_title", "newsletter_note",
	},
	"site_texts":       {"text"},
	"pages":            {"title", "seo_title", "seo_description"},
	"page_sections":    {"title", "subtitle", "body"},
	"expeditions":      {"title", "subtitle", "date_label", "description"},
	"categories":       {"title"},
	"stories":          {"title", "date_label", "description"},
	"menus":            {"title"},
	"menu_items":       {"label"},
	"navigation_items": {"title"},
}

// TranslatableFields returns the translatable fields per entity, sorted.
func TranslatableFields() map[string][]string {
	out := make(map[string][]string, len(translatableFields))
	for entity, fields := range translatableFields {
		f := append([]string(nil), fields...)
		sort.Strings(f)
		out[entity] = f
	}
	return out
}

func translationColumn(entity, field string) (string, error) {
	for _, f := range translatableFields[entity] {
		if f == field {
			return field + "_i18n", nil
		}
	}
	return "", fmt.Errorf("%w: %s.%s", ErrUnknownField, entity, field)
}

// GetTranslations returns the translation map of one field of one row.
func (q *Queries) GetTranslations(ctx context.Context, entity, field string, id int64) (model.Translations, error) {
	col, err := translationColumn(entity, field)
	if err != nil {
		return nil, err
	}
	if entity == "site_settings" {
		if _, err := q.EnsureSiteSettings(ctx); err != nil {
			return nil, err
		}
		id = 1
	}
	var tr model.Translations
	// entity and col come from translatableFields, never from input.
	err = q.get(ctx, &tr, `SELECT `+col+` FROM `+entity+` WHERE id = ?`, id)
	return tr, err
}

// UpdateTranslations replaces the translation map of one field of one row.
func (q *Queries) UpdateTranslations(ctx context.Context, entity, field string, id int64, tr model.Translations) error {
	col, err := translationColumn(entity, field)
	if err != nil {
		return err
	}
	if tr == nil {
		tr = model.Translations{}
	}
	if entity == "site_settings" {
		if _, err := q.EnsureSiteSettings(ctx); err != nil {
			return err
		}
		id = 1
	}
	res, err := q.q.ExecContext(ctx, `UPDATE `+entity+` SET `+col+` = ?, updated_at = ? WHERE id = ?`,
		tr, time.Now().UTC(), id)
	return requireRow(res, err)
}
