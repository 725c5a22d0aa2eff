// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package store

import (
	"context"
	"time"

	"github.com/olegiv/folio/internal/model"
)

// EnsureSiteSettings returns the settings row, creating it with column
// defaults on first use. Concurrent callers never create a second row.
func (q *Queries) EnsureSiteSettings(ctx context.Context) (SiteSettings, error) {
	if _, err := q.q.ExecContext(ctx, `INSERT OR IGNORE INTO site_settings (id) VALUES (1)`); err != nil {
		return SiteSettings{}, err
	}
	return q.GetSiteSettings(ctx)
}

// GetSiteSettings returns the settings row or ErrNotFound.
func (q *Queries) GetSiteSettings(ctx context.Context) (SiteSettings, error) {
	var s SiteSettings
	err := q.get(ctx, &s, `SELECT * FROM site_settings WHERE id = 1`)
	return s, err
}

// UpdateSiteUITexts replaces the per-language UI text overrides.
func (q *Queries) UpdateSiteUITexts(ctx context.Context, ui model.JSONObject) error {
	if ui == nil {
		ui = model.JSONObject{}
	}
	if _, err := q.EnsureSiteSettings(ctx); err != nil {
		return err
	}
	_, err := q.q.ExecContext(ctx, `UPDATE site_settings SET ui_i18n = ?, updated_at = ? WHERE id = 1`,
		ui, time.Now().UTC())
	return err
}

// UpdateSiteSettings writes the base (untranslated) settings fields.
func (q *Queries) UpdateSiteSettings(ctx context.Context, s SiteSettings) error {
	if _, err := q.EnsureSiteSettings(ctx); err != nil {
		return err
	}
	s.UpdatedAt = time.Now().UTC()
	_, err := q.namedExec(ctx, `UPDATE site_settings SET
		brand_name = :brand_name,
		footer_title = :footer_title,
		footer_description = :footer_description,
		footer_explore_title = :footer_explore_title,
		footer_social_title = :footer_social_title,
		footer_newsletter_title = :footer_newsletter_title,
		newsletter_note = :newsletter_note,
		contact_email = :contact_email,
		seo_title = :seo_title,
		seo_description = :seo_description,
		seo_image = :seo_image,
		updated_at = :updated_at
		WHERE id = 1`, s)
	return err
}
