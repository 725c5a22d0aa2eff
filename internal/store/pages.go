// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package store

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
)

const pageColumns = `id, slug, title, title_i18n, seo_title, seo_title_i18n, seo_description,
	seo_description_i18n, seo_image, is_active, is_home, "order", is_published, created_at, updated_at`

const sectionColumns = `id, page_id, "key", section_type, title, title_i18n, subtitle, subtitle_i18n,
	body, body_i18n, payload, payload_i18n, "order", is_published, created_at, updated_at`

// ListPublishedPages returns active published pages ordered by (order, id).
func (q *Queries) ListPublishedPages(ctx context.Context) ([]Page, error) {
	var out []Page
	err := q.selectAll(ctx, &out, `SELECT `+pageColumns+` FROM pages
		WHERE is_active = 1 AND is_published = 1 ORDER BY "order", id`)
	return out, err
}

// ListPages returns all pages.
func (q *Queries) ListPages(ctx context.Context) ([]Page, error) {
	var out []Page
	err := q.selectAll(ctx, &out, `SELECT `+pageColumns+` FROM pages ORDER BY "order", id`)
	return out, err
}

// GetPage returns the page with the given id.
func (q *Queries) GetPage(ctx context.Context, id int64) (Page, error) {
	var p Page
	err := q.get(ctx, &p, `SELECT `+pageColumns+` FROM pages WHERE id = ?`, id)
	return p, err
}

// GetPublishedPageBySlug returns the active published page with slug.
func (q *Queries) GetPublishedPageBySlug(ctx context.Context, slug string) (Page, error) {
	var p Page
	err := q.get(ctx, &p, `SELECT `+pageColumns+` FROM pages
		WHERE slug = ? AND is_active = 1 AND is_published = 1`, slug)
	return p, err
}

// GetHomePage returns the active published page flagged as home.
func (q *Queries) GetHomePage(ctx context.Context) (Page, error) {
	var p Page
	err := q.get(ctx, &p, `SELECT `+pageColumns+` FROM pages
		WHERE is_home = 1 AND is_active = 1 AND is_published = 1`)
	return p, err
}

// CreatePage inserts p. A page created with IsHome replaces the current home page.
func (q *Queries) CreatePage(ctx context.Context, p Page) (Page, error) {
	stamp(&p.CreatedAt, &p.UpdatedAt)
	err := q.WithTx(ctx, func(tx *Queries) error {
		if p.IsHome {
			if _, err := tx.q.ExecContext(ctx, `UPDATE pages SET is_home = 0 WHERE is_home = 1`); err != nil {
				return err
			}
		}
		id, err := tx.insert(ctx, `INSERT INTO pages (slug, title, title_i18n, seo_title, seo_title_i18n,
			seo_description, seo_description_i18n, seo_image, is_active, is_home, "order", is_published,
			created_at, updated_at)
			VALUES (:slug, :title, :title_i18n, :seo_title, :seo_title_i18n, :seo_description,
			:seo_description_i18n, :seo_image, :is_active, :is_home, :order, :is_published,
			:created_at, :updated_at)`, p)
		p.ID = id
		return err
	})
	if err != nil {
		return Page{}, fmt.Errorf("inserting page %q: %w", p.Slug, err)
	}
	return p, nil
}

// SetHomePage flags the page with id as home and clears the flag elsewhere.
func (q *Queries) SetHomePage(ctx context.Context, id int64) error {
	return q.WithTx(ctx, func(tx *Queries) error {
		if _, err := tx.GetPage(ctx, id); err != nil {
			return err
		}
		now := time.Now().UTC()
		if _, err := tx.q.ExecContext(ctx, `UPDATE pages SET is_home = 0, updated_at = ?
			WHERE is_home = 1 AND id <> ?`, now, id); err != nil {
			return fmt.Errorf("clearing home page: %w", err)
		}
		res, err := tx.q.ExecContext(ctx, `UPDATE pages SET is_home = 1, updated_at = ? WHERE id = ?`, now, id)
		return requireRow(res, err)
	})
}

// ListPublishedSections returns the published sections of a page by (order, id).
func (q *Queries) ListPublishedSections(ctx context.Context, pageID int64) ([]PageSection, error) {
	var out []PageSection
	err := q.selectAll(ctx, &out, `SELECT `+sectionColumns+` FROM page_sections
		WHERE page_id = ? AND is_published = 1 ORDER BY "order", id`, pageID)
	return out, err
}

// CreateSection inserts a page section.
func (q *Queries) CreateSection(ctx context.Context, s PageSection) (PageSection, error) {
	stamp(&s.CreatedAt, &s.UpdatedAt)
	id, err := q.insert(ctx, `INSERT INTO page_sections (page_id, "key", section_type, title, title_i18n,
		subtitle, subtitle_i18n, body, body_i18n, payload, payload_i18n, "order", is_published,
		created_at, updated_at)
		VALUES (:page_id, :key, :section_type, :title, :title_i18n, :subtitle, :subtitle_i18n,
		:body, :body_i18n, :payload, :payload_i18n, :order, :is_published, :created_at, :updated_at)`, s)
	if err != nil {
		return PageSection{}, fmt.Errorf("inserting section %q: %w", s.Key, err)
	}
	s.ID = id
	return s, nil
}

// ListPublishedSectionImages returns published images of the given sections
// ordered by (order, id).
func (q *Queries) ListPublishedSectionImages(ctx context.Context, sectionIDs []int64) ([]SectionImage, error) {
	if len(sectionIDs) == 0 {
		return nil, nil
	}
	query, args, err := sqlx.In(`SELECT id, section_id, image_url, alt_text, caption, "order", is_published,
		created_at, updated_at FROM section_images
		WHERE is_published = 1 AND section_id IN (?) ORDER BY "order", id`, sectionIDs)
	if err != nil {
		return nil, err
	}
	var out []SectionImage
	err = q.selectAll(ctx, &out, query, args...)
	return out, err
}

// CreateSectionImage inserts an image of a section.
func (q *Queries) CreateSectionImage(ctx context.Context, img SectionImage) (SectionImage, error) {
	stamp(&img.CreatedAt, &img.UpdatedAt)
	id, err := q.insert(ctx, `INSERT INTO section_images (section_id, image_url, alt_text, caption, "order",
		is_published, created_at, updated_at)
		VALUES (:section_id, :image_url, :alt_text, :caption, :order, :is_published, :created_at, :updated_at)`, img)
	img.ID = id
	return img, err
}
