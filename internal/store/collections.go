// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package store

import (
	"context"
	"fmt"
)

// coverJoin attaches the published media asset referenced by cover_id.
const coverJoin = ` LEFT JOIN media_assets m ON m.id = c.cover_id AND m.is_published = 1`

const coverColumns = `, m.file_path AS cover_file, m.static_path AS cover_static`

// ListPublishedExpeditions returns published expeditions by (order, id).
func (q *Queries) ListPublishedExpeditions(ctx context.Context) ([]Expedition, error) {
	var out []Expedition
	err := q.selectAll(ctx, &out, `SELECT c.id, c.slug, c.title, c.title_i18n, c.subtitle, c.subtitle_i18n,
		c.date_label, c.date_label_i18n, c.description, c.description_i18n, c.image_url, c.cover_id,
		c."order", c.is_published, c.created_at, c.updated_at`+coverColumns+`
		FROM expeditions c`+coverJoin+`
		WHERE c.is_published = 1 ORDER BY c."order", c.id`)
	return out, err
}

// ListPublishedCategories returns published categories by (order, id).
func (q *Queries) ListPublishedCategories(ctx context.Context) ([]Category, error) {
	var out []Category
	err := q.selectAll(ctx, &out, `SELECT c.id, c.slug, c.title, c.title_i18n, c.size, c.image_url, c.cover_id,
		c."order", c.is_published, c.created_at, c.updated_at`+coverColumns+`
		FROM categories c`+coverJoin+`
		WHERE c.is_published = 1 ORDER BY c."order", c.id`)
	return out, err
}

// ListPublishedStories returns published stories by (order, id).
func (q *Queries) ListPublishedStories(ctx context.Context) ([]Story, error) {
	var out []Story
	err := q.selectAll(ctx, &out, `SELECT c.id, c.slug, c.title, c.title_i18n, c.date_label, c.date_label_i18n,
		c.description, c.description_i18n, c.image_url, c.cover_id,
		c."order", c.is_published, c.created_at, c.updated_at`+coverColumns+`
		FROM stories c`+coverJoin+`
		WHERE c.is_published = 1 ORDER BY c."order", c.id`)
	return out, err
}

// CreateMediaAsset inserts a media asset.
func (q *Queries) CreateMediaAsset(ctx context.Context, m MediaAsset) (MediaAsset, error) {
	stamp(&m.CreatedAt, &m.UpdatedAt)
	id, err := q.insert(ctx, `INSERT INTO media_assets (title, file_path, static_path, alt_text, "order",
		is_published, created_at, updated_at)
		VALUES (:title, :file_path, :static_path, :alt_text, :order, :is_published, :created_at, :updated_at)`, m)
	if err != nil {
		return MediaAsset{}, fmt.Errorf("inserting media asset %q: %w", m.Title, err)
	}
	m.ID = id
	return m, nil
}

// CreateExpedition inserts an expedition.
func (q *Queries) CreateExpedition(ctx context.Context, e Expedition) (Expedition, error) {
	stamp(&e.CreatedAt, &e.UpdatedAt)
	id, err := q.insert(ctx, `INSERT INTO expeditions (slug, title, title_i18n, subtitle, subtitle_i18n,
		date_label, date_label_i18n, description, description_i18n, image_url, cover_id, "order",
		is_published, created_at, updated_at)
		VALUES (:slug, :title, :title_i18n, :subtitle, :subtitle_i18n, :date_label, :date_label_i18n,
		:description, :description_i18n, :image_url, :cover_id, :order, :is_published,
		:created_at, :updated_at)`, e)
	if err != nil {
		return Expedition{}, fmt.Errorf("inserting expedition %q: %w", e.Slug, err)
	}
	e.ID = id
	return e, nil
}

// CreateCategory inserts a category.
func (q *Queries) CreateCategory(ctx context.Context, c Category) (Category, error) {
	stamp(&c.CreatedAt, &c.UpdatedAt)
	id, err := q.insert(ctx, `INSERT INTO categories (slug, title, title_i18n, size, image_url, cover_id,
		"order", is_published, created_at, updated_at)
		VALUES (:slug, :title, :title_i18n, :size, :image_url, :cover_id, :order, :is_published,
		:created_at, :updated_at)`, c)
	if err != nil {
		return Category{}, fmt.Errorf("inserting category %q: %w", c.Slug, err)
	}
	c.ID = id
	return c, nil
}

// CreateStory inserts a story.
func (q *Queries) CreateStory(ctx context.Context, s Story) (Story, error) {
	stamp(&s.CreatedAt, &s.UpdatedAt)
	id, err := q.insert(ctx, `INSERT INTO stories (slug, title, title_i18n, date_label, date_label_i18n,
		description, description_i18n, image_url, cover_id, "order", is_published, created_at, updated_at)
		VALUES (:slug, :title, :title_i18n, :date_label, :date_label_i18n, :description,
		:description_i18n, :image_url, :cover_id, :order, :is_published, :created_at, :updated_at)`, s)
	if err != nil {
		return Story{}, fmt.Errorf("inserting story %q: %w", s.Slug, err)
	}
	s.ID = id
	return s, nil
}
