// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package store

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
)

const menuColumns = `id, code, title, title_i18n, location, "order", is_published, created_at, updated_at`

// ListPublishedMenus returns published menus by (order, id).
func (q *Queries) ListPublishedMenus(ctx context.Context) ([]Menu, error) {
	var out []Menu
	err := q.selectAll(ctx, &out, `SELECT `+menuColumns+` FROM menus WHERE is_published = 1 ORDER BY "order", id`)
	return out, err
}

// GetPublishedMenu returns the published menu with code.
func (q *Queries) GetPublishedMenu(ctx context.Context, code string) (Menu, error) {
	var m Menu
	err := q.get(ctx, &m, `SELECT `+menuColumns+` FROM menus WHERE code = ? AND is_published = 1`, code)
	return m, err
}

// ListPublishedMenuItems returns the published items of the published menus
// with the given codes, grouped by menu and ordered by (order, id) within it.
// With no codes every published menu is included.
func (q *Queries) ListPublishedMenuItems(ctx context.Context, codes ...string) ([]MenuItem, error) {
	query := `SELECT i.id, i.menu_id, m.code AS menu_code, i.label, i.label_i18n, i.page_id, i.href,
		i.open_in_new_tab, i."order", i.is_published, i.created_at, i.updated_at,
		p.slug AS page_slug, p.is_home AS page_is_home
		FROM menu_items i
		JOIN menus m ON m.id = i.menu_id
		LEFT JOIN pages p ON p.id = i.page_id
		WHERE i.is_published = 1 AND m.is_published = 1`
	var args []any
	if len(codes) > 0 {
		var err error
		query, args, err = sqlx.In(query+` AND m.code IN (?)`, codes)
		if err != nil {
			return nil, err
		}
	}
	query += ` ORDER BY m."order", m.id, i."order", i.id`
	var out []MenuItem
	err := q.selectAll(ctx, &out, query, args...)
	return out, err
}

// CreateMenu inserts a menu.
func (q *Queries) CreateMenu(ctx context.Context, m Menu) (Menu, error) {
	stamp(&m.CreatedAt, &m.UpdatedAt)
	id, err := q.insert(ctx, `INSERT INTO menus (code, title, title_i18n, location, "order", is_published,
		created_at, updated_at)
		VALUES (:code, :title, :title_i18n, :location, :order, :is_published, :created_at, :updated_at)`, m)
	if err != nil {
		return Menu{}, fmt.Errorf("inserting menu %q: %w", m.Code, err)
	}
	m.ID = id
	return m, nil
}

// CreateMenuItem inserts an item of a menu.
func (q *Queries) CreateMenuItem(ctx context.Context, it MenuItem) (MenuItem, error) {
	stamp(&it.CreatedAt, &it.UpdatedAt)
	id, err := q.insert(ctx, `INSERT INTO menu_items (menu_id, label, label_i18n, page_id, href,
		open_in_new_tab, "order", is_published, created_at, updated_at)
		VALUES (:menu_id, :label, :label_i18n, :page_id, :href, :open_in_new_tab, :order, :is_published,
		:created_at, :updated_at)`, it)
	if err != nil {
		return MenuItem{}, fmt.Errorf("inserting menu item %q: %w", it.Label, err)
	}
	it.ID = id
	return it, nil
}

// NavigationFilter narrows ListPublishedNavigationItems. Empty fields match all.
type NavigationFilter struct {
	Menu    string
	Section string
}

// ListPublishedNavigationItems returns published legacy navigation items
// ordered by menu, order and id.
func (q *Queries) ListPublishedNavigationItems(ctx context.Context, f NavigationFilter) ([]NavigationItem, error) {
	query := `SELECT n.id, n.section, n.menu, n.title, n.title_i18n, n.slug, n.url_key, n.page_id,
		n.external_url, n.href, n.open_in_new_tab, n."order", n.is_published, n.created_at, n.updated_at,
		p.slug AS page_slug, p.is_home AS page_is_home
		FROM navigation_items n
		LEFT JOIN pages p ON p.id = n.page_id
		WHERE n.is_published = 1`
	var args []any
	if f.Menu != "" {
		query += ` AND n.menu = ?`
		args = append(args, f.Menu)
	}
	if f.Section != "" {
		query += ` AND n.section = ?`
		args = append(args, f.Section)
	}
	query += ` ORDER BY n.menu, n."order", n.id`
	var out []NavigationItem
	err := q.selectAll(ctx, &out, query, args...)
	return out, err
}

// CreateNavigationItem inserts a legacy navigation item.
func (q *Queries) CreateNavigationItem(ctx context.Context, n NavigationItem) (NavigationItem, error) {
	stamp(&n.CreatedAt, &n.UpdatedAt)
	id, err := q.insert(ctx, `INSERT INTO navigation_items (section, menu, title, title_i18n, slug, url_key,
		page_id, external_url, href, open_in_new_tab, "order", is_published, created_at, updated_at)
		VALUES (:section, :menu, :title, :title_i18n, :slug, :url_key, :page_id, :external_url, :href,
		:open_in_new_tab, :order, :is_published, :created_at, :updated_at)`, n)
	if err != nil {
		return NavigationItem{}, fmt.Errorf("inserting navigation item %q: %w", n.Slug, err)
	}
	n.ID = id
	return n, nil
}
