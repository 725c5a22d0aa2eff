// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package store

import (
	"context"
	"fmt"
	"time"
)

// CreateContactMessage stores a visitor message.
func (q *Queries) CreateContactMessage(ctx context.Context, m ContactMessage) (ContactMessage, error) {
	if m.CreatedAt.IsZero() {
		m.CreatedAt = time.Now().UTC()
	}
	id, err := q.insert(ctx, `INSERT INTO contact_messages (ref, name, email, message, is_read, created_at)
		VALUES (:ref, :name, :email, :message, :is_read, :created_at)`, m)
	if err != nil {
		return ContactMessage{}, fmt.Errorf("inserting contact message: %w", err)
	}
	m.ID = id
	return m, nil
}

// ListContactMessages returns messages newest first. unreadOnly skips read ones.
func (q *Queries) ListContactMessages(ctx context.Context, unreadOnly bool, limit, offset int) ([]ContactMessage, error) {
	query := `SELECT id, ref, name, email, message, is_read, created_at FROM contact_messages`
	if unreadOnly {
		query += ` WHERE is_read = 0`
	}
	query += ` ORDER BY created_at DESC, id DESC LIMIT ? OFFSET ?`
	var out []ContactMessage
	err := q.selectAll(ctx, &out, query, limit, offset)
	return out, err
}

// CountUnreadContactMessages returns the number of unread messages.
func (q *Queries) CountUnreadContactMessages(ctx context.Context) (int64, error) {
	var n int64
	err := q.get(ctx, &n, `SELECT COUNT(*) FROM contact_messages WHERE is_read = 0`)
	return n, err
}

// MarkContactMessageRead flags a message as read.
func (q *Queries) MarkContactMessageRead(ctx context.Context, id int64) error {
	res, err := q.q.ExecContext(ctx, `UPDATE contact_messages SET is_read = 1 WHERE id = ?`, id)
	return requireRow(res, err)
}
