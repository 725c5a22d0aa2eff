// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
)

// ErrNotFound is returned by single-row lookups that match nothing.
var ErrNotFound = errors.New("not found")

// bindDriver selects the '?' bindvar style in sqlx for both SQLite drivers.
const bindDriver = "sqlite3"

// Queries runs the content queries against a database or a transaction.
type Queries struct {
	db *sqlx.DB
	q  sqlx.ExtContext
}

// New returns Queries bound to db.
func New(db *sql.DB) *Queries {
	x := sqlx.NewDb(db, bindDriver)
	return &Queries{db: x, q: x}
}

// WithTx runs fn inside a transaction, committing when fn returns nil.
func (q *Queries) WithTx(ctx context.Context, fn func(*Queries) error) error {
	if q.db == nil {
		return fn(q)
	}
	tx, err := q.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	if err := fn(&Queries{q: tx}); err != nil {
		_ = tx.Rollback()
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing transaction: %w", err)
	}
	return nil
}

func (q *Queries) get(ctx context.Context, dest any, query string, args ...any) error {
	err := sqlx.GetContext(ctx, q.q, dest, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return ErrNotFound
	}
	return err
}

func (q *Queries) selectAll(ctx context.Context, dest any, query string, args ...any) error {
	return sqlx.SelectContext(ctx, q.q, dest, query, args...)
}

func (q *Queries) namedExec(ctx context.Context, query string, arg any) (sql.Result, error) {
	return sqlx.NamedExecContext(ctx, q.q, query, arg)
}

func (q *Queries) insert(ctx context.Context, query string, arg any) (int64, error) {
	res, err := q.namedExec(ctx, query, arg)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

// requireRow turns a zero-rows-affected update into ErrNotFound.
func requireRow(res sql.Result, err error) error {
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

func stamp(created, updated *time.Time) {
	now := time.Now().UTC()
	if created.IsZero() {
		*created = now
	}
	if updated.IsZero() {
		*updated = now
	}
}
