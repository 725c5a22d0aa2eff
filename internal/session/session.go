// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Package session configures the cookie session used by the server-rendered
// pages, and the flash messages carried across the contact form redirect.
package session

import (
	"context"
	"database/sql"
	"net/http"
	"time"

	"github.com/alexedwards/scs/sqlite3store"
	"github.com/alexedwards/scs/v2"
)

// Flash kinds
const (
	FlashSuccess = "success"
	FlashError   = "error"
)

const (
	flashKey     = "flash"
	flashKindKey = "flash_type"
)

// New creates a new session manager configured with SQLite store.
func New(db *sql.DB, isDev bool) *scs.SessionManager {
	sm := scs.New()
	sm.Store = sqlite3store.New(db)

	sm.Lifetime = 24 * time.Hour
	sm.Cookie.Name = "folio_session"
	sm.Cookie.Path = "/"
	sm.Cookie.HttpOnly = true
	sm.Cookie.SameSite = http.SameSiteLaxMode
	sm.Cookie.Secure = !isDev
	if !isDev {
		// __Host- requires Secure, Path=/ and no Domain
		sm.Cookie.Name = "__Host-session"
	}

	return sm
}

// PutFlash stores a one-time message for the next rendered page.
func PutFlash(ctx context.Context, sm *scs.SessionManager, message, kind string) {
	if sm == nil {
		return
	}
	sm.Put(ctx, flashKey, message)
	sm.Put(ctx, flashKindKey, kind)
}

// PopFlash returns and clears the pending flash message.
func PopFlash(ctx context.Context, sm *scs.SessionManager) (message, kind string) {
	if sm == nil {
		return "", ""
	}
	message = sm.PopString(ctx, flashKey)
	kind = sm.PopString(ctx, flashKindKey)
	if message != "" && kind == "" {
		kind = FlashSuccess
	}
	return message, kind
}
