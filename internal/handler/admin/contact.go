// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package admin

import (
	"net/http"
	"strconv"

	"github.com/olegiv/folio/internal/handler/api"
	"github.com/olegiv/folio/internal/store"
)

const (
	defaultListLimit = 50
	maxListLimit     = 200
)

// ContactMessagesResponse is a page of contact messages.
type ContactMessagesResponse struct {
	Items  []store.ContactMessage `json:"items"`
	Unread int64                  `json:"unread"`
	Limit  int                    `json:"limit"`
	Offset int                    `json:"offset"`
}

// ListContactMessages returns messages newest first. ?unread=1 skips read
// ones; ?limit and ?offset page through the list.
func (h *Handler) ListContactMessages(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	q := r.URL.Query()
	limit := queryInt(q.Get("limit"), defaultListLimit)
	if limit <= 0 || limit > maxListLimit {
		limit = defaultListLimit
	}
	offset := max(queryInt(q.Get("offset"), 0), 0)
	unreadOnly, _ := strconv.ParseBool(q.Get("unread"))

	msgs, err := h.queries.ListContactMessages(ctx, unreadOnly, limit, offset)
	if err != nil {
		h.writeStoreError(w, err, "contact messages")
		return
	}
	unread, err := h.queries.CountUnreadContactMessages(ctx)
	if err != nil {
		h.writeStoreError(w, err, "contact messages")
		return
	}
	if msgs == nil {
		msgs = []store.ContactMessage{}
	}
	api.WriteJSON(w, http.StatusOK, ContactMessagesResponse{Items: msgs, Unread: unread, Limit: limit, Offset: offset})
}

// MarkContactMessageRead flags a message as read.
func (h *Handler) MarkContactMessageRead(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}
	if err := h.queries.MarkContactMessageRead(r.Context(), id); err != nil {
		h.writeStoreError(w, err, "contact message")
		return
	}
	h.audit(r, "contact message read", map[string]any{"id": id})
	w.WriteHeader(http.StatusNoContent)
}

// ListEvents returns recent event log entries, ?limit bounded.
func (h *Handler) ListEvents(w http.ResponseWriter, r *http.Request) {
	limit := queryInt(r.URL.Query().Get("limit"), defaultListLimit)
	if limit <= 0 || limit > maxListLimit {
		limit = defaultListLimit
	}
	events, err := h.events.Recent(r.Context(), limit)
	if err != nil {
		h.writeStoreError(w, err, "events")
		return
	}
	if events == nil {
		events = []store.Event{}
	}
	api.WriteJSON(w, http.StatusOK, map[string]any{"items": events})
}

func queryInt(s string, def int) int {
	if s == "" {
		return def
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return n
}
