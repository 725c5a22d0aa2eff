// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package service

import (
	"context"
	"testing"
	"time"

	"github.com/olegiv/folio/internal/model"
	"github.com/olegiv/folio/internal/store"
	"github.com/olegiv/folio/internal/testutil"
)

func TestLogEvent(t *testing.T) {
	db := testutil.TestMemoryDB(t)
	svc := NewEventService(db)
	ctx := context.Background()

	if err := svc.LogEvent(ctx, model.EventLevelInfo, model.EventCategoryContent, "page saved", map[string]any{"slug": "home"}); err != nil {
		t.Fatalf("LogEvent failed: %v", err)
	}
	if err := svc.LogWarning(ctx, model.EventCategoryLanguage, "unknown language", nil); err != nil {
		t.Fatalf("LogWarning failed: %v", err)
	}
	if err := svc.LogAdminEvent(ctx, "default language changed", map[string]any{"code": "ru"}); err != nil {
		t.Fatalf("LogAdminEvent failed: %v", err)
	}

	events, err := svc.Recent(ctx, 0)
	if err != nil {
		t.Fatalf("Recent failed: %v", err)
	}
	if len(events) != 3 {
		t.Fatalf("got %d events, want 3", len(events))
	}

	byMessage := make(map[string]store.Event)
	for _, e := range events {
		byMessage[e.Message] = e
	}
	if e := byMessage["page saved"]; e.Metadata != `{"slug":"home"}` || e.Category != model.EventCategoryContent {
		t.Errorf("page saved event = %+v", e)
	}
	if e := byMessage["unknown language"]; e.Metadata != "{}" || e.Level != model.EventLevelWarning {
		t.Errorf("unknown language event = %+v", e)
	}
	if e := byMessage["default language changed"]; e.Category != model.EventCategoryAdmin || e.Level != model.EventLevelInfo {
		t.Errorf("admin event = %+v", e)
	}
}

func TestDeleteOldEvents(t *testing.T) {
	db := testutil.TestMemoryDB(t)
	svc := NewEventService(db)
	ctx := context.Background()
	q := store.New(db)

	old := store.CreateEventParams{Level: model.EventLevelInfo, Category: model.EventCategorySystem,
		Message: "old", CreatedAt: time.Now().UTC().Add(-48 * time.Hour)}
	if err := q.CreateEvent(ctx, old); err != nil {
		t.Fatalf("CreateEvent failed: %v", err)
	}
	if err := svc.LogInfo(ctx, model.EventCategorySystem, "fresh", nil); err != nil {
		t.Fatalf("LogInfo failed: %v", err)
	}

	n, err := svc.DeleteOldEvents(ctx, 24*time.Hour)
	if err != nil {
		t.Fatalf("DeleteOldEvents failed: %v", err)
	}
	if n != 1 {
		t.Errorf("deleted %d events, want 1", n)
	}

	events, err := svc.Recent(ctx, 10)
	if err != nil {
		t.Fatalf("Recent failed: %v", err)
	}
	if len(events) != 1 || events[0].Message != "fresh" {
		t.Errorf("remaining events = %+v", events)
	}
}
