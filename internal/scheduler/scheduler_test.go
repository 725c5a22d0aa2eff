// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package scheduler

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/olegiv/folio/internal/model"
	"github.com/olegiv/folio/internal/service"
	"github.com/olegiv/folio/internal/store"
	"github.com/olegiv/folio/internal/testutil"
)

type fakePruner struct {
	calls     int
	olderThan time.Duration
	err       error
}

func (f *fakePruner) DeleteOldEvents(_ context.Context, olderThan time.Duration) (int64, error) {
	f.calls++
	f.olderThan = olderThan
	return 2, f.err
}

func TestNew(t *testing.T) {
	logger := testutil.TestLogger()
	s := New(&fakePruner{}, logger)
	if s.cron == nil {
		t.Error("New() scheduler has nil cron")
	}
	if s.logger != logger {
		t.Error("New() scheduler has wrong logger")
	}
	if s.retention != EventRetention {
		t.Errorf("retention = %v, want %v", s.retention, EventRetention)
	}
}

func TestCleanupSpecParses(t *testing.T) {
	sched, err := cron.ParseStandard(EventCleanupSpec)
	if err != nil {
		t.Fatalf("ParseStandard(%q) error = %v", EventCleanupSpec, err)
	}
	from := time.Date(2026, 3, 10, 15, 4, 0, 0, time.UTC)
	if next := sched.Next(from); !next.Equal(time.Date(2026, 3, 11, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("next cleanup = %v, want next midnight", next)
	}
}

func TestScheduler_StartStop(t *testing.T) {
	pruner := &fakePruner{}
	s := New(pruner, testutil.TestLogger())

	if err := s.Start(); err != nil {
		t.Fatalf("Start() error = %v", err)
	}
	if got := len(s.cron.Entries()); got != 1 {
		t.Errorf("registered %d jobs, want 1", got)
	}
	s.Stop()

	if pruner.calls != 1 {
		t.Errorf("cleanup ran %d times on start, want 1", pruner.calls)
	}
	if pruner.olderThan != EventRetention {
		t.Errorf("cleanup age = %v, want %v", pruner.olderThan, EventRetention)
	}
}

func TestPruneEventsError(t *testing.T) {
	pruner := &fakePruner{err: errors.New("database is locked")}
	s := New(pruner, testutil.TestLogger())
	s.pruneEvents()
	if pruner.calls != 1 {
		t.Errorf("calls = %d, want 1", pruner.calls)
	}
}

func TestPruneEventsNilPruner(t *testing.T) {
	New(nil, nil).pruneEvents()
}

func TestPruneEventsRemovesExpired(t *testing.T) {
	db := testutil.TestMemoryDB(t)
	events := service.NewEventService(db)
	ctx := context.Background()

	old := store.CreateEventParams{Level: model.EventLevelInfo, Category: model.EventCategorySystem,
		Message: "expired", CreatedAt: time.Now().UTC().Add(-EventRetention - time.Hour)}
	if err := store.New(db).CreateEvent(ctx, old); err != nil {
		t.Fatalf("CreateEvent failed: %v", err)
	}
	if err := events.LogInfo(ctx, model.EventCategorySystem, "recent", nil); err != nil {
		t.Fatalf("LogInfo failed: %v", err)
	}

	New(events, testutil.TestLogger()).pruneEvents()

	left, err := events.Recent(ctx, 10)
	if err != nil {
		t.Fatalf("Recent failed: %v", err)
	}
	if len(left) != 1 || left[0].Message != "recent" {
		t.Errorf("events after cleanup = %+v, want only the recent one", left)
	}
}
