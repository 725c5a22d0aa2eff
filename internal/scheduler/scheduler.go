// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Package scheduler runs periodic maintenance jobs.
package scheduler

import (
	"context"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/olegiv/folio/internal/model"
)

const (
	// EventRetention is how long event log entries are kept.
	EventRetention = 30 * 24 * time.Hour
	// EventCleanupSpec runs the event log cleanup once a day at midnight.
	EventCleanupSpec = "@daily"
)

// EventPruner deletes event log entries older than a given age.
type EventPruner interface {
	DeleteOldEvents(ctx context.Context, olderThan time.Duration) (int64, error)
}

// Scheduler handles scheduled maintenance such as event log cleanup.
type Scheduler struct {
	events    EventPruner
	retention time.Duration
	cron      *cron.Cron
	logger    *slog.Logger
}

// New creates a new scheduler instance.
func New(events EventPruner, logger *slog.Logger) *Scheduler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Scheduler{
		events:    events,
		retention: EventRetention,
		cron:      cron.New(),
		logger:    logger,
	}
}

// Start registers the jobs and starts the cron runner. Expired events are
// pruned once right away so a restart does not wait a day.
func (s *Scheduler) Start() error {
	if _, err := s.cron.AddFunc(EventCleanupSpec, s.pruneEvents); err != nil {
		return err
	}

	s.pruneEvents()
	s.cron.Start()
	s.logger.Info("scheduler started", "category", model.EventCategorySystem, "jobs", len(s.cron.Entries()))
	return nil
}

// Stop gracefully stops the scheduler, waiting for running jobs.
func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
	s.logger.Info("scheduler stopped")
}

func (s *Scheduler) pruneEvents() {
	if s.events == nil {
		return
	}
	n, err := s.events.DeleteOldEvents(context.Background(), s.retention)
	if err != nil {
		s.logger.Error("pruning event log failed", "category", model.EventCategorySystem, "error", err)
		return
	}
	if n > 0 {
		s.logger.Info("event log pruned", "category", model.EventCategorySystem, "removed", n)
	}
}
