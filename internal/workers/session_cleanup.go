// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/go-invoice-tracker/internal/logger"
)

// SessionCleanupWorker periodically prunes expired login sessions.
type SessionCleanupWorker struct {
	cleaner  SessionCleaner
	interval time.Duration

	logger *logger.Logger
}

func NewSessionCleanupWorker(cleaner SessionCleaner, interval time.Duration, logger *logger.Logger) *SessionCleanupWorker {
	return &SessionCleanupWorker{
		cleaner:  cleaner,
		interval: interval,
		logger:   logger,
	}
}

// Run starts the cleanup loop. A failed pass is logged and retried on the
// next tick.
func (w *SessionCleanupWorker) Run(ctx context.Context) {
	go func() {
		ticker := time.NewTicker(w.interval)
		defer ticker.Stop()

		w.logger.Info().Dur("interval", w.interval).Msg("session cleanup worker started")

		for {
			select {
			case <-ctx.Done():
				w.logger.Info().Msg("session cleanup worker stopped")
				return
			case <-ticker.C:
				w.cleanup(ctx)
			}
		}
	}()
}

func (w *SessionCleanupWorker) cleanup(ctx context.Context) {
	n, err := w.cleaner.DeleteExpiredSessions(ctx)
	if err != nil {
		w.logger.Err(err).Str("func", "*SessionCleanupWorker.cleanup").Msg("expired session cleanup failed")
		return
	}
	if n > 0 {
		w.logger.Debug().Int64("removed", n).Msg("expired sessions removed")
	}
}
