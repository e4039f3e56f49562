// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"

	"github.com/MKhiriev/go-invoice-tracker/internal/config"
	"github.com/MKhiriev/go-invoice-tracker/internal/logger"
)

type Workers struct {
	workers []Worker
}

// NewWorkers builds the background workers enabled by cfg.
func NewWorkers(cleaner SessionCleaner, cfg config.Workers, logger *logger.Logger) *Workers {
	w := &Workers{}

	if cfg.SessionCleanupInterval > 0 {
		w.workers = append(w.workers, NewSessionCleanupWorker(cleaner, cfg.SessionCleanupInterval, logger))
	}

	return w
}

func (w *Workers) Run(ctx context.Context) {
	for _, worker := range w.workers {
		worker.Run(ctx)
	}
}
