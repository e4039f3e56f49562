// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"time"

	"github.com/MKhiriev/go-invoice-tracker/internal/config"
	"github.com/MKhiriev/go-invoice-tracker/internal/logger"
	"github.com/MKhiriev/go-invoice-tracker/internal/metrics"
	"github.com/MKhiriev/go-invoice-tracker/internal/service"
)

type Handler struct {
	services *service.Services
	metrics  *metrics.Metrics

	// authLimiter throttles register and login per client address.
	// A nil limiter lets every request through.
	authLimiter *rateLimiter

	production      bool
	frontendOrigin  string
	sessionDuration time.Duration

	logger *logger.Logger
}

func NewHandler(services *service.Services, m *metrics.Metrics, cfg config.StructuredConfig, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")

	var limiter *rateLimiter
	if cfg.Server.AuthRateLimit > 0 {
		limiter = newRateLimiter(cfg.Server.AuthRateLimit, cfg.Server.AuthRateBurst)
	}

	return &Handler{
		services:        services,
		metrics:         m,
		authLimiter:     limiter,
		production:      cfg.App.IsProduction(),
		frontendOrigin:  cfg.App.FrontendOrigin,
		sessionDuration: cfg.App.SessionDuration,
		logger:          logger,
	}
}
