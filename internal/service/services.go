// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"github.com/MKhiriev/go-invoice-tracker/internal/adapter"
	"github.com/MKhiriev/go-invoice-tracker/internal/config"
	"github.com/MKhiriev/go-invoice-tracker/internal/logger"
	"github.com/MKhiriev/go-invoice-tracker/internal/metrics"
	"github.com/MKhiriev/go-invoice-tracker/internal/store"
)

type Services struct {
	AuthService    AuthService
	InvoiceService InvoiceService
	AppInfoService AppInfoService
}

func NewServices(storages *store.Storages, mailer adapter.Mailer, m *metrics.Metrics, cfg config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	authService, err := NewAuthService(storages, mailer, m, cfg.App, logger)
	if err != nil {
		return nil, err
	}

	appInfoService, err := NewAppInfoService(cfg.App, storages.HealthChecker, logger)
	if err != nil {
		return nil, err
	}

	invoiceService := NewInvoiceValidationService().Wrap(
		NewInvoiceService(storages.InvoiceRepository, m, logger),
	)

	return &Services{
		AuthService:    authService,
		InvoiceService: invoiceService,
		AppInfoService: appInfoService,
	}, nil
}
