// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-invoice-tracker/internal/logger"
	"github.com/MKhiriev/go-invoice-tracker/internal/metrics"
	"github.com/MKhiriev/go-invoice-tracker/internal/store"
	"github.com/MKhiriev/go-invoice-tracker/models"
)

type invoiceService struct {
	invoiceRepository store.InvoiceRepository
	metrics           *metrics.Metrics

	logger *logger.Logger
}

func NewInvoiceService(invoiceRepository store.InvoiceRepository, m *metrics.Metrics, logger *logger.Logger) InvoiceService {
	return &invoiceService{
		invoiceRepository: invoiceRepository,
		metrics:           m,
		logger:            logger,
	}
}

// CalculateTotals sets each item total to price times quantity and the
// invoice total to their sum. Client-supplied totals are discarded.
func CalculateTotals(invoice models.Invoice) models.Invoice {
	total := models.Money{}
	items := make([]models.InvoiceItem, len(invoice.Items))

	for i, item := range invoice.Items {
		item.ItemTotal = item.ItemPrice.Mul(item.ItemQuantity)
		total = total.Add(item.ItemTotal)
		items[i] = item
	}

	invoice.Items = items
	invoice.InvoiceTotal = total
	return invoice
}

func (s *invoiceService) CreateInvoice(ctx context.Context, invoice models.Invoice) (created models.Invoice, err error) {
	defer func() { s.metrics.InvoiceOperation("create", err) }()

	created, err = s.invoiceRepository.CreateInvoice(ctx, CalculateTotals(invoice))
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*invoiceService.CreateInvoice").Msg("invoice was not created")
		return models.Invoice{}, fmt.Errorf("invoice creation failed: %w", err)
	}
	return created, nil
}

func (s *invoiceService) GetInvoices(ctx context.Context) ([]models.Invoice, error) {
	invoices, err := s.invoiceRepository.GetInvoices(ctx)
	if err != nil {
		return nil, fmt.Errorf("invoice listing failed: %w", err)
	}
	return invoices, nil
}

func (s *invoiceService) GetInvoiceByID(ctx context.Context, id int64) (models.Invoice, error) {
	invoice, err := s.invoiceRepository.GetInvoiceByID(ctx, id)
	if err != nil {
		return models.Invoice{}, fmt.Errorf("invoice lookup failed: %w", err)
	}
	return invoice, nil
}

// UpdateInvoice replaces the header and the whole item list of invoice id.
func (s *invoiceService) UpdateInvoice(ctx context.Context, id int64, invoice models.Invoice) (updated models.Invoice, err error) {
	defer func() { s.metrics.InvoiceOperation("update", err) }()

	invoice.ID = id
	updated, err = s.invoiceRepository.UpdateInvoice(ctx, CalculateTotals(invoice))
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "*invoiceService.UpdateInvoice").
			Int64("invoice_id", id).
			Msg("invoice was not updated")
		return models.Invoice{}, fmt.Errorf("invoice update failed: %w", err)
	}
	return updated, nil
}

func (s *invoiceService) UpdateInvoiceStatus(ctx context.Context, id int64, status models.InvoiceStatus) (updated models.Invoice, err error) {
	defer func() { s.metrics.InvoiceOperation("update_status", err) }()

	updated, err = s.invoiceRepository.UpdateInvoiceStatus(ctx, id, status)
	if err != nil {
		return models.Invoice{}, fmt.Errorf("invoice status update failed: %w", err)
	}
	return updated, nil
}

func (s *invoiceService) DeleteInvoice(ctx context.Context, id int64) (err error) {
	defer func() { s.metrics.InvoiceOperation("delete", err) }()

	if err = s.invoiceRepository.DeleteInvoice(ctx, id); err != nil {
		return fmt.Errorf("invoice deletion failed: %w", err)
	}
	return nil
}
