// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-invoice-tracker/internal/validators"
	"github.com/MKhiriev/go-invoice-tracker/models"
)

// InvoiceValidationService rejects malformed input before it reaches the
// wrapped InvoiceService. Every rejection wraps ErrInvalidDataProvided.
type InvoiceValidationService struct {
	inner     InvoiceService
	validator validators.Validator
}

func NewInvoiceValidationService() InvoiceServiceWrapper {
	return &InvoiceValidationService{
		validator: validators.NewInvoiceValidator(),
	}
}

func (v *InvoiceValidationService) CreateInvoice(ctx context.Context, invoice models.Invoice) (models.Invoice, error) {
	if err := v.validator.Validate(ctx, invoice); err != nil {
		return models.Invoice{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}
	return v.inner.CreateInvoice(ctx, invoice)
}

func (v *InvoiceValidationService) GetInvoices(ctx context.Context) ([]models.Invoice, error) {
	return v.inner.GetInvoices(ctx)
}

func (v *InvoiceValidationService) GetInvoiceByID(ctx context.Context, id int64) (models.Invoice, error) {
	if err := validateID(id); err != nil {
		return models.Invoice{}, err
	}
	return v.inner.GetInvoiceByID(ctx, id)
}

func (v *InvoiceValidationService) UpdateInvoice(ctx context.Context, id int64, invoice models.Invoice) (models.Invoice, error) {
	if err := validateID(id); err != nil {
		return models.Invoice{}, err
	}
	if err := v.validator.Validate(ctx, invoice); err != nil {
		return models.Invoice{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}
	return v.inner.UpdateInvoice(ctx, id, invoice)
}

func (v *InvoiceValidationService) UpdateInvoiceStatus(ctx context.Context, id int64, status models.InvoiceStatus) (models.Invoice, error) {
	if err := validateID(id); err != nil {
		return models.Invoice{}, err
	}
	if err := v.validator.Validate(ctx, models.StatusUpdate{Status: status}); err != nil {
		return models.Invoice{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}
	return v.inner.UpdateInvoiceStatus(ctx, id, status)
}

func (v *InvoiceValidationService) DeleteInvoice(ctx context.Context, id int64) error {
	if err := validateID(id); err != nil {
		return err
	}
	return v.inner.DeleteInvoice(ctx, id)
}

func (v *InvoiceValidationService) Wrap(inner InvoiceService) InvoiceService {
	v.inner = inner
	return v
}

func validateID(id int64) error {
	if id <= 0 {
		return fmt.Errorf("%w: invoice id must be positive", ErrInvalidDataProvided)
	}
	return nil
}
