// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"fmt"
	"math"
	"net/mail"
	"strings"

	"github.com/MKhiriev/go-invoice-tracker/models"
	"github.com/shopspring/decimal"
)

// maxAmount is the first value a NUMERIC(12,2) column cannot hold.
var maxAmount = decimal.New(1, 10)

// Field names accepted by [InvoiceValidator]. Passing a subset restricts
// validation to those fields.
const (
	FieldBillToName   = "bill_to_name"
	FieldBillToEmail  = "bill_to_email"
	FieldInvoiceDate  = "invoice_date"
	FieldPaymentTerms = "payment_terms"
	FieldStatus       = "status"
	FieldItems        = "items"
)

var allowedStatuses = []models.InvoiceStatus{
	models.StatusDraft,
	models.StatusPending,
	models.StatusPaid,
}

// InvoiceValidator checks invoices and status updates before they reach
// the store.
type InvoiceValidator struct{}

func NewInvoiceValidator() Validator {
	return &InvoiceValidator{}
}

// Validate accepts models.Invoice and models.StatusUpdate, by value or
// pointer. With no fields an invoice is checked in full.
func (v *InvoiceValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Invoice:
		return v.validateInvoice(value, fields...)
	case *models.Invoice:
		return v.validateInvoice(*value, fields...)

	case models.StatusUpdate:
		return validateStatus(value.Status)
	case *models.StatusUpdate:
		return validateStatus(value.Status)

	default:
		return ErrUnsupportedType
	}
}

func (v *InvoiceValidator) validateInvoice(invoice models.Invoice, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldBillToName, FieldBillToEmail, FieldInvoiceDate, FieldPaymentTerms, FieldStatus, FieldItems}
	}

	for _, f := range fields {
		switch f {
		case FieldBillToName:
			if strings.TrimSpace(invoice.BillToName) == "" {
				return ErrEmptyBillToName
			}
		case FieldBillToEmail:
			if !isEmail(invoice.BillToEmail) {
				return ErrInvalidBillToEmail
			}
		case FieldInvoiceDate:
			if invoice.InvoiceDate.IsZero() {
				return ErrEmptyInvoiceDate
			}
		case FieldPaymentTerms:
			if strings.TrimSpace(invoice.PaymentTerms) == "" {
				return ErrEmptyPaymentTerms
			}
		case FieldStatus:
			if err := validateStatus(invoice.Status); err != nil {
				return err
			}
		case FieldItems:
			total := decimal.Zero
			for i, item := range invoice.Items {
				if err := validateItem(item); err != nil {
					return fmt.Errorf("validation error at item %d: %w", i, err)
				}
				total = total.Add(item.ItemPrice.Mul(item.ItemQuantity).Decimal)
			}
			if total.GreaterThanOrEqual(maxAmount) {
				return ErrAmountTooLarge
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func validateItem(item models.InvoiceItem) error {
	if strings.TrimSpace(item.ItemDescription) == "" {
		return ErrEmptyDescription
	}
	if item.ItemQuantity < 0 {
		return ErrNegativeQuantity
	}
	if item.ItemQuantity > math.MaxInt32 {
		return ErrQuantityTooLarge
	}
	if item.ItemPrice.IsNegative() {
		return ErrNegativePrice
	}
	if item.ItemPrice.HasSubCents() {
		return ErrPriceTooPrecise
	}
	if item.ItemPrice.Mul(item.ItemQuantity).GreaterThanOrEqual(maxAmount) {
		return ErrAmountTooLarge
	}
	return nil
}

func validateStatus(status models.InvoiceStatus) error {
	for _, s := range allowedStatuses {
		if status == s {
			return nil
		}
	}
	return ErrInvalidStatus
}

func isEmail(s string) bool {
	addr, err := mail.ParseAddress(s)
	return err == nil && addr.Address == s
}
