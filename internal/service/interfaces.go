// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-invoice-tracker/models"
)

// AuthService covers the account lifecycle: sign-up, email confirmation and
// session-backed login.
type AuthService interface {
	Register(ctx context.Context, req models.RegisterRequest) (models.Registration, error)
	ConfirmEmail(ctx context.Context, token string) error
	Login(ctx context.Context, creds models.Credentials) (models.User, models.Session, error)

	// Authenticate resolves a signed session token to a live session.
	// Any failure is reported as ErrSessionIsExpiredOrInvalid unless the
	// database itself failed.
	Authenticate(ctx context.Context, token string) (models.Session, error)

	// Logout revokes the session behind token. Unknown or malformed tokens
	// are not an error.
	Logout(ctx context.Context, token string) error

	// DeleteExpiredSessions prunes sessions past their expiry.
	DeleteExpiredSessions(ctx context.Context) (int64, error)
}

// CredentialVerifier checks login credentials and returns the matching
// user. Mismatches of any kind yield ErrInvalidCredentials.
type CredentialVerifier interface {
	Verify(ctx context.Context, creds models.Credentials) (models.User, error)
}

// InvoiceService manages invoices and derives their totals.
type InvoiceService interface {
	CreateInvoice(ctx context.Context, invoice models.Invoice) (models.Invoice, error)
	GetInvoices(ctx context.Context) ([]models.Invoice, error)
	GetInvoiceByID(ctx context.Context, id int64) (models.Invoice, error)
	UpdateInvoice(ctx context.Context, id int64, invoice models.Invoice) (models.Invoice, error)
	UpdateInvoiceStatus(ctx context.Context, id int64, status models.InvoiceStatus) (models.Invoice, error)
	DeleteInvoice(ctx context.Context, id int64) error
}

// InvoiceServiceWrapper defines middleware composition for InvoiceService.
type InvoiceServiceWrapper interface {
	Wrap(InvoiceService) InvoiceService
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string

	// CheckHealth reports whether the database answers a ping.
	CheckHealth(ctx context.Context) error
}
