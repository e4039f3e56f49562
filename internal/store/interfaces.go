// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

import (
	"context"
	"time"

	"github.com/MKhiriev/go-invoice-tracker/models"
)

// UserRepository persists user accounts.
type UserRepository interface {
	// CreateUser inserts an unconfirmed user. A duplicate email yields
	// [ErrEmailAlreadyExists].
	CreateUser(ctx context.Context, user models.User) (models.User, error)

	// FindUserByLogin returns the user whose email or username equals
	// identifier, or [ErrNoUserWasFound].
	FindUserByLogin(ctx context.Context, identifier string) (models.User, error)

	// ConfirmEmail marks the unconfirmed user holding token as confirmed and
	// clears the token in one statement. Unknown or used tokens yield
	// [ErrInvalidConfirmationToken].
	ConfirmEmail(ctx context.Context, token string) error
}

// SessionRepository persists login sessions in the `session` table.
type SessionRepository interface {
	CreateSession(ctx context.Context, session models.Session) error

	// FindSession returns the session with id if it expires after now,
	// otherwise [ErrSessionNotFound].
	FindSession(ctx context.Context, sessionID string, now time.Time) (models.Session, error)

	// DeleteSession removes the session. Deleting an unknown id is not an
	// error.
	DeleteSession(ctx context.Context, sessionID string) error

	// DeleteExpiredSessions removes every session expiring at or before now
	// and reports how many were removed.
	DeleteExpiredSessions(ctx context.Context, now time.Time) (int64, error)
}

// InvoiceRepository persists invoices together with their items. Every write
// runs in a single transaction spanning the header row and the item rows.
type InvoiceRepository interface {
	CreateInvoice(ctx context.Context, invoice models.Invoice) (models.Invoice, error)
	GetInvoices(ctx context.Context) ([]models.Invoice, error)
	GetInvoiceByID(ctx context.Context, id int64) (models.Invoice, error)
	UpdateInvoice(ctx context.Context, invoice models.Invoice) (models.Invoice, error)
	UpdateInvoiceStatus(ctx context.Context, id int64, status models.InvoiceStatus) (models.Invoice, error)
	DeleteInvoice(ctx context.Context, id int64) error
}

// HealthChecker reports database reachability.
type HealthChecker interface {
	Ping(ctx context.Context) error
}

// ErrorClassificator maps driver errors to an [ErrorClassification].
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
