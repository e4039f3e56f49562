// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter holds the outbound integrations of the invoice tracker.
//
// The only integration today is [Mailer], which delivers the account
// confirmation link after registration. [NewMailer] picks the HTTP
// implementation when a mail API URL is configured and falls back to one
// that only logs the message, which is what local development uses.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so callers can use [errors.Is].
package adapter

import (
	"context"

	"github.com/MKhiriev/go-invoice-tracker/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/mailer_mock.go -package=mock

// Mailer delivers transactional email.
type Mailer interface {
	// Send delivers msg. Implementations return an error when the provider
	// rejects the message or cannot be reached; the caller decides whether
	// that is fatal.
	Send(ctx context.Context, msg models.MailMessage) error
}
