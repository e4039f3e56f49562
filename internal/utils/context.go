// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package utils provides general-purpose helpers used across the
// application: typed context keys, JSON response writing, password hashing,
// session token signing, identifier generation and the outbound HTTP client.
package utils

import (
	"context"

	"github.com/MKhiriev/go-invoice-tracker/models"
)

// contextKey is a private type for context keys.
type contextKey string

// String returns the string representation of the context key.
func (c contextKey) String() string {
	return string(c)
}

// SessionCtxKey is the key under which the authenticated session is stored
// in a request context.
var SessionCtxKey = contextKey("session")

// WithSession returns a copy of ctx carrying session.
func WithSession(ctx context.Context, session models.Session) context.Context {
	return context.WithValue(ctx, SessionCtxKey, session)
}

// GetSessionFromContext retrieves the authenticated session from ctx.
// ok is false when no session is attached.
func GetSessionFromContext(ctx context.Context) (models.Session, bool) {
	session, ok := ctx.Value(SessionCtxKey).(models.Session)
	return session, ok
}

// GetUserIDFromContext retrieves the authenticated user's id from ctx.
func GetUserIDFromContext(ctx context.Context) (string, bool) {
	session, ok := GetSessionFromContext(ctx)
	if !ok || session.Data.UserID == "" {
		return "", false
	}
	return session.Data.UserID, true
}
