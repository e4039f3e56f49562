// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// SessionData is the identity blob persisted with a session row.
type SessionData struct {
	UserID   string `json:"user_id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

// Session is a server-side record of an authenticated identity.
type Session struct {
	// ID is the opaque session identifier (sid).
	ID string `json:"-"`

	// Data is the identity stored with the session.
	Data SessionData `json:"-"`

	// ExpiresAt is the moment after which the session is no longer honoured.
	ExpiresAt time.Time `json:"expires_at"`

	// SignedToken is the signed form of the session reference handed to the
	// client in the `sid` cookie and the login response.
	SignedToken string `json:"token,omitempty"`
}

// SessionClaims are the JWT claims of a signed session token.
// The session id travels in the "jti" claim and the user id in "sub".
type SessionClaims struct {
	jwt.RegisteredClaims
}

// SessionID returns the session identifier carried by the claims.
func (c SessionClaims) SessionID() string {
	return c.ID
}
