// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// ErrorKind classifies an error response.
type ErrorKind string

const (
	KindNotFound    ErrorKind = "not_found"
	KindValidation  ErrorKind = "validation"
	KindAuth        ErrorKind = "auth"
	KindConflict    ErrorKind = "conflict"
	KindRateLimited ErrorKind = "rate_limited"
	KindServer      ErrorKind = "server"
)

// ErrorResponse is the single envelope used for every error reply.
type ErrorResponse struct {
	Kind    ErrorKind `json:"kind"`
	Message string    `json:"message"`

	// Details carries the underlying error text in development mode only.
	Details string `json:"details,omitempty"`
}

// MessageResponse is a plain acknowledgement body.
type MessageResponse struct {
	Message string `json:"message"`
}

// RegisterResponse is returned after a successful registration.
type RegisterResponse struct {
	Message string `json:"message"`
	User    User   `json:"user"`

	// Token is the email-confirmation token. It is only filled outside
	// production, where no real mail delivery may be configured.
	Token string `json:"token,omitempty"`
}

// LoginResponse is returned after a successful login.
type LoginResponse struct {
	User      User      `json:"user"`
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}

// HealthResponse is returned by the health endpoint.
type HealthResponse struct {
	Status string `json:"status"`
}
