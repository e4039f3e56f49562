// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors raised by the transport layer itself. Callers can match
// against them with [errors.Is].
var (
	// ErrMissingSessionToken is returned by the auth middleware when the
	// request carries neither a `sid` cookie nor a bearer token.
	ErrMissingSessionToken = errors.New("missing session token")

	// ErrInvalidJSON is returned when a request body cannot be decoded.
	ErrInvalidJSON = errors.New("invalid JSON was passed")

	// ErrInvalidInvoiceID is returned when the {id} path segment is not a
	// positive integer.
	ErrInvalidInvoiceID = errors.New("invalid invoice id")

	// ErrRateLimited is returned when a client exceeds the auth rate limit.
	ErrRateLimited = errors.New("too many requests")

	errRouteNotFound    = errors.New("route not found")
	errMethodNotAllowed = errors.New("method not allowed")
)
