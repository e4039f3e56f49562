// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import "errors"

var (
	ErrEmptyRecipient = errors.New("mail recipient is empty")

	ErrBadRequest          = errors.New("mail api rejected the request")
	ErrUnauthorized        = errors.New("mail api unauthorized")
	ErrForbidden           = errors.New("mail api forbidden")
	ErrRateLimited         = errors.New("mail api rate limit exceeded")
	ErrInternalServerError = errors.New("mail api internal error")
	ErrUnavailable         = errors.New("mail api unavailable")
)
