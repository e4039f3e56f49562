// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")

	// ErrInvalidCredentials covers both an unknown login and a wrong
	// password so callers cannot tell which one failed.
	ErrInvalidCredentials = errors.New("invalid credentials")

	ErrEmailNotConfirmed         = errors.New("email is not confirmed")
	ErrSessionIsExpiredOrInvalid = errors.New("session is expired or invalid")
	ErrTokenCreationFailed       = errors.New("session token creation failed")

	ErrVersionIsNotSpecified       = errors.New("app version is not specified")
	ErrSessionSecretIsNotSpecified = errors.New("session secret is not specified")
)
