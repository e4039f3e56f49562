// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"strings"
	"unicode/utf8"

	"github.com/MKhiriev/go-invoice-tracker/models"
)

const (
	maxUsernameLength = 50
	minPasswordLength = 8

	// bcrypt ignores everything past 72 bytes.
	maxPasswordBytes = 72
)

// UserValidator checks registration requests and login credentials.
type UserValidator struct{}

func NewUserValidator() Validator {
	return &UserValidator{}
}

func (v *UserValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.RegisterRequest:
		return validateRegister(value)
	case *models.RegisterRequest:
		return validateRegister(*value)

	case models.Credentials:
		return validateCredentials(value)
	case *models.Credentials:
		return validateCredentials(*value)

	default:
		return ErrUnsupportedType
	}
}

func validateRegister(req models.RegisterRequest) error {
	username := strings.TrimSpace(req.Username)
	if username == "" {
		return ErrEmptyUsername
	}
	if utf8.RuneCountInString(username) > maxUsernameLength {
		return ErrUsernameTooLong
	}
	// logins are matched against email and username alike
	if strings.Contains(username, "@") {
		return ErrUsernameHasAt
	}
	if !isEmail(req.Email) {
		return ErrInvalidEmail
	}
	if utf8.RuneCountInString(req.Password) < minPasswordLength {
		return ErrPasswordTooShort
	}
	if len(req.Password) > maxPasswordBytes {
		return ErrPasswordTooLong
	}
	return nil
}

func validateCredentials(creds models.Credentials) error {
	if creds.Identifier() == "" {
		return ErrEmptyLogin
	}
	if creds.Password == "" {
		return ErrEmptyPassword
	}
	return nil
}
