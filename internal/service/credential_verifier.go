// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-invoice-tracker/internal/logger"
	"github.com/MKhiriev/go-invoice-tracker/internal/store"
	"github.com/MKhiriev/go-invoice-tracker/internal/utils"
	"github.com/MKhiriev/go-invoice-tracker/models"
)

// passwordVerifier checks an email-or-username plus password pair against
// the stored bcrypt hash.
type passwordVerifier struct {
	userRepository store.UserRepository
}

func NewPasswordVerifier(userRepository store.UserRepository) CredentialVerifier {
	return &passwordVerifier{userRepository: userRepository}
}

// Verify implements [CredentialVerifier]. An unknown login still pays for a
// bcrypt comparison so response times do not reveal which accounts exist.
func (v *passwordVerifier) Verify(ctx context.Context, creds models.Credentials) (models.User, error) {
	log := logger.FromContext(ctx)

	user, err := v.userRepository.FindUserByLogin(ctx, creds.Identifier())
	if errors.Is(err, store.ErrNoUserWasFound) {
		utils.CompareDummyPassword(creds.Password)
		log.Debug().Str("func", "passwordVerifier.Verify").Msg("unknown login")
		return models.User{}, ErrInvalidCredentials
	}
	if err != nil {
		return models.User{}, fmt.Errorf("user search by login failed: %w", err)
	}

	if !utils.ComparePassword(user.PasswordHash, creds.Password) {
		log.Debug().Str("func", "passwordVerifier.Verify").Str("user_id", user.UserID).Msg("wrong password")
		return models.User{}, ErrInvalidCredentials
	}

	return user, nil
}
