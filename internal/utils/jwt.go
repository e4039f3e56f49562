// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-invoice-tracker/models"
	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrInvalidTokenParams    = errors.New("invalid params for generating session token")
	ErrInvalidAuthHeader     = errors.New("invalid authorization header")
	ErrSessionClaimsMissing  = errors.New("session token has no session id or subject")
	ErrTokenValidationFailed = errors.New("error occurred validating and parsing token")
)

// GenerateSessionToken signs an HS256 token referencing a server-side
// session. The session id is carried in "jti" and the user id in "sub".
func GenerateSessionToken(issuer, sessionID, userID string, expiresAt time.Time, signKey string) (string, error) {
	if issuer == "" || sessionID == "" || userID == "" || signKey == "" || expiresAt.IsZero() {
		return "", ErrInvalidTokenParams
	}

	claims := &models.SessionClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        sessionID,
			Issuer:    issuer,
			Subject:   userID,
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(signKey))
	if err != nil {
		return "", fmt.Errorf("error occurred during signing session token: %w", err)
	}

	return signed, nil
}

// ValidateAndParseSessionToken verifies the signature, issuer and expiry of
// tokenString and returns its claims.
func ValidateAndParseSessionToken(tokenString, signKey, issuer string) (models.SessionClaims, error) {
	claims := &models.SessionClaims{}
	_, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		return []byte(signKey), nil
	},
		jwt.WithIssuer(issuer),
		jwt.WithExpirationRequired(),
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
	)
	if err != nil {
		return models.SessionClaims{}, fmt.Errorf("%w: %w", ErrTokenValidationFailed, err)
	}

	if claims.ID == "" || claims.Subject == "" {
		return models.SessionClaims{}, ErrSessionClaimsMissing
	}

	return *claims, nil
}

// ParseBearerToken extracts the token from an "Authorization: Bearer <token>"
// header value.
func ParseBearerToken(authorizationHeader string) (string, error) {
	parts := strings.Fields(authorizationHeader)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", ErrInvalidAuthHeader
	}
	return parts[1], nil
}
