// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/MKhiriev/go-invoice-tracker/internal/adapter"
	"github.com/MKhiriev/go-invoice-tracker/internal/config"
	"github.com/MKhiriev/go-invoice-tracker/internal/logger"
	"github.com/MKhiriev/go-invoice-tracker/internal/metrics"
	"github.com/MKhiriev/go-invoice-tracker/internal/store"
	"github.com/MKhiriev/go-invoice-tracker/internal/utils"
	"github.com/MKhiriev/go-invoice-tracker/internal/validators"
	"github.com/MKhiriev/go-invoice-tracker/models"
)

const confirmationSubject = "Confirm your email"

// authService is the session-backed implementation of AuthService.
//
// A login creates a row in the session table and hands the client an HS256
// token naming that row. Every authenticated request checks both the token
// and the row, so deleting the row revokes the token at once.
type authService struct {
	userRepository    store.UserRepository
	sessionRepository store.SessionRepository
	verifier          CredentialVerifier
	mailer            adapter.Mailer
	validator         validators.Validator
	ids               *utils.UUIDGenerator
	metrics           *metrics.Metrics

	// signKey signs and verifies session tokens.
	signKey string

	// issuer is the "iss" claim of every token; others are rejected.
	issuer string

	sessionDuration time.Duration
	bcryptCost      int
	confirmationURL string

	now    func() time.Time
	logger *logger.Logger
}

// NewAuthService wires the auth service. It fails when no signing secret is
// configured.
func NewAuthService(storages *store.Storages, mailer adapter.Mailer, m *metrics.Metrics, cfg config.App, logger *logger.Logger) (AuthService, error) {
	if cfg.SessionSecret == "" {
		return nil, ErrSessionSecretIsNotSpecified
	}

	return &authService{
		userRepository:    storages.UserRepository,
		sessionRepository: storages.SessionRepository,
		verifier:          NewPasswordVerifier(storages.UserRepository),
		mailer:            mailer,
		validator:         validators.NewUserValidator(),
		ids:               utils.NewUUIDGenerator(),
		metrics:           m,
		signKey:           cfg.SessionSecret,
		issuer:            cfg.SessionIssuer,
		sessionDuration:   cfg.SessionDuration,
		bcryptCost:        cfg.BcryptCost,
		confirmationURL:   cfg.ConfirmationURL,
		now:               time.Now,
		logger:            logger,
	}, nil
}

// Register stores an unconfirmed user and mails the confirmation link. A
// failed delivery is logged and does not undo the registration.
func (a *authService) Register(ctx context.Context, req models.RegisterRequest) (reg models.Registration, err error) {
	defer func() { a.metrics.AuthEvent("register", err) }()
	log := logger.FromContext(ctx)

	if err = a.validator.Validate(ctx, req); err != nil {
		log.Warn().Err(err).Str("func", "*authService.Register").Msg("invalid registration data")
		return models.Registration{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	hash, err := utils.HashPassword(req.Password, a.bcryptCost)
	if err != nil {
		return models.Registration{}, fmt.Errorf("error hashing password: %w", err)
	}

	token := a.ids.GenerateRandom()
	user := models.User{
		UserID:                 a.ids.Generate(),
		Username:               strings.TrimSpace(req.Username),
		Email:                  strings.TrimSpace(req.Email),
		PasswordHash:           hash,
		EmailConfirmationToken: &token,
		CreatedAt:              a.now().UTC(),
	}

	created, err := a.userRepository.CreateUser(ctx, user)
	if err != nil {
		log.Err(err).Str("func", "*authService.Register").Msg("user creation ended with error")
		return models.Registration{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	msg := models.MailMessage{
		To:      created.Email,
		Subject: confirmationSubject,
		Text: fmt.Sprintf("Hi %s,\n\nplease confirm your email address by opening the link below:\n\n%s\n",
			created.Username, a.confirmationLink(token)),
	}
	if sendErr := a.mailer.Send(ctx, msg); sendErr != nil {
		log.Err(sendErr).
			Str("func", "*authService.Register").
			Str("user_id", created.UserID).
			Msg("confirmation mail was not delivered")
	}

	return models.Registration{User: created, ConfirmationToken: token}, nil
}

func (a *authService) confirmationLink(token string) string {
	sep := "?"
	if strings.Contains(a.confirmationURL, "?") {
		sep = "&"
	}
	return a.confirmationURL + sep + "token=" + url.QueryEscape(token)
}

// ConfirmEmail consumes a confirmation token. An empty, unknown or already
// used token yields store.ErrInvalidConfirmationToken.
func (a *authService) ConfirmEmail(ctx context.Context, token string) (err error) {
	defer func() { a.metrics.AuthEvent("confirm_email", err) }()

	if strings.TrimSpace(token) == "" {
		return store.ErrInvalidConfirmationToken
	}

	if err = a.userRepository.ConfirmEmail(ctx, token); err != nil {
		return fmt.Errorf("email confirmation failed: %w", err)
	}
	return nil
}

// Login verifies the credentials, requires a confirmed email and opens a
// new session.
func (a *authService) Login(ctx context.Context, creds models.Credentials) (user models.User, session models.Session, err error) {
	defer func() { a.metrics.AuthEvent("login", err) }()
	log := logger.FromContext(ctx)

	if err = a.validator.Validate(ctx, creds); err != nil {
		return models.User{}, models.Session{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	user, err = a.verifier.Verify(ctx, creds)
	if err != nil {
		return models.User{}, models.Session{}, err
	}

	if !user.EmailConfirmed {
		log.Info().Str("func", "*authService.Login").Str("user_id", user.UserID).Msg("login before email confirmation")
		return models.User{}, models.Session{}, ErrEmailNotConfirmed
	}

	session = models.Session{
		ID: a.ids.GenerateRandom(),
		Data: models.SessionData{
			UserID:   user.UserID,
			Username: user.Username,
			Email:    user.Email,
		},
		ExpiresAt: a.now().Add(a.sessionDuration).UTC().Truncate(time.Second),
	}

	session.SignedToken, err = utils.GenerateSessionToken(a.issuer, session.ID, user.UserID, session.ExpiresAt, a.signKey)
	if err != nil {
		return models.User{}, models.Session{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	if err = a.sessionRepository.CreateSession(ctx, session); err != nil {
		log.Err(err).Str("func", "*authService.Login").Msg("session was not stored")
		return models.User{}, models.Session{}, fmt.Errorf("session creation failed: %w", err)
	}

	return user, session, nil
}

// Authenticate implements [AuthService].
func (a *authService) Authenticate(ctx context.Context, token string) (models.Session, error) {
	claims, err := utils.ValidateAndParseSessionToken(token, a.signKey, a.issuer)
	if err != nil {
		logger.FromContext(ctx).Debug().Err(err).Str("func", "*authService.Authenticate").Msg("token rejected")
		return models.Session{}, ErrSessionIsExpiredOrInvalid
	}

	session, err := a.sessionRepository.FindSession(ctx, claims.SessionID(), a.now())
	if errors.Is(err, store.ErrSessionNotFound) {
		return models.Session{}, ErrSessionIsExpiredOrInvalid
	}
	if err != nil {
		return models.Session{}, fmt.Errorf("session lookup failed: %w", err)
	}

	if session.Data.UserID != claims.Subject {
		return models.Session{}, ErrSessionIsExpiredOrInvalid
	}

	session.SignedToken = token
	return session, nil
}

// Logout implements [AuthService].
func (a *authService) Logout(ctx context.Context, token string) (err error) {
	defer func() { a.metrics.AuthEvent("logout", err) }()

	claims, parseErr := utils.ValidateAndParseSessionToken(token, a.signKey, a.issuer)
	if parseErr != nil {
		return nil
	}

	if err = a.sessionRepository.DeleteSession(ctx, claims.SessionID()); err != nil {
		return fmt.Errorf("session deletion failed: %w", err)
	}
	return nil
}

// DeleteExpiredSessions implements [AuthService].
func (a *authService) DeleteExpiredSessions(ctx context.Context) (int64, error) {
	n, err := a.sessionRepository.DeleteExpiredSessions(ctx, a.now())
	if err != nil {
		return 0, fmt.Errorf("expired session cleanup failed: %w", err)
	}

	a.metrics.SessionsCleaned(n)
	return n, nil
}
