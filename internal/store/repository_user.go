// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"

	"github.com/MKhiriev/go-invoice-tracker/internal/logger"
	"github.com/MKhiriev/go-invoice-tracker/models"
)

// userRepository is the SQL implementation of [UserRepository] over the
// "users" table.
type userRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewUserRepository constructs a [UserRepository] backed by db.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		db:     db,
		logger: logger,
	}
}

// CreateUser inserts user as given. The unique index on email turns a
// duplicate registration into [ErrEmailAlreadyExists].
func (r *userRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildInsertUserQuery(r.db.builder, user)
	if err != nil {
		return models.User{}, err
	}

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		if r.db.errorClassificator.Classify(err) == UniqueViolation {
			log.Warn().Str("func", "*userRepository.CreateUser").Msg("email already registered")
			return models.User{}, ErrEmailAlreadyExists
		}
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error inserting user")
		return models.User{}, r.db.wrap(ErrExecutingStatement, err)
	}

	return user, nil
}

// FindUserByLogin looks the user up by email or username in a single query.
// An exact email match always wins over a username match.
func (r *userRepository) FindUserByLogin(ctx context.Context, identifier string) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildFindUserByLoginQuery(r.db.builder, identifier)
	if err != nil {
		return models.User{}, err
	}

	var user models.User
	err = r.db.QueryRowContext(ctx, query, args...).Scan(
		&user.UserID,
		&user.Username,
		&user.Email,
		&user.PasswordHash,
		&user.EmailConfirmationToken,
		&user.EmailConfirmed,
		&user.ProfileImageURL,
		&user.CreatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return models.User{}, ErrNoUserWasFound
	}
	if err != nil {
		log.Err(err).Str("func", "*userRepository.FindUserByLogin").Msg("error scanning user")
		return models.User{}, r.db.wrap(ErrScanningRow, err)
	}

	return user, nil
}

// ConfirmEmail flips email_confirmed and clears the token only for an
// unconfirmed user still holding it, so a token works once.
func (r *userRepository) ConfirmEmail(ctx context.Context, token string) error {
	log := logger.FromContext(ctx)

	query, args, err := buildConfirmEmailQuery(r.db.builder, token)
	if err != nil {
		return err
	}

	var userID string
	err = r.db.QueryRowContext(ctx, query, args...).Scan(&userID)
	if errors.Is(err, sql.ErrNoRows) {
		return ErrInvalidConfirmationToken
	}
	if err != nil {
		log.Err(err).Str("func", "*userRepository.ConfirmEmail").Msg("error confirming email")
		return r.db.wrap(ErrExecutingStatement, err)
	}

	log.Info().Str("func", "*userRepository.ConfirmEmail").Str("user_id", userID).Msg("email confirmed")
	return nil
}
