// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-invoice-tracker/internal/logger"
	"github.com/MKhiriev/go-invoice-tracker/models"
)

// sessionRepository stores sessions as (sid, sess JSON, expire) rows.
// Expiry instants are normalized to UTC seconds so SQLite's text timestamps
// compare in order.
type sessionRepository struct {
	logger *logger.Logger
	db     *DB
}

func NewSessionRepository(db *DB, logger *logger.Logger) SessionRepository {
	logger.Debug().Msg("creating session repository")
	return &sessionRepository{
		db:     db,
		logger: logger,
	}
}

func normalizeTime(t time.Time) time.Time {
	return t.UTC().Truncate(time.Second)
}

func (r *sessionRepository) CreateSession(ctx context.Context, session models.Session) error {
	log := logger.FromContext(ctx)

	sess, err := json.Marshal(session.Data)
	if err != nil {
		return fmt.Errorf("error encoding session data: %w", err)
	}

	query, args, err := buildInsertSessionQuery(r.db.builder, session.ID, sess, normalizeTime(session.ExpiresAt))
	if err != nil {
		return err
	}

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Str("func", "*sessionRepository.CreateSession").Msg("error inserting session")
		return r.db.wrap(ErrExecutingStatement, err)
	}

	return nil
}

func (r *sessionRepository) FindSession(ctx context.Context, sessionID string, now time.Time) (models.Session, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildFindSessionQuery(r.db.builder, sessionID, normalizeTime(now))
	if err != nil {
		return models.Session{}, err
	}

	var (
		session models.Session
		sess    []byte
	)
	err = r.db.QueryRowContext(ctx, query, args...).Scan(&session.ID, &sess, &session.ExpiresAt)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Session{}, ErrSessionNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "*sessionRepository.FindSession").Msg("error scanning session")
		return models.Session{}, r.db.wrap(ErrScanningRow, err)
	}

	if err = json.Unmarshal(sess, &session.Data); err != nil {
		log.Err(err).Str("func", "*sessionRepository.FindSession").Msg("corrupted session data")
		return models.Session{}, fmt.Errorf("%w: %w", ErrSessionNotFound, err)
	}

	return session, nil
}

func (r *sessionRepository) DeleteSession(ctx context.Context, sessionID string) error {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteSessionQuery(r.db.builder, sessionID)
	if err != nil {
		return err
	}

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Str("func", "*sessionRepository.DeleteSession").Msg("error deleting session")
		return r.db.wrap(ErrExecutingStatement, err)
	}

	return nil
}

func (r *sessionRepository) DeleteExpiredSessions(ctx context.Context, now time.Time) (int64, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteExpiredSessionsQuery(r.db.builder, normalizeTime(now))
	if err != nil {
		return 0, err
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*sessionRepository.DeleteExpiredSessions").Msg("error deleting expired sessions")
		return 0, r.db.wrap(ErrExecutingStatement, err)
	}

	deleted, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return deleted, nil
}
