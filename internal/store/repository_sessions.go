// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Raul Shma

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/raulshma/ever-life-vault-sub006/internal/logger"
	"github.com/raulshma/ever-life-vault-sub006/models"
)

// sessionRepository is the SQL-backed implementation of
// [VaultSessionRepository]. Session rows carry the server-held half of
// the split session secret; sweeping them is what makes a lock or an
// expiry irreversible.
type sessionRepository struct {
	*DB
	logger *logger.Logger
}

// NewSessionRepository constructs a [VaultSessionRepository] backed by the
// provided database connection and logger.
func NewSessionRepository(db *DB, logger *logger.Logger) VaultSessionRepository {
	return &sessionRepository{
		DB:     db,
		logger: logger,
	}
}

// GetSession retrieves one session row.
//
// Returns [ErrSessionNotFound] when no row matches; callers treat that as
// a revoked or expired session, never as a transient fault.
func (r *sessionRepository) GetSession(ctx context.Context, userID, sessionID string) (models.VaultSession, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectSessionQuery(ctx, r.builder, userID, sessionID)
	if err != nil {
		return models.VaultSession{}, err
	}

	var session models.VaultSession
	scanErr := r.DB.QueryRowContext(ctx, query, args...).Scan(
		&session.UserID,
		&session.SessionID,
		&session.ServerSecret,
		&session.ExpiresAt,
		&session.CreatedAt,
	)
	if scanErr != nil {
		if errors.Is(scanErr, sql.ErrNoRows) {
			return models.VaultSession{}, ErrSessionNotFound
		}
		log.Err(scanErr).
			Str("func", "sessionRepository.GetSession").
			Str("user_id", userID).
			Str("session_id", sessionID).
			Msg("failed to query vault session")
		return models.VaultSession{}, fmt.Errorf("%w: %w", ErrExecutingQuery, scanErr)
	}

	return session, nil
}

// SaveSession inserts a new session row. A zero CreatedAt is set to the
// current UTC instant and written back into session.
func (r *sessionRepository) SaveSession(ctx context.Context, session *models.VaultSession) error {
	log := logger.FromContext(ctx)

	if session.CreatedAt.IsZero() {
		session.CreatedAt = time.Now().UTC()
	}

	query, args, err := buildInsertSessionQuery(ctx, r.builder, session)
	if err != nil {
		return err
	}

	log.Debug().
		Str("func", "sessionRepository.SaveSession").
		Str("user_id", session.UserID).
		Str("session_id", session.SessionID).
		Time("expires_at", session.ExpiresAt).
		Msg("saving vault session")

	if _, execErr := r.DB.ExecContext(ctx, query, args...); execErr != nil {
		if r.classifier.IsDuplicate(execErr) {
			log.Warn().
				Str("func", "sessionRepository.SaveSession").
				Str("session_id", session.SessionID).
				Msg("duplicate session id")
			return fmt.Errorf("%w: %w", ErrDuplicateRecord, execErr)
		}
		log.Err(execErr).
			Str("func", "sessionRepository.SaveSession").
			Str("user_id", session.UserID).
			Str("session_id", session.SessionID).
			Msg("failed to save vault session")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, execErr)
	}

	return nil
}

// DeleteSession removes one session row. Deleting an absent row is not an
// error so that locking stays idempotent.
func (r *sessionRepository) DeleteSession(ctx context.Context, userID, sessionID string) error {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteSessionQuery(ctx, r.builder, userID, sessionID)
	if err != nil {
		return err
	}

	if _, execErr := r.DB.ExecContext(ctx, query, args...); execErr != nil {
		log.Err(execErr).
			Str("func", "sessionRepository.DeleteSession").
			Str("user_id", userID).
			Str("session_id", sessionID).
			Msg("failed to delete vault session")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, execErr)
	}

	log.Debug().
		Str("func", "sessionRepository.DeleteSession").
		Str("user_id", userID).
		Str("session_id", sessionID).
		Msg("vault session deleted")

	return nil
}

// DeleteExpiredSessions removes every session whose deadline lies at or
// before now. Called periodically by the session sweeper worker so
// abandoned sessions cannot pile up; a swept session can never be
// restored because its server secret is gone.
func (r *sessionRepository) DeleteExpiredSessions(ctx context.Context, now time.Time) (int64, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteExpiredSessionsQuery(ctx, r.builder, now)
	if err != nil {
		return 0, err
	}

	result, execErr := r.DB.ExecContext(ctx, query, args...)
	if execErr != nil {
		log.Err(execErr).
			Str("func", "sessionRepository.DeleteExpiredSessions").
			Time("now", now).
			Msg("failed to delete expired vault sessions")
		return 0, fmt.Errorf("%w: %w", ErrExecutingQuery, execErr)
	}

	affected, raErr := result.RowsAffected()
	if raErr != nil {
		log.Err(raErr).
			Str("func", "sessionRepository.DeleteExpiredSessions").
			Msg("failed to read affected rows")
		return 0, fmt.Errorf("%w: %w", ErrExecutingQuery, raErr)
	}

	if affected > 0 {
		log.Info().
			Str("func", "sessionRepository.DeleteExpiredSessions").
			Int64("swept", affected).
			Msg("expired vault sessions removed")
	}

	return affected, nil
}
