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

// configRepository is the SQL-backed implementation of
// [VaultConfigRepository]. One row per user in "vault_config"; the row is
// written exactly once, at vault initialization.
type configRepository struct {
	*DB
	logger *logger.Logger
}

// NewConfigRepository constructs a [VaultConfigRepository] backed by the
// provided database connection and logger.
func NewConfigRepository(db *DB, logger *logger.Logger) VaultConfigRepository {
	return &configRepository{
		DB:     db,
		logger: logger,
	}
}

// GetConfig retrieves the vault config row of the given user.
//
// Returns [ErrConfigNotFound] when the vault was never initialized.
func (r *configRepository) GetConfig(ctx context.Context, userID string) (models.VaultConfig, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectConfigQuery(ctx, r.builder, userID)
	if err != nil {
		return models.VaultConfig{}, err
	}

	var cfg models.VaultConfig
	scanErr := r.DB.QueryRowContext(ctx, query, args...).Scan(
		&cfg.UserID,
		&cfg.Salt,
		&cfg.CreatedAt,
		&cfg.UpdatedAt,
	)
	if scanErr != nil {
		if errors.Is(scanErr, sql.ErrNoRows) {
			return models.VaultConfig{}, ErrConfigNotFound
		}
		log.Err(scanErr).
			Str("func", "configRepository.GetConfig").
			Str("user_id", userID).
			Msg("failed to query vault config")
		return models.VaultConfig{}, fmt.Errorf("%w: %w", ErrExecutingQuery, scanErr)
	}

	return cfg, nil
}

// SaveConfig inserts the vault config row for a user. Zero timestamps are
// set to the current UTC instant and written back into cfg.
//
// Returns [ErrConfigAlreadyExists] when a row for cfg.UserID is already
// present. The uniqueness guarantee comes from the primary key, so two
// racing initialization attempts cannot both succeed.
func (r *configRepository) SaveConfig(ctx context.Context, cfg *models.VaultConfig) error {
	log := logger.FromContext(ctx)

	now := time.Now().UTC()
	if cfg.CreatedAt.IsZero() {
		cfg.CreatedAt = now
	}
	if cfg.UpdatedAt.IsZero() {
		cfg.UpdatedAt = now
	}

	query, args, err := buildInsertConfigQuery(ctx, r.builder, cfg)
	if err != nil {
		return err
	}

	log.Debug().
		Str("func", "configRepository.SaveConfig").
		Str("user_id", cfg.UserID).
		Msg("saving vault config")

	if _, execErr := r.DB.ExecContext(ctx, query, args...); execErr != nil {
		if r.classifier.IsDuplicate(execErr) {
			log.Warn().
				Str("func", "configRepository.SaveConfig").
				Str("user_id", cfg.UserID).
				Msg("vault config already exists")
			return fmt.Errorf("%w: %w", ErrConfigAlreadyExists, execErr)
		}
		log.Err(execErr).
			Str("func", "configRepository.SaveConfig").
			Str("user_id", cfg.UserID).
			Msg("failed to save vault config")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, execErr)
	}

	log.Info().
		Str("func", "configRepository.SaveConfig").
		Str("user_id", cfg.UserID).
		Msg("vault config saved")

	return nil
}
