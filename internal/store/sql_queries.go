// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Raul Shma

package store

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/raulshma/ever-life-vault-sub006/internal/logger"
	"github.com/raulshma/ever-life-vault-sub006/models"
)

// Column sets shared by the query builders below. Order matters: the
// repositories scan rows positionally against these lists.
var (
	itemColumns = []string{
		"id",
		"user_id",
		"item_type",
		"name",
		"encrypted_data",
		"iv",
		"auth_tag",
		"created_at",
		"updated_at",
	}

	configColumns = []string{
		"user_id",
		"salt",
		"created_at",
		"updated_at",
	}

	sessionColumns = []string{
		"user_id",
		"session_id",
		"server_secret",
		"expires_at",
		"created_at",
	}
)

// buildSelectItemsQuery builds the SELECT returning every encrypted item
// of a user, oldest first so the collection order is stable across
// dialects.
func buildSelectItemsQuery(ctx context.Context, b sq.StatementBuilderType, userID string) (string, []any, error) {
	query, args, err := b.
		Select(itemColumns...).
		From("encrypted_vault_items").
		Where(sq.Eq{"user_id": userID}).
		OrderBy("created_at ASC", "id ASC").
		ToSql()
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "buildSelectItemsQuery").Msg("failed to build query")
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

// buildSelectFirstItemQuery builds the LIMIT 1 probe used to validate a
// master password against the oldest stored item.
func buildSelectFirstItemQuery(ctx context.Context, b sq.StatementBuilderType, userID string) (string, []any, error) {
	query, args, err := b.
		Select(itemColumns...).
		From("encrypted_vault_items").
		Where(sq.Eq{"user_id": userID}).
		OrderBy("created_at ASC", "id ASC").
		Limit(1).
		ToSql()
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "buildSelectFirstItemQuery").Msg("failed to build query")
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

// buildInsertItemQuery builds the INSERT for a new encrypted item.
func buildInsertItemQuery(ctx context.Context, b sq.StatementBuilderType, item *models.EncryptedVaultItem) (string, []any, error) {
	query, args, err := b.
		Insert("encrypted_vault_items").
		Columns(itemColumns...).
		Values(
			item.ID,
			item.UserID,
			item.ItemType,
			item.Name,
			item.EncryptedData,
			item.IV,
			item.AuthTag,
			item.CreatedAt,
			item.UpdatedAt,
		).
		ToSql()
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "buildInsertItemQuery").Msg("failed to build query")
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

// buildUpdateItemQuery builds the UPDATE rewriting the mutable columns of
// an item. The ciphertext triple is always rewritten as a unit; partial
// field merging happens in plaintext at the service layer, never here.
func buildUpdateItemQuery(ctx context.Context, b sq.StatementBuilderType, item *models.EncryptedVaultItem) (string, []any, error) {
	query, args, err := b.
		Update("encrypted_vault_items").
		Set("item_type", item.ItemType).
		Set("name", item.Name).
		Set("encrypted_data", item.EncryptedData).
		Set("iv", item.IV).
		Set("auth_tag", item.AuthTag).
		Set("updated_at", item.UpdatedAt).
		Where(sq.Eq{"id": item.ID, "user_id": item.UserID}).
		ToSql()
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "buildUpdateItemQuery").Msg("failed to build query")
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

// buildDeleteItemQuery builds the DELETE for a single item.
func buildDeleteItemQuery(ctx context.Context, b sq.StatementBuilderType, userID, itemID string) (string, []any, error) {
	query, args, err := b.
		Delete("encrypted_vault_items").
		Where(sq.Eq{"id": itemID, "user_id": userID}).
		ToSql()
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "buildDeleteItemQuery").Msg("failed to build query")
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

// buildSelectConfigQuery builds the SELECT for a user's vault config row.
func buildSelectConfigQuery(ctx context.Context, b sq.StatementBuilderType, userID string) (string, []any, error) {
	query, args, err := b.
		Select(configColumns...).
		From("vault_config").
		Where(sq.Eq{"user_id": userID}).
		ToSql()
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "buildSelectConfigQuery").Msg("failed to build query")
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

// buildInsertConfigQuery builds the INSERT for a vault config row.
func buildInsertConfigQuery(ctx context.Context, b sq.StatementBuilderType, cfg *models.VaultConfig) (string, []any, error) {
	query, args, err := b.
		Insert("vault_config").
		Columns(configColumns...).
		Values(cfg.UserID, cfg.Salt, cfg.CreatedAt, cfg.UpdatedAt).
		ToSql()
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "buildInsertConfigQuery").Msg("failed to build query")
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

// buildSelectSessionQuery builds the SELECT for one session row.
func buildSelectSessionQuery(ctx context.Context, b sq.StatementBuilderType, userID, sessionID string) (string, []any, error) {
	query, args, err := b.
		Select(sessionColumns...).
		From("vault_sessions").
		Where(sq.Eq{"user_id": userID, "session_id": sessionID}).
		ToSql()
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "buildSelectSessionQuery").Msg("failed to build query")
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

// buildInsertSessionQuery builds the INSERT for a new session row.
func buildInsertSessionQuery(ctx context.Context, b sq.StatementBuilderType, session *models.VaultSession) (string, []any, error) {
	query, args, err := b.
		Insert("vault_sessions").
		Columns(sessionColumns...).
		Values(
			session.UserID,
			session.SessionID,
			session.ServerSecret,
			session.ExpiresAt,
			session.CreatedAt,
		).
		ToSql()
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "buildInsertSessionQuery").Msg("failed to build query")
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

// buildDeleteSessionQuery builds the DELETE for one session row.
func buildDeleteSessionQuery(ctx context.Context, b sq.StatementBuilderType, userID, sessionID string) (string, []any, error) {
	query, args, err := b.
		Delete("vault_sessions").
		Where(sq.Eq{"user_id": userID, "session_id": sessionID}).
		ToSql()
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "buildDeleteSessionQuery").Msg("failed to build query")
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

// buildDeleteExpiredSessionsQuery builds the sweep DELETE removing every
// session whose deadline lies at or before now.
func buildDeleteExpiredSessionsQuery(ctx context.Context, b sq.StatementBuilderType, now time.Time) (string, []any, error) {
	query, args, err := b.
		Delete("vault_sessions").
		Where(sq.LtOrEq{"expires_at": now}).
		ToSql()
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "buildDeleteExpiredSessionsQuery").Msg("failed to build query")
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}
