package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/raulshma/ever-life-vault-sub006/internal/logger"
	"github.com/raulshma/ever-life-vault-sub006/internal/utils"
	"github.com/raulshma/ever-life-vault-sub006/models"
)

// itemRepository is the SQL-backed implementation of [VaultItemRepository].
// It executes all encrypted-item CRUD operations against the
// "encrypted_vault_items" table using the embedded [*DB] connection.
//
// Every public method obtains a context-scoped logger via
// [logger.FromContext] so that all database interactions are traced
// with structured fields (user_id, item_id, etc.).
type itemRepository struct {
	*DB
	uuid   *utils.UUIDGenerator
	logger *logger.Logger
}

// NewItemRepository constructs a [VaultItemRepository] backed by the
// provided database connection and logger.
//
// The logger parameter is stored for fallback logging; most methods prefer
// the context-scoped logger obtained via [logger.FromContext].
func NewItemRepository(db *DB, logger *logger.Logger) VaultItemRepository {
	return &itemRepository{
		DB:     db,
		uuid:   utils.NewUUIDGenerator(),
		logger: logger,
	}
}

// GetItems retrieves every encrypted vault item owned by the given user,
// oldest first.
//
// Returns an empty slice when the vault holds no items, or an error if the
// query fails, a row cannot be scanned, or an iteration error is detected
// after the result set is exhausted.
func (r *itemRepository) GetItems(ctx context.Context, userID string) ([]models.EncryptedVaultItem, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectItemsQuery(ctx, r.builder, userID)
	if err != nil {
		return nil, err
	}

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "itemRepository.GetItems").
			Str("user_id", userID).
			Msg("failed to execute query for getting encrypted items")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	results := make([]models.EncryptedVaultItem, 0, 50)

	for rows.Next() {
		var item models.EncryptedVaultItem

		scanErr := rows.Scan(
			&item.ID,
			&item.UserID,
			&item.ItemType,
			&item.Name,
			&item.EncryptedData,
			&item.IV,
			&item.AuthTag,
			&item.CreatedAt,
			&item.UpdatedAt,
		)
		if scanErr != nil {
			log.Err(scanErr).
				Str("func", "itemRepository.GetItems").
				Str("user_id", userID).
				Msg("failed to scan encrypted item row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}

		results = append(results, item)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", "itemRepository.GetItems").
			Str("user_id", userID).
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return results, nil
}

// GetFirstItem retrieves the oldest encrypted item of the user. It backs
// the unlock-time password probe: one decryptable record is enough to
// prove the derived key, so only one row ever crosses the wire.
//
// Returns [ErrItemNotFound] when the vault holds no items.
func (r *itemRepository) GetFirstItem(ctx context.Context, userID string) (models.EncryptedVaultItem, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectFirstItemQuery(ctx, r.builder, userID)
	if err != nil {
		return models.EncryptedVaultItem{}, err
	}

	var item models.EncryptedVaultItem
	scanErr := r.DB.QueryRowContext(ctx, query, args...).Scan(
		&item.ID,
		&item.UserID,
		&item.ItemType,
		&item.Name,
		&item.EncryptedData,
		&item.IV,
		&item.AuthTag,
		&item.CreatedAt,
		&item.UpdatedAt,
	)
	if scanErr != nil {
		if errors.Is(scanErr, sql.ErrNoRows) {
			return models.EncryptedVaultItem{}, ErrItemNotFound
		}
		log.Err(scanErr).
			Str("func", "itemRepository.GetFirstItem").
			Str("user_id", userID).
			Msg("failed to query first encrypted item")
		return models.EncryptedVaultItem{}, fmt.Errorf("%w: %w", ErrExecutingQuery, scanErr)
	}

	return item, nil
}

// SaveItem inserts a single encrypted vault item.
//
// A missing ID is assigned from the repository's UUID generator and zero
// timestamps are set to the current UTC instant; all assigned values are
// written back into item so the caller sees the persisted record.
func (r *itemRepository) SaveItem(ctx context.Context, item *models.EncryptedVaultItem) error {
	log := logger.FromContext(ctx)

	if item.ID == "" {
		item.ID = r.uuid.Generate()
	}
	now := time.Now().UTC()
	if item.CreatedAt.IsZero() {
		item.CreatedAt = now
	}
	if item.UpdatedAt.IsZero() {
		item.UpdatedAt = now
	}

	query, args, err := buildInsertItemQuery(ctx, r.builder, item)
	if err != nil {
		return err
	}

	log.Debug().
		Str("func", "itemRepository.SaveItem").
		Str("item_id", item.ID).
		Str("user_id", item.UserID).
		Msg("saving encrypted item")

	if _, execErr := r.DB.ExecContext(ctx, query, args...); execErr != nil {
		if r.classifier.IsDuplicate(execErr) {
			log.Warn().
				Str("func", "itemRepository.SaveItem").
				Str("item_id", item.ID).
				Msg("duplicate item id")
			return fmt.Errorf("%w: %w", ErrDuplicateRecord, execErr)
		}
		log.Err(execErr).
			Str("func", "itemRepository.SaveItem").
			Str("item_id", item.ID).
			Str("user_id", item.UserID).
			Msg("failed to save encrypted item")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, execErr)
	}

	return nil
}

// UpdateItem rewrites the mutable columns of an existing encrypted item.
//
// Last write wins: the row is replaced unconditionally, with no version
// check. Returns [ErrItemNotFound] when no row matches item.ID and
// item.UserID.
func (r *itemRepository) UpdateItem(ctx context.Context, item *models.EncryptedVaultItem) error {
	log := logger.FromContext(ctx)

	if item.UpdatedAt.IsZero() {
		item.UpdatedAt = time.Now().UTC()
	}

	query, args, err := buildUpdateItemQuery(ctx, r.builder, item)
	if err != nil {
		return err
	}

	result, execErr := r.DB.ExecContext(ctx, query, args...)
	if execErr != nil {
		log.Err(execErr).
			Str("func", "itemRepository.UpdateItem").
			Str("item_id", item.ID).
			Str("user_id", item.UserID).
			Msg("failed to update encrypted item")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, execErr)
	}

	affected, raErr := result.RowsAffected()
	if raErr != nil {
		log.Err(raErr).
			Str("func", "itemRepository.UpdateItem").
			Str("item_id", item.ID).
			Msg("failed to read affected rows")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, raErr)
	}
	if affected == 0 {
		log.Warn().
			Str("func", "itemRepository.UpdateItem").
			Str("item_id", item.ID).
			Str("user_id", item.UserID).
			Msg("item not found")
		return ErrItemNotFound
	}

	return nil
}

// DeleteItem removes a single encrypted item.
//
// Returns [ErrItemNotFound] when no row matches the given user and item
// identifiers.
func (r *itemRepository) DeleteItem(ctx context.Context, userID, itemID string) error {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteItemQuery(ctx, r.builder, userID, itemID)
	if err != nil {
		return err
	}

	result, execErr := r.DB.ExecContext(ctx, query, args...)
	if execErr != nil {
		log.Err(execErr).
			Str("func", "itemRepository.DeleteItem").
			Str("item_id", itemID).
			Str("user_id", userID).
			Msg("failed to delete encrypted item")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, execErr)
	}

	affected, raErr := result.RowsAffected()
	if raErr != nil {
		log.Err(raErr).
			Str("func", "itemRepository.DeleteItem").
			Str("item_id", itemID).
			Msg("failed to read affected rows")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, raErr)
	}
	if affected == 0 {
		log.Warn().
			Str("func", "itemRepository.DeleteItem").
			Str("item_id", itemID).
			Str("user_id", userID).
			Msg("item not found")
		return ErrItemNotFound
	}

	log.Info().
		Str("func", "itemRepository.DeleteItem").
		Str("item_id", itemID).
		Str("user_id", userID).
		Msg("successfully deleted encrypted item")

	return nil
}
