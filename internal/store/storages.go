package store

import "github.com/raulshma/ever-life-vault-sub006/internal/logger"

// Storages aggregates the three repositories every vault deployment
// needs. Handlers and services depend on this struct instead of wiring
// individual repositories.
type Storages struct {
	Items    VaultItemRepository
	Configs  VaultConfigRepository
	Sessions VaultSessionRepository
}

// NewStorages constructs SQL-backed repositories over the given
// connection.
func NewStorages(db *DB, log *logger.Logger) *Storages {
	return &Storages{
		Items:    NewItemRepository(db, log),
		Configs:  NewConfigRepository(db, log),
		Sessions: NewSessionRepository(db, log),
	}
}
