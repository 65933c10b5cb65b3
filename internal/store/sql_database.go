package store

import (
	"context"
	"fmt"

	"database/sql"

	sq "github.com/Masterminds/squirrel"

	"github.com/raulshma/ever-life-vault-sub006/internal/config"
	"github.com/raulshma/ever-life-vault-sub006/internal/logger"
	"github.com/raulshma/ever-life-vault-sub006/migrations"
)

// DB bundles a live database connection with the dialect-specific pieces
// the repositories need: a squirrel statement builder carrying the right
// placeholder format and an [ErrorClassifier] for driver error mapping.
type DB struct {
	*sql.DB
	builder    sq.StatementBuilderType
	classifier ErrorClassifier
	dialect    string
	logger     *logger.Logger
}

// NewConnect opens a database connection for the configured driver.
// Supported drivers: "pgx" (PostgreSQL) and "sqlite3".
func NewConnect(ctx context.Context, cfg config.Database, log *logger.Logger) (*DB, error) {
	switch cfg.Driver {
	case "pgx", "postgres":
		return NewConnectPostgres(ctx, cfg, log)
	case "sqlite3", "sqlite":
		return NewConnectSQLite(ctx, cfg, log)
	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.Driver)
	}
}

// Migrate applies all pending schema migrations for this connection's
// dialect.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB, db.dialect)
}

// Builder returns the statement builder preconfigured with the dialect's
// placeholder format.
func (db *DB) Builder() sq.StatementBuilderType {
	return db.builder
}
