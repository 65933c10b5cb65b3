// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Raul Shma

package config

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// Returns nil if the configuration is valid, or a sentinel error naming
// the offending configuration group otherwise.
func (cfg *StructuredConfig) validate() error {
	switch cfg.Storage.DB.Driver {
	case "pgx", "postgres", "sqlite3", "sqlite":
		if cfg.Storage.DB.DSN == "" {
			return ErrInvalidStorageConfigs
		}
	case "memory":
		// No DSN needed.
	default:
		return ErrInvalidStorageConfigs
	}

	if cfg.App.TokenSignKey == "" {
		return ErrInvalidAppConfigs
	}
	if cfg.App.SessionTTL <= 0 || cfg.App.SessionCheckInterval <= 0 {
		return ErrInvalidAppConfigs
	}
	if cfg.App.DecryptWorkers < 1 {
		return ErrInvalidAppConfigs
	}

	if cfg.Server.HTTPAddress == "" {
		return ErrInvalidServerConfigs
	}

	if cfg.Workers.SessionSweepInterval <= 0 {
		return ErrInvalidWorkerConfigs
	}

	return nil
}
