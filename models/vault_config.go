package models

import "time"

// VaultConfig holds the per-user vault bootstrap record. Its presence
// marks the vault as initialized; its salt feeds every master-password
// key derivation for that user. The record contains no secret material.
type VaultConfig struct {
	// UserID is the owner of the vault. One config row exists per user.
	UserID string `json:"user_id"`

	// Salt is the base64-encoded random KDF salt generated once at
	// vault initialization. It never changes for the lifetime of the
	// vault, otherwise previously encrypted items would become
	// unreadable.
	Salt string `json:"salt"`

	// CreatedAt is the timestamp when the vault was initialized.
	CreatedAt time.Time `json:"created_at"`

	// UpdatedAt is the timestamp of the last modification.
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName returns the name of the database table
// associated with the VaultConfig model.
func (c VaultConfig) TableName() string {
	return "vault_config"
}
