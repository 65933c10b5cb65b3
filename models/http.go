package models

// InitializeVaultRequest carries the master password chosen at vault
// creation. The password itself never leaves the process that handles
// the request; only derived material is stored.
type InitializeVaultRequest struct {
	// Password is the plaintext master password. Required.
	Password string `json:"password"`
}

// UnlockVaultRequest carries the credentials for an unlock attempt.
type UnlockVaultRequest struct {
	// Password is the plaintext master password. Required.
	Password string `json:"password"`

	// TimeoutMinutes optionally overrides the configured session
	// lifetime. Zero or negative values select the default.
	TimeoutMinutes int `json:"timeout_minutes,omitempty"`
}

// ChangePasswordRequest carries both passwords of a master password
// change attempt.
type ChangePasswordRequest struct {
	// CurrentPassword is the master password in use. Required.
	CurrentPassword string `json:"current_password"`

	// NewPassword is the replacement master password. Required.
	NewPassword string `json:"new_password"`
}

// VaultStatusResponse describes the current lifecycle state of a
// user's vault as seen by one client instance.
type VaultStatusResponse struct {
	// HasVault reports whether the vault has been initialized.
	HasVault bool `json:"has_vault"`

	// IsUnlocked reports whether a live session key is held.
	IsUnlocked bool `json:"is_unlocked"`

	// IsUnlocking reports whether an unlock attempt is in flight
	// (key derivation running, no key held yet).
	IsUnlocking bool `json:"is_unlocking,omitempty"`

	// ExpiresAt is the RFC 3339 session deadline. Empty when locked.
	ExpiresAt string `json:"expires_at,omitempty"`
}

// RestoreSessionResponse reports the outcome of a session restore
// attempt.
type RestoreSessionResponse struct {
	// Restored is true when a previously persisted session was
	// revived and the vault is unlocked again.
	Restored bool `json:"restored"`
}

// CreateItemRequest carries a new plaintext item to be encrypted and
// persisted.
type CreateItemRequest struct {
	// Type is the semantic kind of the item. Required.
	Type ItemType `json:"type"`

	// Name is the display name. Required.
	Name string `json:"name"`

	// Data is the secret payload record.
	Data map[string]string `json:"data"`
}

// ItemListResponse is the envelope for item collection responses.
type ItemListResponse struct {
	// Items holds the decrypted entries visible to the caller.
	Items []VaultItem `json:"items"`

	// Failures lists items that could not be decrypted during the
	// last fetch. The affected entries are excluded from Items.
	Failures []ItemFailure `json:"failures,omitempty"`
}

// ItemFailure identifies a single vault entry that failed to decrypt.
// The clear-text name is included so a client can tell the user which
// item is affected without ever seeing its payload.
type ItemFailure struct {
	// ItemID is the identifier of the failed record.
	ItemID string `json:"item_id"`

	// Name is the clear-text display name of the failed record.
	Name string `json:"name"`

	// Reason is a short human-readable failure description.
	Reason string `json:"reason"`
}
