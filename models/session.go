// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Raul Shma

package models

import "time"

// VaultSession is the durable half of an unlock session. It carries
// the random server secret needed to unwrap the session key blob that
// the client keeps locally. Neither half alone can recover the key:
// the blob without the secret is undecryptable ciphertext, and the
// secret without the blob wraps nothing.
type VaultSession struct {
	// UserID is the owner of the session.
	UserID string `json:"user_id"`

	// SessionID is the random identifier binding this row to the
	// local session state of exactly one client instance.
	SessionID string `json:"session_id"`

	// ServerSecret is the base64-encoded random 256-bit secret used
	// to derive the wrapping key for this session. It is generated
	// fresh on every unlock and deleted together with the session.
	ServerSecret string `json:"server_secret"`

	// ExpiresAt is the absolute expiry deadline of the session.
	// After this instant the session is invalid regardless of
	// client-side state.
	ExpiresAt time.Time `json:"expires_at"`

	// CreatedAt is the timestamp when the session was established.
	CreatedAt time.Time `json:"created_at"`
}

// Expired reports whether the session deadline has passed at the
// given instant.
func (s VaultSession) Expired(now time.Time) bool {
	return !now.Before(s.ExpiresAt)
}

// TableName returns the name of the database table
// associated with the VaultSession model.
func (s VaultSession) TableName() string {
	return "vault_sessions"
}

// LocalSessionState is the non-durable half of an unlock session,
// kept in the client-local tab store as a JSON blob. It survives a
// reload of the owning client instance but not its termination.
type LocalSessionState struct {
	// SessionID links this state to its durable VaultSession row.
	SessionID string `json:"session_id"`

	// UnlockedAt is the instant the vault was unlocked.
	UnlockedAt time.Time `json:"unlocked_at"`

	// ExpiresAt mirrors the durable expiry deadline so a restore
	// attempt can fail fast without a round trip.
	ExpiresAt time.Time `json:"expires_at"`
}
