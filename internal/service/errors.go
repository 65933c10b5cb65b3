package service

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrNotSupported            = errors.New("operation is not supported")
	ErrVaultLocked             = errors.New("vault is locked")
	ErrVaultAlreadyInitialized = errors.New("vault is already initialized")
	ErrVaultNotInitialized     = errors.New("vault is not initialized")
	ErrUnlockInProgress        = errors.New("unlock is already in progress")
	ErrSessionExpired          = errors.New("vault session expired")
	ErrItemNotLoaded           = errors.New("item is not loaded")
	ErrInvalidItem             = errors.New("invalid item")
)

// WeakPasswordError reports every policy violation at once so the caller can
// show a complete checklist instead of one complaint per attempt.
type WeakPasswordError struct {
	Reasons []string
}

func (e *WeakPasswordError) Error() string {
	return "weak master password: " + strings.Join(e.Reasons, "; ")
}

// DecryptError marks a single vault item that failed to decrypt. The item id
// and clear-text name survive so the failure can be reported without exposing
// anything from the ciphertext.
type DecryptError struct {
	ItemID string
	Name   string
	Err    error
}

func (e *DecryptError) Error() string {
	return fmt.Sprintf("item %s could not be decrypted: %v", e.ItemID, e.Err)
}

func (e *DecryptError) Unwrap() error {
	return e.Err
}
