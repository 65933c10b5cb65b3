package models

import "time"

// VaultItem represents a single decrypted vault entry as it exists
// in memory while the vault is unlocked. It never reaches persistent
// storage in this form; the storage layer only ever sees its
// encrypted counterpart, [EncryptedVaultItem].
type VaultItem struct {
	// ID is the unique identifier of the item.
	ID string `json:"id"`

	// Type defines the semantic kind of the item
	// (credential, note, api-credential, document-reference).
	Type ItemType `json:"type"`

	// Name is the human-readable display name of the item.
	// Name is the only descriptive field that is also kept in
	// clear text next to the ciphertext, so lists and search
	// results can be rendered without decrypting every item.
	Name string `json:"name"`

	// Data holds the secret payload as an open key-value record
	// (e.g. username/password pairs, token values, free-form fields).
	Data map[string]string `json:"data"`

	// CreatedAt is the timestamp when the item was created.
	CreatedAt time.Time `json:"created_at"`

	// UpdatedAt is the timestamp of the last modification.
	UpdatedAt time.Time `json:"updated_at"`
}

// Clone returns a deep copy of the item. The in-memory collection
// hands out clones so callers cannot mutate held state through the
// shared Data map.
func (i VaultItem) Clone() VaultItem {
	out := i
	if i.Data != nil {
		out.Data = make(map[string]string, len(i.Data))
		for k, v := range i.Data {
			out.Data[k] = v
		}
	}
	return out
}
