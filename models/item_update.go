package models

// VaultItemUpdate represents a partial update of a single vault item.
// Only non-nil fields are applied (partial update support); Data, when
// present, replaces the whole payload record rather than merging keys.
type VaultItemUpdate struct {
	// Name is the updated display name.
	// If nil, the field will not be updated.
	Name *string `json:"name,omitempty"`

	// Type is the updated semantic kind of the item.
	// If nil, the field will not be updated.
	Type *ItemType `json:"type,omitempty"`

	// Data is the updated secret payload. If nil, the payload is
	// kept as is; if non-nil, it replaces the previous record.
	Data map[string]string `json:"data,omitempty"`
}

// Empty reports whether the update carries no changes at all.
func (u VaultItemUpdate) Empty() bool {
	return u.Name == nil && u.Type == nil && u.Data == nil
}
