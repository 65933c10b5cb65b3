package models

// ItemType defines the semantic kind of a vault item.
// The value determines how the decrypted payload must be interpreted
// and which data fields a client should render.
type ItemType string

const (
	// ItemTypeCredential represents authentication credentials
	// such as username, password, and target URL.
	ItemTypeCredential ItemType = "credential"

	// ItemTypeNote represents free-form secret text.
	ItemTypeNote ItemType = "note"

	// ItemTypeAPICredential represents API keys, tokens, and
	// similar machine credentials.
	ItemTypeAPICredential ItemType = "api-credential"

	// ItemTypeDocument represents a reference to an external
	// document (location, access data), not the document itself.
	ItemTypeDocument ItemType = "document-reference"
)

// ItemTypes returns the closed set of supported item types.
func ItemTypes() []ItemType {
	return []ItemType{
		ItemTypeCredential,
		ItemTypeNote,
		ItemTypeAPICredential,
		ItemTypeDocument,
	}
}

// Valid reports whether t is a member of the supported type set.
func (t ItemType) Valid() bool {
	switch t {
	case ItemTypeCredential, ItemTypeNote, ItemTypeAPICredential, ItemTypeDocument:
		return true
	default:
		return false
	}
}

// String returns the wire representation of the item type.
func (t ItemType) String() string {
	return string(t)
}
