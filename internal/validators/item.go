package validators

import (
	"context"

	"github.com/raulshma/ever-life-vault-sub006/models"
)

// Field name constants used to specify which fields should be validated.
// These constants are passed to Validate to restrict validation to a
// subset of fields (field-level scoping).
const (
	// FieldID targets the unique identifier of a vault item.
	FieldID = "id"

	// FieldType targets the semantic item type field
	// (credential, note, api-credential, document-reference).
	FieldType = "type"

	// FieldName targets the clear-text display name of a vault item.
	FieldName = "name"

	// FieldData targets the secret payload record of a vault item.
	FieldData = "data"
)

// ItemValidator implements the Validator interface for the vault item
// domain models: VaultItem and VaultItemUpdate.
//
// It supports both value and pointer receivers for every model type
// and allows optional field-level scoping via variadic field name arguments.
type ItemValidator struct {
}

// NewItemValidator constructs a new ItemValidator
// and returns it as the Validator interface.
func NewItemValidator() Validator {
	return &ItemValidator{}
}

// Validate dispatches validation to the appropriate type-specific method
// based on the dynamic type of obj. Both value and pointer forms of each
// supported model are accepted.
//
// Supported types:
//   - models.VaultItem / *models.VaultItem
//   - models.VaultItemUpdate / *models.VaultItemUpdate
//
// Returns ErrUnsupportedType if obj does not match any known model.
// Optional fields restrict validation to the named subset; when omitted,
// a sensible default set of fields is validated.
func (v *ItemValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.VaultItem:
		return v.validateItem(ctx, value, fields...)
	case *models.VaultItem:
		return v.validateItem(ctx, *value, fields...)

	case models.VaultItemUpdate:
		return v.validateItemUpdate(ctx, value, fields...)
	case *models.VaultItemUpdate:
		return v.validateItemUpdate(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

// validateItem validates a single VaultItem model.
//
// Default validated fields (when none specified): Type, Name, Data.
// FieldID is opt-in because new items have no identifier yet.
//
// Returns the first encountered validation error or nil.
func (v *ItemValidator) validateItem(ctx context.Context, item models.VaultItem, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldType, FieldName, FieldData}
	}

	for _, f := range fields {
		switch f {
		case FieldID:
			if item.ID == "" {
				return ErrEmptyItemID
			}
		case FieldType:
			if !item.Type.Valid() {
				return ErrInvalidType
			}
		case FieldName:
			if item.Name == "" {
				return ErrEmptyName
			}
		case FieldData:
			if len(item.Data) == 0 {
				return ErrEmptyData
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// validateItemUpdate validates a single VaultItemUpdate descriptor.
//
// Default validated fields: Type, Name, Data. Field-level checks only
// trigger when the corresponding pointer is non-nil (partial update
// semantics: nil means "do not touch").
//
// After field-level checks, an additional structural rule is enforced:
// at least one field must be present. Returns ErrNoFieldsToUpdate
// otherwise.
func (v *ItemValidator) validateItemUpdate(ctx context.Context, update models.VaultItemUpdate, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldType, FieldName, FieldData}
	}

	for _, f := range fields {
		switch f {
		case FieldType:
			if update.Type != nil && !update.Type.Valid() {
				return ErrInvalidType
			}
		case FieldName:
			if update.Name != nil && *update.Name == "" {
				return ErrEmptyName
			}
		case FieldData:
			if update.Data != nil && len(update.Data) == 0 {
				return ErrEmptyData
			}
		default:
			return ErrUnknownField
		}
	}

	if update.Empty() {
		return ErrNoFieldsToUpdate
	}

	return nil
}
