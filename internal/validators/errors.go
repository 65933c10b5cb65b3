package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptyItemID      = errors.New("item id is required")
	ErrEmptyName        = errors.New("name is required")
	ErrEmptyData        = errors.New("data is required")
	ErrInvalidType      = errors.New("invalid item type")
	ErrNoFieldsToUpdate = errors.New("at least one field must be provided for update")
)
