package http

import (
	"errors"
	"net/http"

	"github.com/raulshma/ever-life-vault-sub006/internal/crypto"
	"github.com/raulshma/ever-life-vault-sub006/internal/service"
	"github.com/raulshma/ever-life-vault-sub006/internal/store"
	"github.com/raulshma/ever-life-vault-sub006/internal/validators"
)

var errorStatusMap = map[error]int{
	service.ErrVaultNotInitialized:     http.StatusNotFound,
	service.ErrVaultAlreadyInitialized: http.StatusConflict,
	service.ErrVaultLocked:             http.StatusForbidden,
	service.ErrUnlockInProgress:        http.StatusConflict,
	service.ErrSessionExpired:          http.StatusUnauthorized,
	service.ErrItemNotLoaded:           http.StatusNotFound,
	service.ErrInvalidItem:             http.StatusBadRequest,
	service.ErrNotSupported:            http.StatusNotImplemented,

	crypto.ErrAuthenticationFailed: http.StatusUnauthorized,

	validators.ErrEmptyItemID:      http.StatusBadRequest,
	validators.ErrEmptyName:        http.StatusBadRequest,
	validators.ErrEmptyData:        http.StatusBadRequest,
	validators.ErrInvalidType:      http.StatusBadRequest,
	validators.ErrNoFieldsToUpdate: http.StatusBadRequest,

	store.ErrItemNotFound:        http.StatusNotFound,
	store.ErrConfigNotFound:      http.StatusNotFound,
	store.ErrConfigAlreadyExists: http.StatusConflict,
	store.ErrDuplicateRecord:     http.StatusConflict,
	store.ErrSessionNotFound:     http.StatusUnauthorized,

	store.ErrItemNotSaved:     http.StatusInternalServerError,
	store.ErrBuildingSQLQuery: http.StatusInternalServerError,
	store.ErrExecutingQuery:   http.StatusInternalServerError,
	store.ErrScanningRow:      http.StatusInternalServerError,
	store.ErrScanningRows:     http.StatusInternalServerError,
}

func statusFromError(err error) int {
	var weak *service.WeakPasswordError
	if errors.As(err, &weak) {
		return http.StatusBadRequest
	}

	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}
