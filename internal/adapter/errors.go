package adapter

import "errors"

// Transport-level sentinels mapped from HTTP status codes by
// mapHTTPError. Row-level outcomes (missing rows, duplicates) are
// translated further into the store package's sentinels by the
// individual repositories.
var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrForbidden           = errors.New("access forbidden")
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("conflict")
	ErrBadGateway          = errors.New("bad gateway")
	ErrInternalServerError = errors.New("internal server error")
)
