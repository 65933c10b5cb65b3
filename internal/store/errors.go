package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrConfigNotFound is returned when no vault config row exists for the
	// requested user, i.e. the vault has never been initialized.
	ErrConfigNotFound = errors.New("vault config was not found")

	// ErrConfigAlreadyExists is returned when an attempt to create a vault
	// config fails because a row for the same user already exists. Vault
	// initialization is a once-per-user operation.
	ErrConfigAlreadyExists = errors.New("vault config already exists")

	// ErrItemNotFound is returned when a query or mutation targets a vault
	// item (identified by id and user_id) that does not exist.
	ErrItemNotFound = errors.New("vault item was not found")

	// ErrItemNotSaved is returned when an INSERT or UPDATE of a vault item
	// completes without error but the number of affected rows is zero,
	// indicating that no data was actually persisted.
	ErrItemNotSaved = errors.New("vault item was not saved")

	// ErrSessionNotFound is returned when no session row matches the given
	// user and session identifier. Callers treat this as "session revoked
	// or expired", never as a transient condition.
	ErrSessionNotFound = errors.New("vault session was not found")

	// ErrDuplicateRecord is returned when an insert violates a unique
	// constraint. Driver-specific duplicate errors are normalised to this
	// sentinel by the dialect's [ErrorClassifier].
	ErrDuplicateRecord = errors.New("record already exists")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails (e.g. invalid argument count or unsupported type).
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a query against the
	// database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrScanningRow is returned when scanning column values from a single
	// result row into a destination struct fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when scanning column values during
	// multi-row iteration fails, typically mid-result-set.
	ErrScanningRows = errors.New("failed to scan rows")
)
