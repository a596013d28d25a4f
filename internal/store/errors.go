package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrNotInitialized is returned when any repository operation is
	// attempted before Init has completed successfully.
	ErrNotInitialized = errors.New("vault store is not initialized")

	// ErrDuplicateID is returned when Add targets an id that already
	// exists in the collection. Add never overwrites.
	ErrDuplicateID = errors.New("vault item id already exists")

	// ErrItemNotFound is returned when Get targets an id that is absent
	// from the collection. Absence is a normal outcome, not a failure of
	// the backend.
	ErrItemNotFound = errors.New("vault item was not found")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain
// logic can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails (e.g. invalid argument count or unsupported type).
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT or similar
	// read-only query against the database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when executing a DML statement
	// (INSERT, UPDATE, DELETE) fails.
	ErrExecutingStatement = errors.New("failed to execute statement")

	// ErrScanningRow is returned when scanning column values from a
	// result row into a destination struct fails.
	ErrScanningRow = errors.New("failed to scan vault item row")

	// ErrDecodingRecord is returned when a stored record cannot be
	// decoded back into a vault item (e.g. corrupted tags column).
	ErrDecodingRecord = errors.New("failed to decode vault item record")
)
