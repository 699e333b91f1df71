package store

import "errors"

// Sentinel errors returned by repository methods. Callers should use
// [errors.Is] to match against these values.
var (
	// ErrSessionNotFound is returned when no session row has been saved to
	// the local store yet.
	ErrSessionNotFound = errors.New("local session not found")

	// ErrHandoffNotFound is returned when the draft handoff slot is empty.
	ErrHandoffNotFound = errors.New("draft handoff not found")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain
// logic can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a query against the
	// database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrScanningRow is returned when scanning column values from a result
	// row into a destination fails.
	ErrScanningRow = errors.New("failed to scan row")
)
