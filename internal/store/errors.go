package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrInquiryNotSaved is returned when an INSERT of an inquiry record
	// completes without a driver error but yields no row, meaning nothing
	// was actually persisted.
	ErrInquiryNotSaved = errors.New("inquiry was not saved")

	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails before it ever reaches the database.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT against the
	// database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrScanningRows is returned when scanning column values during
	// multi-row iteration fails, typically mid-result-set.
	ErrScanningRows = errors.New("failed to scan inquiry rows")
)
