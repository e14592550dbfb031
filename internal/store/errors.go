package store

import "errors"

// Sentinel errors returned by the stores to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrAccountNotFound is returned by the cached-record store when no loaded
	// account has the requested identity.
	ErrAccountNotFound = errors.New("account not found")

	// ErrAccountConfigNotFound is returned when no persisted account
	// configuration has the requested short name.
	ErrAccountConfigNotFound = errors.New("account config was not found")

	// ErrEnvelopeFileNotFound is returned when an encrypted file does not exist.
	ErrEnvelopeFileNotFound = errors.New("envelope file was not found")

	// ErrInvalidFileName is returned when a file name would escape the
	// configuration directory.
	ErrInvalidFileName = errors.New("invalid envelope file name")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when executing a DML statement
	// (INSERT, DELETE) fails.
	ErrExecutingStatement = errors.New("failed to executing statement")

	// ErrScanningRow is returned when scanning a result row fails.
	ErrScanningRow = errors.New("failed to scan account config row")
)
