package store

import "errors"

// Sentinel errors returned by [KeyValueStore] implementations. Callers should
// use [errors.Is] to match against these values.
var (
	// ErrKeyNotFound is returned by Get when the key has no value.
	ErrKeyNotFound = errors.New("key not found")

	// ErrUnknownDriver is returned by [NewKeyValueStore] for a driver name
	// it does not recognise.
	ErrUnknownDriver = errors.New("unknown storage driver")
)

// Low-level database operation errors, wrapped by the SQLite backend.
var (
	// ErrBuildingSQLQuery is returned when constructing a SQL query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when executing an INSERT or DELETE
	// fails.
	ErrExecutingStatement = errors.New("failed to executing statement")
)
