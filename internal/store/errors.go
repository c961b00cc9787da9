package store

import "errors"

// ErrLocalSessionNotFound is returned by [SessionStore.LoadToken] when no
// token has been saved.
var ErrLocalSessionNotFound = errors.New("local session not found")

// Low-level database operation errors. These are returned (or wrapped) by
// store methods when a SQL-level operation fails.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when executing an INSERT or DELETE
	// fails.
	ErrExecutingStatement = errors.New("failed to executing statement")

	// ErrDatabaseBusy is wrapped together with ErrExecutingStatement when another
	// connection holds the database lock. The write is not repeated.
	ErrDatabaseBusy = errors.New("session database is busy")

	// ErrScanningRow is returned when scanning a session row fails.
	ErrScanningRow = errors.New("failed to scan session row")
)
