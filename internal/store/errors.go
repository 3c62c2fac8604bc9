package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrEmailAlreadyExists is returned when a new user would reuse the email
	// of an existing account.
	ErrEmailAlreadyExists = errors.New("email already exists")

	// ErrNoUserWasFound is returned when a lookup matches no user record.
	ErrNoUserWasFound = errors.New("no user was found")

	// ErrPostNotFound is returned when a lookup or delete matches no post.
	ErrPostNotFound = errors.New("post was not found")

	// ErrUnsupportedDSN is returned when the DSN scheme selects no known
	// database driver.
	ErrUnsupportedDSN = errors.New("unsupported database DSN")
)

// Image storage errors.
var (
	// ErrNotAnImage is returned when uploaded content does not sniff as an
	// image/* MIME type.
	ErrNotAnImage = errors.New("uploaded file is not an image")

	// ErrImageNotFound is returned when an image to remove does not exist or
	// its path points outside the images directory.
	ErrImageNotFound = errors.New("image was not found")
)

// Low-level database operation errors. These wrap the driver error when a SQL
// operation fails before any domain logic can be applied.
var (
	ErrBuildingSQLQuery   = errors.New("error building sql query")
	ErrExecutingQuery     = errors.New("error executing sql query")
	ErrExecutingStatement = errors.New("failed to execute statement")
	ErrScanningRow        = errors.New("failed to scan row")
	ErrScanningRows       = errors.New("failed to scan rows")
)
