package usecase

import "errors"

// Domain errors surfaced by the use cases. Store failures are not in
// this list: they wrap the underlying error and propagate unchanged.
var (
	// ErrValidation marks malformed input (blank required field,
	// malformed email, negative numeric field).
	ErrValidation = errors.New("invalid input")

	// ErrDuplicateName is raised by the pre-write existence check;
	// nothing has been persisted when it fires.
	ErrDuplicateName = errors.New("name already in use")

	// ErrDuplicateEmail mirrors ErrDuplicateName for user emails.
	ErrDuplicateEmail = errors.New("email already registered")

	// ErrInvalidCredentials deliberately does not distinguish a wrong
	// email from a wrong password.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrNotFound is raised by mutations that require an existing row.
	// Read paths return nil instead.
	ErrNotFound = errors.New("not found")
)
