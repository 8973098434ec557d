package errs

import "errors"

// Sentinel errors for the failure modes the handlers distinguish. Services
// wrap these with fmt.Errorf("%w: ...") so callers match with errors.Is.
var (
	// ErrValidation marks an empty or malformed required field. Handlers
	// surface it as inline form feedback, never as a server error.
	ErrValidation = errors.New("validation error")

	// ErrNotFound marks an unknown slug, id or username.
	ErrNotFound = errors.New("not found")

	// ErrAuthorization marks a mutation attempted without the right session.
	ErrAuthorization = errors.New("not authorized")

	// ErrConflict marks a uniqueness violation, e.g. a duplicate follow pair.
	ErrConflict = errors.New("conflict")
)
