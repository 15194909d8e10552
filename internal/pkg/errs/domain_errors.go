package errs

import "errors"

// Category markers. Concrete errors are attached to exactly one of these
// and the HTTP boundary maps them to a status code.
var (
	ErrInvalidArgument  = errors.New("invalid argument")
	ErrInvalidOperation = errors.New("invalid operation")
	ErrNotFound         = errors.New("resource not found")
	ErrConflict         = errors.New("resource conflict")
	ErrForbidden        = errors.New("operation forbidden")
)
