package application

import "errors"

// Service-level error taxonomy. Handlers map these to status codes at
// the boundary; nothing below the handler ever writes HTTP responses.
var (
	// ErrInvalidCredentials covers unknown email, wrong password, and
	// wrong current password. One error for all three so responses
	// never reveal whether an email exists.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrEmailTaken indicates a registration against an existing email.
	ErrEmailTaken = errors.New("email already registered")
	// ErrNotFound indicates a referenced entity does not exist.
	ErrNotFound = errors.New("not found")
	// ErrForbidden indicates the authenticated user lacks the role or
	// ownership the operation requires.
	ErrForbidden = errors.New("forbidden")
	// ErrInvalidRating indicates a rating value outside 1..5.
	ErrInvalidRating = errors.New("rating must be between 1 and 5")
)
