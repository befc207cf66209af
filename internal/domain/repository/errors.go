package repository

import "errors"

var (
	// ErrNotFound indicates the referenced row does not exist.
	ErrNotFound = errors.New("not found")
	// ErrDuplicate indicates a unique constraint violation, e.g. an
	// already registered email.
	ErrDuplicate = errors.New("duplicate key")
)
