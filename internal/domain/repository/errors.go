package repository

import "errors"

var (
	// ErrNotFound is returned when a record does not exist.
	ErrNotFound = errors.New("record not found")
	// ErrDuplicateEmail is returned when the store's unique email constraint rejects an insert.
	ErrDuplicateEmail = errors.New("email already exists")
)
