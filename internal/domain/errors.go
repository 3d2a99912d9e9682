package domain

import "errors"

// Common validation errors returned by entity constructors.
var (
	ErrEmptyFullName = errors.New("full name cannot be empty")
	ErrEmptyEmail    = errors.New("email cannot be empty")
	ErrEmptyPassword = errors.New("password cannot be empty")
	ErrEmptyTitle    = errors.New("title cannot be empty")
	ErrEmptyBody     = errors.New("body cannot be empty")
	ErrNilAuthor     = errors.New("author cannot be nil")
)
