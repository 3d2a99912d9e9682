package store

import (
	"errors"
	"fmt"
)

// Common store errors used across all store implementations.
var (
	// ErrNotFound is returned when a requested entity does not exist.
	// Entity-specific variants below wrap it so callers can match either.
	ErrNotFound = errors.New("entity not found")

	// ErrDuplicate is returned when an operation would violate a
	// uniqueness constraint.
	ErrDuplicate = errors.New("entity already exists")

	// ErrInvalidID is returned when an identifier is malformed and can
	// never match a stored entity (e.g. a non-UUID comment id).
	ErrInvalidID = errors.New("invalid identifier")

	// ErrUserNotFound indicates the requested user does not exist.
	ErrUserNotFound = fmt.Errorf("%w: user", ErrNotFound)

	// ErrArticleNotFound indicates the requested article does not exist.
	ErrArticleNotFound = fmt.Errorf("%w: article", ErrNotFound)

	// ErrCommentNotFound indicates the requested comment does not exist.
	ErrCommentNotFound = fmt.Errorf("%w: comment", ErrNotFound)

	// ErrEmailTaken indicates a user with the given email already exists.
	ErrEmailTaken = fmt.Errorf("%w: email", ErrDuplicate)

	// ErrSlugTaken indicates an article with the given slug already exists.
	ErrSlugTaken = fmt.Errorf("%w: slug", ErrDuplicate)
)

// IsNotFound checks whether err is any kind of "not found" error.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsDuplicate checks whether err is any kind of uniqueness violation.
func IsDuplicate(err error) bool {
	return errors.Is(err, ErrDuplicate)
}
