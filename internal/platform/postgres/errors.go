package postgres

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/inkwell/inkwell-api/internal/store"
	"github.com/jackc/pgx/v5/pgconn"
)

// PostgreSQL error codes.
const (
	// uniqueViolationCode is the error code for unique constraint violations.
	uniqueViolationCode = "23505"

	// invalidTextRepresentationCode is the error code raised when a value
	// cannot be cast to its column type, e.g. a malformed UUID.
	invalidTextRepresentationCode = "22P02"
)

// mapError maps a database error to the matching store sentinel, wrapping
// the original error to preserve context. All store methods route their
// errors through it so callers can rely on errors.Is against the store
// package alone.
func mapError(err error, notFound error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("%w: %v", notFound, err)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case uniqueViolationCode:
			return fmt.Errorf("%w: %v", duplicateSentinel(pgErr.ConstraintName), err)
		case invalidTextRepresentationCode:
			return fmt.Errorf("%w: %v", store.ErrInvalidID, err)
		}
	}

	return err
}

// duplicateSentinel picks the entity-specific duplicate error for a
// violated unique constraint.
func duplicateSentinel(constraint string) error {
	switch constraint {
	case "users_email_key":
		return store.ErrEmailTaken
	case "articles_slug_key":
		return store.ErrSlugTaken
	}
	return store.ErrDuplicate
}

// checkRowsAffected returns notFound when an UPDATE or DELETE touched no
// rows, which indicates the target record does not exist.
func checkRowsAffected(result sql.Result, notFound error) error {
	n, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if n == 0 {
		return notFound
	}
	return nil
}
