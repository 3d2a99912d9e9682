package postgres

import (
	"database/sql"
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"

	"github.com/inkwell/inkwell-api/internal/store"
)

func TestMapError(t *testing.T) {
	t.Parallel()

	t.Run("nil passes through", func(t *testing.T) {
		t.Parallel()
		assert.NoError(t, mapError(nil, store.ErrArticleNotFound))
	})

	t.Run("no rows maps to the given not-found sentinel", func(t *testing.T) {
		t.Parallel()

		err := mapError(sql.ErrNoRows, store.ErrArticleNotFound)
		assert.ErrorIs(t, err, store.ErrArticleNotFound)
		assert.ErrorIs(t, err, store.ErrNotFound)
	})

	t.Run("unique violation picks the constraint-specific sentinel", func(t *testing.T) {
		t.Parallel()

		tests := []struct {
			constraint string
			want       error
		}{
			{"users_email_key", store.ErrEmailTaken},
			{"articles_slug_key", store.ErrSlugTaken},
			{"something_else_key", store.ErrDuplicate},
		}

		for _, tt := range tests {
			pgErr := &pgconn.PgError{Code: "23505", ConstraintName: tt.constraint}
			err := mapError(fmt.Errorf("exec: %w", pgErr), store.ErrArticleNotFound)
			assert.ErrorIs(t, err, tt.want, "constraint %s", tt.constraint)
			assert.True(t, store.IsDuplicate(err))
		}
	})

	t.Run("invalid text representation maps to invalid id", func(t *testing.T) {
		t.Parallel()

		pgErr := &pgconn.PgError{Code: "22P02"}
		err := mapError(pgErr, store.ErrCommentNotFound)
		assert.ErrorIs(t, err, store.ErrInvalidID)
	})

	t.Run("other errors pass through unchanged", func(t *testing.T) {
		t.Parallel()

		underlying := errors.New("connection reset")
		assert.Same(t, underlying, mapError(underlying, store.ErrUserNotFound))
	})
}
