package middleware

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inkwell/inkwell-api/internal/api/shared"
	"github.com/inkwell/inkwell-api/internal/platform/postgres"
)

func TestEnsureConnected(t *testing.T) {
	t.Parallel()

	t.Run("unreachable database fails closed with 503", func(t *testing.T) {
		t.Parallel()

		dialErr := errors.New("connection refused")
		manager := postgres.NewManagerWithOpener(
			func(ctx context.Context) (*sql.DB, error) {
				return nil, dialErr
			})

		gate := EnsureConnected(manager, func(w http.ResponseWriter, r *http.Request) error {
			t.Fatal("next handler must not run")
			return nil
		})

		err := gate(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/articles", nil))
		require.Error(t, err)

		apiErr := &shared.APIError{}
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, http.StatusServiceUnavailable, apiErr.StatusCode)
		assert.Equal(t, "Database connection error", apiErr.Message)
		assert.ErrorIs(t, err, dialErr, "the dial failure stays attached as the cause")

		assert.Equal(t, postgres.StateDisconnected, manager.State(),
			"a failed attempt resets to disconnected so a later request retries")
	})

	t.Run("established connection passes through", func(t *testing.T) {
		t.Parallel()

		manager := postgres.NewManagerWithOpener(
			func(ctx context.Context) (*sql.DB, error) {
				return &sql.DB{}, nil
			})

		called := false
		gate := EnsureConnected(manager, func(w http.ResponseWriter, r *http.Request) error {
			called = true
			return nil
		})

		req := httptest.NewRequest(http.MethodGet, "/api/articles", nil)
		require.NoError(t, gate(httptest.NewRecorder(), req))
		assert.True(t, called)
		assert.Equal(t, postgres.StateConnected, manager.State())
	})
}
