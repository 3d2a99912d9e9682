package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inkwell/inkwell-api/internal/api/shared"
	"github.com/inkwell/inkwell-api/internal/domain"
	"github.com/inkwell/inkwell-api/internal/mocks"
)

func TestAuthenticate(t *testing.T) {
	t.Parallel()

	users := mocks.NewMockUserStore()
	tokens := mocks.NewMockTokenService()

	alice, err := domain.NewUser("Alice A", "alice@example.com", "password1")
	require.NoError(t, err)
	require.NoError(t, users.Create(context.Background(), alice))
	validToken := tokens.TokenFor(alice)

	// ghost has a valid token but no stored user behind it.
	ghost, err := domain.NewUser("Ghost G", "ghost@example.com", "password1")
	require.NoError(t, err)
	ghostToken := tokens.TokenFor(ghost)

	tests := []struct {
		name        string
		authHeader  string
		wantStatus  int
		wantMessage string
	}{
		{
			name:        "missing header",
			authHeader:  "",
			wantStatus:  http.StatusUnauthorized,
			wantMessage: "Missing authorization header",
		},
		{
			name:        "header without token segment",
			authHeader:  "Bearer",
			wantStatus:  http.StatusUnauthorized,
			wantMessage: "Missing authorization token",
		},
		{
			name:        "empty token segment",
			authHeader:  "Bearer ",
			wantStatus:  http.StatusUnauthorized,
			wantMessage: "Missing authorization token",
		},
		{
			name:        "invalid token",
			authHeader:  "Bearer bogus-token",
			wantStatus:  http.StatusForbidden,
			wantMessage: "Invalid authorization token",
		},
		{
			name:        "token for unknown user",
			authHeader:  "Bearer " + ghostToken,
			wantStatus:  http.StatusForbidden,
			wantMessage: "Invalid user from token",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			gate := Authenticate(tokens, users, func(w http.ResponseWriter, r *http.Request) error {
				t.Fatal("next handler must not run")
				return nil
			})

			req := httptest.NewRequest(http.MethodGet, "/api/articles", nil)
			if tt.authHeader != "" {
				req.Header.Set("Authorization", tt.authHeader)
			}

			err := gate(httptest.NewRecorder(), req)
			require.Error(t, err)
			apiErr := &shared.APIError{}
			require.ErrorAs(t, err, &apiErr)
			assert.Equal(t, tt.wantStatus, apiErr.StatusCode)
			assert.Equal(t, tt.wantMessage, apiErr.Message)
		})
	}

	t.Run("valid token attaches principal", func(t *testing.T) {
		t.Parallel()

		var principal *domain.User
		gate := Authenticate(tokens, users, func(w http.ResponseWriter, r *http.Request) error {
			principal, _ = shared.PrincipalFrom(r)
			return nil
		})

		req := httptest.NewRequest(http.MethodGet, "/api/articles", nil)
		req.Header.Set("Authorization", "Bearer "+validToken)

		require.NoError(t, gate(httptest.NewRecorder(), req))
		require.NotNil(t, principal)
		assert.Equal(t, alice.ID, principal.ID)
	})

	t.Run("scheme prefix is not validated", func(t *testing.T) {
		t.Parallel()

		called := false
		gate := Authenticate(tokens, users, func(w http.ResponseWriter, r *http.Request) error {
			called = true
			return nil
		})

		req := httptest.NewRequest(http.MethodGet, "/api/articles", nil)
		req.Header.Set("Authorization", "Token "+validToken)

		require.NoError(t, gate(httptest.NewRecorder(), req))
		assert.True(t, called)
	})
}
