package api

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"

	"github.com/inkwell/inkwell-api/internal/api/shared"
	"github.com/inkwell/inkwell-api/internal/domain"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// withRouteParams attaches chi URL parameters to the request, standing in
// for the router.
func withRouteParams(req *http.Request, params map[string]string) *http.Request {
	rctx := chi.NewRouteContext()
	for k, v := range params {
		rctx.URLParams.Add(k, v)
	}
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
}

// withPrincipal attaches an authenticated user, standing in for the
// authentication gate.
func withPrincipal(req *http.Request, user *domain.User) *http.Request {
	return req.WithContext(shared.WithPrincipal(req.Context(), user))
}

// withBody attaches a validated body, standing in for the body gate.
func withBody[T any](req *http.Request, body *T) *http.Request {
	return req.WithContext(shared.WithBody(req.Context(), body))
}

func newUser(t *testing.T, fullName, email string) *domain.User {
	t.Helper()
	user, err := domain.NewUser(fullName, email, "Pa$w0rd!")
	require.NoError(t, err)
	return user
}

func requireAPIError(t *testing.T, err error, status int) *shared.APIError {
	t.Helper()
	require.Error(t, err)
	apiErr := &shared.APIError{}
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, status, apiErr.StatusCode)
	return apiErr
}

func decodeJSON(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	return out
}

func strptr(s string) *string { return &s }

func boolptr(b bool) *bool { return &b }
