// Package shared holds the cross-cutting pieces of the HTTP layer: the
// API error type, request-context accessors, and response writing.
package shared

import (
	"context"
	"net/http"

	"github.com/inkwell/inkwell-api/internal/domain"
)

// contextKey is a private type so our context values cannot collide with
// other packages'.
type contextKey string

const (
	principalContextKey contextKey = "principal"
	bodyContextKey      contextKey = "body"
)

// WithPrincipal returns a context carrying the authenticated user.
// Set once by the authentication gate; read-only afterwards.
func WithPrincipal(ctx context.Context, user *domain.User) context.Context {
	return context.WithValue(ctx, principalContextKey, user)
}

// PrincipalFrom extracts the authenticated user from the request context.
func PrincipalFrom(r *http.Request) (*domain.User, bool) {
	user, ok := r.Context().Value(principalContextKey).(*domain.User)
	return user, ok
}

// WithBody returns a context carrying the validated request body.
// Set once by the body validation gate.
func WithBody(ctx context.Context, body any) context.Context {
	return context.WithValue(ctx, bodyContextKey, body)
}

// BodyFrom extracts the validated body of type T from the request context.
func BodyFrom[T any](r *http.Request) (*T, bool) {
	body, ok := r.Context().Value(bodyContextKey).(*T)
	return body, ok
}
