package middleware

import (
	"net/http"
	"strings"

	"github.com/inkwell/inkwell-api/internal/api/shared"
	"github.com/inkwell/inkwell-api/internal/platform/logger"
	"github.com/inkwell/inkwell-api/internal/service/auth"
	"github.com/inkwell/inkwell-api/internal/store"
)

// Authenticate resolves the bearer credential in the Authorization header
// to a principal and attaches it to the request context.
//
// The checks run in a fixed order and the distinction matters: an absent
// credential is 401 Unauthorized, a presented-but-invalid credential
// (bad signature, malformed, expired, unknown user) is 403 Forbidden.
// The scheme prefix before the token is deliberately not validated; only
// the second segment of the header is checked.
func Authenticate(tokens auth.TokenService, users store.UserStore, next Handler) Handler {
	return func(w http.ResponseWriter, r *http.Request) error {
		header := r.Header.Get("Authorization")
		if header == "" {
			return shared.Unauthorized("Missing authorization header")
		}

		parts := strings.SplitN(header, " ", 2)
		if len(parts) < 2 || parts[1] == "" {
			return shared.Unauthorized("Missing authorization token")
		}

		claims, err := tokens.Verify(r.Context(), parts[1])
		if err != nil {
			logger.FromContext(r.Context()).Debug("token verification failed", "error", err)
			return shared.Forbidden("Invalid authorization token").WithCause(err)
		}

		user, err := users.GetByID(r.Context(), claims.UserID)
		if err != nil {
			if store.IsNotFound(err) {
				return shared.Forbidden("Invalid user from token").WithCause(err)
			}
			return err
		}

		return next(w, r.WithContext(shared.WithPrincipal(r.Context(), user)))
	}
}
