package middleware

import (
	"net/http"

	"github.com/inkwell/inkwell-api/internal/api/shared"
	"github.com/inkwell/inkwell-api/internal/platform/postgres"
)

// EnsureConnected guarantees the shared database handle is established
// before the wrapped handler runs, and fails closed with a 503 when it
// cannot be. Establishment is single-flight inside the manager: concurrent
// requests share one connection attempt. A request that passes this gate
// assumes the connection stays live for its duration.
func EnsureConnected(manager *postgres.Manager, next Handler) Handler {
	return func(w http.ResponseWriter, r *http.Request) error {
		if _, err := manager.Ensure(r.Context()); err != nil {
			return shared.ServiceUnavailable("Database connection error").WithCause(err)
		}
		return next(w, r)
	}
}
