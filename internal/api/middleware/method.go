package middleware

import (
	"net/http"
	"strings"

	"github.com/inkwell/inkwell-api/internal/api/shared"
)

// Allow rejects requests whose method is not in methods with a 405 whose
// message enumerates the allowed methods in declaration order. Matching is
// a case-sensitive exact comparison. The gate is stateless: a pure
// function of the method and the allowed set.
func Allow(methods []string, next Handler) Handler {
	allowed := strings.Join(methods, ", ")

	return func(w http.ResponseWriter, r *http.Request) error {
		for _, m := range methods {
			if r.Method == m {
				return next(w, r)
			}
		}
		return shared.MethodNotAllowed("Allowed method(s): " + allowed)
	}
}
