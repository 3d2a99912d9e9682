// Package middleware implements the composable request-handling pipeline:
// method validation, lazy database connection, authentication, body
// validation, and the terminal error translator.
//
// Gates compose over an error-returning Handler. Each gate either forwards
// to the next stage unchanged or short-circuits by returning an error;
// Translate is the single point where failures become HTTP responses. The
// composition order is fixed per route:
//
//	Translate(Allow(EnsureConnected(Authenticate?(ValidateBody?(handler)))))
package middleware

import "net/http"

// Handler is an HTTP handler that reports failure instead of writing an
// error response itself. A nil return means the handler wrote a success
// response; a non-nil return is translated exactly once by Translate.
type Handler func(w http.ResponseWriter, r *http.Request) error
