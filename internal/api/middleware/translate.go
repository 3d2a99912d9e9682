package middleware

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/inkwell/inkwell-api/internal/api/shared"
	"github.com/inkwell/inkwell-api/internal/store"
)

// Translate is the terminal wrapper of every route: it converts any error
// returned (or panic raised) anywhere in the gate chain into the uniform
// JSON error body at the matching status, and guarantees exactly one
// response per request. Unclassified errors become a 500 exposing only the
// error message; the full method, URL, and error are logged for operators.
func Translate(log *slog.Logger, next Handler) http.HandlerFunc {
	if log == nil {
		log = slog.Default()
	}

	return func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				log.Error("panic while handling request",
					"method", r.Method, "url", r.URL.String(), "panic", rec)
				shared.RespondWithJSON(w, http.StatusInternalServerError, &shared.APIError{
					StatusCode: http.StatusInternalServerError,
					Message:    fmt.Sprintf("%v", rec),
				})
			}
		}()

		err := next(w, r)
		if err == nil {
			return
		}

		apiErr := classify(err)
		if apiErr.StatusCode >= http.StatusInternalServerError {
			log.Error("request failed",
				"method", r.Method, "url", r.URL.String(), "error", err)
		} else {
			log.Debug("request rejected",
				"method", r.Method, "url", r.URL.String(),
				"status", apiErr.StatusCode, "error", err)
		}

		shared.RespondWithJSON(w, apiErr.StatusCode, apiErr)
	}
}

// classify maps an error from the chain to the APIError that will be
// serialized. Status-code decisions live here and nowhere else.
func classify(err error) *shared.APIError {
	var apiErr *shared.APIError
	if errors.As(err, &apiErr) {
		return apiErr
	}

	switch {
	case errors.Is(err, store.ErrEmailTaken):
		return shared.Conflict("Email is already taken")
	case errors.Is(err, store.ErrSlugTaken):
		return shared.Conflict("Slug is already taken")
	case store.IsDuplicate(err):
		return shared.Conflict(err.Error())
	case errors.Is(err, store.ErrInvalidID):
		return shared.BadRequest(err.Error())
	}

	return &shared.APIError{
		StatusCode: http.StatusInternalServerError,
		Message:    err.Error(),
	}
}
