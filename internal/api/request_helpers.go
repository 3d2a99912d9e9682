package api

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/inkwell/inkwell-api/internal/api/shared"
)

const (
	defaultPage = 1
	defaultSize = 10
)

// parsePagination reads the page/size query parameters, applying defaults
// and collecting every violation rather than stopping at the first.
func parsePagination(r *http.Request) (page, size int, err error) {
	page, size = defaultPage, defaultSize
	var errs []string

	if raw := r.URL.Query().Get("page"); raw != "" {
		n, convErr := strconv.Atoi(raw)
		if convErr != nil || n < 1 {
			errs = append(errs, "page must be a positive integer")
		} else {
			page = n
		}
	}

	if raw := r.URL.Query().Get("size"); raw != "" {
		n, convErr := strconv.Atoi(raw)
		if convErr != nil || n < 1 {
			errs = append(errs, "size must be a positive integer")
		} else {
			size = n
		}
	}

	if len(errs) > 0 {
		return 0, 0, shared.BadRequestWithErrors(http.StatusText(http.StatusBadRequest), errs)
	}
	return page, size, nil
}

// pathUUID extracts and parses a UUID path parameter. A malformed
// identifier can never match a stored entity and is a 400, not a 404.
func pathUUID(r *http.Request, param, label string) (uuid.UUID, error) {
	raw := chi.URLParam(r, param)
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, shared.BadRequest(fmt.Sprintf("Invalid %s: %s", label, raw)).WithCause(err)
	}
	return id, nil
}
