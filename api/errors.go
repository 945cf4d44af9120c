package api

import (
	"errors"
	"net/http"

	"github.com/vehrenweb/rentals/internal/domain"
)

// errorStatus maps the domain error taxonomy onto HTTP codes. Anything not in
// the taxonomy is treated as a transient store failure.
func errorStatus(err error) int {
	var validation *domain.ValidationError
	var notFound *domain.NotFoundError
	var conflict *domain.ConflictError

	switch {
	case errors.As(err, &validation):
		return http.StatusBadRequest
	case errors.As(err, &notFound):
		return http.StatusNotFound
	case errors.As(err, &conflict):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
