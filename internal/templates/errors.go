package templates

import (
	"errors"
	"net/http"
)

// Domain errors for template operations.
var (
	ErrNotFound    = errors.New("template not found")
	ErrUnavailable = errors.New("template file missing from storage")
)

// MapHTTPStatus converts domain errors to appropriate HTTP status codes.
func MapHTTPStatus(err error) int {
	if errors.Is(err, ErrNotFound) {
		return http.StatusNotFound
	}
	if errors.Is(err, ErrUnavailable) {
		return http.StatusConflict
	}
	return http.StatusInternalServerError
}
