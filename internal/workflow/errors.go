package workflow

import (
	"errors"
	"net/http"
)

// Domain errors for workflow operations.
var (
	ErrNotFound     = errors.New("workflow document not found")
	ErrInvalidState = errors.New("document is not in the required state")
	ErrUnauthorized = errors.New("caller is not the active signer")
	ErrDependency   = errors.New("workflow collaborator failed")
	ErrValidation   = errors.New("invalid workflow input")
	ErrNoSigner     = errors.New("no active signer for required role")
)

// MapHTTPStatus converts domain errors to appropriate HTTP status codes.
func MapHTTPStatus(err error) int {
	if errors.Is(err, ErrNotFound) {
		return http.StatusNotFound
	}
	if errors.Is(err, ErrInvalidState) || errors.Is(err, ErrNoSigner) {
		return http.StatusConflict
	}
	if errors.Is(err, ErrUnauthorized) {
		return http.StatusForbidden
	}
	if errors.Is(err, ErrDependency) {
		return http.StatusBadGateway
	}
	if errors.Is(err, ErrValidation) {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}
