package documents

import (
	"errors"
	"net/http"
)

// Domain errors for document operations.
var (
	ErrNotFound         = errors.New("document not found")
	ErrDuplicate        = errors.New("document storage key already exists")
	ErrFileTooLarge     = errors.New("file exceeds maximum upload size")
	ErrInvalidFile      = errors.New("invalid file")
	ErrInvalidType      = errors.New("unknown document type")
	ErrNotDraft         = errors.New("document is not a draft")
	ErrNoArtifact       = errors.New("document has no signed artifact")
	ErrPermissionDenied = errors.New("not authorized for this document")
)

// MapHTTPStatus converts domain errors to appropriate HTTP status codes.
func MapHTTPStatus(err error) int {
	if errors.Is(err, ErrNotFound) {
		return http.StatusNotFound
	}
	if errors.Is(err, ErrDuplicate) {
		return http.StatusConflict
	}
	if errors.Is(err, ErrFileTooLarge) {
		return http.StatusRequestEntityTooLarge
	}
	if errors.Is(err, ErrInvalidFile) || errors.Is(err, ErrInvalidType) {
		return http.StatusBadRequest
	}
	if errors.Is(err, ErrNotDraft) || errors.Is(err, ErrNoArtifact) {
		return http.StatusConflict
	}
	if errors.Is(err, ErrPermissionDenied) {
		return http.StatusForbidden
	}
	return http.StatusInternalServerError
}
