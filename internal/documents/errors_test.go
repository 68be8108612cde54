package documents_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/akilimali/parapheur/internal/documents"
)

func TestMapHTTPStatus(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{
			"not found error",
			documents.ErrNotFound,
			http.StatusNotFound,
		},
		{
			"wrapped not found error",
			fmt.Errorf("failed: %w", documents.ErrNotFound),
			http.StatusNotFound,
		},
		{
			"duplicate error",
			documents.ErrDuplicate,
			http.StatusConflict,
		},
		{
			"file too large error",
			documents.ErrFileTooLarge,
			http.StatusRequestEntityTooLarge,
		},
		{
			"invalid file error",
			documents.ErrInvalidFile,
			http.StatusBadRequest,
		},
		{
			"invalid type error",
			documents.ErrInvalidType,
			http.StatusBadRequest,
		},
		{
			"not draft error",
			documents.ErrNotDraft,
			http.StatusConflict,
		},
		{
			"wrapped not draft error",
			fmt.Errorf("failed: %w", documents.ErrNotDraft),
			http.StatusConflict,
		},
		{
			"no artifact error",
			documents.ErrNoArtifact,
			http.StatusConflict,
		},
		{
			"permission denied error",
			documents.ErrPermissionDenied,
			http.StatusForbidden,
		},
		{
			"unknown error",
			errors.New("unknown error"),
			http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := documents.MapHTTPStatus(tt.err); got != tt.wantStatus {
				t.Errorf("MapHTTPStatus() = %d, want %d", got, tt.wantStatus)
			}
		})
	}
}
