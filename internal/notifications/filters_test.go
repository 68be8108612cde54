package notifications_test

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"testing"

	"github.com/akilimali/parapheur/internal/notifications"
)

func TestFiltersFromQuery(t *testing.T) {
	t.Run("empty query", func(t *testing.T) {
		f := notifications.FiltersFromQuery(url.Values{})
		if f.Kind != nil || f.Unread {
			t.Errorf("FiltersFromQuery(empty) = %+v, want zero filters", f)
		}
	})

	t.Run("kind and unread", func(t *testing.T) {
		values := url.Values{
			"kind":   {"signature_required"},
			"unread": {"true"},
		}

		f := notifications.FiltersFromQuery(values)

		if f.Kind == nil || *f.Kind != notifications.Kind("signature_required") {
			t.Errorf("Kind = %v, want signature_required", f.Kind)
		}
		if !f.Unread {
			t.Error("Unread = false, want true")
		}
	})

	t.Run("malformed unread ignored", func(t *testing.T) {
		f := notifications.FiltersFromQuery(url.Values{"unread": {"maybe"}})
		if f.Unread {
			t.Error("Unread = true, want false for malformed value")
		}
	})
}

func TestMapHTTPStatus(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{
			"not found error",
			notifications.ErrNotFound,
			http.StatusNotFound,
		},
		{
			"wrapped not found error",
			fmt.Errorf("failed: %w", notifications.ErrNotFound),
			http.StatusNotFound,
		},
		{
			"duplicate error",
			notifications.ErrDuplicate,
			http.StatusConflict,
		},
		{
			"unknown error",
			errors.New("unknown error"),
			http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := notifications.MapHTTPStatus(tt.err); got != tt.wantStatus {
				t.Errorf("MapHTTPStatus() = %d, want %d", got, tt.wantStatus)
			}
		})
	}
}
