package profiles_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/akilimali/parapheur/internal/profiles"
)

func TestRole_Validate(t *testing.T) {
	for _, role := range profiles.Roles {
		if err := role.Validate(); err != nil {
			t.Errorf("Validate(%s) failed: %v", role, err)
		}
	}

	if err := profiles.Role("chancelier").Validate(); err == nil {
		t.Error("Validate() accepted unknown role")
	}
	if err := profiles.Role("").Validate(); err == nil {
		t.Error("Validate() accepted empty role")
	}
}

func TestProfile_DisplayName(t *testing.T) {
	p := &profiles.Profile{FirstName: "Albert", LastName: "Kalume"}
	if got := p.DisplayName(); got != "Albert Kalume" {
		t.Errorf("DisplayName() = %q, want %q", got, "Albert Kalume")
	}
}

func TestMapHTTPStatus(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{
			"not found error",
			profiles.ErrNotFound,
			http.StatusNotFound,
		},
		{
			"wrapped not found error",
			fmt.Errorf("failed: %w", profiles.ErrNotFound),
			http.StatusNotFound,
		},
		{
			"duplicate error",
			profiles.ErrDuplicate,
			http.StatusConflict,
		},
		{
			"invalid role error",
			profiles.ErrInvalidRole,
			http.StatusBadRequest,
		},
		{
			"unknown error",
			errors.New("unknown error"),
			http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := profiles.MapHTTPStatus(tt.err); got != tt.wantStatus {
				t.Errorf("MapHTTPStatus() = %d, want %d", got, tt.wantStatus)
			}
		})
	}
}
