package handlers

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
)

// UserHeader carries the acting user's profile ID on requests that act
// on behalf of a staff member.
const UserHeader = "X-User-Id"

// ErrMissingUser indicates the acting user header was absent or malformed.
var ErrMissingUser = errors.New("missing or invalid " + UserHeader + " header")

// ActingUser extracts the acting user's profile ID from the request header.
func ActingUser(r *http.Request) (uuid.UUID, error) {
	raw := r.Header.Get(UserHeader)
	if raw == "" {
		return uuid.Nil, ErrMissingUser
	}

	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, ErrMissingUser
	}

	return id, nil
}
