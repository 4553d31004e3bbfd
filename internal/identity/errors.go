package identity

import (
	"errors"
	"fmt"
	"net/http"
)

// Local taxonomy for identity-service failures. Callers branch on these with
// errors.Is; everything the remote can report collapses into one of the three.
var (
	// ErrNotFound means the requested user does not exist in the directory.
	ErrNotFound = errors.New("identity: user not found")

	// ErrInvalidArgument means the directory rejected the request itself.
	ErrInvalidArgument = errors.New("identity: invalid argument")

	// ErrUnavailable means the directory could not be reached or answered
	// with a transient failure. The caller may see success on a later retry.
	ErrUnavailable = errors.New("identity: service unavailable")
)

// mapStatus translates a remote status code into the local taxonomy.
// Anything unrecognized is treated as unavailable.
func mapStatus(code int) error {
	switch code {
	case http.StatusNotFound:
		return ErrNotFound
	case http.StatusBadRequest:
		return ErrInvalidArgument
	case http.StatusServiceUnavailable:
		return ErrUnavailable
	default:
		return fmt.Errorf("%w (status %d)", ErrUnavailable, code)
	}
}
