package errs

import (
	"errors"
	"net/http"
)

var (
	ErrUnauthorized   = errors.New("unauthorized access")
	ErrForbidden      = errors.New("forbidden access")
	ErrInvalidID      = errors.New("invalid id")
	ErrInvalidRequest = errors.New("invalid request body")
	ErrInvalidRole    = errors.New("role must be one of admin, teacher, student")
	ErrInvalidStatus  = errors.New("status must be one of pending, approve, reject")
	ErrEmailRequired  = errors.New("email is required")
	ErrNothingToSet   = errors.New("no updatable fields supplied")
	ErrDatabase       = errors.New("database error")
	ErrToken          = errors.New("token signing failure")
)

var statuses = []struct {
	err    error
	status int
}{
	{ErrUnauthorized, http.StatusUnauthorized},
	{ErrForbidden, http.StatusForbidden},
	{ErrInvalidID, http.StatusBadRequest},
	{ErrInvalidRequest, http.StatusBadRequest},
	{ErrInvalidRole, http.StatusBadRequest},
	{ErrInvalidStatus, http.StatusBadRequest},
	{ErrEmailRequired, http.StatusBadRequest},
	{ErrNothingToSet, http.StatusBadRequest},
	{ErrDatabase, http.StatusInternalServerError},
	{ErrToken, http.StatusInternalServerError},
}

// Classify returns the HTTP status and the public sentinel for err.
// Errors outside the taxonomy are reported as a bare 500.
func Classify(err error) (int, error) {
	for _, s := range statuses {
		if errors.Is(err, s.err) {
			return s.status, s.err
		}
	}
	return http.StatusInternalServerError, nil
}
