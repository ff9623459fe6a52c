package util

import (
	"errors"
	"net/http"

	"go.mongodb.org/mongo-driver/mongo"
)

var (
	// ErrUnauthorized covers missing, malformed and expired tokens alike.
	ErrUnauthorized = errors.New("unauthorized access")
	// ErrForbidden is returned for authenticated users without the admin role.
	ErrForbidden = errors.New("forbidden user")
	// ErrNotFound is returned when no document matches the given key.
	ErrNotFound = errors.New("not found")
	// ErrInvalidInput is returned when a request body fails validation.
	ErrInvalidInput = errors.New("invalid input")
)

// StatusFor maps a domain error to the HTTP status it is reported with.
// Anything unrecognized is an internal failure.
func StatusFor(err error) int {
	switch {
	case errors.Is(err, ErrInvalidInput):
		return http.StatusBadRequest
	case errors.Is(err, ErrUnauthorized):
		return http.StatusUnauthorized
	case errors.Is(err, ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, ErrNotFound), errors.Is(err, mongo.ErrNoDocuments):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
