package util

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/mongo"
)

func TestStatusFor(t *testing.T) {
	require.Equal(t, http.StatusBadRequest, StatusFor(ErrInvalidInput))
	require.Equal(t, http.StatusUnauthorized, StatusFor(ErrUnauthorized))
	require.Equal(t, http.StatusForbidden, StatusFor(ErrForbidden))
	require.Equal(t, http.StatusNotFound, StatusFor(ErrNotFound))
	require.Equal(t, http.StatusNotFound, StatusFor(mongo.ErrNoDocuments))
	require.Equal(t, http.StatusInternalServerError, StatusFor(errors.New("boom")))
}

func TestStatusForWrappedError(t *testing.T) {
	wrapped := fmt.Errorf("%w: malformed id %q", ErrInvalidInput, "zzz")
	require.Equal(t, http.StatusBadRequest, StatusFor(wrapped))
}
