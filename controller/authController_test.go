package controller

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/jinxsazzad/sportifyu-server/token"
	"github.com/jinxsazzad/sportifyu-server/util"
)

func TestHandleIssueToken(t *testing.T) {
	tokens := token.NewService("test-secret", time.Hour)
	ac := NewAuthController(tokens)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/jwt",
		strings.NewReader(`{"email":"s@x.com","name":"Sam"}`))
	ac.HandleIssueToken(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var body map[string]string
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	require.NotEmpty(t, body["token"])

	claims, err := tokens.Verify(body["token"])
	require.NoError(t, err)
	require.Equal(t, "s@x.com", claims.Email)
	require.Equal(t, "Sam", claims.Name)
}

func TestHandleIssueTokenRejectsBadBody(t *testing.T) {
	ac := NewAuthController(token.NewService("test-secret", time.Hour))

	for name, payload := range map[string]string{
		"missing email": `{"name":"Sam"}`,
		"invalid email": `{"email":"not-an-email"}`,
		"broken json":   `{"email":`,
	} {
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/jwt", strings.NewReader(payload))
		ac.HandleIssueToken(rec, req)

		require.Equalf(t, http.StatusBadRequest, rec.Code, "case %q", name)

		var body util.ErrorResponse
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
		require.True(t, body.Error)
	}
}
