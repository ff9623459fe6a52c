package controller

import (
	"net/http"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"
)

func TestHandleNewEnrollmentRejectsInvalidBody(t *testing.T) {
	ec := NewEnrollmentController(nil)
	router := chi.NewRouter()
	router.Post("/students-classes", ec.HandleNewEnrollment)

	cases := map[string]string{
		"missing student email": `{"classId":"652f1a2b3c4d5e6f7a8b9c0d"}`,
		"invalid student email": `{"studentEmail":"nope","classId":"652f1a2b3c4d5e6f7a8b9c0d"}`,
		"missing class id":      `{"studentEmail":"s@x.com"}`,
		"short class id":        `{"studentEmail":"s@x.com","classId":"abc"}`,
		"non-hex class id":      `{"studentEmail":"s@x.com","classId":"zzzzzzzzzzzzzzzzzzzzzzzz"}`,
	}
	for name, payload := range cases {
		rec := postJSON(t, router, http.MethodPost, "/students-classes", payload)
		require.Equalf(t, http.StatusBadRequest, rec.Code, "case %q", name)
	}
}

func TestHandleDeleteEnrollmentRejectsMalformedId(t *testing.T) {
	ec := NewEnrollmentController(nil)
	router := chi.NewRouter()
	router.Delete("/student-classes/id/{id}", ec.HandleDeleteEnrollment)

	rec := postJSON(t, router, http.MethodDelete, "/student-classes/id/zzz", "")
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleUpsertUserRejectsBadEmailParam(t *testing.T) {
	uc := NewUserController(nil)
	router := chi.NewRouter()
	router.Put("/users/{email}", uc.HandleUpsertUser)

	rec := postJSON(t, router, http.MethodPut, "/users/not-an-email", `{"name":"Sam"}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)
}
