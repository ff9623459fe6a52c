package controller

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"
)

// Validation failures must answer 400 before any store access, so these
// run against a controller with no store at all.

func postJSON(t *testing.T, router chi.Router, method, target, payload string) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(method, target, strings.NewReader(payload))
	router.ServeHTTP(rec, req)
	return rec
}

func TestHandleNewClassRejectsInvalidBody(t *testing.T) {
	cc := NewClassController(nil)
	router := chi.NewRouter()
	router.Post("/classes", cc.HandleNewClass)

	cases := map[string]string{
		"missing instructor email": `{"className":"Yoga"}`,
		"invalid email":            `{"instructorEmail":"nope","className":"Yoga"}`,
		"missing class name":       `{"instructorEmail":"a@x.com"}`,
		"negative price":           `{"instructorEmail":"a@x.com","className":"Yoga","classPrice":-5}`,
		"negative seats":           `{"instructorEmail":"a@x.com","className":"Yoga","availableSeats":-1}`,
	}
	for name, payload := range cases {
		rec := postJSON(t, router, http.MethodPost, "/classes", payload)
		require.Equalf(t, http.StatusBadRequest, rec.Code, "case %q", name)
	}
}

func TestHandleGetClassRejectsMalformedId(t *testing.T) {
	cc := NewClassController(nil)
	router := chi.NewRouter()
	router.Get("/classes/id/{id}", cc.HandleGetClass)

	rec := postJSON(t, router, http.MethodGet, "/classes/id/zzz", "")
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleSetStatusRejectsUnknownStatus(t *testing.T) {
	cc := NewClassController(nil)
	router := chi.NewRouter()
	router.Put("/classes/{classId}/status", cc.HandleSetStatus)

	for name, payload := range map[string]string{
		"unknown status": `{"status":"archived"}`,
		"empty status":   `{"status":""}`,
		"no body":        `{}`,
	} {
		rec := postJSON(t, router, http.MethodPut, "/classes/652f1a2b3c4d5e6f7a8b9c0d/status", payload)
		require.Equalf(t, http.StatusBadRequest, rec.Code, "case %q", name)
	}
}

func TestHandleFeedbackRejectsEmptyText(t *testing.T) {
	cc := NewClassController(nil)
	router := chi.NewRouter()
	router.Put("/classes/{classId}/feedback", cc.HandleFeedback)

	rec := postJSON(t, router, http.MethodPut, "/classes/652f1a2b3c4d5e6f7a8b9c0d/feedback", `{}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleStudentUpdateRejectsNegativeSeats(t *testing.T) {
	cc := NewClassController(nil)
	router := chi.NewRouter()
	router.Patch("/classes/update-student/{id}", cc.HandleStudentUpdate)

	rec := postJSON(t, router, http.MethodPatch, "/classes/update-student/652f1a2b3c4d5e6f7a8b9c0d",
		`{"selectedStudent":"s@x.com","availableSeats":-1}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleInstructorUpdateRejectsMissingName(t *testing.T) {
	cc := NewClassController(nil)
	router := chi.NewRouter()
	router.Patch("/classes/update-instructor/{id}", cc.HandleInstructorUpdate)

	rec := postJSON(t, router, http.MethodPatch, "/classes/update-instructor/652f1a2b3c4d5e6f7a8b9c0d",
		`{"classPrice":10}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)
}
