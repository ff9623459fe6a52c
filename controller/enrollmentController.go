package controller

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/jinxsazzad/sportifyu-server/model"
	"github.com/jinxsazzad/sportifyu-server/storage"
	"github.com/jinxsazzad/sportifyu-server/util"
)

type EnrollmentController struct {
	store *storage.Store
}

func NewEnrollmentController(store *storage.Store) *EnrollmentController {
	return &EnrollmentController{store: store}
}

// HandleNewEnrollment records a student adding a class to their
// selection. The class id is validated for shape only, not existence.
func (ec *EnrollmentController) HandleNewEnrollment(w http.ResponseWriter, r *http.Request) {
	var body model.NewEnrollment
	if err := decodeBody(r, &body); err != nil {
		util.WriteErrorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	enrollment, err := ec.store.InsertEnrollment(model.Enrollment{
		StudentEmail: body.StudentEmail,
		ClassId:      body.ClassId,
		Selected:     body.Selected,
	})
	if err != nil {
		util.WriteErrorResponse(w, http.StatusInternalServerError, "an error occurred while saving the enrollment")
		return
	}
	util.WriteSuccessResponse(w, http.StatusCreated, enrollment)
}

// HandleListSelected returns only the enrollments a student still has
// selected; deselected records are excluded.
func (ec *EnrollmentController) HandleListSelected(w http.ResponseWriter, r *http.Request) {
	email := chi.URLParam(r, "email")

	enrollments, err := ec.store.ListSelectedByStudent(email)
	if err != nil {
		util.WriteErrorResponse(w, http.StatusInternalServerError, "an error occurred while fetching enrollments")
		return
	}
	util.WriteSuccessResponse(w, http.StatusOK, enrollments)
}

func (ec *EnrollmentController) HandleGetEnrollment(w http.ResponseWriter, r *http.Request) {
	enrollment, err := ec.store.GetEnrollment(chi.URLParam(r, "id"))
	if err != nil {
		ec.writeEnrollmentError(w, err, "an error occurred while fetching the enrollment")
		return
	}
	util.WriteSuccessResponse(w, http.StatusOK, enrollment)
}

func (ec *EnrollmentController) HandleDeleteEnrollment(w http.ResponseWriter, r *http.Request) {
	deleted, err := ec.store.DeleteEnrollment(chi.URLParam(r, "id"))
	if err != nil {
		ec.writeEnrollmentError(w, err, "an error occurred while deleting the enrollment")
		return
	}
	util.WriteSuccessResponse(w, http.StatusOK, map[string]int64{"deletedCount": deleted})
}

func (ec *EnrollmentController) writeEnrollmentError(w http.ResponseWriter, err error, fallback string) {
	switch status := util.StatusFor(err); status {
	case http.StatusNotFound:
		util.WriteErrorResponse(w, status, "enrollment not found")
	case http.StatusBadRequest:
		util.WriteErrorResponse(w, status, err.Error())
	default:
		util.WriteErrorResponse(w, status, fallback)
	}
}
