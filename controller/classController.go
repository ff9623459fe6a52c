package controller

import (
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/jinxsazzad/sportifyu-server/model"
	"github.com/jinxsazzad/sportifyu-server/storage"
	"github.com/jinxsazzad/sportifyu-server/util"
)

type ClassController struct {
	store *storage.Store
}

func NewClassController(store *storage.Store) *ClassController {
	return &ClassController{store: store}
}

func (cc *ClassController) HandleListClasses(w http.ResponseWriter, r *http.Request) {
	classes, err := cc.store.ListClasses()
	if err != nil {
		util.WriteErrorResponse(w, http.StatusInternalServerError, "an error occurred while fetching classes")
		return
	}
	util.WriteSuccessResponse(w, http.StatusOK, classes)
}

func (cc *ClassController) HandleListApproved(w http.ResponseWriter, r *http.Request) {
	classes, err := cc.store.ListClassesByStatus(model.StatusApproved)
	if err != nil {
		util.WriteErrorResponse(w, http.StatusInternalServerError, "an error occurred while fetching approved classes")
		return
	}
	util.WriteSuccessResponse(w, http.StatusOK, classes)
}

func (cc *ClassController) HandlePopularClasses(w http.ResponseWriter, r *http.Request) {
	classes, err := cc.store.PopularClasses()
	if err != nil {
		util.WriteErrorResponse(w, http.StatusInternalServerError, "an error occurred while fetching popular classes")
		return
	}
	util.WriteSuccessResponse(w, http.StatusOK, classes)
}

func (cc *ClassController) HandleListByInstructor(w http.ResponseWriter, r *http.Request) {
	email := chi.URLParam(r, "email")

	classes, err := cc.store.ListClassesByInstructor(email)
	if err != nil {
		util.WriteErrorResponse(w, http.StatusInternalServerError, "an error occurred while fetching classes")
		return
	}
	util.WriteSuccessResponse(w, http.StatusOK, classes)
}

func (cc *ClassController) HandleGetClass(w http.ResponseWriter, r *http.Request) {
	class, err := cc.store.GetClass(chi.URLParam(r, "id"))
	if err != nil {
		cc.writeClassError(w, err, "an error occurred while fetching the class")
		return
	}
	util.WriteSuccessResponse(w, http.StatusOK, class)
}

// HandleNewClass stores an instructor's submission. The status is forced
// to pending; approval is an admin decision.
func (cc *ClassController) HandleNewClass(w http.ResponseWriter, r *http.Request) {
	var body model.NewClass
	if err := decodeBody(r, &body); err != nil {
		util.WriteErrorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	class, err := cc.store.InsertClass(model.Class{
		InstructorEmail: body.InstructorEmail,
		InstructorName:  body.InstructorName,
		ClassName:       body.ClassName,
		ClassPicture:    body.ClassPicture,
		ClassPrice:      body.ClassPrice,
		AvailableSeats:  body.AvailableSeats,
		Status:          model.StatusPending,
	})
	if err != nil {
		util.WriteErrorResponse(w, http.StatusInternalServerError, "an error occurred while creating the class")
		return
	}
	log.Println("class created:", class.Id.Hex(), "by", class.InstructorEmail)
	util.WriteSuccessResponse(w, http.StatusCreated, class)
}

func (cc *ClassController) HandleSetStatus(w http.ResponseWriter, r *http.Request) {
	var body model.StatusUpdate
	if err := decodeBody(r, &body); err != nil {
		util.WriteErrorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	class, err := cc.store.SetClassStatus(chi.URLParam(r, "classId"), body.Status)
	if err != nil {
		cc.writeClassError(w, err, "an error occurred while updating the class status")
		return
	}
	log.Println("class", class.Id.Hex(), "status set to", class.Status)
	util.WriteSuccessResponse(w, http.StatusOK, class)
}

func (cc *ClassController) HandleFeedback(w http.ResponseWriter, r *http.Request) {
	var body model.FeedbackUpdate
	if err := decodeBody(r, &body); err != nil {
		util.WriteErrorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	class, err := cc.store.AttachFeedback(chi.URLParam(r, "classId"), body.FeedbackText)
	if err != nil {
		cc.writeClassError(w, err, "an error occurred while attaching feedback")
		return
	}
	util.WriteSuccessResponse(w, http.StatusOK, class)
}

// HandleInstructorUpdate overwrites the presentation fields of a class.
// Ownership against instructorEmail is not enforced; see DESIGN.md.
func (cc *ClassController) HandleInstructorUpdate(w http.ResponseWriter, r *http.Request) {
	var body model.InstructorUpdate
	if err := decodeBody(r, &body); err != nil {
		util.WriteErrorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	class, err := cc.store.UpdateClassByInstructor(chi.URLParam(r, "id"), body)
	if err != nil {
		cc.writeClassError(w, err, "an error occurred while updating the class")
		return
	}
	util.WriteSuccessResponse(w, http.StatusOK, class)
}

func (cc *ClassController) HandleStudentUpdate(w http.ResponseWriter, r *http.Request) {
	var body model.StudentSelectionUpdate
	if err := decodeBody(r, &body); err != nil {
		util.WriteErrorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	class, err := cc.store.UpdateClassSelection(chi.URLParam(r, "id"), body)
	if err != nil {
		cc.writeClassError(w, err, "an error occurred while updating the class")
		return
	}
	util.WriteSuccessResponse(w, http.StatusOK, class)
}

// HandleDeleteClass deletes by id and reports the affected count, so
// deleting an already-deleted class stays a success.
func (cc *ClassController) HandleDeleteClass(w http.ResponseWriter, r *http.Request) {
	deleted, err := cc.store.DeleteClass(chi.URLParam(r, "id"))
	if err != nil {
		cc.writeClassError(w, err, "an error occurred while deleting the class")
		return
	}
	util.WriteSuccessResponse(w, http.StatusOK, map[string]int64{"deletedCount": deleted})
}

func (cc *ClassController) writeClassError(w http.ResponseWriter, err error, fallback string) {
	switch status := util.StatusFor(err); status {
	case http.StatusNotFound:
		util.WriteErrorResponse(w, status, "class not found")
	case http.StatusBadRequest:
		util.WriteErrorResponse(w, status, err.Error())
	default:
		util.WriteErrorResponse(w, status, fallback)
	}
}
