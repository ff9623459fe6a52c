package controller

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/jinxsazzad/sportifyu-server/model"
	"github.com/jinxsazzad/sportifyu-server/storage"
	"github.com/jinxsazzad/sportifyu-server/util"
)

type UserController struct {
	store *storage.Store
}

func NewUserController(store *storage.Store) *UserController {
	return &UserController{store: store}
}

// HandleUpsertUser creates the user on the first PUT for an email and
// merges fields afterwards. Public: the client calls it on first login,
// before any token exists.
func (uc *UserController) HandleUpsertUser(w http.ResponseWriter, r *http.Request) {
	email := chi.URLParam(r, "email")
	if err := validate.Var(email, "required,email"); err != nil {
		util.WriteErrorResponse(w, http.StatusBadRequest, "invalid email parameter")
		return
	}

	var body model.UpsertUser
	if err := decodeBody(r, &body); err != nil {
		util.WriteErrorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	user, err := uc.store.UpsertUser(email, body)
	if err != nil {
		util.WriteErrorResponse(w, http.StatusInternalServerError, "an error occurred while saving the user")
		return
	}
	util.WriteSuccessResponse(w, http.StatusOK, user)
}

func (uc *UserController) HandleGetUser(w http.ResponseWriter, r *http.Request) {
	email := chi.URLParam(r, "email")

	user, err := uc.store.GetUser(email)
	if errors.Is(err, util.ErrNotFound) {
		util.WriteErrorResponse(w, http.StatusNotFound, "user not found")
		return
	}
	if err != nil {
		util.WriteErrorResponse(w, http.StatusInternalServerError, "an error occurred while fetching the user")
		return
	}
	util.WriteSuccessResponse(w, http.StatusOK, user)
}

func (uc *UserController) HandleListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := uc.store.ListUsers()
	if err != nil {
		util.WriteErrorResponse(w, http.StatusInternalServerError, "an error occurred while fetching users")
		return
	}
	util.WriteSuccessResponse(w, http.StatusOK, users)
}

func (uc *UserController) HandleListInstructors(w http.ResponseWriter, r *http.Request) {
	instructors, err := uc.store.ListInstructors()
	if err != nil {
		util.WriteErrorResponse(w, http.StatusInternalServerError, "an error occurred while fetching instructors")
		return
	}
	util.WriteSuccessResponse(w, http.StatusOK, instructors)
}
