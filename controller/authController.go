package controller

import (
	"net/http"

	"github.com/jinxsazzad/sportifyu-server/model"
	"github.com/jinxsazzad/sportifyu-server/token"
	"github.com/jinxsazzad/sportifyu-server/util"
)

type AuthController struct {
	tokens *token.Service
}

func NewAuthController(tokens *token.Service) *AuthController {
	return &AuthController{tokens: tokens}
}

// HandleIssueToken signs a bearer token for the posted identity payload.
// The route is public; possession of a token proves nothing beyond having
// asked for one, authorization happens against the stored role.
func (ac *AuthController) HandleIssueToken(w http.ResponseWriter, r *http.Request) {
	var body model.TokenRequest
	if err := decodeBody(r, &body); err != nil {
		util.WriteErrorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	signed, err := ac.tokens.Issue(token.Claims{Email: body.Email, Name: body.Name})
	if err != nil {
		util.WriteErrorResponse(w, http.StatusInternalServerError, "could not issue token")
		return
	}
	util.WriteSuccessResponse(w, http.StatusOK, map[string]string{"token": signed})
}
