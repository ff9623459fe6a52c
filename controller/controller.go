package controller

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/jinxsazzad/sportifyu-server/util"
)

var validate = validator.New()

// decodeBody parses and validates a JSON request body into dst. Any
// failure maps to ErrInvalidInput so the handler answers 400 before the
// store is ever touched.
func decodeBody(r *http.Request, dst interface{}) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return fmt.Errorf("%w: malformed JSON body", util.ErrInvalidInput)
	}
	if err := validate.Struct(dst); err != nil {
		return fmt.Errorf("%w: %s", util.ErrInvalidInput, err)
	}
	return nil
}
