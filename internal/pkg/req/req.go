/*
Package req contains helpers for binding incoming request bodies.
*/
package req

import (
	"encoding/json"
	"net/http"
	"strings"

	"roomchat/internal/pkg/errs"
)

// BindJSON decodes the request body into dst. It requires an application/json
// Content-Type, rejects unknown fields, and rejects trailing content after
// the JSON document.
func BindJSON(r *http.Request, dst any) *errs.CustomError {
	contentType := r.Header.Get("Content-Type")
	if !strings.HasPrefix(contentType, "application/json") {
		return errs.NewError(errs.ErrUnsupportedMediaType)
	}

	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()

	if err := decoder.Decode(dst); err != nil {
		return errs.NewError(errs.ErrInvalidJSONFormat)
	}

	if decoder.More() {
		return errs.NewError(errs.ErrExtraContentInBody)
	}

	return nil
}
