package errs

import (
	"fmt"
	"net/http"

	"roomchat/internal/pkg/logx"
)

// CustomError is the error type carried through handlers to the response
// writer. It pairs a business code with a client-safe message and the HTTP
// status the response should use.
type CustomError struct {
	// Code is the business error code (see error_codes.go).
	Code int

	// Message is the client-facing error description.
	Message string

	// Status is the HTTP status code for this error.
	Status int
}

// Error implements the error interface.
func (e CustomError) Error() string {
	return fmt.Sprintf("Error Code %d (HTTP %d): %s", e.Code, e.Status, e.Message)
}

// NewError returns a *CustomError for a predefined error code. Unknown codes
// fall back to ErrUnknown so a response is always well-formed. When the first
// detail is an error it is logged server-side; it never reaches the client.
func NewError(code int, details ...any) *CustomError {
	templateErr, ok := errorMap[code]

	if !ok {
		logx.Error(
			fmt.Errorf("error code %d missing from errorMap", code),
			"Unknown error code requested",
		)

		unknownErr := errorMap[ErrUnknown]
		return &unknownErr
	}

	customErr := templateErr

	if customErr.Status == 0 {
		customErr.Status = http.StatusBadRequest
	}

	if len(details) > 0 {
		if cause, ok := details[0].(error); ok {
			logx.Error(cause, "Request failed", "code", code)
		}
	}

	return &customErr
}
