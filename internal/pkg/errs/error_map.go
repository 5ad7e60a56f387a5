package errs

import "net/http"

// errorMap holds the client message and HTTP status for every business code.
// Entries without an explicit Status default to 400 in NewError; most errors
// in this service are client errors.
var errorMap = map[int]CustomError{
	// 1xxx: General Request Handling Errors
	ErrInvalidParams:        {Code: ErrInvalidParams, Message: "Invalid request parameters."},
	ErrUnsupportedMediaType: {Code: ErrUnsupportedMediaType, Message: "Unsupported request format."},
	ErrInvalidJSONFormat:    {Code: ErrInvalidJSONFormat, Message: "Unsupported request format."},
	ErrExtraContentInBody:   {Code: ErrExtraContentInBody, Message: "Request contains unexpected data."},

	// 2xxx: Room and Message Business Logic Errors
	ErrRoomNameExists: {Code: ErrRoomNameExists, Message: "Room name is already taken."},
	ErrRoomNotFound:   {Code: ErrRoomNotFound, Message: "Room not found.", Status: http.StatusNotFound},

	// 3xxx: User and Authentication Errors
	ErrUsernameTaken:      {Code: ErrUsernameTaken, Message: "Username is already taken."},
	ErrInvalidCredentials: {Code: ErrInvalidCredentials, Message: "Incorrect username or password."},
	ErrUnauthorized:       {Code: ErrUnauthorized, Message: "Please sign in to continue.", Status: http.StatusUnauthorized},

	// 5xxx: Internal System Errors
	ErrUnknown: {Code: ErrUnknown, Message: "Something went wrong. Please try again.", Status: http.StatusInternalServerError},
}
