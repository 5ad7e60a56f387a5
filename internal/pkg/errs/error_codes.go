/*
Package errs defines the application error type and the business error codes
used in every client-facing response.
*/
package errs

// 1xxx: General Request Handling Errors
const (
	// ErrInvalidParams indicates that request parameter validation failed.
	ErrInvalidParams = 1001

	// ErrUnsupportedMediaType indicates that the request Content-Type is not supported.
	ErrUnsupportedMediaType = 1002

	// ErrInvalidJSONFormat indicates that the request body is not valid JSON.
	ErrInvalidJSONFormat = 1003

	// ErrExtraContentInBody indicates trailing content after the JSON document.
	ErrExtraContentInBody = 1004
)

// 2xxx: Room and Message Business Logic Errors
const (
	// ErrRoomNameExists indicates that a room with the requested name already exists.
	ErrRoomNameExists = 2101

	// ErrRoomNotFound indicates that the referenced room does not exist.
	ErrRoomNotFound = 2102
)

// 3xxx: User and Authentication Errors
const (
	// ErrUsernameTaken indicates that the requested username is already registered.
	ErrUsernameTaken = 3001

	// ErrInvalidCredentials indicates that the username/password pair did not verify.
	// The same code covers an unknown username and a wrong password.
	ErrInvalidCredentials = 3002

	// ErrUnauthorized indicates a missing, malformed, expired or otherwise
	// invalid bearer token on a protected endpoint. All causes map here so the
	// response does not reveal which check failed.
	ErrUnauthorized = 3003
)

// 5xxx: Internal System Errors
const (
	// ErrUnknown represents an unclassified server-side failure.
	ErrUnknown = 5000
)
