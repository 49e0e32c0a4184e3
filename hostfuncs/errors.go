package hostfuncs

import (
	"encoding/json"
)

// ErrorResponse is a structured transport-level error returned as JSON to
// guests. Guests receive a consistent, parseable payload instead of a WASM
// trap; resolution failures never use this shape, they travel as exception
// values in the operation response.
type ErrorResponse struct {
	// Error names the failure class, e.g. "VALIDATION_ERROR".
	Error string `json:"error"`

	// Message describes the failure for humans.
	Message string `json:"message"`

	// Code mirrors HTTP status conventions (400, 404, 500).
	Code int `json:"code"`
}

// ToJSON renders the response as JSON. The type is flat strings and an
// int, so marshalling cannot realistically fail; nil covers the remainder.
func (e ErrorResponse) ToJSON() []byte {
	data, err := json.Marshal(e)
	if err != nil {
		return nil
	}
	return data
}

// NewValidationError creates an error response for an undecodable request
// payload.
func NewValidationError(message string) ErrorResponse {
	return ErrorResponse{
		Error:   "VALIDATION_ERROR",
		Message: message,
		Code:    400,
	}
}

// NewNotFoundError creates an error response for wire function names no
// handler was registered under.
func NewNotFoundError(name string) ErrorResponse {
	return ErrorResponse{
		Error:   "NOT_FOUND",
		Message: "unknown host function: " + name,
		Code:    404,
	}
}

// NewInternalError creates an error response for unexpected host-side
// failures.
func NewInternalError(message string) ErrorResponse {
	return ErrorResponse{
		Error:   "INTERNAL_ERROR",
		Message: message,
		Code:    500,
	}
}

// NewPanicError creates an error response for panics recovered by the
// middleware.
func NewPanicError(panicValue any) ErrorResponse {
	var msg string
	if err, ok := panicValue.(error); ok {
		msg = err.Error()
	} else if s, ok := panicValue.(string); ok {
		msg = s
	} else {
		msg = "panic recovered"
	}
	return ErrorResponse{
		Error:   "INTERNAL_ERROR",
		Message: "panic: " + msg,
		Code:    500,
	}
}
