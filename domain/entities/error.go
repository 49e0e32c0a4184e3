package entities

import "fmt"

// ErrorDetail is the structured failure shape shared by host-side errors
// and the wire protocol, so a guest sees the same fields a Go caller does.
// Error Types: "unknown_member", "type_mismatch", "missing_constructor",
// "encoding", "allocation", "lifecycle", "panic", "validation", "internal"
type ErrorDetail struct {
	// Wrapped carries the cause when one failure wraps another.
	Wrapped *ErrorDetail `json:"wrapped,omitempty"`

	// Details holds free-form context for diagnostics.
	Details map[string]any `json:"details,omitempty"`

	// Message describes the failure for humans.
	Message string `json:"message"`

	// Type buckets the failure; see the list above.
	Type string `json:"type"`

	// Code identifies the failure for programmatic handling.
	Code string `json:"code"`

	// Stack holds the goroutine stack captured on panic.
	Stack []byte `json:"stack,omitempty"`

	// IsNotFound indicates a member or handle that resolved nowhere.
	IsNotFound bool `json:"is_not_found,omitempty"`
}

// Error implements the error interface.
func (e *ErrorDetail) Error() string {
	if e == nil {
		return ""
	}
	msg := e.Message
	if e.Type != "" && e.Type != "internal" {
		msg = fmt.Sprintf("%s: %s", e.Type, msg)
	}
	if e.Code != "" {
		msg = fmt.Sprintf("%s [%s]", msg, e.Code)
	}
	if e.Wrapped != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Wrapped.Error())
	}
	return msg
}

// NewErrorDetail builds an ErrorDetail of the given type.
func NewErrorDetail(errorType, message string) *ErrorDetail {
	return &ErrorDetail{
		Type:    errorType,
		Message: message,
	}
}

// WithDetails attaches diagnostic context and returns the receiver.
func (e *ErrorDetail) WithDetails(details map[string]any) *ErrorDetail {
	e.Details = details
	return e
}

// WithCode attaches a machine-readable code and returns the receiver.
func (e *ErrorDetail) WithCode(code string) *ErrorDetail {
	e.Code = code
	return e
}
