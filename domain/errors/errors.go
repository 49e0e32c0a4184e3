// Package errors defines the failure vocabulary of the bridge: one type
// per failure class, each usable with errors.As and errors.Is and each
// able to render itself as a structured detail for the wire.
package errors

import (
	stdErrors "errors"
	"fmt"

	"github.com/scriptglue/scriptglue-sdk/domain/entities"
)

// ErrorDetail aliases the entity type so callers can stay in this package.
type ErrorDetail = entities.ErrorDetail

// DetailedError is implemented by error types that know their own
// structured form. ToErrorDetail picks it up without a type switch.
type DetailedError interface {
	error
	ToErrorDetail() *entities.ErrorDetail
}

// ToErrorDetail turns any error into the structured detail that crosses
// the wire. Unrecognized errors land in the "internal" bucket.
func ToErrorDetail(err error) *entities.ErrorDetail {
	if err == nil {
		return nil
	}

	// an *ErrorDetail passes through untouched
	var e *entities.ErrorDetail
	if stdErrors.As(err, &e) {
		return e
	}

	var de DetailedError
	if stdErrors.As(err, &de) {
		return de.ToErrorDetail()
	}

	return &entities.ErrorDetail{
		Message: err.Error(),
		Type:    "internal",
	}
}

// UnknownMemberError reports a member name that resolved nowhere along a
// base chain. MemberKind is "property" or "method".
type UnknownMemberError struct {
	Member     string
	MemberKind string
}

func (e *UnknownMemberError) Error() string {
	return fmt.Sprintf("unknown %s: %s", e.MemberKind, e.Member)
}

// ToErrorDetail implements DetailedError.
func (e *UnknownMemberError) ToErrorDetail() *entities.ErrorDetail {
	return &entities.ErrorDetail{
		Message:    e.Error(),
		Type:       "unknown_member",
		Code:       e.MemberKind,
		IsNotFound: true,
	}
}

// TypeMismatchError reports a host value of the wrong kind supplied where
// a specific kind was required (e.g. a non-string method name).
type TypeMismatchError struct {
	Operation string
	Expected  entities.Kind
	Actual    entities.Kind
}

func (e *TypeMismatchError) Error() string {
	return fmt.Sprintf("%s: expected %s value, got %s", e.Operation, e.Expected, e.Actual)
}

// ToErrorDetail implements DetailedError.
func (e *TypeMismatchError) ToErrorDetail() *entities.ErrorDetail {
	return &entities.ErrorDetail{Message: e.Error(), Type: "type_mismatch", Code: e.Operation}
}

// MissingConstructorError reports a construct attempt on a node with no
// constructor override.
type MissingConstructorError struct {
	Object string
}

func (e *MissingConstructorError) Error() string {
	if e.Object != "" {
		return fmt.Sprintf("missing constructor for %s", e.Object)
	}
	return "missing constructor"
}

// ToErrorDetail implements DetailedError.
func (e *MissingConstructorError) ToErrorDetail() *entities.ErrorDetail {
	return &entities.ErrorDetail{Message: e.Error(), Type: "missing_constructor", Code: e.Object}
}

// EncodingError reports a text conversion failure between the 8-bit and
// wide string representations.
type EncodingError struct {
	Err       error
	Operation string
}

func (e *EncodingError) Error() string {
	return fmt.Sprintf("encoding %s failed: %v", e.Operation, e.Err)
}

func (e *EncodingError) Unwrap() error {
	return e.Err
}

// ToErrorDetail implements DetailedError.
func (e *EncodingError) ToErrorDetail() *entities.ErrorDetail {
	return &entities.ErrorDetail{Message: e.Error(), Type: "encoding", Code: e.Operation}
}

// AllocationError reports a host-side allocation failure for a returned
// string or array.
type AllocationError struct {
	Requested int // Requested allocation size
	Current   int // Current total allocated
	Limit     int // Maximum allowed
}

func (e *AllocationError) Error() string {
	return fmt.Sprintf("allocation failed: requested %d bytes, current %d bytes, limit %d bytes",
		e.Requested, e.Current, e.Limit)
}

// ToErrorDetail implements DetailedError.
func (e *AllocationError) ToErrorDetail() *entities.ErrorDetail {
	return &entities.ErrorDetail{Message: e.Error(), Type: "allocation", Code: "memory_limit"}
}

// LifecycleError reports an instance lifecycle violation: a call made out
// of order, repeated, or after teardown began.
type LifecycleError struct {
	Call   string
	Reason string
}

func (e *LifecycleError) Error() string {
	return fmt.Sprintf("lifecycle violation in %s: %s", e.Call, e.Reason)
}

// ToErrorDetail implements DetailedError.
func (e *LifecycleError) ToErrorDetail() *entities.ErrorDetail {
	return &entities.ErrorDetail{Message: e.Error(), Type: "lifecycle", Code: e.Call}
}

// ManifestError reports a semantic defect in a tree manifest: an unknown
// base reference, a base cycle, or a malformed path.
type ManifestError struct {
	Err  error
	Path string
}

func (e *ManifestError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("manifest object %q: %v", e.Path, e.Err)
	}
	return fmt.Sprintf("manifest: %v", e.Err)
}

func (e *ManifestError) Unwrap() error {
	return e.Err
}

// ToErrorDetail implements DetailedError.
func (e *ManifestError) ToErrorDetail() *entities.ErrorDetail {
	return &entities.ErrorDetail{Message: e.Error(), Type: "validation", Code: "manifest"}
}

// HandleError reports a wire handle that does not name a live wrapper.
type HandleError struct {
	Handle uint64
}

func (e *HandleError) Error() string {
	return fmt.Sprintf("unknown object handle %d", e.Handle)
}

// ToErrorDetail implements DetailedError.
func (e *HandleError) ToErrorDetail() *entities.ErrorDetail {
	return &entities.ErrorDetail{
		Message:    e.Error(),
		Type:       "internal",
		Code:       "handle",
		IsNotFound: true,
	}
}

// SchemaError reports a failure generating or registering a JSON Schema.
type SchemaError struct {
	Err  error
	Type string
}

func (e *SchemaError) Error() string {
	if e.Type != "" {
		return fmt.Sprintf("schema error for type %s: %v", e.Type, e.Err)
	}
	return fmt.Sprintf("schema error: %v", e.Err)
}

func (e *SchemaError) Unwrap() error {
	return e.Err
}

// ToErrorDetail implements DetailedError.
func (e *SchemaError) ToErrorDetail() *entities.ErrorDetail {
	return &entities.ErrorDetail{Message: e.Error(), Type: "validation", Code: "schema"}
}

// WireFormatError reports a payload that could not be encoded or decoded.
type WireFormatError struct {
	Err       error
	Operation string
	Type      string
}

func (e *WireFormatError) Error() string {
	return fmt.Sprintf("wire format %s failed for %s: %v", e.Operation, e.Type, e.Err)
}

func (e *WireFormatError) Unwrap() error {
	return e.Err
}

// ToErrorDetail implements DetailedError.
func (e *WireFormatError) ToErrorDetail() *entities.ErrorDetail {
	return &entities.ErrorDetail{Message: e.Error(), Type: "internal", Code: "wire_format"}
}
