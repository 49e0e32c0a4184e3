package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scriptglue/scriptglue-sdk/domain/entities"
)

func TestUnknownMemberError(t *testing.T) {
	err := &UnknownMemberError{
		Member:     "frobnicate",
		MemberKind: "method",
	}

	assert.Equal(t, "unknown method: frobnicate", err.Error())

	var memberErr *UnknownMemberError
	require.True(t, errors.As(err, &memberErr))
	assert.Equal(t, "frobnicate", memberErr.Member)

	detail := err.ToErrorDetail()
	assert.Equal(t, "unknown_member", detail.Type)
	assert.Equal(t, "method", detail.Code)
	assert.True(t, detail.IsNotFound)
}

func TestTypeMismatchError(t *testing.T) {
	err := &TypeMismatchError{
		Operation: "invoke",
		Expected:  entities.KindString,
		Actual:    entities.KindNumber,
	}

	assert.Equal(t, "invoke: expected string value, got number", err.Error())

	detail := err.ToErrorDetail()
	assert.Equal(t, "type_mismatch", detail.Type)
	assert.Equal(t, "invoke", detail.Code)
}

func TestMissingConstructorError(t *testing.T) {
	err := &MissingConstructorError{Object: "app.math"}
	assert.Equal(t, "missing constructor for app.math", err.Error())

	detail := err.ToErrorDetail()
	assert.Equal(t, "missing_constructor", detail.Type)
	assert.Equal(t, "app.math", detail.Code)
}

func TestMissingConstructorError_NoObject(t *testing.T) {
	err := &MissingConstructorError{}
	assert.Equal(t, "missing constructor", err.Error())
}

func TestEncodingError(t *testing.T) {
	baseErr := fmt.Errorf("invalid byte sequence")
	err := &EncodingError{
		Operation: "utf8 to utf16",
		Err:       baseErr,
	}

	assert.Equal(t, "encoding utf8 to utf16 failed: invalid byte sequence", err.Error())
	assert.True(t, errors.Is(err, baseErr))

	var encErr *EncodingError
	require.True(t, errors.As(err, &encErr))
	assert.Equal(t, "utf8 to utf16", encErr.Operation)
}

func TestAllocationError(t *testing.T) {
	err := &AllocationError{
		Requested: 10 * 1024 * 1024,
		Current:   95 * 1024 * 1024,
		Limit:     100 * 1024 * 1024,
	}

	assert.Equal(t, "allocation failed: requested 10485760 bytes, current 99614720 bytes, limit 104857600 bytes", err.Error())

	var allocErr *AllocationError
	require.True(t, errors.As(err, &allocErr))
	assert.Equal(t, 10*1024*1024, allocErr.Requested)
	assert.Equal(t, 100*1024*1024, allocErr.Limit)

	detail := err.ToErrorDetail()
	assert.Equal(t, "allocation", detail.Type)
	assert.Equal(t, "memory_limit", detail.Code)
}

func TestLifecycleError(t *testing.T) {
	err := &LifecycleError{
		Call:   "CreateRootObject",
		Reason: "called out of order",
	}

	assert.Equal(t, "lifecycle violation in CreateRootObject: called out of order", err.Error())

	var lcErr *LifecycleError
	require.True(t, errors.As(err, &lcErr))
	assert.Equal(t, "CreateRootObject", lcErr.Call)
}

func TestManifestError(t *testing.T) {
	baseErr := fmt.Errorf("unknown base class")
	err := &ManifestError{
		Path: "app.sci",
		Err:  baseErr,
	}

	assert.Equal(t, `manifest object "app.sci": unknown base class`, err.Error())
	assert.True(t, errors.Is(err, baseErr))

	var manErr *ManifestError
	require.True(t, errors.As(err, &manErr))
	assert.Equal(t, "app.sci", manErr.Path)
}

func TestManifestError_NoPath(t *testing.T) {
	err := &ManifestError{Err: fmt.Errorf("no objects declared")}
	assert.Equal(t, "manifest: no objects declared", err.Error())
}

func TestHandleError(t *testing.T) {
	err := &HandleError{Handle: 42}
	assert.Equal(t, "unknown object handle 42", err.Error())

	detail := err.ToErrorDetail()
	assert.Equal(t, "internal", detail.Type)
	assert.True(t, detail.IsNotFound)
}

func TestSchemaError(t *testing.T) {
	baseErr := fmt.Errorf("unsupported type")
	err := &SchemaError{
		Type: "MyCustomStruct",
		Err:  baseErr,
	}

	assert.Equal(t, "schema error for type MyCustomStruct: unsupported type", err.Error())
	assert.True(t, errors.Is(err, baseErr))

	var schemaErr *SchemaError
	require.True(t, errors.As(err, &schemaErr))
	assert.Equal(t, "MyCustomStruct", schemaErr.Type)
}

func TestSchemaError_NoType(t *testing.T) {
	baseErr := fmt.Errorf("invalid schema")
	err := &SchemaError{
		Err: baseErr,
	}

	assert.Equal(t, "schema error: invalid schema", err.Error())
}

func TestWireFormatError(t *testing.T) {
	baseErr := fmt.Errorf("invalid json")
	err := &WireFormatError{
		Operation: "unmarshal",
		Type:      "InvokeRequest",
		Err:       baseErr,
	}

	assert.Equal(t, "wire format unmarshal failed for InvokeRequest: invalid json", err.Error())
	assert.True(t, errors.Is(err, baseErr))

	var wireErr *WireFormatError
	require.True(t, errors.As(err, &wireErr))
	assert.Equal(t, "unmarshal", wireErr.Operation)
	assert.Equal(t, "InvokeRequest", wireErr.Type)
}

func TestToErrorDetail(t *testing.T) {
	t.Run("nil error", func(t *testing.T) {
		assert.Nil(t, ToErrorDetail(nil))
	})

	t.Run("plain error", func(t *testing.T) {
		detail := ToErrorDetail(fmt.Errorf("boom"))
		require.NotNil(t, detail)
		assert.Equal(t, "boom", detail.Message)
		assert.Equal(t, "internal", detail.Type)
	})

	t.Run("detailed error", func(t *testing.T) {
		detail := ToErrorDetail(&UnknownMemberError{Member: "x", MemberKind: "property"})
		assert.Equal(t, "unknown_member", detail.Type)
		assert.True(t, detail.IsNotFound)
	})

	t.Run("wrapped detailed error", func(t *testing.T) {
		wrapped := fmt.Errorf("resolving: %w", &HandleError{Handle: 7})
		detail := ToErrorDetail(wrapped)
		assert.Equal(t, "handle", detail.Code)
	})

	t.Run("entity detail passthrough", func(t *testing.T) {
		orig := &entities.ErrorDetail{Message: "raw", Type: "custom"}
		assert.Same(t, orig, ToErrorDetail(orig))
	})
}

func TestErrorUnwrapping(t *testing.T) {
	baseErr := fmt.Errorf("base error")

	tests := []struct {
		name string
		err  error
	}{
		{"EncodingError", &EncodingError{Operation: "test", Err: baseErr}},
		{"ManifestError", &ManifestError{Path: "test", Err: baseErr}},
		{"SchemaError", &SchemaError{Type: "test", Err: baseErr}},
		{"WireFormatError", &WireFormatError{Operation: "test", Type: "test", Err: baseErr}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.True(t, errors.Is(tt.err, baseErr), "errors.Is should find base error")
			unwrapped := errors.Unwrap(tt.err)
			assert.Equal(t, baseErr, unwrapped, "errors.Unwrap should return base error")
		})
	}
}
