package entities

import "fmt"

// Kind identifies the dynamic type of a Value.
type Kind int

const (
	KindUndefined Kind = iota
	KindNull
	KindBool
	KindNumber
	KindString
	KindObject
)

// String returns the lowercase kind name used in wire payloads and errors.
func (k Kind) String() string {
	switch k {
	case KindUndefined:
		return "undefined"
	case KindNull:
		return "null"
	case KindBool:
		return "bool"
	case KindNumber:
		return "number"
	case KindString:
		return "string"
	case KindObject:
		return "object"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// KindFromString is the inverse of Kind.String. Unknown names map to
// KindUndefined, which is the safe wire default.
func KindFromString(s string) Kind {
	switch s {
	case "null":
		return KindNull
	case "bool":
		return KindBool
	case "number":
		return KindNumber
	case "string":
		return KindString
	case "object":
		return KindObject
	default:
		return KindUndefined
	}
}

// ObjectRef is a host-visible object reference carried inside a Value.
// The host owns the reference count; the bridge retains when it copies a
// reference and releases when the owning Value is released.
type ObjectRef interface {
	Retain()
	Release()
}

// Value is the host's tagged dynamic value. The zero Value is undefined.
//
// Ownership is explicit: a Value holding an ObjectRef owns one reference,
// which must be dropped with Release when the Value goes out of scope.
// Scalar kinds make Release a no-op, so callers can release uniformly.
type Value struct {
	obj     ObjectRef
	str     string
	number  float64
	kind    Kind
	boolean bool
}

// Undefined returns the undefined Value.
func Undefined() Value {
	return Value{}
}

// Null returns the null Value.
func Null() Value {
	return Value{kind: KindNull}
}

// BoolValue returns a boolean Value.
func BoolValue(b bool) Value {
	return Value{kind: KindBool, boolean: b}
}

// NumberValue returns a numeric Value.
func NumberValue(n float64) Value {
	return Value{kind: KindNumber, number: n}
}

// StringValue returns a string Value.
func StringValue(s string) Value {
	return Value{kind: KindString, str: s}
}

// ObjectValue wraps an object reference in a Value. The Value takes over
// the caller's reference; it does not retain an additional one.
func ObjectValue(ref ObjectRef) Value {
	return Value{kind: KindObject, obj: ref}
}

// Kind returns the dynamic type tag.
func (v Value) Kind() Kind { return v.kind }

func (v Value) IsUndefined() bool { return v.kind == KindUndefined }
func (v Value) IsNull() bool      { return v.kind == KindNull }
func (v Value) IsBool() bool      { return v.kind == KindBool }
func (v Value) IsNumber() bool    { return v.kind == KindNumber }
func (v Value) IsString() bool    { return v.kind == KindString }
func (v Value) IsObject() bool    { return v.kind == KindObject }

// Bool returns the boolean payload. Valid only when IsBool.
func (v Value) Bool() bool { return v.boolean }

// Number returns the numeric payload. Valid only when IsNumber.
func (v Value) Number() float64 { return v.number }

// Str returns the string payload. Valid only when IsString.
func (v Value) Str() string { return v.str }

// Object returns the object reference payload, or nil for non-objects.
// The reference stays owned by the Value; callers that keep it past the
// Value's lifetime must Retain it.
func (v Value) Object() ObjectRef { return v.obj }

// Retain returns a copy of the Value owning its own reference. For
// scalar kinds this is a plain copy.
func (v Value) Retain() Value {
	if v.kind == KindObject && v.obj != nil {
		v.obj.Retain()
	}
	return v
}

// Release drops the object reference owned by the Value, if any. The
// Value must not be used afterwards.
func (v *Value) Release() {
	if v.kind == KindObject && v.obj != nil {
		v.obj.Release()
	}
	*v = Value{}
}

// String implements fmt.Stringer for logs and test failures.
func (v Value) String() string {
	switch v.kind {
	case KindBool:
		return fmt.Sprintf("bool(%t)", v.boolean)
	case KindNumber:
		return fmt.Sprintf("number(%g)", v.number)
	case KindString:
		return fmt.Sprintf("string(%q)", v.str)
	case KindObject:
		return fmt.Sprintf("object(%T)", v.obj)
	default:
		return v.kind.String()
	}
}

// Exception is the output slot every bridge operation reports failures
// through. The first write wins: a failure detected deep in a base-chain
// walk must reach the host without being overwritten by outer callers.
type Exception struct {
	value Value
	set   bool
}

// IsSet reports whether an exception has been recorded.
func (e *Exception) IsSet() bool { return e.set }

// SetIfEmpty records msg as a string exception unless one is already set.
func (e *Exception) SetIfEmpty(msg string) {
	if e.set {
		return
	}
	e.Set(msg)
}

// Set unconditionally records msg as a string exception. Most failure
// paths want SetIfEmpty; Set exists for operations whose contract always
// reports their own message.
func (e *Exception) Set(msg string) {
	e.value = StringValue(msg)
	e.set = true
}

// Value returns the recorded exception value, undefined when unset.
func (e *Exception) Value() Value { return e.value }

// Message returns the exception string, or "" when unset or non-string.
func (e *Exception) Message() string {
	if !e.set || !e.value.IsString() {
		return ""
	}
	return e.value.Str()
}
