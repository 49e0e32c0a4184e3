package entities

// ValueWire is the wire form of a host Value crossing the guest boundary.
// Object references travel as numeric handles issued by the host's
// per-instance handle store; the payload fields are populated according
// to Kind and omitted otherwise.
type ValueWire struct {
	Kind   string  `json:"kind"`
	Bool   bool    `json:"bool,omitempty"`
	Number float64 `json:"number,omitempty"`
	Str    string  `json:"str,omitempty"`
	Handle uint64  `json:"handle,omitempty"`
}

// HasMemberRequest asks whether a wrapped object resolves a member name.
// The same shape serves has-method and has-property; Name is a full wire
// value, not a bare string, because the guest may legally pass a
// non-string name and expects a type-mismatch exception back.
type HasMemberRequest struct {
	Object uint64    `json:"object"`
	Name   ValueWire `json:"name"`
}

// HasMemberResponse reports member presence.
type HasMemberResponse struct {
	Error     *ErrorDetail `json:"error,omitempty"`
	Exception *ValueWire   `json:"exception,omitempty"`
	Found     bool         `json:"found"`
}

// GetPropertyRequest fetches a property value from a wrapped object.
type GetPropertyRequest struct {
	Object uint64    `json:"object"`
	Name   ValueWire `json:"name"`
}

// GetPropertyResponse carries the fetched value or an exception.
type GetPropertyResponse struct {
	Error     *ErrorDetail `json:"error,omitempty"`
	Exception *ValueWire   `json:"exception,omitempty"`
	Result    *ValueWire   `json:"result,omitempty"`
	OK        bool         `json:"ok"`
}

// SetPropertyRequest stores a property value on a wrapped object.
type SetPropertyRequest struct {
	Object uint64    `json:"object"`
	Name   ValueWire `json:"name"`
	Value  ValueWire `json:"value"`
}

// SetPropertyResponse reports the outcome of a property store.
type SetPropertyResponse struct {
	Error     *ErrorDetail `json:"error,omitempty"`
	Exception *ValueWire   `json:"exception,omitempty"`
	OK        bool         `json:"ok"`
}

// InvokeRequest calls a method on a wrapped object. An undefined Method
// kind requests construction, mirroring the host's single calling
// convention for invocation and instantiation.
type InvokeRequest struct {
	Object uint64      `json:"object"`
	Method ValueWire   `json:"method"`
	Args   []ValueWire `json:"args,omitempty"`
}

// InvokeResponse carries a call or construct result.
type InvokeResponse struct {
	Error     *ErrorDetail `json:"error,omitempty"`
	Exception *ValueWire   `json:"exception,omitempty"`
	Result    *ValueWire   `json:"result,omitempty"`
	OK        bool         `json:"ok"`
}

// ConstructRequest instantiates a wrapped object.
type ConstructRequest struct {
	Object uint64      `json:"object"`
	Args   []ValueWire `json:"args,omitempty"`
}

// EnumerateRequest lists the property names of a wrapped object.
type EnumerateRequest struct {
	Object uint64 `json:"object"`
}

// EnumerateResponse carries the enumerated names. Names are wire values
// because the protocol permits non-string identifiers.
type EnumerateResponse struct {
	Error     *ErrorDetail `json:"error,omitempty"`
	Exception *ValueWire   `json:"exception,omitempty"`
	Names     []ValueWire  `json:"names,omitempty"`
}

// RefRequest adjusts the reference count of a wire handle.
type RefRequest struct {
	Object uint64 `json:"object"`
}

// RefResponse acknowledges a retain or release.
type RefResponse struct {
	Error *ErrorDetail `json:"error,omitempty"`
	OK    bool         `json:"ok"`
}
