package ports

import "github.com/scriptglue/scriptglue-sdk/domain/entities"

// DynamicObject is the host-facing dynamic-object protocol. The bridge's
// Wrapper implements it; the host runtime (or an out-of-process adapter)
// consumes it. Every operation takes an exception output slot the caller
// must check, and the first writer wins: an operation never overwrites an
// exception recorded by a nested call.
//
// Member names arrive as full host values, not bare strings, because the
// host may legally pass a name of any kind; a non-string name produces a
// type-mismatch exception rather than a fault.
type DynamicObject interface {
	// HasMethod reports whether the object can invoke method.
	HasMethod(method entities.Value, exc *entities.Exception) bool

	// HasProperty reports whether the object exposes name.
	HasProperty(name entities.Value, exc *entities.Exception) bool

	// GetProperty fetches a property value. On failure the result is
	// undefined and exc is set.
	GetProperty(name entities.Value, exc *entities.Exception) entities.Value

	// SetProperty stores a property value.
	SetProperty(name, value entities.Value, exc *entities.Exception)

	// EnumerateProperties appends the object's property names to names.
	EnumerateProperties(names *[]entities.Value, exc *entities.Exception)

	// Call invokes a method. An undefined method name requests
	// construction instead; this routing is part of the protocol and
	// mirrors the host's single calling convention for invocation and
	// instantiation.
	Call(method entities.Value, args []entities.Value, exc *entities.Exception) entities.Value

	// Construct instantiates the object.
	Construct(args []entities.Value, exc *entities.Exception) entities.Value
}
