package ports

import "github.com/scriptglue/scriptglue-sdk/domain/entities"

// Allocator reserves host-owned memory for values handed across the
// boundary. Implementations fail (never panic) when the request cannot
// be satisfied; allocation failure is an expected, reportable outcome.
type Allocator interface {
	// Alloc reserves exactly size bytes. A zero size is trivially
	// successful and yields an empty, non-nil slice.
	Alloc(size int) ([]byte, error)

	// Free returns a previously allocated buffer. Unknown buffers are
	// ignored.
	Free(buf []byte)
}

// ScriptingHost is the slice of the host runtime's surface the value
// marshaller consumes: property probes and fetches on host-native
// objects, and trivial expression evaluation in the global scope. All
// calls are synchronous on the host's thread; failure is reported with a
// false result, never a panic.
type ScriptingHost interface {
	// HasProperty probes whether obj exposes the named property.
	HasProperty(obj entities.Value, name string) bool

	// GetProperty fetches the named property of obj.
	GetProperty(obj entities.Value, name string) (entities.Value, bool)

	// HasElement probes whether obj exposes the indexed element.
	HasElement(obj entities.Value, index int) bool

	// GetElement fetches the indexed element of obj.
	GetElement(obj entities.Value, index int) (entities.Value, bool)

	// Evaluate runs expr in the host's global scope and returns the
	// resulting value.
	Evaluate(expr string) (entities.Value, bool)
}
