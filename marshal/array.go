package marshal

import (
	"github.com/scriptglue/scriptglue-sdk/domain/entities"
	"github.com/scriptglue/scriptglue-sdk/domain/ports"
)

// NewArray asks the host to build a fresh empty array by evaluating an
// array literal in the global scope. A result of any other kind is
// released and reported as failure.
func NewArray(host ports.ScriptingHost) (entities.Value, bool) {
	v, ok := host.Evaluate("[]")
	if !ok {
		return entities.Undefined(), false
	}
	if !v.IsObject() {
		v.Release()
		return entities.Undefined(), false
	}
	return v, true
}
