package marshal

import (
	"github.com/scriptglue/scriptglue-sdk/domain/entities"
	"github.com/scriptglue/scriptglue-sdk/domain/ports"
)

// ObjectProperty reads a named property off a host object, probing for
// existence before fetching. Either step failing yields (Undefined,
// false); absence is not an exception.
func ObjectProperty(host ports.ScriptingHost, obj entities.Value, name string) (entities.Value, bool) {
	if !host.HasProperty(obj, name) {
		return entities.Undefined(), false
	}
	v, ok := host.GetProperty(obj, name)
	if !ok {
		return entities.Undefined(), false
	}
	return v, true
}

// ArrayElement reads an indexed element off a host object. Some host
// runtimes answer the existence probe incorrectly for indexed access;
// skipProbe fetches directly and relies on the fetch result alone.
func ArrayElement(host ports.ScriptingHost, obj entities.Value, index int, skipProbe bool) (entities.Value, bool) {
	if !skipProbe && !host.HasElement(obj, index) {
		return entities.Undefined(), false
	}
	v, ok := host.GetElement(obj, index)
	if !ok {
		return entities.Undefined(), false
	}
	return v, true
}
