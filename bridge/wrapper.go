package bridge

import (
	"github.com/scriptglue/scriptglue-sdk/domain/entities"
	"github.com/scriptglue/scriptglue-sdk/domain/ports"
)

// Name-kind exception messages, also part of the protocol contract.
const (
	msgMethodNameNotString   = "method name is not a string"
	msgPropertyNameNotString = "property name is not a string"
)

// Wrapper binds one NamespaceObject to one host instance as a
// host-visible scriptable value. It validates host-supplied name kinds,
// delegates to the resolution engine on its target, and carries the
// host-managed reference count.
//
// A wrapper starts with one reference owned by whoever created it; the
// host retains and releases from there. Counting is serialized by the
// host's single calling thread, so no locking is used here.
type Wrapper struct {
	ictx   ports.InstanceContext
	target *NamespaceObject
	refs   int32
}

// NewWrapper creates a wrapper with an initial reference count of one
// and registers it with the owning instance.
func NewWrapper(ictx ports.InstanceContext, target *NamespaceObject) *Wrapper {
	w := &Wrapper{ictx: ictx, target: target, refs: 1}
	if ictx != nil {
		ictx.TrackWrapper(w)
	}
	return w
}

// Target returns the wrapped namespace object.
func (w *Wrapper) Target() *NamespaceObject {
	return w.target
}

// Instance returns the host instance context this wrapper is bound to.
func (w *Wrapper) Instance() ports.InstanceContext {
	return w.ictx
}

// RefCount returns the current reference count.
func (w *Wrapper) RefCount() int32 {
	return w.refs
}

// Retain adds a host reference.
func (w *Wrapper) Retain() {
	w.refs++
}

// Release drops a host reference. The last release reports the wrapper
// back to its instance for teardown accounting; further use of the
// wrapper after that is a host defect.
func (w *Wrapper) Release() {
	if w.refs <= 0 {
		return
	}
	w.refs--
	if w.refs == 0 && w.ictx != nil {
		w.ictx.WrapperReleased(w)
	}
}

// HasMethod implements ports.DynamicObject.
func (w *Wrapper) HasMethod(method entities.Value, exc *entities.Exception) bool {
	if method.IsString() {
		return w.target.HasMethod(method.Str())
	}
	exc.Set(msgMethodNameNotString)
	return false
}

// HasProperty implements ports.DynamicObject.
func (w *Wrapper) HasProperty(name entities.Value, exc *entities.Exception) bool {
	if name.IsString() {
		return w.target.HasProperty(name.Str())
	}
	exc.Set(msgPropertyNameNotString)
	return false
}

// GetProperty implements ports.DynamicObject.
func (w *Wrapper) GetProperty(name entities.Value, exc *entities.Exception) entities.Value {
	if !name.IsString() {
		exc.Set(msgPropertyNameNotString)
		return entities.Undefined()
	}
	result, _ := w.target.GetProperty(w.ictx, name.Str(), exc)
	return result
}

// SetProperty implements ports.DynamicObject.
func (w *Wrapper) SetProperty(name, value entities.Value, exc *entities.Exception) {
	if !name.IsString() {
		exc.Set(msgPropertyNameNotString)
		return
	}
	w.target.SetProperty(name.Str(), value, exc)
}

// EnumerateProperties implements ports.DynamicObject.
func (w *Wrapper) EnumerateProperties(names *[]entities.Value, exc *entities.Exception) {
	w.target.PropertyNames(names, exc)
}

// Call implements ports.DynamicObject. An undefined method name is the
// host's single-calling-convention request for construction and is
// routed to Construct, never treated as a method named "undefined".
func (w *Wrapper) Call(method entities.Value, args []entities.Value, exc *entities.Exception) entities.Value {
	if method.IsUndefined() {
		return w.Construct(args, exc)
	}
	if !method.IsString() {
		exc.Set(msgMethodNameNotString)
		return entities.Undefined()
	}
	result, _ := w.target.Call(w.ictx, method.Str(), args, exc)
	return result
}

// Construct implements ports.DynamicObject.
func (w *Wrapper) Construct(args []entities.Value, exc *entities.Exception) entities.Value {
	result, _ := w.target.Construct(w.ictx, args, exc)
	return result
}
