package hostfuncs

import (
	"context"
	stdErrors "errors"

	"github.com/scriptglue/scriptglue-sdk/bridge"
	"github.com/scriptglue/scriptglue-sdk/domain/entities"
	domainerrors "github.com/scriptglue/scriptglue-sdk/domain/errors"
)

// Wire names of the bridge operation handlers.
const (
	FuncHasMethod   = "bridge.has_method"
	FuncHasProperty = "bridge.has_property"
	FuncGetProperty = "bridge.get_property"
	FuncSetProperty = "bridge.set_property"
	FuncInvoke      = "bridge.invoke"
	FuncConstruct   = "bridge.construct"
	FuncEnumerate   = "bridge.enumerate"
	FuncRetain      = "bridge.retain"
	FuncRelease     = "bridge.release"
)

// BridgeFuncs adapts one instance's wrapper graph to the wire protocol.
// Object references cross as handles from the instance's HandleStore;
// exceptions recorded during resolution cross as wire values alongside
// the result, exactly as an in-process host would observe them.
type BridgeFuncs struct {
	store *HandleStore
}

// NewBridgeFuncs binds the handlers to a handle store.
func NewBridgeFuncs(store *HandleStore) *BridgeFuncs {
	return &BridgeFuncs{store: store}
}

// Store returns the backing handle store.
func (f *BridgeFuncs) Store() *HandleStore { return f.store }

// ExportRoot issues the guest-visible handle for an instance's root
// wrapper. The handle owns the wrapper reference handed in.
func (f *BridgeFuncs) ExportRoot(w *bridge.Wrapper) uint64 {
	return f.store.Put(w)
}

// wireToValue turns a wire value into a host value. Object handles must
// name live wrappers.
func (f *BridgeFuncs) wireToValue(w entities.ValueWire) (entities.Value, error) {
	switch entities.KindFromString(w.Kind) {
	case entities.KindUndefined:
		return entities.Undefined(), nil
	case entities.KindNull:
		return entities.Null(), nil
	case entities.KindBool:
		return entities.BoolValue(w.Bool), nil
	case entities.KindNumber:
		return entities.NumberValue(w.Number), nil
	case entities.KindString:
		return entities.StringValue(w.Str), nil
	case entities.KindObject:
		wrapper, ok := f.store.Get(w.Handle)
		if !ok {
			return entities.Undefined(), &domainerrors.HandleError{Handle: w.Handle}
		}
		return entities.ObjectValue(wrapper), nil
	}
	return entities.Undefined(), nil
}

// valueToWire turns a host value into its wire form. A value carrying an
// object reference hands ownership of that reference to the issued
// handle.
func (f *BridgeFuncs) valueToWire(v entities.Value) (entities.ValueWire, error) {
	out := entities.ValueWire{Kind: v.Kind().String()}
	switch v.Kind() {
	case entities.KindBool:
		out.Bool = v.Bool()
	case entities.KindNumber:
		out.Number = v.Number()
	case entities.KindString:
		out.Str = v.Str()
	case entities.KindObject:
		wrapper, ok := v.Object().(*bridge.Wrapper)
		if !ok {
			return out, &domainerrors.EncodingError{
				Operation: "value to wire",
				Err:       stdErrors.New("object reference is not a bridge wrapper"),
			}
		}
		out.Handle = f.store.Put(wrapper)
	}
	return out, nil
}

// excToWire converts a recorded exception for the response, nil when the
// slot stayed empty.
func (f *BridgeFuncs) excToWire(exc *entities.Exception) *entities.ValueWire {
	if !exc.IsSet() {
		return nil
	}
	w, err := f.valueToWire(exc.Value())
	if err != nil {
		w = entities.ValueWire{Kind: "string", Str: exc.Message()}
	}
	return &w
}

// HasMethod answers bridge.has_method.
func (f *BridgeFuncs) HasMethod(_ context.Context, req entities.HasMemberRequest) entities.HasMemberResponse {
	w, ok := f.store.Get(req.Object)
	if !ok {
		return entities.HasMemberResponse{Error: domainerrors.ToErrorDetail(&domainerrors.HandleError{Handle: req.Object})}
	}
	name, err := f.wireToValue(req.Name)
	if err != nil {
		return entities.HasMemberResponse{Error: domainerrors.ToErrorDetail(err)}
	}

	var exc entities.Exception
	found := w.HasMethod(name, &exc)
	return entities.HasMemberResponse{Found: found, Exception: f.excToWire(&exc)}
}

// HasProperty answers bridge.has_property.
func (f *BridgeFuncs) HasProperty(_ context.Context, req entities.HasMemberRequest) entities.HasMemberResponse {
	w, ok := f.store.Get(req.Object)
	if !ok {
		return entities.HasMemberResponse{Error: domainerrors.ToErrorDetail(&domainerrors.HandleError{Handle: req.Object})}
	}
	name, err := f.wireToValue(req.Name)
	if err != nil {
		return entities.HasMemberResponse{Error: domainerrors.ToErrorDetail(err)}
	}

	var exc entities.Exception
	found := w.HasProperty(name, &exc)
	return entities.HasMemberResponse{Found: found, Exception: f.excToWire(&exc)}
}

// GetProperty answers bridge.get_property.
func (f *BridgeFuncs) GetProperty(_ context.Context, req entities.GetPropertyRequest) entities.GetPropertyResponse {
	w, ok := f.store.Get(req.Object)
	if !ok {
		return entities.GetPropertyResponse{Error: domainerrors.ToErrorDetail(&domainerrors.HandleError{Handle: req.Object})}
	}
	name, err := f.wireToValue(req.Name)
	if err != nil {
		return entities.GetPropertyResponse{Error: domainerrors.ToErrorDetail(err)}
	}

	var exc entities.Exception
	result := w.GetProperty(name, &exc)
	if exc.IsSet() {
		return entities.GetPropertyResponse{Exception: f.excToWire(&exc)}
	}

	wire, err := f.valueToWire(result)
	if err != nil {
		return entities.GetPropertyResponse{Error: domainerrors.ToErrorDetail(err)}
	}
	return entities.GetPropertyResponse{OK: true, Result: &wire}
}

// SetProperty answers bridge.set_property.
func (f *BridgeFuncs) SetProperty(_ context.Context, req entities.SetPropertyRequest) entities.SetPropertyResponse {
	w, ok := f.store.Get(req.Object)
	if !ok {
		return entities.SetPropertyResponse{Error: domainerrors.ToErrorDetail(&domainerrors.HandleError{Handle: req.Object})}
	}
	name, err := f.wireToValue(req.Name)
	if err != nil {
		return entities.SetPropertyResponse{Error: domainerrors.ToErrorDetail(err)}
	}
	value, err := f.wireToValue(req.Value)
	if err != nil {
		return entities.SetPropertyResponse{Error: domainerrors.ToErrorDetail(err)}
	}

	var exc entities.Exception
	w.SetProperty(name, value, &exc)
	if exc.IsSet() {
		return entities.SetPropertyResponse{Exception: f.excToWire(&exc)}
	}
	return entities.SetPropertyResponse{OK: true}
}

// Invoke answers bridge.invoke. An undefined method kind requests
// construction, matching the in-process calling convention.
func (f *BridgeFuncs) Invoke(_ context.Context, req entities.InvokeRequest) entities.InvokeResponse {
	w, ok := f.store.Get(req.Object)
	if !ok {
		return entities.InvokeResponse{Error: domainerrors.ToErrorDetail(&domainerrors.HandleError{Handle: req.Object})}
	}
	method, err := f.wireToValue(req.Method)
	if err != nil {
		return entities.InvokeResponse{Error: domainerrors.ToErrorDetail(err)}
	}
	args, err := f.wireArgs(req.Args)
	if err != nil {
		return entities.InvokeResponse{Error: domainerrors.ToErrorDetail(err)}
	}

	var exc entities.Exception
	result := w.Call(method, args, &exc)
	if exc.IsSet() {
		return entities.InvokeResponse{Exception: f.excToWire(&exc)}
	}

	wire, err := f.valueToWire(result)
	if err != nil {
		return entities.InvokeResponse{Error: domainerrors.ToErrorDetail(err)}
	}
	return entities.InvokeResponse{OK: true, Result: &wire}
}

// Construct answers bridge.construct.
func (f *BridgeFuncs) Construct(_ context.Context, req entities.ConstructRequest) entities.InvokeResponse {
	w, ok := f.store.Get(req.Object)
	if !ok {
		return entities.InvokeResponse{Error: domainerrors.ToErrorDetail(&domainerrors.HandleError{Handle: req.Object})}
	}
	args, err := f.wireArgs(req.Args)
	if err != nil {
		return entities.InvokeResponse{Error: domainerrors.ToErrorDetail(err)}
	}

	var exc entities.Exception
	result := w.Construct(args, &exc)
	if exc.IsSet() {
		return entities.InvokeResponse{Exception: f.excToWire(&exc)}
	}

	wire, err := f.valueToWire(result)
	if err != nil {
		return entities.InvokeResponse{Error: domainerrors.ToErrorDetail(err)}
	}
	return entities.InvokeResponse{OK: true, Result: &wire}
}

// Enumerate answers bridge.enumerate.
func (f *BridgeFuncs) Enumerate(_ context.Context, req entities.EnumerateRequest) entities.EnumerateResponse {
	w, ok := f.store.Get(req.Object)
	if !ok {
		return entities.EnumerateResponse{Error: domainerrors.ToErrorDetail(&domainerrors.HandleError{Handle: req.Object})}
	}

	var exc entities.Exception
	var names []entities.Value
	w.EnumerateProperties(&names, &exc)
	if exc.IsSet() {
		return entities.EnumerateResponse{Exception: f.excToWire(&exc)}
	}

	out := make([]entities.ValueWire, 0, len(names))
	for _, name := range names {
		wire, err := f.valueToWire(name)
		if err != nil {
			return entities.EnumerateResponse{Error: domainerrors.ToErrorDetail(err)}
		}
		out = append(out, wire)
	}
	return entities.EnumerateResponse{Names: out}
}

// Retain answers bridge.retain.
func (f *BridgeFuncs) Retain(_ context.Context, req entities.RefRequest) entities.RefResponse {
	if !f.store.Retain(req.Object) {
		return entities.RefResponse{Error: domainerrors.ToErrorDetail(&domainerrors.HandleError{Handle: req.Object})}
	}
	return entities.RefResponse{OK: true}
}

// Release answers bridge.release.
func (f *BridgeFuncs) Release(_ context.Context, req entities.RefRequest) entities.RefResponse {
	if !f.store.Release(req.Object) {
		return entities.RefResponse{Error: domainerrors.ToErrorDetail(&domainerrors.HandleError{Handle: req.Object})}
	}
	return entities.RefResponse{OK: true}
}

func (f *BridgeFuncs) wireArgs(in []entities.ValueWire) ([]entities.Value, error) {
	args := make([]entities.Value, 0, len(in))
	for _, w := range in {
		v, err := f.wireToValue(w)
		if err != nil {
			return nil, err
		}
		args = append(args, v)
	}
	return args, nil
}

// WithBridge registers the full bridge operation set using codec for
// payloads. A nil codec selects JSON.
func WithBridge(funcs *BridgeFuncs, codec Codec) RegistryOption {
	if codec == nil {
		codec = JSONCodec{}
	}
	return func(b *registryBuilder) {
		register := func(name string, handler ByteHandler) {
			if err := b.addHandler(name, handler); err != nil {
				b.errors = append(b.errors, err)
			}
		}
		register(FuncHasMethod, NewCodecHandler(codec, funcs.HasMethod))
		register(FuncHasProperty, NewCodecHandler(codec, funcs.HasProperty))
		register(FuncGetProperty, NewCodecHandler(codec, funcs.GetProperty))
		register(FuncSetProperty, NewCodecHandler(codec, funcs.SetProperty))
		register(FuncInvoke, NewCodecHandler(codec, funcs.Invoke))
		register(FuncConstruct, NewCodecHandler(codec, funcs.Construct))
		register(FuncEnumerate, NewCodecHandler(codec, funcs.Enumerate))
		register(FuncRetain, NewCodecHandler(codec, funcs.Retain))
		register(FuncRelease, NewCodecHandler(codec, funcs.Release))
	}
}
