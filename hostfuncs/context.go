package hostfuncs

import (
	"context"
)

// HostContext decorates a context.Context for the duration of one bridge
// operation. It carries the wire function name being served and lets
// middleware stash per-call values without rebuilding the context chain.
type HostContext interface {
	context.Context

	// FunctionName returns the wire name of the operation being served,
	// e.g. "bridge.get_property".
	FunctionName() string

	// SetValue stores a per-call value. Unlike context.WithValue, this
	// mutates the existing HostContext; calls are single-threaded.
	SetValue(key, value any)

	// GetValue retrieves a per-call value set by SetValue.
	GetValue(key any) (value any, ok bool)
}

// hostContext backs HostContext.
type hostContext struct {
	context.Context
	values   map[any]any
	funcName string
}

// NewHostContext wraps ctx for one operation named funcName.
func NewHostContext(ctx context.Context, funcName string) HostContext {
	return &hostContext{
		Context:  ctx,
		funcName: funcName,
		values:   make(map[any]any),
	}
}

func (c *hostContext) FunctionName() string {
	return c.funcName
}

func (c *hostContext) SetValue(key, value any) {
	c.values[key] = value
}

func (c *hostContext) GetValue(key any) (any, bool) {
	v, ok := c.values[key]
	return v, ok
}

// HostContextFrom returns ctx itself when it is already a HostContext,
// otherwise it wraps ctx under funcName.
func HostContextFrom(ctx context.Context, funcName string) HostContext {
	if hc, ok := ctx.(HostContext); ok {
		return hc
	}
	return NewHostContext(ctx, funcName)
}
