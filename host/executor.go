package host

import (
	"context"
	"fmt"

	"github.com/tetratelabs/wazero"
	"github.com/tetratelabs/wazero/api"
	"github.com/tetratelabs/wazero/imports/wasi_snapshot_preview1"

	"github.com/scriptglue/scriptglue-sdk/hostfuncs"
	wazeroadapter "github.com/scriptglue/scriptglue-sdk/infrastructure/wazero"
	"github.com/scriptglue/scriptglue-sdk/log"
)

// Executor runs WASM guests that drive the bridge through the
// scriptglue_host module. The guest sees the bridge operations as named
// host functions and the host sees the guest as a scripting runtime.
type Executor struct {
	runtime  wazero.Runtime
	registry *hostfuncs.HandlerRegistry
	sink     *log.Sink
}

// NewExecutor stands up a wazero runtime with WASI and the bridge host
// module instantiated.
func NewExecutor(ctx context.Context, opts ...Option) (*Executor, error) {
	e := &Executor{}
	for _, opt := range opts {
		opt(e)
	}

	if e.registry == nil {
		reg, err := hostfuncs.NewRegistry(
			hostfuncs.WithMiddleware(hostfuncs.PanicRecoveryMiddleware()),
		)
		if err != nil {
			return nil, fmt.Errorf("failed to create default registry: %w", err)
		}
		e.registry = reg
	}
	if e.sink == nil {
		e.sink = log.NewSink(nil)
	}

	rt := wazero.NewRuntime(ctx)
	wasi_snapshot_preview1.MustInstantiate(ctx, rt)
	e.runtime = rt

	if err := e.registerHostFunctions(ctx); err != nil {
		rt.Close(ctx)
		return nil, fmt.Errorf("failed to register host functions: %w", err)
	}

	return e, nil
}

// Close tears down the runtime and everything instantiated in it.
func (e *Executor) Close(ctx context.Context) error {
	return e.runtime.Close(ctx)
}

func (e *Executor) registerHostFunctions(ctx context.Context) error {
	return wazeroadapter.RegisterWithRuntime(ctx, e.runtime, e.registry,
		wazeroadapter.WithCustomHandler(logMessageHandler(e.sink)),
	)
}

// Guest is an instantiated WASM scripting runtime.
type Guest struct {
	module api.Module
}

// LoadGuest instantiates a WASM module.
func (e *Executor) LoadGuest(ctx context.Context, wasmBytes []byte) (*Guest, error) {
	mod, err := e.runtime.Instantiate(ctx, wasmBytes)
	if err != nil {
		return nil, fmt.Errorf("failed to instantiate module: %w", err)
	}

	if init := mod.ExportedFunction("_initialize"); init != nil {
		if _, err := init.Call(ctx); err != nil {
			return nil, fmt.Errorf("failed to call _initialize: %w", err)
		}
	}

	return &Guest{module: mod}, nil
}

// Run hands the guest its root object handle and lets it drive the
// bridge. The guest's "run" export returns zero on success and a
// nonzero code when its script failed.
func (g *Guest) Run(ctx context.Context, rootHandle uint64) error {
	run := g.module.ExportedFunction("run")
	if run == nil {
		return fmt.Errorf("guest does not export 'run'")
	}

	results, err := run.Call(ctx, rootHandle)
	if err != nil {
		return fmt.Errorf("guest run failed: %w", err)
	}
	if len(results) > 0 && results[0] != 0 {
		return fmt.Errorf("guest run returned code %d", results[0])
	}
	return nil
}

// Close releases the guest module.
func (g *Guest) Close(ctx context.Context) error {
	return g.module.Close(ctx)
}
