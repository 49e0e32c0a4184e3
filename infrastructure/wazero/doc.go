// Package wazero exposes the bridge operation registry to guests running
// under the wazero runtime.
//
// The bridge handlers themselves are plain Go; this package supplies the
// WASM plumbing around them:
//
//   - packing and unpacking the i64 pointer+length calling convention
//   - reading request payloads out of guest memory
//   - landing response payloads back in the guest via its "allocate" export
//   - exporting each handler from a wazero host module
//
// # Basic Usage
//
//	funcs := hostfuncs.NewBridgeFuncs(hostfuncs.NewHandleStore())
//	registry, err := hostfuncs.NewRegistry(
//	    hostfuncs.WithBridge(funcs, nil),
//	)
//	if err != nil {
//	    return err
//	}
//
//	runtime := wazero.NewRuntime(ctx)
//
//	err = wazero.RegisterWithRuntime(ctx, runtime, registry,
//	    wazero.WithModuleName("scriptglue_host"),
//	)
//
// # Custom Handlers
//
// An export that does not follow the request/response pattern, such as the
// fire-and-forget log_message, goes through WithCustomHandler:
//
//	wazero.RegisterWithRuntime(ctx, runtime, registry,
//	    wazero.WithCustomHandler(wazero.CustomHandler{
//	        Name:        "log_message",
//	        Handler:     logMessageHandler,
//	        ParamTypes:  []api.ValueType{api.ValueTypeI64},
//	        ResultTypes: []api.ValueType{},
//	    }),
//	)
package wazero
