package hostfuncs

import (
	"context"
	"encoding/json"
	"fmt"
)

// HostFunc is the typed form of a bridge operation: a context and a decoded
// request in, a response out. Failures travel inside the response type.
type HostFunc[Req any, Resp any] func(context.Context, Req) Resp

// ByteHandler moves raw payload bytes in and out. It is the shape WASM
// runtimes dispatch on, so every typed handler is wrapped into one.
type ByteHandler func(context.Context, []byte) ([]byte, error)

// NewJSONHandler adapts a typed HostFunc to a ByteHandler with a fixed JSON
// encoding. WithBridge goes through NewCodecHandler instead so the codec is
// swappable; this form remains for embedders registering their own handlers.
//
// Usage:
//
//	getHandler := hostfuncs.NewJSONHandler(func(ctx context.Context, req entities.GetPropertyRequest) entities.GetPropertyResponse {
//	    return funcs.GetProperty(ctx, req)
//	})
//
//	// In WASM runtime handler:
//	reqBytes := readMemory(ptr, len)
//	respBytes, err := getHandler(ctx, reqBytes)
//	writeMemory(respBytes)
func NewJSONHandler[Req any, Resp any](fn HostFunc[Req, Resp]) ByteHandler {
	return func(ctx context.Context, payload []byte) ([]byte, error) {
		var req Req
		if err := json.Unmarshal(payload, &req); err != nil {
			return NewValidationError(fmt.Sprintf("failed to unmarshal request: %v", err)).ToJSON(), nil
		}

		resp := fn(ctx, req)

		respBytes, err := json.Marshal(resp)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal response: %w", err)
		}

		return respBytes, nil
	}
}
