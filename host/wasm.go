package host

import (
	"context"

	"github.com/tetratelabs/wazero/api"

	wazeroadapter "github.com/scriptglue/scriptglue-sdk/infrastructure/wazero"
	"github.com/scriptglue/scriptglue-sdk/log"
)

// logMessageHandler builds the log_message host function. It takes a
// packed ptr+len payload and returns nothing, so it cannot use the
// standard request/response adapter path.
func logMessageHandler(sink *log.Sink) wazeroadapter.CustomHandler {
	return wazeroadapter.CustomHandler{
		Name: "log_message",
		Handler: api.GoModuleFunc(func(ctx context.Context, mod api.Module, stack []uint64) {
			packed := stack[0]
			ptr := uint32(packed >> 32)
			length := uint32(packed)
			payload, ok := mod.Memory().Read(ptr, length)
			if !ok {
				return
			}
			sink.Handle(ctx, payload)
		}),
		ParamTypes:  []api.ValueType{api.ValueTypeI64},
		ResultTypes: nil,
	}
}
