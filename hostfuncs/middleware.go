package hostfuncs

import (
	"context"
	"log/slog"
)

// Middleware wraps a ByteHandler to add cross-cutting behavior around
// every bridge operation. Middleware executes in FIFO order (first
// registered wraps first, onion model).
type Middleware func(next ByteHandler) ByteHandler

// RegistryOption feeds NewRegistry.
type RegistryOption func(*registryBuilder)

// PanicRecoveryMiddleware catches panics and converts them to structured
// ErrorResponse JSON. A native fault inside a resolution call must
// surface to the guest as an error payload, never crash the host.
func PanicRecoveryMiddleware() Middleware {
	return func(next ByteHandler) ByteHandler {
		return func(ctx context.Context, payload []byte) (resp []byte, err error) {
			defer func() {
				if r := recover(); r != nil {
					resp = NewPanicError(r).ToJSON()
					err = nil // Return JSON error, not Go error
				}
			}()
			return next(ctx, payload)
		}
	}
}

// SlogMiddleware logs every bridge operation at debug level, with the
// wire function name when the context carries one. A nil logger selects
// slog.Default.
func SlogMiddleware(logger *slog.Logger) Middleware {
	if logger == nil {
		logger = slog.Default()
	}
	return func(next ByteHandler) ByteHandler {
		return func(ctx context.Context, payload []byte) ([]byte, error) {
			op := "unknown"
			if hc, ok := ctx.(HostContext); ok {
				op = hc.FunctionName()
			}
			resp, err := next(ctx, payload)
			if err != nil {
				logger.DebugContext(ctx, "bridge operation failed", "op", op, "error", err)
				return resp, err
			}
			logger.DebugContext(ctx, "bridge operation completed", "op", op,
				"request_bytes", len(payload), "response_bytes", len(resp))
			return resp, nil
		}
	}
}
