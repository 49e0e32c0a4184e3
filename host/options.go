package host

import (
	"github.com/scriptglue/scriptglue-sdk/hostfuncs"
	"github.com/scriptglue/scriptglue-sdk/log"
)

// Option configures an Executor at construction time.
type Option func(*Executor)

// WithHostFunctions replaces the default handler registry, letting an
// embedder add its own operations alongside the bridge set.
func WithHostFunctions(registry *hostfuncs.HandlerRegistry) Option {
	return func(e *Executor) {
		e.registry = registry
	}
}

// WithLogSink routes guest log_message payloads into sink.
func WithLogSink(sink *log.Sink) Option {
	return func(e *Executor) {
		e.sink = sink
	}
}
