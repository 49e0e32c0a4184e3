package log

import (
	"context"
	"encoding/json"
	"log/slog"
)

// Sink receives guest log payloads and replays them into a host logger.
// A payload that is not valid wire JSON is logged raw rather than
// dropped, so a misbehaving guest still leaves a trace.
type Sink struct {
	logger *slog.Logger
	level  slog.Level
}

// SinkOption configures a Sink.
type SinkOption func(*Sink)

// WithMinLevel drops guest records below level.
func WithMinLevel(level slog.Level) SinkOption {
	return func(s *Sink) {
		s.level = level
	}
}

// NewSink builds a sink over logger; nil selects slog.Default.
func NewSink(logger *slog.Logger, opts ...SinkOption) *Sink {
	if logger == nil {
		logger = slog.Default()
	}
	s := &Sink{logger: logger, level: slog.LevelDebug}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Handle lands one guest log payload in the host logger.
func (s *Sink) Handle(ctx context.Context, payload []byte) {
	var msg LogMessageWire
	if err := json.Unmarshal(payload, &msg); err != nil {
		s.logger.Log(ctx, slog.LevelInfo, "guest log (raw)", "payload", string(payload))
		return
	}

	level := parseLevel(msg.Level)
	if level < s.level {
		return
	}

	attrs := make([]slog.Attr, 0, len(msg.Attrs)+1)
	if msg.Instance != "" {
		attrs = append(attrs, slog.String("instance", msg.Instance))
	}
	for _, a := range msg.Attrs {
		attrs = append(attrs, slog.String(a.Key, a.Value))
	}
	s.logger.LogAttrs(ctx, level, msg.Message, attrs...)
}

func parseLevel(name string) slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(name)); err != nil {
		return slog.LevelInfo
	}
	return level
}
