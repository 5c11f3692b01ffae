package testutils

import (
	"context"
	"log/slog"
	"sync"
)

// CapturedLog is a single recorded log line with its attributes flattened
// into a map, including attributes attached via Logger.With.
type CapturedLog struct {
	Level   slog.Level
	Message string
	Attrs   map[string]any
}

// LogRecorder is a slog.Handler that keeps every record in memory so tests
// can assert on what a component logged. Handlers derived through WithAttrs
// append to the same record list.
type LogRecorder struct {
	state *recorderState
	attrs []slog.Attr
}

type recorderState struct {
	mu      sync.Mutex
	records []CapturedLog
}

// NewLogRecorder creates an empty LogRecorder.
func NewLogRecorder() *LogRecorder {
	return &LogRecorder{state: &recorderState{}}
}

// Logger returns a slog.Logger that writes into the recorder.
func (h *LogRecorder) Logger() *slog.Logger {
	return slog.New(h)
}

// Enabled implements slog.Handler. Every level is recorded.
func (h *LogRecorder) Enabled(context.Context, slog.Level) bool {
	return true
}

// Handle implements slog.Handler.
func (h *LogRecorder) Handle(_ context.Context, r slog.Record) error {
	attrs := make(map[string]any, r.NumAttrs()+len(h.attrs))
	for _, a := range h.attrs {
		attrs[a.Key] = a.Value.Any()
	}
	r.Attrs(func(a slog.Attr) bool {
		attrs[a.Key] = a.Value.Any()
		return true
	})

	h.state.mu.Lock()
	defer h.state.mu.Unlock()
	h.state.records = append(h.state.records, CapturedLog{
		Level:   r.Level,
		Message: r.Message,
		Attrs:   attrs,
	})
	return nil
}

// WithAttrs implements slog.Handler. The derived handler carries the extra
// attributes but records into the same list.
func (h *LogRecorder) WithAttrs(attrs []slog.Attr) slog.Handler {
	merged := make([]slog.Attr, 0, len(h.attrs)+len(attrs))
	merged = append(merged, h.attrs...)
	merged = append(merged, attrs...)
	return &LogRecorder{state: h.state, attrs: merged}
}

// WithGroup implements slog.Handler. Groups are not used here, so attribute
// keys stay flat.
func (h *LogRecorder) WithGroup(string) slog.Handler {
	return h
}

// Records returns a copy of everything recorded so far.
func (h *LogRecorder) Records() []CapturedLog {
	h.state.mu.Lock()
	defer h.state.mu.Unlock()
	out := make([]CapturedLog, len(h.state.records))
	copy(out, h.state.records)
	return out
}
