package logger

import (
	"context"
	"io"
	"log/slog"
	"os"
	"runtime"
)

type contextKey string

const (
	RequestIDKey contextKey = "request_id"
	SessionIDKey contextKey = "session_id"
)

// contextAttrs are copied from the context onto every record that carries one.
var contextAttrs = []contextKey{RequestIDKey, SessionIDKey}

// StackTraceHandler is a handler that adds stack trace to error records
// and extracts request and session ids from context
type StackTraceHandler struct {
	slog.Handler
}

func (h *StackTraceHandler) Handle(ctx context.Context, r slog.Record) error {
	if ctx != nil {
		for _, key := range contextAttrs {
			if v, ok := ctx.Value(key).(string); ok && v != "" {
				r.AddAttrs(slog.String(string(key), v))
			}
		}
	}

	if r.Level >= slog.LevelError {
		buf := make([]byte, 4096)
		n := runtime.Stack(buf, false)
		r.AddAttrs(slog.String("stack_trace", string(buf[:n])))
	}
	return h.Handler.Handle(ctx, r)
}

func (h *StackTraceHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &StackTraceHandler{Handler: h.Handler.WithAttrs(attrs)}
}

func (h *StackTraceHandler) WithGroup(name string) slog.Handler {
	return &StackTraceHandler{Handler: h.Handler.WithGroup(name)}
}

// NewStructuredLogger builds the JSON logger used by the service, writing to w.
func NewStructuredLogger(w io.Writer, level slog.Leveler) *slog.Logger {
	opts := &slog.HandlerOptions{
		Level: level,
	}

	if level.Level() == slog.LevelDebug {
		opts.AddSource = true
	}

	return slog.New(&StackTraceHandler{Handler: slog.NewJSONHandler(w, opts)})
}

// InitStructuredLogger initialize structured logger
func InitStructuredLogger(level slog.Leveler) {
	slog.SetDefault(NewStructuredLogger(os.Stdout, level))
}

// WithSession returns a context carrying the caller's session id.
func WithSession(ctx context.Context, sessionID string) context.Context {
	return context.WithValue(ctx, SessionIDKey, sessionID)
}

// SessionID returns the session id stored in ctx, if any.
func SessionID(ctx context.Context) string {
	v, _ := ctx.Value(SessionIDKey).(string)
	return v
}
