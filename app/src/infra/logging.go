package infra

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
)

type contextKey string

const correlationIDKey contextKey = "correlation_id"

// Logger emits structured JSON log lines via zerolog, tagging each entry
// with the service name and the correlation ID carried in the context.
type Logger struct {
	zl zerolog.Logger
}

// NewLogger constructs a logger writing to out.
func NewLogger(out io.Writer, service string) *Logger {
	if out == nil {
		out = io.Discard
	}
	zl := zerolog.New(out).With().
		Timestamp().
		Str("service", strings.TrimSpace(service)).
		Logger()
	return &Logger{zl: zl}
}

// WithCorrelationID attaches a correlation ID to the context.
func WithCorrelationID(ctx context.Context, id string) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithValue(ctx, correlationIDKey, strings.TrimSpace(id))
}

// CorrelationIDFromContext returns the correlation ID, or "" if absent.
func CorrelationIDFromContext(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	if v, ok := ctx.Value(correlationIDKey).(string); ok {
		return v
	}
	return ""
}

func (l *Logger) Printf(ctx context.Context, format string, v ...any) {
	if l == nil {
		return
	}
	l.withTrace(ctx, l.zl.Info()).Msg(fmt.Sprintf(format, v...))
}

func (l *Logger) Println(ctx context.Context, v ...any) {
	if l == nil {
		return
	}
	l.withTrace(ctx, l.zl.Info()).Msg(strings.TrimSpace(fmt.Sprintln(v...)))
}

func (l *Logger) Errorf(ctx context.Context, format string, v ...any) {
	if l == nil {
		return
	}
	l.withTrace(ctx, l.zl.Error()).Msg(fmt.Sprintf(format, v...))
}

func (l *Logger) Fatalf(ctx context.Context, format string, v ...any) {
	if l == nil {
		os.Exit(1)
	}
	l.withTrace(ctx, l.zl.Fatal()).Msg(fmt.Sprintf(format, v...))
}

func (l *Logger) withTrace(ctx context.Context, e *zerolog.Event) *zerolog.Event {
	if id := CorrelationIDFromContext(ctx); id != "" {
		e = e.Str("trace_id", id)
	}
	return e
}
