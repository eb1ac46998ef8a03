package logging

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// ZerologLogger adapts zerolog to Logger.
type ZerologLogger struct {
	z zerolog.Logger
}

// NewZerologConsole returns a logger writing colourised, human-readable lines.
func NewZerologConsole(w io.Writer, level string) *ZerologLogger {
	lvl, err := zerolog.ParseLevel(strings.ToLower(level))
	if err != nil || lvl == zerolog.NoLevel {
		lvl = zerolog.InfoLevel
	}
	out := zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339}
	z := zerolog.New(out).Level(lvl).With().Timestamp().Str("service", "diagramkeeper").Logger()
	return &ZerologLogger{z: z}
}

func (l *ZerologLogger) Debug(ctx context.Context, msg string, args ...any) {
	l.emit(ctx, l.z.Debug(), msg, args)
}

func (l *ZerologLogger) Info(ctx context.Context, msg string, args ...any) {
	l.emit(ctx, l.z.Info(), msg, args)
}

func (l *ZerologLogger) Warn(ctx context.Context, msg string, args ...any) {
	l.emit(ctx, l.z.Warn(), msg, args)
}

func (l *ZerologLogger) Error(ctx context.Context, msg string, args ...any) {
	l.emit(ctx, l.z.Error(), msg, args)
}

func (l *ZerologLogger) With(args ...any) Logger {
	c := l.z.With()
	for i := 0; i < len(args); i += 2 {
		key, val := pair(args, i)
		c = c.Interface(key, val)
	}
	return &ZerologLogger{z: c.Logger()}
}

func (l *ZerologLogger) emit(ctx context.Context, e *zerolog.Event, msg string, args []any) {
	for i := 0; i < len(args); i += 2 {
		key, val := pair(args, i)
		if err, ok := val.(error); ok {
			e = e.AnErr(key, err)
			continue
		}
		e = e.Interface(key, val)
	}
	if id := RequestID(ctx); id != "" {
		e = e.Str("request_id", id)
	}
	e.Msg(msg)
}

// pair mirrors slog's handling of a dangling value: it is logged under "!BADKEY".
func pair(args []any, i int) (string, any) {
	if i+1 >= len(args) {
		return "!BADKEY", args[i]
	}
	key, ok := args[i].(string)
	if !ok {
		key = fmt.Sprint(args[i])
	}
	return key, args[i+1]
}
