package logging

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func newTestLogger(t *testing.T) (*SlogLogger, *bytes.Buffer) {
	t.Helper()
	var buf bytes.Buffer
	h := slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})
	return NewSlogLogger(slog.New(h)), &buf
}

func TestSlogLogger_Levels(t *testing.T) {
	log, buf := newTestLogger(t)
	ctx := context.Background()

	log.Debug(ctx, "dbg", "a", 1)
	log.Info(ctx, "inf", "b", 2)
	log.Warn(ctx, "wrn", "c", 3)
	log.Error(ctx, "err", "d", 4)

	out := buf.String()
	for _, want := range []string{
		"level=DEBUG", "msg=dbg", "a=1",
		"level=INFO", "msg=inf", "b=2",
		"level=WARN", "msg=wrn", "c=3",
		"level=ERROR", "msg=err", "d=4",
	} {
		assert.Contains(t, out, want)
	}
}

func TestSlogLogger_WithAndRequestID(t *testing.T) {
	log, buf := newTestLogger(t)
	ctx := WithRequestID(context.Background(), "req-42")

	log.With("module", "files").Info(ctx, "uploaded", "file_id", "file_001")

	out := buf.String()
	for _, want := range []string{"module=files", "file_id=file_001", "request_id=req-42"} {
		assert.Contains(t, out, want)
	}
}

func TestRequestID_Absent(t *testing.T) {
	assert.Empty(t, RequestID(context.Background()))
}

func TestNew_SelectsBackend(t *testing.T) {
	var buf bytes.Buffer
	l := New("json", "info", &buf)
	_, isSlog := l.(*SlogLogger)
	assert.True(t, isSlog)

	l.Debug(context.Background(), "hidden")
	assert.Empty(t, buf.String(), "debug must be filtered at info level")

	l.Info(context.Background(), "shown")
	assert.True(t, strings.HasPrefix(buf.String(), "{"), "json handler expected, got %q", buf.String())

	_, isZero := New("console", "debug", &buf).(*ZerologLogger)
	assert.True(t, isZero)
}

func TestZerologLogger_WritesFields(t *testing.T) {
	var buf bytes.Buffer
	l := NewZerologConsole(&buf, "debug").With("module", "versions")
	ctx := WithRequestID(context.Background(), "abc")

	l.Error(ctx, "restore failed", "err", errors.New("boom"), "tenant", "acme")

	out := buf.String()
	for _, want := range []string{"restore failed", "boom", "acme", "versions", "abc"} {
		assert.Contains(t, out, want)
	}
}

func TestNop_DoesNotPanic(t *testing.T) {
	var l Logger = Nop{}
	l.With("k", "v").Info(context.TODO(), "x")
}
