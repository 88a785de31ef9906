package logging

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newBufferLogger(level LogLevel) (*ToolLogger, *bytes.Buffer) {
	var buf bytes.Buffer
	cfg := DefaultLoggerConfig()
	cfg.Level = level
	cfg.Output = &buf
	cfg.AddSource = false
	return NewLogger(cfg), &buf
}

func lines(t *testing.T, buf *bytes.Buffer) []map[string]any {
	t.Helper()
	var out []map[string]any
	for _, l := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if l == "" {
			continue
		}
		var m map[string]any
		require.NoError(t, json.Unmarshal([]byte(l), &m))
		out = append(out, m)
	}
	return out
}

func TestToolLogger_ContextAndArgs(t *testing.T) {
	l, buf := newBufferLogger(LogLevelDebug)

	l.WithComponent("dispatch").WithSession("sess-1").WithContext("env", "test").
		Info("mcp.tool_call.executed", "call_id", "c1", "duration_ms", 3)

	entries := lines(t, buf)
	require.Len(t, entries, 1)
	e := entries[0]
	assert.Equal(t, "mcp.tool_call.executed", e["msg"])
	assert.Equal(t, "dispatch", e["component"])
	assert.Equal(t, "sess-1", e["session_id"])
	assert.Equal(t, "test", e["env"])
	assert.Equal(t, "c1", e["call_id"])
}

func TestToolLogger_LevelFiltering(t *testing.T) {
	l, buf := newBufferLogger(LogLevelWarn)

	l.Debug("d")
	l.Info("i")
	l.Warn("w")
	l.Error("e")

	entries := lines(t, buf)
	require.Len(t, entries, 2)
	assert.Equal(t, "w", entries[0]["msg"])
	assert.Equal(t, "e", entries[1]["msg"])
}

func TestToolLogger_WithDoesNotMutateParent(t *testing.T) {
	l, buf := newBufferLogger(LogLevelInfo)
	_ = l.WithContext("k", "v")

	l.Info("plain")

	entries := lines(t, buf)
	require.Len(t, entries, 1)
	assert.NotContains(t, entries[0], "k")
}

func TestLogToolCall(t *testing.T) {
	l, buf := newBufferLogger(LogLevelInfo)

	LogToolCall(l, "c1", "srv", "echo", 5*time.Millisecond, nil)
	LogToolCall(l.WithComponent("dispatch"), "c2", "srv", "echo", time.Millisecond, errors.New("boom"))

	entries := lines(t, buf)
	require.Len(t, entries, 2)

	assert.Equal(t, "INFO", entries[0]["level"])
	assert.Equal(t, "mcp.tool_call.executed", entries[0]["msg"])
	assert.Equal(t, "c1", entries[0]["call_id"])
	assert.EqualValues(t, 5, entries[0]["duration_ms"])
	assert.NotContains(t, entries[0], "error")

	assert.Equal(t, "ERROR", entries[1]["level"])
	assert.Equal(t, "dispatch", entries[1]["component"])
	assert.Equal(t, "boom", entries[1]["error"])
}

func TestLogToolCall_NoOp(t *testing.T) {
	LogToolCall(NoOpLogger{}, "c1", "srv", "echo", time.Millisecond, errors.New("boom"))
}

func TestLogLevel_String(t *testing.T) {
	assert.Equal(t, "DEBUG", LogLevelDebug.String())
	assert.Equal(t, "ERROR", LogLevelError.String())
	assert.Equal(t, "UNKNOWN", LogLevel(42).String())
}

func TestNoOpLogger(t *testing.T) {
	var l Logger = NoOpLogger{}
	l.Info("ignored", "k", "v")
}
