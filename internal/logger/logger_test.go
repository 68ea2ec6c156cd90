package logger

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestColoredHandlerLine(t *testing.T) {
	var buf bytes.Buffer
	l := slog.New(NewColoredHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	l.With("component", "extractor").Info("extracted", "pages", 2, "request_id", "abc")

	out := buf.String()
	assert.Contains(t, out, "INFO")
	assert.Contains(t, out, "extracted")
	assert.Contains(t, out, "[abc]")
	assert.Contains(t, out, `component`+reset+`="extractor"`)
	assert.Contains(t, out, `pages`+reset+`=2`)
}

func TestColoredHandlerLevel(t *testing.T) {
	var buf bytes.Buffer
	l := slog.New(NewColoredHandler(&buf, &slog.HandlerOptions{Level: slog.LevelWarn}))

	l.Info("hidden")
	assert.Empty(t, buf.String())

	l.Warn("shown")
	assert.Contains(t, buf.String(), "shown")
}

func TestColoredHandlerGroup(t *testing.T) {
	var buf bytes.Buffer
	l := slog.New(NewColoredHandler(&buf, nil)).WithGroup("llm")

	l.Info("call", "model", "m")

	assert.Contains(t, buf.String(), "llm.model")
}

func TestSetupProductionWritesJSON(t *testing.T) {
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })

	var buf bytes.Buffer
	SetupWriter("production", &buf)
	Component("server").Info("listening", "port", "3000")

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "listening", line["msg"])
	assert.Equal(t, "server", line["component"])
	assert.Equal(t, "3000", line["port"])
}
