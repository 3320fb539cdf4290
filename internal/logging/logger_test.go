package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"

	slogctx "github.com/veqryn/slog-context"
)

func decode(t *testing.T, line []byte) map[string]any {
	t.Helper()
	var record map[string]any
	if err := json.Unmarshal(line, &record); err != nil {
		t.Fatalf("invalid JSON log line %q: %v", line, err)
	}
	return record
}

func TestNewLoggerJSON(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(&buf, Options{JSON: true})

	logger.Info("hidden")
	logger.Warn("created bundle", "path", "/tmp/env1/bin/env1.app")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 1 {
		t.Fatalf("got %d log lines, want 1: %q", len(lines), buf.String())
	}
	record := decode(t, []byte(lines[0]))
	for key, want := range map[string]string{
		"msg":       "created bundle",
		"component": "venvapp",
		"path":      "/tmp/env1/bin/env1.app",
	} {
		if record[key] != want {
			t.Errorf("%s = %v, want %q", key, record[key], want)
		}
	}
}

func TestNewLoggerDebug(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(&buf, Options{Debug: true, NoColor: true})

	logger.Debug("resolving interpreter", "link", "bin/python")

	out := buf.String()
	if !strings.Contains(out, "resolving interpreter") || !strings.Contains(out, "link=bin/python") {
		t.Errorf("debug output = %q", out)
	}
	if strings.Contains(out, "\x1b[") {
		t.Errorf("NoColor output contains escape codes: %q", out)
	}
}

func TestContextAttributes(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(&buf, Options{JSON: true})

	ctx := slogctx.Append(context.Background(), "env", "env1")
	logger.WarnContext(ctx, "relaunching")

	if record := decode(t, buf.Bytes()); record["env"] != "env1" {
		t.Errorf("env = %v, want env1", record["env"])
	}
}

func TestSetup(t *testing.T) {
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })

	var buf bytes.Buffer
	ctx := Setup(context.Background(), &buf, Options{JSON: true})

	slogctx.FromCtx(ctx).Warn("from context")
	if !strings.Contains(buf.String(), `"msg":"from context"`) {
		t.Errorf("output = %q", buf.String())
	}
}

func TestFromEnv(t *testing.T) {
	t.Setenv("VENVAPP_DEBUG", "1")
	t.Setenv("VENVAPP_LOG_JSON", "")
	t.Setenv("VENVAPP_NO_COLOR", "true")

	if got, want := FromEnv(), (Options{Debug: true, NoColor: true}); got != want {
		t.Errorf("FromEnv() = %+v, want %+v", got, want)
	}
}
