package logging

import (
	"bytes"
	"context"
	"strings"
	"testing"
)

func TestNew_LevelsWriteExpectedOutput(t *testing.T) {
	var buf bytes.Buffer
	log := New(&buf, "debug")
	ctx := context.Background()

	log.Debug(ctx, "dbg", "a", 1)
	log.Info(ctx, "inf", "b", 2)
	log.Warn(ctx, "wrn", "c", 3)
	log.Error(ctx, "err", "d", 4)

	out := buf.String()

	tests := []struct {
		level string
		msg   string
		attr  string
	}{
		{"DEBUG", "dbg", "a=1"},
		{"INFO", "inf", "b=2"},
		{"WARN", "wrn", "c=3"},
		{"ERROR", "err", "d=4"},
	}

	for _, tc := range tests {
		if !strings.Contains(out, "level="+tc.level) {
			t.Fatalf("expected line with level=%s in output:\n%s", tc.level, out)
		}
		if !strings.Contains(out, "msg="+tc.msg) {
			t.Fatalf("expected line with msg=%q in output:\n%s", tc.msg, out)
		}
		if !strings.Contains(out, tc.attr) {
			t.Fatalf("expected attribute %s in output:\n%s", tc.attr, out)
		}
	}
}

func TestNew_DefaultLevelSuppressesDebug(t *testing.T) {
	var buf bytes.Buffer
	log := New(&buf, "whatever")
	ctx := context.Background()

	log.Debug(ctx, "hidden")
	log.Info(ctx, "visible")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Fatalf("debug line should be suppressed at info level:\n%s", out)
	}
	if !strings.Contains(out, "visible") {
		t.Fatalf("info line missing:\n%s", out)
	}
}

func TestWith_AddsAttributes(t *testing.T) {
	var buf bytes.Buffer
	log := New(&buf, "info").With("component", "session")
	log.Info(context.Background(), "hello")

	if !strings.Contains(buf.String(), "component=session") {
		t.Fatalf("expected component attribute in output:\n%s", buf.String())
	}
}
