package logx

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
)

func TestParseLevel(t *testing.T) {
	cases := map[string]slog.Level{
		"debug": slog.LevelDebug,
		"":      slog.LevelInfo,
		"INFO":  slog.LevelInfo,
		"warn":  slog.LevelWarn,
		"error": slog.LevelError,
	}
	for in, want := range cases {
		got, err := ParseLevel(in)
		if err != nil || got != want {
			t.Errorf("ParseLevel(%q) = %v, %v; want %v", in, got, err, want)
		}
	}
	if _, err := ParseLevel("loud"); err == nil {
		t.Error("ParseLevel(loud) returned nil error")
	}
}

func TestLoggerTagsComponent(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, slog.LevelInfo, "server")
	l.Info("request", "path", "/v1/calculate")
	l.Debug("hidden")

	out := buf.String()
	if !strings.Contains(out, "component=server") {
		t.Fatalf("missing component attr: %q", out)
	}
	if !strings.Contains(out, "path=/v1/calculate") {
		t.Fatalf("missing path attr: %q", out)
	}
	if strings.Contains(out, "hidden") {
		t.Fatalf("debug record written at info level: %q", out)
	}

	buf.Reset()
	l.WithComponent("http").Info("served")
	if out := buf.String(); !strings.Contains(out, "component=server") || !strings.Contains(out, "subcomponent=http") {
		t.Fatalf("child logger attrs = %q", out)
	}
}
