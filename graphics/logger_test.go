package graphics

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"
)

func TestLoggerDefaultSilent(t *testing.T) {
	l := Logger()
	if l == nil {
		t.Fatal("Logger() returned nil")
	}
	for _, level := range []slog.Level{slog.LevelDebug, slog.LevelInfo, slog.LevelWarn} {
		if l.Enabled(context.Background(), level) {
			t.Errorf("default logger should not be enabled for %v", level)
		}
	}
}

func TestSetLogger(t *testing.T) {
	orig := Logger()
	t.Cleanup(func() { SetLogger(orig) })

	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))

	New(SinkFunc(func(int, int, bool) {})).Rectangle(0, 0, 0, 4, true)
	if !strings.Contains(buf.String(), "empty rectangle") {
		t.Errorf("expected a debug record, got %q", buf.String())
	}

	SetLogger(nil)
	if Logger().Enabled(context.Background(), slog.LevelError) {
		t.Error("SetLogger(nil) should restore the silent logger")
	}
}

func TestSinkFunc(t *testing.T) {
	var got []int
	g := New(SinkFunc(func(x, y int, on bool) {
		got = append(got, x, y)
	}))
	g.Line(1, 2, 1, 2)
	if len(got) != 2 || got[0] != 1 || got[1] != 2 {
		t.Errorf("SinkFunc saw %v", got)
	}
	if g.Sink() == nil {
		t.Error("Sink() returned nil")
	}
}
