package logging

import (
	"bytes"
	"strings"
	"testing"

	"github.com/inconshreveable/log15"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want log15.Lvl
	}{
		{"debug", log15.LvlDebug},
		{"DEBUG", log15.LvlDebug},
		{"info", log15.LvlInfo},
		{"warn", log15.LvlWarn},
		{"warning", log15.LvlWarn},
		{"error", log15.LvlError},
		{"", log15.LvlInfo},
		{"bogus", log15.LvlInfo},
	}

	for _, tt := range tests {
		if got := ParseLevel(tt.in); got != tt.want {
			t.Errorf("ParseLevel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestNewFiltersByLevel(t *testing.T) {
	var buf bytes.Buffer
	l := New(Options{Level: "warn", Output: &buf}, "component", "test")

	l.Info("hidden")
	l.Warn("shown", "line", 3)

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("info message should be filtered: %q", out)
	}
	if !strings.Contains(out, "shown") || !strings.Contains(out, "component=test") || !strings.Contains(out, "line=3") {
		t.Errorf("unexpected output %q", out)
	}
}

func TestDiscard(t *testing.T) {
	// Must not panic.
	Discard().Error("dropped", "k", "v")
}
