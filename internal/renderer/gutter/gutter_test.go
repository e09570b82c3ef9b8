package gutter

import (
	"testing"

	"github.com/gdamore/tcell/v2"
)

type staticSigns map[int][]Sign

func (s staticSigns) SignsForLine(line int) []Sign {
	return s[line]
}

func runes(cells []Cell) string {
	out := make([]rune, len(cells))
	for i, c := range cells {
		out[i] = c.Rune
	}
	return string(out)
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if !cfg.ShowLineNumbers {
		t.Error("ShowLineNumbers should be true by default")
	}
	if !cfg.ShowSigns {
		t.Error("ShowSigns should be true by default")
	}
	if cfg.MinLineNumberWidth != 3 {
		t.Errorf("expected MinLineNumberWidth 3, got %d", cfg.MinLineNumberWidth)
	}
	if cfg.SignColumnWidth != 2 {
		t.Errorf("expected SignColumnWidth 2, got %d", cfg.SignColumnWidth)
	}
}

func TestGutterWidth(t *testing.T) {
	g := New(DefaultConfig())

	// 2 sign columns + 3 digits + separator
	if g.Width() != 6 {
		t.Errorf("expected initial width 6, got %d", g.Width())
	}

	g.SetLineCount(1000)
	if g.Width() != 7 {
		t.Errorf("expected width 7 for 1000 lines, got %d", g.Width())
	}

	g.SetConfig(Config{})
	if g.Width() != 0 {
		t.Errorf("expected width 0 with everything disabled, got %d", g.Width())
	}
	if cells := g.RenderLine(1, true); cells != nil {
		t.Errorf("expected no cells, got %v", cells)
	}
}

func TestRenderLineNumbers(t *testing.T) {
	g := New(Config{ShowLineNumbers: true, MinLineNumberWidth: 3})
	g.SetLineCount(20)

	tests := []struct {
		line   int
		exists bool
		want   string
	}{
		{1, true, "  1 "},
		{12, true, " 12 "},
		{21, false, "  ~ "},
	}

	for _, tt := range tests {
		if got := runes(g.RenderLine(tt.line, tt.exists)); got != tt.want {
			t.Errorf("RenderLine(%d) = %q, want %q", tt.line, got, tt.want)
		}
	}
}

func TestRenderCurrentLineStyle(t *testing.T) {
	g := New(Config{ShowLineNumbers: true, MinLineNumberWidth: 1})
	g.SetLineCount(5)
	g.SetCurrentLine(3)

	current := g.RenderLine(3, true)
	other := g.RenderLine(2, true)
	if current[0].Style == other[0].Style {
		t.Error("current line number should be styled differently")
	}
}

func TestRenderSigns(t *testing.T) {
	red := tcell.StyleDefault.Foreground(tcell.ColorRed)
	g := New(DefaultConfig())
	g.SetLineCount(10)
	g.SetSignProvider(staticSigns{
		2: {{Line: 2, Glyph: '●', Priority: 10, Style: red}},
		4: {
			{Line: 4, Glyph: '●', Priority: 10},
			{Line: 4, Glyph: '▶', Priority: 100},
			{Line: 4, Glyph: '*', Priority: 0},
		},
	})

	if got := runes(g.RenderLine(1, true)); got != "    1 " {
		t.Errorf("line 1 = %q", got)
	}

	cells := g.RenderLine(2, true)
	if got := runes(cells); got != "●   2 " {
		t.Errorf("line 2 = %q", got)
	}
	if cells[0].Style != red {
		t.Error("sign style not applied")
	}

	if got := runes(g.RenderLine(4, true)); got != "▶   4 " {
		t.Errorf("line 4 = %q", got)
	}

	if got := runes(g.RenderLine(2, false)); got != "    ~ " {
		t.Errorf("missing line = %q", got)
	}
}

func TestCountDigits(t *testing.T) {
	tests := []struct {
		n, want int
	}{
		{0, 1}, {9, 1}, {10, 2}, {999, 3}, {1000, 4},
	}

	for _, tt := range tests {
		if got := countDigits(tt.n); got != tt.want {
			t.Errorf("countDigits(%d) = %d, want %d", tt.n, got, tt.want)
		}
	}
}
