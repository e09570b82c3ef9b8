package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dshills/keymark/internal/bookmark"
	"github.com/dshills/keymark/internal/config"
)

func newTestViewer(t *testing.T, marks ...string) (*viewer, tcell.SimulationScreen) {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, screen.Init())
	screen.SetSize(40, 10)
	t.Cleanup(screen.Fini)

	specs, err := parseMarks(marks)
	require.NoError(t, err)

	v := newViewer(screen, "Program.cs", sample, specs, config.Default())
	t.Cleanup(v.Close)
	v.Draw()
	return v, screen
}

func key(k tcell.Key) *tcell.EventKey {
	return tcell.NewEventKey(k, 0, tcell.ModNone)
}

func runeKey(r rune) *tcell.EventKey {
	return tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone)
}

func glyph(s tcell.SimulationScreen, row int) rune {
	r, _, _, _ := s.GetContent(0, row)
	return r
}

func TestViewerShowsMarks(t *testing.T) {
	_, screen := newTestViewer(t, "3:5-3:24@breakpoint", "1:1-1:7")

	assert.Equal(t, '●', glyph(screen, 2))
	assert.Equal(t, ' ', glyph(screen, 0), "plain bookmarks have no glyph")
}

func TestViewerQuit(t *testing.T) {
	v, _ := newTestViewer(t)

	assert.False(t, v.Handle(key(tcell.KeyDown)))
	assert.True(t, v.Handle(runeKey('q')))
	assert.True(t, v.Handle(key(tcell.KeyEscape)))
	assert.True(t, v.Handle(nil))
}

func TestViewerBreakpointKey(t *testing.T) {
	v, screen := newTestViewer(t, "3:5-3:24@breakpoint")

	v.Handle(key(tcell.KeyDown))
	v.Handle(key(tcell.KeyDown))
	require.Equal(t, 3, v.current)

	v.Handle(runeKey(' '))
	assert.Equal(t, '○', glyph(screen, 2))

	v.Handle(runeKey(' '))
	assert.Equal(t, '●', glyph(screen, 2))
}

func TestViewerGutterClick(t *testing.T) {
	v, screen := newTestViewer(t, "3:5-3:24@breakpoint")

	v.Handle(tcell.NewEventMouse(0, 2, tcell.Button1, tcell.ModNone))
	v.Handle(tcell.NewEventMouse(0, 2, tcell.ButtonNone, tcell.ModNone))
	assert.Equal(t, '○', glyph(screen, 2))

	// A click in the text area only moves the current line.
	v.Handle(tcell.NewEventMouse(10, 1, tcell.Button1, tcell.ModNone))
	v.Handle(tcell.NewEventMouse(10, 1, tcell.ButtonNone, tcell.ModNone))
	assert.Equal(t, 2, v.current)
	assert.Equal(t, '○', glyph(screen, 2))
}

func TestViewerToggleBookmark(t *testing.T) {
	v, _ := newTestViewer(t)

	v.Handle(runeKey('t'))
	require.Equal(t, 1, v.set.Len())
	b := v.set.All()[0]
	assert.Equal(t, bookmark.Loc(1, 1), b.Location())
	assert.Equal(t, bookmark.Loc(1, 19), b.EndLocation())
	_, ok := v.hl.Marker(b)
	assert.True(t, ok)

	v.Handle(runeKey('t'))
	assert.Equal(t, 0, v.set.Len())
}

func TestViewerEditsMoveMarks(t *testing.T) {
	v, screen := newTestViewer(t, "3:5-3:24@breakpoint")
	bp := v.set.All()[0]

	v.Handle(runeKey('o'))
	assert.Equal(t, bookmark.Loc(4, 5), bp.Location())
	assert.Equal(t, bookmark.Loc(4, 24), bp.EndLocation())
	assert.Equal(t, '●', glyph(screen, 3))

	v.Handle(runeKey('d'))
	assert.Equal(t, bookmark.Loc(3, 5), bp.Location())
	assert.Equal(t, '●', glyph(screen, 2))

	m, ok := v.hl.Marker(bp)
	require.True(t, ok)
	text, err := v.doc.TextRange(m.Offset(), m.EndOffset())
	require.NoError(t, err)
	assert.Equal(t, "Console.WriteLine()", text)
}

func TestViewerAppliesReloadedConfig(t *testing.T) {
	v, screen := newTestViewer(t, "3:5-3:24@breakpoint")

	c := config.Default()
	c.Gutter.ShowSigns = false
	c.Styles = map[string]config.StyleSpec{"breakpoint": {Background: "blue"}}
	v.Handle(tcell.NewEventInterrupt(c))

	assert.Equal(t, ' ', glyph(screen, 2))
	bp := v.set.All()[0]
	m, ok := v.hl.Marker(bp)
	require.True(t, ok)
	assert.Equal(t, tcell.StyleDefault.Background(tcell.ColorBlue), m.Style)
}

func TestViewerAppliesReloadedTraits(t *testing.T) {
	v, screen := newTestViewer(t, "3:5-3:24@breakpoint")
	require.Equal(t, '●', glyph(screen, 2))

	c := config.Default()
	c.Kinds = map[string]config.KindOverride{
		"breakpoint": {Glyph: "B"},
		"bookmark":   {Glyph: "M"},
	}
	v.Handle(tcell.NewEventInterrupt(c))
	assert.Equal(t, 'B', glyph(screen, 2))

	// Bookmarks toggled after the reload use the new traits too.
	v.Handle(runeKey('t'))
	assert.Equal(t, 'M', glyph(screen, 0))
}

func TestViewerDropsDeletedMarks(t *testing.T) {
	v, screen := newTestViewer(t, "3:5-3:24@breakpoint")
	bp := v.set.All()[0]

	v.Handle(key(tcell.KeyDown))
	v.Handle(key(tcell.KeyDown))
	v.Handle(runeKey('d'))

	assert.Equal(t, 0, v.set.Len())
	_, ok := v.hl.Marker(bp)
	assert.False(t, ok)
	assert.Equal(t, 0, v.markers.Len())
	assert.Equal(t, ' ', glyph(screen, 2))
}

func TestScreenLoggerDiscardsByDefault(t *testing.T) {
	l, closeLog, err := screenLogger("", config.Default())
	require.NoError(t, err)
	l.Error("not written anywhere")
	assert.NoError(t, closeLog())
}

func TestScreenLoggerWritesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "view.log")
	c := config.Default()
	c.Log.Level = "info"

	l, closeLog, err := screenLogger(path, c)
	require.NoError(t, err)
	l.Info("configuration applied", "kind", "breakpoint")
	l.Debug("below level")
	require.NoError(t, closeLog())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "configuration applied")
	assert.Contains(t, string(data), "cmd=view")
	assert.NotContains(t, string(data), "below level")
}

func TestScreenLoggerBadPath(t *testing.T) {
	_, _, err := screenLogger(filepath.Join(t.TempDir(), "missing", "view.log"), config.Default())
	assert.Error(t, err)
}
