package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/gdamore/tcell/v2"
	"github.com/inconshreveable/log15"
	"github.com/spf13/cobra"

	"github.com/dshills/keymark/internal/bookmark"
	"github.com/dshills/keymark/internal/config"
	"github.com/dshills/keymark/internal/document"
	"github.com/dshills/keymark/internal/logging"
	"github.com/dshills/keymark/internal/marker"
	"github.com/dshills/keymark/internal/renderer"
	"github.com/dshills/keymark/internal/renderer/gutter"
)

var (
	viewMarks   []string
	viewLogFile string
)

var viewCmd = &cobra.Command{
	Use:   "view <file> [--mark L:C-L:C[@kind] ...]",
	Short: "Show a file with its marks highlighted",
	Long: `Show the file in the terminal with every mark highlighted and its glyph in
the gutter.

Keys:
  q, Esc        quit
  Up, Down      move the current line
  PgUp, PgDn    scroll a page
  t             toggle a bookmark on the current line
  Space         enable or disable the breakpoint on the current line
  o             insert an empty line above the current line
  d             delete the current line

Clicking a breakpoint glyph in the gutter enables or disables it.
The configuration file, if any, is reloaded when it changes. While the
screen is active, log lines go to --log-file or are dropped.`,
	Args: cobra.ExactArgs(1),
	RunE: runView,
}

func init() {
	viewCmd.Flags().StringArrayVarP(&viewMarks, "mark", "m", nil, "Mark to show (repeatable)")
	viewCmd.Flags().StringVar(&viewLogFile, "log-file", "", "Write log lines to this file while the view is open")
}

// screenLogger returns the logger used while tcell owns the terminal.
// Without a log file everything is dropped. The returned close function
// must be called once the screen is finished.
func screenLogger(path string, c config.Config) (log15.Logger, func() error, error) {
	if path == "" {
		return logging.Discard(), func() error { return nil }, nil
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("opening log file: %w", err)
	}
	opts := c.LoggingOptions()
	opts.Output = f
	return logging.New(opts, "cmd", "view"), f.Close, nil
}

func runView(cmd *cobra.Command, args []string) error {
	specs, err := parseMarks(viewMarks)
	if err != nil {
		return err
	}

	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("reading %s: %w", args[0], err)
	}

	viewLogger, closeLog, err := screenLogger(viewLogFile, cfg)
	if err != nil {
		return err
	}
	defer closeLog()
	prev := logger
	logger = viewLogger
	defer func() { logger = prev }()

	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	defer screen.Fini()
	screen.EnableMouse()

	v := newViewer(screen, filepath.Base(args[0]), string(data), specs, cfg)
	defer v.Close()

	if configPath != "" {
		ctx, cancel := context.WithCancel(cmd.Context())
		defer cancel()

		w, err := config.NewWatcher(ctx, configPath,
			config.WithWatcherLogger(logger), config.WithEnv(nil))
		if err != nil {
			logger.Warn("config will not be reloaded", "path", configPath, "err", err)
		} else {
			defer w.Close()
			_ = w.OnReload(func(c config.Config) {
				if err := applyFlags(&c); err != nil {
					logger.Warn("reloaded config ignored", "err", err)
					return
				}
				_ = screen.PostEvent(tcell.NewEventInterrupt(c))
			})
		}
	}

	v.Draw()
	for {
		if v.Handle(screen.PollEvent()) {
			return nil
		}
	}
}

// viewer is the interactive state of the view command.
type viewer struct {
	screen tcell.Screen
	file   string

	doc     *document.Document
	set     *bookmark.Set
	markers *marker.Service
	hl      *renderer.Highlighter
	gutter  *gutter.Gutter
	painter *renderer.Painter
	traits  bookmark.TraitsTable

	current int
	pressed bool
	toggles uint32
}

func newViewer(screen tcell.Screen, file, text string, specs []markSpec, c config.Config) *viewer {
	doc := document.New(text)
	v := &viewer{
		screen:  screen,
		file:    file,
		doc:     doc,
		set:     bookmark.NewSet(doc, bookmark.WithLogger(logger)),
		markers: marker.NewService(doc),
		gutter:  gutter.New(c.GutterOptions()),
		traits:  c.Traits(),
		current: 1,
	}

	styles := renderer.StylesFromConfig(c)
	v.hl = renderer.NewHighlighter(v.set, v.markers, styles, renderer.WithHighlighterLogger(logger))
	v.gutter.SetSignProvider(renderer.BookmarkSigns{Set: v.set, Styles: styles})
	v.gutter.SetLineCount(doc.LineCount())
	v.gutter.SetCurrentLine(v.current)
	v.painter = renderer.NewPainter(doc, v.markers, v.gutter)

	// A bookmark whose span no longer exists is dropped.
	v.set.OnStale(func(b *bookmark.Bookmark, err error) {
		logger.Info("dropping stale bookmark", "bookmark", b.String(), "err", err)
		v.set.Remove(b)
	})

	for _, b := range bookmarks(file, specs, v.traits) {
		v.set.Add(b)
	}
	return v
}

// Close releases the document subscriptions.
func (v *viewer) Close() {
	v.hl.Close()
	v.set.Close()
	v.markers.Close()
}

// Draw repaints the screen.
func (v *viewer) Draw() {
	v.painter.Draw(v.screen)
}

// Handle processes one event and reports whether the viewer should exit.
func (v *viewer) Handle(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case nil:
		return true
	case *tcell.EventKey:
		if v.handleKey(ev) {
			return true
		}
	case *tcell.EventMouse:
		v.handleMouse(ev)
	case *tcell.EventResize:
		v.screen.Sync()
	case *tcell.EventInterrupt:
		if c, ok := ev.Data().(config.Config); ok {
			v.applyConfig(c)
		}
	}
	v.Draw()
	return false
}

func (v *viewer) handleKey(ev *tcell.EventKey) bool {
	_, height := v.screen.Size()

	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyUp:
		v.moveTo(v.current - 1)
	case tcell.KeyDown:
		v.moveTo(v.current + 1)
	case tcell.KeyPgUp:
		v.moveTo(v.current - height)
	case tcell.KeyPgDn:
		v.moveTo(v.current + height)
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q':
			return true
		case 't':
			v.toggleBookmark()
		case ' ':
			v.toggleBreakpoint()
		case 'o':
			v.insertLine()
		case 'd':
			v.deleteLine()
		}
	}
	return false
}

func (v *viewer) handleMouse(ev *tcell.EventMouse) {
	x, y := ev.Position()
	line := v.painter.TopLine() + y

	if ev.Buttons()&tcell.Button1 != 0 {
		if v.pressed {
			return
		}
		v.pressed = true
		if x < v.gutter.Width() {
			if b, ok := v.set.TopAtLine(line); ok {
				b.MouseDown(bookmark.MouseEvent{Button: bookmark.ButtonLeft, Line: line, Clicks: 1})
			}
		}
		return
	}

	if !v.pressed {
		return
	}
	v.pressed = false
	if x >= v.gutter.Width() {
		v.moveTo(line)
		return
	}
	if b, ok := v.set.TopAtLine(line); ok {
		b.MouseUp(bookmark.MouseEvent{Button: bookmark.ButtonLeft, Line: line, Clicks: 1})
	}
}

func (v *viewer) moveTo(line int) {
	if line < 1 {
		line = 1
	}
	if last := v.doc.LineCount(); line > last {
		line = last
	}
	v.current = line
	v.gutter.SetCurrentLine(line)

	_, height := v.screen.Size()
	top := v.painter.TopLine()
	switch {
	case line < top:
		v.painter.SetTopLine(line)
	case height > 0 && line >= top+height:
		v.painter.SetTopLine(line - height + 1)
	}
}

func (v *viewer) toggleBookmark() {
	v.toggles++
	member := bookmark.MemberToken{
		Module: v.file,
		Token:  0x01000000 | v.toggles,
		Name:   fmt.Sprintf("line%d", v.current),
	}
	if _, _, err := v.set.Toggle(v.current, member, bookmark.WithTraits(v.traits)); err != nil {
		logger.Warn("toggle failed", "line", v.current, "err", err)
	}
}

func (v *viewer) toggleBreakpoint() {
	for _, b := range v.set.AtLine(v.current) {
		if b.Kind().IsBreakpoint() {
			b.SetEnabled(!b.IsEnabled())
			return
		}
	}
}

func (v *viewer) insertLine() {
	line, err := v.doc.LineByNumber(v.current)
	if err != nil {
		return
	}
	if err := v.doc.Insert(line.Offset, "\n"); err != nil {
		logger.Warn("insert failed", "err", err)
	}
}

func (v *viewer) deleteLine() {
	line, err := v.doc.LineByNumber(v.current)
	if err != nil || line.TotalLength == 0 {
		return
	}
	if err := v.doc.Delete(line.Offset, line.TotalLength); err != nil {
		logger.Warn("delete failed", "err", err)
	}
	v.moveTo(v.current)
}

func (v *viewer) applyConfig(c config.Config) {
	v.traits = c.Traits()
	for _, b := range v.set.All() {
		b.SetTraits(v.traits)
	}

	styles := renderer.StylesFromConfig(c)
	v.hl.SetStyles(styles)
	v.gutter.SetConfig(c.GutterOptions())
	v.gutter.SetSignProvider(renderer.BookmarkSigns{Set: v.set, Styles: styles})
	logger.Info("configuration applied")
}
