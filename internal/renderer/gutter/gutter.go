// Package gutter provides gutter rendering for the document view.
// The gutter is the area to the left of the text that displays bookmark
// and breakpoint signs and line numbers.
package gutter

import (
	"strconv"

	"github.com/gdamore/tcell/v2"
)

// Config holds gutter configuration.
type Config struct {
	// ShowLineNumbers enables line number display.
	ShowLineNumbers bool

	// MinLineNumberWidth is the minimum width for line numbers.
	MinLineNumberWidth int

	// ShowSigns enables the sign column.
	ShowSigns bool

	// SignColumnWidth is the width of the sign column.
	SignColumnWidth int
}

// DefaultConfig returns the default gutter configuration.
func DefaultConfig() Config {
	return Config{
		ShowLineNumbers:    true,
		MinLineNumberWidth: 3,
		ShowSigns:          true,
		SignColumnWidth:    2,
	}
}

// Sign is a glyph displayed in the sign column.
type Sign struct {
	// Line is the 1-based document line.
	Line int

	// Glyph is the rune drawn in the sign column.
	Glyph rune

	// Priority decides which sign is shown when several share a line.
	Priority int

	// Style is applied to the glyph.
	Style tcell.Style
}

// SignProvider provides signs for the gutter.
type SignProvider interface {
	// SignsForLine returns signs for a given 1-based line.
	SignsForLine(line int) []Sign
}

// Cell is a single gutter cell.
type Cell struct {
	Rune  rune
	Style tcell.Style
}

// Gutter lays out the gutter cells of each line.
type Gutter struct {
	config Config

	width       int
	lineCount   int
	currentLine int

	numberStyle  tcell.Style
	currentStyle tcell.Style

	signProvider SignProvider
}

// New creates a new gutter with the given configuration.
func New(config Config) *Gutter {
	return &Gutter{
		config:       config,
		width:        calculateWidth(config, 1),
		numberStyle:  tcell.StyleDefault.Dim(true),
		currentStyle: tcell.StyleDefault.Bold(true),
	}
}

// Width returns the current gutter width.
func (g *Gutter) Width() int {
	return g.width
}

// Config returns the current configuration.
func (g *Gutter) Config() Config {
	return g.config
}

// SetConfig updates the gutter configuration.
func (g *Gutter) SetConfig(config Config) {
	g.config = config
	g.width = calculateWidth(config, g.lineCount)
}

// SetLineCount updates the total line count (affects width calculation).
func (g *Gutter) SetLineCount(count int) {
	g.lineCount = count
	g.width = calculateWidth(g.config, count)
}

// SetCurrentLine updates the 1-based line shown as current.
func (g *Gutter) SetCurrentLine(line int) {
	g.currentLine = line
}

// SetSignProvider sets the sign provider.
func (g *Gutter) SetSignProvider(sp SignProvider) {
	g.signProvider = sp
}

// RenderLine renders the gutter for a 1-based line.
// exists is false for rows past the end of the document.
func (g *Gutter) RenderLine(line int, exists bool) []Cell {
	if g.width == 0 {
		return nil
	}

	cells := make([]Cell, g.width)
	for i := range cells {
		cells[i] = Cell{Rune: ' ', Style: tcell.StyleDefault}
	}

	col := 0

	if g.config.ShowSigns && g.config.SignColumnWidth > 0 {
		if exists {
			if sign, ok := g.topSign(line); ok {
				cells[col] = Cell{Rune: sign.Glyph, Style: sign.Style}
			}
		}
		col += g.config.SignColumnWidth
	}

	if g.config.ShowLineNumbers {
		numWidth := g.lineNumberWidth()
		text := "~"
		style := g.numberStyle
		if exists {
			text = strconv.Itoa(line)
			if line == g.currentLine {
				style = g.currentStyle
			}
		}

		// Right-align
		pad := numWidth - len(text)
		for i, r := range text {
			if c := col + pad + i; c < g.width-1 {
				cells[c] = Cell{Rune: r, Style: style}
			}
		}
	}

	return cells
}

// topSign returns the highest priority sign for line.
// Ties keep the sign listed last, which is the one painted on top.
func (g *Gutter) topSign(line int) (Sign, bool) {
	if g.signProvider == nil {
		return Sign{}, false
	}

	signs := g.signProvider.SignsForLine(line)
	if len(signs) == 0 {
		return Sign{}, false
	}

	best := signs[0]
	for _, s := range signs[1:] {
		if s.Priority >= best.Priority {
			best = s
		}
	}
	return best, true
}

// lineNumberWidth returns the width for line numbers.
func (g *Gutter) lineNumberWidth() int {
	return numberWidth(g.config, g.lineCount)
}

func numberWidth(config Config, lineCount int) int {
	digits := countDigits(lineCount)
	if digits < config.MinLineNumberWidth {
		digits = config.MinLineNumberWidth
	}
	return digits
}

// calculateWidth calculates the total gutter width.
func calculateWidth(config Config, lineCount int) int {
	width := 0

	if config.ShowSigns {
		width += config.SignColumnWidth
	}

	if config.ShowLineNumbers {
		width += numberWidth(config, lineCount)
	}

	// Add separator
	if width > 0 {
		width++
	}

	return width
}

// countDigits returns the number of digits needed to display a number.
func countDigits(n int) int {
	if n <= 0 {
		return 1
	}
	digits := 0
	for n > 0 {
		digits++
		n /= 10
	}
	return digits
}
