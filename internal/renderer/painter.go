package renderer

import (
	"github.com/gdamore/tcell/v2"

	"github.com/dshills/keymark/internal/document"
	"github.com/dshills/keymark/internal/marker"
	"github.com/dshills/keymark/internal/renderer/gutter"
)

// Painter draws a document with its markers and gutter.
type Painter struct {
	doc     *document.Document
	markers *marker.Service
	gutter  *gutter.Gutter

	topLine  int
	tabWidth int
	text     tcell.Style
}

// NewPainter creates a painter. gutter may be nil.
func NewPainter(doc *document.Document, markers *marker.Service, g *gutter.Gutter) *Painter {
	return &Painter{
		doc:      doc,
		markers:  markers,
		gutter:   g,
		topLine:  1,
		tabWidth: 4,
		text:     tcell.StyleDefault,
	}
}

// TopLine returns the first line shown.
func (p *Painter) TopLine() int {
	return p.topLine
}

// SetTopLine scrolls so that line is the first line shown.
func (p *Painter) SetTopLine(line int) {
	if line < 1 {
		line = 1
	}
	if last := p.doc.LineCount(); line > last {
		line = last
	}
	p.topLine = line
}

// SetTabWidth sets how many columns a tab occupies.
func (p *Painter) SetTabWidth(width int) {
	if width > 0 {
		p.tabWidth = width
	}
}

// Draw paints the visible lines onto screen and shows it.
func (p *Painter) Draw(screen tcell.Screen) {
	width, height := screen.Size()
	screen.Clear()

	if p.gutter != nil {
		p.gutter.SetLineCount(p.doc.LineCount())
	}

	for row := 0; row < height; row++ {
		number := p.topLine + row
		line, err := p.doc.LineByNumber(number)
		exists := err == nil

		x := 0
		if p.gutter != nil {
			for _, c := range p.gutter.RenderLine(number, exists) {
				if x >= width {
					break
				}
				screen.SetContent(x, row, c.Rune, nil, c.Style)
				x++
			}
		}

		if exists {
			p.drawLine(screen, line, x, row, width)
		}
	}

	screen.Show()
}

func (p *Painter) drawLine(screen tcell.Screen, line document.Line, x, row, width int) {
	text, err := p.doc.TextRange(line.Offset, line.EndOffset())
	if err != nil {
		return
	}
	markers := p.markers.InRange(line.Offset, line.EndOffset())

	offset := line.Offset
	for _, r := range text {
		style := p.styleAt(markers, offset)
		offset++

		if r == '\t' {
			for i := 0; i < p.tabWidth && x < width; i++ {
				screen.SetContent(x, row, ' ', nil, style)
				x++
			}
			continue
		}
		if x >= width {
			return
		}
		screen.SetContent(x, row, r, nil, style)
		x++
	}
}

// styleAt returns the style of the top-most marker covering offset.
func (p *Painter) styleAt(markers []*marker.Marker, offset int) tcell.Style {
	style := p.text
	for _, m := range markers {
		if m.Contains(offset) {
			style = m.Style
		}
	}
	return style
}
