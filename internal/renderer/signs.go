package renderer

import (
	"github.com/dshills/keymark/internal/bookmark"
	"github.com/dshills/keymark/internal/renderer/gutter"
)

// BookmarkSigns feeds the gutter with the images of visible bookmarks.
type BookmarkSigns struct {
	Set    *bookmark.Set
	Styles Styles
}

// SignsForLine implements gutter.SignProvider.
func (s BookmarkSigns) SignsForLine(line int) []gutter.Sign {
	var signs []gutter.Sign
	for _, b := range s.Set.AtLine(line) {
		img := b.Image()
		if !b.IsVisible() || img.IsNone() {
			continue
		}
		signs = append(signs, gutter.Sign{
			Line:     line,
			Glyph:    img.Glyph,
			Priority: b.ZOrder(),
			Style:    s.Styles.For(b.Kind()).Sign,
		})
	}
	return signs
}
