// Package renderer keeps bookmark highlights in sync with their bookmarks
// and paints a document, its markers and its gutter onto a tcell screen.
//
// Architecture:
//
//	┌─────────────────────────────────────────┐
//	│  Painter (document + markers + gutter)  │
//	├─────────────────────────────────────────┤
//	│  Highlighter       │  BookmarkSigns     │
//	│  bookmark→marker   │  bookmark→gutter   │
//	├─────────────────────────────────────────┤
//	│  bookmark.Set      │  marker.Service    │
//	└─────────────────────────────────────────┘
//
// The Highlighter subscribes to every bookmark of a Set. When a bookmark is
// added, moved or redrawn its marker is discarded and materialized again; a
// bookmark whose span does not resolve simply has no marker.
//
// Usage:
//
//	set := bookmark.NewSet(doc)
//	markers := marker.NewService(doc)
//	h := renderer.NewHighlighter(set, markers, renderer.DefaultStyles())
//	defer h.Close()
//
//	g := gutter.New(gutter.DefaultConfig())
//	g.SetSignProvider(renderer.BookmarkSigns{Set: set, Styles: renderer.DefaultStyles()})
//	p := renderer.NewPainter(doc, markers, g)
//	p.Draw(screen)
package renderer
