package renderer

import (
	"github.com/inconshreveable/log15"

	"github.com/dshills/keymark/internal/bookmark"
	"github.com/dshills/keymark/internal/logging"
	"github.com/dshills/keymark/internal/marker"
)

// HighlighterOption configures a Highlighter.
type HighlighterOption func(*Highlighter)

// WithHighlighterLogger sets the logger used for materialization failures.
func WithHighlighterLogger(l log15.Logger) HighlighterOption {
	return func(h *Highlighter) {
		if l != nil {
			h.logger = l
		}
	}
}

// highlight is the rendering state of one bookmark.
type highlight struct {
	moved  bookmark.SubscriptionID
	redraw bookmark.SubscriptionID
	marker *marker.Marker
	err    error
}

// Highlighter keeps one marker per visible bookmark of a Set.
type Highlighter struct {
	set      *bookmark.Set
	markers  *marker.Service
	styles   Styles
	logger   log15.Logger
	listener bookmark.ListenerID

	highlights map[*bookmark.Bookmark]*highlight
}

// NewHighlighter starts tracking every bookmark in set, now and later.
func NewHighlighter(set *bookmark.Set, markers *marker.Service, styles Styles, opts ...HighlighterOption) *Highlighter {
	h := &Highlighter{
		set:        set,
		markers:    markers,
		styles:     styles,
		logger:     logging.Discard(),
		highlights: make(map[*bookmark.Bookmark]*highlight),
	}

	for _, opt := range opts {
		opt(h)
	}

	for _, b := range set.All() {
		h.track(b)
	}
	h.listener = set.Listen(func(ev bookmark.SetEvent) {
		switch ev.Type {
		case bookmark.BookmarkAdded:
			h.track(ev.Bookmark)
		case bookmark.BookmarkRemoved:
			h.untrack(ev.Bookmark)
		}
	})

	return h
}

// Marker returns the current marker of b.
func (h *Highlighter) Marker(b *bookmark.Bookmark) (*marker.Marker, bool) {
	hl, ok := h.highlights[b]
	if !ok || hl.marker == nil {
		return nil, false
	}
	return hl.marker, true
}

// Err returns the error of b's last materialization, if it failed.
func (h *Highlighter) Err(b *bookmark.Bookmark) error {
	if hl, ok := h.highlights[b]; ok {
		return hl.err
	}
	return nil
}

// Refresh materializes b again.
func (h *Highlighter) Refresh(b *bookmark.Bookmark) {
	hl, ok := h.highlights[b]
	if !ok {
		return
	}

	if hl.marker != nil {
		h.markers.Remove(hl.marker)
		hl.marker = nil
	}
	hl.err = nil

	if !b.IsVisible() {
		return
	}

	m, err := bookmark.CreateMarker[*marker.Marker](b, h.markers)
	if err != nil {
		hl.err = err
		h.logger.Warn("no highlight for bookmark", "bookmark", b.String(), "err", err)
		return
	}

	m.Style = h.styles.For(b.Kind()).Highlight
	m.ZOrder = b.ZOrder()
	m.Tag = b.Kind().String()
	hl.marker = m
}

// Close stops tracking and removes every marker the highlighter created.
func (h *Highlighter) Close() {
	h.set.Unlisten(h.listener)
	for b := range h.highlights {
		h.untrack(b)
	}
}

func (h *Highlighter) track(b *bookmark.Bookmark) {
	if _, ok := h.highlights[b]; ok {
		return
	}

	hl := &highlight{}
	hl.moved = b.Subscribe(h.Refresh)
	hl.redraw = b.SubscribeRedraw(h.Refresh)
	h.highlights[b] = hl
	h.Refresh(b)
}

func (h *Highlighter) untrack(b *bookmark.Bookmark) {
	hl, ok := h.highlights[b]
	if !ok {
		return
	}

	b.Unsubscribe(hl.moved)
	b.Unsubscribe(hl.redraw)
	if hl.marker != nil {
		h.markers.Remove(hl.marker)
	}
	delete(h.highlights, b)
}

// SetStyles replaces the styles and restyles every highlight.
func (h *Highlighter) SetStyles(styles Styles) {
	h.styles = styles
	for b := range h.highlights {
		h.Refresh(b)
	}
}
