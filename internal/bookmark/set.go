package bookmark

import (
	"sort"

	"github.com/inconshreveable/log15"

	"github.com/dshills/keymark/internal/document"
	"github.com/dshills/keymark/internal/logging"
)

// SetEventType categorizes a membership change of a Set.
type SetEventType uint8

const (
	// BookmarkAdded indicates a bookmark joined the set.
	BookmarkAdded SetEventType = iota
	// BookmarkRemoved indicates a bookmark left the set.
	BookmarkRemoved
)

// String returns the string representation of the event type.
func (t SetEventType) String() string {
	switch t {
	case BookmarkAdded:
		return "added"
	case BookmarkRemoved:
		return "removed"
	default:
		return "unknown"
	}
}

// SetEvent describes a membership change.
type SetEvent struct {
	Type     SetEventType
	Bookmark *Bookmark
}

// SetListener is called after a bookmark is added or removed.
type SetListener func(ev SetEvent)

// StaleHandler is called when a bookmark's span no longer resolves against
// the bound document. The handler decides whether to drop the bookmark.
type StaleHandler func(b *Bookmark, err error)

// ListenerID identifies a SetListener.
type ListenerID uint64

// SetOption configures a Set.
type SetOption func(*Set)

// WithLogger sets the logger used to report stale bookmarks.
func WithLogger(l log15.Logger) SetOption {
	return func(s *Set) {
		if l != nil {
			s.logger = l
		}
	}
}

// entry is a bookmark plus the offsets its span is anchored at.
type entry struct {
	b   *Bookmark
	seq uint64
	sub SubscriptionID

	anchored   bool
	start, end int
	version    uint64

	relocating bool
}

type listenerEntry struct {
	id ListenerID
	fn SetListener
}

// Set is the collection of bookmarks a document owns.
type Set struct {
	doc       *document.Document
	handlerID document.HandlerID
	logger    log15.Logger

	entries []*entry
	index   map[*Bookmark]*entry
	seq     uint64

	nextListener ListenerID
	listeners    []listenerEntry
	stale        []StaleHandler

	closed bool
}

// NewSet creates a set. If doc is non-nil, bookmark spans follow its edits.
func NewSet(doc *document.Document, opts ...SetOption) *Set {
	s := &Set{
		doc:    doc,
		logger: logging.Discard(),
		index:  make(map[*Bookmark]*entry),
	}

	for _, opt := range opts {
		opt(s)
	}

	if doc != nil {
		s.handlerID = doc.OnChange(s.documentChanged)
	}

	return s
}

// Document returns the bound document, or nil.
func (s *Set) Document() *document.Document {
	return s.doc
}

// Close detaches the set from its document and from every bookmark and
// empties it. A closed set accepts no new bookmarks.
func (s *Set) Close() {
	if s.closed {
		return
	}
	s.closed = true
	if s.doc != nil {
		s.doc.Unsubscribe(s.handlerID)
	}
	for _, e := range s.entries {
		e.b.Unsubscribe(e.sub)
	}
	s.entries = nil
	s.index = make(map[*Bookmark]*entry)
}

// Add inserts b. It returns false if b is already in the set, if the set is
// closed, or if a stale handler removed b while it was being added.
func (s *Set) Add(b *Bookmark) bool {
	if s.closed {
		return false
	}
	if _, ok := s.index[b]; ok {
		return false
	}

	s.seq++
	e := &entry{b: b, seq: s.seq}
	e.sub = b.Subscribe(func(*Bookmark) {
		if !e.relocating {
			s.anchor(e)
		}
	})
	s.entries = append(s.entries, e)
	s.index[b] = e

	s.emit(SetEvent{Type: BookmarkAdded, Bookmark: b})
	if s.Contains(b) {
		s.anchor(e)
	}
	return s.Contains(b)
}

// Remove deletes b. It returns false if b is not in the set.
func (s *Set) Remove(b *Bookmark) bool {
	e, ok := s.index[b]
	if !ok {
		return false
	}

	b.Unsubscribe(e.sub)
	delete(s.index, b)
	for i, other := range s.entries {
		if other == e {
			s.entries = append(s.entries[:i:i], s.entries[i+1:]...)
			break
		}
	}

	s.emit(SetEvent{Type: BookmarkRemoved, Bookmark: b})
	return true
}

// Contains reports whether b is in the set.
func (s *Set) Contains(b *Bookmark) bool {
	_, ok := s.index[b]
	return ok
}

// Len returns the number of bookmarks.
func (s *Set) Len() int {
	return len(s.entries)
}

// All returns the bookmarks in paint order: ascending ZOrder, then insertion order.
func (s *Set) All() []*Bookmark {
	entries := append([]*entry(nil), s.entries...)
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].b.ZOrder() < entries[j].b.ZOrder()
	})

	out := make([]*Bookmark, len(entries))
	for i, e := range entries {
		out[i] = e.b
	}
	return out
}

// AtLine returns the bookmarks whose span starts on line, in paint order.
func (s *Set) AtLine(line int) []*Bookmark {
	var out []*Bookmark
	for _, b := range s.All() {
		if b.LineNumber() == line {
			out = append(out, b)
		}
	}
	return out
}

// TopAtLine returns the visible bookmark painted last on line.
func (s *Set) TopAtLine(line int) (*Bookmark, bool) {
	var top *Bookmark
	for _, b := range s.AtLine(line) {
		if b.IsVisible() {
			top = b
		}
	}
	return top, top != nil
}

// Toggle implements the toggle-bookmark command for line. If the line holds
// bookmarks that can be toggled they are all removed and Toggle returns
// (nil, false). Otherwise a new KindBookmark for member is added covering the
// line's text and returned with true.
func (s *Set) Toggle(line int, member MemberRef, opts ...Option) (*Bookmark, bool, error) {
	removed := false
	for _, b := range s.AtLine(line) {
		if b.CanToggle() {
			s.Remove(b)
			removed = true
		}
	}
	if removed {
		return nil, false, nil
	}

	start := Loc(line, 1)
	end := start
	if s.doc != nil {
		l, err := s.doc.LineByNumber(line)
		if err != nil {
			return nil, false, err
		}
		end = Loc(line, l.Length+1)
	}

	b := New(member, start, end, opts...)
	s.Add(b)
	return b, true, nil
}

// Listen registers fn for membership changes.
func (s *Set) Listen(fn SetListener) ListenerID {
	s.nextListener++
	s.listeners = append(s.listeners, listenerEntry{id: s.nextListener, fn: fn})
	return s.nextListener
}

// Unlisten removes a listener. It returns false if id is unknown.
func (s *Set) Unlisten(id ListenerID) bool {
	for i, l := range s.listeners {
		if l.id == id {
			s.listeners = append(s.listeners[:i:i], s.listeners[i+1:]...)
			return true
		}
	}
	return false
}

// OnStale registers a handler for bookmarks whose span stops resolving.
func (s *Set) OnStale(fn StaleHandler) {
	s.stale = append(s.stale, fn)
}

func (s *Set) emit(ev SetEvent) {
	for _, l := range s.listeners {
		l.fn(ev)
	}
}

// anchor records the offsets of e's span in the bound document.
func (s *Set) anchor(e *entry) {
	if s.doc == nil {
		return
	}

	seg, err := e.b.Segment(s.doc)
	if err != nil {
		e.anchored = false
		s.reportStale(e.b, err)
		return
	}

	e.anchored = true
	e.start = seg.Offset
	e.end = seg.EndOffset()
	e.version = s.doc.Version()
}

func (s *Set) reportStale(b *Bookmark, err error) {
	s.logger.Warn("bookmark span does not resolve", "bookmark", b.String(), "err", err)
	for _, fn := range s.stale {
		fn(b, err)
	}
}

// documentChanged moves every anchored span across the edit.
func (s *Set) documentChanged(doc *document.Document, c document.Change) {
	for _, e := range append([]*entry(nil), s.entries...) {
		if _, ok := s.index[e.b]; !ok || !e.anchored || e.version >= doc.Version() {
			continue
		}

		if spanDeleted(c, e.start, e.end) {
			e.anchored = false
			s.reportStale(e.b, s.deletedError(e.b))
			continue
		}

		start := document.ShiftOffset(c, e.start, document.MoveAfterInsertion)
		end := document.ShiftOffset(c, e.end, document.MoveBeforeInsertion)
		if end < start {
			end = start
		}

		startLine, startCol, err := doc.OffsetToLocation(start)
		if err != nil {
			e.anchored = false
			s.reportStale(e.b, err)
			continue
		}
		endLine, endCol, err := doc.OffsetToLocation(end)
		if err != nil {
			e.anchored = false
			s.reportStale(e.b, err)
			continue
		}

		e.start, e.end = start, end
		e.version = doc.Version()

		e.relocating = true
		e.b.UpdateLocation(Loc(startLine, startCol), Loc(endLine, endCol))
		e.relocating = false
	}
}

// spanDeleted reports whether c removed all of the text in [start, end).
// An empty span only counts as deleted when it sat strictly inside the
// removed range.
func spanDeleted(c document.Change, start, end int) bool {
	if c.RemovedLength == 0 || start < c.Offset || end > c.RemovalEnd() {
		return false
	}
	if start == end {
		return start > c.Offset && start < c.RemovalEnd()
	}
	return true
}

// deletedError explains why b went stale. A span whose line is gone from the
// shortened document reports the resolver's ErrLineOutOfRange.
func (s *Set) deletedError(b *Bookmark) error {
	if _, err := b.Segment(s.doc); err != nil {
		return err
	}
	return &SpanError{Start: b.Location(), End: b.EndLocation(), Err: ErrSpanDeleted}
}
