package marker

import (
	"errors"
	"fmt"
	"sort"

	"github.com/gdamore/tcell/v2"
	"github.com/google/uuid"

	"github.com/dshills/keymark/internal/document"
)

// Errors returned by the marker service.
var (
	// ErrOffsetOutOfRange indicates a marker range outside the document.
	ErrOffsetOutOfRange = errors.New("marker range out of document")

	// ErrClosed indicates the service was closed.
	ErrClosed = errors.New("marker service closed")
)

// Service creates and owns the markers of one document.
type Service struct {
	doc       *document.Document
	handlerID document.HandlerID
	closed    bool

	markers map[string]*Marker
	seq     uint64

	defaultStyle tcell.Style
}

// Option configures a Service.
type Option func(*Service)

// WithDefaultStyle sets the style given to new markers.
func WithDefaultStyle(style tcell.Style) Option {
	return func(s *Service) {
		s.defaultStyle = style
	}
}

// NewService creates a marker service bound to doc.
func NewService(doc *document.Document, opts ...Option) *Service {
	s := &Service{
		doc:          doc,
		markers:      make(map[string]*Marker),
		defaultStyle: tcell.StyleDefault.Reverse(true),
	}

	for _, opt := range opts {
		opt(s)
	}

	s.handlerID = doc.OnChange(s.documentChanged)
	return s
}

// Document returns the document the service is bound to.
func (s *Service) Document() *document.Document {
	return s.doc
}

// LineByNumber resolves a line of the bound document.
func (s *Service) LineByNumber(number int) (document.Line, error) {
	return s.doc.LineByNumber(number)
}

// Create returns a new marker covering length characters from offset.
func (s *Service) Create(offset, length int) (*Marker, error) {
	if s.closed {
		return nil, ErrClosed
	}
	if offset < 0 || length < 0 || offset+length > s.doc.Len() {
		return nil, fmt.Errorf("[%d:%d) of %d: %w", offset, offset+length, s.doc.Len(), ErrOffsetOutOfRange)
	}

	s.seq++
	m := &Marker{
		id:      uuid.New().String(),
		offset:  offset,
		length:  length,
		Style:   s.defaultStyle,
		seq:     s.seq,
		version: s.doc.Version(),
	}
	s.markers[m.id] = m
	return m, nil
}

// Get returns a marker by id.
func (s *Service) Get(id string) (*Marker, bool) {
	m, ok := s.markers[id]
	return m, ok
}

// Remove deletes a marker. It returns false if the marker is unknown.
func (s *Service) Remove(m *Marker) bool {
	if m == nil {
		return false
	}
	if _, ok := s.markers[m.id]; !ok {
		return false
	}
	delete(s.markers, m.id)
	return true
}

// Len returns the number of markers.
func (s *Service) Len() int {
	return len(s.markers)
}

// All returns every marker in paint order: ascending ZOrder, then creation order.
func (s *Service) All() []*Marker {
	out := make([]*Marker, 0, len(s.markers))
	for _, m := range s.markers {
		out = append(out, m)
	}
	sortPaintOrder(out)
	return out
}

// MarkersAt returns the markers containing offset, in paint order.
func (s *Service) MarkersAt(offset int) []*Marker {
	var out []*Marker
	for _, m := range s.markers {
		if m.Contains(offset) {
			out = append(out, m)
		}
	}
	sortPaintOrder(out)
	return out
}

// InRange returns the markers overlapping [start, end), in paint order.
func (s *Service) InRange(start, end int) []*Marker {
	var out []*Marker
	for _, m := range s.markers {
		if m.offset < end && start < m.EndOffset() {
			out = append(out, m)
		}
	}
	sortPaintOrder(out)
	return out
}

// Close detaches the service from its document and drops every marker.
func (s *Service) Close() {
	if s.closed {
		return
	}
	s.closed = true
	s.doc.Unsubscribe(s.handlerID)
	s.markers = make(map[string]*Marker)
}

// documentChanged keeps pre-existing markers attached to their text.
// Markers created while handling this change are already in new coordinates.
func (s *Service) documentChanged(doc *document.Document, c document.Change) {
	for _, m := range s.markers {
		if m.version >= doc.Version() {
			continue
		}
		start := document.ShiftOffset(c, m.offset, document.MoveAfterInsertion)
		end := document.ShiftOffset(c, m.EndOffset(), document.MoveBeforeInsertion)
		if end < start {
			end = start
		}
		m.offset = start
		m.length = end - start
		m.version = doc.Version()
	}
}

func sortPaintOrder(markers []*Marker) {
	sort.Slice(markers, func(i, j int) bool {
		if markers[i].ZOrder != markers[j].ZOrder {
			return markers[i].ZOrder < markers[j].ZOrder
		}
		return markers[i].seq < markers[j].seq
	})
}
