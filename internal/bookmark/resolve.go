package bookmark

import (
	"fmt"

	"github.com/dshills/keymark/internal/document"
)

// LineIndex resolves 1-based line numbers against a live document.
// *document.Document implements LineIndex.
type LineIndex interface {
	LineByNumber(number int) (document.Line, error)
}

// MarkerService creates renderable markers for a single document.
type MarkerService[M any] interface {
	LineIndex

	// Create returns a marker covering length characters from offset.
	Create(offset, length int) (M, error)
}

// Segment is a half-open character range [Offset, Offset+Length).
type Segment struct {
	Offset int
	Length int
}

// EndOffset returns the exclusive end of the segment.
func (s Segment) EndOffset() int {
	return s.Offset + s.Length
}

// String returns a human-readable representation of the segment.
func (s Segment) String() string {
	return fmt.Sprintf("[%d:%d)", s.Offset, s.EndOffset())
}

// ResolveSpan translates [start, end) into a character range of the document
// behind lines. Each end is resolved against its own line. Columns are not
// checked against the line length.
func ResolveSpan(start, end TextLocation, lines LineIndex) (Segment, error) {
	startLine, err := lines.LineByNumber(start.Line)
	if err != nil {
		return Segment{}, &SpanError{Start: start, End: end, Err: err}
	}
	endLine, err := lines.LineByNumber(end.Line)
	if err != nil {
		return Segment{}, &SpanError{Start: start, End: end, Err: err}
	}

	startOffset := startLine.Offset + start.Column - 1
	endOffset := endLine.Offset + end.Column - 1
	if endOffset < startOffset {
		return Segment{}, &SpanError{Start: start, End: end, Err: ErrInvalidSpan}
	}

	return Segment{Offset: startOffset, Length: endOffset - startOffset}, nil
}

// Segment resolves the bookmark's current span against lines.
func (b *Bookmark) Segment(lines LineIndex) (Segment, error) {
	return ResolveSpan(b.location, b.endLocation, lines)
}

// CreateMarker materializes the bookmark's current span as a marker from svc.
// No marker is requested if the span cannot be resolved.
func CreateMarker[M any](b *Bookmark, svc MarkerService[M]) (M, error) {
	seg, err := b.Segment(svc)
	if err != nil {
		var zero M
		return zero, err
	}
	return svc.Create(seg.Offset, seg.Length)
}
