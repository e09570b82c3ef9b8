package bookmark

import (
	"errors"
	"fmt"

	"github.com/dshills/keymark/internal/document"
)

// Errors returned when materializing bookmarks.
var (
	// ErrLineOutOfRange indicates a span's line has no line in the document.
	ErrLineOutOfRange = document.ErrLineOutOfRange

	// ErrInvalidSpan indicates the span's end resolves before its start.
	ErrInvalidSpan = errors.New("invalid span: end precedes start")

	// ErrSpanDeleted indicates an edit removed all of a span's text.
	ErrSpanDeleted = errors.New("span text was deleted")
)

// SpanError reports a span that could not be resolved against a document.
type SpanError struct {
	Start TextLocation
	End   TextLocation
	Err   error
}

// Error implements the error interface.
func (e *SpanError) Error() string {
	return fmt.Sprintf("span %s-%s: %v", e.Start, e.End, e.Err)
}

// Unwrap returns the underlying error.
func (e *SpanError) Unwrap() error {
	return e.Err
}
