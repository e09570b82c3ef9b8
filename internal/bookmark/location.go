package bookmark

import "fmt"

// TextLocation is a 1-based line and column in a document's logical text.
// The zero value means "no location".
type TextLocation struct {
	Line   int
	Column int
}

// Loc returns the TextLocation for line and column.
func Loc(line, column int) TextLocation {
	return TextLocation{Line: line, Column: column}
}

// String returns a human-readable representation of the location.
func (l TextLocation) String() string {
	return fmt.Sprintf("(%d,%d)", l.Line, l.Column)
}

// IsEmpty returns true for the zero location.
func (l TextLocation) IsEmpty() bool {
	return l.Line == 0 && l.Column == 0
}

// Compare returns -1 if l < other, 0 if l == other, 1 if l > other.
// Locations are ordered by line, then column.
func (l TextLocation) Compare(other TextLocation) int {
	if l.Line < other.Line {
		return -1
	}
	if l.Line > other.Line {
		return 1
	}
	if l.Column < other.Column {
		return -1
	}
	if l.Column > other.Column {
		return 1
	}
	return 0
}

// Before returns true if l comes before other.
func (l TextLocation) Before(other TextLocation) bool {
	return l.Compare(other) < 0
}

// After returns true if l comes after other.
func (l TextLocation) After(other TextLocation) bool {
	return l.Compare(other) > 0
}
