package document

import "fmt"

// ChangeType categorizes a change.
type ChangeType uint8

const (
	// ChangeInsert indicates text was inserted (RemovedText is empty).
	ChangeInsert ChangeType = iota

	// ChangeDelete indicates text was deleted (InsertedText is empty).
	ChangeDelete

	// ChangeReplace indicates text was replaced.
	ChangeReplace
)

// String returns a human-readable representation of the change type.
func (ct ChangeType) String() string {
	switch ct {
	case ChangeInsert:
		return "insert"
	case ChangeDelete:
		return "delete"
	case ChangeReplace:
		return "replace"
	default:
		return "unknown"
	}
}

// Change describes a single edit in pre-edit offsets.
type Change struct {
	// Offset is where the edit starts.
	Offset int

	// RemovedText is the text that was removed (empty for inserts).
	RemovedText string

	// InsertedText is the text that was added (empty for deletes).
	InsertedText string

	// RemovedLength is the number of characters removed.
	RemovedLength int

	// InsertedLength is the number of characters inserted.
	InsertedLength int
}

// Type returns the kind of edit.
func (c Change) Type() ChangeType {
	switch {
	case c.RemovedLength == 0:
		return ChangeInsert
	case c.InsertedLength == 0:
		return ChangeDelete
	default:
		return ChangeReplace
	}
}

// RemovalEnd returns the exclusive end of the removed range in pre-edit offsets.
func (c Change) RemovalEnd() int {
	return c.Offset + c.RemovedLength
}

// Delta returns the length delta of this change.
// Positive means the document grew, negative means it shrank.
func (c Change) Delta() int {
	return c.InsertedLength - c.RemovedLength
}

// String returns a human-readable representation of the change.
func (c Change) String() string {
	switch c.Type() {
	case ChangeInsert:
		return fmt.Sprintf("Insert %q at %d", truncate(c.InsertedText, 20), c.Offset)
	case ChangeDelete:
		return fmt.Sprintf("Delete %q at [%d:%d)", truncate(c.RemovedText, 20), c.Offset, c.RemovalEnd())
	default:
		return fmt.Sprintf("Replace %q with %q at [%d:%d)",
			truncate(c.RemovedText, 10), truncate(c.InsertedText, 10), c.Offset, c.RemovalEnd())
	}
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-3]) + "..."
}

// Movement selects how an anchor behaves when text is inserted exactly at it.
type Movement uint8

const (
	// MoveBeforeInsertion keeps the anchor in front of text inserted at its position.
	MoveBeforeInsertion Movement = iota

	// MoveAfterInsertion moves the anchor behind text inserted at its position.
	MoveAfterInsertion
)

// ShiftOffset returns where an anchor at offset ends up after the change.
//
// Offsets before the change are unaffected. Offsets inside the removed range
// collapse to the change offset, then follow the insertion rule. Offsets at or
// after the end of the removed range shift by the change delta.
func ShiftOffset(c Change, offset int, movement Movement) int {
	switch {
	case offset < c.Offset:
		return offset
	case offset >= c.RemovalEnd() && (offset > c.Offset || c.RemovedLength > 0):
		return offset + c.Delta()
	}

	// Anchor sits at the change offset, or inside the removed range.
	if movement == MoveAfterInsertion {
		return c.Offset + c.InsertedLength
	}
	return c.Offset
}
