// Package marker provides the text-marker service of a document: renderable
// highlight ranges that stay attached to their text while it is edited.
package marker

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
)

// Marker is a highlighted character range of a document.
// Offset and Length are maintained by the Service that created the marker.
type Marker struct {
	id     string
	offset int
	length int

	// Style is applied to the covered characters.
	Style tcell.Style

	// ZOrder controls paint order; higher values paint on top.
	ZOrder int

	// Tag is a free-form label for the marker's owner.
	Tag string

	seq     uint64
	version uint64
}

// ID returns the unique marker identifier.
func (m *Marker) ID() string {
	return m.id
}

// Offset returns the start of the covered range.
func (m *Marker) Offset() int {
	return m.offset
}

// Length returns the number of covered characters.
func (m *Marker) Length() int {
	return m.length
}

// EndOffset returns the exclusive end of the covered range.
func (m *Marker) EndOffset() int {
	return m.offset + m.length
}

// Contains returns true if offset is within the marker.
func (m *Marker) Contains(offset int) bool {
	return offset >= m.offset && offset < m.EndOffset()
}

// String returns a human-readable representation of the marker.
func (m *Marker) String() string {
	return fmt.Sprintf("marker %s [%d:%d)", m.id, m.offset, m.EndOffset())
}
