package document

import (
	"fmt"
	"sort"
)

// Line describes one line of a document.
type Line struct {
	// Number is the 1-based line number.
	Number int

	// Offset is the character offset of the first character of the line.
	Offset int

	// Length is the number of characters excluding the line terminator.
	Length int

	// TotalLength is the number of characters including the line terminator.
	TotalLength int
}

// EndOffset returns the offset just past the last character, before the terminator.
func (l Line) EndOffset() int {
	return l.Offset + l.Length
}

// DelimiterLength returns the length of the line terminator (0, 1 or 2).
func (l Line) DelimiterLength() int {
	return l.TotalLength - l.Length
}

// String returns a human-readable representation of the line.
func (l Line) String() string {
	return fmt.Sprintf("line %d [%d:%d)", l.Number, l.Offset, l.EndOffset())
}

// lineIndex records where every line starts and how long its terminator is.
// starts[0] is always 0; a document always has at least one (possibly empty) line.
type lineIndex struct {
	starts []int
	delims []uint8
}

// computeLineIndex scans text and builds the index.
func computeLineIndex(text []rune) lineIndex {
	idx := lineIndex{
		starts: make([]int, 1, 16),
		delims: make([]uint8, 0, 16),
	}

	for i := 0; i < len(text); i++ {
		switch text[i] {
		case '\n':
			idx.delims = append(idx.delims, 1)
			idx.starts = append(idx.starts, i+1)
		case '\r':
			if i+1 < len(text) && text[i+1] == '\n' {
				idx.delims = append(idx.delims, 2)
				idx.starts = append(idx.starts, i+2)
				i++
			} else {
				idx.delims = append(idx.delims, 1)
				idx.starts = append(idx.starts, i+1)
			}
		}
	}

	// The last line has no terminator.
	idx.delims = append(idx.delims, 0)
	return idx
}

// count returns the number of lines.
func (idx lineIndex) count() int {
	return len(idx.starts)
}

// line returns the line with the given 1-based number. textLen is the total
// document length, needed to size the last line.
func (idx lineIndex) line(number, textLen int) (Line, bool) {
	if number < 1 || number > len(idx.starts) {
		return Line{}, false
	}

	i := number - 1
	start := idx.starts[i]
	end := textLen
	if i+1 < len(idx.starts) {
		end = idx.starts[i+1]
	}
	total := end - start
	return Line{
		Number:      number,
		Offset:      start,
		Length:      total - int(idx.delims[i]),
		TotalLength: total,
	}, true
}

// lineOf returns the 1-based number of the line containing offset.
// An offset that sits between "\r" and "\n" belongs to the line the pair ends.
func (idx lineIndex) lineOf(offset int) int {
	// Largest i with starts[i] <= offset.
	i := sort.Search(len(idx.starts), func(i int) bool {
		return idx.starts[i] > offset
	})
	return i
}
