// Package document provides the live text document that bookmarks and markers
// are attached to.
//
// A Document stores its text as characters (runes) and maintains a line index
// so that 1-based line numbers can be resolved to character offsets:
//
//	doc := document.New("package main\n\nfunc main() {}\n")
//	line, err := doc.LineByNumber(3)
//	// line.Offset == 14
//
// Coordinate Systems:
//
//   - Offset: 0-based character offset into the document text
//   - Location: 1-based line and 1-based column
//
// Line terminators ("\n", "\r\n" and "\r") belong to the line they end and
// are counted in Line.TotalLength but not in Line.Length.
//
// Edits:
//
// Insert, Delete and Replace modify the text and synchronously notify every
// change handler registered with OnChange, in registration order. Handlers
// receive a Change describing the edit in pre-edit offsets. ShiftOffset moves
// an anchor offset across a Change so that owners (bookmark sets, marker
// services) can keep their positions attached to the same text.
//
// Thread Safety:
//
// A Document is owned by the UI thread. It performs no internal locking and
// must not be shared between goroutines without external synchronization.
package document
