package document

import "fmt"

// ChangeHandler is called after an edit has been applied.
type ChangeHandler func(doc *Document, change Change)

// HandlerID identifies a registered change handler.
type HandlerID uint64

type changeSubscription struct {
	id      HandlerID
	handler ChangeHandler
}

// Document is an editable text with a line index.
type Document struct {
	text  []rune
	lines lineIndex

	nextID   HandlerID
	handlers []changeSubscription

	version uint64
}

// New creates a document with the given initial text.
func New(text string) *Document {
	d := &Document{text: []rune(text)}
	d.lines = computeLineIndex(d.text)
	return d
}

// Text returns the full document text.
func (d *Document) Text() string {
	return string(d.text)
}

// TextRange returns the text in [start, end).
func (d *Document) TextRange(start, end int) (string, error) {
	if err := d.checkRange(start, end-start); err != nil {
		return "", err
	}
	return string(d.text[start:end]), nil
}

// Len returns the number of characters in the document.
func (d *Document) Len() int {
	return len(d.text)
}

// Version is incremented by every successful edit.
func (d *Document) Version() uint64 {
	return d.version
}

// LineCount returns the number of lines. An empty document has one line.
func (d *Document) LineCount() int {
	return d.lines.count()
}

// LineByNumber returns the line with the given 1-based number.
func (d *Document) LineByNumber(number int) (Line, error) {
	line, ok := d.lines.line(number, len(d.text))
	if !ok {
		return Line{}, fmt.Errorf("line %d of %d: %w", number, d.lines.count(), ErrLineOutOfRange)
	}
	return line, nil
}

// LineByOffset returns the line containing the given offset.
func (d *Document) LineByOffset(offset int) (Line, error) {
	if offset < 0 || offset > len(d.text) {
		return Line{}, fmt.Errorf("offset %d of %d: %w", offset, len(d.text), ErrOffsetOutOfRange)
	}
	line, _ := d.lines.line(d.lines.lineOf(offset), len(d.text))
	return line, nil
}

// LineText returns the text of a line without its terminator.
func (d *Document) LineText(number int) (string, error) {
	line, err := d.LineByNumber(number)
	if err != nil {
		return "", err
	}
	return string(d.text[line.Offset:line.EndOffset()]), nil
}

// LocationToOffset converts a 1-based line and column into an offset.
// The column is not clamped to the line length.
func (d *Document) LocationToOffset(line, column int) (int, error) {
	l, err := d.LineByNumber(line)
	if err != nil {
		return 0, err
	}
	return l.Offset + column - 1, nil
}

// OffsetToLocation converts an offset into a 1-based line and column.
func (d *Document) OffsetToLocation(offset int) (line, column int, err error) {
	l, err := d.LineByOffset(offset)
	if err != nil {
		return 0, 0, err
	}
	return l.Number, offset - l.Offset + 1, nil
}

// Insert inserts text at the given offset.
func (d *Document) Insert(offset int, text string) error {
	if offset < 0 || offset > len(d.text) {
		return fmt.Errorf("insert at %d of %d: %w", offset, len(d.text), ErrOffsetOutOfRange)
	}
	return d.Replace(offset, 0, text)
}

// Delete removes length characters starting at offset.
func (d *Document) Delete(offset, length int) error {
	return d.Replace(offset, length, "")
}

// Replace replaces length characters starting at offset with text.
func (d *Document) Replace(offset, length int, text string) error {
	if err := d.checkRange(offset, length); err != nil {
		return err
	}

	inserted := []rune(text)
	if length == 0 && len(inserted) == 0 {
		return nil
	}

	change := Change{
		Offset:         offset,
		RemovedText:    string(d.text[offset : offset+length]),
		InsertedText:   text,
		RemovedLength:  length,
		InsertedLength: len(inserted),
	}

	next := make([]rune, 0, len(d.text)-length+len(inserted))
	next = append(next, d.text[:offset]...)
	next = append(next, inserted...)
	next = append(next, d.text[offset+length:]...)

	d.text = next
	d.lines = computeLineIndex(d.text)
	d.version++

	d.notify(change)
	return nil
}

// OnChange registers a handler called after every edit.
func (d *Document) OnChange(handler ChangeHandler) HandlerID {
	d.nextID++
	d.handlers = append(d.handlers, changeSubscription{id: d.nextID, handler: handler})
	return d.nextID
}

// Unsubscribe removes a change handler. It returns false if id is unknown.
func (d *Document) Unsubscribe(id HandlerID) bool {
	for i, s := range d.handlers {
		if s.id == id {
			d.handlers = append(d.handlers[:i:i], d.handlers[i+1:]...)
			return true
		}
	}
	return false
}

func (d *Document) notify(change Change) {
	// Handlers may unsubscribe while being notified.
	handlers := append([]changeSubscription(nil), d.handlers...)
	for _, s := range handlers {
		s.handler(d, change)
	}
}

func (d *Document) checkRange(offset, length int) error {
	if offset < 0 || offset > len(d.text) {
		return fmt.Errorf("offset %d of %d: %w", offset, len(d.text), ErrOffsetOutOfRange)
	}
	if length < 0 || offset+length > len(d.text) {
		return fmt.Errorf("range [%d:%d) of %d: %w", offset, offset+length, len(d.text), ErrRangeInvalid)
	}
	return nil
}
