package bookmark

// Button is a mouse button.
type Button uint8

const (
	// ButtonNone indicates no button.
	ButtonNone Button = iota
	// ButtonLeft is the primary (left) mouse button.
	ButtonLeft
	// ButtonMiddle is the middle mouse button.
	ButtonMiddle
	// ButtonRight is the secondary (right) mouse button.
	ButtonRight
)

// MouseEvent is a click on a bookmark's rendered glyph.
type MouseEvent struct {
	Button Button

	// Line is the 1-based document line the glyph is drawn on.
	Line int

	// Clicks is 1 for a single click, 2 for a double click.
	Clicks int
}
