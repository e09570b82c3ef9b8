package bookmark

import "fmt"

// Option configures a Bookmark at construction.
type Option func(*Bookmark)

// WithKind sets the bookmark variant.
func WithKind(k Kind) Option {
	return func(b *Bookmark) {
		b.kind = k
	}
}

// WithTraits overrides the per-kind traits used by the bookmark.
func WithTraits(t TraitsTable) Option {
	return func(b *Bookmark) {
		b.traits = t
	}
}

// Bookmark is an annotation on a span of a document, tied to a program element.
type Bookmark struct {
	member MemberRef
	kind   Kind
	traits TraitsTable

	location    TextLocation
	endLocation TextLocation

	nextID   SubscriptionID
	modified observerList
	redrawn  observerList
}

// New creates a bookmark for member covering [location, endLocation).
// Construction does not notify anyone.
func New(member MemberRef, location, endLocation TextLocation, opts ...Option) *Bookmark {
	b := &Bookmark{
		member:      member,
		kind:        KindBookmark,
		location:    location,
		endLocation: endLocation,
	}

	for _, opt := range opts {
		opt(b)
	}

	return b
}

// MemberReference returns the program element the bookmark refers to.
func (b *Bookmark) MemberReference() MemberRef {
	return b.member
}

// Kind returns the bookmark variant.
func (b *Bookmark) Kind() Kind {
	return b.kind
}

// Location returns the start of the span.
func (b *Bookmark) Location() TextLocation {
	return b.location
}

// SetLocation moves the start of the span.
// Observers are notified once if the value differs.
func (b *Bookmark) SetLocation(loc TextLocation) {
	if b.location == loc {
		return
	}
	b.location = loc
	b.modified.notify(b)
}

// EndLocation returns the (exclusive) end of the span.
func (b *Bookmark) EndLocation() TextLocation {
	return b.endLocation
}

// SetEndLocation moves the end of the span.
// Observers are notified once if the value differs.
func (b *Bookmark) SetEndLocation(loc TextLocation) {
	if b.endLocation == loc {
		return
	}
	b.endLocation = loc
	b.modified.notify(b)
}

// UpdateLocation moves both ends of the span. If either differs, both are
// assigned and observers are notified exactly once.
func (b *Bookmark) UpdateLocation(location, endLocation TextLocation) {
	if b.location == location && b.endLocation == endLocation {
		return
	}
	b.location = location
	b.endLocation = endLocation
	b.modified.notify(b)
}

// LineNumber returns the line of the span start.
func (b *Bookmark) LineNumber() int {
	return b.location.Line
}

// ZOrder controls paint order when bookmarks overlap.
func (b *Bookmark) ZOrder() int {
	return b.traits.For(b.kind).ZOrder
}

// IsVisible reports whether the bookmark is rendered in the document.
func (b *Bookmark) IsVisible() bool {
	return b.traits.For(b.kind).Visible
}

// CanToggle reports whether the toggle-bookmark command may remove the bookmark.
func (b *Bookmark) CanToggle() bool {
	return b.traits.For(b.kind).CanToggle
}

// Image returns the gutter icon, or the zero Image.
func (b *Bookmark) Image() Image {
	return b.traits.For(b.kind).Image
}

// SetTraits replaces the per-kind traits. Redraw observers are notified if
// the traits of the bookmark's kind changed.
func (b *Bookmark) SetTraits(t TraitsTable) {
	prev := b.traits.For(b.kind)
	b.traits = t
	if b.traits.For(b.kind) != prev {
		b.redraw()
	}
}

// IsEnabled reports whether a breakpoint is enabled.
// Kinds other than breakpoints are always enabled.
func (b *Bookmark) IsEnabled() bool {
	return b.kind != KindDisabledBreakpoint
}

// SetEnabled enables or disables a breakpoint and requests a redraw.
// It returns false, and does nothing, for kinds that are not breakpoints.
func (b *Bookmark) SetEnabled(enabled bool) bool {
	if !b.kind.IsBreakpoint() {
		return false
	}

	next := KindDisabledBreakpoint
	if enabled {
		next = KindBreakpoint
	}
	if next != b.kind {
		b.kind = next
		b.redraw()
	}
	return true
}

// MouseDown handles a button press on the bookmark's glyph.
// It returns true if the event was consumed.
func (b *Bookmark) MouseDown(ev MouseEvent) bool {
	return false
}

// MouseUp handles a button release on the bookmark's glyph.
// Releasing the left button on a breakpoint toggles it.
func (b *Bookmark) MouseUp(ev MouseEvent) bool {
	if ev.Button == ButtonLeft && b.kind.IsBreakpoint() {
		return b.SetEnabled(!b.IsEnabled())
	}
	return false
}

// redraw asks redraw observers to re-render the bookmark without a location change.
func (b *Bookmark) redraw() {
	b.redrawn.notify(b)
}

// Subscribe registers an observer called whenever the span changes.
func (b *Bookmark) Subscribe(fn Observer) SubscriptionID {
	b.nextID++
	b.modified.add(b.nextID, fn)
	return b.nextID
}

// SubscribeRedraw registers an observer called when the bookmark's
// appearance changes without its span moving.
func (b *Bookmark) SubscribeRedraw(fn Observer) SubscriptionID {
	b.nextID++
	b.redrawn.add(b.nextID, fn)
	return b.nextID
}

// Unsubscribe removes an observer registered with Subscribe or SubscribeRedraw.
// It returns false if id is unknown.
func (b *Bookmark) Unsubscribe(id SubscriptionID) bool {
	if b.modified.remove(id) {
		return true
	}
	return b.redrawn.remove(id)
}

// ObserverCount returns the number of registered observers of both kinds.
func (b *Bookmark) ObserverCount() int {
	return b.modified.len() + b.redrawn.len()
}

// String returns a human-readable representation of the bookmark.
func (b *Bookmark) String() string {
	member := "<nil>"
	if b.member != nil {
		member = b.member.String()
	}
	return fmt.Sprintf("%s %s-%s %s", b.kind, b.location, b.endLocation, member)
}
