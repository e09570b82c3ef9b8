// Package bookmark implements position-tracking annotations attached to
// spans of a displayed document: user bookmarks, breakpoints and the
// debugger's current-statement marker.
//
// A Bookmark refers to one program element (its MemberRef) and one span of
// text given as a pair of 1-based TextLocations. Moving the span notifies
// every observer registered with Subscribe. Notifications are synchronous,
// carry no data beyond the bookmark itself, and fire only when a location
// actually changes:
//
//	b := bookmark.New(member, bookmark.Loc(3, 5), bookmark.Loc(3, 9))
//	id := b.Subscribe(func(b *bookmark.Bookmark) {
//	    redrawHighlight(b.Location(), b.EndLocation())
//	})
//	b.UpdateLocation(bookmark.Loc(4, 5), bookmark.Loc(4, 9)) // one notification
//	b.Unsubscribe(id)
//
// Materialization:
//
// ResolveSpan translates a span into a half-open character range against a
// LineIndex, and CreateMarker asks a MarkerService for a marker covering that
// range. A span whose line no longer exists fails with ErrLineOutOfRange and a
// span whose end precedes its start fails with ErrInvalidSpan; neither is
// clamped or reordered.
//
// Variants:
//
// Kind selects one of a closed set of variants. Each kind carries Traits
// (paint order, visibility, toggle capability, gutter image) that may be
// overridden with a TraitsTable.
//
// Ownership:
//
// A Set is the collection a document owns. Bound to a document.Document it
// keeps every bookmark's span attached to the same text as the document is
// edited, relocating each bookmark with a single UpdateLocation.
//
// Thread Safety:
//
// Bookmarks and Sets are UI-affine. They perform no locking; all mutation and
// notification happens on the goroutine that owns the document.
package bookmark
