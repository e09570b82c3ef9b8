package bookmark

import "strings"

// Kind selects a bookmark variant.
type Kind uint8

const (
	// KindBookmark is a plain user bookmark.
	KindBookmark Kind = iota

	// KindBreakpoint is an enabled breakpoint.
	KindBreakpoint

	// KindDisabledBreakpoint is a breakpoint that is currently disabled.
	KindDisabledBreakpoint

	// KindCurrentStatement marks the statement the debugger is stopped at.
	KindCurrentStatement
)

// Kinds lists every kind in declaration order.
var Kinds = []Kind{KindBookmark, KindBreakpoint, KindDisabledBreakpoint, KindCurrentStatement}

// String returns the string representation of the kind.
func (k Kind) String() string {
	switch k {
	case KindBookmark:
		return "bookmark"
	case KindBreakpoint:
		return "breakpoint"
	case KindDisabledBreakpoint:
		return "disabled-breakpoint"
	case KindCurrentStatement:
		return "current-statement"
	default:
		return "unknown"
	}
}

// ParseKind parses a kind name as returned by String.
func ParseKind(s string) (Kind, bool) {
	for _, k := range Kinds {
		if strings.EqualFold(s, k.String()) {
			return k, true
		}
	}
	return KindBookmark, false
}

// IsBreakpoint returns true for enabled and disabled breakpoints.
func (k Kind) IsBreakpoint() bool {
	return k == KindBreakpoint || k == KindDisabledBreakpoint
}

// Image is the icon drawn for a bookmark in the gutter.
// The zero value is "no image".
type Image struct {
	Name  string
	Glyph rune
}

// IsNone returns true if there is no image.
func (i Image) IsNone() bool {
	return i.Glyph == 0
}

// Traits are the per-variant capabilities of a bookmark.
type Traits struct {
	// ZOrder controls paint order; higher values paint on top.
	ZOrder int

	// Visible is false for bookmarks that suppress their own rendering.
	Visible bool

	// CanToggle reports whether the toggle-bookmark command may remove the bookmark.
	CanToggle bool

	// Image is the gutter icon.
	Image Image
}

// DefaultTraits returns the built-in traits for a kind.
func DefaultTraits(k Kind) Traits {
	switch k {
	case KindBreakpoint:
		return Traits{ZOrder: 10, Visible: true, CanToggle: true, Image: Image{Name: "breakpoint", Glyph: '●'}}
	case KindDisabledBreakpoint:
		return Traits{ZOrder: 10, Visible: true, CanToggle: true, Image: Image{Name: "breakpoint-disabled", Glyph: '○'}}
	case KindCurrentStatement:
		return Traits{ZOrder: 100, Visible: true, CanToggle: false, Image: Image{Name: "current-statement", Glyph: '▶'}}
	default:
		return Traits{ZOrder: 0, Visible: true, CanToggle: true}
	}
}

// TraitsTable overrides the traits of some kinds.
// Kinds missing from the table use DefaultTraits.
type TraitsTable map[Kind]Traits

// For returns the traits for a kind.
func (t TraitsTable) For(k Kind) Traits {
	if tr, ok := t[k]; ok {
		return tr
	}
	return DefaultTraits(k)
}
