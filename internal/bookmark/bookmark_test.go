package bookmark

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testMember = MemberToken{Module: "System.dll", Token: 0x06000123, Name: "Console.WriteLine"}

// counter returns an observer and a pointer to the number of times it ran.
func counter() (Observer, *int) {
	n := 0
	return func(*Bookmark) { n++ }, &n
}

func TestNewDoesNotNotify(t *testing.T) {
	b := New(testMember, Loc(3, 5), Loc(3, 9))

	assert.Equal(t, testMember, b.MemberReference())
	assert.Equal(t, Loc(3, 5), b.Location())
	assert.Equal(t, Loc(3, 9), b.EndLocation())
	assert.Equal(t, 3, b.LineNumber())
	assert.Equal(t, KindBookmark, b.Kind())
	assert.Equal(t, 0, b.ObserverCount())
}

func TestBaseDefaults(t *testing.T) {
	b := New(testMember, Loc(1, 1), Loc(1, 1))

	assert.Equal(t, 0, b.ZOrder())
	assert.True(t, b.IsVisible())
	assert.True(t, b.CanToggle())
	assert.True(t, b.Image().IsNone())
	assert.True(t, b.IsEnabled())
}

func TestSetLocationNotifiesOnce(t *testing.T) {
	b := New(testMember, Loc(1, 1), Loc(1, 4))
	fn, n := counter()
	b.Subscribe(fn)

	b.SetLocation(Loc(2, 1))
	assert.Equal(t, 1, *n)
	assert.Equal(t, 2, b.LineNumber())

	b.SetLocation(Loc(2, 1))
	assert.Equal(t, 1, *n, "setting the same value must not notify")
}

func TestSetEndLocationIndependent(t *testing.T) {
	b := New(testMember, Loc(1, 1), Loc(1, 4))
	fn, n := counter()
	b.Subscribe(fn)

	b.SetEndLocation(Loc(1, 8))
	assert.Equal(t, 1, *n)
	assert.Equal(t, Loc(1, 1), b.Location())

	b.SetLocation(Loc(1, 2))
	assert.Equal(t, 2, *n)

	b.SetEndLocation(Loc(1, 8))
	assert.Equal(t, 2, *n)
}

func TestUpdateLocation(t *testing.T) {
	tests := []struct {
		name  string
		loc   TextLocation
		end   TextLocation
		calls int
	}{
		{"neither changes", Loc(3, 5), Loc(3, 9), 0},
		{"start changes", Loc(4, 5), Loc(3, 9), 1},
		{"end changes", Loc(3, 5), Loc(5, 1), 1},
		{"both change", Loc(7, 1), Loc(8, 2), 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := New(testMember, Loc(3, 5), Loc(3, 9))
			fn, n := counter()
			b.Subscribe(fn)

			b.UpdateLocation(tt.loc, tt.end)

			assert.Equal(t, tt.calls, *n)
			assert.Equal(t, tt.loc, b.Location())
			assert.Equal(t, tt.end, b.EndLocation())
		})
	}
}

func TestObserverSeesConsistentState(t *testing.T) {
	b := New(testMember, Loc(3, 5), Loc(3, 9))

	var seen []TextLocation
	b.Subscribe(func(b *Bookmark) {
		assert.Equal(t, b.Location().Line, b.LineNumber())
		seen = append(seen, b.Location(), b.EndLocation())
	})

	b.UpdateLocation(Loc(10, 2), Loc(11, 3))
	assert.Equal(t, []TextLocation{Loc(10, 2), Loc(11, 3)}, seen)
}

func TestMulticastAndUnsubscribe(t *testing.T) {
	b := New(testMember, Loc(1, 1), Loc(1, 2))

	var order []string
	first := b.Subscribe(func(*Bookmark) { order = append(order, "first") })
	b.Subscribe(func(*Bookmark) { order = append(order, "second") })

	b.SetLocation(Loc(2, 1))
	assert.Equal(t, []string{"first", "second"}, order)

	require.True(t, b.Unsubscribe(first))
	assert.False(t, b.Unsubscribe(first))

	order = nil
	b.SetLocation(Loc(3, 1))
	assert.Equal(t, []string{"second"}, order)
}

func TestUnsubscribeInsideObserver(t *testing.T) {
	b := New(testMember, Loc(1, 1), Loc(1, 2))

	calls := 0
	var id SubscriptionID
	id = b.Subscribe(func(b *Bookmark) {
		calls++
		b.Unsubscribe(id)
	})
	other, n := counter()
	b.Subscribe(other)

	b.SetLocation(Loc(2, 1))
	b.SetLocation(Loc(3, 1))

	assert.Equal(t, 1, calls)
	assert.Equal(t, 2, *n)
}

func TestVariantTraits(t *testing.T) {
	tests := []struct {
		kind      Kind
		zOrder    int
		canToggle bool
		glyph     rune
	}{
		{KindBookmark, 0, true, 0},
		{KindBreakpoint, 10, true, '●'},
		{KindDisabledBreakpoint, 10, true, '○'},
		{KindCurrentStatement, 100, false, '▶'},
	}

	for _, tt := range tests {
		t.Run(tt.kind.String(), func(t *testing.T) {
			b := New(testMember, Loc(1, 1), Loc(1, 1), WithKind(tt.kind))
			assert.Equal(t, tt.zOrder, b.ZOrder())
			assert.Equal(t, tt.canToggle, b.CanToggle())
			assert.Equal(t, tt.glyph, b.Image().Glyph)
			assert.True(t, b.IsVisible())
		})
	}
}

func TestTraitsOverride(t *testing.T) {
	table := TraitsTable{
		KindDisabledBreakpoint: {ZOrder: 5, Visible: false, CanToggle: false},
	}

	b := New(testMember, Loc(1, 1), Loc(1, 1), WithKind(KindDisabledBreakpoint), WithTraits(table))
	assert.Equal(t, 5, b.ZOrder())
	assert.False(t, b.IsVisible())
	assert.False(t, b.CanToggle())

	// Kinds missing from the table keep their defaults.
	b2 := New(testMember, Loc(1, 1), Loc(1, 1), WithKind(KindBreakpoint), WithTraits(table))
	assert.Equal(t, 10, b2.ZOrder())
}

func TestSetTraitsRedraws(t *testing.T) {
	b := New(testMember, Loc(1, 1), Loc(1, 5), WithKind(KindBreakpoint))
	redrawn, n := counter()
	b.SubscribeRedraw(redrawn)

	glyph := DefaultTraits(KindBreakpoint)
	glyph.Image = Image{Name: "breakpoint", Glyph: 'B'}
	b.SetTraits(TraitsTable{KindBreakpoint: glyph})
	assert.Equal(t, 'B', b.Image().Glyph)
	assert.Equal(t, 1, *n)

	// Only the bookmark's own kind matters.
	b.SetTraits(TraitsTable{KindBreakpoint: glyph, KindBookmark: {ZOrder: 7}})
	assert.Equal(t, 1, *n)

	b.SetTraits(nil)
	assert.Equal(t, '●', b.Image().Glyph)
	assert.Equal(t, 2, *n)
}

func TestSetEnabledRedraws(t *testing.T) {
	b := New(testMember, Loc(1, 1), Loc(1, 5), WithKind(KindBreakpoint))
	moved, nMoved := counter()
	redrawn, nRedrawn := counter()
	b.Subscribe(moved)
	b.SubscribeRedraw(redrawn)

	require.True(t, b.SetEnabled(false))
	assert.Equal(t, KindDisabledBreakpoint, b.Kind())
	assert.False(t, b.IsEnabled())
	assert.Equal(t, 1, *nRedrawn)
	assert.Equal(t, 0, *nMoved, "redraw must not look like a move")

	require.True(t, b.SetEnabled(false))
	assert.Equal(t, 1, *nRedrawn, "no redraw without a state change")

	plain := New(testMember, Loc(1, 1), Loc(1, 5))
	assert.False(t, plain.SetEnabled(false))
	assert.Equal(t, KindBookmark, plain.Kind())
}

func TestMouseHooks(t *testing.T) {
	plain := New(testMember, Loc(1, 1), Loc(1, 5))
	assert.False(t, plain.MouseDown(MouseEvent{Button: ButtonLeft, Line: 1, Clicks: 1}))
	assert.False(t, plain.MouseUp(MouseEvent{Button: ButtonLeft, Line: 1, Clicks: 1}))

	bp := New(testMember, Loc(1, 1), Loc(1, 5), WithKind(KindBreakpoint))
	assert.False(t, bp.MouseDown(MouseEvent{Button: ButtonLeft}))
	assert.False(t, bp.MouseUp(MouseEvent{Button: ButtonRight}))
	assert.Equal(t, KindBreakpoint, bp.Kind())

	assert.True(t, bp.MouseUp(MouseEvent{Button: ButtonLeft}))
	assert.Equal(t, KindDisabledBreakpoint, bp.Kind())
	assert.True(t, bp.MouseUp(MouseEvent{Button: ButtonLeft}))
	assert.Equal(t, KindBreakpoint, bp.Kind())
}

func TestUnsubscribeRedraw(t *testing.T) {
	b := New(testMember, Loc(1, 1), Loc(1, 5), WithKind(KindBreakpoint))
	fn, n := counter()
	id := b.SubscribeRedraw(fn)

	require.True(t, b.Unsubscribe(id))
	b.SetEnabled(false)
	assert.Equal(t, 0, *n)
	assert.Equal(t, 0, b.ObserverCount())
}

func TestParseKind(t *testing.T) {
	for _, k := range Kinds {
		got, ok := ParseKind(k.String())
		assert.True(t, ok)
		assert.Equal(t, k, got)
	}

	_, ok := ParseKind("nope")
	assert.False(t, ok)
}

func TestBookmarkString(t *testing.T) {
	b := New(testMember, Loc(3, 5), Loc(3, 9), WithKind(KindBreakpoint))
	assert.Equal(t, "breakpoint (3,5)-(3,9) System.dll!Console.WriteLine (0x06000123)", b.String())
}
