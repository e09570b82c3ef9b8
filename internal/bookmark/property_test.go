package bookmark

import (
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

func TestNotificationProperties(t *testing.T) {
	properties := gopter.NewProperties(gopter.DefaultTestParameters())

	loc := gopter.CombineGens(gen.IntRange(1, 50), gen.IntRange(1, 80)).
		Map(func(v []interface{}) TextLocation {
			return Loc(v[0].(int), v[1].(int))
		})

	properties.Property("setting a new location notifies once, repeating notifies nothing", prop.ForAll(
		func(start, end, next TextLocation) bool {
			b := New(testMember, start, end)
			n := 0
			b.Subscribe(func(*Bookmark) { n++ })

			b.SetLocation(next)
			want := 0
			if next != start {
				want = 1
			}
			if n != want {
				return false
			}

			b.SetLocation(next)
			return n == want && b.LineNumber() == next.Line
		},
		loc, loc, loc,
	))

	properties.Property("UpdateLocation notifies at most once", prop.ForAll(
		func(start, end, nextStart, nextEnd TextLocation) bool {
			b := New(testMember, start, end)
			n := 0
			b.Subscribe(func(*Bookmark) { n++ })

			b.UpdateLocation(nextStart, nextEnd)
			changed := nextStart != start || nextEnd != end
			if changed {
				return n == 1
			}
			return n == 0
		},
		loc, loc, loc, loc,
	))

	properties.Property("resolution is deterministic and matches the column arithmetic", prop.ForAll(
		func(start, end TextLocation) bool {
			doc := lines(60, 100)
			seg1, err1 := ResolveSpan(start, end, doc)
			seg2, err2 := ResolveSpan(start, end, doc)
			if (err1 == nil) != (err2 == nil) || seg1 != seg2 {
				return false
			}

			wantStart := (start.Line-1)*100 + start.Column - 1
			wantEnd := (end.Line-1)*100 + end.Column - 1
			if wantEnd < wantStart {
				return err1 != nil
			}
			return err1 == nil && seg1.Offset == wantStart && seg1.EndOffset() == wantEnd
		},
		loc, loc,
	))

	properties.TestingRun(t)
}
