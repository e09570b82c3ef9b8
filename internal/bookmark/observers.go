package bookmark

// Observer is notified when a bookmark changes. It receives the bookmark and
// must read whatever state it needs from it.
type Observer func(b *Bookmark)

// SubscriptionID identifies an observer registered on a bookmark.
type SubscriptionID uint64

type observerEntry struct {
	id SubscriptionID
	fn Observer
}

// observerList keeps observers in subscription order.
type observerList struct {
	entries []observerEntry
}

func (l *observerList) add(id SubscriptionID, fn Observer) {
	l.entries = append(l.entries, observerEntry{id: id, fn: fn})
}

func (l *observerList) remove(id SubscriptionID) bool {
	for i, e := range l.entries {
		if e.id == id {
			// Copy so an in-flight notify keeps its own view.
			l.entries = append(l.entries[:i:i], l.entries[i+1:]...)
			return true
		}
	}
	return false
}

func (l *observerList) len() int {
	return len(l.entries)
}

func (l *observerList) notify(b *Bookmark) {
	for _, e := range l.entries {
		e.fn(b)
	}
}
