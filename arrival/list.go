package arrival

import (
	"time"

	"github.com/katalvlaran/itinera/flight"
)

type entry struct {
	destination string
	arrival     time.Time
	handle      int
}

// List is the naive Lookup: a flat slice in insertion order, scanned in
// full on every Range.
type List struct {
	entries  []entry
	out      []int // reused result buffer
	examined int
}

var _ Lookup = (*List)(nil)

// NewList returns an empty List.
func NewList() *List {
	return &List{}
}

// Insert appends r. List accepts any order.
func (l *List) Insert(h int, r flight.Record) error {
	l.entries = append(l.entries, entry{destination: r.Destination, arrival: r.Arrival, handle: h})
	return nil
}

// Range scans every entry, keeping those destined at airport with arrival
// in [lo, hi].
func (l *List) Range(airport string, lo, hi time.Time) []int {
	l.out = l.out[:0]
	for _, e := range l.entries {
		l.examined++
		if e.destination != airport || e.arrival.Before(lo) || e.arrival.After(hi) {
			continue
		}
		l.out = append(l.out, e.handle)
	}

	return l.out
}

// Len reports the number of inserted records.
func (l *List) Len() int { return len(l.entries) }

// Examined reports how many entries Range has scanned in total.
func (l *List) Examined() int { return l.examined }
