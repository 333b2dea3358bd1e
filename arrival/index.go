package arrival

import (
	"fmt"
	"sort"
	"time"

	"github.com/katalvlaran/itinera/flight"
)

// bucket holds the flights landing at one airport, in arrival order.
// arrivals and handles are parallel slices.
type bucket struct {
	arrivals []time.Time
	handles  []int
}

// Index is the sorted-by-arrival Lookup, keyed by destination airport.
type Index struct {
	buckets  map[string]*bucket
	last     time.Time // latest arrival inserted so far
	size     int
	examined int
}

var _ Lookup = (*Index)(nil)

// NewIndex returns an empty Index.
func NewIndex() *Index {
	return &Index{buckets: make(map[string]*bucket)}
}

// Insert appends r to the bucket of r.Destination in O(1) amortized time.
// Returns ErrOutOfOrder if r arrives before a record already inserted.
func (x *Index) Insert(h int, r flight.Record) error {
	if x.size > 0 && r.Arrival.Before(x.last) {
		return fmt.Errorf("%w: %s arrives %s, index already at %s", ErrOutOfOrder,
			r.FlightNumber, flight.FormatTimestamp(r.Arrival), flight.FormatTimestamp(x.last))
	}

	b, ok := x.buckets[r.Destination]
	if !ok {
		b = &bucket{}
		x.buckets[r.Destination] = b
	}
	b.arrivals = append(b.arrivals, r.Arrival)
	b.handles = append(b.handles, h)

	x.last = r.Arrival
	x.size++

	return nil
}

// Range binary-searches the bucket of airport for the window [lo, hi].
func (x *Index) Range(airport string, lo, hi time.Time) []int {
	b, ok := x.buckets[airport]
	if !ok || hi.Before(lo) {
		return nil
	}

	// first arrival >= lo
	from := sort.Search(len(b.arrivals), func(i int) bool { return !b.arrivals[i].Before(lo) })
	// first arrival > hi
	to := sort.Search(len(b.arrivals), func(i int) bool { return b.arrivals[i].After(hi) })
	if from >= to {
		return nil
	}
	x.examined += to - from

	return b.handles[from:to:to]
}

// Len reports the number of inserted records.
func (x *Index) Len() int { return x.size }

// Examined reports how many entries Range has returned in total; the index
// never inspects an entry outside the window.
func (x *Index) Examined() int { return x.examined }

// Airports returns the number of distinct destinations indexed.
func (x *Index) Airports() int { return len(x.buckets) }
