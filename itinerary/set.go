package itinerary

import (
	"iter"

	"github.com/katalvlaran/itinera/flight"
)

// Set is the arena of itineraries produced by Build.
type Set struct {
	records []flight.Record // swept records, arrival order
	items   []Itinerary     // creation order
	ends    [][]Handle      // record handle -> chains ending at it

	// Stats reports sweep counters.
	Stats Stats
}

func newSet(records []flight.Record) *Set {
	return &Set{
		records: records,
		items:   make([]Itinerary, 0, len(records)),
		ends:    make([][]Handle, len(records)),
	}
}

// add appends it to the arena and registers it as ending at its last leg.
func (s *Set) add(it Itinerary) Handle {
	h := Handle(len(s.items))
	s.items = append(s.items, it)
	last := it.Legs[len(it.Legs)-1]
	s.ends[last] = append(s.ends[last], h)

	return h
}

// Len returns the number of itineraries, one-leg chains included.
func (s *Set) Len() int { return len(s.items) }

// Records returns the swept records in arrival order. Itinerary.Legs index
// into this slice. The slice must not be modified.
func (s *Set) Records() []flight.Record { return s.records }

// At returns the itinerary addressed by h.
func (s *Set) At(h Handle) Itinerary { return s.items[h] }

// EndingAt returns the handles of every chain whose last leg is record rec.
func (s *Set) EndingAt(rec int) []Handle { return s.ends[rec] }

// Flights resolves the legs of h to records.
func (s *Set) Flights(h Handle) []flight.Record {
	legs := s.items[h].Legs
	out := make([]flight.Record, len(legs))
	for i, l := range legs {
		out[i] = s.records[l]
	}

	return out
}

// View resolves h into a self-contained View.
func (s *Set) View(h Handle) View {
	it := s.items[h]
	return View{Flights: s.Flights(h), Valid: it.Valid, Maximal: it.Maximal}
}

// All yields every itinerary in creation order.
func (s *Set) All() iter.Seq2[Handle, Itinerary] {
	return func(yield func(Handle, Itinerary) bool) {
		for i, it := range s.items {
			if !yield(Handle(i), it) {
				return
			}
		}
	}
}
