package itinerary

import (
	"fmt"
	"slices"

	"github.com/katalvlaran/itinera/arrival"
	"github.com/katalvlaran/itinera/flight"
)

// sweeper carries the state of one Build.
type sweeper struct {
	opts   options
	lookup arrival.Lookup
	set    *Set
}

// Build discovers every itinerary in records.
//
// records may be in any order and is not modified. The returned Set holds
// every chain created, one-leg chains and non-maximal prefixes included,
// in creation order; use Set.Select to pick the ones to emit.
//
// Steps:
//  1. Resolve options and validate the policy.
//  2. Validate every record; the first invalid one aborts the build.
//  3. Copy and stable-sort by arrival (ties keep input order).
//  4. Sweep: singleton, extend chains ending at candidates, index.
func Build(records []flight.Record, opts ...Option) (*Set, error) {
	// 1. Options
	o := defaultOptions()
	for _, fn := range opts {
		fn(&o)
	}
	if err := o.policy.Validate(); err != nil {
		return nil, err
	}

	var lookup arrival.Lookup
	switch o.strategy {
	case Indexed:
		lookup = arrival.NewIndex()
	case Naive:
		lookup = arrival.NewList()
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownStrategy, o.strategy)
	}

	// 2. Records must be well formed; a skipped record would silently
	//    produce an incomplete result.
	for i, r := range records {
		if err := r.Validate(); err != nil {
			return nil, fmt.Errorf("itinerary: record %d (%s): %w", i, r.FlightNumber, err)
		}
	}

	// 3. Arrival order
	sorted := slices.Clone(records)
	slices.SortStableFunc(sorted, func(a, b flight.Record) int {
		return a.Arrival.Compare(b.Arrival)
	})

	s := &sweeper{
		opts:   o,
		lookup: lookup,
		set:    newSet(sorted),
	}

	// 4. Sweep
	for h := range sorted {
		if err := s.process(h); err != nil {
			return nil, err
		}
	}

	s.set.Stats.Records = len(sorted)
	s.set.Stats.Itineraries = len(s.set.items)
	s.set.Stats.Examined = lookup.Examined()

	o.log.Debug("itinerary sweep finished",
		"strategy", o.strategy.String(),
		"records", s.set.Stats.Records,
		"itineraries", s.set.Stats.Itineraries,
		"candidates", s.set.Stats.Candidates,
		"extensions", s.set.Stats.Extensions,
		"rejected", s.set.Stats.Rejected,
		"examined", s.set.Stats.Examined,
	)

	return s.set, nil
}

// process handles the record at handle rec.
func (s *sweeper) process(rec int) error {
	f := s.set.records[rec]

	// a. Trivial chain [f]
	s.set.add(Itinerary{Legs: []int{rec}, Valid: false, Maximal: true})

	// b. Candidate predecessors: arrived at f.Source inside the window
	lo, hi := s.opts.policy.Window(f.Departure)
	candidates := s.lookup.Range(f.Source, lo, hi)
	s.set.Stats.Candidates += len(candidates)

	// c. Extend every chain ending at a candidate
	for _, p := range candidates {
		if s.set.records[p].Destination != f.Source {
			continue
		}

		// ends[p] is complete: p was processed before f and nothing
		// appends to it any more.
		for _, ch := range s.set.ends[p] {
			chain := &s.set.items[ch]
			if s.thereAndBack(chain.Legs, f) {
				s.set.Stats.Rejected++
				continue
			}

			legs := make([]int, len(chain.Legs)+1)
			copy(legs, chain.Legs)
			legs[len(legs)-1] = rec
			chain.Maximal = false

			s.set.add(Itinerary{Legs: legs, Valid: true, Maximal: true})
			s.set.Stats.Extensions++
		}
	}

	// d. Index f only now; a flight cannot connect to itself.
	if err := s.lookup.Insert(rec, f); err != nil {
		return fmt.Errorf("itinerary: index %s: %w", f.FlightNumber, err)
	}

	return nil
}

// thereAndBack reports whether appending f to legs would produce
// (X→Y),(Y→X),(X→Y): the penultimate leg flies the same route as f.
func (s *sweeper) thereAndBack(legs []int, f flight.Record) bool {
	if len(legs) < 2 {
		return false
	}
	penult := s.set.records[legs[len(legs)-2]]

	return penult.Source == f.Source && penult.Destination == f.Destination
}
