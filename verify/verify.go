// Package verify re-checks produced itineraries against the connection
// rule: every adjacent pair must share the connecting airport and leave a
// layover inside the policy window.
//
// It checks precision only (every reported itinerary is legal), not recall.
package verify

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/itinera/flight"
	"github.com/katalvlaran/itinera/itinerary"
	"github.com/katalvlaran/itinera/render"
)

var (
	// ErrDisconnected indicates a leg that does not depart where the previous one landed.
	ErrDisconnected = errors.New("verify: legs do not share an airport")

	// ErrGapTooShort indicates a layover below the minimum connection time.
	ErrGapTooShort = errors.New("verify: connection shorter than minimum")

	// ErrGapTooLong indicates a layover above the maximum connection time.
	ErrGapTooLong = errors.New("verify: connection longer than maximum")

	// ErrTooShort indicates an itinerary flagged valid with fewer than two legs.
	ErrTooShort = errors.New("verify: valid itinerary needs two legs")
)

// Violation pinpoints the first illegal connection in an itinerary.
type Violation struct {
	Itinerary int // position in the dump, -1 when checking a single chain
	Leg       int // index of the leg that fails to follow its predecessor
	Prev      flight.Record
	Next      flight.Record
	Err       error
}

func (v *Violation) Error() string {
	return fmt.Sprintf("itinerary %d, leg %d (%s after %s): %s",
		v.Itinerary, v.Leg, v.Next.FlightNumber, v.Prev.FlightNumber, v.Err)
}

func (v *Violation) Unwrap() error {
	return v.Err
}

// Itinerary checks every adjacent pair of legs.
func Itinerary(legs []flight.Record, p itinerary.Policy) error {
	for i := 1; i < len(legs); i++ {
		prev, next := legs[i-1], legs[i]
		gap := next.Departure.Sub(prev.Arrival)

		var err error
		switch {
		case prev.Destination != next.Source:
			err = ErrDisconnected
		case gap < p.MinConnection:
			err = ErrGapTooShort
		case gap > p.MaxConnection:
			err = ErrGapTooLong
		}
		if err != nil {
			return &Violation{Itinerary: -1, Leg: i, Prev: prev, Next: next, Err: err}
		}
	}

	return nil
}

// Dump checks every valid entry of a debug dump and returns how many were
// checked. Invalid (one-leg) entries are skipped.
func Dump(entries []render.DebugItinerary, p itinerary.Policy) (int, error) {
	checked := 0
	for i, e := range entries {
		if !e.Valid {
			continue
		}
		if len(e.Itin) < 2 {
			return checked, &Violation{Itinerary: i, Err: ErrTooShort}
		}

		legs, err := e.Records()
		if err != nil {
			return checked, fmt.Errorf("itinerary %d: %w", i, err)
		}
		if err = Itinerary(legs, p); err != nil {
			var v *Violation
			if errors.As(err, &v) {
				v.Itinerary = i
			}
			return checked, err
		}
		checked++
	}

	return checked, nil
}

// Set checks every valid itinerary of s.
func Set(s *itinerary.Set, p itinerary.Policy) (int, error) {
	checked := 0
	for h, it := range s.All() {
		if !it.Valid {
			continue
		}
		if err := Itinerary(s.Flights(h), p); err != nil {
			var v *Violation
			if errors.As(err, &v) {
				v.Itinerary = int(h)
			}
			return checked, err
		}
		checked++
	}

	return checked, nil
}
