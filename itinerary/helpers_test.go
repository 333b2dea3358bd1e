package itinerary_test

import (
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/itinera/flight"
	"github.com/katalvlaran/itinera/itinerary"
)

var day = time.Date(2017, 6, 1, 0, 0, 0, 0, time.UTC)

// clock parses "HH:MM" on the fixture day.
func clock(t testing.TB, hhmm string) time.Time {
	t.Helper()
	ts, err := time.Parse("15:04", hhmm)
	require.NoError(t, err)

	return day.Add(time.Duration(ts.Hour())*time.Hour + time.Duration(ts.Minute())*time.Minute)
}

// leg builds a record "fn src dep -> dst arr" on the fixture day.
func leg(t testing.TB, fn, src, dst, dep, arr string) flight.Record {
	t.Helper()
	return flight.Record{
		Source:       src,
		Destination:  dst,
		Departure:    clock(t, dep),
		Arrival:      clock(t, arr),
		FlightNumber: fn,
	}
}

// numbers renders every view as "FN1,FN2,...".
func numbers(views []itinerary.View) []string {
	out := make([]string, len(views))
	for i, v := range views {
		out[i] = strings.Join(v.FlightNumbers(), ",")
	}

	return out
}

// allNumbers renders every itinerary of s, one-leg chains included.
func allNumbers(s *itinerary.Set) []string {
	out := make([]string, 0, s.Len())
	for h := range s.All() {
		out = append(out, strings.Join(s.View(h).FlightNumbers(), ","))
	}

	return out
}

// legKey identifies a chain by its record handles.
func legKey(legs []int) string {
	parts := make([]string, len(legs))
	for i, l := range legs {
		parts[i] = strconv.Itoa(l)
	}

	return strings.Join(parts, ".")
}
