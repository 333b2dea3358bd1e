package arrival

import (
	"errors"
	"time"

	"github.com/katalvlaran/itinera/flight"
)

// ErrOutOfOrder is returned by Index.Insert when arrivals are not presented
// in non-decreasing order.
var ErrOutOfOrder = errors.New("arrival: insert out of arrival order")

// Lookup finds previously inserted flights by destination and arrival window.
//
// Handles are opaque to the lookup; callers use them to address their own
// record table. The slice returned by Range is only valid until the next
// Insert and must not be modified.
type Lookup interface {
	// Insert registers r under handle h.
	Insert(h int, r flight.Record) error

	// Range returns the handles of every record destined at airport whose
	// arrival lies in [lo, hi], both ends inclusive.
	Range(airport string, lo, hi time.Time) []int

	// Len reports how many records have been inserted.
	Len() int

	// Examined reports the cumulative number of entries Range inspected.
	Examined() int
}
