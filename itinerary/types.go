package itinerary

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/katalvlaran/itinera/flight"
	"github.com/katalvlaran/itinera/logger"
)

var (
	// ErrInvalidPolicy indicates connection bounds that are negative or
	// where MinConnection exceeds MaxConnection.
	ErrInvalidPolicy = errors.New("itinerary: invalid connection policy")

	// ErrUnknownStrategy indicates a strategy name ParseStrategy does not know.
	ErrUnknownStrategy = errors.New("itinerary: unknown strategy")
)

// Default connection bounds.
const (
	DefaultMinConnection = time.Hour
	DefaultMaxConnection = 4 * time.Hour
)

// Policy holds the allowed layover range between consecutive legs.
// Both bounds are inclusive.
type Policy struct {
	MinConnection time.Duration
	MaxConnection time.Duration
}

// DefaultPolicy returns the 1h..4h connection window.
func DefaultPolicy() Policy {
	return Policy{MinConnection: DefaultMinConnection, MaxConnection: DefaultMaxConnection}
}

// Validate checks 0 <= MinConnection <= MaxConnection.
func (p Policy) Validate() error {
	if p.MinConnection < 0 || p.MaxConnection < p.MinConnection {
		return fmt.Errorf("%w: min=%s max=%s", ErrInvalidPolicy, p.MinConnection, p.MaxConnection)
	}

	return nil
}

// Window returns the arrival range [lo, hi] of legal predecessors for a
// flight departing at dep.
func (p Policy) Window(dep time.Time) (lo, hi time.Time) {
	return dep.Add(-p.MaxConnection), dep.Add(-p.MinConnection)
}

// Gap reports whether a layover of d is allowed.
func (p Policy) Gap(d time.Duration) bool {
	return d >= p.MinConnection && d <= p.MaxConnection
}

// Connects reports whether next may directly follow prev.
func (p Policy) Connects(prev, next flight.Record) bool {
	return prev.Destination == next.Source && p.Gap(next.Departure.Sub(prev.Arrival))
}

// Strategy selects the candidate lookup used by Build.
type Strategy int

const (
	// Indexed uses arrival.Index (binary search per airport).
	Indexed Strategy = iota
	// Naive uses arrival.List (full scan per record).
	Naive
)

func (s Strategy) String() string {
	switch s {
	case Indexed:
		return "indexed"
	case Naive:
		return "naive"
	default:
		return fmt.Sprintf("Strategy(%d)", int(s))
	}
}

// ParseStrategy maps "indexed" and "naive" (case-insensitive) to a Strategy.
func ParseStrategy(s string) (Strategy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "indexed", "":
		return Indexed, nil
	case "naive":
		return Naive, nil
	default:
		return Indexed, fmt.Errorf("%w: %q", ErrUnknownStrategy, s)
	}
}

// Handle addresses an Itinerary inside a Set.
type Handle int

// Itinerary is one chain of legs. Legs index into Set.Records.
type Itinerary struct {
	Legs    []int
	Valid   bool // two legs or more
	Maximal bool // not extended by any later leg
}

// Len returns the number of legs.
func (it Itinerary) Len() int { return len(it.Legs) }

// View is an Itinerary with its legs resolved to records.
type View struct {
	Flights []flight.Record
	Valid   bool
	Maximal bool
}

// FlightNumbers lists the flight numbers in chain order.
func (v View) FlightNumbers() []string {
	out := make([]string, len(v.Flights))
	for i, f := range v.Flights {
		out[i] = f.FlightNumber
	}

	return out
}

// Airports lists the source of every leg followed by the final destination.
func (v View) Airports() []string {
	if len(v.Flights) == 0 {
		return nil
	}
	out := make([]string, 0, len(v.Flights)+1)
	for _, f := range v.Flights {
		out = append(out, f.Source)
	}

	return append(out, v.Flights[len(v.Flights)-1].Destination)
}

// Stats collects counters from one Build.
type Stats struct {
	Records     int // records swept
	Itineraries int // itineraries created, singletons included
	Candidates  int // predecessor records returned by the lookup
	Extensions  int // chains extended
	Rejected    int // extensions refused by the there-and-back rule
	Examined    int // lookup entries inspected
}

// Option configures Build.
type Option func(*options)

type options struct {
	policy   Policy
	strategy Strategy
	log      logger.Logger
}

func defaultOptions() options {
	return options{
		policy:   DefaultPolicy(),
		strategy: Indexed,
		log:      logger.NewNop(),
	}
}

// WithPolicy sets the connection bounds.
func WithPolicy(p Policy) Option {
	return func(o *options) {
		o.policy = p
	}
}

// WithStrategy selects the candidate lookup.
func WithStrategy(s Strategy) Option {
	return func(o *options) {
		o.strategy = s
	}
}

// WithLogger installs l for sweep diagnostics. Nil is ignored.
func WithLogger(l logger.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.log = l
		}
	}
}
