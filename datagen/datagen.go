package datagen

import (
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/katalvlaran/itinera/flight"
)

var (
	// ErrBadSize indicates a negative record count or a non-positive
	// replication factor.
	ErrBadSize = errors.New("datagen: invalid size")

	// ErrBadOption indicates an option value Random cannot work with.
	ErrBadOption = errors.New("datagen: invalid option value")
)

// Deterministic defaults for Random.
const (
	defaultSeed     = int64(1)
	defaultSpan     = 48 * time.Hour
	defaultMinBlock = 45 * time.Minute
	defaultMaxBlock = 3 * time.Hour
	granularity     = 5 * time.Minute
	day             = 24 * time.Hour
)

var (
	defaultAirports = []string{"WAW", "KRK", "GDN", "WRO", "POZ", "KTW"}
	defaultStart    = time.Date(2017, 6, 1, 6, 0, 0, 0, time.UTC)
)

// Replicate returns times copies of records, copy j shifted forward by j
// days with "_j" appended to every flight number. Copy 0 keeps the
// input times. Output order: for each record, all of its copies.
func Replicate(records []flight.Record, times int) ([]flight.Record, error) {
	if times < 1 {
		return nil, fmt.Errorf("%w: times=%d", ErrBadSize, times)
	}

	out := make([]flight.Record, 0, len(records)*times)
	for _, r := range records {
		for j := 0; j < times; j++ {
			shift := time.Duration(j) * day
			out = append(out, flight.Record{
				Source:       r.Source,
				Destination:  r.Destination,
				Departure:    r.Departure.Add(shift),
				Arrival:      r.Arrival.Add(shift),
				FlightNumber: fmt.Sprintf("%s_%d", r.FlightNumber, j),
			})
		}
	}

	return out, nil
}

// Option configures Random.
type Option func(*config)

type config struct {
	seed     int64
	airports []string
	start    time.Time
	span     time.Duration
	minBlock time.Duration
	maxBlock time.Duration
}

// WithSeed sets the RNG seed.
func WithSeed(seed int64) Option {
	return func(c *config) { c.seed = seed }
}

// WithAirports sets the airport codes flights are drawn between.
func WithAirports(codes ...string) Option {
	return func(c *config) { c.airports = codes }
}

// WithStart sets the earliest departure.
func WithStart(t time.Time) Option {
	return func(c *config) { c.start = t }
}

// WithSpan sets the period departures are spread over.
func WithSpan(d time.Duration) Option {
	return func(c *config) { c.span = d }
}

// WithBlockTime sets the flight duration range.
func WithBlockTime(lo, hi time.Duration) Option {
	return func(c *config) {
		c.minBlock = lo
		c.maxBlock = hi
	}
}

func (c config) validate() error {
	switch {
	case len(c.airports) < 2:
		return fmt.Errorf("%w: need at least 2 airports, got %d", ErrBadOption, len(c.airports))
	case c.span < granularity:
		return fmt.Errorf("%w: span %s shorter than %s", ErrBadOption, c.span, granularity)
	case c.minBlock < granularity || c.maxBlock < c.minBlock:
		return fmt.Errorf("%w: block time [%s, %s]", ErrBadOption, c.minBlock, c.maxBlock)
	}
	for _, a := range c.airports {
		if a == "" {
			return fmt.Errorf("%w: empty airport code", ErrBadOption)
		}
	}

	return nil
}

// distinct drops repeated codes, keeping first occurrences in order.
func distinct(codes []string) []string {
	seen := make(map[string]struct{}, len(codes))
	out := make([]string, 0, len(codes))
	for _, c := range codes {
		if _, ok := seen[c]; ok {
			continue
		}
		seen[c] = struct{}{}
		out = append(out, c)
	}

	return out
}

// Random returns n flights between distinct airports with departures in
// [start, start+span) and durations in the block-time range, all on a five-minute
// grid. Flight numbers are "RND0000", "RND0001", ...
func Random(n int, opts ...Option) ([]flight.Record, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: n=%d", ErrBadSize, n)
	}

	c := config{
		seed:     defaultSeed,
		airports: defaultAirports,
		start:    defaultStart,
		span:     defaultSpan,
		minBlock: defaultMinBlock,
		maxBlock: defaultMaxBlock,
	}
	for _, fn := range opts {
		fn(&c)
	}
	c.airports = distinct(c.airports)
	if err := c.validate(); err != nil {
		return nil, err
	}

	rng := rand.New(rand.NewSource(c.seed))
	slots := int64(c.span / granularity)
	blocks := int64((c.maxBlock-c.minBlock)/granularity) + 1

	out := make([]flight.Record, n)
	for i := range out {
		src := rng.Intn(len(c.airports))
		dst := rng.Intn(len(c.airports) - 1)
		if dst >= src {
			dst++ // skip src
		}
		dep := c.start.Add(time.Duration(rng.Int63n(slots)) * granularity)
		block := c.minBlock + time.Duration(rng.Int63n(blocks))*granularity

		out[i] = flight.Record{
			Source:       c.airports[src],
			Destination:  c.airports[dst],
			Departure:    dep,
			Arrival:      dep.Add(block),
			FlightNumber: fmt.Sprintf("RND%04d", i),
		}
	}

	return out, nil
}
