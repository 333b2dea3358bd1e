package flight

import (
	"errors"
	"fmt"
	"time"
)

// Column names used by tabular input and the debug dump.
const (
	FieldSource       = "source"
	FieldDestination  = "destination"
	FieldDeparture    = "departure"
	FieldArrival      = "arrival"
	FieldFlightNumber = "flight_number"
)

// Fields lists the required columns in their canonical order.
var Fields = []string{FieldSource, FieldDestination, FieldDeparture, FieldArrival, FieldFlightNumber}

var (
	// ErrMalformedTimestamp indicates a timestamp string that does not match Layout.
	ErrMalformedTimestamp = errors.New("flight: malformed timestamp")

	// ErrMalformedInput indicates a required field that is missing or empty.
	ErrMalformedInput = errors.New("flight: malformed input")

	// ErrNonPositiveDuration indicates a record whose departure is not
	// strictly before its arrival.
	ErrNonPositiveDuration = errors.New("flight: departure must precede arrival")
)

// FieldError reports which field of a record failed normalization and why.
type FieldError struct {
	Field string // column name, e.g. "departure"
	Value string // offending raw value
	Err   error  // one of the package sentinels
}

func (e *FieldError) Error() string {
	if e.Value == "" {
		return fmt.Sprintf("%s: %s", e.Err, e.Field)
	}
	return fmt.Sprintf("%s: %s=%q", e.Err, e.Field, e.Value)
}

func (e *FieldError) Unwrap() error {
	return e.Err
}

// Record is a single normalized flight.
type Record struct {
	Source       string
	Destination  string
	Departure    time.Time
	Arrival      time.Time
	FlightNumber string
}

// Raw is the string form of a Record.
type Raw struct {
	Source       string `json:"source"`
	Destination  string `json:"destination"`
	Departure    string `json:"departure"`
	Arrival      string `json:"arrival"`
	FlightNumber string `json:"flight_number"`
}

// Duration returns the block time of the flight.
func (r Record) Duration() time.Duration {
	return r.Arrival.Sub(r.Departure)
}

// Validate reports whether r can take part in an itinerary sweep:
// every field set and departure strictly before arrival.
func (r Record) Validate() error {
	switch {
	case r.Source == "":
		return &FieldError{Field: FieldSource, Err: ErrMalformedInput}
	case r.Destination == "":
		return &FieldError{Field: FieldDestination, Err: ErrMalformedInput}
	case r.FlightNumber == "":
		return &FieldError{Field: FieldFlightNumber, Err: ErrMalformedInput}
	case !r.Departure.Before(r.Arrival):
		return &FieldError{Field: FieldArrival, Value: FormatTimestamp(r.Arrival), Err: ErrNonPositiveDuration}
	}

	return nil
}

// Raw converts r back into its string form.
func (r Record) Raw() Raw {
	return Raw{
		Source:       r.Source,
		Destination:  r.Destination,
		Departure:    FormatTimestamp(r.Departure),
		Arrival:      FormatTimestamp(r.Arrival),
		FlightNumber: r.FlightNumber,
	}
}

// String renders r as "FN SRC dep -> DST arr".
func (r Record) String() string {
	return fmt.Sprintf("%s %s %s -> %s %s",
		r.FlightNumber, r.Source, FormatTimestamp(r.Departure), r.Destination, FormatTimestamp(r.Arrival))
}
