package flight

import (
	"fmt"
	"time"
)

// Layout is the only accepted timestamp format.
const Layout = "2006-01-02T15:04:05"

// ParseTimestamp decodes s using Layout. The result is in UTC.
// Fractional seconds and single-digit fields, which time.Parse tolerates,
// are refused: FormatTimestamp(t) must reproduce s exactly.
func ParseTimestamp(s string) (time.Time, error) {
	if len(s) != len(Layout) {
		return time.Time{}, fmt.Errorf("%w: %q", ErrMalformedTimestamp, s)
	}
	t, err := time.Parse(Layout, s)
	if err != nil || t.Nanosecond() != 0 {
		return time.Time{}, fmt.Errorf("%w: %q", ErrMalformedTimestamp, s)
	}

	return t, nil
}

// FormatTimestamp encodes t using Layout.
func FormatTimestamp(t time.Time) string {
	return t.Format(Layout)
}

// Normalize converts a raw record into a Record.
// Fields are checked in canonical order; the first failure is returned.
func Normalize(raw Raw) (Record, error) {
	// 1. Presence of every required field
	for _, f := range [...]struct{ name, value string }{
		{FieldSource, raw.Source},
		{FieldDestination, raw.Destination},
		{FieldDeparture, raw.Departure},
		{FieldArrival, raw.Arrival},
		{FieldFlightNumber, raw.FlightNumber},
	} {
		if f.value == "" {
			return Record{}, &FieldError{Field: f.name, Err: ErrMalformedInput}
		}
	}

	// 2. Timestamps
	dep, err := ParseTimestamp(raw.Departure)
	if err != nil {
		return Record{}, &FieldError{Field: FieldDeparture, Value: raw.Departure, Err: ErrMalformedTimestamp}
	}
	arr, err := ParseTimestamp(raw.Arrival)
	if err != nil {
		return Record{}, &FieldError{Field: FieldArrival, Value: raw.Arrival, Err: ErrMalformedTimestamp}
	}

	rec := Record{
		Source:       raw.Source,
		Destination:  raw.Destination,
		Departure:    dep,
		Arrival:      arr,
		FlightNumber: raw.FlightNumber,
	}

	// 3. Reversed or zero-length flights are rejected, not guessed at
	if err = rec.Validate(); err != nil {
		return Record{}, err
	}

	return rec, nil
}

// FromFields normalizes a header-keyed row. Unknown keys are ignored;
// a missing key is reported as ErrMalformedInput.
func FromFields(row map[string]string) (Record, error) {
	return Normalize(Raw{
		Source:       row[FieldSource],
		Destination:  row[FieldDestination],
		Departure:    row[FieldDeparture],
		Arrival:      row[FieldArrival],
		FlightNumber: row[FieldFlightNumber],
	})
}
