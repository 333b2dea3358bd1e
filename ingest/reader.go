// Package ingest reads and writes flight records as header-keyed CSV.
//
// Columns are located by header name, not position; extra columns are
// ignored. The first malformed row aborts the read with a *RowError that
// carries the line number and unwraps to the flight package sentinel.
package ingest

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"slices"

	"github.com/katalvlaran/itinera/flight"
)

// ErrMissingColumn indicates a header without one of flight.Fields.
var ErrMissingColumn = errors.New("ingest: missing column")

// RowError locates a failure in the input.
type RowError struct {
	Line int
	Err  error
}

func (e *RowError) Error() string {
	return fmt.Sprintf("line %d: %s", e.Line, e.Err)
}

func (e *RowError) Unwrap() error {
	return e.Err
}

// Reader decodes flight rows. Column positions are resolved once from the
// header row; every later row is mapped straight into a flight.Raw.
type Reader struct {
	csv    *csv.Reader
	header []string
	pos    [5]int // index of each flight.Fields column in header
	line   int
}

// NewReader wraps r. The first row is taken as the header.
func NewReader(r io.Reader) *Reader {
	cr := csv.NewReader(r)
	cr.ReuseRecord = true
	return &Reader{csv: cr}
}

// Header reads and checks the header row on first use. It returns
// (nil, nil) on empty input and a *RowError wrapping ErrMissingColumn when
// a required column is absent.
func (r *Reader) Header() ([]string, error) {
	if r.header != nil {
		return r.header, nil
	}

	row, err := r.csv.Read()
	switch {
	case errors.Is(err, io.EOF):
		return nil, nil
	case err != nil:
		return nil, fmt.Errorf("ingest: header: %w", err)
	}
	r.line, _ = r.csv.FieldPos(0)

	for i, col := range flight.Fields {
		r.pos[i] = slices.Index(row, col)
		if r.pos[i] < 0 {
			return nil, &RowError{Line: r.line, Err: fmt.Errorf("%w: %s", ErrMissingColumn, col)}
		}
	}
	r.header = slices.Clone(row)

	return r.header, nil
}

// Next returns the next data row, or io.EOF after the last one.
func (r *Reader) Next() (flight.Raw, error) {
	if r.header == nil {
		h, err := r.Header()
		if err != nil {
			return flight.Raw{}, err
		}
		if h == nil {
			return flight.Raw{}, io.EOF
		}
	}

	row, err := r.csv.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return flight.Raw{}, io.EOF
		}
		return flight.Raw{}, fmt.Errorf("ingest: %w", err)
	}
	r.line, _ = r.csv.FieldPos(0)

	return flight.Raw{
		Source:       row[r.pos[0]],
		Destination:  row[r.pos[1]],
		Departure:    row[r.pos[2]],
		Arrival:      row[r.pos[3]],
		FlightNumber: row[r.pos[4]],
	}, nil
}

// Line returns the input line of the last row read.
func (r *Reader) Line() int {
	return r.line
}

// ReadRecords reads every row of r into normalized records.
func ReadRecords(r io.Reader) ([]flight.Record, error) {
	fr := NewReader(r)

	var out []flight.Record
	for {
		raw, err := fr.Next()
		if errors.Is(err, io.EOF) {
			return out, nil
		}
		if err != nil {
			return nil, err
		}

		rec, err := flight.Normalize(raw)
		if err != nil {
			return nil, &RowError{Line: fr.Line(), Err: err}
		}
		out = append(out, rec)
	}
}
