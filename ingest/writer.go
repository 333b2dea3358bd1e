package ingest

import (
	"encoding/csv"
	"io"

	"github.com/katalvlaran/itinera/flight"
)

// WriteRecords writes records as CSV with the canonical header.
func WriteRecords(w io.Writer, records []flight.Record) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(flight.Fields); err != nil {
		return err
	}

	row := make([]string, len(flight.Fields))
	for _, r := range records {
		raw := r.Raw()
		row[0], row[1], row[2], row[3], row[4] = raw.Source, raw.Destination, raw.Departure, raw.Arrival, raw.FlightNumber
		if err := cw.Write(row); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}
