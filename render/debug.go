package render

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/katalvlaran/itinera/flight"
	"github.com/katalvlaran/itinera/itinerary"
)

// DebugItinerary is one element of the Debug dump.
type DebugItinerary struct {
	Itin    []flight.Raw `json:"itin"`
	Valid   bool         `json:"valid"`
	Maximal bool         `json:"maximal"`
}

// NewDebugItinerary converts v to its dump form.
func NewDebugItinerary(v itinerary.View) DebugItinerary {
	d := DebugItinerary{
		Itin:    make([]flight.Raw, len(v.Flights)),
		Valid:   v.Valid,
		Maximal: v.Maximal,
	}
	for i, f := range v.Flights {
		d.Itin[i] = f.Raw()
	}

	return d
}

// Records normalizes the legs back into flight records.
func (d DebugItinerary) Records() ([]flight.Record, error) {
	out := make([]flight.Record, len(d.Itin))
	for i, raw := range d.Itin {
		rec, err := flight.Normalize(raw)
		if err != nil {
			return nil, fmt.Errorf("leg %d: %w", i, err)
		}
		out[i] = rec
	}

	return out, nil
}

// debugRenderer streams a JSON array, one indented element per itinerary.
type debugRenderer struct {
	written bool
}

func (*debugRenderer) Format() Format { return Debug }

func (d *debugRenderer) Begin(w io.Writer) error {
	d.written = false
	_, err := io.WriteString(w, "[")
	return err
}

func (d *debugRenderer) Render(w io.Writer, _ int, v itinerary.View) error {
	data, err := json.MarshalIndent(NewDebugItinerary(v), "  ", "  ")
	if err != nil {
		return err
	}

	sep := ",\n  "
	if !d.written {
		sep = "\n  "
		d.written = true
	}
	if _, err = io.WriteString(w, sep); err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}

func (d *debugRenderer) End(w io.Writer) error {
	closing := "\n]\n"
	if !d.written {
		closing = "]\n"
	}
	_, err := io.WriteString(w, closing)
	return err
}

// DecodeDebug reads a Debug dump.
func DecodeDebug(r io.Reader) ([]DebugItinerary, error) {
	var out []DebugItinerary
	if err := json.NewDecoder(r).Decode(&out); err != nil {
		return nil, fmt.Errorf("render: decode debug dump: %w", err)
	}

	return out, nil
}
