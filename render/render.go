package render

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/katalvlaran/itinera/itinerary"
)

// ErrUnknownFormat is returned by ParseFormat for an unrecognized name.
var ErrUnknownFormat = errors.New("render: unknown output format")

// Format names an output rendering.
type Format int

const (
	Flights Format = iota // default
	Airports
	Human
	Debug
)

var formatNames = map[Format]string{
	Flights:  "flights",
	Airports: "airports",
	Human:    "human",
	Debug:    "debug",
}

func (f Format) String() string {
	if s, ok := formatNames[f]; ok {
		return s
	}
	return fmt.Sprintf("Format(%d)", int(f))
}

// Formats lists the accepted names, for flag help.
func Formats() []string {
	return []string{"debug", "human", "flights", "airports"}
}

// ParseFormat maps a name (case-insensitive) to a Format.
func ParseFormat(s string) (Format, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for f, n := range formatNames {
		if n == name {
			return f, nil
		}
	}

	return Flights, fmt.Errorf("%w: %q (want one of %s)", ErrUnknownFormat, s, strings.Join(Formats(), ", "))
}

// Renderer writes itineraries in one format.
type Renderer interface {
	Format() Format
	// Begin is called once before the first itinerary.
	Begin(w io.Writer) error
	// Render writes itinerary number n (counting from 1).
	Render(w io.Writer, n int, v itinerary.View) error
	// End is called once after the last itinerary.
	End(w io.Writer) error
}

// New returns the Renderer for f.
func New(f Format) (Renderer, error) {
	switch f {
	case Flights:
		return lineRenderer{format: Flights, fields: itinerary.View.FlightNumbers}, nil
	case Airports:
		return lineRenderer{format: Airports, fields: itinerary.View.Airports}, nil
	case Human:
		return humanRenderer{}, nil
	case Debug:
		return &debugRenderer{}, nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownFormat, f)
	}
}

// Emit writes set through r and returns the number of itineraries written.
// Debug dumps the whole set; other formats write set.Select(includeSub).
func Emit(w io.Writer, r Renderer, set *itinerary.Set, includeSub bool) (int, error) {
	var handles []itinerary.Handle
	if r.Format() == Debug {
		handles = make([]itinerary.Handle, 0, set.Len())
		for h := range set.All() {
			handles = append(handles, h)
		}
	} else {
		handles = set.Select(includeSub)
	}

	if err := r.Begin(w); err != nil {
		return 0, err
	}
	for i, h := range handles {
		if err := r.Render(w, i+1, set.View(h)); err != nil {
			return i, err
		}
	}
	if err := r.End(w); err != nil {
		return len(handles), err
	}

	return len(handles), nil
}

// lineRenderer prints one comma-joined line per itinerary.
type lineRenderer struct {
	format Format
	fields func(itinerary.View) []string
}

func (l lineRenderer) Format() Format        { return l.format }
func (l lineRenderer) Begin(io.Writer) error { return nil }
func (l lineRenderer) End(io.Writer) error   { return nil }

func (l lineRenderer) Render(w io.Writer, _ int, v itinerary.View) error {
	_, err := fmt.Fprintln(w, strings.Join(l.fields(v), ","))
	return err
}

// humanRenderer prints a numbered block per itinerary.
type humanRenderer struct{}

func (humanRenderer) Format() Format        { return Human }
func (humanRenderer) Begin(io.Writer) error { return nil }
func (humanRenderer) End(io.Writer) error   { return nil }

func (humanRenderer) Render(w io.Writer, n int, v itinerary.View) error {
	var b strings.Builder
	if n > 1 {
		b.WriteByte('\n')
	}
	fmt.Fprintf(&b, "Itinerary %d:\n", n)
	for _, f := range v.Flights {
		raw := f.Raw()
		fmt.Fprintf(&b, "  %-8s %s %s -> %s %s\n", raw.FlightNumber, raw.Source, raw.Departure, raw.Destination, raw.Arrival)
	}

	_, err := io.WriteString(w, b.String())
	return err
}
