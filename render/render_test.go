package render_test

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/itinera/flight"
	"github.com/katalvlaran/itinera/itinerary"
	"github.com/katalvlaran/itinera/render"
)

// triangle builds WAW→KRK→GDN→WAW plus its suffix KRK→GDN→WAW.
func triangle(t *testing.T) *itinerary.Set {
	t.Helper()
	d := time.Date(2017, 6, 1, 0, 0, 0, 0, time.UTC)
	hm := func(h, m int) time.Time { return d.Add(time.Duration(h)*time.Hour + time.Duration(m)*time.Minute) }

	set, err := itinerary.Build([]flight.Record{
		{Source: "WAW", Destination: "KRK", Departure: hm(8, 0), Arrival: hm(9, 0), FlightNumber: "LO1"},
		{Source: "KRK", Destination: "GDN", Departure: hm(10, 30), Arrival: hm(11, 30), FlightNumber: "LO2"},
		{Source: "GDN", Destination: "WAW", Departure: hm(15, 0), Arrival: hm(16, 0), FlightNumber: "LO3"},
	})
	require.NoError(t, err)

	return set
}

func emit(t *testing.T, f render.Format, set *itinerary.Set, sub bool) (string, int) {
	t.Helper()
	r, err := render.New(f)
	require.NoError(t, err)
	assert.Equal(t, f, r.Format())

	var buf bytes.Buffer
	n, err := render.Emit(&buf, r, set, sub)
	require.NoError(t, err)

	return buf.String(), n
}

func TestParseFormat(t *testing.T) {
	for _, name := range render.Formats() {
		f, err := render.ParseFormat(name)
		require.NoError(t, err)
		assert.Equal(t, name, f.String())
	}

	f, err := render.ParseFormat(" HUMAN ")
	require.NoError(t, err)
	assert.Equal(t, render.Human, f)

	_, err = render.ParseFormat("xml")
	assert.ErrorIs(t, err, render.ErrUnknownFormat)

	_, err = render.New(render.Format(99))
	assert.ErrorIs(t, err, render.ErrUnknownFormat)
}

func TestEmit_Flights(t *testing.T) {
	out, n := emit(t, render.Flights, triangle(t), false)
	assert.Equal(t, 2, n)
	assert.Equal(t, "LO2,LO3\nLO1,LO2,LO3\n", out)

	out, n = emit(t, render.Flights, triangle(t), true)
	assert.Equal(t, 3, n)
	assert.Equal(t, "LO1,LO2\nLO2,LO3\nLO1,LO2,LO3\n", out)
}

func TestEmit_Airports(t *testing.T) {
	out, _ := emit(t, render.Airports, triangle(t), false)
	assert.Equal(t, "KRK,GDN,WAW\nWAW,KRK,GDN,WAW\n", out)
}

func TestEmit_Human(t *testing.T) {
	out, _ := emit(t, render.Human, triangle(t), false)
	want := "Itinerary 1:\n" +
		"  LO2      KRK 2017-06-01T10:30:00 -> GDN 2017-06-01T11:30:00\n" +
		"  LO3      GDN 2017-06-01T15:00:00 -> WAW 2017-06-01T16:00:00\n" +
		"\n" +
		"Itinerary 2:\n" +
		"  LO1      WAW 2017-06-01T08:00:00 -> KRK 2017-06-01T09:00:00\n" +
		"  LO2      KRK 2017-06-01T10:30:00 -> GDN 2017-06-01T11:30:00\n" +
		"  LO3      GDN 2017-06-01T15:00:00 -> WAW 2017-06-01T16:00:00\n"
	assert.Equal(t, want, out)
}

func TestEmit_DebugRoundTrip(t *testing.T) {
	set := triangle(t)
	out, n := emit(t, render.Debug, set, false)
	assert.Equal(t, set.Len(), n, "debug dumps every itinerary")

	dump, err := render.DecodeDebug(strings.NewReader(out))
	require.NoError(t, err)
	require.Len(t, dump, set.Len())

	for i, d := range dump {
		it := set.At(itinerary.Handle(i))
		assert.Equal(t, it.Valid, d.Valid)
		assert.Equal(t, it.Maximal, d.Maximal)

		recs, err := d.Records()
		require.NoError(t, err)
		assert.Equal(t, set.Flights(itinerary.Handle(i)), recs)
	}

	assert.Contains(t, out, `"departure": "2017-06-01T08:00:00"`)
	assert.Contains(t, out, `"flight_number": "LO1"`)
}

func TestEmit_DebugEmpty(t *testing.T) {
	set, err := itinerary.Build(nil)
	require.NoError(t, err)

	out, n := emit(t, render.Debug, set, false)
	assert.Zero(t, n)
	assert.Equal(t, "[]\n", out)

	dump, err := render.DecodeDebug(strings.NewReader(out))
	require.NoError(t, err)
	assert.Empty(t, dump)
}

func TestDecodeDebug_Errors(t *testing.T) {
	_, err := render.DecodeDebug(strings.NewReader("{not json"))
	assert.Error(t, err)

	dump, err := render.DecodeDebug(strings.NewReader(`[{"itin":[{"source":"A","destination":"B","departure":"bad","arrival":"2017-06-01T09:00:00","flight_number":"X"}],"valid":false,"maximal":true}]`))
	require.NoError(t, err)
	_, err = dump[0].Records()
	assert.ErrorIs(t, err, flight.ErrMalformedTimestamp)
}

type failWriter struct{}

func (failWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestEmit_WriteError(t *testing.T) {
	for _, f := range []render.Format{render.Flights, render.Airports, render.Human, render.Debug} {
		r, err := render.New(f)
		require.NoError(t, err)
		_, err = render.Emit(failWriter{}, r, triangle(t), false)
		assert.Error(t, err, f.String())
	}
}
