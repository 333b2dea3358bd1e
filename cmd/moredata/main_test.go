package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/itinera/ingest"
)

const schedule = `source,destination,departure,arrival,flight_number
A,B,2017-06-01T08:00:00,2017-06-01T09:00:00,F1
`

func TestRun_Replicate(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.csv")
	require.NoError(t, os.WriteFile(path, []byte(schedule), 0o600))

	var out, errOut bytes.Buffer
	require.Equal(t, 0, run([]string{path, "3"}, &out, &errOut), errOut.String())

	want := "source,destination,departure,arrival,flight_number\n" +
		"A,B,2017-06-01T08:00:00,2017-06-01T09:00:00,F1_0\n" +
		"A,B,2017-06-02T08:00:00,2017-06-02T09:00:00,F1_1\n" +
		"A,B,2017-06-03T08:00:00,2017-06-03T09:00:00,F1_2\n"
	assert.Equal(t, want, out.String())
}

func TestRun_Random(t *testing.T) {
	var a, b, errOut bytes.Buffer
	require.Equal(t, 0, run([]string{"-random", "25", "-seed", "7", "-airports", "X,Y,Z"}, &a, &errOut))
	require.Equal(t, 0, run([]string{"-random", "25", "-seed", "7", "-airports", "X,Y,Z"}, &b, &errOut))
	assert.Equal(t, a.String(), b.String())

	recs, err := ingest.ReadRecords(strings.NewReader(a.String()))
	require.NoError(t, err)
	assert.Len(t, recs, 25)
	for _, r := range recs {
		assert.Contains(t, []string{"X", "Y", "Z"}, r.Source)
	}
}

func TestRun_Errors(t *testing.T) {
	var out, errOut bytes.Buffer
	assert.Equal(t, 2, run(nil, &out, &errOut))
	assert.Equal(t, 1, run([]string{"missing.csv", "2"}, &out, &errOut))
	assert.Equal(t, 1, run([]string{"missing.csv", "two"}, &out, &errOut))
	assert.Equal(t, 1, run([]string{"-random", "5", "-airports", "WAW,WAW"}, &out, &errOut))

	path := filepath.Join(t.TempDir(), "data.csv")
	require.NoError(t, os.WriteFile(path, []byte(schedule), 0o600))
	assert.Equal(t, 1, run([]string{path, "0"}, &out, &errOut))
}
