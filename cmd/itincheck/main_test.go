package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const goodDump = `[
  {
    "itin": [
      {"source": "A", "destination": "B", "departure": "2017-06-01T08:00:00", "arrival": "2017-06-01T09:00:00", "flight_number": "F1"},
      {"source": "B", "destination": "C", "departure": "2017-06-01T10:30:00", "arrival": "2017-06-01T11:30:00", "flight_number": "F2"}
    ],
    "valid": true,
    "maximal": true
  },
  {
    "itin": [
      {"source": "A", "destination": "B", "departure": "2017-06-01T08:00:00", "arrival": "2017-06-01T09:00:00", "flight_number": "F1"}
    ],
    "valid": false,
    "maximal": false
  }
]`

// F2 leaves 30 minutes after F1 lands.
const badDump = `[
  {
    "itin": [
      {"source": "A", "destination": "B", "departure": "2017-06-01T08:00:00", "arrival": "2017-06-01T09:00:00", "flight_number": "F1"},
      {"source": "B", "destination": "C", "departure": "2017-06-01T09:30:00", "arrival": "2017-06-01T11:30:00", "flight_number": "F2"}
    ],
    "valid": true,
    "maximal": true
  }
]`

func runWith(stdin string, args ...string) (string, int) {
	var out, errOut bytes.Buffer
	code := run(args, strings.NewReader(stdin), &out, &errOut)

	return out.String(), code
}

func TestRun_Valid(t *testing.T) {
	out, code := runWith(goodDump)
	assert.Equal(t, 0, code)
	assert.Equal(t, "All itineraries are valid.\n", out)
}

func TestRun_ValidFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dump.json")
	require.NoError(t, os.WriteFile(path, []byte(goodDump), 0o600))

	out, code := runWith("", path)
	assert.Equal(t, 0, code)
	assert.Equal(t, "All itineraries are valid.\n", out)
}

func TestRun_Violation(t *testing.T) {
	out, code := runWith(badDump)
	assert.Equal(t, 1, code)
	assert.Contains(t, out, "Invalid itinerary")
	assert.Contains(t, out, "shorter than minimum")
}

func TestRun_Errors(t *testing.T) {
	_, code := runWith("{not json")
	assert.Equal(t, 1, code)

	_, code = runWith("", "a.json", "b.json")
	assert.Equal(t, 2, code)

	_, code = runWith("", filepath.Join(t.TempDir(), "missing.json"))
	assert.Equal(t, 1, code)
}
