// Command moredata enlarges a flight schedule for benchmarking.
//
// Usage:
//
//	moredata <data.csv> <times>
//	moredata -random <n> [-seed s] [-airports WAW,KRK,...]
//
// The first form repeats every flight times-1 more days; the second
// generates n random flights. CSV is written to stdout.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/katalvlaran/itinera/datagen"
	"github.com/katalvlaran/itinera/flight"
	"github.com/katalvlaran/itinera/ingest"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("moredata", flag.ContinueOnError)
	fs.SetOutput(stderr)
	random := fs.Int("random", 0, "generate this many random flights instead of replicating a file")
	seed := fs.Int64("seed", 1, "seed for -random")
	airports := fs.String("airports", "", "comma-separated airport codes for -random")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	var (
		records []flight.Record
		err     error
	)
	switch {
	case *random > 0:
		opts := []datagen.Option{datagen.WithSeed(*seed)}
		if *airports != "" {
			opts = append(opts, datagen.WithAirports(strings.Split(*airports, ",")...))
		}
		records, err = datagen.Random(*random, opts...)
	case fs.NArg() == 2:
		records, err = replicate(fs.Arg(0), fs.Arg(1))
	default:
		fmt.Fprintln(stderr, "usage: moredata <data.csv> <times> | moredata -random <n> [-seed s] [-airports list]")
		return 2
	}
	if err != nil {
		fmt.Fprintln(stderr, "moredata:", err)
		return 1
	}

	out := bufio.NewWriter(stdout)
	if err = ingest.WriteRecords(out, records); err == nil {
		err = out.Flush()
	}
	if err != nil {
		fmt.Fprintln(stderr, "moredata:", err)
		return 1
	}

	return 0
}

func replicate(path, timesArg string) ([]flight.Record, error) {
	times, err := strconv.Atoi(timesArg)
	if err != nil {
		return nil, fmt.Errorf("times: %w", err)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	records, err := ingest.ReadRecords(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return datagen.Replicate(records, times)
}
