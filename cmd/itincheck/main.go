// Command itincheck re-validates a debug dump produced by
// "itinera -fmt debug" against the connection policy.
//
// Usage:
//
//	itincheck [-config file] [dump.json]
//
// Without a file argument the dump is read from stdin.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/katalvlaran/itinera/config"
	"github.com/katalvlaran/itinera/logger"
	"github.com/katalvlaran/itinera/render"
	"github.com/katalvlaran/itinera/verify"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("itincheck", flag.ContinueOnError)
	fs.SetOutput(stderr)
	cfgPath := fs.String("config", "", "YAML configuration file (policy section is used)")
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if fs.NArg() > 1 {
		fmt.Fprintln(stderr, "usage: itincheck [-config file] [dump.json]")
		return 2
	}

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		fmt.Fprintln(stderr, "itincheck:", err)
		return 2
	}

	log, err := logger.New(logger.Options{Level: cfg.Log.Level, Development: cfg.Log.Development})
	if err != nil {
		fmt.Fprintln(stderr, "itincheck:", err)
		return 1
	}
	defer func() { _ = log.Sync() }()

	in := stdin
	if fs.NArg() == 1 {
		f, err := os.Open(fs.Arg(0))
		if err != nil {
			log.Error("opening dump failed", "error", err)
			return 1
		}
		defer f.Close()
		in = f
	}

	entries, err := render.DecodeDebug(in)
	if err != nil {
		log.Error("decoding dump failed", "error", err)
		return 1
	}

	checked, err := verify.Dump(entries, cfg.ItineraryPolicy())
	if err != nil {
		fmt.Fprintln(stdout, "Invalid itinerary:", err)
		log.Debug("verification stopped", "checked", checked, "entries", len(entries))
		return 1
	}

	log.Debug("verification finished", "checked", checked, "entries", len(entries))
	fmt.Fprintln(stdout, "All itineraries are valid.")

	return 0
}
