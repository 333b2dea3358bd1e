// Command itinera reads flight CSV files (or stdin) and prints the
// itineraries that can be assembled from them.
//
// Usage:
//
//	itinera [-config file] [-fmt flights|airports|human|debug] [-sub-itins]
//	        [-strategy indexed|naive] [-metrics-file file] [-v] [file ...]
package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/katalvlaran/itinera/config"
	"github.com/katalvlaran/itinera/flight"
	"github.com/katalvlaran/itinera/ingest"
	"github.com/katalvlaran/itinera/itinerary"
	"github.com/katalvlaran/itinera/logger"
	"github.com/katalvlaran/itinera/metrics"
	"github.com/katalvlaran/itinera/render"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("itinera", flag.ContinueOnError)
	fs.SetOutput(stderr)
	cfgPath := fs.String("config", "", "YAML configuration file")
	format := fs.String("fmt", "", "output format: flights|airports|human|debug")
	subItins := fs.Bool("sub-itins", false, "also print non-maximal itineraries")
	strategy := fs.String("strategy", "", "candidate lookup: indexed|naive")
	metricsFile := fs.String("metrics-file", "", "write prometheus metrics to this file")
	verbose := fs.Bool("v", false, "debug logging")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		fmt.Fprintln(stderr, "itinera:", err)
		return 2
	}

	// Flags win over file and environment, but only when given.
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "fmt":
			cfg.Output.Format = *format
		case "sub-itins":
			cfg.Output.SubItineraries = *subItins
		case "strategy":
			cfg.Strategy = *strategy
		case "metrics-file":
			cfg.Metrics.Textfile = *metricsFile
		case "v":
			if *verbose {
				cfg.Log.Level = "debug"
			}
		}
	})

	outFormat, err := render.ParseFormat(cfg.Output.Format)
	if err != nil {
		fmt.Fprintln(stderr, "itinera:", err)
		return 2
	}
	strat, err := itinerary.ParseStrategy(cfg.Strategy)
	if err != nil {
		fmt.Fprintln(stderr, "itinera:", err)
		return 2
	}
	policy := cfg.ItineraryPolicy()

	log, err := logger.New(logger.Options{Level: cfg.Log.Level, Development: cfg.Log.Development})
	if err != nil {
		fmt.Fprintln(stderr, "itinera:", err)
		return 1
	}
	defer func() { _ = log.Sync() }()

	m := metrics.NewMetrics(cfg.Metrics.Namespace)
	code := execute(job{
		inputs:     fs.Args(),
		stdin:      stdin,
		stdout:     stdout,
		format:     outFormat,
		includeSub: cfg.Output.SubItineraries,
		strategy:   strat,
		policy:     policy,
		log:        log,
		metrics:    m,
	})

	if cfg.Metrics.Textfile != "" {
		if err := m.WriteTextfile(cfg.Metrics.Textfile); err != nil {
			log.Error("metrics textfile not written", "path", cfg.Metrics.Textfile, "error", err)
			return 1
		}
	}

	return code
}

type job struct {
	inputs     []string
	stdin      io.Reader
	stdout     io.Writer
	format     render.Format
	includeSub bool
	strategy   itinerary.Strategy
	policy     itinerary.Policy
	log        logger.Logger
	metrics    *metrics.Metrics
}

func execute(j job) int {
	// 1. Ingest
	records, err := readInputs(j.inputs, j.stdin)
	if err != nil {
		j.metrics.ObserveError("ingest")
		j.log.Error("reading input failed", "error", err)
		return 1
	}
	j.log.Debug("input loaded", "records", len(records), "files", len(j.inputs))

	// 2. Sweep
	start := time.Now()
	set, err := itinerary.Build(records,
		itinerary.WithPolicy(j.policy),
		itinerary.WithStrategy(j.strategy),
		itinerary.WithLogger(j.log),
	)
	if err != nil {
		j.metrics.ObserveError("build")
		j.log.Error("building itineraries failed", "error", err)
		return 1
	}
	j.metrics.ObserveBuild(j.strategy, set.Stats, time.Since(start))

	// 3. Render
	r, err := render.New(j.format)
	if err != nil {
		j.metrics.ObserveError("render")
		j.log.Error("renderer unavailable", "error", err)
		return 1
	}
	out := bufio.NewWriter(j.stdout)
	n, err := render.Emit(out, r, set, j.includeSub)
	if err == nil {
		err = out.Flush()
	}
	if err != nil {
		j.metrics.ObserveError("render")
		j.log.Error("writing output failed", "error", err)
		return 1
	}
	j.metrics.ObserveEmitted(n)
	j.log.Info("done", "records", len(records), "itineraries", set.Len(), "emitted", n, "format", j.format.String())

	return 0
}

// readInputs concatenates the records of every named file; each file
// carries its own header. With no names, stdin is read.
func readInputs(paths []string, stdin io.Reader) ([]flight.Record, error) {
	if len(paths) == 0 {
		return ingest.ReadRecords(stdin)
	}

	var all []flight.Record
	for _, p := range paths {
		recs, err := readFile(p)
		if err != nil {
			return nil, err
		}
		all = append(all, recs...)
	}

	return all, nil
}

func readFile(path string) ([]flight.Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	recs, err := ingest.ReadRecords(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return recs, nil
}
