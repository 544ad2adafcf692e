// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Sortbench times the hybrid introsort against a plain quicksort on random,
// reverse-sorted and nearly sorted integer slices.
//
// With no arguments it sorts 10000 elements of each distribution once with
// each algorithm and prints the times in milliseconds:
//
//	QUICK SORT
//	<random ms>
//	<reversed ms>
//	<nearly sorted ms>
//	QUICK + HEAP + INSERTION SORT
//	...
//
// Usage:
//
//	sortbench [--config file.toml] [--size n] [--seed s] [--repeat n]
//	          [--distribution d]... [--algorithm a]... [--verify]
//	          [--format text|table] [--log-backend b] [--log-level l]
//	          [--telemetry] [--prom-file path]
//
// Flags override the values read from --config. A seed of 0 picks one from
// the clock; the chosen seed is logged so the run can be repeated.
package main

import (
	"context"
	"io"
	"log"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"time"

	"github.com/itsManjeet/sortbench/bench"
	"github.com/itsManjeet/sortbench/gen"
	"github.com/itsManjeet/sortbench/internal/config"
	"github.com/itsManjeet/sortbench/internal/logging"
	"github.com/itsManjeet/sortbench/internal/telemetry"
	"github.com/itsManjeet/sortbench/rand"
	"github.com/itsManjeet/sortbench/report"
	"github.com/urfave/cli"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("sortbench: ")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := newApp(ctx, os.Stdout, os.Stderr).Run(os.Args)
	stop()
	if err != nil {
		log.Fatal(err)
	}
}

func newApp(ctx context.Context, stdout, stderr io.Writer) *cli.App {
	def := config.Default()
	app := cli.NewApp()
	app.Name = "sortbench"
	app.Usage = "time hybrid introsort against plain quicksort"
	app.HideVersion = true
	app.Writer = stdout
	app.ErrWriter = stderr
	app.Flags = []cli.Flag{
		cli.StringFlag{Name: "config, c", Usage: "TOML `file` to read settings from"},
		cli.IntFlag{Name: "size, n", Usage: "elements per input (default " + strconv.Itoa(def.Size) + ")"},
		cli.IntFlag{Name: "min", Usage: "smallest random value (default " + strconv.Itoa(def.Min) + ")"},
		cli.IntFlag{Name: "max", Usage: "largest random value (default " + strconv.Itoa(def.Max) + ")"},
		cli.IntFlag{Name: "swaps", Usage: "swaps applied to nearly sorted input (default " + strconv.Itoa(def.Swaps) + ")"},
		cli.Uint64Flag{Name: "seed", Usage: "random seed; 0 picks one from the clock"},
		cli.IntFlag{Name: "repeat, r", Usage: "runs per algorithm and distribution (default 1)"},
		cli.StringSliceFlag{Name: "distribution, d", Usage: "input distribution: " + strings.Join(def.Distributions, ", ")},
		cli.StringSliceFlag{Name: "algorithm, a", Usage: "algorithm to time: quick, hybrid, heap"},
		cli.BoolFlag{Name: "verify", Usage: "fail if a sort leaves its input unsorted"},
		cli.StringFlag{Name: "format, f", Usage: "report format: text or table (default text)"},
		cli.StringFlag{Name: "log-backend", Usage: "zap, zerolog, logrus, gokit or logr (default zap)"},
		cli.StringFlag{Name: "log-level", Usage: "debug, info or error (default info)"},
		cli.BoolFlag{Name: "telemetry", Usage: "print OpenTelemetry spans and metrics to stderr"},
		cli.StringFlag{Name: "prom-file", Usage: "write Prometheus metrics to this textfile"},
	}
	app.Action = func(c *cli.Context) error {
		cfg, err := loadConfig(c)
		if err != nil {
			return err
		}
		return run(ctx, cfg, stdout, stderr)
	}
	return app
}

// loadConfig layers the flags that were set over the config file over the
// defaults.
func loadConfig(c *cli.Context) (config.Config, error) {
	cfg := config.Default()
	if path := c.String("config"); path != "" {
		var err error
		if cfg, err = config.Load(path); err != nil {
			return config.Config{}, err
		}
	}
	ints := map[string]*int{
		"size":   &cfg.Size,
		"min":    &cfg.Min,
		"max":    &cfg.Max,
		"swaps":  &cfg.Swaps,
		"repeat": &cfg.Repeat,
	}
	for name, p := range ints {
		if c.IsSet(name) {
			*p = c.Int(name)
		}
	}
	if c.IsSet("seed") {
		cfg.Seed = c.Uint64("seed")
	}
	if c.IsSet("distribution") {
		cfg.Distributions = c.StringSlice("distribution")
	}
	if c.IsSet("algorithm") {
		cfg.Algorithms = c.StringSlice("algorithm")
	}
	if c.IsSet("verify") {
		cfg.Verify = c.Bool("verify")
	}
	if c.IsSet("format") {
		cfg.Format = c.String("format")
	}
	if c.IsSet("log-backend") {
		cfg.Log.Backend = c.String("log-backend")
	}
	if c.IsSet("log-level") {
		cfg.Log.Level = c.String("log-level")
	}
	if c.IsSet("telemetry") {
		cfg.Telemetry = c.Bool("telemetry")
	}
	if c.IsSet("prom-file") {
		cfg.PromFile = c.String("prom-file")
	}
	return cfg, cfg.Validate()
}

func run(ctx context.Context, cfg config.Config, stdout, stderr io.Writer) (err error) {
	lvl, err := logging.ParseLevel(cfg.Log.Level)
	if err != nil {
		return err
	}
	logger, err := logging.New(logging.Backend(cfg.Log.Backend), stderr, lvl)
	if err != nil {
		return err
	}
	plan, err := cfg.Plan()
	if err != nil {
		return err
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	g := gen.New(rand.NewPCG(seed))
	g.Min, g.Max, g.Swaps = cfg.Min, cfg.Max, cfg.Swaps

	var observers []bench.Observer
	var prom *telemetry.Prometheus
	if cfg.PromFile != "" {
		prom = telemetry.NewPrometheus()
		observers = append(observers, prom)
	}
	if cfg.Telemetry {
		tp, mp, shutdown, terr := telemetry.Stdout(stderr)
		if terr != nil {
			return terr
		}
		defer func() {
			if serr := shutdown(context.Background()); serr != nil && err == nil {
				err = serr
			}
		}()
		o, terr := telemetry.NewOTel(tp, mp)
		if terr != nil {
			return terr
		}
		observers = append(observers, o)
	}

	logger.Info("starting benchmark", "size", plan.Size, "seed", seed, "repeat", plan.Repeat,
		"distributions", len(plan.Distributions), "algorithms", len(plan.Algorithms))
	h := &bench.Harness{
		Generator: g,
		Observer:  bench.Observers(observers...),
		Logger:    logger,
		Verify:    cfg.Verify,
	}
	results, err := h.Run(ctx, plan)
	if err != nil {
		logger.Error("benchmark failed", "err", err)
		return err
	}
	if err := report.Write(stdout, cfg.Format, results); err != nil {
		return err
	}
	if prom != nil {
		if err := prom.WriteTextfile(cfg.PromFile); err != nil {
			return err
		}
		logger.Info("wrote metrics", "path", cfg.PromFile)
	}
	logger.Info("benchmark finished", "runs", len(results))
	return nil
}
