// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package config holds the sortbench settings and loads them from TOML.
package config

import (
	"os"

	"github.com/itsManjeet/sortbench/bench"
	"github.com/itsManjeet/sortbench/gen"
	"github.com/itsManjeet/sortbench/internal/logging"
	"github.com/pelletier/go-toml"
	"golang.org/x/xerrors"
)

// ErrInvalid wraps every validation failure.
var ErrInvalid = xerrors.New("config: invalid")

// Config is a complete benchmark configuration.
type Config struct {
	Size  int    `toml:"size"`
	Min   int    `toml:"min"`
	Max   int    `toml:"max"`
	Swaps int    `toml:"swaps"`
	Seed  uint64 `toml:"seed"` // 0 picks a seed from the clock

	Repeat        int      `toml:"repeat"`
	Distributions []string `toml:"distributions"`
	Algorithms    []string `toml:"algorithms"`
	Verify        bool     `toml:"verify"`

	Format string    `toml:"format"` // "text" or "table"
	Log    LogConfig `toml:"log"`

	Telemetry bool   `toml:"telemetry"` // export traces and metrics to stderr
	PromFile  string `toml:"prom_file"` // Prometheus textfile to write, if set
}

// LogConfig selects the logging backend and threshold.
type LogConfig struct {
	Backend string `toml:"backend"`
	Level   string `toml:"level"`
}

// Default returns the stock benchmark configuration: 10000
// elements, values in [0, 6000], 10 swaps, both algorithms on all three
// distributions, once each.
func Default() Config {
	var dists []string
	for _, d := range gen.Distributions() {
		dists = append(dists, d.String())
	}
	var algs []string
	for _, a := range bench.Algorithms() {
		algs = append(algs, a.Key)
	}
	return Config{
		Size:          gen.DefaultSize,
		Min:           gen.DefaultMin,
		Max:           gen.DefaultMax,
		Swaps:         gen.DefaultSwaps,
		Repeat:        1,
		Distributions: dists,
		Algorithms:    algs,
		Format:        "text",
		Log:           LogConfig{Backend: string(logging.Zap), Level: "info"},
	}
}

// Load reads the TOML file at path over Default. Keys missing from the file
// keep their default values.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, xerrors.Errorf("config: %w", err)
	}
	return Parse(data)
}

// Parse decodes TOML data over Default.
func Parse(data []byte) (Config, error) {
	c := Default()
	if err := toml.Unmarshal(data, &c); err != nil {
		return Config{}, xerrors.Errorf("config: %w", err)
	}
	return c, nil
}

// Validate reports the first problem with c, wrapped in ErrInvalid.
func (c Config) Validate() error {
	switch {
	case c.Size < 0:
		return xerrors.Errorf("size %d is negative: %w", c.Size, ErrInvalid)
	case c.Min > c.Max:
		return xerrors.Errorf("min %d is greater than max %d: %w", c.Min, c.Max, ErrInvalid)
	case c.Swaps < 0:
		return xerrors.Errorf("swaps %d is negative: %w", c.Swaps, ErrInvalid)
	case c.Repeat < 1:
		return xerrors.Errorf("repeat %d is less than 1: %w", c.Repeat, ErrInvalid)
	case len(c.Distributions) == 0:
		return xerrors.Errorf("no distributions: %w", ErrInvalid)
	case len(c.Algorithms) == 0:
		return xerrors.Errorf("no algorithms: %w", ErrInvalid)
	case c.Format != "text" && c.Format != "table":
		return xerrors.Errorf("unknown format %q: %w", c.Format, ErrInvalid)
	}
	if _, err := c.Plan(); err != nil {
		return xerrors.Errorf("%v: %w", err, ErrInvalid)
	}
	if _, err := logging.ParseLevel(c.Log.Level); err != nil {
		return xerrors.Errorf("%v: %w", err, ErrInvalid)
	}
	for _, b := range logging.Backends() {
		if string(b) == c.Log.Backend {
			return nil
		}
	}
	return xerrors.Errorf("unknown log backend %q: %w", c.Log.Backend, ErrInvalid)
}

// Plan resolves the distribution and algorithm names in c.
func (c Config) Plan() (bench.Plan, error) {
	p := bench.Plan{Size: c.Size, Repeat: c.Repeat}
	for _, name := range c.Distributions {
		d, err := gen.ParseDistribution(name)
		if err != nil {
			return bench.Plan{}, err
		}
		p.Distributions = append(p.Distributions, d)
	}
	for _, key := range c.Algorithms {
		a, err := bench.LookupAlgorithm(key)
		if err != nil {
			return bench.Plan{}, err
		}
		p.Algorithms = append(p.Algorithms, a)
	}
	return p, nil
}
