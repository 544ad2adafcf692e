// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package report prints benchmark results.
package report

import (
	"fmt"
	"io"
	"runtime"
	"strconv"
	"text/tabwriter"

	"github.com/itsManjeet/sortbench/bench"
	"github.com/klauspost/cpuid/v2"
	"golang.org/x/xerrors"
)

// ErrUnknownFormat is returned by Write for an unsupported format name.
var ErrUnknownFormat = xerrors.New("report: unknown format")

// Write prints results to w in the named format, "text" or "table".
func Write(w io.Writer, format string, results []bench.Result) error {
	switch format {
	case "text", "":
		return Text(w, results)
	case "table":
		return Table(w, CurrentHost(), results)
	}
	return xerrors.Errorf("%q: %w", format, ErrUnknownFormat)
}

// Text prints a heading line for each algorithm followed by one elapsed
// time in milliseconds per line, in result order.
func Text(w io.Writer, results []bench.Result) error {
	ew := &errWriter{w: w}
	var heading string
	for _, r := range results {
		if r.Algorithm.Name != heading {
			heading = r.Algorithm.Name
			ew.printf("%s \n", heading)
		}
		ew.printf("%s\n", FormatMillis(r.Millis()))
	}
	return ew.err
}

// FormatMillis formats ms with six significant digits and no trailing
// zeros, e.g. 0.414917 or 38.7.
func FormatMillis(ms float64) string {
	return strconv.FormatFloat(ms, 'g', 6, 64)
}

// Host describes the machine a benchmark ran on.
type Host struct {
	CPU     string
	Cores   int
	GOOS    string
	GOARCH  string
	Version string
}

// CurrentHost describes this machine.
func CurrentHost() Host {
	h := Host{
		CPU:     cpuid.CPU.BrandName,
		Cores:   cpuid.CPU.LogicalCores,
		GOOS:    runtime.GOOS,
		GOARCH:  runtime.GOARCH,
		Version: runtime.Version(),
	}
	if h.CPU == "" {
		h.CPU = "unknown CPU"
	}
	if h.Cores == 0 {
		h.Cores = runtime.NumCPU()
	}
	return h
}

// Table prints a host line and then one aligned row per result.
func Table(w io.Writer, h Host, results []bench.Result) error {
	ew := &errWriter{w: w}
	ew.printf("# %s, %d logical cores, %s/%s, %s\n", h.CPU, h.Cores, h.GOOS, h.GOARCH, h.Version)
	if ew.err != nil {
		return ew.err
	}
	tw := tabwriter.NewWriter(w, 0, 8, 2, ' ', tabwriter.AlignRight)
	ew.w = tw
	ew.printf("algorithm\tdistribution\tsize\trun\tms\t\n")
	for _, r := range results {
		ew.printf("%s\t%s\t%d\t%d\t%s\t\n", r.Algorithm.Key, r.Distribution, r.Size, r.Run, FormatMillis(r.Millis()))
	}
	if ew.err != nil {
		return ew.err
	}
	return tw.Flush()
}

// errWriter remembers the first write error and skips later writes.
type errWriter struct {
	w   io.Writer
	err error
}

func (e *errWriter) printf(format string, args ...any) {
	if e.err != nil {
		return
	}
	_, e.err = fmt.Fprintf(e.w, format, args...)
}
