// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package bench times sort algorithms on generated inputs.
//
// A Harness generates one input per distribution and hands every algorithm
// its own copy of it, so all algorithms sort identical data. Timing covers
// only the sort call.
package bench

import (
	"context"
	"strings"
	"time"

	"github.com/itsManjeet/sortbench/gen"
	"github.com/itsManjeet/sortbench/internal/logging"
	"github.com/itsManjeet/sortbench/sorting"
	"golang.org/x/xerrors"
)

// An Algorithm is a named in-place sort.
type Algorithm struct {
	Key  string // short name used on the command line
	Name string // heading used in reports
	Sort func([]int)
}

var (
	// Baseline is the unbounded Lomuto quicksort.
	Baseline = Algorithm{Key: "quick", Name: "QUICK SORT", Sort: sorting.QuickSort[int]}
	// Hybrid is the depth-limited quicksort with heapsort and insertion sort
	// fallbacks.
	Hybrid = Algorithm{Key: "hybrid", Name: "QUICK + HEAP + INSERTION SORT", Sort: sorting.Sort[int]}
	// Heap is plain heapsort, for reference.
	Heap = Algorithm{Key: "heap", Name: "HEAP SORT", Sort: sorting.HeapSort[int]}
)

// Algorithms returns the algorithms a default run compares, in report order.
func Algorithms() []Algorithm {
	return []Algorithm{Baseline, Hybrid}
}

var (
	// ErrUnknownAlgorithm is returned by LookupAlgorithm.
	ErrUnknownAlgorithm = xerrors.New("bench: unknown algorithm")
	// ErrNotSorted is returned by a verifying Harness when a sort leaves its
	// input out of order.
	ErrNotSorted = xerrors.New("bench: output not sorted")
)

// LookupAlgorithm returns the algorithm whose Key is key, ignoring case.
func LookupAlgorithm(key string) (Algorithm, error) {
	for _, a := range []Algorithm{Baseline, Hybrid, Heap} {
		if strings.EqualFold(a.Key, strings.TrimSpace(key)) {
			return a, nil
		}
	}
	return Algorithm{}, xerrors.Errorf("%q: %w", key, ErrUnknownAlgorithm)
}

// Time runs sort on x and returns how long it took.
func Time(x []int, sort func([]int)) time.Duration {
	start := time.Now()
	sort(x)
	return time.Since(start)
}

// Millis converts d to fractional milliseconds.
func Millis(d time.Duration) float64 {
	return float64(d) / float64(time.Millisecond)
}

// A Result is one timed sort.
type Result struct {
	Algorithm    Algorithm
	Distribution gen.Distribution
	Size         int
	Run          int // 0-based repetition index
	Elapsed      time.Duration
	Sorted       bool // set only when the harness verifies output
}

// Millis returns r.Elapsed in fractional milliseconds.
func (r Result) Millis() float64 { return Millis(r.Elapsed) }

// An Observer is told about every Result as soon as it is measured.
type Observer interface {
	Observe(ctx context.Context, r Result)
}

// ObserverFunc adapts a function to an Observer.
type ObserverFunc func(ctx context.Context, r Result)

func (f ObserverFunc) Observe(ctx context.Context, r Result) { f(ctx, r) }

// Observers fans a Result out to each non-nil observer in order.
func Observers(obs ...Observer) Observer {
	return ObserverFunc(func(ctx context.Context, r Result) {
		for _, o := range obs {
			if o != nil {
				o.Observe(ctx, r)
			}
		}
	})
}

// A Plan says what a Harness runs.
type Plan struct {
	Size          int
	Repeat        int // runs per algorithm and distribution; at least 1
	Distributions []gen.Distribution
	Algorithms    []Algorithm
}

// DefaultPlan compares Baseline and Hybrid once on every distribution at the
// default size.
func DefaultPlan() Plan {
	return Plan{
		Size:          gen.DefaultSize,
		Repeat:        1,
		Distributions: gen.Distributions(),
		Algorithms:    Algorithms(),
	}
}

// A Harness runs a Plan.
type Harness struct {
	Generator *gen.Generator
	Observer  Observer       // may be nil
	Logger    logging.Logger // may be nil

	// Verify checks every output with sorting.IsSorted. Without it the
	// harness measures time only.
	Verify bool
}

// Run generates the inputs for p and times every algorithm on each of them.
// Results are ordered by algorithm, then distribution, then run. Run stops
// with ctx.Err() if ctx is done between two sorts.
func (h *Harness) Run(ctx context.Context, p Plan) ([]Result, error) {
	if p.Repeat < 1 {
		p.Repeat = 1
	}
	log := h.Logger
	if log == nil {
		log = logging.Nop()
	}

	inputs := make([][]int, len(p.Distributions))
	for i, d := range p.Distributions {
		x, err := h.Generator.Generate(d, p.Size)
		if err != nil {
			return nil, err
		}
		inputs[i] = x
	}

	results := make([]Result, 0, len(p.Algorithms)*len(p.Distributions)*p.Repeat)
	x := make([]int, p.Size)
	for _, a := range p.Algorithms {
		for i, d := range p.Distributions {
			for run := 0; run < p.Repeat; run++ {
				if err := ctx.Err(); err != nil {
					return results, err
				}
				copy(x, inputs[i])
				r := Result{
					Algorithm:    a,
					Distribution: d,
					Size:         p.Size,
					Run:          run,
					Elapsed:      Time(x, a.Sort),
				}
				if h.Verify {
					r.Sorted = sorting.IsSorted(x)
				}
				log.Debug("sorted", "algorithm", a.Key, "distribution", d.String(), "size", p.Size, "run", run, "ms", r.Millis())
				if h.Observer != nil {
					h.Observer.Observe(ctx, r)
				}
				results = append(results, r)
				if h.Verify && !r.Sorted {
					return results, xerrors.Errorf("%s on %v input: %w", a.Name, d, ErrNotSorted)
				}
			}
		}
	}
	return results, nil
}
