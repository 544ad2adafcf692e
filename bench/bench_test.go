// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bench

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/itsManjeet/sortbench/gen"
	"github.com/itsManjeet/sortbench/internal/logging"
	"github.com/itsManjeet/sortbench/rand"
	"github.com/stretchr/testify/require"
	"golang.org/x/xerrors"
)

func newHarness(seed uint64) *Harness {
	return &Harness{Generator: gen.New(rand.NewPCG(seed)), Verify: true}
}

func TestRunOrderAndShape(t *testing.T) {
	t.Parallel()

	h := newHarness(1)
	p := Plan{Size: 500, Repeat: 2, Distributions: gen.Distributions(), Algorithms: Algorithms()}
	results, err := h.Run(context.Background(), p)
	require.Nil(t, err)
	require.Len(t, results, 2*3*2)

	i := 0
	for _, a := range p.Algorithms {
		for _, d := range p.Distributions {
			for run := 0; run < p.Repeat; run++ {
				r := results[i]
				require.Equal(t, a.Key, r.Algorithm.Key)
				require.Equal(t, d, r.Distribution)
				require.Equal(t, run, r.Run)
				require.Equal(t, 500, r.Size)
				require.True(t, r.Sorted)
				require.True(t, r.Elapsed >= 0)
				i++
			}
		}
	}
}

func TestRunGivesEveryAlgorithmTheSameInput(t *testing.T) {
	t.Parallel()

	var seen [][]int
	record := Algorithm{Key: "record", Name: "RECORD", Sort: func(x []int) {
		seen = append(seen, append([]int(nil), x...))
	}}
	h := &Harness{Generator: gen.New(rand.NewPCG(2))}
	p := Plan{Size: 64, Repeat: 1, Distributions: []gen.Distribution{gen.Random}, Algorithms: []Algorithm{record, Hybrid, record}}
	_, err := h.Run(context.Background(), p)
	require.Nil(t, err)
	require.Len(t, seen, 2)
	require.Equal(t, seen[0], seen[1])
}

func TestRunVerifyCatchesBrokenSort(t *testing.T) {
	t.Parallel()

	broken := Algorithm{Key: "noop", Name: "NOOP", Sort: func([]int) {}}
	h := newHarness(3)
	p := Plan{Size: 100, Distributions: []gen.Distribution{gen.Reversed}, Algorithms: []Algorithm{broken}}
	results, err := h.Run(context.Background(), p)
	require.True(t, xerrors.Is(err, ErrNotSorted))
	require.Len(t, results, 1)
	require.False(t, results[0].Sorted)

	h.Verify = false
	_, err = h.Run(context.Background(), p)
	require.Nil(t, err)
}

func TestRunStopsWhenContextDone(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	calls := 0
	cancelling := Algorithm{Key: "c", Name: "C", Sort: func([]int) {
		calls++
		cancel()
	}}
	h := &Harness{Generator: gen.New(rand.NewPCG(4))}
	results, err := h.Run(ctx, Plan{Size: 10, Repeat: 5, Distributions: gen.Distributions(), Algorithms: []Algorithm{cancelling}})
	require.Equal(t, context.Canceled, err)
	require.Equal(t, 1, calls)
	require.Len(t, results, 1)
}

func TestRunObserverAndLogger(t *testing.T) {
	t.Parallel()

	var observed []Result
	var buf bytes.Buffer
	log, err := logging.New(logging.Zap, &buf, logging.LevelDebug)
	require.Nil(t, err)

	h := newHarness(5)
	h.Logger = log
	h.Observer = Observers(nil, ObserverFunc(func(_ context.Context, r Result) {
		observed = append(observed, r)
	}))
	results, err := h.Run(context.Background(), Plan{Size: 50, Distributions: gen.Distributions(), Algorithms: Algorithms()})
	require.Nil(t, err)
	require.Len(t, observed, len(results))
	for i, r := range results {
		require.Equal(t, r.Algorithm.Key, observed[i].Algorithm.Key)
		require.Equal(t, r.Distribution, observed[i].Distribution)
		require.Equal(t, r.Elapsed, observed[i].Elapsed)
	}
	require.Contains(t, buf.String(), `"algorithm":"hybrid"`)
	require.Contains(t, buf.String(), `"distribution":"nearly-sorted"`)
}

func TestRunPropagatesGeneratorErrors(t *testing.T) {
	t.Parallel()

	h := newHarness(6)
	_, err := h.Run(context.Background(), Plan{Size: -1, Distributions: []gen.Distribution{gen.Random}, Algorithms: Algorithms()})
	require.NotNil(t, err)

	_, err = h.Run(context.Background(), Plan{Size: 10, Distributions: []gen.Distribution{42}, Algorithms: Algorithms()})
	require.True(t, xerrors.Is(err, gen.ErrUnknownDistribution))
}

func TestLookupAlgorithm(t *testing.T) {
	t.Parallel()

	for _, a := range []Algorithm{Baseline, Hybrid, Heap} {
		got, err := LookupAlgorithm(a.Key)
		require.Nil(t, err)
		require.Equal(t, a.Name, got.Name)
	}
	got, err := LookupAlgorithm(" HYBRID ")
	require.Nil(t, err)
	require.Equal(t, Hybrid.Name, got.Name)

	_, err = LookupAlgorithm("bogo")
	require.True(t, xerrors.Is(err, ErrUnknownAlgorithm))
}

func TestTimeAndMillis(t *testing.T) {
	t.Parallel()

	x := []int{3, 1, 2}
	d := Time(x, Hybrid.Sort)
	require.Equal(t, []int{1, 2, 3}, x)
	require.True(t, d >= 0)

	require.Equal(t, 1.5, Millis(1500*time.Microsecond))
	require.Equal(t, 0.25, Result{Elapsed: 250 * time.Microsecond}.Millis())
}

func TestDefaultPlan(t *testing.T) {
	t.Parallel()

	p := DefaultPlan()
	require.Equal(t, gen.DefaultSize, p.Size)
	require.Equal(t, 1, p.Repeat)
	require.Len(t, p.Distributions, 3)
	require.Equal(t, "QUICK SORT", p.Algorithms[0].Name)
	require.Equal(t, "QUICK + HEAP + INSERTION SORT", p.Algorithms[1].Name)
}
