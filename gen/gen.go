// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package gen generates integer slices for sort benchmarks.
package gen

import (
	"strconv"
	"strings"

	"github.com/itsManjeet/sortbench/rand"
	"github.com/itsManjeet/sortbench/sorting"
	"golang.org/x/xerrors"
)

// Defaults used by the benchmark when nothing else is configured.
const (
	DefaultSize  = 10000
	DefaultMin   = 0
	DefaultMax   = 6000
	DefaultSwaps = 10
)

// ErrUnknownDistribution is returned for a distribution name or value that
// gen does not know how to generate.
var ErrUnknownDistribution = xerrors.New("gen: unknown distribution")

// A Distribution describes the order of a generated slice.
type Distribution int

const (
	// Random is uniformly distributed in [Min, Max].
	Random Distribution = iota
	// Reversed is size, size-1, ..., 1.
	Reversed
	// NearlySorted is a sorted Random slice disturbed by a few swaps.
	NearlySorted
)

var distNames = [...]string{
	Random:       "random",
	Reversed:     "reversed",
	NearlySorted: "nearly-sorted",
}

func (d Distribution) String() string {
	if d < 0 || int(d) >= len(distNames) {
		return "Distribution(" + strconv.Itoa(int(d)) + ")"
	}
	return distNames[d]
}

// Distributions returns every distribution in report order.
func Distributions() []Distribution {
	return []Distribution{Random, Reversed, NearlySorted}
}

// ParseDistribution returns the distribution named s, ignoring case.
// "nearly_sorted" and "nearly" are accepted for NearlySorted.
func ParseDistribution(s string) (Distribution, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "random", "uniform":
		return Random, nil
	case "reversed", "reverse":
		return Reversed, nil
	case "nearly-sorted", "nearly_sorted", "nearly":
		return NearlySorted, nil
	}
	return 0, xerrors.Errorf("%q: %w", s, ErrUnknownDistribution)
}

// A Generator produces slices of a given distribution. All randomness comes
// from Rand, so two Generators with equally seeded Rands produce the same
// slices.
type Generator struct {
	Rand     *rand.Rand
	Min, Max int // value range for Random and NearlySorted
	Swaps    int // number of random swaps applied to NearlySorted
}

// New returns a Generator using r and the default value range and swap count.
func New(r *rand.Rand) *Generator {
	return &Generator{Rand: r, Min: DefaultMin, Max: DefaultMax, Swaps: DefaultSwaps}
}

// Generate returns a new slice of length size with distribution d.
func (g *Generator) Generate(d Distribution, size int) ([]int, error) {
	if size < 0 {
		return nil, xerrors.Errorf("gen: negative size %d", size)
	}
	if d != Reversed && g.Min > g.Max {
		return nil, xerrors.Errorf("gen: empty value range [%d, %d]", g.Min, g.Max)
	}
	switch d {
	case Random:
		return RandomInts(g.Rand, size, g.Min, g.Max), nil
	case Reversed:
		return ReversedInts(size), nil
	case NearlySorted:
		return NearlySortedInts(g.Rand, size, g.Min, g.Max, g.Swaps), nil
	}
	return nil, xerrors.Errorf("%v: %w", d, ErrUnknownDistribution)
}

// RandomInts returns size values drawn uniformly from [lo, hi].
func RandomInts(r *rand.Rand, size, lo, hi int) []int {
	x := make([]int, size)
	for i := range x {
		x[i] = r.IntRange(lo, hi)
	}
	return x
}

// ReversedInts returns size, size-1, ..., 1.
func ReversedInts(size int) []int {
	x := make([]int, size)
	for i := range x {
		x[i] = size - i
	}
	return x
}

// NearlySortedInts returns size values drawn uniformly from [lo, hi],
// sorted ascending, after which swaps pairs of random positions are
// exchanged. A pair may name the same position twice.
func NearlySortedInts(r *rand.Rand, size, lo, hi, swaps int) []int {
	x := RandomInts(r, size, lo, hi)
	sorting.Sort(x)
	if size == 0 {
		return x
	}
	for k := 0; k < swaps; k++ {
		i, j := r.Intn(size), r.Intn(size)
		x[i], x[j] = x[j], x[i]
	}
	return x
}
