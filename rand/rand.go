// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package rand provides explicitly seeded pseudo-random number generators.
//
// There is no package-level generator: callers construct a Rand from a seed
// and pass it to whatever needs random values, so runs can be reproduced.
package rand

import "math"

// A Source is a source of uniformly distributed pseudo-random uint64 values.
type Source interface {
	Uint64() uint64
}

// A Rand draws integers from a Source.
// A Rand is not safe for concurrent use.
type Rand struct {
	src Source
}

// New returns a Rand drawing from src.
func New(src Source) *Rand {
	return &Rand{src: src}
}

// NewPCG returns a Rand drawing from a PCGSource seeded with seed.
func NewPCG(seed uint64) *Rand {
	return New(NewPCGSource(seed))
}

// Uint64 returns a pseudo-random 64-bit value.
func (r *Rand) Uint64() uint64 {
	return r.src.Uint64()
}

// Int63 returns a non-negative pseudo-random 63-bit integer as an int64.
func (r *Rand) Int63() int64 {
	return int64(r.src.Uint64() >> 1)
}

// Uint64n returns a pseudo-random number in [0, n). It panics if n == 0.
func (r *Rand) Uint64n(n uint64) uint64 {
	if n == 0 {
		panic("rand: invalid argument to Uint64n")
	}
	if n&(n-1) == 0 {
		return r.src.Uint64() & (n - 1)
	}
	// Reject the 2⁶⁴ mod n smallest values so the rest divide evenly.
	thresh := -n % n
	for {
		v := r.src.Uint64()
		if v >= thresh {
			return v % n
		}
	}
}

// Intn returns a pseudo-random number in [0, n). It panics if n <= 0.
func (r *Rand) Intn(n int) int {
	if n <= 0 {
		panic("rand: invalid argument to Intn")
	}
	return int(r.Uint64n(uint64(n)))
}

// IntRange returns a pseudo-random number in the closed interval [lo, hi].
// It panics if lo > hi.
func (r *Rand) IntRange(lo, hi int) int {
	if lo > hi {
		panic("rand: invalid arguments to IntRange")
	}
	span := uint64(hi) - uint64(lo)
	if span == math.MaxUint64 {
		return int(r.src.Uint64())
	}
	return lo + int(r.Uint64n(span+1))
}
