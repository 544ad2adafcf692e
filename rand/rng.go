// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rand

// PCG RXS M XS 64 parameters, from O'Neill, "PCG: A Family of Simple Fast
// Space-Efficient Statistically Good Algorithms for Random Number
// Generation" (http://www.pcg-random.org/).
const (
	pcgMul  = 6364136223846793005
	pcgInc  = 1442695040888963407
	pcgPerm = 12605985483714917081
)

// PCGSource is a Source backed by a single 64-bit word of state.
// Inputs built from the same seed are identical on every platform.
type PCGSource struct {
	state uint64
}

// NewPCGSource returns a PCGSource seeded with seed.
func NewPCGSource(seed uint64) *PCGSource {
	return &PCGSource{state: seed}
}

// Seed restarts the sequence at seed.
func (s *PCGSource) Seed(seed uint64) { s.state = seed }

// Uint64 advances the state and returns the permuted previous state.
func (s *PCGSource) Uint64() uint64 {
	x := s.state
	s.state = x*pcgMul + pcgInc
	return permute(x)
}

// permute is the RXS M XS output function.
func permute(x uint64) uint64 {
	x = (x ^ x>>(x>>59+5)) * pcgPerm
	return x ^ x>>43
}
