// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rand

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestPCGSourceSequence(t *testing.T) {
	for _, test := range []struct {
		seed uint64
		want []uint64
	}{
		{1, []uint64{12605985483715718391, 13112265920887089679, 13890324607627709258}},
		{42, []uint64{7101797662165212071, 11966180113123457027, 9748002374138552784}},
	} {
		src := NewPCGSource(test.seed)
		got := make([]uint64, len(test.want))
		for i := range got {
			got[i] = src.Uint64()
		}
		if diff := cmp.Diff(test.want, got); diff != "" {
			t.Errorf("seed %d: mismatch (-want, +got):\n%s", test.seed, diff)
		}
	}
}

func TestSeedResets(t *testing.T) {
	src := NewPCGSource(9)
	first := src.Uint64()
	src.Uint64()
	src.Seed(9)
	if got := src.Uint64(); got != first {
		t.Errorf("after Seed(9): got %d, want %d", got, first)
	}
}

func TestSameSeedSameValues(t *testing.T) {
	a, b := NewPCG(2024), NewPCG(2024)
	for i := 0; i < 100; i++ {
		if x, y := a.Intn(1000), b.Intn(1000); x != y {
			t.Fatalf("draw %d: %d != %d", i, x, y)
		}
	}
}

func TestIntnBounds(t *testing.T) {
	r := NewPCG(3)
	for _, n := range []int{1, 2, 3, 7, 10, 1 << 10, 6001, math.MaxInt} {
		for i := 0; i < 200; i++ {
			if v := r.Intn(n); v < 0 || v >= n {
				t.Fatalf("Intn(%d) = %d", n, v)
			}
		}
	}
}

func TestIntRangeBounds(t *testing.T) {
	r := NewPCG(4)
	seen := map[int]bool{}
	for i := 0; i < 1000; i++ {
		v := r.IntRange(-2, 2)
		if v < -2 || v > 2 {
			t.Fatalf("IntRange(-2, 2) = %d", v)
		}
		seen[v] = true
	}
	if len(seen) != 5 {
		t.Errorf("IntRange(-2, 2) produced %d distinct values in 1000 draws, want 5", len(seen))
	}
	if v := r.IntRange(7, 7); v != 7 {
		t.Errorf("IntRange(7, 7) = %d", v)
	}
	// The full int range must not overflow.
	r.IntRange(math.MinInt, math.MaxInt)
}

func TestInvalidArgumentsPanic(t *testing.T) {
	r := NewPCG(5)
	for name, f := range map[string]func(){
		"Intn(0)":        func() { r.Intn(0) },
		"Intn(-1)":       func() { r.Intn(-1) },
		"Uint64n(0)":     func() { r.Uint64n(0) },
		"IntRange(2, 1)": func() { r.IntRange(2, 1) },
	} {
		func() {
			defer func() {
				if recover() == nil {
					t.Errorf("%s did not panic", name)
				}
			}()
			f()
		}()
	}
}
