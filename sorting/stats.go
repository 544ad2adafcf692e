// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sorting

import "fmt"

// Stats counts the work done by one sort call.
type Stats struct {
	Comparisons int // element comparisons
	Swaps       int // element exchanges, including self-swaps
	Moves       int // single-element shifts made by insertion sort

	Splits     int // quicksort partitions
	MaxNesting int // longest chain of nested quicksort partitions

	InsertionRuns int // ranges finished by insertion sort
	HeapRuns      int // ranges finished by heapsort
}

// Ops returns the total number of element operations recorded in s.
func (s Stats) Ops() int {
	return s.Comparisons + s.Swaps + s.Moves
}

// SortCounted is Sort, reporting the work it did.
func SortCounted[E Number](x []E) Stats {
	n := len(x)
	return SortRangeCounted(x, 0, n-1, MaxDepth(n), InsertionThreshold)
}

// SortRangeCounted is SortRange with a caller-chosen insertion threshold,
// reporting the work it did. A threshold of 0 disables the insertion sort
// base case, so every range of two or more elements is partitioned until the
// depth limit is reached.
func SortRangeCounted[E Number](x []E, left, right, depthLimit, threshold int) Stats {
	var st Stats
	if left >= right {
		return st
	}
	checkRange(len(x), left, right)
	if depthLimit < 0 {
		panic(fmt.Sprintf("sorting: negative depth limit %d", depthLimit))
	}
	s := sorter[E]{x: x, threshold: threshold, budget: depthLimit, st: &st}
	s.introSort(left, right, depthLimit)
	return st
}

// QuickSortCounted is QuickSort, reporting the work it did.
func QuickSortCounted[E Number](x []E) Stats {
	var st Stats
	s := sorter[E]{x: x, st: &st}
	s.quickSort(0, len(x)-1, 1)
	return st
}

// sorter carries the slice being sorted and, when st is non-nil, the
// counters every step reports to. The uncounted entry points leave st nil.
type sorter[E Number] struct {
	x         []E
	threshold int
	budget    int
	st        *Stats
}

func (s *sorter[E]) less(a, b E) bool {
	if s.st != nil {
		s.st.Comparisons++
	}
	return a < b
}

func (s *sorter[E]) swap(i, j int) {
	if s.st != nil {
		s.st.Swaps++
	}
	s.x[i], s.x[j] = s.x[j], s.x[i]
}

func (s *sorter[E]) moved() {
	if s.st != nil {
		s.st.Moves++
	}
}

// split records a quicksort partition at the given nesting level (1 for the
// outermost call).
func (s *sorter[E]) split(level int) {
	if s.st == nil {
		return
	}
	s.st.Splits++
	if level > s.st.MaxNesting {
		s.st.MaxNesting = level
	}
}
