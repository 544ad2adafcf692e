// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package sorting implements an in-place introspective sort for numeric
// slices, together with the plain quicksort it is benchmarked against.
//
// Sort is a quicksort that tracks a recursion budget of 2*floor(lg(n))
// splits. Ranges shorter than InsertionThreshold are finished with insertion
// sort, and a range whose budget runs out is finished with heapsort, so the
// worst case stays O(n log n) and the recursion depth stays O(log n).
//
// QuickSort is a textbook Lomuto quicksort with the last element as pivot.
// It is quadratic on sorted and reverse-sorted input and is kept that way.
//
// Neither sort is stable.
package sorting

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

// Number is the set of element types the sorts accept.
type Number interface {
	constraints.Integer | constraints.Float
}

// InsertionThreshold is the range length below which Sort switches to
// insertion sort. A range [left, right] goes to insertion sort when
// right-left < InsertionThreshold, that is when it holds at most
// InsertionThreshold elements.
const InsertionThreshold = 16

// Sort sorts x in ascending order.
func Sort[E Number](x []E) {
	n := len(x)
	SortRange(x, 0, n-1, MaxDepth(n))
}

// SortRange sorts the inclusive range x[left:right+1] in place, allowing at
// most depthLimit nested quicksort splits before falling back to heapsort.
// Elements outside the range are not touched. A range with fewer than two
// elements is left alone.
func SortRange[E Number](x []E, left, right, depthLimit int) {
	if left >= right {
		return
	}
	checkRange(len(x), left, right)
	if depthLimit < 0 {
		panic(fmt.Sprintf("sorting: negative depth limit %d", depthLimit))
	}
	s := sorter[E]{x: x, threshold: InsertionThreshold, budget: depthLimit}
	s.introSort(left, right, depthLimit)
}

// MaxDepth returns the number of nested quicksort splits Sort allows for a
// slice of length n: 2*floor(lg(n)), or 0 when n <= 1.
func MaxDepth(n int) int {
	var depth int
	for i := n; i > 1; i >>= 1 {
		depth++
	}
	return depth * 2
}

// IsSorted reports whether x is sorted in ascending order.
func IsSorted[E Number](x []E) bool {
	for i := len(x) - 1; i > 0; i-- {
		if x[i] < x[i-1] {
			return false
		}
	}
	return true
}

func (s *sorter[E]) introSort(left, right, depthLimit int) {
	if left >= right {
		return
	}
	if right-left < s.threshold {
		s.insertionSort(left, right)
		return
	}
	if depthLimit == 0 {
		s.heapSort(left, right)
		return
	}
	s.split(s.budget - depthLimit + 1)
	i, j := s.partition(left, right)
	// [left, j] and [i, right] may both contain pivot-equal elements; that
	// only costs a little extra work.
	s.introSort(left, j, depthLimit-1)
	s.introSort(i, right, depthLimit-1)
}

// partition runs a two-pointer scan around the middle element of
// [left, right]. On return j < i, every element of x[left:j+1] is <= the
// pivot and every element of x[i:right+1] is >= the pivot.
func (s *sorter[E]) partition(left, right int) (i, j int) {
	x := s.x
	pivot := x[int(uint(left+right)>>1)]
	i, j = left, right
	for i <= j {
		for s.less(x[i], pivot) {
			i++
		}
		for s.less(pivot, x[j]) {
			j--
		}
		if i <= j {
			s.swap(i, j)
			i++
			j--
		}
	}
	return i, j
}

func checkRange(n, left, right int) {
	if left < 0 || right >= n {
		panic(fmt.Sprintf("sorting: range [%d, %d] out of bounds for length %d", left, right, n))
	}
}
