// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sorting

// QuickSort sorts x in ascending order using an unbounded Lomuto quicksort
// that always pivots on the last element of the range.
//
// QuickSort takes Θ(n²) time and recurses Θ(n) deep on sorted and
// reverse-sorted input. It exists as a baseline for Sort; prefer Sort.
func QuickSort[E Number](x []E) {
	QuickSortRange(x, 0, len(x)-1)
}

// QuickSortRange sorts the inclusive range x[low:high+1] in place.
func QuickSortRange[E Number](x []E, low, high int) {
	if low >= high {
		return
	}
	checkRange(len(x), low, high)
	s := sorter[E]{x: x}
	s.quickSort(low, high, 1)
}

func (s *sorter[E]) quickSort(low, high, level int) {
	if low >= high {
		return
	}
	s.split(level)
	p := s.lomuto(low, high)
	s.quickSort(low, p-1, level+1)
	s.quickSort(p+1, high, level+1)
}

// lomuto partitions [low, high] around x[high] and returns the pivot's final
// index: everything left of it is smaller, everything right of it is not.
func (s *sorter[E]) lomuto(low, high int) int {
	x := s.x
	pivot := x[high]
	i := low - 1
	for j := low; j < high; j++ {
		if s.less(x[j], pivot) {
			i++
			s.swap(i, j)
		}
	}
	s.swap(i+1, high)
	return i + 1
}
