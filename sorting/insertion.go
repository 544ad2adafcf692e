// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sorting

// InsertionSort sorts x in ascending order using insertion sort.
// It runs in O(n) time on sorted input and O(n²) in the worst case.
func InsertionSort[E Number](x []E) {
	InsertionSortRange(x, 0, len(x)-1)
}

// InsertionSortRange sorts the inclusive range x[left:right+1] in place.
func InsertionSortRange[E Number](x []E, left, right int) {
	if left >= right {
		return
	}
	checkRange(len(x), left, right)
	s := sorter[E]{x: x}
	s.insertionSort(left, right)
}

func (s *sorter[E]) insertionSort(left, right int) {
	if s.st != nil {
		s.st.InsertionRuns++
	}
	x := s.x
	for i := left + 1; i <= right; i++ {
		key := x[i]
		j := i - 1
		for j >= left && s.less(key, x[j]) {
			x[j+1] = x[j]
			s.moved()
			j--
		}
		x[j+1] = key
	}
}
