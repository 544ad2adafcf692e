// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sorting

// HeapSort sorts x in ascending order using heapsort.
// It runs in O(n log n) time and O(1) extra space on every input.
func HeapSort[E Number](x []E) {
	HeapSortRange(x, 0, len(x)-1)
}

// HeapSortRange sorts the inclusive range x[left:right+1] in place.
func HeapSortRange[E Number](x []E, left, right int) {
	if left >= right {
		return
	}
	checkRange(len(x), left, right)
	s := sorter[E]{x: x}
	s.heapSort(left, right)
}

// heapSort builds a max-heap over [left, right]. Heap node k lives at
// x[left+k].
func (s *sorter[E]) heapSort(left, right int) {
	if s.st != nil {
		s.st.HeapRuns++
	}
	n := right - left + 1
	for i := n/2 - 1; i >= 0; i-- {
		s.siftDown(left, i, n)
	}
	for i := n - 1; i > 0; i-- {
		s.swap(left, left+i)
		s.siftDown(left, 0, i)
	}
}

// siftDown restores the heap property for node i of the n-node heap rooted
// at x[base].
func (s *sorter[E]) siftDown(base, i, n int) {
	x := s.x
	for {
		largest := i
		l := 2*i + 1
		r := 2*i + 2
		if l < n && s.less(x[base+largest], x[base+l]) {
			largest = l
		}
		if r < n && s.less(x[base+largest], x[base+r]) {
			largest = r
		}
		if largest == i {
			return
		}
		s.swap(base+i, base+largest)
		i = largest
	}
}
