// Copyright 2022 Matrix Origin
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package heap provides binary min-heap primitives over caller-owned
// slices. less reports whether a ranks before b; the element ranked
// first sits at index 0.
package heap

// SiftDown restores the heap order below start by moving vs[start] down
// until both children rank after it. Nodes at limit and beyond are not
// part of the heap. Children of start and every node below it, up to
// limit, must already satisfy the heap order. It reports whether any
// element moved.
func SiftDown[T any](vs []T, less func(a, b T) bool, start, limit int) bool {
	i := start
	for {
		j1 := 2*i + 1
		if j1 >= limit || j1 < 0 { // j1 < 0 after int overflow
			break
		}
		j := j1 // left child
		if j2 := j1 + 1; j2 < limit && less(vs[j2], vs[j1]) {
			j = j2 // = 2*i + 2  // right child
		}
		if !less(vs[j], vs[i]) {
			break
		}
		vs[i], vs[j] = vs[j], vs[i]
		i = j
	}
	return i > start
}

// SiftUp restores the heap order above j by moving vs[j] up until its
// parent ranks before it. It reports whether any element moved.
func SiftUp[T any](vs []T, less func(a, b T) bool, j int) bool {
	j0 := j
	for {
		i := (j - 1) / 2 // parent
		if i == j || !less(vs[j], vs[i]) {
			break
		}
		vs[i], vs[j] = vs[j], vs[i]
		j = i
	}
	return j < j0
}

// Build arranges vs into heap order in place. It walks the internal
// nodes from the last parent back to the root, sifting each one down.
// Slices of length 0 or 1 are left untouched and less is never called.
func Build[T any](vs []T, less func(a, b T) bool) {
	n := len(vs)
	for i := n/2 - 1; i >= 0; i-- {
		SiftDown(vs, less, i, n)
	}
}

// Valid reports whether vs satisfies the heap order.
func Valid[T any](vs []T, less func(a, b T) bool) bool {
	n := len(vs)
	for i := 0; i < n; i++ {
		left, right := 2*i+1, 2*i+2
		if left < n && less(vs[left], vs[i]) {
			return false
		}
		if right < n && less(vs[right], vs[i]) {
			return false
		}
	}
	return true
}

// Heap is a min-heap container over its own slice, for callers that
// want push/pop instead of managing a slice themselves.
type Heap[T any] struct {
	less func(a, b T) bool
	s    []T
}

func New[T any](n int, less func(a, b T) bool) *Heap[T] {
	return &Heap[T]{
		less: less,
		s:    make([]T, 0, n),
	}
}

func (h *Heap[T]) Len() int {
	return len(h.s)
}

// Push adds x onto the heap.
// The complexity is O(log n) where n = h.Len().
func (h *Heap[T]) Push(x T) {
	h.s = append(h.s, x)
	SiftUp(h.s, h.less, len(h.s)-1)
}

// Pop removes and returns the element ranked first.
// The complexity is O(log n) where n = h.Len().
// h.Len() must be positive.
func (h *Heap[T]) Pop() T {
	n := len(h.s) - 1
	h.s[0], h.s[n] = h.s[n], h.s[0]
	SiftDown(h.s, h.less, 0, n)
	res := h.s[n]
	h.s = h.s[:n]
	return res
}

// Peek returns the element ranked first without removing it.
// h.Len() must be positive.
func (h *Heap[T]) Peek() T {
	return h.s[0]
}

// Fix re-establishes the heap order after the element at index i
// changed its rank.
func (h *Heap[T]) Fix(i int) {
	if !SiftDown(h.s, h.less, i, len(h.s)) {
		SiftUp(h.s, h.less, i)
	}
}

func (h *Heap[T]) Reset() {
	h.s = h.s[:0]
}
