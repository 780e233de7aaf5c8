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

package sort

import (
	"github.com/matrixorigin/mosort/pkg/container/heap"
	"github.com/matrixorigin/mosort/pkg/container/nulls"
)

type heapElem[T any] struct {
	data     T
	isNull   bool
	colIndex int
	rowIndex int
}

// Merge iterates the k-way merge of already-sorted columns. Null rows
// rank before value rows. Each Next yields the position of the next row
// in merged order.
type Merge[T any] struct {
	// the number of columns not yet exhausted
	size int
	cols [][]T
	// rowIdx[i] is the next row of cols[i] to enter the heap,
	// -1 once the column is exhausted
	rowIdx []int

	nulls []*nulls.Nulls

	heap *heap.Heap[heapElem[T]]
}

func NewMerge[T any](compLess LessFunc[T], cols [][]T, nsps []*nulls.Nulls) *Merge[T] {
	if nsps == nil {
		nsps = make([]*nulls.Nulls, len(cols))
	}
	m := &Merge[T]{
		size:   len(cols),
		cols:   cols,
		rowIdx: make([]int, len(cols)),
		nulls:  nsps,
		heap: heap.New(len(cols), func(a, b heapElem[T]) bool {
			if a.isNull {
				return true
			}
			if b.isNull {
				return false
			}
			return compLess(a.data, b.data)
		}),
	}
	m.initHeap()
	return m
}

func (m *Merge[T]) initHeap() {
	for i := 0; i < len(m.cols); i++ {
		if len(m.cols[i]) == 0 {
			m.rowIdx[i] = -1
			m.size--
			continue
		}
		m.heap.Push(heapElem[T]{
			data:     m.cols[i][0],
			isNull:   m.nulls[i].Contains(0),
			colIndex: i,
			rowIndex: 0,
		})
	}
}

// Next returns the column and row of the next row in merged order, and
// whether one was available.
func (m *Merge[T]) Next() (colIndex, rowIndex int, ok bool) {
	if m.size == 0 {
		return -1, -1, false
	}
	data := m.heap.Pop()
	i := data.colIndex
	m.rowIdx[i]++
	if m.rowIdx[i] >= len(m.cols[i]) {
		m.rowIdx[i] = -1
		m.size--
	} else {
		m.heap.Push(heapElem[T]{
			data:     m.cols[i][m.rowIdx[i]],
			isNull:   m.nulls[i].Contains(uint64(m.rowIdx[i])),
			colIndex: i,
			rowIndex: m.rowIdx[i],
		})
	}
	return data.colIndex, data.rowIndex, true
}
