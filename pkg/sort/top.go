// Copyright 2021 Matrix Origin
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
	"github.com/matrixorigin/mosort/pkg/common/moerr"
	"github.com/matrixorigin/mosort/pkg/container/heap"
	"github.com/matrixorigin/mosort/pkg/container/vector"
)

// TopSels returns the selections of the limit best-ranked rows of vec,
// best first. It keeps a bounded selection heap with the worst kept row
// at the root: a row only enters by outranking that root, so each of
// the remaining rows costs at most one sift. vec is read, never
// modified.
func TopSels(limit int64, desc, nullsLast bool, vec *vector.Vector) ([]int64, error) {
	if vec == nil {
		return nil, moerr.NewInvalidArg("top vector", vec)
	}
	if limit < 0 {
		return nil, moerr.NewInvalidArg("top limit", limit)
	}
	less, err := selsLess(desc, nullsLast, vec)
	if err != nil {
		return nil, err
	}
	length := int64(vec.Length())

	n := limit
	if n > length {
		n = length
	}
	sels := make([]int64, 0, n)
	for i := int64(0); i < n; i++ {
		sels = append(sels, i)
	}
	if limit == 0 {
		return sels, nil
	}

	// worst-ranked selection at the root
	worstFirst := Desc(less)
	heap.Build(sels, worstFirst)
	for i := n; i < length; i++ {
		if less(i, sels[0]) {
			sels[0] = i
			heap.SiftDown(sels, worstFirst, 0, len(sels))
		}
	}

	HeapSort(sels, less)
	return sels, nil
}
