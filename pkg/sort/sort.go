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
	"bytes"

	"github.com/matrixorigin/mosort/pkg/common/moerr"
	"github.com/matrixorigin/mosort/pkg/container/heap"
	"github.com/matrixorigin/mosort/pkg/container/nulls"
	"github.com/matrixorigin/mosort/pkg/container/types"
	"github.com/matrixorigin/mosort/pkg/container/vector"
)

// LessFunc reports whether a ranks before b.
type LessFunc[T any] func(a, b T) bool

func GenericLess[T types.OrderedT](a, b T) bool {
	return a < b
}

func BoolLess(a, b bool) bool {
	return !a && b
}

func BytesLess(a, b []byte) bool {
	return bytes.Compare(a, b) < 0
}

// Desc flips the polarity of less.
func Desc[T any](less LessFunc[T]) LessFunc[T] {
	return func(a, b T) bool {
		return less(b, a)
	}
}

// HeapSort sorts vs in place, ascending by less: afterwards
// less(vs[i+1], vs[i]) is false for every i. It heapifies vs with the
// flipped polarity, then repeatedly swaps the top to the shrinking tail.
// O(n log n) comparisons, O(1) extra space. Equal elements may not keep
// their input order.
func HeapSort[T any](vs []T, less LessFunc[T]) {
	flipped := Desc(less)
	heap.Build(vs, flipped)
	for limit := len(vs) - 1; limit > 0; limit-- {
		vs[0], vs[limit] = vs[limit], vs[0]
		heap.SiftDown(vs, flipped, 0, limit)
	}
}

// Sort permutes the selection vector os so that vec's values are ordered
// when read through it: vec[os[0]] ranks first. It sorts the selections,
// not the column. desc flips the value order; nullsLast places null rows
// after every value row instead of before.
func Sort(desc, nullsLast bool, os []int64, vec *vector.Vector) error {
	if vec == nil {
		return moerr.NewInvalidArg("sort vector", vec)
	}
	less, err := selsLess(desc, nullsLast, vec)
	if err != nil {
		return err
	}
	HeapSort(os, less)
	return nil
}

// selsLess builds the selection comparator for vec, dispatching on the
// vector's type and wrapping null handling around the value order.
func selsLess(desc, nullsLast bool, vec *vector.Vector) (LessFunc[int64], error) {
	var less LessFunc[int64]

	switch vec.Typ.Oid {
	case types.T_bool:
		less = fixedLess(vec, BoolLess)
	case types.T_int8:
		less = fixedLess(vec, GenericLess[int8])
	case types.T_int16:
		less = fixedLess(vec, GenericLess[int16])
	case types.T_int32:
		less = fixedLess(vec, GenericLess[int32])
	case types.T_int64:
		less = fixedLess(vec, GenericLess[int64])
	case types.T_uint8:
		less = fixedLess(vec, GenericLess[uint8])
	case types.T_uint16:
		less = fixedLess(vec, GenericLess[uint16])
	case types.T_uint32:
		less = fixedLess(vec, GenericLess[uint32])
	case types.T_uint64:
		less = fixedLess(vec, GenericLess[uint64])
	case types.T_float32:
		less = fixedLess(vec, GenericLess[float32])
	case types.T_float64:
		less = fixedLess(vec, GenericLess[float64])
	case types.T_date:
		less = fixedLess(vec, GenericLess[types.Date])
	case types.T_datetime:
		less = fixedLess(vec, GenericLess[types.Datetime])
	case types.T_char, types.T_varchar, types.T_json:
		vs := vec.Col.(*types.Bytes)
		less = func(a, b int64) bool {
			return BytesLess(vs.Get(a), vs.Get(b))
		}
	default:
		return nil, moerr.NewNotSupported("sort vector type %s", vec.Typ)
	}

	if desc {
		less = Desc(less)
	}
	return nullAwareLess(nullsLast, vec.Nsp, less), nil
}

func fixedLess[T any](vec *vector.Vector, less LessFunc[T]) LessFunc[int64] {
	vs := vec.Col.([]T)
	return func(a, b int64) bool {
		return less(vs[a], vs[b])
	}
}

// nullAwareLess ranks null rows before every value row, or after when
// nullsLast is set. desc never applies to the null placement.
func nullAwareLess(nullsLast bool, nsp *nulls.Nulls, less LessFunc[int64]) LessFunc[int64] {
	if !nsp.Any() {
		return less
	}
	return func(a, b int64) bool {
		aNull := nsp.Contains(uint64(a))
		bNull := nsp.Contains(uint64(b))
		if aNull {
			return !bNull && !nullsLast
		}
		if bNull {
			return nullsLast
		}
		return less(a, b)
	}
}
