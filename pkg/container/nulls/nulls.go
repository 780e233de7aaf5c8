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

// Package nulls wraps up functions for the manipulation of the bitmap
// library roaring. A column stores all its NULL row numbers in one
// Nulls.
package nulls

import (
	"fmt"

	roaring "github.com/RoaringBitmap/roaring/roaring64"
)

// Nulls records the null rows of a column. A nil *Nulls and a Nulls
// with a nil Np both read as "no nulls"; readers are nil-safe,
// mutators require an allocated receiver.
type Nulls struct {
	Np *roaring.Bitmap
}

func Build(rows ...uint64) *Nulls {
	nsp := &Nulls{}
	nsp.Add(rows...)
	return nsp
}

func (nsp *Nulls) Clone() *Nulls {
	if nsp == nil {
		return nil
	}
	if nsp.Np == nil {
		return &Nulls{}
	}
	return &Nulls{Np: nsp.Np.Clone()}
}

// Any returns true if any row is marked null.
func (nsp *Nulls) Any() bool {
	return nsp != nil && nsp.Np != nil && !nsp.Np.IsEmpty()
}

// Length returns the number of null rows.
func (nsp *Nulls) Length() int {
	if nsp == nil || nsp.Np == nil {
		return 0
	}
	return int(nsp.Np.GetCardinality())
}

// Contains returns true if row is marked null.
func (nsp *Nulls) Contains(row uint64) bool {
	return nsp != nil && nsp.Np != nil && nsp.Np.Contains(row)
}

func (nsp *Nulls) Add(rows ...uint64) {
	if len(rows) == 0 {
		return
	}
	if nsp.Np == nil {
		nsp.Np = roaring.NewBitmap()
	}
	nsp.Np.AddMany(rows)
}

// AddRange marks rows [start, end) null.
func (nsp *Nulls) AddRange(start, end uint64) {
	if nsp.Np == nil {
		nsp.Np = roaring.NewBitmap()
	}
	nsp.Np.AddRange(start, end)
}

func (nsp *Nulls) Del(rows ...uint64) {
	if nsp == nil || nsp.Np == nil {
		return
	}
	for _, row := range rows {
		nsp.Np.Remove(row)
	}
}

// Or unions m into nsp.
func (nsp *Nulls) Or(m *Nulls) {
	if m == nil || m.Np == nil {
		return
	}
	if nsp.Np == nil {
		nsp.Np = roaring.NewBitmap()
	}
	nsp.Np.Or(m.Np)
}

func (nsp *Nulls) Reset() {
	if nsp.Np != nil {
		nsp.Np.Clear()
	}
}

// Range returns a new Nulls holding the null rows of [start, end)
// shifted down by bias.
func (nsp *Nulls) Range(start, end, bias uint64) *Nulls {
	m := &Nulls{}
	if nsp == nil || nsp.Np == nil {
		return m
	}
	m.Np = roaring.NewBitmap()
	for ; start < end; start++ {
		if nsp.Np.Contains(start) {
			m.Np.Add(start - bias)
		}
	}
	return m
}

// Filter remaps nulls through a selection: row i of the result is null
// iff row sels[i] was null.
func (nsp *Nulls) Filter(sels []int64) *Nulls {
	if nsp == nil || nsp.Np == nil || len(sels) == 0 {
		return nsp
	}
	np := roaring.NewBitmap()
	for i, sel := range sels {
		if nsp.Np.Contains(uint64(sel)) {
			np.Add(uint64(i))
		}
	}
	return &Nulls{Np: np}
}

// FilterCount returns the number of rows of sels that are null.
func (nsp *Nulls) FilterCount(sels []int64) int {
	var cnt int

	if nsp == nil || nsp.Np == nil {
		return cnt
	}
	for _, sel := range sels {
		if nsp.Np.Contains(uint64(sel)) {
			cnt++
		}
	}
	return cnt
}

func (nsp *Nulls) ToArray() []uint64 {
	if nsp == nil || nsp.Np == nil {
		return []uint64{}
	}
	return nsp.Np.ToArray()
}

func (nsp *Nulls) String() string {
	if nsp == nil || nsp.Np == nil {
		return "[]"
	}
	return fmt.Sprintf("%v", nsp.Np.ToArray())
}
