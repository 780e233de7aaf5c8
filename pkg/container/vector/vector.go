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

package vector

import (
	"fmt"

	"github.com/matrixorigin/mosort/pkg/common/moerr"
	"github.com/matrixorigin/mosort/pkg/container/nulls"
	"github.com/matrixorigin/mosort/pkg/container/types"
)

// Vector represents a column. Col holds the typed element slice for the
// fixed size families and a *types.Bytes for the string family.
type Vector struct {
	Typ types.Type

	// Col: []int8, []int16, ..., []float64, []types.Date,
	// []types.Datetime, []bool or *types.Bytes
	Col any

	// Nsp is the list of null rows
	Nsp *nulls.Nulls
}

func New(typ types.Type) *Vector {
	switch typ.Oid {
	case types.T_bool:
		return &Vector{Typ: typ, Col: []bool{}, Nsp: &nulls.Nulls{}}
	case types.T_int8:
		return &Vector{Typ: typ, Col: []int8{}, Nsp: &nulls.Nulls{}}
	case types.T_int16:
		return &Vector{Typ: typ, Col: []int16{}, Nsp: &nulls.Nulls{}}
	case types.T_int32:
		return &Vector{Typ: typ, Col: []int32{}, Nsp: &nulls.Nulls{}}
	case types.T_int64:
		return &Vector{Typ: typ, Col: []int64{}, Nsp: &nulls.Nulls{}}
	case types.T_uint8:
		return &Vector{Typ: typ, Col: []uint8{}, Nsp: &nulls.Nulls{}}
	case types.T_uint16:
		return &Vector{Typ: typ, Col: []uint16{}, Nsp: &nulls.Nulls{}}
	case types.T_uint32:
		return &Vector{Typ: typ, Col: []uint32{}, Nsp: &nulls.Nulls{}}
	case types.T_uint64:
		return &Vector{Typ: typ, Col: []uint64{}, Nsp: &nulls.Nulls{}}
	case types.T_float32:
		return &Vector{Typ: typ, Col: []float32{}, Nsp: &nulls.Nulls{}}
	case types.T_float64:
		return &Vector{Typ: typ, Col: []float64{}, Nsp: &nulls.Nulls{}}
	case types.T_date:
		return &Vector{Typ: typ, Col: []types.Date{}, Nsp: &nulls.Nulls{}}
	case types.T_datetime:
		return &Vector{Typ: typ, Col: []types.Datetime{}, Nsp: &nulls.Nulls{}}
	case types.T_char, types.T_varchar, types.T_json:
		return &Vector{Typ: typ, Col: &types.Bytes{}, Nsp: &nulls.Nulls{}}
	default:
		panic(moerr.NewNotSupported("vector type %s", typ.Oid.OidString()))
	}
}

func (v *Vector) Length() int {
	switch vs := v.Col.(type) {
	case []bool:
		return len(vs)
	case []int8:
		return len(vs)
	case []int16:
		return len(vs)
	case []int32:
		return len(vs)
	case []int64:
		return len(vs)
	case []uint8:
		return len(vs)
	case []uint16:
		return len(vs)
	case []uint32:
		return len(vs)
	case []uint64:
		return len(vs)
	case []float32:
		return len(vs)
	case []float64:
		return len(vs)
	case []types.Date:
		return len(vs)
	case []types.Datetime:
		return len(vs)
	case *types.Bytes:
		return len(vs.Offsets)
	}
	return 0
}

// Append adds a typed slice of rows: the argument type must match Col,
// [][]byte for the string family.
func (v *Vector) Append(arg any) error {
	switch vs := v.Col.(type) {
	case []bool:
		v.Col = append(vs, arg.([]bool)...)
	case []int8:
		v.Col = append(vs, arg.([]int8)...)
	case []int16:
		v.Col = append(vs, arg.([]int16)...)
	case []int32:
		v.Col = append(vs, arg.([]int32)...)
	case []int64:
		v.Col = append(vs, arg.([]int64)...)
	case []uint8:
		v.Col = append(vs, arg.([]uint8)...)
	case []uint16:
		v.Col = append(vs, arg.([]uint16)...)
	case []uint32:
		v.Col = append(vs, arg.([]uint32)...)
	case []uint64:
		v.Col = append(vs, arg.([]uint64)...)
	case []float32:
		v.Col = append(vs, arg.([]float32)...)
	case []float64:
		v.Col = append(vs, arg.([]float64)...)
	case []types.Date:
		v.Col = append(vs, arg.([]types.Date)...)
	case []types.Datetime:
		v.Col = append(vs, arg.([]types.Datetime)...)
	case *types.Bytes:
		return vs.Append(arg.([][]byte))
	default:
		return moerr.NewNotSupported("append to vector type %s", v.Typ.Oid.OidString())
	}
	return nil
}

// Window returns a view of rows [start, end); the view shares column
// storage with v.
func (v *Vector) Window(start, end int) *Vector {
	w := &Vector{
		Typ: v.Typ,
		Nsp: v.Nsp.Range(uint64(start), uint64(end), uint64(start)),
	}
	switch vs := v.Col.(type) {
	case []bool:
		w.Col = vs[start:end]
	case []int8:
		w.Col = vs[start:end]
	case []int16:
		w.Col = vs[start:end]
	case []int32:
		w.Col = vs[start:end]
	case []int64:
		w.Col = vs[start:end]
	case []uint8:
		w.Col = vs[start:end]
	case []uint16:
		w.Col = vs[start:end]
	case []uint32:
		w.Col = vs[start:end]
	case []uint64:
		w.Col = vs[start:end]
	case []float32:
		w.Col = vs[start:end]
	case []float64:
		w.Col = vs[start:end]
	case []types.Date:
		w.Col = vs[start:end]
	case []types.Datetime:
		w.Col = vs[start:end]
	case *types.Bytes:
		w.Col = vs.Window(start, end)
	}
	return w
}

// Shuffle reorders v in place so that row i of the result is row
// sels[i] of the input, nulls included.
func (v *Vector) Shuffle(sels []int64) *Vector {
	switch vs := v.Col.(type) {
	case []bool:
		v.Col = shuffleFixed(vs, sels)
	case []int8:
		v.Col = shuffleFixed(vs, sels)
	case []int16:
		v.Col = shuffleFixed(vs, sels)
	case []int32:
		v.Col = shuffleFixed(vs, sels)
	case []int64:
		v.Col = shuffleFixed(vs, sels)
	case []uint8:
		v.Col = shuffleFixed(vs, sels)
	case []uint16:
		v.Col = shuffleFixed(vs, sels)
	case []uint32:
		v.Col = shuffleFixed(vs, sels)
	case []uint64:
		v.Col = shuffleFixed(vs, sels)
	case []float32:
		v.Col = shuffleFixed(vs, sels)
	case []float64:
		v.Col = shuffleFixed(vs, sels)
	case []types.Date:
		v.Col = shuffleFixed(vs, sels)
	case []types.Datetime:
		v.Col = shuffleFixed(vs, sels)
	case *types.Bytes:
		os := make([]uint32, len(sels))
		ns := make([]uint32, len(sels))
		for i, sel := range sels {
			os[i] = vs.Offsets[sel]
			ns[i] = vs.Lengths[sel]
		}
		vs.Offsets, vs.Lengths = os, ns
	}
	v.Nsp = v.Nsp.Filter(sels)
	return v
}

func (v *Vector) Reset() {
	switch vs := v.Col.(type) {
	case []bool:
		v.Col = vs[:0]
	case []int8:
		v.Col = vs[:0]
	case []int16:
		v.Col = vs[:0]
	case []int32:
		v.Col = vs[:0]
	case []int64:
		v.Col = vs[:0]
	case []uint8:
		v.Col = vs[:0]
	case []uint16:
		v.Col = vs[:0]
	case []uint32:
		v.Col = vs[:0]
	case []uint64:
		v.Col = vs[:0]
	case []float32:
		v.Col = vs[:0]
	case []float64:
		v.Col = vs[:0]
	case []types.Date:
		v.Col = vs[:0]
	case []types.Datetime:
		v.Col = vs[:0]
	case *types.Bytes:
		vs.Reset()
	}
	v.Nsp.Reset()
}

func (v *Vector) String() string {
	switch vs := v.Col.(type) {
	case *types.Bytes:
		if !v.Nsp.Any() {
			return vs.String()
		}
		return fmt.Sprintf("%s-%s", vs, v.Nsp)
	default:
		if !v.Nsp.Any() {
			return fmt.Sprintf("%v", v.Col)
		}
		return fmt.Sprintf("%v-%s", v.Col, v.Nsp)
	}
}

func shuffleFixed[T any](vs []T, sels []int64) []T {
	ws := make([]T, len(sels))
	for i, sel := range sels {
		ws[i] = vs[sel]
	}
	return ws
}
