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

package testutil

import (
	"fmt"
	"math/rand"
	"strconv"

	"github.com/matrixorigin/mosort/pkg/container/types"
	"github.com/matrixorigin/mosort/pkg/container/vector"
)

func NewVector(n int, typ types.Type, random bool) *vector.Vector {
	switch typ.Oid {
	case types.T_bool:
		return NewBoolVector(n, typ)
	case types.T_int8:
		return NewInt8Vector(n, typ, random)
	case types.T_int16:
		return NewInt16Vector(n, typ, random)
	case types.T_int32:
		return NewInt32Vector(n, typ, random)
	case types.T_int64:
		return NewInt64Vector(n, typ, random)
	case types.T_uint8:
		return NewUInt8Vector(n, typ, random)
	case types.T_uint16:
		return NewUInt16Vector(n, typ, random)
	case types.T_uint32:
		return NewUInt32Vector(n, typ, random)
	case types.T_uint64:
		return NewUInt64Vector(n, typ, random)
	case types.T_float32:
		return NewFloat32Vector(n, typ, random)
	case types.T_float64:
		return NewFloat64Vector(n, typ, random)
	case types.T_date:
		return NewDateVector(n, typ, random)
	case types.T_datetime:
		return NewDatetimeVector(n, typ, random)
	case types.T_char, types.T_varchar:
		return NewStringVector(n, typ, random)
	default:
		panic(fmt.Errorf("unsupport vector's type '%v", typ))
	}
}

func NewBoolVector(n int, typ types.Type) *vector.Vector {
	vec := vector.New(typ)
	vs := make([]bool, n)
	for i := 0; i < n; i++ {
		vs[i] = i%2 == 0
	}
	if err := vec.Append(vs); err != nil {
		return nil
	}
	return vec
}

func NewInt8Vector(n int, typ types.Type, random bool) *vector.Vector {
	vec := vector.New(typ)
	vs := make([]int8, n)
	for i := 0; i < n; i++ {
		v := i
		if random {
			v = rand.Int()
		}
		vs[i] = int8(v)
	}
	if err := vec.Append(vs); err != nil {
		return nil
	}
	return vec
}

func NewInt16Vector(n int, typ types.Type, random bool) *vector.Vector {
	vec := vector.New(typ)
	vs := make([]int16, n)
	for i := 0; i < n; i++ {
		v := i
		if random {
			v = rand.Int()
		}
		vs[i] = int16(v)
	}
	if err := vec.Append(vs); err != nil {
		return nil
	}
	return vec
}

func NewInt32Vector(n int, typ types.Type, random bool) *vector.Vector {
	vec := vector.New(typ)
	vs := make([]int32, n)
	for i := 0; i < n; i++ {
		v := i
		if random {
			v = rand.Int()
		}
		vs[i] = int32(v)
	}
	if err := vec.Append(vs); err != nil {
		return nil
	}
	return vec
}

func NewInt64Vector(n int, typ types.Type, random bool) *vector.Vector {
	vec := vector.New(typ)
	vs := make([]int64, n)
	for i := 0; i < n; i++ {
		v := i
		if random {
			v = rand.Int()
		}
		vs[i] = int64(v)
	}
	if err := vec.Append(vs); err != nil {
		return nil
	}
	return vec
}

func NewUInt8Vector(n int, typ types.Type, random bool) *vector.Vector {
	vec := vector.New(typ)
	vs := make([]uint8, n)
	for i := 0; i < n; i++ {
		v := i
		if random {
			v = rand.Int()
		}
		vs[i] = uint8(v)
	}
	if err := vec.Append(vs); err != nil {
		return nil
	}
	return vec
}

func NewUInt16Vector(n int, typ types.Type, random bool) *vector.Vector {
	vec := vector.New(typ)
	vs := make([]uint16, n)
	for i := 0; i < n; i++ {
		v := i
		if random {
			v = rand.Int()
		}
		vs[i] = uint16(v)
	}
	if err := vec.Append(vs); err != nil {
		return nil
	}
	return vec
}

func NewUInt32Vector(n int, typ types.Type, random bool) *vector.Vector {
	vec := vector.New(typ)
	vs := make([]uint32, n)
	for i := 0; i < n; i++ {
		v := i
		if random {
			v = rand.Int()
		}
		vs[i] = uint32(v)
	}
	if err := vec.Append(vs); err != nil {
		return nil
	}
	return vec
}

func NewUInt64Vector(n int, typ types.Type, random bool) *vector.Vector {
	vec := vector.New(typ)
	vs := make([]uint64, n)
	for i := 0; i < n; i++ {
		v := i
		if random {
			v = rand.Int()
		}
		vs[i] = uint64(v)
	}
	if err := vec.Append(vs); err != nil {
		return nil
	}
	return vec
}

func NewFloat32Vector(n int, typ types.Type, random bool) *vector.Vector {
	vec := vector.New(typ)
	vs := make([]float32, n)
	for i := 0; i < n; i++ {
		v := float32(i)
		if random {
			v = rand.Float32()
		}
		vs[i] = v
	}
	if err := vec.Append(vs); err != nil {
		return nil
	}
	return vec
}

func NewFloat64Vector(n int, typ types.Type, random bool) *vector.Vector {
	vec := vector.New(typ)
	vs := make([]float64, n)
	for i := 0; i < n; i++ {
		v := float64(i)
		if random {
			v = rand.Float64()
		}
		vs[i] = v
	}
	if err := vec.Append(vs); err != nil {
		return nil
	}
	return vec
}

func NewDateVector(n int, typ types.Type, random bool) *vector.Vector {
	vec := vector.New(typ)
	vs := make([]types.Date, n)
	for i := 0; i < n; i++ {
		v := i
		if random {
			v = rand.Intn(1 << 16)
		}
		vs[i] = types.Date(v)
	}
	if err := vec.Append(vs); err != nil {
		return nil
	}
	return vec
}

func NewDatetimeVector(n int, typ types.Type, random bool) *vector.Vector {
	vec := vector.New(typ)
	vs := make([]types.Datetime, n)
	for i := 0; i < n; i++ {
		v := i
		if random {
			v = rand.Int()
		}
		vs[i] = types.Datetime(v)
	}
	if err := vec.Append(vs); err != nil {
		return nil
	}
	return vec
}

func NewStringVector(n int, typ types.Type, random bool) *vector.Vector {
	vec := vector.New(typ)
	vs := make([][]byte, n)
	for i := 0; i < n; i++ {
		v := i
		if random {
			v = rand.Int()
		}
		vs[i] = []byte(strconv.Itoa(v))
	}
	if err := vec.Append(vs); err != nil {
		return nil
	}
	return vec
}

// MakeInt64Vector returns a T_int64 vector holding values, with the
// rows listed in nsp marked null.
func MakeInt64Vector(values []int64, nsp []uint64) *vector.Vector {
	vec := vector.New(types.New(types.T_int64, 0, 0))
	if err := vec.Append(values); err != nil {
		return nil
	}
	vec.Nsp.Add(nsp...)
	return vec
}

// MakeFloat64Vector is the float64 flavor of MakeInt64Vector.
func MakeFloat64Vector(values []float64, nsp []uint64) *vector.Vector {
	vec := vector.New(types.New(types.T_float64, 0, 0))
	if err := vec.Append(values); err != nil {
		return nil
	}
	vec.Nsp.Add(nsp...)
	return vec
}

// MakeBoolVector is the bool flavor of MakeInt64Vector.
func MakeBoolVector(values []bool, nsp []uint64) *vector.Vector {
	vec := vector.New(types.New(types.T_bool, 0, 0))
	if err := vec.Append(values); err != nil {
		return nil
	}
	vec.Nsp.Add(nsp...)
	return vec
}

// MakeVarcharVector is the string flavor of MakeInt64Vector.
func MakeVarcharVector(values []string, nsp []uint64) *vector.Vector {
	vec := vector.New(types.New(types.T_varchar, 0, 0))
	vs := make([][]byte, len(values))
	for i, v := range values {
		vs[i] = []byte(v)
	}
	if err := vec.Append(vs); err != nil {
		return nil
	}
	vec.Nsp.Add(nsp...)
	return vec
}

// MakeDateVector is the date flavor of MakeInt64Vector.
func MakeDateVector(values []types.Date, nsp []uint64) *vector.Vector {
	vec := vector.New(types.New(types.T_date, 0, 0))
	if err := vec.Append(values); err != nil {
		return nil
	}
	vec.Nsp.Add(nsp...)
	return vec
}
