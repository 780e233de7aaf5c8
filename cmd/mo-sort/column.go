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

package main

import (
	"strconv"

	"github.com/matrixorigin/mosort/pkg/common/moerr"
	"github.com/matrixorigin/mosort/pkg/config"
	"github.com/matrixorigin/mosort/pkg/container/heap"
	"github.com/matrixorigin/mosort/pkg/container/nulls"
	"github.com/matrixorigin/mosort/pkg/container/types"
	"github.com/matrixorigin/mosort/pkg/container/vector"
	"github.com/matrixorigin/mosort/pkg/sort"
)

func columnType(name string) (types.Type, error) {
	switch name {
	case "bool":
		return types.New(types.T_bool, 0, 0), nil
	case "int64":
		return types.New(types.T_int64, 0, 0), nil
	case "float64":
		return types.New(types.T_float64, 0, 0), nil
	case "varchar":
		return types.New(types.T_varchar, 0, 0), nil
	case "date":
		return types.New(types.T_date, 0, 0), nil
	case "datetime":
		return types.New(types.T_datetime, 0, 0), nil
	}
	return types.Type{}, moerr.NewNotSupported("column type %s", name)
}

// buildColumn parses the cells of the sort column into a typed vector.
// A cell equal to the null keyword becomes a null row.
func buildColumn(cfg *config.SortToolParameters, cells []string) (*vector.Vector, error) {
	typ, err := columnType(cfg.ColumnType)
	if err != nil {
		return nil, err
	}
	vec := vector.New(typ)
	switch typ.Oid {
	case types.T_bool:
		vs, err := parseColumn(cells, cfg.NullKeyword, vec.Nsp, parseBool)
		if err != nil {
			return nil, err
		}
		if err := vec.Append(vs); err != nil {
			return nil, err
		}
	case types.T_int64:
		vs, err := parseColumn(cells, cfg.NullKeyword, vec.Nsp, parseInt64)
		if err != nil {
			return nil, err
		}
		if err := vec.Append(vs); err != nil {
			return nil, err
		}
	case types.T_float64:
		vs, err := parseColumn(cells, cfg.NullKeyword, vec.Nsp, parseFloat64)
		if err != nil {
			return nil, err
		}
		if err := vec.Append(vs); err != nil {
			return nil, err
		}
	case types.T_date:
		vs, err := parseColumn(cells, cfg.NullKeyword, vec.Nsp, types.ParseDate)
		if err != nil {
			return nil, err
		}
		if err := vec.Append(vs); err != nil {
			return nil, err
		}
	case types.T_datetime:
		vs, err := parseColumn(cells, cfg.NullKeyword, vec.Nsp, types.ParseDatetime)
		if err != nil {
			return nil, err
		}
		if err := vec.Append(vs); err != nil {
			return nil, err
		}
	case types.T_varchar:
		vs, err := parseColumn(cells, cfg.NullKeyword, vec.Nsp, parseBytes)
		if err != nil {
			return nil, err
		}
		if err := vec.Append(vs); err != nil {
			return nil, err
		}
	}
	return vec, nil
}

func parseColumn[T any](cells []string, nullKeyword string, nsp *nulls.Nulls, parse func(string) (T, error)) ([]T, error) {
	vs := make([]T, len(cells))
	for i, cell := range cells {
		if cell == nullKeyword {
			nsp.Add(uint64(i))
			continue
		}
		v, err := parse(cell)
		if err != nil {
			return nil, err
		}
		vs[i] = v
	}
	return vs, nil
}

func parseBool(s string) (bool, error) {
	v, err := strconv.ParseBool(s)
	if err != nil {
		return false, moerr.NewInvalidInput("invalid bool %s", s)
	}
	return v, nil
}

func parseInt64(s string) (int64, error) {
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, moerr.NewInvalidInput("invalid int64 %s", s)
	}
	return v, nil
}

func parseFloat64(s string) (float64, error) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, moerr.NewInvalidInput("invalid float64 %s", s)
	}
	return v, nil
}

func parseBytes(s string) ([]byte, error) {
	return []byte(s), nil
}

// newVerifier builds the order check of the vector under the configured
// ordering.
func newVerifier(cfg *config.SortToolParameters, vec *vector.Vector) (func(sels []int64) error, error) {
	switch vec.Typ.Oid {
	case types.T_bool:
		return orderVerifier(cfg, vec.Col.([]bool), vec.Nsp, sort.BoolLess), nil
	case types.T_int64:
		return orderVerifier(cfg, vec.Col.([]int64), vec.Nsp, sort.GenericLess[int64]), nil
	case types.T_float64:
		return orderVerifier(cfg, vec.Col.([]float64), vec.Nsp, sort.GenericLess[float64]), nil
	case types.T_date:
		return orderVerifier(cfg, vec.Col.([]types.Date), vec.Nsp, sort.GenericLess[types.Date]), nil
	case types.T_datetime:
		return orderVerifier(cfg, vec.Col.([]types.Datetime), vec.Nsp, sort.GenericLess[types.Datetime]), nil
	case types.T_char, types.T_varchar, types.T_json:
		col := vec.Col.(*types.Bytes)
		vs := make([][]byte, col.Len())
		for i := range vs {
			vs[i] = col.Get(int64(i))
		}
		return orderVerifier(cfg, vs, vec.Nsp, sort.BytesLess), nil
	}
	return nil, moerr.NewNotSupported("verify vector type %s", vec.Typ)
}

func orderVerifier[T any](cfg *config.SortToolParameters, vs []T, nsp *nulls.Nulls, less sort.LessFunc[T]) func(sels []int64) error {
	return func(sels []int64) error {
		return verifyOrder(vs, nsp, sels, cfg.Desc, cfg.NullsLast, less)
	}
}

// verifyOrder checks every adjacent pair of the selection against the
// requested ordering, then checks that the ordered keys still satisfy the
// heap property. Any totally ordered sequence is a valid heap, so a
// violation means the output is broken.
func verifyOrder[T any](vs []T, nsp *nulls.Nulls, sels []int64, desc, nullsLast bool, less sort.LessFunc[T]) error {
	cmp := less
	if desc {
		cmp = sort.Desc(less)
	}
	for k := 1; k < len(sels); k++ {
		i, j := sels[k-1], sels[k]
		iNull, jNull := nsp.Contains(uint64(i)), nsp.Contains(uint64(j))
		switch {
		case iNull && jNull:
		case iNull:
			if nullsLast {
				return moerr.NewInvalidState("rows %d, %d break the null order", i, j)
			}
		case jNull:
			if !nullsLast {
				return moerr.NewInvalidState("rows %d, %d break the null order", i, j)
			}
		default:
			if cmp(vs[j], vs[i]) {
				return moerr.NewInvalidState("rows %d, %d are out of order", i, j)
			}
		}
	}
	keys := make([]T, 0, len(sels))
	for _, sel := range sels {
		if !nsp.Contains(uint64(sel)) {
			keys = append(keys, vs[sel])
		}
	}
	if !heap.Valid(keys, cmp) {
		return moerr.NewInvalidState("ordered keys break the heap property")
	}
	return nil
}
