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
	"math/rand"
	stdsort "sort"
	"testing"

	"github.com/matrixorigin/mosort/pkg/common/moerr"
	"github.com/matrixorigin/mosort/pkg/container/types"
	"github.com/matrixorigin/mosort/pkg/container/vector"
	"github.com/matrixorigin/mosort/pkg/testutil"
	"github.com/smartystreets/goconvey/convey"
	"github.com/stretchr/testify/require"
)

const (
	Rows          = 10     // default rows
	BenchmarkRows = 100000 // default rows for benchmark
)

func TestHeapSort(t *testing.T) {
	tests := []struct {
		name string
		vs   []int64
		want []int64
	}{
		{
			name: "shuffled",
			vs:   []int64{80, 60, 56, 7, 3, 4, 89, 79, 71, 19},
			want: []int64{3, 4, 7, 19, 56, 60, 71, 79, 80, 89},
		},
		{
			name: "duplicates",
			vs:   []int64{2, 2, 1},
			want: []int64{1, 2, 2},
		},
		{
			name: "single",
			vs:   []int64{5},
			want: []int64{5},
		},
		{
			name: "empty",
			vs:   []int64{},
			want: []int64{},
		},
		{
			name: "sorted",
			vs:   []int64{1, 2, 3, 4},
			want: []int64{1, 2, 3, 4},
		},
		{
			name: "reversed",
			vs:   []int64{4, 3, 2, 1},
			want: []int64{1, 2, 3, 4},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			HeapSort(tt.vs, GenericLess[int64])
			require.Equal(t, tt.want, tt.vs)
		})
	}
}

func TestHeapSortSingleNoCompare(t *testing.T) {
	calls := 0
	less := func(a, b int64) bool {
		calls++
		return a < b
	}

	HeapSort(nil, less)
	require.Equal(t, 0, calls)

	vs := []int64{5}
	HeapSort(vs, less)
	require.Equal(t, 0, calls)
	require.Equal(t, []int64{5}, vs)
}

func TestHeapSortRandom(t *testing.T) {
	vs := make([]int64, BenchmarkRows/100)
	for i := range vs {
		vs[i] = rand.Int63() % 1000
	}
	want := make([]int64, len(vs))
	copy(want, vs)
	stdsort.Slice(want, func(i, j int) bool { return want[i] < want[j] })

	HeapSort(vs, GenericLess[int64])
	require.Equal(t, want, vs)

	// sorting a sorted sequence changes nothing
	HeapSort(vs, GenericLess[int64])
	require.Equal(t, want, vs)
}

func TestHeapSortDesc(t *testing.T) {
	vs := make([]float64, Rows*10)
	for i := range vs {
		vs[i] = rand.Float64()
	}
	HeapSort(vs, Desc(GenericLess[float64]))
	for i := 1; i < len(vs); i++ {
		require.True(t, vs[i] <= vs[i-1])
	}

	// flipping back restores the ascending order
	HeapSort(vs, GenericLess[float64])
	for i := 1; i < len(vs); i++ {
		require.True(t, vs[i-1] <= vs[i])
	}
}

func TestSort(t *testing.T) {
	tests := []struct {
		name      string
		values    []int64
		nsp       []uint64
		desc      bool
		nullsLast bool
		want      []int64 // expected selection order
	}{
		{
			name:   "asc",
			values: []int64{3, 1, 2},
			want:   []int64{1, 2, 0},
		},
		{
			name:   "desc",
			values: []int64{3, 1, 2},
			desc:   true,
			want:   []int64{0, 2, 1},
		},
		{
			name:   "asc nulls first",
			values: []int64{3, 1, 2, 9},
			nsp:    []uint64{3},
			want:   []int64{3, 1, 2, 0},
		},
		{
			name:      "asc nulls last",
			values:    []int64{3, 1, 2, 9},
			nsp:       []uint64{3},
			nullsLast: true,
			want:      []int64{1, 2, 0, 3},
		},
		{
			name:   "desc nulls first",
			values: []int64{3, 1, 2, 9},
			nsp:    []uint64{3},
			desc:   true,
			want:   []int64{3, 0, 2, 1},
		},
		{
			name:      "desc nulls last",
			values:    []int64{3, 1, 2, 9},
			nsp:       []uint64{3},
			desc:      true,
			nullsLast: true,
			want:      []int64{0, 2, 1, 3},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			vec := testutil.MakeInt64Vector(tt.values, tt.nsp)
			os := make([]int64, len(tt.values))
			for i := range os {
				os[i] = int64(i)
			}
			require.NoError(t, Sort(tt.desc, tt.nullsLast, os, vec))
			require.Equal(t, tt.want, os)
		})
	}
}

func TestSortNilVector(t *testing.T) {
	os := []int64{2, 0, 1}
	err := Sort(false, false, os, nil)
	require.True(t, moerr.IsMoErrCode(err, moerr.ErrInvalidArg))
	// selections are untouched on error
	require.Equal(t, []int64{2, 0, 1}, os)
}

func TestSortUnsupportedType(t *testing.T) {
	vec := &vector.Vector{Typ: types.Type{Oid: types.T_any}}
	err := Sort(false, false, []int64{0}, vec)
	require.True(t, moerr.IsMoErrCode(err, moerr.ErrNotSupported))

	_, err = TopSels(1, false, false, vec)
	require.True(t, moerr.IsMoErrCode(err, moerr.ErrNotSupported))
}

func TestSortVarchar(t *testing.T) {
	vec := testutil.MakeVarcharVector([]string{"nihao", "nishishui", "hello"}, nil)
	os := []int64{0, 1, 2}
	require.NoError(t, Sort(false, false, os, vec))
	require.Equal(t, []int64{2, 0, 1}, os)

	require.NoError(t, Sort(true, false, os, vec))
	require.Equal(t, []int64{1, 0, 2}, os)
}

func TestSortTyped(t *testing.T) {
	convey.Convey("sort every fixed type", t, func() {
		oids := []types.T{
			types.T_bool,
			types.T_int8, types.T_int16, types.T_int32, types.T_int64,
			types.T_uint8, types.T_uint16, types.T_uint32, types.T_uint64,
			types.T_float32, types.T_float64,
			types.T_date, types.T_datetime,
			types.T_char, types.T_varchar,
		}
		for _, oid := range oids {
			vec := testutil.NewVector(Rows, types.New(oid, 0, 0), true)
			convey.So(vec, convey.ShouldNotBeNil)
			os := make([]int64, Rows)
			for i := range os {
				os[i] = int64(i)
			}
			err := Sort(false, false, os, vec)
			convey.So(err, convey.ShouldBeNil)
			less, err := selsLess(false, false, vec)
			convey.So(err, convey.ShouldBeNil)
			for i := 1; i < len(os); i++ {
				convey.So(less(os[i], os[i-1]), convey.ShouldBeFalse)
			}
		}
	})
}

func BenchmarkHeapSort(b *testing.B) {
	vs := make([]int64, BenchmarkRows)
	for i := range vs {
		vs[i] = rand.Int63()
	}
	tmp := make([]int64, BenchmarkRows)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		copy(tmp, vs)
		HeapSort(tmp, GenericLess[int64])
	}
}

func BenchmarkSort(b *testing.B) {
	vec := testutil.NewInt64Vector(BenchmarkRows, types.New(types.T_int64, 0, 0), true)
	os := make([]int64, BenchmarkRows)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		for j := range os {
			os[j] = int64(j)
		}
		if err := Sort(false, false, os, vec); err != nil {
			b.Fatal(err)
		}
	}
}
