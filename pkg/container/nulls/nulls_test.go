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

package nulls

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNulls_Basic(t *testing.T) {
	var nilNsp *Nulls

	require.False(t, nilNsp.Any())
	require.False(t, nilNsp.Contains(0))
	require.Equal(t, 0, nilNsp.Length())
	require.Nil(t, nilNsp.Clone())

	nsp := &Nulls{}
	require.False(t, nsp.Any())
	require.Equal(t, "[]", nsp.String())

	nsp.Add(1, 3, 5)
	require.True(t, nsp.Any())
	require.Equal(t, 3, nsp.Length())
	require.True(t, nsp.Contains(3))
	require.False(t, nsp.Contains(2))
	require.Equal(t, []uint64{1, 3, 5}, nsp.ToArray())
	require.Equal(t, "[1 3 5]", nsp.String())

	nsp.Del(3)
	require.False(t, nsp.Contains(3))
	require.Equal(t, 2, nsp.Length())

	cloned := nsp.Clone()
	cloned.Add(7)
	require.False(t, nsp.Contains(7))
	require.True(t, cloned.Contains(7))

	nsp.Reset()
	require.False(t, nsp.Any())
}

func TestNulls_AddRange(t *testing.T) {
	nsp := &Nulls{}
	nsp.AddRange(2, 5)
	require.Equal(t, []uint64{2, 3, 4}, nsp.ToArray())
}

func TestNulls_Or(t *testing.T) {
	nsp := Build(0, 2)
	m := Build(2, 4)
	nsp.Or(m)
	require.Equal(t, []uint64{0, 2, 4}, nsp.ToArray())

	// or with an empty set leaves nsp unchanged
	nsp.Or(nil)
	require.Equal(t, []uint64{0, 2, 4}, nsp.ToArray())
}

func TestNulls_Range(t *testing.T) {
	nsp := Build(1, 3, 6)
	got := nsp.Range(2, 6, 2)
	require.Equal(t, []uint64{1}, got.ToArray())

	empty := (&Nulls{}).Range(0, 10, 0)
	require.False(t, empty.Any())
}

func TestNulls_Filter(t *testing.T) {
	nsp := Build(0, 3)
	got := nsp.Filter([]int64{3, 2, 1, 0})
	require.Equal(t, []uint64{0, 3}, got.ToArray())

	require.Equal(t, 2, nsp.FilterCount([]int64{0, 1, 3}))
	require.Equal(t, 0, nsp.FilterCount(nil))
}
