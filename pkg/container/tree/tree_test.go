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

package tree

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFromSlice(t *testing.T) {
	require.Nil(t, FromSlice[int](nil))
	require.Nil(t, FromSlice([]int{}))

	root := FromSlice([]int{1})
	require.NotNil(t, root)
	require.Equal(t, 1, root.Value)
	require.Nil(t, root.Left)
	require.Nil(t, root.Right)

	root = FromSlice([]int{3, 7, 4, 80, 60})
	require.Equal(t, 3, root.Value)
	require.Equal(t, 7, root.Left.Value)
	require.Equal(t, 4, root.Right.Value)
	require.Equal(t, 80, root.Left.Left.Value)
	require.Equal(t, 60, root.Left.Right.Value)
	require.Nil(t, root.Right.Left)
	require.Nil(t, root.Right.Right)
	require.Equal(t, 5, root.Count())
}

func TestFromSliceOwnership(t *testing.T) {
	vs := []int{1, 2, 3}
	root := FromSlice(vs)
	vs[0] = 99
	require.Equal(t, 1, root.Value)
}

func TestMirror(t *testing.T) {
	require.Nil(t, (*Node[int])(nil).Mirror())

	root := FromSlice([]int{1, 2, 3, 4})
	mirrored := root.Mirror()

	require.Equal(t, 1, mirrored.Value)
	require.Equal(t, 3, mirrored.Left.Value)
	require.Equal(t, 2, mirrored.Right.Value)
	// node 4 moves from a left-only to a right-only child
	require.Nil(t, mirrored.Right.Left)
	require.Equal(t, 4, mirrored.Right.Right.Value)

	// the source tree is untouched
	require.Equal(t, 2, root.Left.Value)
	require.Equal(t, 4, root.Left.Left.Value)
	require.Nil(t, root.Left.Right)

	// mirroring twice restores the original shape
	require.Equal(t, root.Values(), mirrored.Mirror().Values())
	require.Equal(t, root.String(), mirrored.Mirror().String())
}

func TestValues(t *testing.T) {
	require.Nil(t, (*Node[int])(nil).Values())

	vs := []int{3, 7, 4, 80, 60, 56}
	require.Equal(t, vs, FromSlice(vs).Values())

	// mirrored trees flatten over present nodes only
	mirrored := FromSlice([]int{1, 2, 3, 4}).Mirror()
	require.Equal(t, []int{1, 3, 2, 4}, mirrored.Values())
}

func TestString(t *testing.T) {
	require.Equal(t, "_", (*Node[int])(nil).String())
	require.Equal(t, "7", FromSlice([]int{7}).String())
	require.Equal(t, "(1 2 3)", FromSlice([]int{1, 2, 3}).String())
	require.Equal(t, "(1 (2 4 _) 3)", FromSlice([]int{1, 2, 3, 4}).String())
	require.Equal(t, "(1 3 (2 _ 4))", FromSlice([]int{1, 2, 3, 4}).Mirror().String())
}
