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

// Package tree materializes heap-ordered slices as explicit binary
// trees for diagnostics. An absent child is a nil pointer, never a
// value of the element type, so a node with only a right child stays
// representable.
package tree

import (
	"bytes"
	"fmt"
)

type Node[T any] struct {
	Value T
	Left  *Node[T]
	Right *Node[T]
}

// FromSlice builds a new tree over the level-order layout of vs, the
// children of index i being indexes 2i+1 and 2i+2. vs is read, never
// retained; the empty slice yields a nil root.
func FromSlice[T any](vs []T) *Node[T] {
	return build(vs, 0)
}

func build[T any](vs []T, i int) *Node[T] {
	if i >= len(vs) || i < 0 { // i < 0 after int overflow
		return nil
	}
	return &Node[T]{
		Value: vs[i],
		Left:  build(vs, 2*i+1),
		Right: build(vs, 2*i+2),
	}
}

// Mirror returns a new tree with the left and right subtrees swapped at
// every node. The receiver is not modified; a nil receiver mirrors to
// nil.
func (n *Node[T]) Mirror() *Node[T] {
	if n == nil {
		return nil
	}
	return &Node[T]{
		Value: n.Value,
		Left:  n.Right.Mirror(),
		Right: n.Left.Mirror(),
	}
}

// Values flattens the tree back to level order, present nodes only.
// For a tree built by FromSlice this is the inverse mapping.
func (n *Node[T]) Values() []T {
	if n == nil {
		return nil
	}
	vs := make([]T, 0, n.Count())
	queue := []*Node[T]{n}
	for len(queue) > 0 {
		node := queue[0]
		queue = queue[1:]
		vs = append(vs, node.Value)
		if node.Left != nil {
			queue = append(queue, node.Left)
		}
		if node.Right != nil {
			queue = append(queue, node.Right)
		}
	}
	return vs
}

func (n *Node[T]) Count() int {
	if n == nil {
		return 0
	}
	return 1 + n.Left.Count() + n.Right.Count()
}

func (n *Node[T]) String() string {
	var buf bytes.Buffer
	n.write(&buf)
	return buf.String()
}

func (n *Node[T]) write(buf *bytes.Buffer) {
	if n == nil {
		buf.WriteString("_")
		return
	}
	if n.Left == nil && n.Right == nil {
		fmt.Fprintf(buf, "%v", n.Value)
		return
	}
	fmt.Fprintf(buf, "(%v ", n.Value)
	n.Left.write(buf)
	buf.WriteString(" ")
	n.Right.write(buf)
	buf.WriteString(")")
}
