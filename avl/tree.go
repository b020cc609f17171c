// Copyright 2025 Naren Yellavula
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package avl

import "cmp"

// Tree is an AVL tree mapping keys of type K to values of type V.
type Tree[K, V any] struct {
	nodes arena[K, V]
	root  index
	cmp   func(a, b K) int
}

// New returns an empty tree ordered by K's natural ordering.
func New[K cmp.Ordered, V any]() *Tree[K, V] {
	return NewFunc[K, V](cmp.Compare[K])
}

// NewFunc returns an empty tree ordered by compare, which must return a
// negative number, zero or a positive number when a is less than, equal
// to or greater than b, and must define a total order.
func NewFunc[K, V any](compare func(a, b K) int) *Tree[K, V] {
	if compare == nil {
		panic("avl: nil compare function")
	}
	return &Tree[K, V]{
		nodes: newArena[K, V](),
		root:  none,
		cmp:   compare,
	}
}

// Len returns the number of keys in the tree.
func (t *Tree[K, V]) Len() int {
	return t.nodes.live
}

// IsEmpty reports whether the tree holds no keys.
func (t *Tree[K, V]) IsEmpty() bool {
	return t.root == none
}

// Clear removes every key and releases the arena.
func (t *Tree[K, V]) Clear() {
	t.nodes.reset()
	t.root = none
}

// Root returns the topmost node, or false for an empty tree.
func (t *Tree[K, V]) Root() (Node[K, V], bool) {
	return t.handle(t.root)
}

// Height returns the number of nodes on the longest root-to-leaf path,
// zero for an empty tree. It follows the taller child at each level, so it
// costs O(log n) and trusts the stored balance factors.
func (t *Tree[K, V]) Height() int {
	h := 0
	for i := t.root; i != none; h++ {
		n := t.at(i)
		if n.balance > 0 {
			i = n.child[right]
		} else {
			i = n.child[left]
		}
	}
	return h
}

func (t *Tree[K, V]) at(i index) *slot[K, V] {
	return t.nodes.at(i)
}

func (t *Tree[K, V]) handle(i index) (Node[K, V], bool) {
	if i == none {
		return Node[K, V]{}, false
	}
	return Node[K, V]{tree: t, i: i}, true
}
