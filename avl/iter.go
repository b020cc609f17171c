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

import "iter"

// All returns an iterator over the key/value pairs in ascending key order.
// Each range over the iterator starts again from the lowest key. The pair
// being visited may be removed from inside the loop; any other mutation
// during iteration gives unspecified results.
func (t *Tree[K, V]) All() iter.Seq2[K, V] {
	return t.walk(right)
}

// Backward is All in descending key order.
func (t *Tree[K, V]) Backward() iter.Seq2[K, V] {
	return t.walk(left)
}

// Keys returns an iterator over the keys in ascending order.
func (t *Tree[K, V]) Keys() iter.Seq[K] {
	return func(yield func(K) bool) {
		for k := range t.All() {
			if !yield(k) {
				return
			}
		}
	}
}

// Nodes returns an iterator over node handles in ascending key order.
func (t *Tree[K, V]) Nodes() iter.Seq[Node[K, V]] {
	return func(yield func(Node[K, V]) bool) {
		for i := t.extreme(t.root, left); i != none; {
			next := t.successor(i)
			if !yield(Node[K, V]{tree: t, i: i}) {
				return
			}
			i = next
		}
	}
}

func (t *Tree[K, V]) walk(dir int) iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for i := t.extreme(t.root, flip(dir)); i != none; {
			next := t.neighbour(i, dir)
			n := t.at(i)
			if !yield(n.key, n.value) {
				return
			}
			i = next
		}
	}
}
