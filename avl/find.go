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

import "fmt"

// Find returns the value stored under key. A missing key yields an error
// wrapping ErrKeyNotFound.
func (t *Tree[K, V]) Find(key K) (V, error) {
	n, _, _ := t.locate(key)
	if n == none {
		var zero V
		return zero, fmt.Errorf("%w: %v", ErrKeyNotFound, key)
	}
	return t.at(n).value, nil
}

// Get returns the value stored under key and whether it was present.
func (t *Tree[K, V]) Get(key K) (V, bool) {
	n, _, _ := t.locate(key)
	if n == none {
		var zero V
		return zero, false
	}
	return t.at(n).value, true
}

// Contains reports whether key is in the tree.
func (t *Tree[K, V]) Contains(key K) bool {
	n, _, _ := t.locate(key)
	return n != none
}

// Lookup returns a handle to the node holding key.
func (t *Tree[K, V]) Lookup(key K) (Node[K, V], bool) {
	n, _, _ := t.locate(key)
	return t.handle(n)
}

// First returns the node with the lowest key.
func (t *Tree[K, V]) First() (Node[K, V], bool) {
	return t.handle(t.extreme(t.root, left))
}

// Last returns the node with the highest key.
func (t *Tree[K, V]) Last() (Node[K, V], bool) {
	return t.handle(t.extreme(t.root, right))
}
