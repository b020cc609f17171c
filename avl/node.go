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

// Node is a read-only handle to a node of a Tree.
//
// A handle stays valid across rotations and across removal of other keys
// (nodes move by relinking, never by copying payloads). It becomes invalid
// once its own key is removed or the tree is cleared.
type Node[K, V any] struct {
	tree *Tree[K, V]
	i    index
}

// Key returns the node's key.
func (n Node[K, V]) Key() K {
	return n.tree.at(n.i).key
}

// Value returns the value stored with the key.
func (n Node[K, V]) Value() V {
	return n.tree.at(n.i).value
}

// Balance returns height(right) - height(left) for the node's subtree.
func (n Node[K, V]) Balance() int {
	return int(n.tree.at(n.i).balance)
}

// Parent returns the parent node, or false at the root.
func (n Node[K, V]) Parent() (Node[K, V], bool) {
	return n.tree.handle(n.tree.at(n.i).parent)
}

// Left returns the left child, if any.
func (n Node[K, V]) Left() (Node[K, V], bool) {
	return n.tree.handle(n.tree.at(n.i).child[left])
}

// Right returns the right child, if any.
func (n Node[K, V]) Right() (Node[K, V], bool) {
	return n.tree.handle(n.tree.at(n.i).child[right])
}

// Next returns the in-order successor.
func (n Node[K, V]) Next() (Node[K, V], bool) {
	return n.tree.handle(n.tree.successor(n.i))
}

// Prev returns the in-order predecessor.
func (n Node[K, V]) Prev() (Node[K, V], bool) {
	return n.tree.handle(n.tree.predecessor(n.i))
}
