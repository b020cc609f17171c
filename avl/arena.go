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

// index addresses a slot in the arena.
type index int32

// none is the "no node" sentinel used for missing children, the parent of
// the root and the end of the free list.
const none index = -1

const (
	left  = 0
	right = 1
)

// flip returns the opposite direction.
func flip(dir int) int {
	return 1 - dir
}

// sign maps a direction to the balance adjustment of growing that side.
func sign(dir int) int8 {
	if dir == left {
		return -1
	}
	return +1
}

// slot is the storage for one tree node.
type slot[K, V any] struct {
	key     K
	value   V
	parent  index    // doubles as the free list link while released
	child   [2]index // left, right
	balance int8     // height(right) - height(left)
}

// arena owns every node of a tree. Released slots are chained through
// their parent field and reused before the slice grows.
type arena[K, V any] struct {
	slots []slot[K, V]
	free  index
	live  int
}

func newArena[K, V any]() arena[K, V] {
	return arena[K, V]{free: none}
}

// alloc returns a fresh node holding key and value with balance 0.
func (a *arena[K, V]) alloc(key K, value V, parent index) index {
	s := slot[K, V]{
		key:     key,
		value:   value,
		parent:  parent,
		child:   [2]index{none, none},
		balance: 0,
	}
	a.live++
	if a.free != none {
		i := a.free
		a.free = a.slots[i].parent
		a.slots[i] = s
		return i
	}
	a.slots = append(a.slots, s)
	return index(len(a.slots) - 1)
}

// release detaches a node from all three links, drops its payload and
// puts the slot on the free list.
func (a *arena[K, V]) release(i index) {
	var zero slot[K, V]
	zero.child = [2]index{none, none}
	zero.parent = a.free
	a.slots[i] = zero
	a.free = i
	a.live--
}

// at returns the slot for i. The pointer is only valid until the next
// alloc, which may grow the backing slice.
func (a *arena[K, V]) at(i index) *slot[K, V] {
	return &a.slots[i]
}

func (a *arena[K, V]) reset() {
	a.slots = nil
	a.free = none
	a.live = 0
}

// capacity is the number of slots ever allocated, live or free.
func (a *arena[K, V]) capacity() int {
	return len(a.slots)
}
