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

// Plain binary-search-tree plumbing shared by the AVL engine.

// locate descends from the root looking for key. It returns the matching
// node, or none together with the node a new key would hang from and the
// side it would go on.
func (t *Tree[K, V]) locate(key K) (found, parent index, dir int) {
	parent = none
	for i := t.root; i != none; {
		c := t.cmp(key, t.at(i).key)
		if c == 0 {
			return i, parent, dir
		}
		parent = i
		if c < 0 {
			dir = left
		} else {
			dir = right
		}
		i = t.at(i).child[dir]
	}
	return none, parent, dir
}

// extreme walks from i as far as possible in direction dir.
func (t *Tree[K, V]) extreme(i index, dir int) index {
	if i == none {
		return none
	}
	for t.at(i).child[dir] != none {
		i = t.at(i).child[dir]
	}
	return i
}

// neighbour returns the in-order neighbour of i on side dir: the
// predecessor for left, the successor for right.
func (t *Tree[K, V]) neighbour(i index, dir int) index {
	if c := t.at(i).child[dir]; c != none {
		return t.extreme(c, flip(dir))
	}
	for {
		p := t.at(i).parent
		if p == none {
			return none
		}
		if t.at(p).child[flip(dir)] == i {
			return p
		}
		i = p
	}
}

func (t *Tree[K, V]) predecessor(i index) index {
	return t.neighbour(i, left)
}

func (t *Tree[K, V]) successor(i index) index {
	return t.neighbour(i, right)
}

// side reports which child of its parent i is. It must not be called on
// the root.
func (t *Tree[K, V]) side(i index) int {
	p := t.at(i).parent
	switch i {
	case t.at(p).child[left]:
		return left
	case t.at(p).child[right]:
		return right
	}
	panic("avl: corrupt tree, node missing from its parent")
}

// replaceChild makes x take old's place under p, or the root's place when
// p is none. x's parent link is set as well.
func (t *Tree[K, V]) replaceChild(p, old, x index) {
	if x != none {
		t.at(x).parent = p
	}
	if p == none {
		if t.root != old {
			panic("avl: corrupt tree, root mismatch")
		}
		t.root = x
		return
	}
	pn := t.at(p)
	switch old {
	case pn.child[left]:
		pn.child[left] = x
	case pn.child[right]:
		pn.child[right] = x
	default:
		panic("avl: corrupt tree, node missing from its parent")
	}
}

// setChild links c as p's child on side dir, fixing c's parent link.
func (t *Tree[K, V]) setChild(p index, dir int, c index) {
	t.at(p).child[dir] = c
	if c != none {
		t.at(c).parent = p
	}
}

// swap exchanges the positions of a and b in the tree. Keys and values
// stay with their nodes, while balance factors stay with the positions
// because they describe the shape below a position, not the payload.
func (t *Tree[K, V]) swap(a, b index) {
	if a == b {
		return
	}
	na, nb := t.at(a), t.at(b)
	pa, pb := na.parent, nb.parent
	ca, cb := na.child, nb.child

	// sub maps a reference to a onto b and vice versa, covering the case
	// where the two nodes are adjacent.
	sub := func(x index) index {
		switch x {
		case a:
			return b
		case b:
			return a
		}
		return x
	}

	var sideA, sideB int
	if pa != none {
		sideA = t.side(a)
	}
	if pb != none {
		sideB = t.side(b)
	}

	na.parent, nb.parent = sub(pb), sub(pa)
	na.child = [2]index{sub(cb[left]), sub(cb[right])}
	nb.child = [2]index{sub(ca[left]), sub(ca[right])}
	na.balance, nb.balance = nb.balance, na.balance

	switch {
	case pa == none:
		t.root = b
	case pa != b:
		t.at(pa).child[sideA] = b
	}
	switch {
	case pb == none:
		t.root = a
	case pb != a:
		t.at(pb).child[sideB] = a
	}

	for _, x := range [2]index{a, b} {
		for _, c := range t.at(x).child {
			if c != none && c != a && c != b {
				t.at(c).parent = x
			}
		}
	}
}
