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

// Insert stores value under key. An existing key has its value replaced
// in place and the shape of the tree is left alone.
func (t *Tree[K, V]) Insert(key K, value V) {
	found, parent, dir := t.locate(key)
	if found != none {
		t.at(found).value = value
		return
	}

	n := t.nodes.alloc(key, value, parent)
	if parent == none {
		t.root = n
		return
	}
	t.at(parent).child[dir] = n

	p := t.at(parent)
	before := p.balance
	p.balance += sign(dir)
	if before != 0 {
		// the parent had one child and now has two: same height
		return
	}
	t.insertFixup(parent, n)
}

// insertFixup walks up from p, whose subtree has just grown by one level
// through its child n, until the growth is absorbed or a rotation puts
// the height back.
func (t *Tree[K, V]) insertFixup(p, n index) {
	for {
		g := t.at(p).parent
		if g == none {
			return
		}
		dir := t.side(p)
		gn := t.at(g)
		gn.balance += sign(dir)

		switch gn.balance {
		case 0:
			return
		case -1, +1:
			n, p = p, g
			continue
		}

		// |balance(g)| == 2, heavy on dir
		if t.at(p).child[dir] == n {
			// outer grandchild: single rotation
			t.rotate(g, flip(dir))
			t.at(p).balance = 0
			t.at(g).balance = 0
			return
		}
		// inner grandchild: double rotation
		t.rotate(p, dir)
		t.rotate(g, flip(dir))
		t.settleDoubleRotation(g, p, n, dir)
		return
	}
}
