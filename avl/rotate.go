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

/*
|	rotate(x, left) and rotate(y, right) flip a subtree between these forms:
|	   |              |
|	   x              y
|	  / \            / \
|	 a   y    <=>   x   c
|	    / \        / \
|	   b   c      a   b
*/

// rotate moves x down towards dir and promotes its child on the other
// side into x's position. The promoted child must exist. Balance factors
// are left for the caller to set.
func (t *Tree[K, V]) rotate(x index, dir int) index {
	up := flip(dir)
	y := t.at(x).child[up]
	b := t.at(y).child[dir]
	p := t.at(x).parent

	t.setChild(x, up, b)
	t.replaceChild(p, x, y)
	t.setChild(y, dir, x)
	return y
}

func (t *Tree[K, V]) rotateLeft(x index) index {
	return t.rotate(x, left)
}

func (t *Tree[K, V]) rotateRight(x index) index {
	return t.rotate(x, right)
}

// settleDoubleRotation assigns balance factors after a double rotation
// that lifted mid above top and outer. top was heavy on side heavy and
// outer was its child on that side; mid was outer's inner child and its
// balance has not been touched yet.
//
// With h the height of top's light side, mid's taller subtree has height
// h and its shorter one h-1 (or both h when mid was balanced). The subtree
// mid leaned towards ends up next to the node that needs it, giving:
//
//	mid leaned to heavy side:    outer 0, top -s
//	mid balanced:                outer 0, top 0
//	mid leaned away from heavy:  outer s, top 0
//
// where s is the sign of heavy. Insert-fixup and remove-fixup share it.
func (t *Tree[K, V]) settleDoubleRotation(top, outer, mid index, heavy int) {
	s := sign(heavy)
	m := t.at(mid)
	o := t.at(outer)
	g := t.at(top)
	switch m.balance {
	case s:
		o.balance, g.balance = 0, -s
	case -s:
		o.balance, g.balance = s, 0
	default:
		o.balance, g.balance = 0, 0
	}
	m.balance = 0
}
