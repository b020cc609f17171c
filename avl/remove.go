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

// Remove deletes key from the tree. Removing an absent key does nothing.
// It reports whether a key was removed.
func (t *Tree[K, V]) Remove(key K) bool {
	n, _, _ := t.locate(key)
	if n == none {
		return false
	}

	// a node with two children trades places with its predecessor, which
	// has no right child, so the node to splice out has at most one child
	if nn := t.at(n); nn.child[left] != none && nn.child[right] != none {
		t.swap(n, t.predecessor(n))
	}

	nn := t.at(n)
	child := nn.child[left]
	if child == none {
		child = nn.child[right]
	}
	parent := nn.parent

	var diff int8
	if parent != none {
		// losing height on one side leans the parent to the other
		diff = -sign(t.side(n))
	}
	t.replaceChild(parent, n, child)
	t.nodes.release(n)

	t.removeFixup(parent, diff)
	return true
}

// removeFixup walks up from node, whose subtree on one side has just lost
// a level (diff is the balance shift that causes), restoring balance
// factors until some subtree keeps its height.
func (t *Tree[K, V]) removeFixup(node index, diff int8) {
	for node != none {
		// the node at this position may change through rotation, but the
		// position's link to its parent does not
		p := t.at(node).parent
		var nextDiff int8
		if p != none {
			nextDiff = -sign(t.side(node))
		}

		nn := t.at(node)
		nn.balance += diff

		switch nn.balance {
		case -1, +1:
			return
		case 0:
			node, diff = p, nextDiff
			continue
		}

		// |balance| == 2
		heavy := left
		if nn.balance > 0 {
			heavy = right
		}
		s := sign(heavy)
		c := nn.child[heavy]
		cn := t.at(c)

		switch cn.balance {
		case s:
			t.rotate(node, flip(heavy))
			t.at(node).balance = 0
			t.at(c).balance = 0
		case 0:
			// the subtree keeps its height, nothing above changes
			t.rotate(node, flip(heavy))
			t.at(node).balance = s
			t.at(c).balance = -s
			return
		default:
			g := cn.child[flip(heavy)]
			t.rotate(c, heavy)
			t.rotate(node, flip(heavy))
			t.settleDoubleRotation(node, c, g, heavy)
		}
		node, diff = p, nextDiff
	}
}
