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

import (
	"fmt"
	"io"
)

// branch says how a printed node hangs from its parent.
type branch int

const (
	trunk branch = iota
	leftBranch
	rightBranch
)

// Fprint writes the tree sideways to w, right subtree on top, one node
// per line. label renders each node; nil prints the key and balance.
func (t *Tree[K, V]) Fprint(w io.Writer, label func(Node[K, V]) string) error {
	if label == nil {
		label = func(n Node[K, V]) string {
			return fmt.Sprintf("%v %+d", n.Key(), n.Balance())
		}
	}
	return t.fprint(w, t.root, "", trunk, label)
}

func (t *Tree[K, V]) fprint(w io.Writer, i index, prefix string, br branch, label func(Node[K, V]) string) error {
	if i == none {
		return nil
	}
	n := t.at(i)
	if n.child[right] != none {
		pad := "       "
		if br == leftBranch {
			pad = "|      "
		}
		if err := t.fprint(w, n.child[right], prefix+pad, rightBranch, label); err != nil {
			return err
		}
	}

	var edge string
	switch br {
	case trunk:
		edge = "|------+ "
	case leftBranch:
		edge = "\\------+ "
	case rightBranch:
		edge = "/------+ "
	}
	if _, err := fmt.Fprintf(w, "%s%s%s\n", prefix, edge, label(Node[K, V]{tree: t, i: i})); err != nil {
		return err
	}

	if n = t.at(i); n.child[left] != none {
		pad := "       "
		if br == rightBranch {
			pad = "|      "
		}
		return t.fprint(w, n.child[left], prefix+pad, leftBranch, label)
	}
	return nil
}
