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

// Validate checks the structural invariants of the tree: parent and child
// links agree, keys are strictly ascending in order, and every stored
// balance factor equals the measured height difference and lies in
// [-1, 1]. It returns the first violation found.
func (t *Tree[K, V]) Validate() error {
	if t.root != none && t.at(t.root).parent != none {
		return fmt.Errorf("avl: root %v has a parent", t.at(t.root).key)
	}
	count := 0
	if _, err := t.check(t.root, none, &count); err != nil {
		return err
	}
	if count != t.nodes.live {
		return fmt.Errorf("avl: reachable nodes %d, live nodes %d", count, t.nodes.live)
	}

	var prev *K
	for k := range t.All() {
		if prev != nil && t.cmp(*prev, k) >= 0 {
			return fmt.Errorf("avl: keys out of order: %v then %v", *prev, k)
		}
		prev = &k
	}
	return nil
}

// check returns the measured height of the subtree at i.
func (t *Tree[K, V]) check(i, parent index, count *int) (int, error) {
	if i == none {
		return 0, nil
	}
	*count++
	n := t.at(i)
	if n.parent != parent {
		return 0, fmt.Errorf("avl: node %v has a stale parent link", n.key)
	}
	lh, err := t.check(n.child[left], i, count)
	if err != nil {
		return 0, err
	}
	rh, err := t.check(n.child[right], i, count)
	if err != nil {
		return 0, err
	}
	if b := rh - lh; b != int(n.balance) {
		return 0, fmt.Errorf("avl: node %v stores balance %d, measured %d", n.key, n.balance, b)
	}
	if n.balance < -1 || n.balance > 1 {
		return 0, fmt.Errorf("avl: node %v out of balance (%d)", n.key, n.balance)
	}
	return 1 + max(lh, rh), nil
}
