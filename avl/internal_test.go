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
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// shape renders the subtree at i as key:balance(left,right), "." for an
// empty child, so expected trees can be written down in one line.
func shape[K, V any](t *Tree[K, V], i index) string {
	if i == none {
		return "."
	}
	n := t.at(i)
	s := fmt.Sprintf("%v:%d", n.key, n.balance)
	if n.child[left] == none && n.child[right] == none {
		return s
	}
	return fmt.Sprintf("%s(%s,%s)", s, shape(t, n.child[left]), shape(t, n.child[right]))
}

func build(keys ...int) *Tree[int, string] {
	tree := New[int, string]()
	for _, k := range keys {
		tree.Insert(k, fmt.Sprint("v", k))
	}
	return tree
}

func TestInsertFixupCases(t *testing.T) {
	testCases := []struct {
		name  string
		keys  []int
		shape string
	}{
		{"left left", []int{30, 20, 10}, "20:0(10:0,30:0)"},
		{"right right", []int{10, 20, 30}, "20:0(10:0,30:0)"},
		{"left right, new leaf", []int{30, 10, 20}, "20:0(10:0,30:0)"},
		{"right left, new leaf", []int{10, 30, 20}, "20:0(10:0,30:0)"},
		{"left right, pivot leaned left", []int{50, 30, 60, 20, 40, 35}, "40:0(30:0(20:0,35:0),50:1(.,60:0))"},
		{"left right, pivot leaned right", []int{50, 30, 60, 20, 40, 45}, "40:0(30:-1(20:0,.),50:0(45:0,60:0))"},
		{"right left, pivot leaned right", []int{50, 40, 70, 60, 80, 65}, "60:0(50:-1(40:0,.),70:0(65:0,80:0))"},
		{"right left, pivot leaned left", []int{50, 40, 70, 60, 80, 55}, "60:0(50:0(40:0,55:0),70:1(.,80:0))"},
		{"growth absorbed above", []int{20, 10, 30, 5}, "20:-1(10:-1(5:0,.),30:0)"},
		{"sibling fills gap", []int{20, 10, 30, 5, 15}, "20:-1(10:0(5:0,15:0),30:0)"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			tree := build(tc.keys...)
			require.NoError(t, tree.Validate())
			require.Equal(t, tc.shape, shape(tree, tree.root))
		})
	}
}

func TestRemoveFixupCases(t *testing.T) {
	testCases := []struct {
		name   string
		keys   []int
		remove int
		shape  string
	}{
		// taller child leans the same way as the violation
		{"single rotation, left heavy", []int{20, 10, 30, 5}, 30, "10:0(5:0,20:0)"},
		{"single rotation, right heavy", []int{20, 10, 30, 35}, 10, "30:0(20:0,35:0)"},
		// taller child balanced: height kept, walk stops
		{"balanced child, left heavy", []int{20, 10, 30, 5, 15}, 30, "10:1(5:0,20:-1(15:0,.))"},
		{"balanced child, right heavy", []int{20, 10, 30, 25, 35}, 10, "30:-1(20:1(.,25:0),35:0)"},
		// taller child leans against the violation: double rotation
		{"double rotation, pivot balanced, left heavy", []int{20, 10, 30, 15}, 30, "15:0(10:0,20:0)"},
		{"double rotation, pivot balanced, right heavy", []int{20, 10, 30, 25}, 10, "25:0(20:0,30:0)"},
		{"double rotation, pivot leaned left, left heavy", []int{50, 30, 60, 20, 40, 70, 35}, 70, "40:0(30:0(20:0,35:0),50:1(.,60:0))"},
		{"double rotation, pivot leaned right, left heavy", []int{50, 30, 60, 20, 40, 70, 45}, 70, "40:0(30:-1(20:0,.),50:0(45:0,60:0))"},
		{"double rotation, pivot leaned left, right heavy", []int{50, 30, 70, 20, 60, 80, 55}, 20, "60:0(50:0(30:0,55:0),70:1(.,80:0))"},
		{"double rotation, pivot leaned right, right heavy", []int{50, 30, 70, 20, 60, 80, 65}, 20, "60:0(50:-1(30:0,.),70:0(65:0,80:0))"},
		// no rotation
		{"leaf, walk reaches root", []int{20, 10, 30, 5}, 5, "20:0(10:0,30:0)"},
		{"leaf, shrink propagates", []int{20, 10, 30, 5, 25, 35, 40}, 5, "30:0(20:0(10:0,25:0),35:1(.,40:0))"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			tree := build(tc.keys...)
			require.NoError(t, tree.Validate())
			require.True(t, tree.Remove(tc.remove))
			require.NoError(t, tree.Validate())
			require.Equal(t, tc.shape, shape(tree, tree.root))
			require.Equal(t, len(tc.keys)-1, tree.Len())
		})
	}
}

func TestRemoveTwoChildrenTakesPredecessorPosition(t *testing.T) {
	tree := build(10, 5, 15, 3, 7, 12, 20)
	seven, ok := tree.Lookup(7)
	require.True(t, ok)

	require.True(t, tree.Remove(10))
	require.NoError(t, tree.Validate())
	require.Equal(t, "7:0(5:-1(3:0,.),15:0(12:0,20:0))", shape(tree, tree.root))

	// the handle followed its node to the root
	root, ok := tree.Root()
	require.True(t, ok)
	require.Equal(t, seven.i, root.i)
	require.Equal(t, "v7", seven.Value())
}

func TestRotate(t *testing.T) {
	tree := build(20, 10, 30, 25, 35)
	tree.rotateLeft(tree.root)
	require.Equal(t, 30, tree.at(tree.root).key)
	require.Equal(t, none, tree.at(tree.root).parent)
	// 25 moved across to 20's right
	twenty := tree.at(tree.root).child[left]
	require.Equal(t, 20, tree.at(twenty).key)
	moved := tree.at(twenty).child[right]
	require.Equal(t, 25, tree.at(moved).key)
	require.Equal(t, twenty, tree.at(moved).parent)

	tree.rotateRight(tree.root)
	// balances are untouched by rotations, so only compare keys
	var keys []string
	for _, part := range strings.FieldsFunc(shape(tree, tree.root), func(r rune) bool {
		return r == '(' || r == ')' || r == ','
	}) {
		keys = append(keys, strings.SplitN(part, ":", 2)[0])
	}
	require.Equal(t, []string{"20", "10", "30", "25", "35"}, keys)
}

func TestSwapAdjacentAndDistant(t *testing.T) {
	tree := build(10, 5, 15, 3, 7, 12, 20)

	a, _, _ := tree.locate(5)
	b, _, _ := tree.locate(3)
	tree.swap(a, b)
	require.Equal(t, "10:0(3:0(5:0,7:0),15:0(12:0,20:0))", shape(tree, tree.root))
	tree.swap(a, b)
	require.NoError(t, tree.Validate())

	a, _, _ = tree.locate(10)
	b, _, _ = tree.locate(20)
	tree.swap(a, b)
	require.Equal(t, "20:0(5:0(3:0,7:0),15:0(12:0,10:0))", shape(tree, tree.root))
	require.Equal(t, b, tree.root)
	require.Equal(t, none, tree.at(b).parent)
	tree.swap(b, a)
	require.NoError(t, tree.Validate())
}

func TestArenaReusesReleasedSlots(t *testing.T) {
	tree := New[int, int]()
	for i := 0; i < 64; i++ {
		tree.Insert(i, i)
	}
	require.Equal(t, 64, tree.nodes.capacity())

	for round := 0; round < 10; round++ {
		for i := 0; i < 32; i++ {
			tree.Remove(i * 2)
		}
		for i := 0; i < 32; i++ {
			tree.Insert(i*2, round)
		}
		require.NoError(t, tree.Validate())
	}
	require.Equal(t, 64, tree.nodes.capacity())
	require.Equal(t, 64, tree.Len())
}

func TestHeightFollowsBalance(t *testing.T) {
	tree := New[int, int]()
	require.Equal(t, 0, tree.Height())
	for i := 1; i <= 100; i++ {
		tree.Insert(i, i)
		h, err := tree.check(tree.root, none, new(int))
		require.NoError(t, err)
		require.Equal(t, h, tree.Height())
	}
}
