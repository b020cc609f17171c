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

package main

import (
	"errors"
	"testing"
	"time"

	"github.com/cybrota/avlkit/avl"
)

func testIndexOptions() IndexOptions {
	return IndexOptions{
		Order:       OrderNatural,
		CacheTTL:    time.Minute,
		BloomSize:   1024,
		BloomHashes: 3,
		ShowBalance: true,
	}
}

func TestIndexLookupPaths(t *testing.T) {
	idx := NewIndex(testIndexOptions())
	idx.Put("alpha", "1")
	idx.Put("beta", "2")

	// first lookup goes to the tree, second is answered by the cache
	for i := 0; i < 2; i++ {
		v, err := idx.Lookup("alpha")
		if err != nil || v != "1" {
			t.Fatalf("Lookup(alpha) = %q, %v; want 1, nil", v, err)
		}
	}
	if s := idx.Stats(); s.TreeLookups != 1 || s.CacheHits != 1 {
		t.Errorf("unexpected stats %+v", s)
	}

	if _, err := idx.Lookup("never-added"); !errors.Is(err, avl.ErrKeyNotFound) {
		t.Errorf("expected ErrKeyNotFound, got %v", err)
	}
	if s := idx.Stats(); s.BloomRejects+s.TreeLookups < 2 {
		t.Errorf("missing key was not counted: %+v", s)
	}
}

func TestIndexMutationInvalidatesCache(t *testing.T) {
	idx := NewIndex(testIndexOptions())
	idx.Put("k", "old")
	if v, _ := idx.Lookup("k"); v != "old" {
		t.Fatalf("Lookup(k) = %q; want old", v)
	}

	idx.Put("k", "new")
	if v, _ := idx.Lookup("k"); v != "new" {
		t.Errorf("after overwrite Lookup(k) = %q; want new", v)
	}

	if !idx.Delete("k") {
		t.Fatalf("Delete(k) reported absent key")
	}
	if _, err := idx.Lookup("k"); !errors.Is(err, avl.ErrKeyNotFound) {
		t.Errorf("after delete expected ErrKeyNotFound, got %v", err)
	}
	if idx.Delete("k") {
		t.Errorf("second Delete(k) reported a removal")
	}

	// a cached miss must not hide a later insert
	idx.Put("k", "back")
	if v, err := idx.Lookup("k"); err != nil || v != "back" {
		t.Errorf("after reinsert Lookup(k) = %q, %v; want back", v, err)
	}
}

func TestIndexClear(t *testing.T) {
	idx := NewIndex(testIndexOptions())
	for _, k := range []string{"a", "b", "c"} {
		idx.Put(k, k)
	}
	idx.Lookup("a")
	idx.Clear()

	if idx.Len() != 0 || idx.Height() != 0 {
		t.Errorf("Clear left %d keys, height %d", idx.Len(), idx.Height())
	}
	if _, err := idx.Lookup("a"); !errors.Is(err, avl.ErrKeyNotFound) {
		t.Errorf("expected ErrKeyNotFound after Clear, got %v", err)
	}
}

func TestIndexNaturalOrder(t *testing.T) {
	idx := NewIndex(testIndexOptions())
	for _, k := range []string{"10", "9", "100", "1"} {
		idx.Put(k, "")
	}

	var got []string
	for k := range idx.Pairs() {
		got = append(got, k)
	}
	want := []string{"1", "9", "10", "100"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("keys = %v; want %v", got, want)
		}
	}
	if err := idx.Validate(); err != nil {
		t.Errorf("Validate failed: %v", err)
	}
}
