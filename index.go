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
	"fmt"
	"iter"
	"time"

	"github.com/cybrota/avlkit/avl"
	"github.com/patrickmn/go-cache"
	"github.com/willf/bloom"
)

// IndexOptions configures an Index
type IndexOptions struct {
	Order       string
	CacheTTL    time.Duration
	BloomSize   uint
	BloomHashes uint
	ShowValues  bool
	ShowBalance bool
}

func indexOptionsFrom(config *Config) IndexOptions {
	return IndexOptions{
		Order:       config.Keys.Order,
		CacheTTL:    config.Lookup.CacheTTL,
		BloomSize:   config.Lookup.BloomSize,
		BloomHashes: config.Lookup.BloomHashes,
		ShowValues:  config.Display.ShowValues,
		ShowBalance: config.Display.ShowBalance,
	}
}

// IndexStats counts how lookups were answered
type IndexStats struct {
	BloomRejects int
	CacheHits    int
	TreeLookups  int
}

// Index is a string keyed AVL tree with a bloom filter and a lookup cache
// in front of it. The filter never forgets a key, so removed keys fall
// through to the cache or the tree.
type Index struct {
	tree    *avl.Tree[string, string]
	filter  *bloom.BloomFilter
	lookups *cache.Cache
	opts    IndexOptions
	stats   IndexStats
}

// NewIndex creates an empty index
func NewIndex(opts IndexOptions) *Index {
	if opts.BloomSize == 0 {
		opts.BloomSize = defaultConfig.Lookup.BloomSize
	}
	if opts.BloomHashes == 0 {
		opts.BloomHashes = defaultConfig.Lookup.BloomHashes
	}

	return &Index{
		tree:    avl.NewFunc[string, string](comparatorFor(opts.Order)),
		filter:  bloom.New(opts.BloomSize, opts.BloomHashes),
		lookups: NewLookupCache(opts.CacheTTL),
		opts:    opts,
	}
}

func notFound(key string) error {
	return fmt.Errorf("%w: %v", avl.ErrKeyNotFound, key)
}

// Put inserts or replaces key
func (idx *Index) Put(key, value string) {
	idx.tree.Insert(key, value)
	idx.filter.AddString(key)
	idx.lookups.Delete(key)
}

// Delete removes key, reporting whether it was present
func (idx *Index) Delete(key string) bool {
	removed := idx.tree.Remove(key)
	if removed {
		idx.lookups.Delete(key)
	}
	return removed
}

// Lookup returns the value stored for key or an error wrapping
// avl.ErrKeyNotFound.
func (idx *Index) Lookup(key string) (string, error) {
	if !idx.filter.TestString(key) {
		idx.stats.BloomRejects++
		return "", notFound(key)
	}

	if value, found, hit := GetLookup(idx.lookups, key); hit {
		idx.stats.CacheHits++
		if !found {
			return "", notFound(key)
		}
		return value, nil
	}

	idx.stats.TreeLookups++
	value, err := idx.tree.Find(key)
	if err != nil {
		CacheMiss(idx.lookups, key)
		return "", err
	}
	CacheLookup(idx.lookups, key, value)
	return value, nil
}

// Pairs yields every key and value in key order
func (idx *Index) Pairs() iter.Seq2[string, string] {
	return idx.tree.All()
}

func (idx *Index) Len() int {
	return idx.tree.Len()
}

func (idx *Index) Height() int {
	return idx.tree.Height()
}

func (idx *Index) Validate() error {
	return idx.tree.Validate()
}

// Render draws the tree using the index's display options
func (idx *Index) Render() string {
	return renderTree(idx.tree, renderOptions{
		ShowValues:  idx.opts.ShowValues,
		ShowBalance: idx.opts.ShowBalance,
	})
}

// Clear drops every key, the filter bits and the cached lookups
func (idx *Index) Clear() {
	idx.tree.Clear()
	idx.filter.ClearAll()
	idx.lookups.Flush()
}

// Stats returns lookup counters
func (idx *Index) Stats() IndexStats {
	return idx.stats
}

// Tree exposes the underlying tree for read-only walks
func (idx *Index) Tree() *avl.Tree[string, string] {
	return idx.tree
}
