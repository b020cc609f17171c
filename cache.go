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
	"time"

	"github.com/patrickmn/go-cache"
)

const (
	// Clean up expired lookups every 5 minutes
	lookupCacheCleanup = 5 * time.Minute
)

// missing marks a key the tree was asked for and did not hold
type missing struct{}

// NewLookupCache creates the cache that fronts tree lookups. A ttl of zero
// or less disables expiry.
func NewLookupCache(ttl time.Duration) *cache.Cache {
	if ttl <= 0 {
		return cache.New(cache.NoExpiration, 0)
	}
	return cache.New(ttl, lookupCacheCleanup)
}

func CacheLookup(c *cache.Cache, key string, value string) {
	c.Set(key, value, cache.DefaultExpiration)
}

func CacheMiss(c *cache.Cache, key string) {
	c.Set(key, missing{}, cache.DefaultExpiration)
}

// GetLookup reports a cached answer for key: hit says whether anything was
// cached, found whether that answer was a stored value.
func GetLookup(c *cache.Cache, key string) (value string, found, hit bool) {
	val, ok := c.Get(key)
	if !ok {
		return "", false, false
	}
	if s, isValue := val.(string); isValue {
		return s, true, true
	}
	return "", false, true
}
