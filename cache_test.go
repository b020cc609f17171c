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
	"testing"
	"time"
)

func TestCacheLookupAndGetLookup(t *testing.T) {
	c := NewLookupCache(time.Minute)
	key := "testKey"
	value := "some value"

	// Initially, nothing is cached for the key.
	if _, _, hit := GetLookup(c, key); hit {
		t.Errorf("GetLookup(%q) hit on an empty cache", key)
	}

	CacheLookup(c, key, value)
	if got, found, hit := GetLookup(c, key); !hit || !found || got != value {
		t.Errorf("GetLookup(%q) = %q, %v, %v; want %q, true, true", key, got, found, hit, value)
	}

	CacheMiss(c, "absent")
	if _, found, hit := GetLookup(c, "absent"); !hit || found {
		t.Errorf("GetLookup(absent) = found %v, hit %v; want false, true", found, hit)
	}
}

func TestCacheExpiration(t *testing.T) {
	// Create a cache with a very short expiration time to test expiry behavior.
	c := NewLookupCache(100 * time.Millisecond)
	key := "expiringKey"

	CacheLookup(c, key, "soon gone")

	// Immediately after caching, the value should be retrievable.
	if _, _, hit := GetLookup(c, key); !hit {
		t.Errorf("GetLookup(%q) missed right after caching", key)
	}

	// Wait longer than the expiration duration.
	time.Sleep(150 * time.Millisecond)

	if _, _, hit := GetLookup(c, key); hit {
		t.Errorf("After expiration, GetLookup(%q) still hit", key)
	}
}

func TestCacheWithoutExpiry(t *testing.T) {
	c := NewLookupCache(0)
	CacheLookup(c, "k", "v")
	if _, _, hit := GetLookup(c, "k"); !hit {
		t.Errorf("GetLookup(k) missed on a non-expiring cache")
	}
}
