// map_test.go: unit tests for the core map operations
//
// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira fragment
// SPDX-License-Identifier: MPL-2.0

package minimap

import (
	"fmt"
	"sort"
	"testing"
)

func TestNewMap(t *testing.T) {
	m := NewMap(Config{BucketCount: 64})
	if m == nil {
		t.Fatal("NewMap returned nil")
	}

	if m.Buckets() != 64 {
		t.Errorf("expected 64 buckets, got %d", m.Buckets())
	}

	if m.Len() != 0 {
		t.Errorf("expected empty map, got size %d", m.Len())
	}
}

func TestNewMap_DefaultBucketCount(t *testing.T) {
	m := NewMap(Config{})
	if m.Buckets() != DefaultBucketCount {
		t.Errorf("expected %d buckets, got %d", DefaultBucketCount, m.Buckets())
	}
}

func TestMap_SetGet_Basic(t *testing.T) {
	m := NewMap(Config{BucketCount: 128})

	m.Set("foo", "bar", NoTTL)

	value, found := m.Get("foo")
	if !found {
		t.Error("expected to find foo")
	}
	if value != "bar" {
		t.Errorf("expected 'bar', got %v", value)
	}

	// Entries without expiration report zero remaining TTL
	_, remaining, found := m.GetWithTTL("foo")
	if !found {
		t.Error("expected to find foo")
	}
	if remaining != 0 {
		t.Errorf("expected zero remaining TTL, got %v", remaining)
	}

	// Non-existent key
	_, found = m.Get("nonexistent")
	if found {
		t.Error("expected not to find nonexistent key")
	}
}

func TestMap_SetGet_Update(t *testing.T) {
	m := NewMap(Config{BucketCount: 128})

	m.Set("key", "value1", NoTTL)
	m.Set("key", "value2", NoTTL)

	value, found := m.Get("key")
	if !found {
		t.Error("expected to find key")
	}
	if value != "value2" {
		t.Errorf("expected 'value2', got %v", value)
	}

	// Size should still be 1
	if m.Len() != 1 {
		t.Errorf("expected size 1, got %d", m.Len())
	}
}

// TestMap_Collisions uses a two-bucket map so that distinct keys are forced
// to share buckets. Every key must remain independently retrievable.
func TestMap_Collisions(t *testing.T) {
	m := NewMap(Config{BucketCount: 2})

	m.Set("foo", "1", NoTTL)
	m.Set("bar", "2", NoTTL)
	m.Set("baz", "3", NoTTL)

	if m.Len() != 3 {
		t.Fatalf("expected size 3, got %d", m.Len())
	}

	for key, want := range map[string]string{"foo": "1", "bar": "2", "baz": "3"} {
		value, found := m.Get(key)
		if !found {
			t.Errorf("expected to find %s", key)
			continue
		}
		if value != want {
			t.Errorf("key %s: expected %q, got %v", key, want, value)
		}
	}
}

func TestMap_Remove(t *testing.T) {
	m := NewMap(Config{BucketCount: 128})

	m.Set("foo", "bar", NoTTL)
	m.Set("baz", "bat", NoTTL)

	value, found := m.Remove("baz")
	if !found {
		t.Error("expected Remove to find baz")
	}
	if value != "bat" {
		t.Errorf("expected 'bat', got %v", value)
	}

	if _, found := m.Get("baz"); found {
		t.Error("baz should be gone after Remove")
	}

	// Removing an absent key is not an error
	if _, found := m.Remove("xyz"); found {
		t.Error("Remove of absent key should report not found")
	}

	if m.Len() != 1 {
		t.Errorf("expected size 1, got %d", m.Len())
	}
}

func TestMap_SetMany(t *testing.T) {
	m := NewMap(Config{BucketCount: 16})

	keys := []string{"a", "b", "c"}
	values := []interface{}{"1", "2", "3"}

	if err := m.SetMany(keys, values, NoTTL); err != nil {
		t.Fatalf("SetMany failed: %v", err)
	}

	if m.Len() != 3 {
		t.Errorf("expected size 3, got %d", m.Len())
	}

	for i, key := range keys {
		value, found := m.Get(key)
		if !found {
			t.Errorf("expected to find %s", key)
			continue
		}
		if value != values[i] {
			t.Errorf("key %s: expected %v, got %v", key, values[i], value)
		}
	}
}

// TestMap_SetMany_LengthMismatch verifies batch atomicity: on mismatched
// lengths nothing at all is written.
func TestMap_SetMany_LengthMismatch(t *testing.T) {
	m := NewMap(Config{BucketCount: 16})
	m.Set("existing", "v", NoTTL)

	before := m.Len()

	err := m.SetMany([]string{"a", "b"}, []interface{}{"1"}, NoTTL)
	if err == nil {
		t.Fatal("expected a length mismatch error")
	}
	if !IsLengthMismatch(err) {
		t.Errorf("expected MINIMAP_LENGTH_MISMATCH, got %v", GetErrorCode(err))
	}

	if m.Len() != before {
		t.Errorf("map mutated despite mismatch: size %d, want %d", m.Len(), before)
	}
	if _, found := m.Get("a"); found {
		t.Error("no key from the failed batch should exist")
	}
}

func TestMap_Has(t *testing.T) {
	m := NewMap(Config{BucketCount: 16})

	if m.Has("foo") {
		t.Error("empty map should not have foo")
	}

	m.Set("foo", "bar", NoTTL)
	if !m.Has("foo") {
		t.Error("expected Has to report foo")
	}

	// Has must not move the hit/miss counters
	stats := m.Stats()
	if stats.Hits != 0 || stats.Misses != 0 {
		t.Errorf("Has should not affect hit/miss counters: %+v", stats)
	}
}

func TestMap_Keys(t *testing.T) {
	m := NewMap(Config{BucketCount: 8})

	want := []string{"a", "b", "c", "d"}
	for _, k := range want {
		m.Set(k, k, NoTTL)
	}

	keys := m.Keys()
	if len(keys) != len(want) {
		t.Fatalf("expected %d keys, got %d", len(want), len(keys))
	}

	sort.Strings(keys)
	for i, k := range want {
		if keys[i] != k {
			t.Errorf("keys[%d]: expected %s, got %s", i, k, keys[i])
		}
	}
}

func TestMap_Clear(t *testing.T) {
	m := NewMap(Config{BucketCount: 32})

	for i := 0; i < 10; i++ {
		m.Set(fmt.Sprintf("key%d", i), i, NoTTL)
	}
	m.Get("key0")

	m.Clear()

	if m.Len() != 0 {
		t.Errorf("expected empty map after Clear, got %d", m.Len())
	}
	if m.Buckets() != 32 {
		t.Errorf("Clear must not change the bucket count, got %d", m.Buckets())
	}

	stats := m.Stats()
	if stats.Hits != 0 || stats.Sets != 0 {
		t.Errorf("expected reset stats, got %+v", stats)
	}

	// Routing still works after Clear
	m.Set("key0", "fresh", NoTTL)
	if value, found := m.Get("key0"); !found || value != "fresh" {
		t.Error("map should be usable after Clear")
	}
}

// TestMap_Clone verifies that cloned handles share one storage: writes
// through either handle are visible through the other, and no entries are
// copied.
func TestMap_Clone(t *testing.T) {
	m := NewMap(Config{BucketCount: 16})
	m.Set("a", "1", NoTTL)

	clone := m.Clone()

	if value, found := clone.Get("a"); !found || value != "1" {
		t.Error("clone should see entries written before cloning")
	}

	clone.Set("b", "2", NoTTL)
	if value, found := m.Get("b"); !found || value != "2" {
		t.Error("original should see entries written through the clone")
	}

	if m.Len() != 2 || clone.Len() != 2 {
		t.Errorf("both handles must report the same size: %d vs %d", m.Len(), clone.Len())
	}

	clone.Remove("a")
	if _, found := m.Get("a"); found {
		t.Error("removal through the clone should be visible through the original")
	}
}

func TestMap_Stats(t *testing.T) {
	m := NewMap(Config{BucketCount: 16})

	m.Set("a", "1", NoTTL)
	m.Set("b", "2", NoTTL)
	m.Get("a")         // hit
	m.Get("missing")   // miss
	m.Remove("b")      // remove
	m.Remove("absent") // no-op

	stats := m.Stats()
	if stats.Hits != 1 {
		t.Errorf("expected 1 hit, got %d", stats.Hits)
	}
	if stats.Misses != 1 {
		t.Errorf("expected 1 miss, got %d", stats.Misses)
	}
	if stats.Sets != 2 {
		t.Errorf("expected 2 sets, got %d", stats.Sets)
	}
	if stats.Removes != 1 {
		t.Errorf("expected 1 remove, got %d", stats.Removes)
	}
	if stats.Size != 1 {
		t.Errorf("expected size 1, got %d", stats.Size)
	}
	if stats.Buckets != 16 {
		t.Errorf("expected 16 buckets, got %d", stats.Buckets)
	}

	if ratio := stats.HitRatio(); ratio != 50.0 {
		t.Errorf("expected 50%% hit ratio, got %f", ratio)
	}
}

func TestStats_HitRatio_Empty(t *testing.T) {
	var stats Stats
	if ratio := stats.HitRatio(); ratio != 0 {
		t.Errorf("expected 0 hit ratio with no operations, got %f", ratio)
	}
}

func TestMap_Close(t *testing.T) {
	m := NewMap(Config{BucketCount: 16})
	m.Set("a", "1", NoTTL)

	if err := m.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	if m.Len() != 0 {
		t.Errorf("expected empty map after Close, got %d", m.Len())
	}
}
