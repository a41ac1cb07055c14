// bucket_test.go: unit tests for bucket storage and key routing
//
// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira library
// SPDX-License-Identifier: MPL-2.0

package minimap

import (
	"fmt"
	"testing"
)

func TestBucket_FindSetRemove(t *testing.T) {
	var b bucket

	if i := b.find("foo"); i != -1 {
		t.Errorf("empty bucket find should return -1, got %d", i)
	}

	if appended := b.set("foo", "1", 0); !appended {
		t.Error("first set should append")
	}
	if appended := b.set("bar", "2", 0); !appended {
		t.Error("distinct key should append")
	}
	if appended := b.set("foo", "updated", 0); appended {
		t.Error("re-set of an existing key must not append")
	}

	if len(b) != 2 {
		t.Fatalf("duplicate-free invariant violated: %d entries", len(b))
	}

	i := b.find("foo")
	if i < 0 {
		t.Fatal("expected to find foo")
	}
	if b[i].value != "updated" {
		t.Errorf("expected updated value, got %v", b[i].value)
	}

	value, found := b.remove("foo")
	if !found || value != "updated" {
		t.Errorf("remove returned (%v, %v)", value, found)
	}
	if len(b) != 1 || b.find("foo") != -1 {
		t.Error("foo should be gone")
	}

	if _, found := b.remove("absent"); found {
		t.Error("removing an absent key should report not found")
	}
}

// TestBucket_RemovePreservesOrder verifies that removal splices the entry
// out without disturbing the insertion order of the survivors.
func TestBucket_RemovePreservesOrder(t *testing.T) {
	var b bucket
	for i := 0; i < 5; i++ {
		b.set(fmt.Sprintf("k%d", i), i, 0)
	}

	b.remove("k2")

	want := []string{"k0", "k1", "k3", "k4"}
	if len(b) != len(want) {
		t.Fatalf("expected %d entries, got %d", len(want), len(b))
	}
	for i, k := range want {
		if b[i].key != k {
			t.Errorf("position %d: expected %s, got %s", i, k, b[i].key)
		}
	}
}

// TestBucket_SetKeepsExpiration pins the bucket-level update contract: set
// on an existing key ignores the supplied expiration entirely.
func TestBucket_SetKeepsExpiration(t *testing.T) {
	var b bucket
	b.set("k", "v1", 12345)
	b.set("k", "v2", 99999)

	i := b.find("k")
	if b[i].expireAt != 12345 {
		t.Errorf("update must not touch the stored expiration, got %d", b[i].expireAt)
	}
	if b[i].value != "v2" {
		t.Errorf("update must replace the value, got %v", b[i].value)
	}
}

func TestEntry_Expired(t *testing.T) {
	noTTL := mapEntry{expireAt: 0}
	if noTTL.expired(1 << 62) {
		t.Error("entry without expiration must never expire")
	}

	e := mapEntry{expireAt: 1000}
	if e.expired(999) {
		t.Error("entry before its deadline is live")
	}
	if e.expired(1000) {
		t.Error("entry at the exact deadline is still live")
	}
	if !e.expired(1001) {
		t.Error("entry past its deadline is expired")
	}
}

func TestStringHash_Deterministic(t *testing.T) {
	keys := []string{"", "a", "foo", "bar", "baz", "a-much-longer-key-with-structure:123"}
	for _, key := range keys {
		if stringHash(key) != stringHash(key) {
			t.Errorf("hash of %q not deterministic", key)
		}
	}

	if stringHash("foo") == stringHash("bar") {
		t.Error("foo and bar should not collide on the full 64-bit hash")
	}
}

// TestStringHash_RoutingStable verifies the in-process routing guarantee:
// repeated lookups of one key always land in the same bucket.
func TestStringHash_RoutingStable(t *testing.T) {
	m := NewMap(Config{BucketCount: 7})

	for i := 0; i < 100; i++ {
		key := fmt.Sprintf("key%d", i)
		m.Set(key, i, NoTTL)
		if _, found := m.Get(key); !found {
			t.Fatalf("key %s not retrievable after insert", key)
		}
	}
}
