// bucket.go: bucket storage and key routing for MiniMap
//
// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira library
// SPDX-License-Identifier: MPL-2.0

package minimap

import "unsafe"

// mapEntry is one (key, value, expiration) record. An entry is owned by
// exactly one bucket.
type mapEntry struct {
	key      string
	value    interface{}
	expireAt int64 // expiration timestamp in nanoseconds (0 = no expiration)
}

// expired reports whether the entry's TTL has elapsed at now.
// The boundary instant itself is still live: strictly more than the TTL
// must have passed.
func (e *mapEntry) expired(now int64) bool {
	return e.expireAt > 0 && now > e.expireAt
}

// bucket holds every entry routed to one index, in insertion order.
// A bucket never holds two entries with the same key; the linear scan in
// set enforces that on every insert. All methods assume the caller holds
// the store lock.
type bucket []mapEntry

// find returns the position of key within the bucket, or -1 if absent.
func (b bucket) find(key string) int {
	for i := range b {
		if b[i].key == key {
			return i
		}
	}
	return -1
}

// set replaces the value of an existing entry in place, or appends a new
// entry with the given expiration. On replace, the stored expiration is
// left untouched: the original TTL clock keeps running regardless of the
// expireAt supplied for the update. Returns true when a new entry was
// appended.
func (b *bucket) set(key string, value interface{}, expireAt int64) bool {
	if i := b.find(key); i >= 0 {
		(*b)[i].value = value
		return false
	}
	*b = append(*b, mapEntry{key: key, value: value, expireAt: expireAt})
	return true
}

// remove detaches the entry for key and returns its value, ignoring
// expiration status. Order of the remaining entries is preserved.
func (b *bucket) remove(key string) (interface{}, bool) {
	i := b.find(key)
	if i < 0 {
		return nil, false
	}
	s := *b
	value := s[i].value
	copy(s[i:], s[i+1:])
	s[len(s)-1] = mapEntry{} // release references held by the vacated slot
	*b = s[:len(s)-1]
	return value, true
}

// stringHash computes a 64-bit hash of a string using FNV-1a algorithm.
// This is optimized for performance & zero allocations.
//
// Only in-process determinism is promised to callers: the same key always
// routes to the same bucket for the lifetime of one map instance. Do not
// rely on hash values being stable across releases.
func stringHash(s string) uint64 {
	const (
		fnv64Offset = 14695981039346656037
		fnv64Prime  = 1099511628211
	)

	hash := uint64(fnv64Offset)

	// Use unsafe to avoid allocations when converting string to []byte
	// #nosec G103 - Safe usage: we only read the string data, no writes or pointer arithmetic
	data := unsafe.Slice(unsafe.StringData(s), len(s))

	for _, b := range data {
		hash ^= uint64(b)
		hash *= fnv64Prime
	}

	return hash
}
