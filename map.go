// map.go: core bucketed map implementation and shared-storage handles
//
// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira library
// SPDX-License-Identifier: MPL-2.0

package minimap

import (
	"sync"
	"sync/atomic"
	"time"
)

// store is the storage shared by every handle to one map: the fixed bucket
// array, the single exclusive lock guarding it, and statistics. The bucket
// count never changes after construction, so bucket routing stays
// deterministic for the lifetime of the store.
type store struct {
	mu      sync.Mutex
	buckets []bucket

	// defaultTTLNanos is read under mu on every insert, which is what
	// makes it hot-reloadable without a dedicated synchronization path.
	defaultTTLNanos int64

	logger  Logger
	time    TimeProvider
	metrics MetricsCollector

	// Atomic statistics counters
	hits        int64
	misses      int64
	sets        int64
	removes     int64
	expirations int64
	size        int64
}

// miniMap is a handle to a shared store. Cloning copies only the store
// pointer; the storage lives as long as any handle references it.
type miniMap struct {
	s *store
}

// NewMap creates an empty map with Config.BucketCount buckets pre-allocated.
// The bucket count is fixed for the lifetime of the map.
func NewMap(config Config) Map {
	_ = config.Validate() // never fails, only normalizes

	return &miniMap{s: &store{
		buckets:         make([]bucket, config.BucketCount),
		defaultTTLNanos: int64(config.DefaultTTL),
		logger:          config.Logger,
		time:            config.TimeProvider,
		metrics:         config.MetricsCollector,
	}}
}

// bucketFor returns the bucket key routes to. The mapping is deterministic
// for the lifetime of the store because the bucket count never changes.
func (s *store) bucketFor(key string) *bucket {
	return &s.buckets[stringHash(key)%uint64(len(s.buckets))]
}

// expireAtLocked computes the absolute expiration timestamp for a new
// entry. Caller must hold s.mu (defaultTTLNanos is guarded by it).
func (s *store) expireAtLocked(now int64, ttl time.Duration) int64 {
	switch {
	case ttl > 0:
		return now + int64(ttl)
	case ttl == DefaultTTL && s.defaultTTLNanos > 0:
		return now + s.defaultTTLNanos
	default:
		// NoTTL, or DefaultTTL with no configured default
		return 0
	}
}

// Set stores a key-value pair. If the key already exists only its value is
// replaced; the stored expiration is untouched and the original TTL clock
// keeps running. See Map.Set for the ttl sentinel semantics.
func (m *miniMap) Set(key string, value interface{}, ttl time.Duration) {
	s := m.s
	start := s.time.Now()

	s.mu.Lock()
	if s.bucketFor(key).set(key, value, s.expireAtLocked(start, ttl)) {
		atomic.AddInt64(&s.size, 1)
	}
	s.mu.Unlock()

	atomic.AddInt64(&s.sets, 1)
	s.metrics.RecordSet(s.time.Now() - start)
}

// SetMany stores all key-value pairs under one lock acquisition, amortizing
// the lock cost across the batch. The length check happens before the lock
// is taken and before any mutation, so on mismatch the map is left entirely
// unchanged.
func (m *miniMap) SetMany(keys []string, values []interface{}, ttl time.Duration) error {
	if len(keys) != len(values) {
		return NewErrLengthMismatch(len(keys), len(values))
	}

	s := m.s
	start := s.time.Now()

	s.mu.Lock()
	for i, key := range keys {
		if s.bucketFor(key).set(key, values[i], s.expireAtLocked(start, ttl)) {
			atomic.AddInt64(&s.size, 1)
		}
	}
	s.mu.Unlock()

	atomic.AddInt64(&s.sets, int64(len(keys)))
	s.metrics.RecordSet(s.time.Now() - start)
	return nil
}

// Get retrieves the value for a key. Soft-expired entries are reported as
// absent even though they still occupy their bucket until swept.
func (m *miniMap) Get(key string) (interface{}, bool) {
	value, _, found := m.GetWithTTL(key)
	return value, found
}

// GetWithTTL is Get plus the entry's remaining time-to-live.
// remaining is 0 for entries stored without expiration.
func (m *miniMap) GetWithTTL(key string) (interface{}, time.Duration, bool) {
	s := m.s
	start := s.time.Now()

	var (
		value     interface{}
		remaining time.Duration
		found     bool
	)

	s.mu.Lock()
	b := *s.bucketFor(key)
	if i := b.find(key); i >= 0 && !b[i].expired(start) {
		value = b[i].value
		if b[i].expireAt > 0 {
			remaining = time.Duration(b[i].expireAt - start)
		}
		found = true
	}
	s.mu.Unlock()

	if found {
		atomic.AddInt64(&s.hits, 1)
	} else {
		atomic.AddInt64(&s.misses, 1)
	}
	s.metrics.RecordGet(s.time.Now()-start, found)

	return value, remaining, found
}

// Has checks if a key exists and is not soft-expired, without moving the
// hit/miss counters.
func (m *miniMap) Has(key string) bool {
	s := m.s
	now := s.time.Now()

	s.mu.Lock()
	b := *s.bucketFor(key)
	i := b.find(key)
	found := i >= 0 && !b[i].expired(now)
	s.mu.Unlock()

	return found
}

// Remove detaches an entry and returns its value, ignoring expiration
// status: a soft-expired entry is still returned.
func (m *miniMap) Remove(key string) (interface{}, bool) {
	s := m.s
	start := s.time.Now()

	s.mu.Lock()
	value, found := s.bucketFor(key).remove(key)
	if found {
		atomic.AddInt64(&s.size, -1)
	}
	s.mu.Unlock()

	if found {
		atomic.AddInt64(&s.removes, 1)
	}
	s.metrics.RecordRemove(s.time.Now() - start)

	return value, found
}

// Expire performs one full sweep: it collects every soft-expired key under
// the lock, then removes each one. Returns the number of entries removed.
//
// The lock is released before the per-key removals because Remove
// re-acquires it; holding it across those calls would deadlock. That window
// means a concurrently re-created entry under a collected key is removed
// too, which matches the store's single-lock, caller-driven sweep contract.
func (m *miniMap) Expire() int {
	s := m.s
	now := s.time.Now()

	s.mu.Lock()
	var expired []string
	for i := range s.buckets {
		for j := range s.buckets[i] {
			if s.buckets[i][j].expired(now) {
				expired = append(expired, s.buckets[i][j].key)
			}
		}
	}
	s.mu.Unlock()

	removed := 0
	for _, key := range expired {
		if _, ok := m.Remove(key); ok {
			removed++
			atomic.AddInt64(&s.expirations, 1)
			s.metrics.RecordExpiration()
		}
	}

	if removed > 0 {
		s.logger.Debug("expire sweep completed", "removed", removed, "collected", len(expired))
	}
	return removed
}

// Len returns the number of resident entries, including soft-expired ones
// that have not been swept yet.
func (m *miniMap) Len() int {
	return int(atomic.LoadInt64(&m.s.size))
}

// Buckets returns the bucket count fixed at construction.
func (m *miniMap) Buckets() int {
	return len(m.s.buckets)
}

// Keys returns a snapshot of all resident keys, including soft-expired
// ones, in bucket order (insertion order within each bucket).
func (m *miniMap) Keys() []string {
	s := m.s

	s.mu.Lock()
	keys := make([]string, 0, atomic.LoadInt64(&s.size))
	for i := range s.buckets {
		for j := range s.buckets[i] {
			keys = append(keys, s.buckets[i][j].key)
		}
	}
	s.mu.Unlock()

	return keys
}

// Clear removes all entries and resets statistics. The bucket array itself
// is kept: bucket routing stays identical before and after Clear.
func (m *miniMap) Clear() {
	s := m.s

	s.mu.Lock()
	for i := range s.buckets {
		s.buckets[i] = nil
	}
	atomic.StoreInt64(&s.size, 0)
	s.mu.Unlock()

	// Reset counters
	atomic.StoreInt64(&s.hits, 0)
	atomic.StoreInt64(&s.misses, 0)
	atomic.StoreInt64(&s.sets, 0)
	atomic.StoreInt64(&s.removes, 0)
	atomic.StoreInt64(&s.expirations, 0)
}

// Clone returns a new handle sharing this map's storage. Entries are never
// duplicated; writes through one handle are immediately visible through
// every other because all handles serialize on the same lock.
func (m *miniMap) Clone() Map {
	return &miniMap{s: m.s}
}

// SetDefaultTTL changes the TTL applied to entries stored with DefaultTTL.
// Existing entries are unaffected.
func (m *miniMap) SetDefaultTTL(ttl time.Duration) {
	if ttl < 0 {
		ttl = 0
	}

	s := m.s
	s.mu.Lock()
	s.defaultTTLNanos = int64(ttl)
	s.mu.Unlock()
}

// Stats returns map statistics.
func (m *miniMap) Stats() Stats {
	s := m.s
	return Stats{
		Hits:        uint64(atomic.LoadInt64(&s.hits)),        // #nosec G115 - stats counters are always positive
		Misses:      uint64(atomic.LoadInt64(&s.misses)),      // #nosec G115 - stats counters are always positive
		Sets:        uint64(atomic.LoadInt64(&s.sets)),        // #nosec G115 - stats counters are always positive
		Removes:     uint64(atomic.LoadInt64(&s.removes)),     // #nosec G115 - stats counters are always positive
		Expirations: uint64(atomic.LoadInt64(&s.expirations)), // #nosec G115 - stats counters are always positive
		Size:        int(atomic.LoadInt64(&s.size)),
		Buckets:     len(s.buckets),
	}
}

// Close releases the map's entries. There are no background goroutines to
// stop, so Close never blocks.
func (m *miniMap) Close() error {
	m.Clear()
	return nil
}
