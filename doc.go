// Package minimap implements a bounded-shape, key-addressed associative
// store with per-entry TTL and caller-driven expiration sweeps.
//
// # Overview
//
// MiniMap is a building block for caches and short-lived lookup tables:
//   - Fixed Shape: N buckets chosen at construction, never resized
//   - O(1) Routing: FNV-1a hash routes every key to its bucket
//   - Per-Entry TTL: optional expiration with soft/hard semantics
//   - One Lock: a single exclusive lock serializes every operation
//
// There is no persistence, no network surface, and no background eviction
// goroutine. Expiration is entirely caller-driven: an entry whose TTL has
// elapsed becomes invisible to Get (soft-expired) but stays resident until
// an explicit Expire sweep or a Remove detaches it (hard-expired).
//
// # Quick Start
//
// Basic usage with the generic API:
//
//	import "github.com/agilira/minimap"
//
//	type Session struct {
//	    UserID int
//	    Token  string
//	}
//
//	func main() {
//	    m := minimap.NewGenericMap[string, Session](minimap.Config{
//	        BucketCount: 128,
//	    })
//	    defer m.Close()
//
//	    m.Set("sess:abc", Session{UserID: 42, Token: "t"}, time.Minute)
//
//	    if sess, found := m.Get("sess:abc"); found {
//	        fmt.Println(sess.UserID)
//	    }
//	}
//
// The untyped API mirrors the generic one and is what the generic wrapper
// delegates to:
//
//	m := minimap.NewMap(minimap.Config{BucketCount: 64})
//	m.Set("key", "value", minimap.NoTTL)
//	value, found := m.Get("key")
//
// # TTL Semantics
//
// Set and SetMany take a ttl argument with three meanings:
//   - ttl > 0: the entry expires after ttl
//   - minimap.DefaultTTL (0): use Config.DefaultTTL (itself 0 by default,
//     meaning no expiration)
//   - minimap.NoTTL: never expire, even when a config default is set
//
// Updating an existing key replaces its value only. The entry's stored
// expiration is deliberately left untouched, so the TTL clock started by
// the first insert keeps running:
//
//	m.Set("k", "v1", time.Second) // expires one second from now
//	m.Set("k", "v2", minimap.NoTTL)
//	// "k" now holds "v2" but still expires one second after the first Set
//
// An expired entry is reported absent by Get and Has, still counted by Len,
// and still retrievable by Remove. Expire performs one full sweep over all
// buckets and physically removes every expired entry, returning the count:
//
//	m.Set("k", "v", time.Millisecond)
//	time.Sleep(2 * time.Millisecond)
//	_, found := m.Get("k") // found == false (soft-expired)
//	n := m.Len()           // n == 1 (still resident)
//	removed := m.Expire()  // removed == 1
//	n = m.Len()            // n == 0
//
// # Concurrency Model
//
// Every public operation acquires the map's single exclusive lock for its
// full duration, so all operations across all handles observe one total
// order. There is no per-bucket locking and no lock-free read path; the
// design trades scalability for a store simple enough to audit completely.
//
// Clone returns a new handle to the same storage. Handles are cheap, share
// the lock, and never duplicate entries:
//
//	shared := m.Clone()
//	go worker(shared) // writes through shared are visible through m
//
// A goroutine that dies while holding the lock (a panic escaping a caller's
// value method, for instance) leaves the map permanently wedged for every
// handle. Treat that as a process-fatal condition; it is not surfaced as an
// error value.
//
// # Error Handling
//
// All operations are total over their domain: missing keys, expired keys,
// and empty maps produce "not found" results, never errors. The single
// failing operation is SetMany, which returns a MINIMAP_LENGTH_MISMATCH
// coded error (go-errors) when the key and value slices differ in length.
// The check runs before the lock is taken, so the map is never partially
// mutated:
//
//	err := m.SetMany([]string{"a", "b"}, []interface{}{"1"}, minimap.NoTTL)
//	if minimap.IsLengthMismatch(err) {
//	    ctx := minimap.GetErrorContext(err) // {"keys": 2, "values": 1}
//	}
//
// # Hot Reload
//
// HotConfig watches a configuration file through Argus and pushes
// default_ttl changes into a running map. Bucket count is fixed at
// construction, so bucket_count changes are only logged:
//
//	hc, err := minimap.NewHotConfig(m, minimap.HotConfigOptions{
//	    ConfigPath: "/etc/myapp/minimap.yaml",
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer hc.Stop()
//
// # Observability
//
// Stats exposes atomic hit/miss/set/remove/expiration counters. For
// latency histograms and counter export, the separate
// github.com/agilira/minimap/otel module implements MetricsCollector over
// OpenTelemetry and plugs into Config:
//
//	collector, _ := minimapotel.NewOTelMetricsCollector(provider)
//	m := minimap.NewMap(minimap.Config{MetricsCollector: collector})
//
// # Design Notes
//
// Bucket routing uses FNV-1a reduced modulo the bucket count. The only
// property promised is in-process determinism: a key routes to the same
// bucket for the lifetime of one map instance. Collisions are resolved by
// the bucket's linear scan, so correctness never depends on distribution,
// only scan cost does.
//
// Expire collects expired keys under the lock, then releases it and removes
// each key through Remove, which re-acquires the lock. That ordering is a
// rule, not an accident: holding the lock across the re-entrant removals
// would deadlock.
//
// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira library
// SPDX-License-Identifier: MPL-2.0
package minimap
