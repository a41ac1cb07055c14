// Package minimap provides a small, fixed-shape, key-addressed associative
// store with per-entry TTL and explicit expiration sweeps.
//
// MiniMap routes every key into one of N buckets chosen at construction time
// and resolves collisions by linear scan, trading raw lookup speed for a
// predictable memory shape and a design simple enough to audit in one sitting.
//
// Example usage:
//
//	m := minimap.NewMap(minimap.Config{
//		BucketCount: 128,
//	})
//
//	m.Set("key", "value", time.Minute)
//	value, found := m.Get("key")
//
// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira fragment
// SPDX-License-Identifier: MPL-2.0

package minimap

import "time"

const (
	// Version of the MiniMap library
	Version = "v0.1.0-dev"

	// DefaultBucketCount is the default number of buckets when Config
	// does not specify one. More buckets mean shorter linear scans for
	// large key sets, at the cost of higher initial memory usage.
	DefaultBucketCount = 128
)

// TTL sentinels accepted by Set and SetMany.
const (
	// DefaultTTL defers to Config.DefaultTTL (which itself defaults to
	// no expiration).
	DefaultTTL time.Duration = 0

	// NoTTL stores the entry without expiration even when
	// Config.DefaultTTL is set.
	NoTTL time.Duration = -1
)
