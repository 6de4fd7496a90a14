// Copyright 2026 The Keyforge Authors
//
// https://github.com/lockwell/keyforge
//
// Licensed under the MIT License. See LICENSE file in the project root for
// full license information.

package keypair

import (
	"sync"

	"github.com/lockwell/keyforge/internal/seed"
)

// Cache memoizes Generate results for the lifetime of a session, keyed by
// the raw seed bytes and algorithm. Deterministic RSA generation in
// particular is slow enough that re-deriving the same (seed, algo) pair
// more than once per run (for example when a command handler replays
// validation before emitting an event) would be wasteful; Generate is
// still a pure function, so caching its result is always safe.
type Cache struct {
	mu    sync.Mutex
	items map[cacheKey]Keypair
}

type cacheKey struct {
	algo Algorithm
	seed [seed.Size]byte
}

// NewCache constructs an empty keypair Cache.
func NewCache() *Cache {
	return &Cache{items: make(map[cacheKey]Keypair)}
}

// Generate returns the cached Keypair for (s, algo) if present, otherwise
// derives it via the package-level Generate and stores the result.
func (c *Cache) Generate(s seed.Child, algo Algorithm) (Keypair, error) {
	var key cacheKey
	key.algo = algo
	copy(key.seed[:], s.Bytes())

	c.mu.Lock()
	if kp, ok := c.items[key]; ok {
		c.mu.Unlock()
		return kp, nil
	}
	c.mu.Unlock()

	kp, err := Generate(s, algo)
	if err != nil {
		return Keypair{}, err
	}

	c.mu.Lock()
	c.items[key] = kp
	c.mu.Unlock()

	return kp, nil
}
