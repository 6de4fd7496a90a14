// Copyright 2026 The Keyforge Authors
//
// https://github.com/lockwell/keyforge
//
// Licensed under the MIT License. See LICENSE file in the project root for
// full license information.

// Package keypair turns a 32-byte child seed into an algorithm-specific
// keypair. Every constructor in this package is a pure function of its
// seed: Ed25519 and X25519 consume the seed directly as their scalar,
// while ECDSA P-256 and RSA seed a deterministic HMAC-DRBG used in place of
// the system CSPRNG so that key generation remains reproducible.
package keypair
