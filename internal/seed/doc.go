// Copyright 2026 The Keyforge Authors
//
// https://github.com/lockwell/keyforge
//
// Licensed under the MIT License. See LICENSE file in the project root for
// full license information.

// Package seed implements deterministic key-material derivation: a human
// passphrase plus an organization identifier are folded through Argon2id
// into a 32-byte master seed, from which an arbitrary number of
// label-separated child seeds are derived via HKDF-SHA256.
//
// Every derivation in this package is a pure function of its inputs. Given
// the same passphrase, organization identifier, and label, two independent
// processes on two different hosts produce byte-identical output. This is
// the foundation of the disaster-recovery story: the only durable secret a
// human needs to retain is the passphrase.
package seed
