// Copyright 2026 The Keyforge Authors
//
// https://github.com/lockwell/keyforge
//
// Licensed under the MIT License. See LICENSE file in the project root for
// full license information.

// Package pgp generates per-person OpenPGP key material: an EdDSA
// (Ed25519) primary signing key with a Curve25519 (X25519) encryption
// subkey, built on github.com/ProtonMail/go-crypto/openpgp. Generation is
// made deterministic by driving the library's randomness source from a
// label-derived child seed instead of the system CSPRNG, and by taking the
// key creation timestamp from the caller-supplied createdAt instead of
// reading the clock.
package pgp
