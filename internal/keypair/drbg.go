// Copyright 2026 The Keyforge Authors
//
// https://github.com/lockwell/keyforge
//
// Licensed under the MIT License. See LICENSE file in the project root for
// full license information.

package keypair

import (
	"crypto/hmac"
	"crypto/sha256"
	"hash"
	"io"
)

// hmacDRBG is a minimal HMAC-SHA256 deterministic random bit generator
// modeled on NIST SP 800-90A's HMAC_DRBG construction (instantiate,
// reseed-free generate with update-on-every-call). It exists so that
// algorithms whose stdlib constructors only accept an io.Reader for
// randomness (ECDSA, RSA) can be driven by a byte stream that is a pure
// function of a 32-byte seed, making key generation reproducible.
//
// This is not a general-purpose CSPRNG implementation: it omits reseed
// counters and prediction-resistance reseeding because every instance is
// single-use, discarded after generating exactly one keypair.
type hmacDRBG struct {
	k []byte
	v []byte
	h func() hash.Hash
}

// newHMACDRBG instantiates a DRBG from seed material, following the
// HMAC_DRBG instantiate algorithm with an empty nonce and empty
// personalization string (the caller-supplied seed already carries 256
// bits of domain-separated entropy from HKDF).
func newHMACDRBG(seedMaterial []byte) *hmacDRBG {
	d := &hmacDRBG{
		k: make([]byte, sha256.Size),
		v: make([]byte, sha256.Size),
		h: sha256.New,
	}
	for i := range d.v {
		d.v[i] = 0x01
	}

	d.update(seedMaterial)
	return d
}

func (d *hmacDRBG) hmac(key, data []byte) []byte {
	mac := hmac.New(d.h, key)
	mac.Write(data)
	return mac.Sum(nil)
}

func (d *hmacDRBG) update(providedData []byte) {
	d.k = d.hmac(d.k, append(append([]byte{}, d.v...), append([]byte{0x00}, providedData...)...))
	d.v = d.hmac(d.k, d.v)

	if len(providedData) == 0 {
		return
	}

	d.k = d.hmac(d.k, append(append([]byte{}, d.v...), append([]byte{0x01}, providedData...)...))
	d.v = d.hmac(d.k, d.v)
}

// Read fills p with DRBG output, implementing io.Reader so instances can
// be handed directly to ecdsa.GenerateKey and rsa.GenerateKey.
func (d *hmacDRBG) Read(p []byte) (int, error) {
	out := make([]byte, 0, len(p))
	for len(out) < len(p) {
		d.v = d.hmac(d.k, d.v)
		out = append(out, d.v...)
	}
	copy(p, out[:len(p)])
	d.update(nil)
	return len(p), nil
}

// NewDeterministicReader exposes the HMAC-DRBG as an io.Reader seeded from
// arbitrary material, for packages outside keypair (e.g. pgp) that need to
// drive a third-party library's key generator deterministically rather
// than constructing a crypto.PrivateKey themselves.
func NewDeterministicReader(seedMaterial []byte) io.Reader {
	return newHMACDRBG(seedMaterial)
}
