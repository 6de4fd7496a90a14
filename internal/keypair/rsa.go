// Copyright 2026 The Keyforge Authors
//
// https://github.com/lockwell/keyforge
//
// Licensed under the MIT License. See LICENSE file in the project root for
// full license information.

package keypair

import (
	"crypto/rsa"
	"fmt"

	"github.com/lockwell/keyforge/internal/seed"
)

// maxRSARetries bounds the number of times we reinstantiate the DRBG with
// a re-mixed seed before giving up. rsa.GenerateKey over a deterministic
// reader occasionally needs more entropy than a single DRBG pass offers
// for larger key sizes; retrying with a domain-separated re-seed keeps
// generation a pure function of the original seed while still bounding
// worst-case attempts.
const maxRSARetries = 8

// generateRSA seeds an HMAC-DRBG from the child seed and hands it to
// rsa.GenerateKey, which rejection-samples primes from the DRBG's byte
// stream. Deterministic RSA generation is well documented as slow and
// memory-heavy compared to Ed25519 or ECDSA, but is retained for
// compatibility with PIV firmware that has not added Ed25519 support.
func generateRSA(s seed.Child, bits int) (Keypair, error) {
	var raw []byte
	err := seed.WithChild(s, func(b []byte) error {
		raw = append([]byte(nil), b...)
		return nil
	})
	if err != nil {
		return Keypair{}, err
	}
	defer func() {
		for i := range raw {
			raw[i] = 0
		}
	}()

	var lastErr error
	for attempt := 0; attempt < maxRSARetries; attempt++ {
		drbg := newHMACDRBG(append(raw, byte(attempt)))

		priv, genErr := rsa.GenerateKey(drbg, bits)
		if genErr == nil {
			return Keypair{
				Algorithm: rsaAlgorithmFor(bits),
				Public:    &priv.PublicKey,
				Private:   priv,
			}, nil
		}
		lastErr = genErr
	}

	return Keypair{}, fmt.Errorf("%w: %v", ErrKeyGenerationRejected, lastErr)
}

func rsaAlgorithmFor(bits int) Algorithm {
	switch bits {
	case 2048:
		return RSA2048
	case 3072:
		return RSA3072
	case 4096:
		return RSA4096
	default:
		return Algorithm(fmt.Sprintf("rsa-%d", bits))
	}
}
