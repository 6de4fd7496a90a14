// Copyright 2026 The Keyforge Authors
//
// https://github.com/lockwell/keyforge
//
// Licensed under the MIT License. See LICENSE file in the project root for
// full license information.

package keypair

import (
	"crypto/ecdsa"
	"crypto/elliptic"
	"fmt"

	"github.com/lockwell/keyforge/internal/seed"
)

// generateECDSAP256 seeds an HMAC-DRBG from the child seed and hands it to
// ecdsa.GenerateKey, which rejection-samples the private scalar from the
// DRBG's byte stream. Because the stream is a pure function of the seed,
// so is the resulting keypair. Used for PIV slots that require a
// hardware-friendly NIST curve rather than Ed25519.
func generateECDSAP256(s seed.Child) (Keypair, error) {
	var drbg *hmacDRBG

	err := seed.WithChild(s, func(raw []byte) error {
		drbg = newHMACDRBG(raw)
		return nil
	})
	if err != nil {
		return Keypair{}, err
	}

	priv, err := ecdsa.GenerateKey(elliptic.P256(), drbg)
	if err != nil {
		return Keypair{}, fmt.Errorf("%w: %v", ErrKeyGenerationRejected, err)
	}

	return Keypair{
		Algorithm: ECDSAP256,
		Public:    &priv.PublicKey,
		Private:   priv,
	}, nil
}
