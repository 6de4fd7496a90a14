// Copyright 2026 The Keyforge Authors
//
// https://github.com/lockwell/keyforge
//
// Licensed under the MIT License. See LICENSE file in the project root for
// full license information.

package keypair

import (
	"crypto"
	"errors"
	"fmt"

	"github.com/lockwell/keyforge/internal/seed"
)

// Algorithm identifies a supported key algorithm.
type Algorithm string

// Supported algorithms. The Algorithm value is part of Cache's key and
// appears in error messages; no event payload carries it.
const (
	Ed25519   Algorithm = "ed25519"
	X25519    Algorithm = "x25519"
	ECDSAP256 Algorithm = "ecdsa-p256"
	RSA2048   Algorithm = "rsa-2048"
	RSA3072   Algorithm = "rsa-3072"
	RSA4096   Algorithm = "rsa-4096"
)

// ErrUnsupportedAlgorithm indicates an Algorithm value this package does
// not implement.
var ErrUnsupportedAlgorithm = errors.New("keypair: unsupported algorithm")

// ErrKeyGenerationRejected indicates a deterministic key generation
// attempt exhausted its bounded retry budget, e.g. RSA rejection sampling
// failing to find suitable primes from the seeded DRBG stream.
var ErrKeyGenerationRejected = errors.New("keypair: key generation rejected after bounded retries")

// Keypair is the algorithm-tagged result of generating from a seed. Public
// and Private are the concrete stdlib (or golang.org/x/crypto) types for
// the chosen Algorithm:
//
//	Ed25519    -> ed25519.PublicKey / ed25519.PrivateKey
//	X25519     -> X25519Key / X25519Key
//	ECDSAP256  -> *ecdsa.PublicKey / *ecdsa.PrivateKey
//	RSA*       -> *rsa.PublicKey / *rsa.PrivateKey
type Keypair struct {
	Algorithm Algorithm
	Public    crypto.PublicKey
	Private   crypto.PrivateKey
}

// Signer adapts Keypair.Private to crypto.Signer when the algorithm
// supports signing (Ed25519, ECDSA P-256, RSA). X25519 keys are
// key-agreement only and do not satisfy this.
func (k Keypair) Signer() (crypto.Signer, error) {
	signer, ok := k.Private.(crypto.Signer)
	if !ok {
		return nil, fmt.Errorf("keypair: algorithm %s does not support signing", k.Algorithm)
	}
	return signer, nil
}

// Generate is a pure function mapping (seed, algo) to a Keypair. For
// Ed25519 and X25519 the output depends only on s; for ECDSA and RSA it
// depends only on s because key generation is driven by a DRBG seeded
// deterministically from s.
func Generate(s seed.Child, algo Algorithm) (Keypair, error) {
	switch algo {
	case Ed25519:
		return generateEd25519(s)
	case X25519:
		return generateX25519(s)
	case ECDSAP256:
		return generateECDSAP256(s)
	case RSA2048:
		return generateRSA(s, 2048)
	case RSA3072:
		return generateRSA(s, 3072)
	case RSA4096:
		return generateRSA(s, 4096)
	default:
		return Keypair{}, fmt.Errorf("%w: %s", ErrUnsupportedAlgorithm, algo)
	}
}
