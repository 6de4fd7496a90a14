// Copyright 2026 The Keyforge Authors
//
// https://github.com/lockwell/keyforge
//
// Licensed under the MIT License. See LICENSE file in the project root for
// full license information.

package keypair

import (
	"crypto/ed25519"

	"github.com/lockwell/keyforge/internal/seed"
)

// generateEd25519 treats the 32-byte child seed directly as the Ed25519
// seed (RFC 8032 private scalar source); ed25519.NewKeyFromSeed is itself
// a pure function of that seed.
func generateEd25519(s seed.Child) (Keypair, error) {
	var priv ed25519.PrivateKey

	err := seed.WithChild(s, func(raw []byte) error {
		priv = ed25519.NewKeyFromSeed(raw)
		return nil
	})
	if err != nil {
		return Keypair{}, err
	}

	pub := priv.Public().(ed25519.PublicKey)

	return Keypair{
		Algorithm: Ed25519,
		Public:    pub,
		Private:   priv,
	}, nil
}
