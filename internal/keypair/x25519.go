// Copyright 2026 The Keyforge Authors
//
// https://github.com/lockwell/keyforge
//
// Licensed under the MIT License. See LICENSE file in the project root for
// full license information.

package keypair

import (
	"github.com/lockwell/keyforge/internal/seed"
	"golang.org/x/crypto/curve25519"
)

// X25519Key holds one half of an X25519 key-agreement pair as raw bytes.
type X25519Key [32]byte

// generateX25519 treats the 32-byte child seed as the X25519 private
// scalar (clamping is applied by curve25519.X25519 itself on use) and
// derives the corresponding public point via scalar multiplication with
// the curve's base point, exactly the construction used for PGP's
// Curve25519 encryption subkeys.
func generateX25519(s seed.Child) (Keypair, error) {
	var priv X25519Key

	err := seed.WithChild(s, func(raw []byte) error {
		copy(priv[:], raw)
		return nil
	})
	if err != nil {
		return Keypair{}, err
	}

	pubBytes, err := curve25519.X25519(priv[:], curve25519.Basepoint)
	if err != nil {
		return Keypair{}, err
	}

	var pub X25519Key
	copy(pub[:], pubBytes)

	return Keypair{
		Algorithm: X25519,
		Public:    pub,
		Private:   priv,
	}, nil
}
