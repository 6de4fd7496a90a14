// Copyright 2026 The Keyforge Authors
//
// https://github.com/lockwell/keyforge
//
// Licensed under the MIT License. See LICENSE file in the project root for
// full license information.

package pgp

import (
	"bytes"
	"fmt"
	"time"

	"github.com/ProtonMail/go-crypto/openpgp"
	"github.com/ProtonMail/go-crypto/openpgp/armor"
	"github.com/ProtonMail/go-crypto/openpgp/packet"

	"github.com/lockwell/keyforge/internal/keypair"
	"github.com/lockwell/keyforge/internal/seed"
)

// Identity is the generated OpenPGP key material for one person: an
// EdDSA primary signing key plus a Curve25519 encryption subkey, bundled
// in a single openpgp.Entity.
type Identity struct {
	Entity *openpgp.Entity
}

// Generate derives an OpenPGP identity for person from the
// "pgp-<person>" labeled child seed. The entity's primary key uses EdDSA
// over Curve25519 for signing; its single subkey uses Curve25519
// (X25519) for encryption, matching the module's Ed25519/X25519 pairing
// used everywhere else. createdAt is accepted explicitly rather than
// read from the wall clock so that two runs with identical inputs embed
// the identical key-creation timestamp and therefore produce
// byte-identical key material and fingerprints.
func Generate(master seed.Master, person, email string, createdAt time.Time) (Identity, error) {
	label := "pgp-" + person
	childSeed, err := seed.DeriveChild(master, label)
	if err != nil {
		return Identity{}, fmt.Errorf("pgp: deriving seed: %w", err)
	}

	var drbgSeed []byte
	err = seed.WithChild(childSeed, func(raw []byte) error {
		drbgSeed = append([]byte(nil), raw...)
		return nil
	})
	if err != nil {
		return Identity{}, err
	}
	defer func() {
		for i := range drbgSeed {
			drbgSeed[i] = 0
		}
	}()

	config := &packet.Config{
		Algorithm: packet.PubKeyAlgoEdDSA,
		Curve:     packet.Curve25519,
		Rand:      keypair.NewDeterministicReader(drbgSeed),
		Time:      func() time.Time { return createdAt },
	}

	entity, err := openpgp.NewEntity(person, "", email, config)
	if err != nil {
		return Identity{}, fmt.Errorf("pgp: generating entity: %w", err)
	}

	return Identity{Entity: entity}, nil
}

// ArmorPublicKey renders the identity's public key (primary plus subkey)
// as ASCII-armored OpenPGP text.
func ArmorPublicKey(id Identity) (string, error) {
	var buf bytes.Buffer
	w, err := armor.Encode(&buf, openpgp.PublicKeyType, nil)
	if err != nil {
		return "", fmt.Errorf("pgp: opening armor writer: %w", err)
	}
	if err := id.Entity.Serialize(w); err != nil {
		return "", fmt.Errorf("pgp: serializing public key: %w", err)
	}
	if err := w.Close(); err != nil {
		return "", fmt.Errorf("pgp: closing armor writer: %w", err)
	}
	return buf.String(), nil
}

// ArmorPrivateKey renders the identity's private key material as
// ASCII-armored OpenPGP text.
func ArmorPrivateKey(id Identity) (string, error) {
	var buf bytes.Buffer
	w, err := armor.Encode(&buf, openpgp.PrivateKeyType, nil)
	if err != nil {
		return "", fmt.Errorf("pgp: opening armor writer: %w", err)
	}
	if err := id.Entity.SerializePrivate(w, nil); err != nil {
		return "", fmt.Errorf("pgp: serializing private key: %w", err)
	}
	if err := w.Close(); err != nil {
		return "", fmt.Errorf("pgp: closing armor writer: %w", err)
	}
	return buf.String(), nil
}

// Fingerprint returns the hex-encoded primary key fingerprint.
func Fingerprint(id Identity) string {
	return fmt.Sprintf("%X", id.Entity.PrimaryKey.Fingerprint)
}
