// Copyright 2026 The Keyforge Authors
//
// https://github.com/lockwell/keyforge
//
// Licensed under the MIT License. See LICENSE file in the project root for
// full license information.

package natsid

import (
	"fmt"

	"github.com/nats-io/nkeys"

	"github.com/lockwell/keyforge/internal/seed"
)

// Tier identifies a NATS identity's position in the Operator/Account/User
// hierarchy.
type Tier string

// Supported tiers.
const (
	TierOperator Tier = "operator"
	TierAccount  Tier = "account"
	TierUser     Tier = "user"
)

func prefixFor(tier Tier) nkeys.PrefixByte {
	switch tier {
	case TierOperator:
		return nkeys.PrefixByteOperator
	case TierAccount:
		return nkeys.PrefixByteAccount
	default:
		return nkeys.PrefixByteUser
	}
}

// Identity bundles a generated NKey pair with its tier, name, and
// eventually the signed JWT built on top of it.
type Identity struct {
	Tier      Tier
	Name      string
	Label     string
	KeyPair   nkeys.KeyPair
	PublicKey string
	JWT       string
}

// newKeyPair derives an nkeys.KeyPair for the given tier directly from a
// label-derived 32-byte child seed, so that the same (master, label) pair
// always yields the identical NKey.
func newKeyPair(master seed.Master, label string, tier Tier) (nkeys.KeyPair, string, error) {
	childSeed, err := seed.DeriveChild(master, label)
	if err != nil {
		return nil, "", fmt.Errorf("natsid: deriving seed: %w", err)
	}

	var kp nkeys.KeyPair
	err = seed.WithChild(childSeed, func(raw []byte) error {
		var genErr error
		kp, genErr = nkeys.FromRawSeed(prefixFor(tier), raw)
		return genErr
	})
	if err != nil {
		return nil, "", fmt.Errorf("natsid: creating nkey: %w", err)
	}

	pub, err := kp.PublicKey()
	if err != nil {
		return nil, "", fmt.Errorf("%w: %v", ErrSignatureFailure, err)
	}

	return kp, pub, nil
}

// EncodedSeed returns the nkey-encoded seed text (the "SO"/"SA"/"SU"
// prefixed form) for id's keypair.
func (id Identity) EncodedSeed() (string, error) {
	seedBytes, err := id.KeyPair.Seed()
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrSignatureFailure, err)
	}
	return string(seedBytes), nil
}
