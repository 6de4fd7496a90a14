// Copyright 2026 The Keyforge Authors
//
// https://github.com/lockwell/keyforge
//
// Licensed under the MIT License. See LICENSE file in the project root for
// full license information.

package ports

import "github.com/nats-io/nkeys"

// NatsSigner is the optional NATS-signer port, used when JWT encoding
// and signing is delegated outside the in-core natsid package (for
// example, to keep a signing key inside a remote custodian process).
type NatsSigner interface {
	EncodeAndSignJWT(claims []byte, signer nkeys.KeyPair) (string, error)
}
