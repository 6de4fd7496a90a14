// Copyright 2026 The Keyforge Authors
//
// https://github.com/lockwell/keyforge
//
// Licensed under the MIT License. See LICENSE file in the project root for
// full license information.

package natsid

import (
	"time"

	"github.com/nats-io/jwt/v2"

	"github.com/lockwell/keyforge/internal/seed"
)

// OperatorLabel is the well-known seed label for the organization's
// Operator identity.
const OperatorLabel = "nats-operator"

// GenerateOperator derives the Operator NKey from the "nats-operator"
// labeled seed and produces a self-signed Operator JWT. Operators do not
// expire.
func GenerateOperator(master seed.Master, orgName string, issuedAt time.Time) (Identity, error) {
	kp, pub, err := newKeyPair(master, OperatorLabel, TierOperator)
	if err != nil {
		return Identity{}, err
	}

	claims := jwt.NewOperatorClaims(pub)
	claims.Name = orgName
	claims.Type = jwt.OperatorClaim
	claims.Version = jwtLibVersion

	token, err := encodeJWT(claims, kp, OperatorLabel, pub, issuedAt)
	if err != nil {
		return Identity{}, err
	}

	return Identity{
		Tier:      TierOperator,
		Name:      orgName,
		Label:     OperatorLabel,
		KeyPair:   kp,
		PublicKey: pub,
		JWT:       token,
	}, nil
}
