// Copyright 2026 The Keyforge Authors
//
// https://github.com/lockwell/keyforge
//
// Licensed under the MIT License. See LICENSE file in the project root for
// full license information.

package natsid

import (
	"fmt"
	"time"

	"github.com/nats-io/jwt/v2"

	"github.com/lockwell/keyforge/internal/seed"
	"github.com/lockwell/keyforge/internal/textutils"
)

// Limits bounds connection, data, and subscription usage for an Account
// or a User. A nil *Limits leaves NATS's own defaults in effect.
type Limits struct {
	// Conn is the maximum number of concurrent client connections, or -1
	// for unlimited. It is applied to Accounts only; GenerateUser ignores it.
	Conn int64
	// Data is the maximum number of bytes a connection may send, or -1
	// for unlimited.
	Data int64
	// Subs is the maximum number of subscriptions, or -1 for unlimited.
	Subs int64
}

// AccountLabel returns the seed label for the Account identity belonging
// to the named organizational unit.
func AccountLabel(unitName string) string {
	return "nats-account-" + textutils.NormalizeLabel(unitName)
}

// GenerateAccount derives the Account NKey for unitName and produces an
// Account JWT signed by the Operator's signing key.
func GenerateAccount(master seed.Master, unitName string, operator Identity, issuedAt time.Time, limits *Limits) (Identity, error) {
	if operator.Tier != TierOperator {
		return Identity{}, fmt.Errorf("natsid: account requires an operator parent, got %s", operator.Tier)
	}

	label := AccountLabel(unitName)
	kp, pub, err := newKeyPair(master, label, TierAccount)
	if err != nil {
		return Identity{}, err
	}

	claims := jwt.NewAccountClaims(pub)
	claims.Name = unitName
	claims.Type = jwt.AccountClaim
	claims.Version = jwtLibVersion
	if limits != nil {
		claims.Limits.Conn = limits.Conn
		claims.Limits.Data = limits.Data
		claims.Limits.Subs = limits.Subs
	}

	token, err := encodeJWT(claims, operator.KeyPair, label, operator.PublicKey, issuedAt)
	if err != nil {
		return Identity{}, err
	}

	return Identity{
		Tier:      TierAccount,
		Name:      unitName,
		Label:     label,
		KeyPair:   kp,
		PublicKey: pub,
		JWT:       token,
	}, nil
}
