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

// Permissions restricts the subjects a User may publish or subscribe to.
// A nil *Permissions leaves the User unrestricted.
type Permissions struct {
	Publish   []string
	Subscribe []string
}

// UserLabel returns the seed label for the User identity belonging to
// personName: a person has exactly one NATS User NKey across the whole
// organization, reused under whichever Account JWT signs it. This is
// the label disaster recovery re-derives from (master seed, person
// name) alone, independent of which unit issued the most recent JWT.
func UserLabel(personName string) string {
	return "nats-user-" + textutils.NormalizeLabel(personName)
}

// GenerateUser derives the User NKey for personName and produces a User
// JWT signed by its owning Account's signing key.
func GenerateUser(master seed.Master, personName string, account Identity, issuedAt time.Time, limits *Limits, permissions *Permissions) (Identity, error) {
	if account.Tier != TierAccount {
		return Identity{}, fmt.Errorf("natsid: user requires an account parent, got %s", account.Tier)
	}

	label := UserLabel(personName)
	kp, pub, err := newKeyPair(master, label, TierUser)
	if err != nil {
		return Identity{}, err
	}

	claims := jwt.NewUserClaims(pub)
	claims.Name = personName
	claims.Type = jwt.UserClaim
	claims.Version = jwtLibVersion
	claims.IssuerAccount = account.PublicKey
	if limits != nil {
		claims.Limits.Data = limits.Data
		claims.Limits.Subs = limits.Subs
	}
	if permissions != nil {
		claims.Permissions.Pub.Allow = permissions.Publish
		claims.Permissions.Sub.Allow = permissions.Subscribe
	}

	token, err := encodeJWT(claims, account.KeyPair, label, account.PublicKey, issuedAt)
	if err != nil {
		return Identity{}, err
	}

	return Identity{
		Tier:      TierUser,
		Name:      personName,
		Label:     label,
		KeyPair:   kp,
		PublicKey: pub,
		JWT:       token,
	}, nil
}
