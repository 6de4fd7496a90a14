// Copyright 2026 The Keyforge Authors
//
// https://github.com/lockwell/keyforge
//
// Licensed under the MIT License. See LICENSE file in the project root for
// full license information.

package pgp_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lockwell/keyforge/internal/pgp"
	"github.com/lockwell/keyforge/internal/seed"
)

func TestGenerateIsDeterministic(t *testing.T) {
	master, err := seed.DeriveMaster("correct horse battery staple mountain river", uuid.MustParse("00000000-0000-7000-8000-000000000001"))
	require.NoError(t, err)

	createdAt := time.Unix(1700000000, 0).UTC()

	id1, err := pgp.Generate(master, "alice", "alice@example.org", createdAt)
	require.NoError(t, err)
	id2, err := pgp.Generate(master, "alice", "alice@example.org", createdAt)
	require.NoError(t, err)

	assert.Equal(t, pgp.Fingerprint(id1), pgp.Fingerprint(id2))
}

func TestArmorRoundTripsText(t *testing.T) {
	master, err := seed.DeriveMaster("correct horse battery staple mountain river", uuid.MustParse("00000000-0000-7000-8000-000000000001"))
	require.NoError(t, err)

	id, err := pgp.Generate(master, "alice", "alice@example.org", time.Unix(1700000000, 0).UTC())
	require.NoError(t, err)

	pub, err := pgp.ArmorPublicKey(id)
	require.NoError(t, err)
	assert.Contains(t, pub, "BEGIN PGP PUBLIC KEY BLOCK")

	priv, err := pgp.ArmorPrivateKey(id)
	require.NoError(t, err)
	assert.Contains(t, priv, "BEGIN PGP PRIVATE KEY BLOCK")
}
