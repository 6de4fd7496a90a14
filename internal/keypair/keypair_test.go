// Copyright 2026 The Keyforge Authors
//
// https://github.com/lockwell/keyforge
//
// Licensed under the MIT License. See LICENSE file in the project root for
// full license information.

package keypair_test

import (
	"crypto/ecdsa"
	"crypto/ed25519"
	"crypto/rsa"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lockwell/keyforge/internal/keypair"
	"github.com/lockwell/keyforge/internal/seed"
)

func childSeed(t *testing.T, label string) seed.Child {
	t.Helper()
	master, err := seed.DeriveMaster("correct horse battery staple mountain river", uuid.MustParse("00000000-0000-7000-8000-000000000001"))
	require.NoError(t, err)
	child, err := seed.DeriveChild(master, label)
	require.NoError(t, err)
	return child
}

func TestGenerateEd25519Deterministic(t *testing.T) {
	s := childSeed(t, "root-ca")

	kp1, err := keypair.Generate(s, keypair.Ed25519)
	require.NoError(t, err)
	kp2, err := keypair.Generate(s, keypair.Ed25519)
	require.NoError(t, err)

	pub1 := kp1.Public.(ed25519.PublicKey)
	pub2 := kp2.Public.(ed25519.PublicKey)
	assert.Equal(t, pub1, pub2)
}

func TestGenerateX25519Deterministic(t *testing.T) {
	s := childSeed(t, "pgp-alice")

	kp1, err := keypair.Generate(s, keypair.X25519)
	require.NoError(t, err)
	kp2, err := keypair.Generate(s, keypair.X25519)
	require.NoError(t, err)

	assert.Equal(t, kp1.Public, kp2.Public)
}

func TestGenerateECDSADeterministic(t *testing.T) {
	s := childSeed(t, "piv-alice")

	kp1, err := keypair.Generate(s, keypair.ECDSAP256)
	require.NoError(t, err)
	kp2, err := keypair.Generate(s, keypair.ECDSAP256)
	require.NoError(t, err)

	pub1 := kp1.Public.(*ecdsa.PublicKey)
	pub2 := kp2.Public.(*ecdsa.PublicKey)
	assert.True(t, pub1.Equal(pub2))
}

func TestGenerateRSADeterministic(t *testing.T) {
	s := childSeed(t, "piv-legacy-alice")

	kp1, err := keypair.Generate(s, keypair.RSA2048)
	require.NoError(t, err)
	kp2, err := keypair.Generate(s, keypair.RSA2048)
	require.NoError(t, err)

	pub1 := kp1.Public.(*rsa.PublicKey)
	pub2 := kp2.Public.(*rsa.PublicKey)
	assert.True(t, pub1.Equal(pub2))
}

func TestGenerateUnsupportedAlgorithm(t *testing.T) {
	s := childSeed(t, "root-ca")
	_, err := keypair.Generate(s, keypair.Algorithm("unknown"))
	require.ErrorIs(t, err, keypair.ErrUnsupportedAlgorithm)
}

func TestSignerRejectsX25519(t *testing.T) {
	s := childSeed(t, "pgp-alice")
	kp, err := keypair.Generate(s, keypair.X25519)
	require.NoError(t, err)

	_, err = kp.Signer()
	assert.Error(t, err)
}

func TestCacheReturnsSameInstance(t *testing.T) {
	s := childSeed(t, "root-ca")
	cache := keypair.NewCache()

	kp1, err := cache.Generate(s, keypair.Ed25519)
	require.NoError(t, err)
	kp2, err := cache.Generate(s, keypair.Ed25519)
	require.NoError(t, err)

	assert.Equal(t, kp1.Public, kp2.Public)
}
