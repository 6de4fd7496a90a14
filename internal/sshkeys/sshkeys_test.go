// Copyright 2026 The Keyforge Authors
//
// https://github.com/lockwell/keyforge
//
// Licensed under the MIT License. See LICENSE file in the project root for
// full license information.

package sshkeys_test

import (
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lockwell/keyforge/internal/keypair"
	"github.com/lockwell/keyforge/internal/seed"
	"github.com/lockwell/keyforge/internal/sshkeys"
)

func TestFormatOpenSSHRoundTripsAndIsStable(t *testing.T) {
	master, err := seed.DeriveMaster("correct horse battery staple mountain river", uuid.MustParse("00000000-0000-7000-8000-000000000001"))
	require.NoError(t, err)

	child, err := seed.DeriveChild(master, "ssh-alice")
	require.NoError(t, err)

	kp, err := keypair.Generate(child, keypair.Ed25519)
	require.NoError(t, err)

	pub1, priv1, err := sshkeys.FormatOpenSSH(kp, "alice@example.org")
	require.NoError(t, err)
	pub2, priv2, err := sshkeys.FormatOpenSSH(kp, "alice@example.org")
	require.NoError(t, err)

	assert.Equal(t, pub1, pub2)
	assert.Equal(t, priv1, priv2)
	assert.True(t, strings.HasPrefix(pub1, "ssh-ed25519 "))
	assert.Contains(t, pub1, "alice@example.org")
}

func TestFingerprintStable(t *testing.T) {
	master, err := seed.DeriveMaster("correct horse battery staple mountain river", uuid.MustParse("00000000-0000-7000-8000-000000000001"))
	require.NoError(t, err)

	child, err := seed.DeriveChild(master, "ssh-alice")
	require.NoError(t, err)

	kp, err := keypair.Generate(child, keypair.Ed25519)
	require.NoError(t, err)

	fp1, err := sshkeys.Fingerprint(kp)
	require.NoError(t, err)
	fp2, err := sshkeys.Fingerprint(kp)
	require.NoError(t, err)

	assert.Equal(t, fp1, fp2)
	assert.True(t, strings.HasPrefix(fp1, "SHA256:"))
}
