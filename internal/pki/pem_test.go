// Copyright 2026 The Keyforge Authors
//
// https://github.com/lockwell/keyforge
//
// Licensed under the MIT License. See LICENSE file in the project root for
// full license information.

package pki_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lockwell/keyforge/internal/pki"
)

func TestPEMRoundTrip(t *testing.T) {
	master := testMaster(t)
	root, err := pki.GenerateRootCA(master, pki.RootParams{
		Subject: pki.Subject{CommonName: "ACME Root CA"},
	})
	require.NoError(t, err)

	encoded := pki.EncodeCertPEM(root.Certificate)
	decoded, err := pki.ParseCertPEM(encoded)
	require.NoError(t, err)

	assert.Equal(t, root.Certificate.Raw, decoded.Raw)
}

func TestFingerprintIsStable(t *testing.T) {
	master := testMaster(t)
	root, err := pki.GenerateRootCA(master, pki.RootParams{
		Subject: pki.Subject{CommonName: "ACME Root CA"},
	})
	require.NoError(t, err)

	fp1 := pki.Fingerprint(root.Certificate)
	fp2 := pki.Fingerprint(root.Certificate)
	assert.Equal(t, fp1, fp2)
	assert.Contains(t, fp1, ":")
}
