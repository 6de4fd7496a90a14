// Copyright 2026 The Keyforge Authors
//
// https://github.com/lockwell/keyforge
//
// Licensed under the MIT License. See LICENSE file in the project root for
// full license information.

package pki_test

import (
	"crypto/x509"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lockwell/keyforge/internal/pki"
	"github.com/lockwell/keyforge/internal/seed"
)

func testMaster(t *testing.T) seed.Master {
	t.Helper()
	m, err := seed.DeriveMaster("correct horse battery staple mountain river", uuid.MustParse("00000000-0000-7000-8000-000000000001"))
	require.NoError(t, err)
	return m
}

func TestGenerateRootCAIsDeterministic(t *testing.T) {
	master := testMaster(t)
	params := pki.RootParams{
		Subject:   pki.Subject{CommonName: "ACME Root CA", Organization: "ACME", Country: "US"},
		NotBefore: time.Unix(1700000000, 0).UTC(),
	}

	root1, err := pki.GenerateRootCA(master, params)
	require.NoError(t, err)
	root2, err := pki.GenerateRootCA(master, params)
	require.NoError(t, err)

	assert.Equal(t, root1.Certificate.Raw, root2.Certificate.Raw)
	assert.True(t, root1.Certificate.IsCA)
	assert.GreaterOrEqual(t, root1.Certificate.MaxPathLen, 1)
}

func TestIntermediatePathlenIsZero(t *testing.T) {
	master := testMaster(t)
	root, err := pki.GenerateRootCA(master, pki.RootParams{
		Subject: pki.Subject{CommonName: "ACME Root CA"},
	})
	require.NoError(t, err)

	inter, err := pki.GenerateIntermediateCA(master, "Engineering", root, pki.IntermediateParams{}, 0)
	require.NoError(t, err)

	assert.True(t, inter.Certificate.IsCA)
	assert.Equal(t, 0, inter.Certificate.MaxPathLen)
	assert.True(t, inter.Certificate.MaxPathLenZero)
}

func TestIntermediateCannotSignSubIntermediate(t *testing.T) {
	master := testMaster(t)
	root, err := pki.GenerateRootCA(master, pki.RootParams{
		Subject: pki.Subject{CommonName: "ACME Root CA"},
	})
	require.NoError(t, err)

	inter, err := pki.GenerateIntermediateCA(master, "Engineering", root, pki.IntermediateParams{}, 0)
	require.NoError(t, err)

	_, err = pki.GenerateIntermediateCA(master, "Sub-Engineering", inter, pki.IntermediateParams{}, 1)
	require.ErrorIs(t, err, pki.ErrPathlenViolation)
}

func TestServerCertChainVerifies(t *testing.T) {
	master := testMaster(t)
	root, err := pki.GenerateRootCA(master, pki.RootParams{
		Subject: pki.Subject{CommonName: "ACME Root CA"},
	})
	require.NoError(t, err)

	inter, err := pki.GenerateIntermediateCA(master, "Engineering", root, pki.IntermediateParams{}, 0)
	require.NoError(t, err)

	leaf, err := pki.GenerateServerCert(master, "api.internal", []string{"api.internal", "10.0.0.7"}, inter, pki.ServerParams{}, 0)
	require.NoError(t, err)

	at := leaf.Certificate.NotBefore.Add(time.Hour)
	err = pki.VerifyChain(leaf.Certificate, []*x509.Certificate{inter.Certificate}, root.Certificate, at)
	assert.NoError(t, err)
}

func TestVerifyChainRejectsExpired(t *testing.T) {
	master := testMaster(t)
	root, err := pki.GenerateRootCA(master, pki.RootParams{
		Subject: pki.Subject{CommonName: "ACME Root CA"},
	})
	require.NoError(t, err)

	inter, err := pki.GenerateIntermediateCA(master, "Engineering", root, pki.IntermediateParams{}, 0)
	require.NoError(t, err)

	leaf, err := pki.GenerateServerCert(master, "api.internal", []string{"api.internal"}, inter, pki.ServerParams{}, 0)
	require.NoError(t, err)

	farFuture := leaf.Certificate.NotAfter.Add(24 * time.Hour)
	err = pki.VerifyChain(leaf.Certificate, []*x509.Certificate{inter.Certificate}, root.Certificate, farFuture)
	require.Error(t, err)
	assert.ErrorIs(t, err, pki.ErrInvalidChain)
}

func TestLabelsDeriveConsistently(t *testing.T) {
	assert.Equal(t, "intermediate-engineering", pki.IntermediateLabel("Engineering"))
	assert.Equal(t, "intermediate-engineering", pki.IntermediateLabel("  engineering  "))
	assert.Equal(t, "server-api.internal", pki.ServerLabel("api.internal"))
}
