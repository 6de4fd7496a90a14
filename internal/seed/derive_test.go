// Copyright 2026 The Keyforge Authors
//
// https://github.com/lockwell/keyforge
//
// Licensed under the MIT License. See LICENSE file in the project root for
// full license information.

package seed_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lockwell/keyforge/internal/seed"
)

var testPassphrase = "correct horse battery staple mountain river"
var testOrgID = uuid.MustParse("00000000-0000-7000-8000-000000000001")

func TestDeriveMasterIsDeterministic(t *testing.T) {
	m1, err := seed.DeriveMaster(testPassphrase, testOrgID)
	require.NoError(t, err)

	m2, err := seed.DeriveMaster(testPassphrase, testOrgID)
	require.NoError(t, err)

	assert.Equal(t, m1.Bytes(), m2.Bytes())
}

func TestDeriveMasterDiffersByOrg(t *testing.T) {
	otherOrg := uuid.MustParse("00000000-0000-7000-8000-000000000002")

	m1, err := seed.DeriveMaster(testPassphrase, testOrgID)
	require.NoError(t, err)

	m2, err := seed.DeriveMaster(testPassphrase, otherOrg)
	require.NoError(t, err)

	assert.NotEqual(t, m1.Bytes(), m2.Bytes())
}

func TestDeriveMasterRejectsWeakPassphrase(t *testing.T) {
	_, err := seed.DeriveMaster("111111111111", testOrgID)
	require.Error(t, err)
	assert.ErrorIs(t, err, seed.ErrPassphraseTooWeak)
}

func TestDeriveMasterRejectsShortPassphrase(t *testing.T) {
	_, err := seed.DeriveMaster("short", testOrgID)
	require.ErrorIs(t, err, seed.ErrPassphraseTooShort)
}

func TestDeriveChildIsDeterministic(t *testing.T) {
	master, err := seed.DeriveMaster(testPassphrase, testOrgID)
	require.NoError(t, err)

	c1, err := seed.DeriveChild(master, "root-ca")
	require.NoError(t, err)

	c2, err := seed.DeriveChild(master, "root-ca")
	require.NoError(t, err)

	assert.Equal(t, c1.Bytes(), c2.Bytes())
}

func TestDeriveChildDistinctLabelsDiffer(t *testing.T) {
	master, err := seed.DeriveMaster(testPassphrase, testOrgID)
	require.NoError(t, err)

	c1, err := seed.DeriveChild(master, "root-ca")
	require.NoError(t, err)

	c2, err := seed.DeriveChild(master, "intermediate-engineering")
	require.NoError(t, err)

	assert.NotEqual(t, c1.Bytes(), c2.Bytes())
}

func TestDeriveChildRejectsEmptyLabel(t *testing.T) {
	master, err := seed.DeriveMaster(testPassphrase, testOrgID)
	require.NoError(t, err)

	_, err = seed.DeriveChild(master, "")
	assert.Error(t, err)
}

func TestZeroizeIsIdempotent(t *testing.T) {
	master, err := seed.DeriveMaster(testPassphrase, testOrgID)
	require.NoError(t, err)

	master.Zeroize()
	master.Zeroize()

	assert.Equal(t, make([]byte, seed.Size), master.Bytes())
}

func TestSecretStringIsRedacted(t *testing.T) {
	master, err := seed.DeriveMaster(testPassphrase, testOrgID)
	require.NoError(t, err)

	assert.Equal(t, "<redacted>", master.String())

	child, err := seed.DeriveChild(master, "root-ca")
	require.NoError(t, err)
	assert.Equal(t, "<redacted>", child.String())
}

func TestWithMasterZeroizesOnPanic(t *testing.T) {
	master, err := seed.DeriveMaster(testPassphrase, testOrgID)
	require.NoError(t, err)

	var captured []byte
	func() {
		defer func() { _ = recover() }()
		_ = seed.WithMaster(master, func(raw []byte) error {
			captured = raw
			panic("boom")
		})
	}()

	assert.Equal(t, make([]byte, seed.Size), captured)
}
