// Copyright 2026 The Keyforge Authors
//
// https://github.com/lockwell/keyforge
//
// Licensed under the MIT License. See LICENSE file in the project root for
// full license information.

package manifest_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lockwell/keyforge/internal/manifest"
)

var fixedTime = time.Unix(1700000000, 0).UTC()

func sampleArtifacts() []manifest.Artifact {
	return []manifest.Artifact{
		{Path: "manifest.json", Data: []byte(`{"placeholder":true}`), MediaType: "application/json"},
		{Path: "pki/root-ca/cert.pem", Data: []byte("ROOT CERT BYTES"), MediaType: "application/x-pem-file"},
		{Path: "pki/intermediate-cas/engineering/cert.pem", Data: []byte("INTERMEDIATE CERT BYTES"), MediaType: "application/x-pem-file"},
		{Path: "people/alice/ssh.pub", Data: []byte("ssh-ed25519 AAAA alice"), MediaType: "text/plain"},
	}
}

func TestBuildIsIdempotent(t *testing.T) {
	built1, err := manifest.Build(fixedTime, sampleArtifacts())
	require.NoError(t, err)
	built2, err := manifest.Build(fixedTime, sampleArtifacts())
	require.NoError(t, err)

	assert.Equal(t, built1.RootCID, built2.RootCID)
}

func TestBuildIsOrderIndependent(t *testing.T) {
	artifacts := sampleArtifacts()
	reversed := make([]manifest.Artifact, len(artifacts))
	for i, a := range artifacts {
		reversed[len(artifacts)-1-i] = a
	}

	built1, err := manifest.Build(fixedTime, artifacts)
	require.NoError(t, err)
	built2, err := manifest.Build(fixedTime, reversed)
	require.NoError(t, err)

	assert.Equal(t, built1.RootCID, built2.RootCID)
}

func TestSingleByteChangeAltersRootCID(t *testing.T) {
	artifacts := sampleArtifacts()
	built1, err := manifest.Build(fixedTime, artifacts)
	require.NoError(t, err)

	mutated := sampleArtifacts()
	mutated[1].Data = []byte("ROOT CERT BYTEt")
	built2, err := manifest.Build(fixedTime, mutated)
	require.NoError(t, err)

	assert.NotEqual(t, built1.RootCID, built2.RootCID)
}

func TestVerifyBundleAcceptsUnmodifiedBundle(t *testing.T) {
	built, err := manifest.Build(fixedTime, sampleArtifacts())
	require.NoError(t, err)

	files := map[string][]byte{}
	for _, a := range sampleArtifacts() {
		files[a.Path] = a.Data
	}
	for dirPath, data := range built.Directories {
		if dirPath == "" {
			continue
		}
		files[dirPath] = data
	}

	require.NoError(t, manifest.VerifyBundle(built.Root, "", files))
}

func TestVerifyBundleRejectsTamperedFile(t *testing.T) {
	built, err := manifest.Build(fixedTime, sampleArtifacts())
	require.NoError(t, err)

	files := map[string][]byte{}
	for _, a := range sampleArtifacts() {
		files[a.Path] = a.Data
	}
	for dirPath, data := range built.Directories {
		if dirPath == "" {
			continue
		}
		files[dirPath] = data
	}
	files["manifest.json"] = []byte(`{"placeholder":false}`)

	err = manifest.VerifyBundle(built.Root, "", files)
	assert.ErrorIs(t, err, manifest.ErrCidMismatch)
}

func TestVerifyBundleRejectsMissingArtifact(t *testing.T) {
	built, err := manifest.Build(fixedTime, sampleArtifacts())
	require.NoError(t, err)

	files := map[string][]byte{}
	for dirPath, data := range built.Directories {
		if dirPath == "" {
			continue
		}
		files[dirPath] = data
	}

	err = manifest.VerifyBundle(built.Root, "", files)
	assert.ErrorIs(t, err, manifest.ErrArtifactMissing)
}

func TestIsCanonicalDetectsWhitespace(t *testing.T) {
	assert.True(t, manifest.IsCanonical([]byte(`{"a":1,"b":2}`)))
	assert.False(t, manifest.IsCanonical([]byte(`{"a": 1, "b": 2}`)))
	assert.False(t, manifest.IsCanonical([]byte(`{"b":2,"a":1}`)))
}

func TestCIDIsStableAndContentDependent(t *testing.T) {
	c1, err := manifest.CID([]byte("hello"))
	require.NoError(t, err)
	c2, err := manifest.CID([]byte("hello"))
	require.NoError(t, err)
	c3, err := manifest.CID([]byte("hellp"))
	require.NoError(t, err)

	assert.Equal(t, c1, c2)
	assert.NotEqual(t, c1, c3)
}
