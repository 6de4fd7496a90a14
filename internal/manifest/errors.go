// Copyright 2026 The Keyforge Authors
//
// https://github.com/lockwell/keyforge
//
// Licensed under the MIT License. See LICENSE file in the project root for
// full license information.

package manifest

import "errors"

// ErrArtifactMissing indicates a manifest entry references a path that
// does not exist in the artifact set being verified.
var ErrArtifactMissing = errors.New("manifest: artifact missing")

// ErrCidMismatch indicates a recomputed CID does not match the one
// recorded in a manifest, implying the bundle was modified after export.
var ErrCidMismatch = errors.New("manifest: cid mismatch")

// ErrSerializationNotCanonical indicates a manifest's JSON bytes do not
// match canonical form (sorted keys, no insignificant whitespace), so
// its CID cannot be trusted to be reproducible.
var ErrSerializationNotCanonical = errors.New("manifest: serialization not canonical")
