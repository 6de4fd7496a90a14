// Copyright 2026 The Keyforge Authors
//
// https://github.com/lockwell/keyforge
//
// Licensed under the MIT License. See LICENSE file in the project root for
// full license information.

// Package manifest builds a content-addressed, Merkle-style manifest over
// a bundle of exported artifacts. Every file and directory is identified
// by a CIDv1 (raw codec, SHA-256 multihash, lower-case base32
// multibase), computed purely from bytes, so that re-running an export
// over identical inputs reproduces an identical root CID and a single
// bit flip anywhere in the tree changes it.
package manifest
