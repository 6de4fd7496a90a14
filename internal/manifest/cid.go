// Copyright 2026 The Keyforge Authors
//
// https://github.com/lockwell/keyforge
//
// Licensed under the MIT License. See LICENSE file in the project root for
// full license information.

package manifest

import (
	"fmt"

	"github.com/ipfs/go-cid"
	"github.com/multiformats/go-multibase"
	"github.com/multiformats/go-multihash"
)

// CID computes the CIDv1 (raw codec, SHA-256 multihash, lower-case
// base32 multibase) of data. It is a pure function of the bytes: the
// same input always yields the same string, independent of any
// timestamp, ordering, or host state.
func CID(data []byte) (string, error) {
	mh, err := multihash.Sum(data, multihash.SHA2_256, -1)
	if err != nil {
		return "", fmt.Errorf("manifest: hashing content: %w", err)
	}

	c := cid.NewCidV1(cid.Raw, mh)

	encoded, err := c.StringOfBase(multibase.Base32)
	if err != nil {
		return "", fmt.Errorf("manifest: encoding cid: %w", err)
	}
	return encoded, nil
}
