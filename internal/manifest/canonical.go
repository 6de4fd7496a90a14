// Copyright 2026 The Keyforge Authors
//
// https://github.com/lockwell/keyforge
//
// Licensed under the MIT License. See LICENSE file in the project root for
// full license information.

package manifest

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// canonicalJSON re-encodes v through a generic map so that object keys
// are sorted lexicographically (Go's encoding/json already sorts
// map[string]any keys byte-wise) and no insignificant whitespace is
// emitted. Callers must pass a value whose JSON representation round
// trips through map[string]any without losing structure, i.e. anything
// built from maps, slices, and scalars.
func canonicalJSON(v any) ([]byte, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("manifest: marshaling: %w", err)
	}

	var generic any
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	if err := dec.Decode(&generic); err != nil {
		return nil, fmt.Errorf("manifest: decoding for canonicalization: %w", err)
	}

	canonical, err := json.Marshal(generic)
	if err != nil {
		return nil, fmt.Errorf("manifest: re-marshaling canonical form: %w", err)
	}
	return canonical, nil
}

// IsCanonical reports whether raw is already in canonical form: it
// round-trips byte-for-byte through canonicalJSON.
func IsCanonical(raw []byte) bool {
	var generic any
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	if err := dec.Decode(&generic); err != nil {
		return false
	}
	recanonicalized, err := json.Marshal(generic)
	if err != nil {
		return false
	}
	return bytes.Equal(bytes.TrimSpace(raw), recanonicalized)
}
