// Copyright 2026 The Keyforge Authors
//
// https://github.com/lockwell/keyforge
//
// Licensed under the MIT License. See LICENSE file in the project root for
// full license information.

package manifest

import (
	"encoding/json"
	"fmt"
)

func decodeManifest(data []byte, out *Manifest) error {
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("manifest: decoding manifest: %w", err)
	}
	return nil
}
