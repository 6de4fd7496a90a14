// Copyright 2026 The Keyforge Authors
//
// https://github.com/lockwell/keyforge
//
// Licensed under the MIT License. See LICENSE file in the project root for
// full license information.

package manifest

import "fmt"

// VerifyArtifact recomputes the CID of data and compares it against
// entry. Directories must be verified by re-deriving their own
// canonical JSON bytes and passing those as data with a DirectoryMediaType
// entry; VerifyArtifact itself is content-agnostic.
func VerifyArtifact(entry Entry, data []byte) error {
	got, err := CID(data)
	if err != nil {
		return err
	}
	if got != entry.CID {
		return fmt.Errorf("%w: want %s, got %s", ErrCidMismatch, entry.CID, got)
	}
	if int64(len(data)) != entry.Size {
		return fmt.Errorf("%w: size mismatch for cid %s", ErrCidMismatch, entry.CID)
	}
	return nil
}

// VerifyBundle walks m's contents and checks that every referenced path
// exists in files (keyed by relative path, directory manifests included
// under their own path) and that its recomputed CID matches. Verification
// fails closed: the first mismatch found is returned and the caller must
// reject the entire bundle, per the export transaction's all-or-nothing
// semantics.
func VerifyBundle(m Manifest, dirPath string, files map[string][]byte) error {
	for name, entry := range m.Contents {
		childPath := name
		if dirPath != "" {
			childPath = dirPath + "/" + name
		}

		data, ok := files[childPath]
		if !ok {
			return fmt.Errorf("%w: %s", ErrArtifactMissing, childPath)
		}

		if err := VerifyArtifact(entry, data); err != nil {
			return fmt.Errorf("%s: %w", childPath, err)
		}

		if entry.Type == DirectoryMediaType {
			if !IsCanonical(data) {
				return fmt.Errorf("%w: %s", ErrSerializationNotCanonical, childPath)
			}
			var child Manifest
			if err := decodeManifest(data, &child); err != nil {
				return fmt.Errorf("%s: %w", childPath, err)
			}
			if err := VerifyBundle(child, childPath, files); err != nil {
				return err
			}
		}
	}
	return nil
}
