// Copyright 2026 The Keyforge Authors
//
// https://github.com/lockwell/keyforge
//
// Licensed under the MIT License. See LICENSE file in the project root for
// full license information.

package manifest

import (
	"fmt"
	"path"
	"sort"
	"strings"
	"time"
)

// SchemaVersion is the manifest schema version written into every
// manifest's "version" field.
const SchemaVersion = "1"

// DirectoryMediaType is the sentinel "type" value used for entries whose
// CID refers to a nested directory manifest rather than file bytes.
const DirectoryMediaType = "directory"

// Entry is one row of a manifest's "contents" map: a relative path
// mapped to the content-id of its bytes (file) or of its own directory
// manifest (directory).
type Entry struct {
	CID  string `json:"cid"`
	Size int64  `json:"size"`
	Type string `json:"type"`
}

// Manifest is the canonical JSON object written at the root of an export
// bundle and, recursively, at every directory within it.
type Manifest struct {
	Version     string           `json:"version"`
	GeneratedAt int64            `json:"generated_at"`
	Contents    map[string]Entry `json:"contents"`
}

// Artifact is a single file to be included in an export bundle, keyed by
// its slash-separated path relative to the bundle root.
type Artifact struct {
	Path      string
	Data      []byte
	MediaType string
}

// Built is the result of assembling a manifest tree: the root manifest,
// every directory manifest's canonical JSON bytes keyed by the
// directory's relative path ("" for the root), and the root CID.
type Built struct {
	Root        Manifest
	Directories map[string][]byte
	RootCID     string
}

type treeNode struct {
	files    map[string]Artifact
	children map[string]*treeNode
}

func newTreeNode() *treeNode {
	return &treeNode{files: map[string]Artifact{}, children: map[string]*treeNode{}}
}

func (n *treeNode) insert(relPath string, a Artifact) error {
	segments := strings.Split(path.Clean(relPath), "/")
	cur := n
	for _, seg := range segments[:len(segments)-1] {
		if seg == "" || seg == "." {
			return fmt.Errorf("manifest: invalid artifact path %q", relPath)
		}
		child, ok := cur.children[seg]
		if !ok {
			child = newTreeNode()
			cur.children[seg] = child
		}
		cur = child
	}
	name := segments[len(segments)-1]
	if name == "" {
		return fmt.Errorf("manifest: invalid artifact path %q", relPath)
	}
	cur.files[name] = a
	return nil
}

// Build assembles artifacts into a directory tree, computes a CID for
// every file and every directory (bottom-up, so a directory's CID
// depends on its children's CIDs), and returns the fully built manifest
// set. generatedAt is stamped into every manifest's generated_at field
// and must be supplied by the caller, never read from the clock, so that
// repeated exports of identical inputs are byte-identical.
func Build(generatedAt time.Time, artifacts []Artifact) (Built, error) {
	root := newTreeNode()
	for _, a := range artifacts {
		if err := root.insert(a.Path, a); err != nil {
			return Built{}, err
		}
	}

	directories := map[string][]byte{}
	rootManifest, err := buildNode(root, generatedAt, directories, "")
	if err != nil {
		return Built{}, err
	}

	rootBytes, err := canonicalJSON(rootManifest)
	if err != nil {
		return Built{}, err
	}
	directories[""] = rootBytes

	rootCID, err := CID(rootBytes)
	if err != nil {
		return Built{}, err
	}

	return Built{Root: rootManifest, Directories: directories, RootCID: rootCID}, nil
}

func buildNode(n *treeNode, generatedAt time.Time, directories map[string][]byte, dirPath string) (Manifest, error) {
	contents := map[string]Entry{}

	for name, a := range n.files {
		cid, err := CID(a.Data)
		if err != nil {
			return Manifest{}, err
		}
		mediaType := a.MediaType
		if mediaType == "" {
			mediaType = "application/octet-stream"
		}
		contents[name] = Entry{CID: cid, Size: int64(len(a.Data)), Type: mediaType}
	}

	childNames := make([]string, 0, len(n.children))
	for name := range n.children {
		childNames = append(childNames, name)
	}
	sort.Strings(childNames)

	for _, name := range childNames {
		childPath := name
		if dirPath != "" {
			childPath = dirPath + "/" + name
		}
		childManifest, err := buildNode(n.children[name], generatedAt, directories, childPath)
		if err != nil {
			return Manifest{}, err
		}
		childBytes, err := canonicalJSON(childManifest)
		if err != nil {
			return Manifest{}, err
		}
		directories[childPath] = childBytes

		childCID, err := CID(childBytes)
		if err != nil {
			return Manifest{}, err
		}
		contents[name] = Entry{CID: childCID, Size: int64(len(childBytes)), Type: DirectoryMediaType}
	}

	return Manifest{
		Version:     SchemaVersion,
		GeneratedAt: generatedAt.Unix(),
		Contents:    contents,
	}, nil
}
