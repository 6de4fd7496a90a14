// Copyright 2026 The Keyforge Authors
//
// https://github.com/lockwell/keyforge
//
// Licensed under the MIT License. See LICENSE file in the project root for
// full license information.

package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// filesystemStorage is the concrete ports.Storage adapter for the CLI
// host: every relative path is rooted beneath root, and every Put is
// written to a temp file and renamed into place so a crash mid-write
// never leaves a partially-written artifact visible under its real name.
type filesystemStorage struct {
	root string
}

func newFilesystemStorage(root string) *filesystemStorage {
	return &filesystemStorage{root: root}
}

func (s *filesystemStorage) resolve(relPath string) (string, error) {
	cleaned := filepath.Clean("/" + relPath)
	full := filepath.Join(s.root, cleaned)
	if !strings.HasPrefix(full, filepath.Clean(s.root)+string(os.PathSeparator)) && full != filepath.Clean(s.root) {
		return "", fmt.Errorf("storage: path %q escapes output root", relPath)
	}
	return full, nil
}

func (s *filesystemStorage) Put(ctx context.Context, relPath string, data []byte) error {
	full, err := s.resolve(relPath)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(full), 0o755); err != nil {
		return fmt.Errorf("storage: creating directory for %q: %w", relPath, err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(full), ".keyforge-tmp-*")
	if err != nil {
		return fmt.Errorf("storage: creating temp file for %q: %w", relPath, err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("storage: writing %q: %w", relPath, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("storage: closing %q: %w", relPath, err)
	}
	if err := os.Rename(tmpName, full); err != nil {
		return fmt.Errorf("storage: committing %q: %w", relPath, err)
	}
	return nil
}

func (s *filesystemStorage) Get(ctx context.Context, relPath string) ([]byte, error) {
	full, err := s.resolve(relPath)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(full)
	if err != nil {
		return nil, fmt.Errorf("storage: reading %q: %w", relPath, err)
	}
	return data, nil
}

func (s *filesystemStorage) List(ctx context.Context, prefix string) ([]string, error) {
	root, err := s.resolve(prefix)
	if err != nil {
		return nil, err
	}
	var out []string
	err = filepath.Walk(root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			if os.IsNotExist(err) {
				return nil
			}
			return err
		}
		if info.IsDir() {
			return nil
		}
		rel, err := filepath.Rel(s.root, path)
		if err != nil {
			return err
		}
		out = append(out, filepath.ToSlash(rel))
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("storage: listing %q: %w", prefix, err)
	}
	return out, nil
}

func (s *filesystemStorage) Sync(ctx context.Context) error {
	dir, err := os.Open(s.root)
	if err != nil {
		return fmt.Errorf("storage: opening output root for sync: %w", err)
	}
	defer dir.Close()
	if err := dir.Sync(); err != nil && !strings.Contains(err.Error(), "invalid argument") {
		return fmt.Errorf("storage: syncing output root: %w", err)
	}
	return nil
}
