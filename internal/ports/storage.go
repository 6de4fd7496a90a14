// Copyright 2026 The Keyforge Authors
//
// https://github.com/lockwell/keyforge
//
// Licensed under the MIT License. See LICENSE file in the project root for
// full license information.

package ports

import "context"

// Storage is the durable artifact sink the export pipeline writes
// through. Writes are atomic at the file level; a successful Sync
// guarantees every Put issued before it is durable and visible to
// subsequent Gets.
type Storage interface {
	Put(ctx context.Context, relPath string, data []byte) error
	Get(ctx context.Context, relPath string) ([]byte, error)
	List(ctx context.Context, prefix string) ([]string, error)
	Sync(ctx context.Context) error
}
