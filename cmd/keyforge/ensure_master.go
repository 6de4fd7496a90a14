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

	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

// ensureMaster resolves --org-id and --passphrase (prompting for the
// latter if it was not supplied) and derives the master seed for this
// invocation. Every subcommand, derive-master included, calls this before
// doing any work, since the master seed is never persisted between processes.
func ensureMaster(cmd *cobra.Command, state *appState) error {
	orgIDRaw, err := cmd.Flags().GetString("org-id")
	if err != nil || orgIDRaw == "" {
		return newExitError(ExitUsage, fmt.Errorf("--org-id is required"))
	}
	orgID, err := uuid.Parse(orgIDRaw)
	if err != nil {
		return newExitError(ExitUsage, fmt.Errorf("--org-id: %w", err))
	}

	passphrase, err := cmd.Flags().GetString("passphrase")
	if err != nil {
		return newExitError(ExitUsage, err)
	}
	if passphrase == "" {
		passphrase, err = readPassphrase("Master passphrase: ")
		if err != nil {
			return newExitError(ExitUsage, err)
		}
	}

	ctx := context.Background()
	if err := state.sess.requireMaster(ctx, passphrase, orgID); err != nil {
		return newExitError(ExitCrypto, err)
	}
	if err := state.sess.persist(ctx); err != nil {
		return newExitError(ExitIO, fmt.Errorf("persisting event log: %w", err))
	}
	return nil
}
