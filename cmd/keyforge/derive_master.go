// Copyright 2026 The Keyforge Authors
//
// https://github.com/lockwell/keyforge
//
// Licensed under the MIT License. See LICENSE file in the project root for
// full license information.

package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newDeriveMasterCmd(state *appState) *cobra.Command {
	return &cobra.Command{
		Use:   "derive-master",
		Short: "Derive and record the organization's master seed",
		Long: `derive-master re-derives the master seed from --passphrase and
--org-id through Argon2id. The seed is never written to disk; only the
fact that derivation succeeded is recorded in the event log, so that
later commands can confirm a master seed is present before proceeding.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := ensureMaster(cmd, state); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "master seed derived")
			return nil
		},
	}
}
