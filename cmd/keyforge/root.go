// Copyright 2026 The Keyforge Authors
//
// https://github.com/lockwell/keyforge
//
// Licensed under the MIT License. See LICENSE file in the project root for
// full license information.

package main

import (
	"github.com/spf13/cobra"

	"github.com/lockwell/keyforge/internal/config"
)

// appState carries the per-invocation config and session across cobra's
// PersistentPreRunE and each subcommand's RunE. cobra constructs exactly
// one command tree per process, so a single struct shared by closure is
// simpler than threading context.Context values through cobra's flag
// machinery.
type appState struct {
	cfg *config.Config
	sess *session
}

func newRootCmd() *cobra.Command {
	state := &appState{}

	root := &cobra.Command{
		Use:   "keyforge",
		Short: "Deterministic PKI and NATS credential bootstrap",
		Long: `keyforge derives a reproducible hierarchy of PKI certificates and
NATS operator/account/user identities from a single passphrase, so that
an entire organization's credential material can be regenerated
byte-for-byte on any host from the passphrase alone.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.New()
			if err != nil {
				return newExitError(ExitUsage, err)
			}
			state.cfg = cfg

			sess, err := newSession(cfg)
			if err != nil {
				return newExitError(ExitIO, err)
			}
			state.sess = sess
			return nil
		},
	}

	root.PersistentFlags().String("org-id", "", "organization UUID the master seed is bound to (required)")
	root.PersistentFlags().String("passphrase", "", "master passphrase (omit to be prompted interactively)")

	root.AddCommand(
		newDeriveMasterCmd(state),
		newGenerateRootCACmd(state),
		newGenerateIntermediateCmd(state),
		newGenerateServerCertCmd(state),
		newGeneratePersonKeysCmd(state),
		newGenerateNatsHierarchyCmd(state),
		newExportCmd(state),
	)

	return root
}
