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

	"github.com/spf13/cobra"

	"github.com/lockwell/keyforge/internal/model"
)

func newExportCmd(state *appState) *cobra.Command {
	return &cobra.Command{
		Use:   "export",
		Short: "Write the content-addressed export manifest over all generated artifacts",
		Long: `export walks every artifact already written under the output root and
builds a CIDv1 content-addressed manifest over it, one manifest.json
per directory. It performs no cryptographic reconstruction: artifact
bytes were already written to disk at generation time, so export only
ever reads what is already there.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := ensureMaster(cmd, state); err != nil {
				return err
			}
			event, err := state.sess.run(context.Background(), model.WriteExportManifest{})
			if err != nil {
				return err
			}
			payload := event.Payload.(model.ExportManifestWritten)
			fmt.Fprintf(cmd.OutOrStdout(), "export manifest written: %s\n", payload.RootCID)
			return nil
		},
	}
}
