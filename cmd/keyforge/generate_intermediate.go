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

func newGenerateIntermediateCmd(state *appState) *cobra.Command {
	var name, parentName, commonName, organization, country string

	cmd := &cobra.Command{
		Use:   "generate-intermediate",
		Short: "Generate a signing-only Intermediate CA",
		Long: `generate-intermediate issues a pathlen:0 Intermediate CA signed by the
Root CA. --parent-name is accepted for symmetry with the rest of the
command set but any value naming an existing intermediate is always
rejected: every intermediate this tool issues is signing-only and can
never itself sign a further CA.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := ensureMaster(cmd, state); err != nil {
				return err
			}
			event, err := state.sess.run(context.Background(), model.GenerateIntermediateCA{
				Name:         name,
				ParentName:   parentName,
				CommonName:   commonName,
				Organization: organization,
				Country:      country,
			})
			if err != nil {
				return err
			}
			payload := event.Payload.(model.IntermediateCAGenerated)
			fmt.Fprintf(cmd.OutOrStdout(), "intermediate CA %q generated (fingerprint %s)\n", payload.Name, payload.Fingerprint)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "intermediate CA name (required)")
	cmd.Flags().StringVar(&parentName, "parent-name", "", "name of an existing intermediate to sign under (always rejected; omit to sign under the Root CA)")
	cmd.Flags().StringVar(&commonName, "common-name", "", "intermediate CA common name (defaults to --name)")
	cmd.Flags().StringVar(&organization, "organization", "", "intermediate CA organization")
	cmd.Flags().StringVar(&country, "country", "", "intermediate CA two-letter country code")
	_ = cmd.MarkFlagRequired("name")

	return cmd
}
