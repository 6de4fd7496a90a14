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

func newGenerateRootCACmd(state *appState) *cobra.Command {
	var commonName, organization, country string

	cmd := &cobra.Command{
		Use:   "generate-root-ca",
		Short: "Generate the organization's self-signed Root CA",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := ensureMaster(cmd, state); err != nil {
				return err
			}
			event, err := state.sess.run(context.Background(), model.GenerateRootCA{
				CommonName:   commonName,
				Organization: organization,
				Country:      country,
			})
			if err != nil {
				return err
			}
			payload := event.Payload.(model.RootCAGenerated)
			fmt.Fprintf(cmd.OutOrStdout(), "root CA generated: %s (fingerprint %s)\n", payload.Subject, payload.Fingerprint)
			return nil
		},
	}

	cmd.Flags().StringVar(&commonName, "common-name", "", "Root CA common name (required)")
	cmd.Flags().StringVar(&organization, "organization", "", "Root CA organization")
	cmd.Flags().StringVar(&country, "country", "", "Root CA two-letter country code")
	_ = cmd.MarkFlagRequired("common-name")

	return cmd
}
