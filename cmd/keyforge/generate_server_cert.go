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

func newGenerateServerCertCmd(state *appState) *cobra.Command {
	var commonName, intermediateName string
	var sans []string

	cmd := &cobra.Command{
		Use:   "generate-server-cert",
		Short: "Issue a leaf server certificate under an Intermediate CA",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := ensureMaster(cmd, state); err != nil {
				return err
			}
			event, err := state.sess.run(context.Background(), model.GenerateServerCert{
				CommonName:       commonName,
				SANs:             sans,
				IntermediateName: intermediateName,
			})
			if err != nil {
				return err
			}
			payload := event.Payload.(model.ServerCertGenerated)
			fmt.Fprintf(cmd.OutOrStdout(), "server certificate %q generated under %q (fingerprint %s)\n",
				payload.CommonName, payload.IntermediateName, payload.Fingerprint)
			return nil
		},
	}

	cmd.Flags().StringVar(&commonName, "common-name", "", "server certificate common name (required)")
	cmd.Flags().StringVar(&intermediateName, "intermediate-name", "", "name of the issuing Intermediate CA (required)")
	cmd.Flags().StringSliceVar(&sans, "san", nil, "subject alternative name (DNS, IP, or email); repeatable")
	_ = cmd.MarkFlagRequired("common-name")
	_ = cmd.MarkFlagRequired("intermediate-name")

	return cmd
}
