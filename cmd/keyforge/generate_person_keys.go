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

func newGeneratePersonKeysCmd(state *appState) *cobra.Command {
	var person, email, pivSlot, userCertIntermediate string

	cmd := &cobra.Command{
		Use:   "generate-person-keys",
		Short: "Generate a person's SSH and PGP keypairs, optionally provisioning a PIV slot",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := ensureMaster(cmd, state); err != nil {
				return err
			}
			ctx := context.Background()

			sshEvent, err := state.sess.run(ctx, model.GenerateSSHKeypair{Person: person})
			if err != nil {
				return err
			}
			sshPayload := sshEvent.Payload.(model.SSHKeypairGenerated)
			fmt.Fprintf(cmd.OutOrStdout(), "ssh keypair generated for %q (fingerprint %s)\n", sshPayload.Person, sshPayload.Fingerprint)

			pgpEvent, err := state.sess.run(ctx, model.GeneratePGPKeypair{Person: person, Email: email})
			if err != nil {
				return err
			}
			pgpPayload := pgpEvent.Payload.(model.PGPKeypairGenerated)
			fmt.Fprintf(cmd.OutOrStdout(), "pgp keypair generated for %q (fingerprint %s)\n", pgpPayload.Person, pgpPayload.Fingerprint)

			if userCertIntermediate != "" {
				certEvent, err := state.sess.run(ctx, model.GenerateUserCert{
					Person:           person,
					Email:            email,
					IntermediateName: userCertIntermediate,
				})
				if err != nil {
					return err
				}
				certPayload := certEvent.Payload.(model.UserCertGenerated)
				fmt.Fprintf(cmd.OutOrStdout(), "user certificate issued for %q under %q (fingerprint %s)\n",
					certPayload.Person, certPayload.IntermediateName, certPayload.Fingerprint)
			}

			if pivSlot != "" {
				pivEvent, err := state.sess.run(ctx, model.ProvisionPIVSlot{Person: person, Slot: pivSlot})
				if err != nil {
					return err
				}
				pivPayload := pivEvent.Payload.(model.PIVSlotProvisioned)
				fmt.Fprintf(cmd.OutOrStdout(), "PIV slot %s provisioned for %q\n", pivPayload.Slot, pivPayload.Person)
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&person, "person", "", "person's name (required)")
	cmd.Flags().StringVar(&email, "email", "", "person's email address")
	cmd.Flags().StringVar(&pivSlot, "piv-slot", "", "PIV slot to provision (9A, 9C, 9D, or 9E); omit to skip")
	cmd.Flags().StringVar(&userCertIntermediate, "issue-user-cert-under", "", "name of an Intermediate CA to issue a client-auth certificate under; omit to skip")
	_ = cmd.MarkFlagRequired("person")

	return cmd
}
