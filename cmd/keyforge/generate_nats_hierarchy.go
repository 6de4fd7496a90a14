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

func newGenerateNatsHierarchyCmd(state *appState) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate-nats-hierarchy",
		Short: "Generate NATS Operator, Account, and User identities",
	}

	cmd.AddCommand(
		newNatsOperatorCmd(state),
		newNatsAccountCmd(state),
		newNatsUserCmd(state),
	)

	return cmd
}

func newNatsOperatorCmd(state *appState) *cobra.Command {
	var orgName string

	cmd := &cobra.Command{
		Use:   "operator",
		Short: "Generate the organization's self-signed NATS Operator identity",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := ensureMaster(cmd, state); err != nil {
				return err
			}
			event, err := state.sess.run(context.Background(), model.GenerateNatsOperator{OrgName: orgName})
			if err != nil {
				return err
			}
			payload := event.Payload.(model.NatsOperatorCreated)
			fmt.Fprintf(cmd.OutOrStdout(), "NATS operator generated: %s\n", payload.PublicKey)
			return nil
		},
	}

	cmd.Flags().StringVar(&orgName, "org-name", "", "organization name embedded in the Operator JWT (required)")
	_ = cmd.MarkFlagRequired("org-name")
	return cmd
}

func newNatsAccountCmd(state *appState) *cobra.Command {
	var unit string

	cmd := &cobra.Command{
		Use:   "account",
		Short: "Generate a NATS Account identity for an organizational unit",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := ensureMaster(cmd, state); err != nil {
				return err
			}
			event, err := state.sess.run(context.Background(), model.GenerateNatsAccount{Unit: unit})
			if err != nil {
				return err
			}
			payload := event.Payload.(model.NatsAccountCreated)
			fmt.Fprintf(cmd.OutOrStdout(), "NATS account %q generated: %s\n", payload.Unit, payload.PublicKey)
			return nil
		},
	}

	cmd.Flags().StringVar(&unit, "unit", "", "organizational unit name (required)")
	_ = cmd.MarkFlagRequired("unit")
	return cmd
}

func newNatsUserCmd(state *appState) *cobra.Command {
	var unit, person string

	cmd := &cobra.Command{
		Use:   "user",
		Short: "Generate a NATS User identity within an Account",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := ensureMaster(cmd, state); err != nil {
				return err
			}
			event, err := state.sess.run(context.Background(), model.GenerateNatsUser{Unit: unit, Person: person})
			if err != nil {
				return err
			}
			payload := event.Payload.(model.NatsUserCreated)
			fmt.Fprintf(cmd.OutOrStdout(), "NATS user %q generated under %q: %s\n", payload.Person, payload.Unit, payload.PublicKey)
			return nil
		},
	}

	cmd.Flags().StringVar(&unit, "unit", "", "owning organizational unit's Account name (required)")
	cmd.Flags().StringVar(&person, "person", "", "person's name (required)")
	_ = cmd.MarkFlagRequired("unit")
	_ = cmd.MarkFlagRequired("person")
	return cmd
}
