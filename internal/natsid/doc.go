// Copyright 2026 The Keyforge Authors
//
// https://github.com/lockwell/keyforge
//
// Licensed under the MIT License. See LICENSE file in the project root for
// full license information.

// Package natsid projects an organization's units and people onto a NATS
// Operator/Account/User authentication hierarchy: each tier gets a
// label-derived Ed25519 NKey pair (github.com/nats-io/nkeys) and a signed
// JWT (github.com/nats-io/jwt/v2), with Operator self-signed, Account
// signed by the Operator, and User signed by its owning Account.
package natsid
