// Copyright 2026 The Keyforge Authors
//
// https://github.com/lockwell/keyforge
//
// Licensed under the MIT License. See LICENSE file in the project root for
// full license information.

// Package orgagg defines the OrganizationAggregate read model that C4
// (internal/natsid) projects onto a NATS Operator/Account/User
// hierarchy. Its internal structure — how units and people are actually
// sourced, edited, and persisted — is owned by an external collaborator;
// this package only declares the shape the core consumes.
package orgagg
