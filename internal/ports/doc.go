// Copyright 2026 The Keyforge Authors
//
// https://github.com/lockwell/keyforge
//
// Licensed under the MIT License. See LICENSE file in the project root for
// full license information.

// Package ports declares the boundary abstractions the core consumes:
// durable storage, hardware-token (PIV) provisioning, SSH key
// formatting, X.509 certificate signing, and NATS JWT signing. Every
// port is a capability interface; concrete implementations are injected
// at construction by cmd/keyforge. The core never looks one up through
// global state.
package ports
