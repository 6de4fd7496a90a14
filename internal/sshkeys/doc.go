// Copyright 2026 The Keyforge Authors
//
// https://github.com/lockwell/keyforge
//
// Licensed under the MIT License. See LICENSE file in the project root for
// full license information.

// Package sshkeys formats Ed25519 keypairs as OpenSSH public/private key
// text and computes OpenSSH-style fingerprints, implementing the SSH-key
// port described by the specification on top of golang.org/x/crypto/ssh.
package sshkeys
