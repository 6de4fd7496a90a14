// Copyright 2026 The Keyforge Authors
//
// https://github.com/lockwell/keyforge
//
// Licensed under the MIT License. See LICENSE file in the project root for
// full license information.

// Package pki constructs a Root CA, signing-only Intermediate CAs
// (pathlen:0, hard constraint), and leaf server certificates on top of
// crypto/x509, enforcing the basic-constraint and key-usage invariants the
// rest of the module depends on. Serial numbers are derived deterministically
// from a hash of the issuer/subject distinguished names, the not-before
// timestamp, and a sequence index rather than drawn from a random source, so
// that two runs with identical inputs produce byte-identical certificates.
package pki
