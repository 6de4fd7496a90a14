// Copyright 2026 The Keyforge Authors
//
// https://github.com/lockwell/keyforge
//
// Licensed under the MIT License. See LICENSE file in the project root for
// full license information.

// Package model implements the command/aggregate/event loop at the heart
// of the generation pipeline. Every externally visible change arrives as
// an Intent; Update is a total, side-effect-free function of the current
// Projection and that Intent, returning a new Projection plus an Effect
// describing work the host must perform out of line (a KDF run, an RSA
// keygen, a filesystem write). Nothing this package exports mutates
// shared state or calls out to cryptographic libraries directly — those
// concerns live in the ports this package's effects describe, and in the
// seed/keypair/pki/natsid/manifest packages that implement them.
package model
