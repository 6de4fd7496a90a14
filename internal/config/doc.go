// Copyright 2026 The Keyforge Authors
//
// https://github.com/lockwell/keyforge
//
// Licensed under the MIT License. See LICENSE file in the project root for
// full license information.

// Package config holds the minimal environment-derived configuration
// cmd/keyforge needs: where generated artifacts are written, and how
// verbosely to log. No secret is ever read from the environment — the
// passphrase is always supplied interactively or via the explicit
// --passphrase flag (which, unlike the prompt, is visible in shell
// history), never via an environment variable or flag default.
package config
