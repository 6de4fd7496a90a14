// Copyright 2026 The Keyforge Authors
//
// https://github.com/lockwell/keyforge
//
// Licensed under the MIT License. See LICENSE file in the project root for
// full license information.

package ports

import "github.com/lockwell/keyforge/internal/keypair"

// SSHKeyFormatter is the SSH-key port: formatting a keypair as
// authorized_keys / OpenSSH private key text, and computing its
// SHA256 fingerprint.
type SSHKeyFormatter interface {
	FormatOpenSSH(kp keypair.Keypair, comment string) (pubText, privText string, err error)
	Fingerprint(kp keypair.Keypair) (string, error)
}
