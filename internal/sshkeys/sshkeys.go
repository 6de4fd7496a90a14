// Copyright 2026 The Keyforge Authors
//
// https://github.com/lockwell/keyforge
//
// Licensed under the MIT License. See LICENSE file in the project root for
// full license information.

package sshkeys

import (
	"crypto/ed25519"
	"encoding/pem"
	"fmt"

	"golang.org/x/crypto/ssh"

	"github.com/lockwell/keyforge/internal/keypair"
)

// FormatOpenSSH renders kp as an authorized_keys-style public key line and
// an OpenSSH-format ("openssh-key-v1") private key PEM block, per the
// SSH-key port's format_openssh operation. Only Ed25519 keypairs are
// supported; the specification derives per-person SSH material exclusively
// from Ed25519.
func FormatOpenSSH(kp keypair.Keypair, comment string) (pubText string, privText string, err error) {
	pub, ok := kp.Public.(ed25519.PublicKey)
	if !ok {
		return "", "", fmt.Errorf("sshkeys: unsupported algorithm %s", kp.Algorithm)
	}
	priv, ok := kp.Private.(ed25519.PrivateKey)
	if !ok {
		return "", "", fmt.Errorf("sshkeys: unsupported algorithm %s", kp.Algorithm)
	}

	sshPub, err := ssh.NewPublicKey(pub)
	if err != nil {
		return "", "", fmt.Errorf("sshkeys: wrapping public key: %w", err)
	}

	pubLine := string(ssh.MarshalAuthorizedKey(sshPub))
	if comment != "" {
		pubLine = pubLine[:len(pubLine)-1] + " " + comment + "\n"
	}

	block, err := ssh.MarshalPrivateKey(priv, comment)
	if err != nil {
		return "", "", fmt.Errorf("sshkeys: marshaling private key: %w", err)
	}

	return pubLine, string(pem.EncodeToMemory(block)), nil
}

// Fingerprint returns the SHA256-based OpenSSH fingerprint
// ("SHA256:base64...") for the given public key.
func Fingerprint(kp keypair.Keypair) (string, error) {
	pub, ok := kp.Public.(ed25519.PublicKey)
	if !ok {
		return "", fmt.Errorf("sshkeys: unsupported algorithm %s", kp.Algorithm)
	}

	sshPub, err := ssh.NewPublicKey(pub)
	if err != nil {
		return "", fmt.Errorf("sshkeys: wrapping public key: %w", err)
	}

	return ssh.FingerprintSHA256(sshPub), nil
}
