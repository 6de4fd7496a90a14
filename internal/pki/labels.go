// Copyright 2026 The Keyforge Authors
//
// https://github.com/lockwell/keyforge
//
// Licensed under the MIT License. See LICENSE file in the project root for
// full license information.

package pki

import "github.com/lockwell/keyforge/internal/textutils"

// RootLabel is the well-known seed label for the Root CA's keypair.
const RootLabel = "root-ca"

// IntermediateLabel derives the seed label for an Intermediate CA named
// name, normalizing the name the same way any two callers supplying
// visually identical names will agree on the label.
func IntermediateLabel(name string) string {
	return "intermediate-" + textutils.NormalizeLabel(name)
}

// ServerLabel derives the seed label for a leaf server certificate with
// common name cn.
func ServerLabel(cn string) string {
	return "server-" + textutils.NormalizeLabel(cn)
}

// UserCertLabel derives the seed label for a leaf user certificate issued
// to person.
func UserCertLabel(person string) string {
	return "user-cert-" + textutils.NormalizeLabel(person)
}
