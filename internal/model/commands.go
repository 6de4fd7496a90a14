// Copyright 2026 The Keyforge Authors
//
// https://github.com/lockwell/keyforge
//
// Licensed under the MIT License. See LICENSE file in the project root for
// full license information.

package model

import "github.com/google/uuid"

// Command is implemented by every UI-originated request the core
// accepts. The set is closed to this package.
type Command interface {
	commandName() string
}

// DeriveMasterSeed requests derivation of the session's master seed.
// Passphrase must equal Confirm; this is checked before any KDF work is
// dispatched.
type DeriveMasterSeed struct {
	Passphrase string
	Confirm    string
	OrgID      uuid.UUID
}

func (DeriveMasterSeed) commandName() string { return "DeriveMasterSeed" }

// GenerateRootCA requests generation of the organization's Root CA.
type GenerateRootCA struct {
	CommonName   string
	Organization string
	Country      string
}

func (GenerateRootCA) commandName() string { return "GenerateRootCA" }

// GenerateIntermediateCA requests a signing-only Intermediate CA named
// Name. ParentName is empty to sign directly under the Root CA, or the
// name of an existing intermediate to attempt a sub-intermediate — which
// always fails with ReasonPathlenViolation, since every intermediate this
// core issues is pathlen:0.
type GenerateIntermediateCA struct {
	Name         string
	ParentName   string
	CommonName   string
	Organization string
	Country      string
}

func (GenerateIntermediateCA) commandName() string { return "GenerateIntermediateCA" }

// GenerateServerCert requests a leaf server certificate signed by the
// named Intermediate CA.
type GenerateServerCert struct {
	CommonName       string
	SANs             []string
	IntermediateName string
}

func (GenerateServerCert) commandName() string { return "GenerateServerCert" }

// GenerateUserCert requests a clientAuth/emailProtection leaf certificate
// for a person, signed by the named Intermediate CA. Distinct from the
// person's SSH and PGP keys: this is PKI-rooted material suitable for
// mutual-TLS client auth or S/MIME.
type GenerateUserCert struct {
	Person           string
	Email            string
	IntermediateName string
}

func (GenerateUserCert) commandName() string { return "GenerateUserCert" }

// GenerateSSHKeypair requests a per-person SSH keypair.
type GenerateSSHKeypair struct {
	Person string
}

func (GenerateSSHKeypair) commandName() string { return "GenerateSshKeypair" }

// GeneratePGPKeypair requests a per-person PGP keypair.
type GeneratePGPKeypair struct {
	Person string
	Email  string
}

func (GeneratePGPKeypair) commandName() string { return "GeneratePgpKeypair" }

// ProvisionPIVSlot requests provisioning of a hardware-token slot for a
// person. Slot MUST be one of "9A", "9C", "9D", "9E".
type ProvisionPIVSlot struct {
	Person string
	Slot   string
}

func (ProvisionPIVSlot) commandName() string { return "ProvisionPivSlot" }

// GenerateNatsOperator requests the organization's self-signed NATS
// Operator identity.
type GenerateNatsOperator struct {
	OrgName string
}

func (GenerateNatsOperator) commandName() string { return "GenerateNatsOperator" }

// GenerateNatsAccount requests a NATS Account identity for an
// organizational unit, signed by the Operator.
type GenerateNatsAccount struct {
	Unit string
}

func (GenerateNatsAccount) commandName() string { return "GenerateNatsAccount" }

// GenerateNatsUser requests a NATS User identity for a person within an
// existing unit's Account, signed by that Account.
type GenerateNatsUser struct {
	Unit   string
	Person string
}

func (GenerateNatsUser) commandName() string { return "GenerateNatsUser" }

// WriteExportManifest requests that all generated artifacts be
// serialized into a content-addressed export bundle.
type WriteExportManifest struct{}

func (WriteExportManifest) commandName() string { return "WriteExportManifest" }
