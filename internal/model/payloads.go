// Copyright 2026 The Keyforge Authors
//
// https://github.com/lockwell/keyforge
//
// Licensed under the MIT License. See LICENSE file in the project root for
// full license information.

package model

// MasterSeedDerived records a successful master-seed derivation. The
// seed bytes themselves are never placed in an event payload.
type MasterSeedDerived struct {
	OrgID string
}

func (MasterSeedDerived) eventKind() string { return "MasterSeedDerived" }

// RootCAGenerated records a successful Root CA generation. CommonName,
// Organization, Country, NotBeforeUnix, and ValidityNanos are carried so
// that a later command in a fresh process can deterministically
// reconstruct this CA's keypair and certificate from the master seed
// alone, without ever persisting a private key.
type RootCAGenerated struct {
	Subject       string
	Fingerprint   string
	CommonName    string
	Organization  string
	Country       string
	NotBeforeUnix int64
	ValidityNanos int64
}

func (RootCAGenerated) eventKind() string { return "RootCAGenerated" }

// IntermediateCAGenerated records a successful Intermediate CA
// generation signed directly by the Root CA (the only parent any
// successful generation can have, since every intermediate this core
// issues is pathlen:0 and so can never itself be a valid parent).
type IntermediateCAGenerated struct {
	Name          string
	Fingerprint   string
	CommonName    string
	Organization  string
	Country       string
	NotBeforeUnix int64
	ValidityNanos int64
	SequenceIndex uint64
}

func (IntermediateCAGenerated) eventKind() string { return "IntermediateCAGenerated" }

// ServerCertGenerated records a successful leaf server certificate
// issued by the named intermediate.
type ServerCertGenerated struct {
	CommonName       string
	IntermediateName string
	Fingerprint      string
}

func (ServerCertGenerated) eventKind() string { return "ServerCertGenerated" }

// UserCertGenerated records a successful per-person client-auth leaf
// certificate issued by the named intermediate.
type UserCertGenerated struct {
	Person           string
	IntermediateName string
	Fingerprint      string
}

func (UserCertGenerated) eventKind() string { return "UserCertGenerated" }

// SSHKeypairGenerated records a successful per-person SSH keypair
// generation.
type SSHKeypairGenerated struct {
	Person      string
	Fingerprint string
}

func (SSHKeypairGenerated) eventKind() string { return "SshKeypairGenerated" }

// PGPKeypairGenerated records a successful per-person PGP keypair
// generation.
type PGPKeypairGenerated struct {
	Person      string
	Fingerprint string
}

func (PGPKeypairGenerated) eventKind() string { return "PgpKeypairGenerated" }

// PIVSlotProvisioned records a successful hardware-token slot
// provisioning.
type PIVSlotProvisioned struct {
	Person string
	Slot   string
}

func (PIVSlotProvisioned) eventKind() string { return "PivSlotProvisioned" }

// NatsOperatorCreated records a successful Operator identity creation.
type NatsOperatorCreated struct {
	PublicKey string
}

func (NatsOperatorCreated) eventKind() string { return "NatsOperatorCreated" }

// NatsAccountCreated records a successful Account identity creation for
// the named unit.
type NatsAccountCreated struct {
	Unit      string
	PublicKey string
}

func (NatsAccountCreated) eventKind() string { return "NatsAccountCreated" }

// NatsUserCreated records a successful User identity creation for the
// named person within the named unit's account.
type NatsUserCreated struct {
	Unit      string
	Person    string
	PublicKey string
}

func (NatsUserCreated) eventKind() string { return "NatsUserCreated" }

// ExportManifestWritten records a successful export, including its root
// content-id.
type ExportManifestWritten struct {
	RootCID string
}

func (ExportManifestWritten) eventKind() string { return "ExportManifestWritten" }

// SystemTaskCancelled records that an in-flight port task was cancelled
// before it produced any other event.
type SystemTaskCancelled struct {
	TaskID string
}

func (SystemTaskCancelled) eventKind() string { return "SystemTaskCancelled" }

// CommandFailed records that a command was accepted for dispatch but its
// underlying cryptographic or port operation failed. Reason is a stable
// failure code (see errors.go), never a free-form message that might
// embed secret material.
type CommandFailed struct {
	Command string
	Reason  string
}

func (CommandFailed) eventKind() string { return "CommandFailed" }
