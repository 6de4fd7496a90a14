// Copyright 2026 The Keyforge Authors
//
// https://github.com/lockwell/keyforge
//
// Licensed under the MIT License. See LICENSE file in the project root for
// full license information.

package model

// Effect is returned alongside the updated Projection from Update. It
// describes work for the host to perform; Update itself never performs
// it.
type Effect interface {
	effectKind() string
}

// EffectNone means no host action is required (typically because the
// Intent was a no-op, or a completion that has already been folded).
type EffectNone struct{}

func (EffectNone) effectKind() string { return "None" }

// EffectDispatch asks the host to execute Cmd, using TaskID to correlate
// the eventual PortIntent completion back to this dispatch. Suspends
// marks whether Cmd belongs to the specification's four suspension
// points (Argon2id derivation, RSA keygen, bulk manifest write, PIV
// operations) and so SHOULD run on a worker rather than inline; the host
// is free to run either kind inline, but Suspends signals where blocking
// is expected to be costly.
type EffectDispatch struct {
	TaskID   string
	Cmd      Command
	Suspends bool
}

func (EffectDispatch) effectKind() string { return "Dispatch" }

// EffectReject means validation rejected the command before dispatch.
// No event was appended and the projection is unchanged.
type EffectReject struct {
	Command string
	Reason  ReasonCode
}

func (EffectReject) effectKind() string { return "Reject" }

// suspends reports whether cmd is one of the specification's four
// suspension points.
func suspends(cmd Command) bool {
	switch cmd.(type) {
	case DeriveMasterSeed:
		return true // Argon2id
	case WriteExportManifest:
		return true // bulk manifest serialization / write
	case ProvisionPIVSlot:
		return true // PIV port operation
	default:
		return false
	}
}
