// Copyright 2026 The Keyforge Authors
//
// https://github.com/lockwell/keyforge
//
// Licensed under the MIT License. See LICENSE file in the project root for
// full license information.

package model

import (
	"strings"

	"github.com/lockwell/keyforge/internal/seed"
)

// pivSlots is the fixed set of hardware-token slots the PIV port
// recognizes.
var pivSlots = map[string]bool{
	"9A": true, // Authentication
	"9C": true, // DigitalSignature
	"9D": true, // KeyManagement
	"9E": true, // CardAuthentication
}

// Update is the core's single entry point: a total, pure function of the
// current Projection and an Intent. It never panics, never blocks, and
// never performs I/O or cryptography itself — every effect is returned
// as a value for the host to execute.
func Update(p Projection, intent Intent) (Projection, Effect) {
	switch in := intent.(type) {
	case UIIntent:
		return updateUI(p, in)
	case PortIntent:
		return updatePort(p, in)
	case DomainIntent:
		return Apply(p, in.Event), EffectNone{}
	case SystemIntent:
		return updateSystem(p, in)
	case ErrorIntent:
		return p, EffectReject{Command: "", Reason: in.Reason}
	default:
		return p, EffectNone{}
	}
}

func updateSystem(p Projection, in SystemIntent) (Projection, Effect) {
	if in.Kind != SystemCancelled {
		return p, EffectNone{}
	}
	_, next, ok := p.resolvePending(in.TaskID)
	if !ok {
		return p, EffectNone{}
	}
	return next, EffectNone{}
}

func updateUI(p Projection, in UIIntent) (Projection, Effect) {
	reason, ok := validate(p, in.Cmd)
	if !ok {
		return p, EffectReject{Command: in.Cmd.commandName(), Reason: reason}
	}
	next := p.withPending(in.TaskID, in.Cmd)
	return next, EffectDispatch{TaskID: in.TaskID, Cmd: in.Cmd, Suspends: suspends(in.Cmd)}
}

func updatePort(p Projection, in PortIntent) (Projection, Effect) {
	cmd, next, ok := p.resolvePending(in.TaskID)
	if !ok {
		return p, EffectNone{}
	}

	if !in.Outcome.Success {
		failureEvent := NewEvent(in.EventID, in.EventID, in.EventID, in.Timestamp, CommandFailed{
			Command: cmd.commandName(),
			Reason:  string(in.Outcome.Reason),
		})
		return Apply(next, failureEvent), EffectNone{}
	}

	event := NewEvent(in.EventID, in.EventID, in.EventID, in.Timestamp, in.Outcome.Payload)
	return Apply(next, event), EffectNone{}
}

// validate checks cmd's preconditions against p. It returns (reason,
// false) on rejection and ("", true) on acceptance. Every check here is
// one the model can make without invoking cryptography — anything that
// requires the actual key material (e.g. whether an Ed25519 signature
// verifies) is instead checked by the effect executor and reported back
// as a failed PortOutcome.
func validate(p Projection, cmd Command) (ReasonCode, bool) {
	switch c := cmd.(type) {
	case DeriveMasterSeed:
		if c.Passphrase != c.Confirm {
			return ReasonPassphraseMismatch, false
		}
		if seed.Classify(c.Passphrase) < seed.Moderate {
			return ReasonPassphraseTooWeak, false
		}
		return "", true

	case GenerateRootCA:
		if !p.MasterSeedPresent {
			return ReasonMasterSeedRequired, false
		}
		if p.RootCAFingerprint != "" {
			return ReasonRootCAAlreadyExists, false
		}
		if strings.TrimSpace(c.CommonName) == "" {
			return ReasonInvalidSubjectName, false
		}
		return "", true

	case GenerateIntermediateCA:
		if !p.MasterSeedPresent {
			return ReasonMasterSeedRequired, false
		}
		if c.ParentName != "" {
			// Any existing intermediate is pathlen:0 and so can never
			// sign a further CA, regardless of the requested name.
			if _, isIntermediate := p.Intermediates[c.ParentName]; isIntermediate {
				return ReasonPathlenViolation, false
			}
		} else if p.RootCAFingerprint == "" {
			return ReasonRootCARequired, false
		}
		if strings.TrimSpace(c.Name) == "" {
			return ReasonInvalidSubjectName, false
		}
		if _, exists := p.Intermediates[c.Name]; exists {
			return ReasonDuplicateIntermediate, false
		}
		return "", true

	case GenerateServerCert:
		if !p.MasterSeedPresent {
			return ReasonMasterSeedRequired, false
		}
		if strings.TrimSpace(c.CommonName) == "" {
			return ReasonInvalidSubjectName, false
		}
		if _, exists := p.Intermediates[c.IntermediateName]; !exists {
			return ReasonUnknownIntermediate, false
		}
		return "", true

	case GenerateUserCert:
		if !p.MasterSeedPresent {
			return ReasonMasterSeedRequired, false
		}
		if strings.TrimSpace(c.Person) == "" {
			return ReasonUnknownPerson, false
		}
		if _, exists := p.Intermediates[c.IntermediateName]; !exists {
			return ReasonUnknownIntermediate, false
		}
		return "", true

	case GenerateSSHKeypair:
		if !p.MasterSeedPresent {
			return ReasonMasterSeedRequired, false
		}
		if strings.TrimSpace(c.Person) == "" {
			return ReasonUnknownPerson, false
		}
		return "", true

	case GeneratePGPKeypair:
		if !p.MasterSeedPresent {
			return ReasonMasterSeedRequired, false
		}
		if strings.TrimSpace(c.Person) == "" {
			return ReasonUnknownPerson, false
		}
		return "", true

	case ProvisionPIVSlot:
		if !p.MasterSeedPresent {
			return ReasonMasterSeedRequired, false
		}
		if strings.TrimSpace(c.Person) == "" {
			return ReasonUnknownPerson, false
		}
		if !pivSlots[c.Slot] {
			return ReasonUnsupportedAlgo, false
		}
		return "", true

	case GenerateNatsOperator:
		if !p.MasterSeedPresent {
			return ReasonMasterSeedRequired, false
		}
		if p.NatsOperatorPublicKey != "" {
			return ReasonOperatorExists, false
		}
		return "", true

	case GenerateNatsAccount:
		if !p.MasterSeedPresent {
			return ReasonMasterSeedRequired, false
		}
		if p.NatsOperatorPublicKey == "" {
			return ReasonOperatorRequired, false
		}
		if strings.TrimSpace(c.Unit) == "" {
			return ReasonUnknownUnit, false
		}
		if _, exists := p.NatsAccounts[c.Unit]; exists {
			return ReasonDuplicateName, false
		}
		return "", true

	case GenerateNatsUser:
		if !p.MasterSeedPresent {
			return ReasonMasterSeedRequired, false
		}
		if _, exists := p.NatsAccounts[c.Unit]; !exists {
			return ReasonUnknownUnit, false
		}
		if strings.TrimSpace(c.Person) == "" {
			return ReasonUnknownPerson, false
		}
		return "", true

	case WriteExportManifest:
		if !p.MasterSeedPresent {
			return ReasonMasterSeedRequired, false
		}
		return "", true

	default:
		return ReasonInvalidSubject, false
	}
}
