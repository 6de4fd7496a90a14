// Copyright 2026 The Keyforge Authors
//
// https://github.com/lockwell/keyforge
//
// Licensed under the MIT License. See LICENSE file in the project root for
// full license information.

package model

import "github.com/google/uuid"

// IntermediateState is a single intermediate CA's position in its state
// machine (Absent is represented by the key's absence from
// Projection.Intermediates).
type IntermediateState int

// Intermediate CA states.
const (
	IntermediateGenerated IntermediateState = iota
	IntermediateIssuing
	IntermediateRetired
)

// IntermediateRecord is the projected view of one Intermediate CA.
type IntermediateRecord struct {
	Name        string
	Fingerprint string
	State       IntermediateState
}

// ServerCertRecord is the projected view of one issued server
// certificate.
type ServerCertRecord struct {
	CommonName       string
	IntermediateName string
	Fingerprint      string
}

// UserCertRecord is the projected view of one issued client-auth leaf
// certificate.
type UserCertRecord struct {
	Person           string
	IntermediateName string
	Fingerprint      string
}

// Projection is the materialized read model: a pure fold of the event
// log. Every field is copy-on-write; no method mutates its receiver.
type Projection struct {
	MasterSeedPresent bool
	OrgID             uuid.UUID

	RootCASubject     string
	RootCAFingerprint string

	Intermediates map[string]IntermediateRecord
	ServerCerts   []ServerCertRecord
	UserCerts     []UserCertRecord

	SSHFingerprints map[string]string
	PGPFingerprints map[string]string

	PIVSlots map[string]map[string]bool

	NatsOperatorPublicKey string
	NatsAccounts          map[string]string
	NatsUsers             map[string]string

	ExportRootCID string

	Events []Event

	// pending holds commands dispatched via EffectDispatch that have not
	// yet been resolved by a matching PortIntent.
	pending map[string]Command
}

// NewProjection returns the empty initial projection: no master seed, no
// certificates, no identities, no history.
func NewProjection() Projection {
	return Projection{
		Intermediates:   map[string]IntermediateRecord{},
		SSHFingerprints: map[string]string{},
		PGPFingerprints: map[string]string{},
		PIVSlots:        map[string]map[string]bool{},
		NatsAccounts:    map[string]string{},
		NatsUsers:       map[string]string{},
		pending:         map[string]Command{},
	}
}

// Fold replays events from the empty projection. Fold(events) must equal
// Fold(events ++ []) and equal folding one at a time via Apply — Apply is
// exactly the per-event step Fold uses internally.
func Fold(events []Event) Projection {
	p := NewProjection()
	for _, e := range events {
		p = Apply(p, e)
	}
	return p
}

// clone returns a shallow copy of p with freshly allocated maps and
// slices, so callers can mutate the copy's top-level collections without
// affecting p.
func (p Projection) clone() Projection {
	next := p
	next.Intermediates = make(map[string]IntermediateRecord, len(p.Intermediates))
	for k, v := range p.Intermediates {
		next.Intermediates[k] = v
	}
	next.ServerCerts = append([]ServerCertRecord(nil), p.ServerCerts...)
	next.UserCerts = append([]UserCertRecord(nil), p.UserCerts...)
	next.SSHFingerprints = make(map[string]string, len(p.SSHFingerprints))
	for k, v := range p.SSHFingerprints {
		next.SSHFingerprints[k] = v
	}
	next.PGPFingerprints = make(map[string]string, len(p.PGPFingerprints))
	for k, v := range p.PGPFingerprints {
		next.PGPFingerprints[k] = v
	}
	next.PIVSlots = make(map[string]map[string]bool, len(p.PIVSlots))
	for person, slots := range p.PIVSlots {
		cloned := make(map[string]bool, len(slots))
		for slot, v := range slots {
			cloned[slot] = v
		}
		next.PIVSlots[person] = cloned
	}
	next.NatsAccounts = make(map[string]string, len(p.NatsAccounts))
	for k, v := range p.NatsAccounts {
		next.NatsAccounts[k] = v
	}
	next.NatsUsers = make(map[string]string, len(p.NatsUsers))
	for k, v := range p.NatsUsers {
		next.NatsUsers[k] = v
	}
	next.Events = append([]Event(nil), p.Events...)
	next.pending = make(map[string]Command, len(p.pending))
	for k, v := range p.pending {
		next.pending[k] = v
	}
	return next
}

// withPending returns a copy of p with cmd recorded as awaiting
// completion under taskID.
func (p Projection) withPending(taskID string, cmd Command) Projection {
	next := p.clone()
	next.pending[taskID] = cmd
	return next
}

// resolvePending returns the command pending under taskID (if any) and a
// copy of p with that entry removed.
func (p Projection) resolvePending(taskID string) (Command, Projection, bool) {
	cmd, ok := p.pending[taskID]
	if !ok {
		return nil, p, false
	}
	next := p.clone()
	delete(next.pending, taskID)
	return cmd, next, true
}

func natsUserKey(unit, person string) string {
	return unit + "/" + person
}

// Apply is the single per-event step used by both Fold and the live
// Update path, so that fold(events ++ [e]) = apply(fold(events), e)
// holds by construction.
func Apply(p Projection, e Event) Projection {
	next := p.clone()
	next.Events = append(next.Events, e)

	switch payload := e.Payload.(type) {
	case MasterSeedDerived:
		next.MasterSeedPresent = true

	case RootCAGenerated:
		next.RootCASubject = payload.Subject
		next.RootCAFingerprint = payload.Fingerprint

	case IntermediateCAGenerated:
		next.Intermediates[payload.Name] = IntermediateRecord{
			Name:        payload.Name,
			Fingerprint: payload.Fingerprint,
			State:       IntermediateGenerated,
		}

	case ServerCertGenerated:
		next.ServerCerts = append(next.ServerCerts, ServerCertRecord{
			CommonName:       payload.CommonName,
			IntermediateName: payload.IntermediateName,
			Fingerprint:      payload.Fingerprint,
		})
		if rec, ok := next.Intermediates[payload.IntermediateName]; ok {
			rec.State = IntermediateIssuing
			next.Intermediates[payload.IntermediateName] = rec
		}

	case UserCertGenerated:
		next.UserCerts = append(next.UserCerts, UserCertRecord{
			Person:           payload.Person,
			IntermediateName: payload.IntermediateName,
			Fingerprint:      payload.Fingerprint,
		})
		if rec, ok := next.Intermediates[payload.IntermediateName]; ok {
			rec.State = IntermediateIssuing
			next.Intermediates[payload.IntermediateName] = rec
		}

	case SSHKeypairGenerated:
		next.SSHFingerprints[payload.Person] = payload.Fingerprint

	case PGPKeypairGenerated:
		next.PGPFingerprints[payload.Person] = payload.Fingerprint

	case PIVSlotProvisioned:
		slots, ok := next.PIVSlots[payload.Person]
		if !ok {
			slots = map[string]bool{}
		}
		slots[payload.Slot] = true
		next.PIVSlots[payload.Person] = slots

	case NatsOperatorCreated:
		next.NatsOperatorPublicKey = payload.PublicKey

	case NatsAccountCreated:
		next.NatsAccounts[payload.Unit] = payload.PublicKey

	case NatsUserCreated:
		next.NatsUsers[natsUserKey(payload.Unit, payload.Person)] = payload.PublicKey

	case ExportManifestWritten:
		next.ExportRootCID = payload.RootCID

	case SystemTaskCancelled, CommandFailed:
		// No projected state beyond the event itself; the event's
		// presence in history is the record.
	}

	return next
}
