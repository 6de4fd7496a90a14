// Copyright 2026 The Keyforge Authors
//
// https://github.com/lockwell/keyforge
//
// Licensed under the MIT License. See LICENSE file in the project root for
// full license information.

package main

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/lockwell/keyforge/internal/model"
)

const eventLogPath = "events.json"

type eventEnvelope struct {
	ID            uuid.UUID       `json:"id"`
	CorrelationID uuid.UUID       `json:"correlation_id"`
	CausationID   uuid.UUID       `json:"causation_id"`
	Timestamp     time.Time       `json:"timestamp"`
	Kind          string          `json:"kind"`
	Payload       json.RawMessage `json:"payload"`
}

// encodeEvents serializes the projection's event history for durable
// storage between CLI invocations.
func encodeEvents(events []model.Event) ([]byte, error) {
	envelopes := make([]eventEnvelope, 0, len(events))
	for _, e := range events {
		payload, err := json.Marshal(e.Payload)
		if err != nil {
			return nil, fmt.Errorf("encoding event %s: %w", e.Kind(), err)
		}
		envelopes = append(envelopes, eventEnvelope{
			ID:            e.ID,
			CorrelationID: e.CorrelationID,
			CausationID:   e.CausationID,
			Timestamp:     e.Timestamp,
			Kind:          e.Kind(),
			Payload:       payload,
		})
	}
	return json.MarshalIndent(envelopes, "", "  ")
}

// decodeEvents is the inverse of encodeEvents, reconstructing typed
// EventPayload values from their recorded kind tag.
func decodeEvents(data []byte) ([]model.Event, error) {
	if len(data) == 0 {
		return nil, nil
	}
	var envelopes []eventEnvelope
	if err := json.Unmarshal(data, &envelopes); err != nil {
		return nil, fmt.Errorf("decoding event log: %w", err)
	}

	events := make([]model.Event, 0, len(envelopes))
	for _, env := range envelopes {
		payload, err := decodePayload(env.Kind, env.Payload)
		if err != nil {
			return nil, fmt.Errorf("decoding event %s: %w", env.Kind, err)
		}
		events = append(events, model.NewEvent(env.ID, env.CorrelationID, env.CausationID, env.Timestamp, payload))
	}
	return events, nil
}

func decodePayload(kind string, raw json.RawMessage) (model.EventPayload, error) {
	var payload model.EventPayload
	switch kind {
	case "MasterSeedDerived":
		payload = &model.MasterSeedDerived{}
	case "RootCAGenerated":
		payload = &model.RootCAGenerated{}
	case "IntermediateCAGenerated":
		payload = &model.IntermediateCAGenerated{}
	case "ServerCertGenerated":
		payload = &model.ServerCertGenerated{}
	case "UserCertGenerated":
		payload = &model.UserCertGenerated{}
	case "SshKeypairGenerated":
		payload = &model.SSHKeypairGenerated{}
	case "PgpKeypairGenerated":
		payload = &model.PGPKeypairGenerated{}
	case "PivSlotProvisioned":
		payload = &model.PIVSlotProvisioned{}
	case "NatsOperatorCreated":
		payload = &model.NatsOperatorCreated{}
	case "NatsAccountCreated":
		payload = &model.NatsAccountCreated{}
	case "NatsUserCreated":
		payload = &model.NatsUserCreated{}
	case "ExportManifestWritten":
		payload = &model.ExportManifestWritten{}
	case "SystemTaskCancelled":
		payload = &model.SystemTaskCancelled{}
	case "CommandFailed":
		payload = &model.CommandFailed{}
	default:
		return nil, fmt.Errorf("unknown event kind %q", kind)
	}
	if err := json.Unmarshal(raw, payload); err != nil {
		return nil, err
	}
	return dereference(payload), nil
}

// dereference converts the pointer-to-struct values decodePayload builds
// (so json.Unmarshal has an addressable target) back into the plain
// struct values Apply's type switch expects.
func dereference(payload model.EventPayload) model.EventPayload {
	switch v := payload.(type) {
	case *model.MasterSeedDerived:
		return *v
	case *model.RootCAGenerated:
		return *v
	case *model.IntermediateCAGenerated:
		return *v
	case *model.ServerCertGenerated:
		return *v
	case *model.UserCertGenerated:
		return *v
	case *model.SSHKeypairGenerated:
		return *v
	case *model.PGPKeypairGenerated:
		return *v
	case *model.PIVSlotProvisioned:
		return *v
	case *model.NatsOperatorCreated:
		return *v
	case *model.NatsAccountCreated:
		return *v
	case *model.NatsUserCreated:
		return *v
	case *model.ExportManifestWritten:
		return *v
	case *model.SystemTaskCancelled:
		return *v
	case *model.CommandFailed:
		return *v
	default:
		return payload
	}
}
