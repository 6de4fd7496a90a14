// Copyright 2026 The Keyforge Authors
//
// https://github.com/lockwell/keyforge
//
// Licensed under the MIT License. See LICENSE file in the project root for
// full license information.

package model

import (
	"time"

	"github.com/google/uuid"
)

// EventPayload is implemented by every member of the closed set of event
// payload variants. The marker method keeps the set closed to this
// package: callers switch on concrete type, never on a string tag.
type EventPayload interface {
	eventKind() string
}

// Event is an immutable, time-ordered record appended to the projection
// log. ID is a UUIDv7 so that lexical and chronological order coincide.
type Event struct {
	ID            uuid.UUID
	CorrelationID uuid.UUID
	CausationID   uuid.UUID
	Timestamp     time.Time
	Payload       EventPayload
}

// Kind returns the payload's variant name, e.g. "RootCAGenerated".
func (e Event) Kind() string {
	return e.Payload.eventKind()
}

// NewEvent constructs an Event. newID is supplied by the caller (rather
// than generated here with uuid.NewV7, which reads the clock) so that
// Update remains a pure function of its inputs; the host mints real IDs
// at the effect-execution boundary.
func NewEvent(newID, correlationID, causationID uuid.UUID, timestamp time.Time, payload EventPayload) Event {
	return Event{
		ID:            newID,
		CorrelationID: correlationID,
		CausationID:   causationID,
		Timestamp:     timestamp,
		Payload:       payload,
	}
}
