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

// Origin tags where an Intent came from, per the five categories the
// specification distinguishes.
type Origin int

// Intent origins.
const (
	OriginUI Origin = iota
	OriginPort
	OriginDomain
	OriginSystem
	OriginError
)

func (o Origin) String() string {
	switch o {
	case OriginUI:
		return "ui"
	case OriginPort:
		return "port"
	case OriginDomain:
		return "domain"
	case OriginSystem:
		return "system"
	case OriginError:
		return "error"
	default:
		return "unknown"
	}
}

// Intent is implemented by every value Update accepts. The set is closed
// to this package; Update switches on concrete type, never on a string.
type Intent interface {
	Origin() Origin
}

// UIIntent wraps a user-initiated Command. CorrelationID identifies the
// whole command's causal thread; it is minted by the host (never inside
// Update, which must not read the clock or a random source). Update does
// not carry it into the event the command eventually produces: that event
// uses the resolving PortIntent's EventID as its correlation and causation
// id.
type UIIntent struct {
	TaskID        string
	CorrelationID uuid.UUID
	Cmd           Command
}

func (UIIntent) Origin() Origin { return OriginUI }

// PortOutcome is the result of a previously dispatched Effect completing
// out of line. A successful outcome supplies the EventPayload to append;
// a failed one supplies a ReasonCode instead.
type PortOutcome struct {
	Success bool
	Reason  ReasonCode
	Payload EventPayload
}

// PortIntent re-enters the core with the outcome of a suspended task
// (Argon2id derivation, RSA keygen, bulk manifest write, or a PIV
// operation). EventID and Timestamp are minted by the host at the
// boundary where the task actually completed.
type PortIntent struct {
	TaskID    string
	EventID   uuid.UUID
	Timestamp time.Time
	Outcome   PortOutcome
}

func (PortIntent) Origin() Origin { return OriginPort }

// DomainIntent carries a pre-formed event about an aggregate change that
// did not originate from this core's own command dispatch (for example,
// replaying history from storage).
type DomainIntent struct {
	Event Event
}

func (DomainIntent) Origin() Origin { return OriginDomain }

// SystemIntentKind enumerates system-originated intents.
type SystemIntentKind string

// System intent kinds.
const (
	SystemInit      SystemIntentKind = "init"
	SystemTeardown  SystemIntentKind = "teardown"
	SystemTick      SystemIntentKind = "tick"
	SystemCancelled SystemIntentKind = "cancelled"
)

// SystemIntent carries a lifecycle or cancellation signal. TaskID is set
// only for SystemCancelled.
type SystemIntent struct {
	Kind   SystemIntentKind
	TaskID string
}

func (SystemIntent) Origin() Origin { return OriginSystem }

// ErrorIntent carries a fault that originated outside any command
// dispatch (for example, a port reporting an unsolicited I/O error).
type ErrorIntent struct {
	Reason ReasonCode
}

func (ErrorIntent) Origin() Origin { return OriginError }
