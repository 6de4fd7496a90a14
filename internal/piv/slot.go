// Copyright 2026 The Keyforge Authors
//
// https://github.com/lockwell/keyforge
//
// Licensed under the MIT License. See LICENSE file in the project root for
// full license information.

package piv

// Slot identifies one of the four standardized PIV key slots.
type Slot string

// The fixed set of PIV slots this core provisions.
const (
	SlotAuthentication  Slot = "9A"
	SlotDigitalSignature Slot = "9C"
	SlotKeyManagement    Slot = "9D"
	SlotCardAuthentication Slot = "9E"
)

// Slots lists every recognized slot, in a stable order.
var Slots = []Slot{SlotAuthentication, SlotDigitalSignature, SlotKeyManagement, SlotCardAuthentication}

func (s Slot) Valid() bool {
	switch s {
	case SlotAuthentication, SlotDigitalSignature, SlotKeyManagement, SlotCardAuthentication:
		return true
	default:
		return false
	}
}

// TouchPolicy governs whether a slot requires a physical touch to use.
// The specification leaves Key Management's default inconsistent across
// source documents; this core defaults every slot, Key Management
// included, to TouchNotRequired and requires callers to opt into
// TouchRequired explicitly.
type TouchPolicy string

const (
	TouchNotRequired TouchPolicy = "not-required"
	TouchRequired    TouchPolicy = "required"
)

// SlotConfig is the per-slot provisioning configuration a caller
// supplies.
type SlotConfig struct {
	Slot        Slot
	TouchPolicy TouchPolicy
	PIN         string
}

// DefaultSlotConfig returns slot's configuration with TouchNotRequired,
// the documented default for every slot including Key Management.
func DefaultSlotConfig(slot Slot, pin string) SlotConfig {
	return SlotConfig{Slot: slot, TouchPolicy: TouchNotRequired, PIN: pin}
}
