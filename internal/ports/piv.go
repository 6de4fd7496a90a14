// Copyright 2026 The Keyforge Authors
//
// https://github.com/lockwell/keyforge
//
// Licensed under the MIT License. See LICENSE file in the project root for
// full license information.

package ports

import (
	"crypto"
	"crypto/x509"

	"github.com/lockwell/keyforge/internal/piv"
)

// PIV is the hardware-token provisioning port. It is satisfied by
// piv.Provisioner, kept as a distinct named interface here so the core
// depends only on the port, never on piv's concrete types beyond the
// shared Slot/SlotConfig value types.
type PIV interface {
	ListDevices() ([]string, error)
	Select(deviceID string) error
	ProvisionSlot(cfg piv.SlotConfig, pub crypto.PublicKey, cert *x509.Certificate) error
	Sign(slot piv.Slot, data []byte, pin string) ([]byte, error)
}
