// Copyright 2026 The Keyforge Authors
//
// https://github.com/lockwell/keyforge
//
// Licensed under the MIT License. See LICENSE file in the project root for
// full license information.

package piv

import (
	"crypto"
	"crypto/x509"
	"fmt"
	"sync"
)

// Provisioner is the capability interface the core's PIV effect executor
// drives. A hardware-backed implementation talks to a physical token
// over its own transport (out of scope here); NoOpProvisioner below
// satisfies the same interface for hosts with no token attached.
type Provisioner interface {
	ListDevices() ([]string, error)
	Select(deviceID string) error
	ProvisionSlot(cfg SlotConfig, pub crypto.PublicKey, cert *x509.Certificate) error
	Sign(slot Slot, data []byte, pin string) ([]byte, error)
}

// NoOpProvisioner records provisioning requests in memory without
// talking to any hardware. It always reports ErrDeviceNotPresent for
// Select and Sign, since there is no token to select or sign with, but
// accepts ProvisionSlot so that the generation pipeline can be exercised
// end to end on a host with no attached device.
type NoOpProvisioner struct {
	mu          sync.Mutex
	provisioned map[Slot]struct {
		pub  crypto.PublicKey
		cert *x509.Certificate
	}
}

// NewNoOpProvisioner returns a NoOpProvisioner ready for use.
func NewNoOpProvisioner() *NoOpProvisioner {
	return &NoOpProvisioner{
		provisioned: map[Slot]struct {
			pub  crypto.PublicKey
			cert *x509.Certificate
		}{},
	}
}

func (n *NoOpProvisioner) ListDevices() ([]string, error) {
	return nil, nil
}

func (n *NoOpProvisioner) Select(deviceID string) error {
	return fmt.Errorf("%w: %s", ErrDeviceNotPresent, deviceID)
}

func (n *NoOpProvisioner) ProvisionSlot(cfg SlotConfig, pub crypto.PublicKey, cert *x509.Certificate) error {
	if !cfg.Slot.Valid() {
		return ErrUnsupportedAlgo
	}
	n.mu.Lock()
	defer n.mu.Unlock()
	n.provisioned[cfg.Slot] = struct {
		pub  crypto.PublicKey
		cert *x509.Certificate
	}{pub: pub, cert: cert}
	return nil
}

func (n *NoOpProvisioner) Sign(slot Slot, data []byte, pin string) ([]byte, error) {
	return nil, ErrDeviceNotPresent
}

// Provisioned reports whether slot has been provisioned in this session.
func (n *NoOpProvisioner) Provisioned(slot Slot) bool {
	n.mu.Lock()
	defer n.mu.Unlock()
	_, ok := n.provisioned[slot]
	return ok
}
