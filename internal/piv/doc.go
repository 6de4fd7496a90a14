// Copyright 2026 The Keyforge Authors
//
// https://github.com/lockwell/keyforge
//
// Licensed under the MIT License. See LICENSE file in the project root for
// full license information.

// Package piv defines the fixed set of hardware-token slots this core
// provisions and a default, no-op provisioner suitable for hosts with no
// hardware token attached. The actual hardware transport protocol is out
// of scope for this module; a real PIV implementation is injected at
// construction behind the ports.PIV interface.
package piv
