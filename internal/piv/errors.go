// Copyright 2026 The Keyforge Authors
//
// https://github.com/lockwell/keyforge
//
// Licensed under the MIT License. See LICENSE file in the project root for
// full license information.

package piv

import "errors"

// Failure modes surfaced by a PIV port implementation. These are
// retryable at the host's discretion; the core re-admits the caller to a
// retry-able state rather than treating them as fatal.
var (
	ErrDeviceNotPresent   = errors.New("piv: device not present")
	ErrPinLocked          = errors.New("piv: pin locked")
	ErrUnsupportedAlgo    = errors.New("piv: unsupported algorithm for slot")
	ErrTouchTimeout       = errors.New("piv: touch timeout")
)
