// Copyright 2026 The Keyforge Authors
//
// https://github.com/lockwell/keyforge
//
// Licensed under the MIT License. See LICENSE file in the project root for
// full license information.

package natsid

import "errors"

// ErrUnknownUnit indicates a User was requested for a unit with no
// previously generated Account.
var ErrUnknownUnit = errors.New("natsid: unknown organizational unit")

// ErrUnknownPerson indicates an operation referenced a person with no
// corresponding generated identity.
var ErrUnknownPerson = errors.New("natsid: unknown person")

// ErrSignatureFailure indicates JWT signing failed. The specification
// notes this should be unreachable given upstream invariants; surfacing
// it indicates a bug in key derivation, not a recoverable runtime
// condition.
var ErrSignatureFailure = errors.New("natsid: signature failure")
