// Copyright 2026 The Keyforge Authors
//
// https://github.com/lockwell/keyforge
//
// Licensed under the MIT License. See LICENSE file in the project root for
// full license information.

package model

// ReasonCode is a stable, structured failure code. Reason codes are
// values, never exceptions: Update never panics and never wraps a
// sensitive payload (passphrase fragments, seed bytes) into a
// ReasonCode or its surrounding value.
type ReasonCode string

// Input errors: reported to the caller, no event emitted, model unchanged.
const (
	ReasonPassphraseTooWeak   ReasonCode = "PassphraseTooWeak"
	ReasonPassphraseMismatch  ReasonCode = "PassphraseMismatch"
	ReasonDuplicateName       ReasonCode = "DuplicateName"
	ReasonInvalidSubject      ReasonCode = "InvalidSubject"
	ReasonMasterSeedRequired  ReasonCode = "MasterSeedRequired"
	ReasonRootCARequired      ReasonCode = "RootCARequired"
	ReasonRootCAAlreadyExists ReasonCode = "RootCAAlreadyExists"
	ReasonOperatorRequired    ReasonCode = "OperatorRequired"
	ReasonOperatorExists      ReasonCode = "OperatorExists"
)

// Cryptographic errors: fatal to the enclosing command, recorded as a
// CommandFailed event, model advances to reflect the failure.
const (
	ReasonKdfFailure          ReasonCode = "KdfFailure"
	ReasonKeyGenerationReject ReasonCode = "KeyGenerationRejected"
	ReasonSignatureFailure    ReasonCode = "SignatureFailure"
)

// Constraint violations: hard fatal, must never occur if invariants are
// maintained. These are rejected synchronously at validation time
// wherever the model can detect them without dispatching crypto.
const (
	ReasonPathlenViolation         ReasonCode = "PathlenViolation"
	ReasonChainInvalid             ReasonCode = "ChainInvalid"
	ReasonCidMismatch              ReasonCode = "CidMismatch"
	ReasonDuplicateIntermediate    ReasonCode = "DuplicateIntermediateName"
	ReasonUnknownIntermediate      ReasonCode = "UnknownIntermediate"
	ReasonInvalidSubjectName       ReasonCode = "InvalidSubjectName"
)

// Port errors: retryable at the host's discretion.
const (
	ReasonDeviceNotPresent ReasonCode = "DeviceNotPresent"
	ReasonPinLocked        ReasonCode = "PinLocked"
	ReasonUnsupportedAlgo  ReasonCode = "UnsupportedAlgorithm"
	ReasonTouchTimeout     ReasonCode = "TouchTimeout"
	ReasonIoFailure        ReasonCode = "IoFailure"
	ReasonTaskCancelled    ReasonCode = "TaskCancelled"
	ReasonUnknownUnit      ReasonCode = "UnknownUnit"
	ReasonUnknownPerson    ReasonCode = "UnknownPerson"
)
