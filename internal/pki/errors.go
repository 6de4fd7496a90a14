// Copyright 2026 The Keyforge Authors
//
// https://github.com/lockwell/keyforge
//
// Licensed under the MIT License. See LICENSE file in the project root for
// full license information.

package pki

import "errors"

// ErrPathlenViolation indicates an attempt to sign a further CA certificate
// from a signing-only (pathlen:0) Intermediate. This is a hard, fatal
// invariant: no caller-supplied option can bypass it.
var ErrPathlenViolation = errors.New("pki: intermediate CA is signing-only (pathlen 0); cannot issue a sub-CA")

// ErrInvalidSignature indicates a certificate's signature did not verify
// against its claimed issuer.
var ErrInvalidSignature = errors.New("pki: invalid signature")

// ErrDuplicateIntermediateName indicates an Intermediate CA name collision
// under the same Root.
var ErrDuplicateIntermediateName = errors.New("pki: duplicate intermediate CA name")

// ErrUnknownIntermediate indicates a reference to an Intermediate CA name
// that has not been generated.
var ErrUnknownIntermediate = errors.New("pki: unknown intermediate CA")

// ErrInvalidSubjectName indicates an empty or otherwise invalid subject
// common name.
var ErrInvalidSubjectName = errors.New("pki: invalid subject name")

// ErrInvalidChain indicates verify_chain failed; the wrapped error
// describes the specific reason (expired, signature mismatch, constraint
// violation).
var ErrInvalidChain = errors.New("pki: invalid certificate chain")
