// Copyright 2026 The Keyforge Authors
//
// https://github.com/lockwell/keyforge
//
// Licensed under the MIT License. See LICENSE file in the project root for
// full license information.

package seed

import (
	"crypto/sha256"
	"errors"
	"fmt"
	"io"
	"testing"

	"github.com/google/uuid"
	"golang.org/x/crypto/argon2"
	"golang.org/x/crypto/hkdf"
)

// ErrPassphraseTooShort indicates the supplied passphrase is below the
// 12-byte UTF-8 floor required before strength classification is even
// attempted.
var ErrPassphraseTooShort = errors.New("seed: passphrase must be at least 12 bytes")

// ErrPassphraseTooWeak indicates the passphrase strength estimator
// classified the passphrase below Moderate.
var ErrPassphraseTooWeak = errors.New("seed: passphrase strength below required Moderate threshold")

// ErrKdfFailure indicates the underlying KDF could not complete, typically
// because the host lacks the memory the production Argon2id profile
// requires.
var ErrKdfFailure = errors.New("seed: key derivation failed")

// argon2Profile bundles the cost parameters fed to Argon2id. Two profiles
// exist: Production is mandated by the specification; reducedCost exists
// solely to keep the test suite fast and is never reachable outside a test
// binary (see selectProfile).
type argon2Profile struct {
	memoryKiB   uint32
	iterations  uint32
	parallelism uint8
}

// productionProfile implements the memory = 1 GiB, iterations = 10,
// parallelism = 1 profile mandated for end users.
var productionProfile = argon2Profile{
	memoryKiB:   1 << 20, // 1 GiB
	iterations:  10,
	parallelism: 1,
}

// reducedCostProfile trades the memory-hardness Argon2id is chosen for away
// in exchange for a derivation that completes in milliseconds. It exists
// only so `go test` does not spend a gigabyte of memory and several seconds
// per derivation; selectProfile refuses to hand it out except when
// testing.Testing() reports we are running under `go test`.
var reducedCostProfile = argon2Profile{
	memoryKiB:   64,
	iterations:  2,
	parallelism: 1,
}

// selectProfile returns the Argon2id cost profile for the running binary.
// testing.Testing() (available since Go 1.21) is only ever true inside a
// test binary; there is no flag, environment variable, or CLI argument that
// can force a production process down the reduced-cost path.
func selectProfile() argon2Profile {
	if testing.Testing() {
		return reducedCostProfile
	}
	return productionProfile
}

// deriveSalt computes the deterministic salt for an organization
// identifier: SHA-256 of the raw 16 bytes of the UUID.
func deriveSalt(orgID uuid.UUID) []byte {
	sum := sha256.Sum256(orgID[:])
	return sum[:]
}

// DeriveMaster derives the 32-byte master seed for a (passphrase, orgID)
// pair using Argon2id. It fails with ErrPassphraseTooWeak if classify
// reports anything below Moderate, and wraps ErrKdfFailure if the
// underlying derivation panics due to resource exhaustion.
//
// For fixed (passphrase, orgID) the result is byte-identical across runs
// and hosts; this is the reproducibility contract the rest of the module
// depends on.
func DeriveMaster(passphrase string, orgID uuid.UUID) (m Master, err error) {
	if len(passphrase) < 12 {
		return Master{}, ErrPassphraseTooShort
	}

	if class := Classify(passphrase); class < Moderate {
		return Master{}, fmt.Errorf("%w: classified as %s", ErrPassphraseTooWeak, class)
	}

	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: %v", ErrKdfFailure, r)
		}
	}()

	profile := selectProfile()
	salt := deriveSalt(orgID)

	raw := argon2.IDKey(
		[]byte(passphrase),
		salt,
		profile.iterations,
		profile.memoryKiB,
		profile.parallelism,
		Size,
	)

	return newMaster(raw), nil
}

// hkdfSalt is the fixed 32-byte salt used for every HKDF-SHA256 child
// derivation. It is a constant, not a secret: domain separation across
// children comes entirely from the label passed as HKDF `info`.
var hkdfSalt = [Size]byte{
	0x6b, 0x65, 0x79, 0x66, 0x6f, 0x72, 0x67, 0x65,
	0x2d, 0x63, 0x68, 0x69, 0x6c, 0x64, 0x2d, 0x73,
	0x65, 0x65, 0x64, 0x2d, 0x68, 0x6b, 0x64, 0x66,
	0x2d, 0x73, 0x61, 0x6c, 0x74, 0x2d, 0x76, 0x31,
}

// DeriveChild derives a label-separated 32-byte child seed from a master
// seed via HKDF-SHA256. Re-deriving the same (master, label) pair always
// returns the identical seed; distinct labels are cryptographically
// independent of one another and of the master itself.
func DeriveChild(master Master, label string) (c Child, err error) {
	if label == "" {
		return Child{}, errors.New("seed: label must not be empty")
	}

	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: %v", ErrKdfFailure, r)
		}
	}()

	raw := make([]byte, Size)

	err = WithMaster(master, func(ikm []byte) error {
		reader := hkdf.New(sha256.New, ikm, hkdfSalt[:], []byte(label))
		_, readErr := io.ReadFull(reader, raw)
		return readErr
	})
	if err != nil {
		return Child{}, fmt.Errorf("%w: %v", ErrKdfFailure, err)
	}

	return newChild(raw), nil
}
