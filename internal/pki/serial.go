// Copyright 2026 The Keyforge Authors
//
// https://github.com/lockwell/keyforge
//
// Licensed under the MIT License. See LICENSE file in the project root for
// full license information.

package pki

import (
	"crypto/sha256"
	"encoding/binary"
	"math/big"
	"time"
)

// deriveSerial computes a deterministic 128-bit unsigned serial number from
// a hash of (issuerDN || subjectDN || notBefore || sequenceIndex), per the
// specification's requirement that serial numbers never depend on
// wall-clock randomness. The top bit of the 128-bit digest prefix is
// cleared so the value always encodes as a positive ASN.1 INTEGER
// regardless of DER's two's-complement interpretation.
func deriveSerial(issuerDN, subjectDN string, notBefore time.Time, sequenceIndex uint64) *big.Int {
	h := sha256.New()
	h.Write([]byte(issuerDN))
	h.Write([]byte{0x00})
	h.Write([]byte(subjectDN))
	h.Write([]byte{0x00})

	var tsBuf [8]byte
	binary.BigEndian.PutUint64(tsBuf[:], uint64(notBefore.Unix()))
	h.Write(tsBuf[:])

	var seqBuf [8]byte
	binary.BigEndian.PutUint64(seqBuf[:], sequenceIndex)
	h.Write(seqBuf[:])

	digest := h.Sum(nil)

	serialBytes := make([]byte, 16)
	copy(serialBytes, digest[:16])
	serialBytes[0] &^= 0x80

	return new(big.Int).SetBytes(serialBytes)
}
