// Copyright 2026 The Keyforge Authors
//
// https://github.com/lockwell/keyforge
//
// Licensed under the MIT License. See LICENSE file in the project root for
// full license information.

package pki

import (
	"crypto/sha256"
	"crypto/x509"
	"encoding/hex"
	"strings"

	"github.com/lockwell/keyforge/internal/textutils"
)

// Fingerprint returns the lowercase, colon-delimited SHA-256 fingerprint
// of cert's raw DER bytes (e.g. "a1:b2:c3:...").
func Fingerprint(cert *x509.Certificate) string {
	sum := sha256.Sum256(cert.Raw)
	hexStr := hex.EncodeToString(sum[:])
	return strings.ToLower(textutils.InsertDelimiter(hexStr, ":", 2))
}
