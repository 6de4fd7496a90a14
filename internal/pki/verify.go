// Copyright 2026 The Keyforge Authors
//
// https://github.com/lockwell/keyforge
//
// Licensed under the MIT License. See LICENSE file in the project root for
// full license information.

package pki

import (
	"crypto/x509"
	"fmt"
	"time"
)

// VerifyChain checks that leaf chains up through intermediates to root:
// every signature verifies, root and the full chain are within their
// validity windows at the supplied instant, and every intermediate in the
// chain is a valid, constraint-respecting CA. It wraps ErrInvalidChain
// with a specific reason on failure.
func VerifyChain(leaf *x509.Certificate, intermediates []*x509.Certificate, root *x509.Certificate, at time.Time) error {
	roots := x509.NewCertPool()
	roots.AddCert(root)

	inters := x509.NewCertPool()
	for _, c := range intermediates {
		inters.AddCert(c)
	}

	for _, c := range intermediates {
		if !isSigningOnly(c) {
			return fmt.Errorf("%w: intermediate %q is not constrained to pathlen 0", ErrInvalidChain, c.Subject.CommonName)
		}
	}

	opts := x509.VerifyOptions{
		Roots:         roots,
		Intermediates: inters,
		CurrentTime:   at,
		KeyUsages:     []x509.ExtKeyUsage{x509.ExtKeyUsageAny},
	}

	if _, err := leaf.Verify(opts); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidChain, err)
	}

	return nil
}

// VerifySignedBy checks that child's signature verifies under parent's
// public key, independent of validity windows or constraints, without
// running a full path validation.
func VerifySignedBy(child, parent *x509.Certificate) error {
	if err := child.CheckSignatureFrom(parent); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidSignature, err)
	}
	return nil
}
