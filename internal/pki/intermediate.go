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

	"github.com/lockwell/keyforge/internal/keypair"
	"github.com/lockwell/keyforge/internal/seed"
)

// isSigningOnly reports whether cert is a pathlen:0 intermediate, i.e. a
// CA certificate that is forbidden from signing further CA certificates.
func isSigningOnly(cert *x509.Certificate) bool {
	return cert.IsCA && cert.MaxPathLenZero
}

// GenerateIntermediateCA issues an Intermediate CA named name, signed by
// parent, deriving the Intermediate's keypair from the
// "intermediate-<name>" labeled seed. The resulting certificate always
// carries pathlen=0: it may sign leaf certificates but can never be used
// to sign a further CA. If parent is itself a signing-only intermediate,
// this returns ErrPathlenViolation rather than producing a certificate.
func GenerateIntermediateCA(master seed.Master, name string, parent Issued, params IntermediateParams, sequenceIndex uint64) (Issued, error) {
	if name == "" {
		return Issued{}, ErrInvalidSubjectName
	}
	if isSigningOnly(parent.Certificate) {
		return Issued{}, ErrPathlenViolation
	}
	if !parent.Certificate.IsCA {
		return Issued{}, fmt.Errorf("pki: parent certificate %q is not a CA", parent.Certificate.Subject.CommonName)
	}

	label := IntermediateLabel(name)
	childSeed, err := seed.DeriveChild(master, label)
	if err != nil {
		return Issued{}, fmt.Errorf("pki: deriving intermediate seed: %w", err)
	}

	kp, err := keypair.Generate(childSeed, keypair.Ed25519)
	if err != nil {
		return Issued{}, fmt.Errorf("pki: generating intermediate keypair: %w", err)
	}

	notBefore := normalizeNotBefore(params.NotBefore)
	validity := params.Validity
	if validity == 0 {
		validity = DefaultIntermediateValidity
	}
	notAfter := notBefore.Add(validity)

	subject := params.Subject
	if subject.CommonName == "" {
		subject.CommonName = name
	}
	subjectName := buildName(subject)
	issuerDN := parent.Certificate.Subject.String()
	subjectDN := subjectName.String()
	serial := deriveSerial(issuerDN, subjectDN, notBefore, sequenceIndex)

	template := &x509.Certificate{
		SerialNumber:          serial,
		Subject:               subjectName,
		NotBefore:             notBefore,
		NotAfter:              notAfter,
		KeyUsage:              x509.KeyUsageCertSign | x509.KeyUsageCRLSign,
		BasicConstraintsValid: true,
		IsCA:                  true,
		MaxPathLen:            0,
		MaxPathLenZero:        true,
	}

	signer, err := parent.Keypair.Signer()
	if err != nil {
		return Issued{}, fmt.Errorf("pki: parent keypair cannot sign: %w", err)
	}

	der, err := x509.CreateCertificate(devNullRand{}, template, parent.Certificate, kp.Public, signer)
	if err != nil {
		return Issued{}, fmt.Errorf("pki: creating intermediate certificate: %w", err)
	}

	cert, err := x509.ParseCertificate(der)
	if err != nil {
		return Issued{}, fmt.Errorf("pki: parsing intermediate certificate: %w", err)
	}

	return Issued{Certificate: cert, Keypair: kp, Label: label}, nil
}
