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

// GenerateServerCert issues a serverAuth leaf certificate for commonName,
// signed by the named intermediate. sans may mix DNS names, IP addresses,
// and email addresses; each entry is classified automatically. Fails with
// a plain "issuer is not a CA" error if intermediate is not a CA.
func GenerateServerCert(master seed.Master, commonName string, sans []string, intermediate Issued, params ServerParams, sequenceIndex uint64) (Issued, error) {
	if commonName == "" {
		return Issued{}, ErrInvalidSubjectName
	}
	if !intermediate.Certificate.IsCA {
		return Issued{}, fmt.Errorf("pki: issuer %q is not a CA", intermediate.Certificate.Subject.CommonName)
	}

	label := ServerLabel(commonName)
	childSeed, err := seed.DeriveChild(master, label)
	if err != nil {
		return Issued{}, fmt.Errorf("pki: deriving server seed: %w", err)
	}

	kp, err := keypair.Generate(childSeed, keypair.Ed25519)
	if err != nil {
		return Issued{}, fmt.Errorf("pki: generating server keypair: %w", err)
	}

	notBefore := normalizeNotBefore(params.NotBefore)
	validity := params.Validity
	if validity == 0 {
		validity = DefaultServerValidity
	}
	notAfter := notBefore.Add(validity)

	subjectName := buildName(Subject{CommonName: commonName})
	issuerDN := intermediate.Certificate.Subject.String()
	subjectDN := subjectName.String()
	serial := deriveSerial(issuerDN, subjectDN, notBefore, sequenceIndex)

	dnsNames, ips, emails := splitSANs(sans)

	template := &x509.Certificate{
		SerialNumber:          serial,
		Subject:               subjectName,
		NotBefore:             notBefore,
		NotAfter:              notAfter,
		KeyUsage:              x509.KeyUsageDigitalSignature | x509.KeyUsageKeyEncipherment,
		ExtKeyUsage:           []x509.ExtKeyUsage{x509.ExtKeyUsageServerAuth},
		BasicConstraintsValid: true,
		IsCA:                  false,
		DNSNames:              dnsNames,
		IPAddresses:           ips,
		EmailAddresses:        emails,
	}

	signer, err := intermediate.Keypair.Signer()
	if err != nil {
		return Issued{}, fmt.Errorf("pki: intermediate keypair cannot sign: %w", err)
	}

	der, err := x509.CreateCertificate(devNullRand{}, template, intermediate.Certificate, kp.Public, signer)
	if err != nil {
		return Issued{}, fmt.Errorf("pki: creating server certificate: %w", err)
	}

	cert, err := x509.ParseCertificate(der)
	if err != nil {
		return Issued{}, fmt.Errorf("pki: parsing server certificate: %w", err)
	}

	return Issued{Certificate: cert, Keypair: kp, Label: label}, nil
}

// GenerateUserCert issues a clientAuth + emailProtection leaf certificate
// for a person, signed by the named intermediate. Used for S/MIME and
// mutual-TLS client authentication material distinct from the person's SSH
// and PGP keys.
func GenerateUserCert(master seed.Master, person string, email string, intermediate Issued, params UserParams, sequenceIndex uint64) (Issued, error) {
	if person == "" {
		return Issued{}, ErrInvalidSubjectName
	}
	if !intermediate.Certificate.IsCA {
		return Issued{}, fmt.Errorf("pki: issuer %q is not a CA", intermediate.Certificate.Subject.CommonName)
	}

	label := UserCertLabel(person)
	childSeed, err := seed.DeriveChild(master, label)
	if err != nil {
		return Issued{}, fmt.Errorf("pki: deriving user cert seed: %w", err)
	}

	kp, err := keypair.Generate(childSeed, keypair.Ed25519)
	if err != nil {
		return Issued{}, fmt.Errorf("pki: generating user cert keypair: %w", err)
	}

	notBefore := normalizeNotBefore(params.NotBefore)
	validity := params.Validity
	if validity == 0 {
		validity = DefaultUserValidity
	}
	notAfter := notBefore.Add(validity)

	subject := params.Subject
	if subject.CommonName == "" {
		subject.CommonName = person
	}
	subjectName := buildName(subject)
	issuerDN := intermediate.Certificate.Subject.String()
	subjectDN := subjectName.String()
	serial := deriveSerial(issuerDN, subjectDN, notBefore, sequenceIndex)

	var emails []string
	if email != "" {
		emails = []string{email}
	}

	template := &x509.Certificate{
		SerialNumber:          serial,
		Subject:               subjectName,
		NotBefore:             notBefore,
		NotAfter:              notAfter,
		KeyUsage:              x509.KeyUsageDigitalSignature | x509.KeyUsageKeyEncipherment,
		ExtKeyUsage:           []x509.ExtKeyUsage{x509.ExtKeyUsageClientAuth, x509.ExtKeyUsageEmailProtection},
		BasicConstraintsValid: true,
		IsCA:                  false,
		EmailAddresses:        emails,
	}

	signer, err := intermediate.Keypair.Signer()
	if err != nil {
		return Issued{}, fmt.Errorf("pki: intermediate keypair cannot sign: %w", err)
	}

	der, err := x509.CreateCertificate(devNullRand{}, template, intermediate.Certificate, kp.Public, signer)
	if err != nil {
		return Issued{}, fmt.Errorf("pki: creating user certificate: %w", err)
	}

	cert, err := x509.ParseCertificate(der)
	if err != nil {
		return Issued{}, fmt.Errorf("pki: parsing user certificate: %w", err)
	}

	return Issued{Certificate: cert, Keypair: kp, Label: label}, nil
}
