// Copyright 2026 The Keyforge Authors
//
// https://github.com/lockwell/keyforge
//
// Licensed under the MIT License. See LICENSE file in the project root for
// full license information.

package pki

import (
	"crypto/x509"
	"crypto/x509/pkix"
	"fmt"

	"github.com/lockwell/keyforge/internal/keypair"
	"github.com/lockwell/keyforge/internal/seed"
)

// Issued bundles a generated certificate with the keypair that signs it
// and its seed label, so callers can pass it along as a parent to the next
// generation step without re-deriving anything.
type Issued struct {
	Certificate *x509.Certificate
	Keypair     keypair.Keypair
	Label       string
}

func buildName(s Subject) pkix.Name {
	name := pkix.Name{CommonName: s.CommonName}
	if s.Organization != "" {
		name.Organization = []string{s.Organization}
	}
	if s.OrganizationalUnit != "" {
		name.OrganizationalUnit = []string{s.OrganizationalUnit}
	}
	if s.Country != "" {
		name.Country = []string{s.Country}
	}
	return name
}

// GenerateRootCA builds a self-signed Root CA certificate from the
// "root-ca" labeled seed. The resulting certificate has is_ca=true,
// pathlen >= 1 (params.PathLen, defaulting to 1 if zero), and key-usage
// restricted to keyCertSign and cRLSign.
func GenerateRootCA(master seed.Master, params RootParams) (Issued, error) {
	if params.Subject.CommonName == "" {
		return Issued{}, ErrInvalidSubjectName
	}

	childSeed, err := seed.DeriveChild(master, RootLabel)
	if err != nil {
		return Issued{}, fmt.Errorf("pki: deriving root seed: %w", err)
	}

	kp, err := keypair.Generate(childSeed, keypair.Ed25519)
	if err != nil {
		return Issued{}, fmt.Errorf("pki: generating root keypair: %w", err)
	}

	notBefore := normalizeNotBefore(params.NotBefore)
	validity := params.Validity
	if validity == 0 {
		validity = DefaultRootValidity
	}
	notAfter := notBefore.Add(validity)

	pathLen := params.PathLen
	if pathLen <= 0 {
		pathLen = 1
	}

	name := buildName(params.Subject)
	dn := name.String()
	serial := deriveSerial(dn, dn, notBefore, 0)

	template := &x509.Certificate{
		SerialNumber:          serial,
		Subject:               name,
		NotBefore:             notBefore,
		NotAfter:              notAfter,
		KeyUsage:              x509.KeyUsageCertSign | x509.KeyUsageCRLSign,
		BasicConstraintsValid: true,
		IsCA:                  true,
		MaxPathLen:            pathLen,
		MaxPathLenZero:        false,
	}

	der, err := x509.CreateCertificate(devNullRand{}, template, template, kp.Public, kp.Private)
	if err != nil {
		return Issued{}, fmt.Errorf("pki: creating root certificate: %w", err)
	}

	cert, err := x509.ParseCertificate(der)
	if err != nil {
		return Issued{}, fmt.Errorf("pki: parsing root certificate: %w", err)
	}

	return Issued{Certificate: cert, Keypair: kp, Label: RootLabel}, nil
}

// devNullRand satisfies the io.Reader x509.CreateCertificate requires for
// signature randomization. Ed25519 signatures are deterministic given the
// message and the private key (RFC 8032), so CreateCertificate never
// actually reads from this reader for our signing algorithm; it exists so
// we never accidentally reach for crypto/rand, which would break the
// reproducibility contract if a future signing algorithm relied on it.
type devNullRand struct{}

func (devNullRand) Read(p []byte) (int, error) {
	return 0, fmt.Errorf("pki: unexpected call to randomness source during certificate signing")
}
