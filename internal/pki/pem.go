// Copyright 2026 The Keyforge Authors
//
// https://github.com/lockwell/keyforge
//
// Licensed under the MIT License. See LICENSE file in the project root for
// full license information.

package pki

import (
	"bytes"
	"crypto/x509"
	"encoding/pem"
	"fmt"
)

// EncodeCertPEM renders cert as a single RFC 7468 PEM block.
// encoding/pem.Encode already wraps base64 at 64 characters and emits LF
// line endings, matching the bit-exact format the specification requires.
func EncodeCertPEM(cert *x509.Certificate) []byte {
	var buf bytes.Buffer
	_ = pem.Encode(&buf, &pem.Block{Type: "CERTIFICATE", Bytes: cert.Raw})
	return buf.Bytes()
}

// EncodeChainPEM renders a leaf followed by zero or more intermediates as
// a concatenated PEM chain file, leaf first, matching the expected order a
// TLS server presents its chain in.
func EncodeChainPEM(leaf *x509.Certificate, intermediates ...*x509.Certificate) []byte {
	var buf bytes.Buffer
	buf.Write(EncodeCertPEM(leaf))
	for _, c := range intermediates {
		buf.Write(EncodeCertPEM(c))
	}
	return buf.Bytes()
}

// ParseCertPEM decodes a single PEM-encoded certificate, returning an
// error if the block is missing or is not of type CERTIFICATE.
func ParseCertPEM(data []byte) (*x509.Certificate, error) {
	block, _ := pem.Decode(data)
	if block == nil {
		return nil, fmt.Errorf("pki: no PEM block found")
	}
	if block.Type != "CERTIFICATE" {
		return nil, fmt.Errorf("pki: unexpected PEM block type %q", block.Type)
	}
	return x509.ParseCertificate(block.Bytes)
}

// ParseCertChainPEM decodes every CERTIFICATE block in data, in the order
// they appear.
func ParseCertChainPEM(data []byte) ([]*x509.Certificate, error) {
	var certs []*x509.Certificate
	rest := data
	for {
		var block *pem.Block
		block, rest = pem.Decode(rest)
		if block == nil {
			break
		}
		if block.Type != "CERTIFICATE" {
			continue
		}
		cert, err := x509.ParseCertificate(block.Bytes)
		if err != nil {
			return nil, fmt.Errorf("pki: parsing certificate in chain: %w", err)
		}
		certs = append(certs, cert)
	}
	if len(certs) == 0 {
		return nil, fmt.Errorf("pki: no certificates found")
	}
	return certs, nil
}
