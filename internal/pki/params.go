// Copyright 2026 The Keyforge Authors
//
// https://github.com/lockwell/keyforge
//
// Licensed under the MIT License. See LICENSE file in the project root for
// full license information.

package pki

import (
	"net"
	"strings"
	"time"
)

// Subject carries the fields used to build the distinguished name of a
// generated certificate.
type Subject struct {
	CommonName         string
	Organization       string
	OrganizationalUnit string
	Country            string
}

// DefaultRootValidity is the 20-year default validity window for a Root
// CA, used when params.Validity is zero.
const DefaultRootValidity = 20 * 365 * 24 * time.Hour

// DefaultIntermediateValidity is the 10-year default validity window for
// an Intermediate CA, used when params.Validity is zero.
const DefaultIntermediateValidity = 10 * 365 * 24 * time.Hour

// DefaultServerValidity is the 90-day default validity window for a
// server leaf certificate.
const DefaultServerValidity = 90 * 24 * time.Hour

// DefaultUserValidity is the 365-day default validity window for a user
// leaf certificate.
const DefaultUserValidity = 365 * 24 * time.Hour

// RootParams configures generate_root_ca.
type RootParams struct {
	Subject    Subject
	NotBefore  time.Time
	Validity   time.Duration
	PathLen    int
}

// IntermediateParams configures generate_intermediate_ca.
type IntermediateParams struct {
	Subject   Subject
	NotBefore time.Time
	Validity  time.Duration
}

// ServerParams configures generate_server_cert.
type ServerParams struct {
	NotBefore time.Time
	Validity  time.Duration
}

// UserParams configures a client/user leaf certificate.
type UserParams struct {
	Subject   Subject
	NotBefore time.Time
	Validity  time.Duration
}

// normalizeNotBefore rounds t down to the second (or, if t is the zero
// value, now rounded down to the second), matching the specification's
// "not-before defaults to the current time rounded down to the second."
func normalizeNotBefore(t time.Time) time.Time {
	if t.IsZero() {
		t = time.Now().UTC()
	}
	return t.Truncate(time.Second)
}

// classifySANEntry buckets a raw SAN string into DNS, IP, or email, the
// three forms the specification names for leaf certificates.
func classifySANEntry(entry string) (dns string, ip net.IP, email string) {
	if strings.Contains(entry, "@") {
		return "", nil, entry
	}
	if parsed := net.ParseIP(entry); parsed != nil {
		return "", parsed, ""
	}
	return entry, nil, ""
}

// splitSANs partitions a list of raw SAN strings into DNS names, IP
// addresses, and email addresses, preserving input order within each
// bucket.
func splitSANs(entries []string) (dnsNames []string, ips []net.IP, emails []string) {
	for _, e := range entries {
		dns, ip, email := classifySANEntry(e)
		switch {
		case dns != "":
			dnsNames = append(dnsNames, dns)
		case ip != nil:
			ips = append(ips, ip)
		case email != "":
			emails = append(emails, email)
		}
	}
	return dnsNames, ips, emails
}
