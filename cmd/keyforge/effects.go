// Copyright 2026 The Keyforge Authors
//
// https://github.com/lockwell/keyforge
//
// Licensed under the MIT License. See LICENSE file in the project root for
// full license information.

package main

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/lockwell/keyforge/internal/keypair"
	"github.com/lockwell/keyforge/internal/manifest"
	"github.com/lockwell/keyforge/internal/model"
	"github.com/lockwell/keyforge/internal/natsid"
	"github.com/lockwell/keyforge/internal/pgp"
	"github.com/lockwell/keyforge/internal/piv"
	"github.com/lockwell/keyforge/internal/pki"
	"github.com/lockwell/keyforge/internal/seed"
	"github.com/lockwell/keyforge/internal/sshkeys"
	"github.com/lockwell/keyforge/internal/textutils"
)

// executeEffect performs the cryptographic and storage work a dispatched
// command requires and returns the PortOutcome the model expects back.
// It never mutates s.projection itself; the caller is responsible for
// feeding the returned outcome through model.Update as a PortIntent.
//
// DeriveMasterSeed is handled separately by session.requireMaster, since
// every other command in this switch assumes s.master is already set.
func executeEffect(ctx context.Context, s *session, cmd model.Command) model.PortOutcome {
	now := nowFunc()

	switch c := cmd.(type) {
	case model.GenerateRootCA:
		return s.execGenerateRootCA(ctx, c, now)
	case model.GenerateIntermediateCA:
		return s.execGenerateIntermediateCA(ctx, c, now)
	case model.GenerateServerCert:
		return s.execGenerateServerCert(ctx, c, now)
	case model.GenerateUserCert:
		return s.execGenerateUserCert(ctx, c, now)
	case model.GenerateSSHKeypair:
		return s.execGenerateSSHKeypair(ctx, c)
	case model.GeneratePGPKeypair:
		return s.execGeneratePGPKeypair(ctx, c, now)
	case model.ProvisionPIVSlot:
		return s.execProvisionPIVSlot(ctx, c)
	case model.GenerateNatsOperator:
		return s.execGenerateNatsOperator(ctx, c, now)
	case model.GenerateNatsAccount:
		return s.execGenerateNatsAccount(ctx, c, now)
	case model.GenerateNatsUser:
		return s.execGenerateNatsUser(ctx, c, now)
	case model.WriteExportManifest:
		return s.execWriteExportManifest(ctx, now)
	default:
		return model.PortOutcome{Success: false, Reason: model.ReasonInvalidSubject}
	}
}

func ioFailure() model.PortOutcome {
	return model.PortOutcome{Success: false, Reason: model.ReasonIoFailure}
}

// findRootCAGenerated returns the single RootCAGenerated event in the
// log, if any. The model layer only ever allows one to exist.
func findRootCAGenerated(events []model.Event) (model.RootCAGenerated, bool) {
	for _, e := range events {
		if p, ok := e.Payload.(model.RootCAGenerated); ok {
			return p, true
		}
	}
	return model.RootCAGenerated{}, false
}

func findIntermediateCAGenerated(events []model.Event, name string) (model.IntermediateCAGenerated, bool) {
	for _, e := range events {
		if p, ok := e.Payload.(model.IntermediateCAGenerated); ok && p.Name == name {
			return p, true
		}
	}
	return model.IntermediateCAGenerated{}, false
}

// reconstructRoot rebuilds the Root CA's keypair and certificate from the
// master seed and the parameters recorded in its originating event. No
// private key is ever read from storage; everything needed to replay the
// generation lives in the event log.
func reconstructRoot(master seed.Master, events []model.Event) (pki.Issued, error) {
	e, ok := findRootCAGenerated(events)
	if !ok {
		return pki.Issued{}, fmt.Errorf("cmd/keyforge: no root CA has been generated")
	}
	params := pki.RootParams{
		Subject: pki.Subject{
			CommonName:   e.CommonName,
			Organization: e.Organization,
			Country:      e.Country,
		},
		NotBefore: time.Unix(e.NotBeforeUnix, 0).UTC(),
		Validity:  time.Duration(e.ValidityNanos),
	}
	return pki.GenerateRootCA(master, params)
}

// reconstructIntermediate rebuilds the named Intermediate CA, replaying
// its parent Root CA first.
func reconstructIntermediate(master seed.Master, events []model.Event, name string) (pki.Issued, error) {
	root, err := reconstructRoot(master, events)
	if err != nil {
		return pki.Issued{}, err
	}
	e, ok := findIntermediateCAGenerated(events, name)
	if !ok {
		return pki.Issued{}, fmt.Errorf("cmd/keyforge: no intermediate CA named %q has been generated", name)
	}
	params := pki.IntermediateParams{
		Subject: pki.Subject{
			CommonName:   e.CommonName,
			Organization: e.Organization,
			Country:      e.Country,
		},
		NotBefore: time.Unix(e.NotBeforeUnix, 0).UTC(),
		Validity:  time.Duration(e.ValidityNanos),
	}
	return pki.GenerateIntermediateCA(master, name, root, params, e.SequenceIndex)
}

// reconstructOperator rebuilds the Operator identity. The Operator's NKey
// depends only on the master seed, not on orgName or issuedAt (those are
// embedded only in the Operator's own self-signed JWT), so any values
// for them reproduce the identical signing key.
func reconstructOperator(master seed.Master) (natsid.Identity, error) {
	return natsid.GenerateOperator(master, "", time.Unix(0, 0).UTC())
}

// reconstructAccount rebuilds the named unit's Account identity. Like the
// Operator, the Account's NKey depends only on the master seed and the
// unit name.
func reconstructAccount(master seed.Master, unit string) (natsid.Identity, error) {
	operator, err := reconstructOperator(master)
	if err != nil {
		return natsid.Identity{}, err
	}
	return natsid.GenerateAccount(master, unit, operator, time.Unix(0, 0).UTC(), nil)
}

func (s *session) execGenerateRootCA(ctx context.Context, c model.GenerateRootCA, now time.Time) model.PortOutcome {
	params := pki.RootParams{
		Subject: pki.Subject{
			CommonName:   c.CommonName,
			Organization: c.Organization,
			Country:      c.Country,
		},
		NotBefore: now,
	}

	issued, err := pki.GenerateRootCA(*s.master, params)
	if err != nil {
		return model.PortOutcome{Success: false, Reason: model.ReasonKeyGenerationReject}
	}

	fingerprint := pki.Fingerprint(issued.Certificate)
	if err := s.storage.Put(ctx, "pki/root-ca/cert.pem", pki.EncodeCertPEM(issued.Certificate)); err != nil {
		return ioFailure()
	}
	if err := s.storage.Put(ctx, "pki/root-ca/fingerprint", []byte(fingerprint)); err != nil {
		return ioFailure()
	}

	payload := model.RootCAGenerated{
		Subject:       issued.Certificate.Subject.String(),
		Fingerprint:   fingerprint,
		CommonName:    c.CommonName,
		Organization:  c.Organization,
		Country:       c.Country,
		NotBeforeUnix: issued.Certificate.NotBefore.Unix(),
		ValidityNanos: int64(issued.Certificate.NotAfter.Sub(issued.Certificate.NotBefore)),
	}
	return model.PortOutcome{Success: true, Payload: payload}
}

func (s *session) execGenerateIntermediateCA(ctx context.Context, c model.GenerateIntermediateCA, now time.Time) model.PortOutcome {
	root, err := reconstructRoot(*s.master, s.projection.Events)
	if err != nil {
		return model.PortOutcome{Success: false, Reason: model.ReasonRootCARequired}
	}

	sequenceIndex := uint64(len(s.projection.Intermediates))
	params := pki.IntermediateParams{
		Subject: pki.Subject{
			CommonName:   c.CommonName,
			Organization: c.Organization,
			Country:      c.Country,
		},
		NotBefore: now,
	}

	issued, err := pki.GenerateIntermediateCA(*s.master, c.Name, root, params, sequenceIndex)
	if err != nil {
		return model.PortOutcome{Success: false, Reason: model.ReasonPathlenViolation}
	}

	fingerprint := pki.Fingerprint(issued.Certificate)
	relPath := fmt.Sprintf("pki/intermediate-cas/%s/cert.pem", textutils.NormalizeLabel(c.Name))
	if err := s.storage.Put(ctx, relPath, pki.EncodeCertPEM(issued.Certificate)); err != nil {
		return ioFailure()
	}

	payload := model.IntermediateCAGenerated{
		Name:          c.Name,
		Fingerprint:   fingerprint,
		CommonName:    c.CommonName,
		Organization:  c.Organization,
		Country:       c.Country,
		NotBeforeUnix: issued.Certificate.NotBefore.Unix(),
		ValidityNanos: int64(issued.Certificate.NotAfter.Sub(issued.Certificate.NotBefore)),
		SequenceIndex: sequenceIndex,
	}
	return model.PortOutcome{Success: true, Payload: payload}
}

func (s *session) execGenerateServerCert(ctx context.Context, c model.GenerateServerCert, now time.Time) model.PortOutcome {
	intermediate, err := reconstructIntermediate(*s.master, s.projection.Events, c.IntermediateName)
	if err != nil {
		return model.PortOutcome{Success: false, Reason: model.ReasonUnknownIntermediate}
	}

	sequenceIndex := uint64(len(s.projection.ServerCerts))
	params := pki.ServerParams{NotBefore: now}

	issued, err := pki.GenerateServerCert(*s.master, c.CommonName, c.SANs, intermediate, params, sequenceIndex)
	if err != nil {
		return model.PortOutcome{Success: false, Reason: model.ReasonKeyGenerationReject}
	}

	fingerprint := pki.Fingerprint(issued.Certificate)
	base := fmt.Sprintf("pki/server-certs/%s", textutils.NormalizeLabel(c.CommonName))
	if err := s.storage.Put(ctx, base+"/cert.pem", pki.EncodeCertPEM(issued.Certificate)); err != nil {
		return ioFailure()
	}
	chain := pki.EncodeChainPEM(issued.Certificate, intermediate.Certificate)
	if err := s.storage.Put(ctx, base+"/chain.pem", chain); err != nil {
		return ioFailure()
	}

	payload := model.ServerCertGenerated{
		CommonName:       c.CommonName,
		IntermediateName: c.IntermediateName,
		Fingerprint:      fingerprint,
	}
	return model.PortOutcome{Success: true, Payload: payload}
}

func (s *session) execGenerateUserCert(ctx context.Context, c model.GenerateUserCert, now time.Time) model.PortOutcome {
	intermediate, err := reconstructIntermediate(*s.master, s.projection.Events, c.IntermediateName)
	if err != nil {
		return model.PortOutcome{Success: false, Reason: model.ReasonUnknownIntermediate}
	}

	sequenceIndex := uint64(len(s.projection.UserCerts))
	params := pki.UserParams{NotBefore: now}

	issued, err := pki.GenerateUserCert(*s.master, c.Person, c.Email, intermediate, params, sequenceIndex)
	if err != nil {
		return model.PortOutcome{Success: false, Reason: model.ReasonKeyGenerationReject}
	}

	fingerprint := pki.Fingerprint(issued.Certificate)
	base := fmt.Sprintf("people/%s", textutils.NormalizeLabel(c.Person))
	if err := s.storage.Put(ctx, base+"/user-cert.pem", pki.EncodeCertPEM(issued.Certificate)); err != nil {
		return ioFailure()
	}
	chain := pki.EncodeChainPEM(issued.Certificate, intermediate.Certificate)
	if err := s.storage.Put(ctx, base+"/user-cert-chain.pem", chain); err != nil {
		return ioFailure()
	}

	return model.PortOutcome{
		Success: true,
		Payload: model.UserCertGenerated{Person: c.Person, IntermediateName: c.IntermediateName, Fingerprint: fingerprint},
	}
}

func (s *session) execGenerateSSHKeypair(ctx context.Context, c model.GenerateSSHKeypair) model.PortOutcome {
	label := "ssh-" + textutils.NormalizeLabel(c.Person)
	childSeed, err := seed.DeriveChild(*s.master, label)
	if err != nil {
		return model.PortOutcome{Success: false, Reason: model.ReasonKdfFailure}
	}

	kp, err := s.keypairs.Generate(childSeed, keypair.Ed25519)
	if err != nil {
		return model.PortOutcome{Success: false, Reason: model.ReasonKeyGenerationReject}
	}

	pubText, privText, err := sshkeys.FormatOpenSSH(kp, c.Person)
	if err != nil {
		return model.PortOutcome{Success: false, Reason: model.ReasonUnsupportedAlgo}
	}
	fingerprint, err := sshkeys.Fingerprint(kp)
	if err != nil {
		return model.PortOutcome{Success: false, Reason: model.ReasonUnsupportedAlgo}
	}

	base := fmt.Sprintf("people/%s", textutils.NormalizeLabel(c.Person))
	if err := s.storage.Put(ctx, base+"/ssh.pub", []byte(pubText)); err != nil {
		return ioFailure()
	}
	if err := s.storage.Put(ctx, base+"/ssh.key", []byte(privText)); err != nil {
		return ioFailure()
	}

	return model.PortOutcome{
		Success: true,
		Payload: model.SSHKeypairGenerated{Person: c.Person, Fingerprint: fingerprint},
	}
}

func (s *session) execGeneratePGPKeypair(ctx context.Context, c model.GeneratePGPKeypair, now time.Time) model.PortOutcome {
	id, err := pgp.Generate(*s.master, c.Person, c.Email, now)
	if err != nil {
		return model.PortOutcome{Success: false, Reason: model.ReasonKeyGenerationReject}
	}

	pubArmor, err := pgp.ArmorPublicKey(id)
	if err != nil {
		return model.PortOutcome{Success: false, Reason: model.ReasonSignatureFailure}
	}
	privArmor, err := pgp.ArmorPrivateKey(id)
	if err != nil {
		return model.PortOutcome{Success: false, Reason: model.ReasonSignatureFailure}
	}

	base := fmt.Sprintf("people/%s", textutils.NormalizeLabel(c.Person))
	if err := s.storage.Put(ctx, base+"/pgp.pub", []byte(pubArmor)); err != nil {
		return ioFailure()
	}
	if err := s.storage.Put(ctx, base+"/pgp.key", []byte(privArmor)); err != nil {
		return ioFailure()
	}

	return model.PortOutcome{
		Success: true,
		Payload: model.PGPKeypairGenerated{Person: c.Person, Fingerprint: pgp.Fingerprint(id)},
	}
}

func (s *session) execProvisionPIVSlot(ctx context.Context, c model.ProvisionPIVSlot) model.PortOutcome {
	slot := piv.Slot(c.Slot)
	if !slot.Valid() {
		return model.PortOutcome{Success: false, Reason: model.ReasonUnsupportedAlgo}
	}

	label := fmt.Sprintf("piv-%s-%s", textutils.NormalizeLabel(c.Person), c.Slot)
	childSeed, err := seed.DeriveChild(*s.master, label)
	if err != nil {
		return model.PortOutcome{Success: false, Reason: model.ReasonKdfFailure}
	}

	kp, err := s.keypairs.Generate(childSeed, keypair.ECDSAP256)
	if err != nil {
		return model.PortOutcome{Success: false, Reason: model.ReasonKeyGenerationReject}
	}

	cfg := piv.DefaultSlotConfig(slot, "")
	if err := s.piv.ProvisionSlot(cfg, kp.Public, nil); err != nil {
		return model.PortOutcome{Success: false, Reason: model.ReasonDeviceNotPresent}
	}

	return model.PortOutcome{
		Success: true,
		Payload: model.PIVSlotProvisioned{Person: c.Person, Slot: c.Slot},
	}
}

func (s *session) execGenerateNatsOperator(ctx context.Context, c model.GenerateNatsOperator, now time.Time) model.PortOutcome {
	id, err := natsid.GenerateOperator(*s.master, c.OrgName, now)
	if err != nil {
		return model.PortOutcome{Success: false, Reason: model.ReasonSignatureFailure}
	}

	if err := s.storage.Put(ctx, "nats/operator.jwt", []byte(id.JWT)); err != nil {
		return ioFailure()
	}

	return model.PortOutcome{
		Success: true,
		Payload: model.NatsOperatorCreated{PublicKey: id.PublicKey},
	}
}

func (s *session) execGenerateNatsAccount(ctx context.Context, c model.GenerateNatsAccount, now time.Time) model.PortOutcome {
	operator, err := reconstructOperator(*s.master)
	if err != nil {
		return model.PortOutcome{Success: false, Reason: model.ReasonOperatorRequired}
	}

	id, err := natsid.GenerateAccount(*s.master, c.Unit, operator, now, nil)
	if err != nil {
		return model.PortOutcome{Success: false, Reason: model.ReasonSignatureFailure}
	}

	relPath := fmt.Sprintf("nats/accounts/%s.jwt", textutils.NormalizeLabel(c.Unit))
	if err := s.storage.Put(ctx, relPath, []byte(id.JWT)); err != nil {
		return ioFailure()
	}

	return model.PortOutcome{
		Success: true,
		Payload: model.NatsAccountCreated{Unit: c.Unit, PublicKey: id.PublicKey},
	}
}

func (s *session) execGenerateNatsUser(ctx context.Context, c model.GenerateNatsUser, now time.Time) model.PortOutcome {
	account, err := reconstructAccount(*s.master, c.Unit)
	if err != nil {
		return model.PortOutcome{Success: false, Reason: model.ReasonUnknownUnit}
	}

	id, err := natsid.GenerateUser(*s.master, c.Person, account, now, nil, nil)
	if err != nil {
		return model.PortOutcome{Success: false, Reason: model.ReasonSignatureFailure}
	}

	creds, err := natsid.BuildCredsFile(id)
	if err != nil {
		return model.PortOutcome{Success: false, Reason: model.ReasonSignatureFailure}
	}

	base := fmt.Sprintf("people/%s", textutils.NormalizeLabel(c.Person))
	if err := s.storage.Put(ctx, base+"/creds.nats", []byte(creds)); err != nil {
		return ioFailure()
	}

	return model.PortOutcome{
		Success: true,
		Payload: model.NatsUserCreated{Unit: c.Unit, Person: c.Person, PublicKey: id.PublicKey},
	}
}

func (s *session) execWriteExportManifest(ctx context.Context, now time.Time) model.PortOutcome {
	paths, err := s.storage.List(ctx, "")
	if err != nil {
		return ioFailure()
	}

	var artifacts []manifest.Artifact
	for _, p := range paths {
		if p == eventLogPath || p == "manifest.json" {
			continue
		}
		data, err := s.storage.Get(ctx, p)
		if err != nil {
			return ioFailure()
		}
		artifacts = append(artifacts, manifest.Artifact{
			Path:      p,
			MediaType: mediaTypeFor(p),
			Data:      data,
		})
	}

	built, err := manifest.Build(now, artifacts)
	if err != nil {
		return model.PortOutcome{Success: false, Reason: model.ReasonCidMismatch}
	}

	for dirPath, data := range built.Directories {
		relPath := "manifest.json"
		if dirPath != "" {
			relPath = dirPath + "/manifest.json"
		}
		if err := s.storage.Put(ctx, relPath, data); err != nil {
			return ioFailure()
		}
	}

	return model.PortOutcome{
		Success: true,
		Payload: model.ExportManifestWritten{RootCID: built.RootCID},
	}
}

// mediaTypeFor classifies an artifact path into a coarse media type for
// the export manifest. The manifest format only needs enough granularity
// to distinguish directories from leaves and, among leaves, PEM/JWT/text
// material from opaque binary, so this stays a simple suffix match rather
// than sniffing content.
func mediaTypeFor(path string) string {
	switch {
	case strings.HasSuffix(path, ".pem"):
		return "application/x-pem-file"
	case strings.HasSuffix(path, ".jwt"):
		return "application/jwt"
	case strings.HasSuffix(path, ".pub"):
		return "text/plain"
	case strings.HasSuffix(path, ".nats"):
		return "text/plain"
	default:
		return "application/octet-stream"
	}
}
