// Copyright 2026 The Keyforge Authors
//
// https://github.com/lockwell/keyforge
//
// Licensed under the MIT License. See LICENSE file in the project root for
// full license information.

package model_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lockwell/keyforge/internal/model"
)

var fixedTime = time.Unix(1700000000, 0).UTC()

func dispatch(t *testing.T, p model.Projection, taskID string, cmd model.Command) (model.Projection, model.Effect) {
	t.Helper()
	correlationID := uuid.MustParse("00000000-0000-7000-8000-000000000002")
	return model.Update(p, model.UIIntent{TaskID: taskID, CorrelationID: correlationID, Cmd: cmd})
}

func complete(t *testing.T, p model.Projection, taskID string, payload model.EventPayload) model.Projection {
	t.Helper()
	eventID := uuid.MustParse("00000000-0000-7000-8000-000000000003")
	next, _ := model.Update(p, model.PortIntent{
		TaskID:    taskID,
		EventID:   eventID,
		Timestamp: fixedTime,
		Outcome:   model.PortOutcome{Success: true, Payload: payload},
	})
	return next
}

func TestDeriveMasterSeedRejectsMismatch(t *testing.T) {
	p := model.NewProjection()
	_, effect := dispatch(t, p, "t1", model.DeriveMasterSeed{Passphrase: "a", Confirm: "b"})
	reject, ok := effect.(model.EffectReject)
	require.True(t, ok)
	assert.Equal(t, model.ReasonPassphraseMismatch, reject.Reason)
}

func TestDeriveMasterSeedRejectsWeakPassphrase(t *testing.T) {
	p := model.NewProjection()
	_, effect := dispatch(t, p, "t1", model.DeriveMasterSeed{Passphrase: "short", Confirm: "short"})
	reject, ok := effect.(model.EffectReject)
	require.True(t, ok)
	assert.Equal(t, model.ReasonPassphraseTooWeak, reject.Reason)
}

func TestGenerateRootCARequiresMasterSeed(t *testing.T) {
	p := model.NewProjection()
	_, effect := dispatch(t, p, "t1", model.GenerateRootCA{CommonName: "ACME Root CA"})
	reject, ok := effect.(model.EffectReject)
	require.True(t, ok)
	assert.Equal(t, model.ReasonMasterSeedRequired, reject.Reason)
}

func withMasterSeed(t *testing.T) model.Projection {
	t.Helper()
	p := model.NewProjection()
	p, effect := dispatch(t, p, "derive", model.DeriveMasterSeed{
		Passphrase: "correct horse battery staple mountain river",
		Confirm:    "correct horse battery staple mountain river",
	})
	_, ok := effect.(model.EffectDispatch)
	require.True(t, ok)
	p = complete(t, p, "derive", model.MasterSeedDerived{OrgID: "org-1"})
	return p
}

func TestIntermediateSubCAAttemptIsPathlenViolation(t *testing.T) {
	p := withMasterSeed(t)
	p, effect := dispatch(t, p, "root", model.GenerateRootCA{CommonName: "ACME Root CA"})
	require.IsType(t, model.EffectDispatch{}, effect)
	p = complete(t, p, "root", model.RootCAGenerated{Subject: "CN=ACME Root CA", Fingerprint: "root-fp"})

	p, effect = dispatch(t, p, "inter", model.GenerateIntermediateCA{Name: "Engineering"})
	require.IsType(t, model.EffectDispatch{}, effect)
	p = complete(t, p, "inter", model.IntermediateCAGenerated{Name: "Engineering", Fingerprint: "eng-fp"})

	_, effect = dispatch(t, p, "sub", model.GenerateIntermediateCA{Name: "Sub", ParentName: "Engineering"})
	reject, ok := effect.(model.EffectReject)
	require.True(t, ok)
	assert.Equal(t, model.ReasonPathlenViolation, reject.Reason)
}

func TestDuplicateIntermediateNameRejected(t *testing.T) {
	p := withMasterSeed(t)
	p, _ = dispatch(t, p, "root", model.GenerateRootCA{CommonName: "ACME Root CA"})
	p = complete(t, p, "root", model.RootCAGenerated{Subject: "CN=ACME Root CA", Fingerprint: "root-fp"})

	p, _ = dispatch(t, p, "inter", model.GenerateIntermediateCA{Name: "Engineering"})
	p = complete(t, p, "inter", model.IntermediateCAGenerated{Name: "Engineering", Fingerprint: "eng-fp"})

	_, effect := dispatch(t, p, "inter2", model.GenerateIntermediateCA{Name: "Engineering"})
	reject, ok := effect.(model.EffectReject)
	require.True(t, ok)
	assert.Equal(t, model.ReasonDuplicateIntermediate, reject.Reason)
}

func TestServerCertRequiresKnownIntermediate(t *testing.T) {
	p := withMasterSeed(t)
	_, effect := dispatch(t, p, "srv", model.GenerateServerCert{CommonName: "api.internal", IntermediateName: "Engineering"})
	reject, ok := effect.(model.EffectReject)
	require.True(t, ok)
	assert.Equal(t, model.ReasonUnknownIntermediate, reject.Reason)
}

func TestUserCertRequiresKnownIntermediate(t *testing.T) {
	p := withMasterSeed(t)
	_, effect := dispatch(t, p, "ucert", model.GenerateUserCert{Person: "Alice", IntermediateName: "Engineering"})
	reject, ok := effect.(model.EffectReject)
	require.True(t, ok)
	assert.Equal(t, model.ReasonUnknownIntermediate, reject.Reason)
}

func TestNatsHierarchyRequiresOperatorThenAccount(t *testing.T) {
	p := withMasterSeed(t)

	_, effect := dispatch(t, p, "acct", model.GenerateNatsAccount{Unit: "Engineering"})
	reject, ok := effect.(model.EffectReject)
	require.True(t, ok)
	assert.Equal(t, model.ReasonOperatorRequired, reject.Reason)

	p, _ = dispatch(t, p, "op", model.GenerateNatsOperator{OrgName: "acme"})
	p = complete(t, p, "op", model.NatsOperatorCreated{PublicKey: "O123"})

	p, effect = dispatch(t, p, "acct", model.GenerateNatsAccount{Unit: "Engineering"})
	require.IsType(t, model.EffectDispatch{}, effect)
	p = complete(t, p, "acct", model.NatsAccountCreated{Unit: "Engineering", PublicKey: "A123"})

	_, effect = dispatch(t, p, "user", model.GenerateNatsUser{Unit: "Sales", Person: "alice"})
	reject, ok = effect.(model.EffectReject)
	require.True(t, ok)
	assert.Equal(t, model.ReasonUnknownUnit, reject.Reason)

	p, effect = dispatch(t, p, "user", model.GenerateNatsUser{Unit: "Engineering", Person: "alice"})
	require.IsType(t, model.EffectDispatch{}, effect)
	p = complete(t, p, "user", model.NatsUserCreated{Unit: "Engineering", Person: "alice", PublicKey: "U123"})

	assert.Equal(t, "U123", p.NatsUsers["Engineering/alice"])
}

func TestCancellationClearsPendingWithNoEvent(t *testing.T) {
	p := withMasterSeed(t)
	p, effect := dispatch(t, p, "ssh-1", model.GenerateSSHKeypair{Person: "alice"})
	require.IsType(t, model.EffectDispatch{}, effect)

	before := len(p.Events)
	next, _ := model.Update(p, model.SystemIntent{Kind: model.SystemCancelled, TaskID: "ssh-1"})
	assert.Equal(t, before, len(next.Events))
	assert.Empty(t, next.SSHFingerprints)
}

func TestCryptographicFailureRecordsCommandFailedEvent(t *testing.T) {
	p := withMasterSeed(t)
	p, _ = dispatch(t, p, "ssh-1", model.GenerateSSHKeypair{Person: "alice"})

	next, _ := model.Update(p, model.PortIntent{
		TaskID:    "ssh-1",
		EventID:   uuid.MustParse("00000000-0000-7000-8000-000000000004"),
		Timestamp: fixedTime,
		Outcome:   model.PortOutcome{Success: false, Reason: model.ReasonKeyGenerationReject},
	})

	last := next.Events[len(next.Events)-1]
	failed, ok := last.Payload.(model.CommandFailed)
	require.True(t, ok)
	assert.Equal(t, string(model.ReasonKeyGenerationReject), failed.Reason)
}

func TestFoldMatchesIncrementalApply(t *testing.T) {
	p := withMasterSeed(t)
	p, _ = dispatch(t, p, "root", model.GenerateRootCA{CommonName: "ACME Root CA"})
	p = complete(t, p, "root", model.RootCAGenerated{Subject: "CN=ACME Root CA", Fingerprint: "root-fp"})

	replayed := model.Fold(p.Events)
	assert.Equal(t, p.RootCAFingerprint, replayed.RootCAFingerprint)
	assert.Equal(t, p.MasterSeedPresent, replayed.MasterSeedPresent)
	assert.Equal(t, len(p.Events), len(replayed.Events))
}

func TestFoldEmptyAppendIsIdentity(t *testing.T) {
	p := withMasterSeed(t)
	assert.Equal(t, p.Events, model.Fold(append(append([]model.Event{}, p.Events...), []model.Event{}...)).Events)
}

func TestUpdateIsTotalAcrossIntentKinds(t *testing.T) {
	p := withMasterSeed(t)
	intents := []model.Intent{
		model.UIIntent{TaskID: "x", Cmd: model.GenerateRootCA{}},
		model.PortIntent{TaskID: "does-not-exist", EventID: uuid.New(), Timestamp: fixedTime, Outcome: model.PortOutcome{Success: true, Payload: model.MasterSeedDerived{}}},
		model.SystemIntent{Kind: model.SystemTick},
		model.SystemIntent{Kind: model.SystemCancelled, TaskID: "does-not-exist"},
		model.ErrorIntent{Reason: model.ReasonIoFailure},
		model.DomainIntent{Event: model.NewEvent(uuid.New(), uuid.New(), uuid.New(), fixedTime, model.SystemTaskCancelled{TaskID: "z"})},
	}
	for _, in := range intents {
		assert.NotPanics(t, func() {
			model.Update(p, in)
		})
	}
}
