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

	"github.com/google/uuid"

	"github.com/lockwell/keyforge/internal/config"
	"github.com/lockwell/keyforge/internal/keypair"
	"github.com/lockwell/keyforge/internal/model"
	"github.com/lockwell/keyforge/internal/piv"
	"github.com/lockwell/keyforge/internal/seed"
)

// session is the per-invocation wiring a CLI subcommand operates
// through. Because keyforge re-derives the master seed from the
// passphrase on every invocation rather than holding a long-running
// process, the projection is the only state that must survive between
// commands; it is persisted to the event log under the output root.
type session struct {
	cfg        *config.Config
	storage    *filesystemStorage
	projection model.Projection
	master     *seed.Master
	keypairs   *keypair.Cache
	piv        *piv.NoOpProvisioner
}

func newSession(cfg *config.Config) (*session, error) {
	storage := newFilesystemStorage(cfg.OutputRoot)

	raw, err := storage.Get(context.Background(), eventLogPath)
	if err != nil {
		raw = nil
	}
	events, err := decodeEvents(raw)
	if err != nil {
		return nil, fmt.Errorf("loading event log: %w", err)
	}

	return &session{
		cfg:        cfg,
		storage:    storage,
		projection: model.Fold(events),
		keypairs:   keypair.NewCache(),
		piv:        piv.NewNoOpProvisioner(),
	}, nil
}

// persist writes the session's current event log back to storage.
func (s *session) persist(ctx context.Context) error {
	data, err := encodeEvents(s.projection.Events)
	if err != nil {
		return err
	}
	if err := s.storage.Put(ctx, eventLogPath, data); err != nil {
		return err
	}
	return s.storage.Sync(ctx)
}

// requireMaster re-derives the master seed for orgID from passphrase,
// caching it on the session for the remainder of this invocation. The
// derivation itself (DeriveMasterSeed) is always routed through the
// model so that the MasterSeedDerived event lands in the projection
// exactly as every other command does.
func (s *session) requireMaster(ctx context.Context, passphrase string, orgID uuid.UUID) error {
	if s.master != nil {
		return nil
	}

	correlationID, taskID := uuid.New(), uuid.New().String()
	next, effect := model.Update(s.projection, model.UIIntent{
		TaskID:        taskID,
		CorrelationID: correlationID,
		Cmd:           model.DeriveMasterSeed{Passphrase: passphrase, Confirm: passphrase, OrgID: orgID},
	})
	s.projection = next

	dispatch, ok := effect.(model.EffectDispatch)
	if !ok {
		return rejectionError(effect)
	}

	m, err := seed.DeriveMaster(passphrase, orgID)
	eventID := uuid.Must(uuid.NewV7())
	outcome := model.PortOutcome{Success: true, Payload: model.MasterSeedDerived{OrgID: orgID.String()}}
	if err != nil {
		outcome = model.PortOutcome{Success: false, Reason: model.ReasonKdfFailure}
	}

	next, _ = model.Update(s.projection, model.PortIntent{
		TaskID:    dispatch.TaskID,
		EventID:   eventID,
		Timestamp: nowFunc(),
		Outcome:   outcome,
	})
	s.projection = next

	if err != nil {
		return fmt.Errorf("deriving master seed: %w", err)
	}
	s.master = &m
	return nil
}
