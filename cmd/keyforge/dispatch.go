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

	"github.com/lockwell/keyforge/internal/model"
)

// run pushes cmd through the full UIIntent -> effect -> PortIntent cycle
// and persists the resulting event log. It is the single place every
// subcommand funnels its model.Command through, so the dispatch/resolve
// bookkeeping is written once rather than once per subcommand.
func (s *session) run(ctx context.Context, cmd model.Command) (model.Event, error) {
	correlationID, taskID := uuid.New(), uuid.New().String()

	next, effect := model.Update(s.projection, model.UIIntent{
		TaskID:        taskID,
		CorrelationID: correlationID,
		Cmd:           cmd,
	})
	s.projection = next

	dispatch, ok := effect.(model.EffectDispatch)
	if !ok {
		return model.Event{}, rejectionError(effect)
	}

	outcome := executeEffect(ctx, s, dispatch.Cmd)
	eventID := uuid.Must(uuid.NewV7())

	next, _ = model.Update(s.projection, model.PortIntent{
		TaskID:    dispatch.TaskID,
		EventID:   eventID,
		Timestamp: nowFunc(),
		Outcome:   outcome,
	})
	s.projection = next

	if err := s.persist(ctx); err != nil {
		return model.Event{}, newExitError(ExitIO, fmt.Errorf("persisting event log: %w", err))
	}

	if !outcome.Success {
		return model.Event{}, newExitError(exitCodeForReason(outcome.Reason), fmt.Errorf("%T failed: %s", cmd, outcome.Reason))
	}

	return s.projection.Events[len(s.projection.Events)-1], nil
}

// exitCodeForReason maps a port-level failure reason to the CLI exit
// code contract. Cryptographic reasons map to ExitCrypto, ReasonIoFailure
// maps to ExitIO, and every other reason maps to ExitValidation.
func exitCodeForReason(reason model.ReasonCode) int {
	switch reason {
	case model.ReasonKdfFailure, model.ReasonKeyGenerationReject, model.ReasonSignatureFailure,
		model.ReasonPathlenViolation, model.ReasonChainInvalid, model.ReasonCidMismatch:
		return ExitCrypto
	case model.ReasonIoFailure:
		return ExitIO
	default:
		return ExitValidation
	}
}
