// Copyright 2026 The Keyforge Authors
//
// https://github.com/lockwell/keyforge
//
// Licensed under the MIT License. See LICENSE file in the project root for
// full license information.

package main

import (
	"errors"
	"fmt"
	"time"

	"github.com/lockwell/keyforge/internal/model"
)

// Exit codes, per the specification's CLI contract.
const (
	ExitSuccess    = 0
	ExitUsage      = 1
	ExitValidation = 2
	ExitCrypto     = 3
	ExitIO         = 4
	ExitCancelled  = 5
)

// exitError pairs an error with the process exit code it should produce.
type exitError struct {
	code int
	err  error
}

func (e *exitError) Error() string { return e.err.Error() }
func (e *exitError) Unwrap() error { return e.err }

func newExitError(code int, err error) error {
	return &exitError{code: code, err: err}
}

// exitCodeFor maps err to the process exit code main should use. A nil
// error maps to ExitSuccess; an unrecognized error defaults to ExitIO,
// since every code path in this package that can fail for a structured
// reason wraps it in an exitError.
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}
	var ee *exitError
	if errors.As(err, &ee) {
		return ee.code
	}
	return ExitIO
}

// rejectionError converts a validation-time model.EffectReject into an
// exitError carrying ExitValidation, or reports a usage error if effect
// is not a rejection at all (which would indicate a command wired to the
// wrong model.Command type).
func rejectionError(effect model.Effect) error {
	reject, ok := effect.(model.EffectReject)
	if !ok {
		return newExitError(ExitUsage, fmt.Errorf("unexpected effect %T", effect))
	}
	return newExitError(ExitValidation, fmt.Errorf("%s rejected: %s", reject.Command, reject.Reason))
}

// nowFunc returns the current time, isolated behind a function variable
// so the effect executor's single clock read is easy to audit: every
// other timestamp in a generated artifact is derived from this one call
// per command, never read again mid-command.
var nowFunc = time.Now
