// Copyright 2026 The Keyforge Authors
//
// https://github.com/lockwell/keyforge
//
// Licensed under the MIT License. See LICENSE file in the project root for
// full license information.

package main

import (
	"fmt"
	"os"

	"golang.org/x/term"
)

// readPassphrase prompts on stderr and reads a passphrase from the
// controlling terminal with echo disabled, so it never lands in shell
// history or a process listing. It is the only place this binary reads
// secret material from outside an explicit CLI argument.
func readPassphrase(prompt string) (string, error) {
	fmt.Fprint(os.Stderr, prompt)
	raw, err := term.ReadPassword(int(os.Stdin.Fd()))
	fmt.Fprintln(os.Stderr)
	if err != nil {
		return "", fmt.Errorf("reading passphrase: %w", err)
	}
	return string(raw), nil
}
