// Copyright 2026 The Keyforge Authors
//
// https://github.com/lockwell/keyforge
//
// Licensed under the MIT License. See LICENSE file in the project root for
// full license information.

// Command keyforge derives a reproducible hierarchy of PKI certificates
// and NATS identities from a single passphrase.
package main

import (
	"fmt"
	"os"
)

func main() {
	root := newRootCmd()
	err := root.Execute()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
	}
	os.Exit(exitCodeFor(err))
}
