// Copyright 2026 The Keyforge Authors
//
// https://github.com/lockwell/keyforge
//
// Licensed under the MIT License. See LICENSE file in the project root for
// full license information.

package natsid

import (
	"fmt"
	"strings"
)

const credsTemplate = `-----BEGIN NATS USER JWT-----
%s
------END NATS USER JWT------

************************* IMPORTANT *************************
NKEY Seed printed below can be used to sign and prove identity.
NKEYs are sensitive and should be treated as secrets.

-----BEGIN USER NKEY SEED-----
%s
------END USER NKEY SEED------

*************************************************************
`

// BuildCredsFile renders user's JWT and seed into the standard NATS
// ".creds" bundle format consumed by nats.go's UserCredentials option.
// user must be a TierUser identity.
func BuildCredsFile(user Identity) (string, error) {
	if user.Tier != TierUser {
		return "", fmt.Errorf("natsid: creds file requires a user identity, got %s", user.Tier)
	}
	if user.JWT == "" {
		return "", fmt.Errorf("natsid: user %q has no signed JWT", user.Name)
	}

	encodedSeed, err := user.EncodedSeed()
	if err != nil {
		return "", err
	}

	return fmt.Sprintf(credsTemplate, strings.TrimSpace(user.JWT), encodedSeed), nil
}
