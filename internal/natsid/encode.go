// Copyright 2026 The Keyforge Authors
//
// https://github.com/lockwell/keyforge
//
// Licensed under the MIT License. See LICENSE file in the project root for
// full license information.

package natsid

import (
	"crypto/sha256"
	"encoding/base32"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"time"

	"github.com/nats-io/jwt/v2"
	"github.com/nats-io/nkeys"
)

// jwtLibVersion mirrors nats-io/jwt/v2's own unexported libVersion. It
// must be set on every claim this package signs so Decode takes the V2
// signature path (verifying over header+payload rather than payload
// alone), matching what ClaimsData.Encode would have set.
const jwtLibVersion = 2

// deterministicJTI derives a jwt "jti" claim from the identity's own
// seed label and its issuer's public key. ClaimsData.Encode instead
// derives jti from a self-hash of the live claims after stamping
// IssuedAt with time.Now(), which this tool cannot use: the same master
// seed and inputs must reproduce the same JWT bytes on any machine, at
// any time.
func deterministicJTI(label, issuerPublic string) string {
	sum := sha256.Sum256([]byte(label + "|" + issuerPublic))
	return base32.StdEncoding.WithPadding(base32.NoPadding).EncodeToString(sum[:])
}

// encodeJWT signs claim directly instead of going through
// ClaimsData.Encode, which stamps IssuedAt from the wall clock and
// derives jti from the result on every call. Here issuedAt and jti are
// both pure functions of the caller's inputs, so the returned token is
// byte-identical across runs and machines given the same master seed.
//
// This reproduces ClaimsData.doEncode's wire format (JOSE header, dot,
// claims payload, dot, signature, all base64url-without-padding) so the
// result remains a standard token any nats-io/jwt/v2 Decode* function
// can parse and verify.
func encodeJWT(claim jwt.Claims, kp nkeys.KeyPair, label, issuerPublic string, issuedAt time.Time) (string, error) {
	data := claim.Claims()
	data.Issuer = issuerPublic
	data.IssuedAt = issuedAt.Unix()
	data.ID = deterministicJTI(label, issuerPublic)

	header, err := marshalSegment(jwt.Header{Type: jwt.TokenTypeJwt, Algorithm: jwt.AlgorithmNkey})
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrSignatureFailure, err)
	}
	payload, err := marshalSegment(claim)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrSignatureFailure, err)
	}

	toSign := header + "." + payload
	sig, err := kp.Sign([]byte(toSign))
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrSignatureFailure, err)
	}
	return toSign + "." + base64.RawURLEncoding.EncodeToString(sig), nil
}

func marshalSegment(v interface{}) (string, error) {
	j, err := json.Marshal(v)
	if err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(j), nil
}
