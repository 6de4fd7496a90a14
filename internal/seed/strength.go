// Copyright 2026 The Keyforge Authors
//
// https://github.com/lockwell/keyforge
//
// Licensed under the MIT License. See LICENSE file in the project root for
// full license information.

package seed

import (
	"math"
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// Strength classifies an estimated passphrase entropy. The zero value,
// TooWeak, is deliberately the most restrictive classification so that a
// caller which forgets to check an error still fails closed.
type Strength int

const (
	// TooWeak is below 40 bits of estimated entropy.
	TooWeak Strength = iota
	// Weak is 40-54 bits.
	Weak
	// Moderate is 55-69 bits; this is the minimum required by DeriveMaster.
	Moderate
	// Strong is 70-94 bits.
	Strong
	// VeryStrong is 95 bits or more.
	VeryStrong
)

func (s Strength) String() string {
	switch s {
	case TooWeak:
		return "too-weak"
	case Weak:
		return "weak"
	case Moderate:
		return "moderate"
	case Strong:
		return "strong"
	case VeryStrong:
		return "very-strong"
	default:
		return "unknown"
	}
}

// dictionaryBitsPerToken is the per-recognized-word entropy contribution
// used by the word-tokenized estimator, matching the value a large common
// wordlist (e.g. a ~5800 word Diceware-style list, log2(5800) ≈ 12.5)
// would contribute per token.
const dictionaryBitsPerToken = 12.5

// commonWords is a small, deliberately non-exhaustive set of dictionary
// tokens used to recognize word-boundary entropy. It is not a security
// boundary by itself: the character-class estimator below provides a floor
// even when no recognized words are present, and Classify reports the
// maximum of the two estimates per the specification.
var commonWords = buildCommonWordSet()

func buildCommonWordSet() map[string]struct{} {
	words := []string{
		"correct", "horse", "battery", "staple", "mountain", "river",
		"purple", "dragon", "silver", "forest", "winter", "summer",
		"ocean", "thunder", "copper", "garden", "shadow", "crystal",
		"harbor", "meadow", "falcon", "canyon", "ember", "glacier",
		"lantern", "orchid", "prairie", "quartz", "ribbon", "sparrow",
		"the", "and", "with", "for", "from", "that", "this",
	}
	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		set[w] = struct{}{}
	}
	return set
}

// Classify estimates the entropy of a passphrase using two independent
// models and reports the stronger classification of the two, per the
// specification: word-tokenized entropy (dictionaryBitsPerToken bits per
// recognized token) and character-class entropy (length times log2 of the
// union of character classes observed).
//
// Passphrases are NFC-normalized before either estimate is computed so
// that non-ASCII scripts are measured consistently regardless of the
// Unicode normalization form in which they were typed; this is the rule
// this implementation applies to the open question of near-boundary,
// non-ASCII classification left unresolved by the specification.
func Classify(passphrase string) Strength {
	normalized := norm.NFC.String(passphrase)

	wordBits := wordTokenizedEntropy(normalized)
	charBits := characterClassEntropy(normalized)

	bits := math.Max(wordBits, charBits)

	switch {
	case bits < 40:
		return TooWeak
	case bits < 55:
		return Weak
	case bits < 70:
		return Moderate
	case bits < 95:
		return Strong
	default:
		return VeryStrong
	}
}

func wordTokenizedEntropy(s string) float64 {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})

	var recognized int
	for _, f := range fields {
		if _, ok := commonWords[strings.ToLower(f)]; ok {
			recognized++
		}
	}

	if recognized == 0 {
		return 0
	}

	return float64(recognized) * dictionaryBitsPerToken
}

func characterClassEntropy(s string) float64 {
	var hasLower, hasUpper, hasDigit, hasSymbol bool
	length := 0

	for _, r := range s {
		length++
		switch {
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsDigit(r):
			hasDigit = true
		default:
			hasSymbol = true
		}
	}

	if length == 0 {
		return 0
	}

	charset := 0
	if hasLower {
		charset += 26
	}
	if hasUpper {
		charset += 26
	}
	if hasDigit {
		charset += 10
	}
	if hasSymbol {
		charset += 33
	}
	if charset == 0 {
		return 0
	}

	return float64(length) * math.Log2(float64(charset))
}
