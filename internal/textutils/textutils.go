// Copyright 2026 The Keyforge Authors
//
// https://github.com/lockwell/keyforge
//
// Licensed under the MIT License. See LICENSE file in the project root for
// full license information.

package textutils

import (
	"fmt"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// InList is a helper function to emulate Python's `if "x"
// in list:` functionality
func InList(needle string, haystack []string) bool {
	for _, item := range haystack {
		if item == needle {
			return true
		}
	}
	return false
}

// LowerCaseStringSlice is a helper function to convert all provided string
// slice elements to lowercase.
func LowerCaseStringSlice(xs []string) []string {
	lxs := make([]string, 0, len(xs))
	for idx := range xs {
		lxs = append(lxs, strings.ToLower(xs[idx]))
	}

	return lxs
}

// PrintHeader printers a section header to help separate otherwise
// potentially dense blocks of text.
func PrintHeader(headerText string) {
	headerBorderStr := strings.Repeat("=", len(headerText))
	fmt.Printf(
		"\n\n%s\n%s\n%s\n",
		headerBorderStr,
		headerText,
		headerBorderStr,
	)
}

// InsertDelimiter inserts a delimiter into the provided string every pos
// characters. If the length of the provided string is less than pos + 1
// characters the original string is returned unmodified as we are unable to
// insert delimiter between blocks of characters of specified (pos) size.
func InsertDelimiter(s string, delimiter string, pos int) string {

	if len(s) < pos+1 {
		return s
	}

	r := []rune(s)

	var ctr int

	var delimitedStr string
	for i, v := range r {
		c := string(v)
		ctr++

		if (ctr == pos) && (i+1 != len(r)) {
			delimitedStr += c + delimiter
			ctr = 0
			continue
		}
		delimitedStr += c
	}

	return delimitedStr
}

// NormalizeLabel applies NFC normalization, collapses internal whitespace
// runs to a single space, trims leading/trailing whitespace, and lower-cases
// the result. It is used to derive the reproducibility contract for seed
// labels from human-supplied names (intermediate CA names, certificate
// common names) so that two visually identical names always yield the same
// label regardless of how they were typed or which Unicode form they arrived
// in.
func NormalizeLabel(s string) string {
	normalized := norm.NFC.String(s)
	fields := strings.Fields(normalized)
	return strings.ToLower(strings.Join(fields, " "))
}
