// Copyright 2026 The Keyforge Authors
//
// https://github.com/lockwell/keyforge
//
// Licensed under the MIT License. See LICENSE file in the project root for
// full license information.

package seed_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lockwell/keyforge/internal/seed"
)

func TestClassifyBoundaries(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want seed.Strength
	}{
		{"too weak", "aaaaaaaa", seed.TooWeak},
		{"very strong dictionary phrase", "correct horse battery staple mountain river", seed.VeryStrong},
		{"mixed class strong", "aB3!aB3!aB3!", seed.Strong},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, seed.Classify(tc.in))
		})
	}
}

func TestClassifyMonotonicWithLength(t *testing.T) {
	short := "aB3!aB3!"
	long := strings.Repeat("aB3!", 10)

	assert.GreaterOrEqual(t, int(seed.Classify(long)), int(seed.Classify(short)))
}

func TestClassifyStringerNames(t *testing.T) {
	assert.Equal(t, "too-weak", seed.TooWeak.String())
	assert.Equal(t, "weak", seed.Weak.String())
	assert.Equal(t, "moderate", seed.Moderate.String())
	assert.Equal(t, "strong", seed.Strong.String())
	assert.Equal(t, "very-strong", seed.VeryStrong.String())
}
