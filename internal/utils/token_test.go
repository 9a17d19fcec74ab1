// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRandomAlphanumeric_FormatAndLength(t *testing.T) {
	s, err := RandomAlphanumeric(24)
	require.NoError(t, err)
	assert.Regexp(t, regexp.MustCompile(`^[a-z0-9]{24}$`), s)
}

func TestRandomAlphanumeric_Zero(t *testing.T) {
	s, err := RandomAlphanumeric(0)
	require.NoError(t, err)
	assert.Empty(t, s)
}

func TestRandomAlphanumeric_NoRepeats(t *testing.T) {
	seen := make(map[string]struct{}, 1000)
	for range 1000 {
		s, err := RandomAlphanumeric(24)
		require.NoError(t, err)
		_, dup := seen[s]
		require.False(t, dup, "duplicate token %s", s)
		seen[s] = struct{}{}
	}
}
