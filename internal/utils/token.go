// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

const tokenAlphabet = "abcdefghijklmnopqrstuvwxyz0123456789"

// RandomAlphanumeric returns n characters drawn uniformly from [a-z0-9]
// using crypto/rand.
func RandomAlphanumeric(n int) (string, error) {
	alphabetLen := big.NewInt(int64(len(tokenAlphabet)))

	buf := make([]byte, n)
	for i := range buf {
		idx, err := rand.Int(rand.Reader, alphabetLen)
		if err != nil {
			return "", fmt.Errorf("error reading random source: %w", err)
		}
		buf[i] = tokenAlphabet[idx.Int64()]
	}

	return string(buf), nil
}
