// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package token

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"

	"github.com/google/uuid"
)

// NewPollID generates a fresh poll identifier.
// UUIDv4 string - globally unique, never reused, safe to put in a URL.
func NewPollID() string {
	return uuid.NewString()
}

// NewID creates a random hex ID of the specified byte length
func NewID(byteLen int) (string, error) {
	b := make([]byte, byteLen)
	_, err := rand.Read(b)
	if err != nil {
		return "", fmt.Errorf("failed to generate random ID: %w", err)
	}
	return hex.EncodeToString(b), nil
}
