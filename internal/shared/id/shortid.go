// Package id generates Stripe-style prefixed identifiers exposed in the API
// instead of numeric primary keys.
package id

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"strings"
)

const (
	alphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz"

	// DefaultLength is the default length for generated short IDs
	DefaultLength = 12
)

const (
	PrefixClient  = "cl"
	PrefixPayment = "pay"
)

// Generate creates a cryptographically random Base62 string.
func Generate(length int) (string, error) {
	if length <= 0 {
		length = DefaultLength
	}

	result := make([]byte, length)
	max := big.NewInt(int64(len(alphabet)))
	for i := range result {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", fmt.Errorf("failed to generate random number: %w", err)
		}
		result[i] = alphabet[n.Int64()]
	}
	return string(result), nil
}

// GenerateWithPrefix creates an ID in the format "prefix_randomstring".
func GenerateWithPrefix(prefix string) (string, error) {
	s, err := Generate(DefaultLength)
	if err != nil {
		return "", err
	}
	return prefix + "_" + s, nil
}

// NewClientID generates a new client SID.
func NewClientID() (string, error) {
	return GenerateWithPrefix(PrefixClient)
}

// NewPaymentID generates a new payment SID.
func NewPaymentID() (string, error) {
	return GenerateWithPrefix(PrefixPayment)
}

// ValidatePrefix checks that prefixedID is "<expected>_<non-empty>".
func ValidatePrefix(prefixedID, expected string) error {
	prefix, rest, ok := strings.Cut(prefixedID, "_")
	if !ok || rest == "" {
		return fmt.Errorf("invalid prefixed ID format: %q", prefixedID)
	}
	if prefix != expected {
		return fmt.Errorf("invalid prefix: expected %s, got %s", expected, prefix)
	}
	return nil
}
