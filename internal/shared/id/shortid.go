// Package id generates Stripe-style prefixed identifiers ("tnt_xK9mP2vL3nQa").
package id

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"strings"
)

const (
	// Base62 alphabet: 0-9, A-Z, a-z
	alphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz"

	// DefaultLength is the default length of the random part
	DefaultLength = 12
)

const (
	PrefixTenant       = "tnt"
	PrefixQuotation    = "qt"
	PrefixNotification = "ntf"
)

// Generate creates a random Base62 string of the given length.
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

// NewTenantID returns a fresh tenant identifier.
func NewTenantID() (string, error) { return GenerateWithPrefix(PrefixTenant) }

// NewQuotationID returns a fresh quotation identifier.
func NewQuotationID() (string, error) { return GenerateWithPrefix(PrefixQuotation) }

// NewNotificationID returns a fresh notification identifier.
func NewNotificationID() (string, error) { return GenerateWithPrefix(PrefixNotification) }

// ValidatePrefix checks that prefixedID looks like "expected_xxx".
func ValidatePrefix(prefixedID, expectedPrefix string) error {
	prefix, rest, ok := strings.Cut(prefixedID, "_")
	if !ok || rest == "" {
		return fmt.Errorf("invalid prefixed ID format: %s", prefixedID)
	}
	if prefix != expectedPrefix {
		return fmt.Errorf("invalid prefix: expected %s, got %s", expectedPrefix, prefix)
	}
	return nil
}
