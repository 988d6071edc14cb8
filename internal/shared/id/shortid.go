// Package id generates short, URL-safe, prefixed identifiers such as
// "inv_3kQ9xP2mL7aB" for invoices.
package id

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"strings"
)

const (
	alphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz"

	DefaultLength = 12
)

const PrefixInvoice = "inv"

var alphabetLen = big.NewInt(int64(len(alphabet)))

// Generate returns a cryptographically random Base62 string.
func Generate(length int) (string, error) {
	if length <= 0 {
		length = DefaultLength
	}

	result := make([]byte, length)
	for i := range result {
		n, err := rand.Int(rand.Reader, alphabetLen)
		if err != nil {
			return "", fmt.Errorf("failed to generate random number: %w", err)
		}
		result[i] = alphabet[n.Int64()]
	}
	return string(result), nil
}

// GenerateWithPrefix returns "prefix_<random>".
func GenerateWithPrefix(prefix string, length int) (string, error) {
	s, err := Generate(length)
	if err != nil {
		return "", err
	}
	return prefix + "_" + s, nil
}

// NewInvoiceID generates an invoice identifier.
func NewInvoiceID() (string, error) {
	return GenerateWithPrefix(PrefixInvoice, DefaultLength)
}

// HasPrefix reports whether prefixedID is "<prefix>_<non-empty>".
func HasPrefix(prefixedID, prefix string) bool {
	p, rest, ok := strings.Cut(prefixedID, "_")
	return ok && p == prefix && rest != ""
}
