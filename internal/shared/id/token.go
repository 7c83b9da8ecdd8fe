// Package id generates random Base62 tokens. Attachment stored names are
// prefixed with such a token so that concurrent uploads with identical
// filenames never collide and file names cannot be guessed.
package id

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

const (
	// Base62 alphabet: 0-9, A-Z, a-z
	alphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz"

	// DefaultLength is the default length for generated tokens
	DefaultLength = 16
)

// Generate creates a random token with the specified length using Base62
// encoding. The generated token is cryptographically random and URL-safe.
func Generate(length int) (string, error) {
	if length <= 0 {
		length = DefaultLength
	}

	result := make([]byte, length)
	alphabetLen := big.NewInt(int64(len(alphabet)))

	for i := 0; i < length; i++ {
		num, err := rand.Int(rand.Reader, alphabetLen)
		if err != nil {
			return "", fmt.Errorf("failed to generate random number: %w", err)
		}
		result[i] = alphabet[num.Int64()]
	}

	return string(result), nil
}

// MustGenerate creates a random token and panics on error.
func MustGenerate(length int) string {
	token, err := Generate(length)
	if err != nil {
		panic(err)
	}
	return token
}
