// Package id generates random identifiers for statements and credentials.
package id

import (
	"crypto/rand"
	"fmt"
	"math/big"

	"github.com/google/uuid"
)

const (
	// Base62 alphabet: 0-9, A-Z, a-z
	alphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz"

	CredentialKeyPrefix    = "lrs"
	CredentialKeyLength    = 24
	CredentialSecretLength = 40
)

// Generate creates a cryptographically random Base62 string of length n.
func Generate(n int) (string, error) {
	if n <= 0 {
		return "", fmt.Errorf("invalid id length %d", n)
	}

	result := make([]byte, n)
	alphabetLen := big.NewInt(int64(len(alphabet)))

	for i := range result {
		num, err := rand.Int(rand.Reader, alphabetLen)
		if err != nil {
			return "", fmt.Errorf("failed to generate random number: %w", err)
		}
		result[i] = alphabet[num.Int64()]
	}

	return string(result), nil
}

// NewCredentialKey returns a new public credential key, e.g. "lrs_3fK9...".
func NewCredentialKey() (string, error) {
	s, err := Generate(CredentialKeyLength)
	if err != nil {
		return "", err
	}
	return CredentialKeyPrefix + "_" + s, nil
}

// NewCredentialSecret returns a new credential secret. It is shown once and
// only its hash is stored.
func NewCredentialSecret() (string, error) {
	return Generate(CredentialSecretLength)
}

// NewStatementID returns a random (version 4) UUID in canonical form.
func NewStatementID() string {
	return uuid.NewString()
}
