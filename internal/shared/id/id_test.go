package id

import (
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerate(t *testing.T) {
	s, err := Generate(32)
	require.NoError(t, err)
	assert.Len(t, s, 32)
	for _, r := range s {
		assert.True(t, strings.ContainsRune(alphabet, r), "unexpected rune %q", r)
	}

	_, err = Generate(0)
	assert.Error(t, err)
}

func TestNewCredentialKey(t *testing.T) {
	seen := make(map[string]bool)
	for range 100 {
		key, err := NewCredentialKey()
		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(key, CredentialKeyPrefix+"_"))
		assert.Len(t, key, len(CredentialKeyPrefix)+1+CredentialKeyLength)
		assert.False(t, seen[key], "duplicate key generated")
		seen[key] = true
	}
}

func TestNewStatementID(t *testing.T) {
	parsed, err := uuid.Parse(NewStatementID())
	require.NoError(t, err)
	assert.Equal(t, uuid.Version(4), parsed.Version())
	assert.NotEqual(t, NewStatementID(), NewStatementID())
}
