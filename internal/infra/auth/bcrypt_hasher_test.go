package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestBcryptHasher_HashAndCheck(t *testing.T) {
	hasher := NewBcryptHasher(bcrypt.MinCost)

	hash, err := hasher.Hash("pw123")

	require.NoError(t, err)
	assert.NotEmpty(t, hash)
	assert.NotEqual(t, "pw123", hash)
	assert.True(t, hasher.Check("pw123", hash))
	assert.False(t, hasher.Check("wrong", hash))
}

func TestBcryptHasher_FreshSaltPerCall(t *testing.T) {
	hasher := NewBcryptHasher(bcrypt.MinCost)

	first, err := hasher.Hash("pw123")
	require.NoError(t, err)
	second, err := hasher.Hash("pw123")
	require.NoError(t, err)

	// Same plaintext, different hashes, both verifiable.
	assert.NotEqual(t, first, second)
	assert.True(t, hasher.Check("pw123", first))
	assert.True(t, hasher.Check("pw123", second))
}

func TestBcryptHasher_InvalidCostFallsBackToDefault(t *testing.T) {
	hasher := NewBcryptHasher(-1)

	hash, err := hasher.Hash("pw123")

	require.NoError(t, err)
	cost, err := bcrypt.Cost([]byte(hash))
	require.NoError(t, err)
	assert.Equal(t, bcrypt.DefaultCost, cost)
}

func TestBcryptHasher_CheckRejectsGarbageHash(t *testing.T) {
	hasher := NewBcryptHasher(bcrypt.MinCost)

	assert.False(t, hasher.Check("pw123", "not-a-bcrypt-hash"))
}
