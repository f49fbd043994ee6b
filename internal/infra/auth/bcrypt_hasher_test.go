package auth

import (
	"testing"

	"storefront/config"

	"github.com/stretchr/testify/assert"
)

func newTestHasher() *bcryptHasher {
	// Minimum cost keeps the test fast; the production cost comes from config.
	return &bcryptHasher{cost: 4}
}

func TestBcryptHasher_HashAndCheck(t *testing.T) {
	hasher := newTestHasher()

	password := "pw123"
	hash, err := hasher.Hash(password)
	assert.NoError(t, err)
	assert.NotEmpty(t, hash)
	assert.NotEqual(t, password, hash)

	// Round-trip: the original plaintext always verifies.
	assert.True(t, hasher.Check(password, hash))

	// Any other plaintext always fails.
	assert.False(t, hasher.Check("wrong", hash))
	assert.False(t, hasher.Check("", hash))
}

func TestBcryptHasher_FreshSaltPerCall(t *testing.T) {
	hasher := newTestHasher()

	first, err := hasher.Hash("pw123")
	assert.NoError(t, err)
	second, err := hasher.Hash("pw123")
	assert.NoError(t, err)

	// Deterministic format, non-deterministic output.
	assert.NotEqual(t, first, second)
	assert.True(t, hasher.Check("pw123", first))
	assert.True(t, hasher.Check("pw123", second))
}

func TestBcryptHasher_MalformedDigest(t *testing.T) {
	hasher := newTestHasher()

	// A corrupted digest must fail the comparison, never panic.
	assert.False(t, hasher.Check("pw123", "not-a-bcrypt-digest"))
	assert.False(t, hasher.Check("pw123", ""))
}

func TestNewBcryptHasher_CostFromConfig(t *testing.T) {
	cfg := &config.Config{Auth: &config.AuthConfig{BcryptCost: 4}}

	hasher := NewBcryptHasher(cfg)
	hash, err := hasher.Hash("pw123")
	assert.NoError(t, err)
	assert.True(t, hasher.Check("pw123", hash))
}
