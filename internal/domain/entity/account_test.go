package entity

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAccount_Public_OmitsPasswordHash(t *testing.T) {
	account := &Account{
		ID:           uuid.New(),
		Email:        "test@example.com",
		Name:         "Test User",
		PasswordHash: "$2a$10$secret",
		CreatedAt:    time.Now(),
	}

	public := account.Public()

	assert.Equal(t, account.ID, public.ID)
	assert.Equal(t, account.Email, public.Email)
	assert.Equal(t, account.Name, public.Name)

	raw, err := json.Marshal(public)
	require.NoError(t, err)
	assert.NotContains(t, string(raw), "secret")
	assert.NotContains(t, string(raw), "passwordHash")
}
