package entity

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAccountView_OmitsPasswordHash(t *testing.T) {
	account := Account{
		Email:        "f1@t.com",
		PasswordHash: "$2a$10$secret",
		Role:         RoleFarmer,
		CreatedAt:    2025,
	}

	raw, err := json.Marshal(account.View())

	require.NoError(t, err)
	assert.NotContains(t, string(raw), "secret")
	assert.JSONEq(t, `{"email":"f1@t.com","role":"farmer","createdAt":2025}`, string(raw))
}

func TestViews(t *testing.T) {
	accounts := []Account{
		{Email: "f1@t.com", PasswordHash: "h1", Role: RoleFarmer, CreatedAt: 2025},
		{Email: "o1@t.com", PasswordHash: "h2", Role: RoleVehicleOwner, CreatedAt: 2026},
	}

	views := Views(accounts)

	require.Len(t, views, 2)
	assert.Equal(t, "f1@t.com", views[0].Email)
	assert.Equal(t, RoleVehicleOwner, views[1].Role)
}

func TestRole_IsValid(t *testing.T) {
	assert.True(t, RoleFarmer.IsValid())
	assert.True(t, RoleVehicleOwner.IsValid())
	assert.False(t, Role("admin").IsValid())
	assert.False(t, Role("").IsValid())
}
