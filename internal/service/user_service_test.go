package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mahlalem-eng/themosthigh-backend/internal/entity"
	"github.com/mahlalem-eng/themosthigh-backend/internal/repository"
)

func TestRegisterHashesPassword(t *testing.T) {
	ctx := context.Background()
	users := NewUserService(repository.NewMemoryUserRepository(), nil, "test-secret")

	created, err := users.Register(ctx, &entity.User{
		Username: "thandi",
		Email:    "thandi@example.com",
	}, "hunter2")
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.NotEqual(t, "hunter2", created.Password)
}

func TestLoginAndIdentity(t *testing.T) {
	ctx := context.Background()
	users := NewUserService(repository.NewMemoryUserRepository(), nil, "test-secret")

	created, err := users.Register(ctx, &entity.User{
		Username: "thandi",
		Email:    "thandi@example.com",
	}, "hunter2")
	require.NoError(t, err)

	token, err := users.Login(ctx, "thandi@example.com", "hunter2")
	require.NoError(t, err)
	assert.Equal(t, created.ID, users.IdentityFromToken(token))

	_, err = users.Login(ctx, "thandi@example.com", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = users.Login(ctx, "nobody@example.com", "hunter2")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestIdentityFallsBackToGuest(t *testing.T) {
	users := NewUserService(repository.NewMemoryUserRepository(), nil, "test-secret")

	assert.Equal(t, entity.GuestIdentity, users.IdentityFromToken(""))
	assert.Equal(t, entity.GuestIdentity, users.IdentityFromToken("not-a-jwt"))

	other := NewUserService(repository.NewMemoryUserRepository(), nil, "other-secret")
	created, err := other.Register(context.Background(), &entity.User{
		Username: "x", Email: "x@example.com",
	}, "pw")
	require.NoError(t, err)
	_ = created
	token, err := other.Login(context.Background(), "x@example.com", "pw")
	require.NoError(t, err)

	// token signed with a different secret is rejected
	assert.Equal(t, entity.GuestIdentity, users.IdentityFromToken(token))
}
