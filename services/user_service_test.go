package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"servispro-backend/store"
)

func newUserService(env *testEnv) *UserService {
	return NewUserService(env.store, env.clock)
}

func TestRegisterAndAuthenticate(t *testing.T) {
	env := newTestEnv()
	users := newUserService(env)

	user, err := users.Register("shop@example.com", "5551234567", "Servis", "s3cretpass")
	require.NoError(t, err)
	assert.NotEmpty(t, user.PasswordHash)
	assert.NotEqual(t, "s3cretpass", user.PasswordHash)

	// by email
	got, err := users.Authenticate("shop@example.com", "s3cretpass")
	require.NoError(t, err)
	assert.Equal(t, user.ID, got.ID)

	// by phone
	got, err = users.Authenticate("5551234567", "s3cretpass")
	require.NoError(t, err)
	assert.Equal(t, user.ID, got.ID)

	_, err = users.Authenticate("shop@example.com", "wrongpass")
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = users.Authenticate("nobody@example.com", "s3cretpass")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestRegisterIsSingleTenant(t *testing.T) {
	env := newTestEnv()
	users := newUserService(env)

	_, err := users.Register("shop@example.com", "5551234567", "Servis", "s3cretpass")
	require.NoError(t, err)

	_, err = users.Register("other@example.com", "5557654321", "Other", "s3cretpass")
	assert.ErrorIs(t, err, ErrConflict)
}

func TestRegisterValidation(t *testing.T) {
	env := newTestEnv()
	users := newUserService(env)

	_, err := users.Register("bad-email", "5551234567", "Servis", "s3cretpass")
	assert.ErrorIs(t, err, ErrValidation)

	_, err = users.Register("shop@example.com", "5551234567", "Servis", "short")
	assert.ErrorIs(t, err, ErrValidation)

	// nothing written on either failure
	var stored []struct{}
	found, err := env.store.Get(store.Users, &stored)
	require.NoError(t, err)
	assert.False(t, found)
}
