package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSettingsDefaultsUntilSaved(t *testing.T) {
	env := newTestEnv()
	settings := NewSettingsService(env.store)

	got, err := settings.Get()
	require.NoError(t, err)
	assert.Equal(t, "Laptop Servis Yönetimi", got.CompanyName)
	assert.Equal(t, "dark", got.Theme)

	got.CompanyName = "Başka Servis"
	got.Theme = "light"
	require.NoError(t, settings.Update(got))

	saved, err := settings.Get()
	require.NoError(t, err)
	assert.Equal(t, "Başka Servis", saved.CompanyName)
	assert.Equal(t, "light", saved.Theme)
}

func TestEmailConfigRoundTrip(t *testing.T) {
	env := newTestEnv()
	settings := NewSettingsService(env.store)

	cfg, err := settings.GetEmailConfig()
	require.NoError(t, err)
	assert.True(t, cfg.Secure)
	assert.Empty(t, cfg.Server)

	cfg.Server = "smtp.example.com"
	cfg.Port = "587"
	require.NoError(t, settings.SaveEmailConfig(cfg))

	saved, err := settings.GetEmailConfig()
	require.NoError(t, err)
	assert.Equal(t, "smtp.example.com", saved.Server)
	assert.Equal(t, "587", saved.Port)
}
