package config_test

import (
	"errors"
	"testing"

	"github.com/funkybooboo/alle-sub000/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProvider_GetReturnsDefaultWhenAbsent(t *testing.T) {
	p := config.NewMapProvider(map[string]string{"PORT": "8080"})

	value, err := p.Get("PORT", "4000")
	require.NoError(t, err)
	assert.Equal(t, "8080", value)

	value, err = p.Get("CORS_ORIGIN", "*")
	require.NoError(t, err)
	assert.Equal(t, "*", value)
}

func TestProvider_GetWithoutDefaultFails(t *testing.T) {
	p := config.NewMapProvider(nil)

	_, err := p.Get("VITE_API_URL")

	var missing *config.MissingKeyError
	require.True(t, errors.As(err, &missing))
	assert.Equal(t, "VITE_API_URL", missing.Key)
	assert.False(t, p.Has("VITE_API_URL"))
}

func TestProvider_GetNumber(t *testing.T) {
	p := config.NewMapProvider(map[string]string{"N": " 42 ", "BAD": "forty"})

	n, err := p.GetNumber("N")
	require.NoError(t, err)
	assert.Equal(t, 42, n)

	n, err = p.GetNumber("ABSENT", 7)
	require.NoError(t, err)
	assert.Equal(t, 7, n)

	_, err = p.GetNumber("BAD")
	var invalid *config.InvalidValueError
	require.True(t, errors.As(err, &invalid))

	_, err = p.GetNumber("ABSENT")
	var missing *config.MissingKeyError
	require.True(t, errors.As(err, &missing))
}

func TestProvider_GetBoolean(t *testing.T) {
	p := config.NewMapProvider(map[string]string{"ON": "yes", "OFF": "0", "BAD": "maybe"})

	on, err := p.GetBoolean("ON")
	require.NoError(t, err)
	assert.True(t, on)

	off, err := p.GetBoolean("OFF")
	require.NoError(t, err)
	assert.False(t, off)

	def, err := p.GetBoolean("ABSENT", true)
	require.NoError(t, err)
	assert.True(t, def)

	_, err = p.GetBoolean("BAD")
	require.Error(t, err)
}

func TestProvider_EnvProviderReadsEnvironment(t *testing.T) {
	t.Setenv("ALLE_TEST_KEY", "value")
	p := config.NewEnvProvider()

	assert.True(t, p.Has("ALLE_TEST_KEY"))
	value, err := p.Get("ALLE_TEST_KEY")
	require.NoError(t, err)
	assert.Equal(t, "value", value)
}

func TestFromProvider_Defaults(t *testing.T) {
	cfg, err := config.FromProvider(config.NewMapProvider(nil))
	require.NoError(t, err)

	assert.Equal(t, "4000", cfg.AppPort)
	assert.Equal(t, []string{"*"}, cfg.CorsOrigins)
	assert.Equal(t, config.StorageMemory, cfg.StorageDriver)
	assert.Equal(t, int64(config.DefaultMaxUploadBytes), cfg.MaxUploadBytes)
	assert.Equal(t, 30, cfg.TrashRetentionDays)
	assert.Equal(t, 30, cfg.WSHeartbeatSeconds)
	assert.Nil(t, cfg.TrustedProxies)
}

func TestFromProvider_ParsesLists(t *testing.T) {
	cfg, err := config.FromProvider(config.NewMapProvider(map[string]string{
		"CORS_ORIGIN":     "http://localhost:5173, https://alle.app ,",
		"TRUSTED_PROXIES": " , ",
	}))
	require.NoError(t, err)

	assert.Equal(t, []string{"http://localhost:5173", "https://alle.app"}, cfg.CorsOrigins)
	assert.Nil(t, cfg.TrustedProxies)
}

func TestFromProvider_SQLDriverRequiresDSN(t *testing.T) {
	_, err := config.FromProvider(config.NewMapProvider(map[string]string{"STORAGE_DRIVER": "mysql"}))

	var missing *config.MissingKeyError
	require.True(t, errors.As(err, &missing))
	assert.Equal(t, "DATABASE_DSN", missing.Key)
}

func TestFromProvider_InvalidNumber(t *testing.T) {
	_, err := config.FromProvider(config.NewMapProvider(map[string]string{"TRASH_RETENTION_DAYS": "soon"}))

	var invalid *config.InvalidValueError
	require.True(t, errors.As(err, &invalid))
}
