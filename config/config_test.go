package config_test

import (
	"testing"
	"time"

	"songify/config"
	"songify/internal/storage/memory"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	for _, key := range []string{"SERVER_PORT", "LOG_LEVEL", "ID_POLICY", "SEED_SONGS", "READ_TIMEOUT", "WRITE_TIMEOUT"} {
		t.Setenv(key, "")
	}
}

func TestLoadConfig_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := config.LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.ServerPort)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, memory.IDPolicyCounter, cfg.IDPolicy)
	assert.True(t, cfg.SeedSongs)
	assert.Equal(t, 10*time.Second, cfg.ReadTimeout)
	assert.Equal(t, 10*time.Second, cfg.WriteTimeout)
}

func TestLoadConfig_FromEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("LOG_LEVEL", "warn")
	t.Setenv("ID_POLICY", "size")
	t.Setenv("SEED_SONGS", "false")
	t.Setenv("READ_TIMEOUT", "3s")

	cfg, err := config.LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.ServerPort)
	assert.Equal(t, "warn", cfg.LogLevel)
	assert.Equal(t, memory.IDPolicySize, cfg.IDPolicy)
	assert.False(t, cfg.SeedSongs)
	assert.Equal(t, 3*time.Second, cfg.ReadTimeout)
}

func TestLoadConfig_Invalid(t *testing.T) {
	testCases := []struct {
		name string
		key  string
		val  string
	}{
		{name: "Unknown id policy", key: "ID_POLICY", val: "uuid"},
		{name: "Bad seed flag", key: "SEED_SONGS", val: "maybe"},
		{name: "Bad timeout", key: "WRITE_TIMEOUT", val: "soon"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			clearEnv(t)
			t.Setenv(tc.key, tc.val)

			_, err := config.LoadConfig()
			assert.ErrorContains(t, err, tc.key)
		})
	}
}
