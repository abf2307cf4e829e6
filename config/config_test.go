package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/certsource/certreg/config"
)

func TestDefaults(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := config.Load()
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:9009", cfg.GatewayURL)
	assert.Equal(t, "default", cfg.KeyName)
	assert.Equal(t, 3*time.Second, cfg.PollInterval)
	assert.Equal(t, 0, cfg.MaxPollAttempts)
	assert.NotEmpty(t, cfg.KeyDir)
}

func TestEnvironmentOverrides(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("CERTREG_GATEWAY_URL", "http://gateway.internal:9009")
	t.Setenv("CERTREG_POLL_INTERVAL", "500ms")
	t.Setenv("CERTREG_MAX_POLL_ATTEMPTS", "10")
	t.Setenv("CERTREG_KEY_NAME", "ops")

	cfg, err := config.Load()
	require.NoError(t, err)
	assert.Equal(t, "http://gateway.internal:9009", cfg.GatewayURL)
	assert.Equal(t, 500*time.Millisecond, cfg.PollInterval)
	assert.Equal(t, 10, cfg.MaxPollAttempts)
	assert.Equal(t, "ops", cfg.KeyName)
}

func TestConfigFile(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)

	err := os.WriteFile(filepath.Join(dir, "certreg.yaml"), []byte(
		"gateway_url: http://filehost:9009\nkey_name: file-key\n"), 0o644)
	require.NoError(t, err)

	cfg, err := config.Load()
	require.NoError(t, err)
	assert.Equal(t, "http://filehost:9009", cfg.GatewayURL)
	assert.Equal(t, "file-key", cfg.KeyName)

	// Environment still wins over the file.
	t.Setenv("CERTREG_KEY_NAME", "env-key")
	cfg, err = config.Load()
	require.NoError(t, err)
	assert.Equal(t, "env-key", cfg.KeyName)
}

func TestRejectsNonPositiveInterval(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("CERTREG_POLL_INTERVAL", "0s")

	_, err := config.Load()
	require.Error(t, err)
}
