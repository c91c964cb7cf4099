package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadConfig(t *testing.T) {
	path := writeConfig(t, `
server:
  host: 127.0.0.1
  port: 9999
snarkify:
  baseUrl: https://api.snarkify.io
  apiKey: file-key
  serviceId: svc-42
  connectionTimeoutSec: 120
  retryWaitTimeSec: 6
  retryCount: 4
logging:
  level: debug
`)

	require.NoError(t, LoadConfig(path))

	assert.Equal(t, "127.0.0.1", AppConfig.Server.Host)
	assert.Equal(t, 9999, AppConfig.Server.Port)
	assert.Equal(t, "https://api.snarkify.io", AppConfig.Snarkify.BaseURL)
	assert.Equal(t, "file-key", AppConfig.Snarkify.APIKey)
	assert.Equal(t, "svc-42", AppConfig.Snarkify.ServiceID)
	assert.Equal(t, 120, AppConfig.Snarkify.ConnectionTimeoutSec)
	assert.Equal(t, 6, AppConfig.Snarkify.RetryWaitTimeSec)
	assert.Equal(t, 4, AppConfig.Snarkify.RetryCount)
	assert.Equal(t, "debug", AppConfig.Logging.Level)
}

func TestLoadConfigDefaults(t *testing.T) {
	path := writeConfig(t, `
snarkify:
  baseUrl: https://api.snarkify.io
`)

	require.NoError(t, LoadConfig(path))

	assert.Equal(t, "0.0.0.0", AppConfig.Server.Host)
	assert.Equal(t, 8090, AppConfig.Server.Port)
	assert.Equal(t, 300, AppConfig.Snarkify.ConnectionTimeoutSec)
	assert.Equal(t, 10, AppConfig.Snarkify.RetryWaitTimeSec)
	assert.Equal(t, 3, AppConfig.Snarkify.RetryCount)
	assert.Equal(t, "info", AppConfig.Logging.Level)
}

func TestLoadConfigEnvOverrides(t *testing.T) {
	t.Setenv("SNARKIFY_API_KEY", "env-key")
	t.Setenv("SNARKIFY_SERVICE_ID", "env-svc")

	path := writeConfig(t, `
snarkify:
  baseUrl: https://api.snarkify.io
  apiKey: file-key
  serviceId: file-svc
`)

	require.NoError(t, LoadConfig(path))

	assert.Equal(t, "env-key", AppConfig.Snarkify.APIKey)
	assert.Equal(t, "env-svc", AppConfig.Snarkify.ServiceID)
}

func TestLoadConfigRequiresBaseURL(t *testing.T) {
	path := writeConfig(t, `
snarkify:
  apiKey: file-key
`)

	err := LoadConfig(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "baseUrl")
}

func TestLoadConfigMissingFile(t *testing.T) {
	err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read config file")
}
