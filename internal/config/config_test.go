package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/barberiapp/admin-cli/internal/config"
)

func TestEnvVarsDefaults(t *testing.T) {
	env := config.EnvVars{}
	require.Equal(t, "http://localhost:8080/api", env.GetAPIURL())
	require.Equal(t, "file", env.GetSessionBackend())
	require.Equal(t, "localhost:6379", env.GetRedisAddr())
	require.Equal(t, "info", env.GetLogLevel())
	require.Equal(t, "BarberiApp", env.GetAppName())
}

func TestEnvVarsOverrides(t *testing.T) {
	t.Setenv("BARBERIAPP_API_URL", "https://prod.barberia.cl/api")
	t.Setenv("BARBERIAPP_SESSION_BACKEND", "redis")

	env := config.EnvVars{}
	require.Equal(t, "https://prod.barberia.cl/api", env.GetAPIURL())
	require.Equal(t, "redis", env.GetSessionBackend())
}

func TestLoadFileMissingIsNotAnError(t *testing.T) {
	values, err := config.LoadFile(config.FilePath(t.TempDir()))
	require.NoError(t, err)
	require.Empty(t, values.APIURL)
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	content := "apiUrl: https://staging.barberia.cl/api\nlogLevel: debug\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(content), 0o600))

	values, err := config.LoadFile(config.FilePath(dir))
	require.NoError(t, err)
	require.Equal(t, "https://staging.barberia.cl/api", values.APIURL)
	require.Equal(t, "debug", values.LogLevel)
	require.Empty(t, values.SessionBackend)
}

func TestLoadFileRejectsBadYAML(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(":\tnot yaml"), 0o600))

	_, err := config.LoadFile(config.FilePath(dir))
	require.Error(t, err)
}

func TestFileValuesTakePrecedence(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("BARBERIAPP_DATA_DIR", dir)
	t.Setenv("BARBERIAPP_LOG_LEVEL", "warn")
	content := "logLevel: debug\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(content), 0o600))

	cfg := config.New()
	require.Equal(t, "debug", cfg.GetLogLevel())
	require.Equal(t, dir, cfg.GetDataDir())
}
