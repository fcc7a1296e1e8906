package config

import (
	"os"
	"path/filepath"
)

const (
	apiURLEnvVar  = "BARBERIAPP_API_URL"
	appNameVar    = "BARBERIAPP_APP_NAME"
	dataDirEnvVar = "BARBERIAPP_DATA_DIR"
	logLevelVar   = "BARBERIAPP_LOG_LEVEL"
	backendVar    = "BARBERIAPP_SESSION_BACKEND"
	redisAddrVar  = "BARBERIAPP_REDIS_ADDR"
)

type EnvVars struct{}

var _ EnvConfig = EnvVars{}

// GetAPIURL returns the base URL of the BarberiApp backend, including the
// /api context path (e.g. "http://localhost:8080/api").
func (EnvVars) GetAPIURL() string {
	return GetEnv(apiURLEnvVar, "http://localhost:8080/api")
}

func (EnvVars) GetAppName() string {
	return GetEnv(appNameVar, "BarberiApp")
}

func (EnvVars) GetDataDir() string {
	if dir := os.Getenv(dataDirEnvVar); dir != "" {
		return dir
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ".barberiapp"
	}
	return filepath.Join(home, ".barberiapp")
}

func (EnvVars) GetLogLevel() string {
	return GetEnv(logLevelVar, "info")
}

// GetSessionBackend selects where session data is persisted: "file"
// (default), "memory" or "redis".
func (EnvVars) GetSessionBackend() string {
	return GetEnv(backendVar, "file")
}

func (EnvVars) GetRedisAddr() string {
	return GetEnv(redisAddrVar, "localhost:6379")
}

func (EnvVars) GetEnv() string {
	env := os.Getenv("ENV")
	if env == "" {
		return "DEV"
	}
	return env
}

func GetEnv(envVar, defaultValue string) string {
	value := os.Getenv(envVar)
	if value == "" {
		return defaultValue
	}
	return value
}
