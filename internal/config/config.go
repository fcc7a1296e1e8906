package config

type Config interface {
	EnvConfig
}

type EnvConfig interface {
	GetAPIURL() string
	GetAppName() string
	GetDataDir() string
	GetLogLevel() string
	GetSessionBackend() string
	GetRedisAddr() string
	GetEnv() string
}

type mainConfig struct {
	EnvVars
	file FileValues
}

// New builds the configuration from the optional config file in the data
// directory, falling back to environment variables and defaults.
func New() Config {
	env := EnvVars{}
	file, _ := LoadFile(FilePath(env.GetDataDir()))
	return mainConfig{file: file}
}

func (c mainConfig) GetAPIURL() string {
	if c.file.APIURL != "" {
		return c.file.APIURL
	}
	return c.EnvVars.GetAPIURL()
}

func (c mainConfig) GetDataDir() string {
	if c.file.DataDir != "" {
		return c.file.DataDir
	}
	return c.EnvVars.GetDataDir()
}

func (c mainConfig) GetLogLevel() string {
	if c.file.LogLevel != "" {
		return c.file.LogLevel
	}
	return c.EnvVars.GetLogLevel()
}

func (c mainConfig) GetSessionBackend() string {
	if c.file.SessionBackend != "" {
		return c.file.SessionBackend
	}
	return c.EnvVars.GetSessionBackend()
}

func (c mainConfig) GetRedisAddr() string {
	if c.file.RedisAddr != "" {
		return c.file.RedisAddr
	}
	return c.EnvVars.GetRedisAddr()
}
