package config

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/barberiapp/admin-cli/internal/errors"
)

// FileValues are the settings that can be overridden from the optional
// config file in the data directory. Empty fields fall back to the
// environment defaults.
type FileValues struct {
	APIURL         string `yaml:"apiUrl"`
	DataDir        string `yaml:"dataDir"`
	LogLevel       string `yaml:"logLevel"`
	SessionBackend string `yaml:"sessionBackend"`
	RedisAddr      string `yaml:"redisAddr"`
}

// FilePath returns the config file location for the given data directory.
func FilePath(dataDir string) string {
	return filepath.Join(dataDir, "config.yaml")
}

// LoadFile reads the config file. A missing file is not an error.
func LoadFile(path string) (FileValues, error) {
	var values FileValues
	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return values, nil
		}
		return values, errors.Wrapf(err, "[LoadFile] read %s", path)
	}
	if err := yaml.Unmarshal(raw, &values); err != nil {
		return FileValues{}, errors.Wrapf(err, "[LoadFile] parse %s", path)
	}
	return values, nil
}
