package appConfig

import (
	"fmt"
	"os"
	"path/filepath"

	"ghsync/internal/ext"

	"gopkg.in/yaml.v2"
)

const (
	ConfigFileName     = "ghsync.yaml"
	DefaultLogFileName = "ghsync.log"
	DefaultBaseDirName = "github-repos"
)

// AppConfig holds defaults that CLI flags override.
type AppConfig struct {
	BasePath string `yaml:"basePath"` // Where repositories are mirrored, split into public/ and private/
	LogFile  string `yaml:"logFile"`  // Where the JSON action journal is appended
}

// Load reads ghsync.yaml from the working directory, falling back to the home
// directory. A missing config file is not an error; the zero config is
// returned and defaults apply.
func Load() (*AppConfig, error) {
	configFilePath := filepath.Join(".", ConfigFileName)
	if _, err := os.Stat(configFilePath); os.IsNotExist(err) {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("could not determine home directory: %w", err)
		}
		configFilePath = filepath.Join(homeDir, ConfigFileName)
		if _, err := os.Stat(configFilePath); os.IsNotExist(err) {
			return &AppConfig{}, nil
		}
	}
	return LoadFile(configFilePath)
}

func LoadFile(path string) (*AppConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("could not read config file: %w", err)
	}

	var config AppConfig
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("could not unmarshal config file %s: %w", path, err)
	}
	return &config, nil
}

// ApplyDefaults fills unset fields: base path under the home directory, log
// file in the working directory.
func (config *AppConfig) ApplyDefaults() error {
	if config.BasePath == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("could not determine home directory: %w", err)
		}
		config.BasePath = filepath.Join(homeDir, DefaultBaseDirName)
	}
	config.LogFile = ext.DefaultValue(config.LogFile, DefaultLogFileName)
	return nil
}
