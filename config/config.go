package config

import (
	"fmt"
	"os"
	"path"

	"github.com/pelletier/go-toml"
	"github.com/pkg/errors"
)

const almanacConfigDirName = "almanac"
const almanacConfigFileName = "config.toml"

// A Config represents the on-disk configuration of the almanac solver.
type Config struct {
	Profiles map[string]Profile `json:"profiles,omitempty"`
}

// LoadFromFile loads a config from the TOML file at path.
func LoadFromFile(path string) (*Config, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open almanac configuration file")
	}
	defer file.Close()

	decoder := toml.NewDecoder(file).SetTagName("json")

	var cfg Config
	if err := decoder.Decode(&cfg); err != nil {
		return nil, errors.Wrap(err, "failed to decode TOML config")
	}

	return &cfg, nil
}

// DefaultPath returns the location of the config file in the user configuration directory.
func DefaultPath() (string, error) {
	configPath, err := os.UserConfigDir()
	if err != nil {
		return "", errors.Wrap(err, "failed to get the user configuration directory")
	}

	return path.Join(configPath, almanacConfigDirName, almanacConfigFileName), nil
}

// LoadDefault loads a config from the default path.
func LoadDefault() (*Config, error) {
	configPath, err := DefaultPath()
	if err != nil {
		return nil, err
	}

	return LoadFromFile(configPath)
}

// Profile returns the named profile.
func (c *Config) Profile(name string) (*Profile, error) {
	if profile, ok := c.Profiles[name]; ok {
		return &profile, nil
	}

	return nil, errors.New(fmt.Sprintf("profile '%s' not found", name))
}

// LoadProfile loads a single profile from the config file at configPath,
// or from the default location when configPath is empty.
func LoadProfile(configPath string, profileName string) (*Profile, error) {
	var (
		cfg *Config
		err error
	)
	if configPath == "" {
		cfg, err = LoadDefault()
	} else {
		cfg, err = LoadFromFile(configPath)
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to read profile from configuration")
	}

	return cfg.Profile(profileName)
}
