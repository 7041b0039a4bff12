package config

import (
	"github.com/kelseyhightower/envconfig"
	"github.com/pkg/errors"
)

// EnvPrefix is the prefix of every environment variable read by FromEnv.
const EnvPrefix = "ALMANAC"

// Env holds settings read from the environment.
type Env struct {
	// Env: ALMANAC_VARIANT
	Variant string `envconfig:"VARIANT"`

	// Env: ALMANAC_WORKERS
	Workers int `envconfig:"WORKERS"`

	// Env: ALMANAC_LOG_LEVEL
	LogLevel string `envconfig:"LOG_LEVEL"`
}

// FromEnv reads the ALMANAC_* environment variables.
func FromEnv() (Env, error) {
	var env Env
	if err := envconfig.Process(EnvPrefix, &env); err != nil {
		return Env{}, errors.Wrap(err, "failed to read environment")
	}
	return env, nil
}

// Profile returns the environment settings as a profile.
func (e Env) Profile() Profile {
	return Profile{Variant: e.Variant, Workers: e.Workers, LogLevel: e.LogLevel}
}
