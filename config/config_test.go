package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/menmos/almanac-go/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleConfig = `
[profiles.fast]
variant = "ranges"
workers = 8

[profiles.debug]
variant = "values"
log_level = "debug"
`

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadFromFile(t *testing.T) {
	cfg, err := config.LoadFromFile(writeConfig(t, sampleConfig))
	require.NoError(t, err)
	require.Len(t, cfg.Profiles, 2)

	assert.Equal(t, config.Profile{Variant: "ranges", Workers: 8}, cfg.Profiles["fast"])
	assert.Equal(t, config.Profile{Variant: "values", LogLevel: "debug"}, cfg.Profiles["debug"])
}

func TestLoadFromFile_Errors(t *testing.T) {
	_, err := config.LoadFromFile(filepath.Join(t.TempDir(), "missing.toml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to open almanac configuration file")

	_, err = config.LoadFromFile(writeConfig(t, "[profiles.fast\nworkers = 1\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to decode TOML config")
}

func TestLoadProfile(t *testing.T) {
	path := writeConfig(t, sampleConfig)

	profile, err := config.LoadProfile(path, "debug")
	require.NoError(t, err)
	assert.Equal(t, "values", profile.Variant)

	_, err = config.LoadProfile(path, "slow")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "profile 'slow' not found")
}

func TestLoadProfile_DefaultPath(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	t.Setenv("HOME", dir)

	path, err := config.DefaultPath()
	require.NoError(t, err)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(sampleConfig), 0o600))

	profile, err := config.LoadProfile("", "fast")
	require.NoError(t, err)
	assert.Equal(t, 8, profile.Workers)
}

func TestProfile_Merge(t *testing.T) {
	base := config.Profile{Variant: "values", Workers: 2, LogLevel: "info"}

	assert.Equal(t, base, base.Merge(config.Profile{}))
	assert.Equal(t,
		config.Profile{Variant: "ranges", Workers: 2, LogLevel: "warn"},
		base.Merge(config.Profile{Variant: "ranges", LogLevel: "warn"}))
}

func TestFromEnv(t *testing.T) {
	t.Setenv("ALMANAC_VARIANT", "values")
	t.Setenv("ALMANAC_WORKERS", "6")
	t.Setenv("ALMANAC_LOG_LEVEL", "debug")

	env, err := config.FromEnv()
	require.NoError(t, err)
	assert.Equal(t, config.Profile{Variant: "values", Workers: 6, LogLevel: "debug"}, env.Profile())
}

func TestFromEnv_InvalidWorkers(t *testing.T) {
	t.Setenv("ALMANAC_WORKERS", "many")

	_, err := config.FromEnv()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read environment")
}
