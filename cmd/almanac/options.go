package main

import (
	"fmt"
	"strings"

	"github.com/menmos/almanac-go/config"
	"github.com/menmos/almanac-go/input"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type options struct {
	variant    string
	workers    int
	profile    string
	configPath string
	verbose    bool
}

func (o *options) register(cmd *cobra.Command) {
	flags := cmd.PersistentFlags()
	flags.StringVar(&o.variant, "variant", "", "How to read seeds: values or ranges (default: ranges)")
	flags.IntVar(&o.workers, "workers", 0, "Initial intervals solved concurrently (default: 1)")
	flags.StringVar(&o.profile, "profile", "", "Profile to load from the config file")
	flags.StringVar(&o.configPath, "config", "", "Path to the config file (default: user config dir)")
	flags.BoolVarP(&o.verbose, "verbose", "v", false, "Enable debug logging")
}

// resolve merges the profile, environment and flags into one profile.
func (o *options) resolve(cmd *cobra.Command) (config.Profile, error) {
	settings := config.Profile{LogLevel: "info"}

	if o.profile != "" {
		profile, err := config.LoadProfile(o.configPath, o.profile)
		if err != nil {
			return config.Profile{}, err
		}
		settings = settings.Merge(*profile)
	}

	env, err := config.FromEnv()
	if err != nil {
		return config.Profile{}, err
	}
	settings = settings.Merge(env.Profile())

	flags := cmd.Flags()
	if flags.Changed("variant") {
		settings.Variant = o.variant
	}
	if flags.Changed("workers") {
		settings.Workers = o.workers
	}
	if o.verbose {
		settings.LogLevel = "debug"
	}

	return settings, nil
}

func newLogger(level string) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(strings.ToLower(level))
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}

	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(lvl)

	logger, err := cfg.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	return logger, nil
}

// readAlmanac parses the almanac at path, or standard input when path is "-".
func readAlmanac(cmd *cobra.Command, path string) (*input.Almanac, error) {
	if path == "-" {
		return input.Parse(cmd.InOrStdin())
	}
	return input.ParseFile(path)
}
