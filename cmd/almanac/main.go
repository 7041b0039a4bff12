// Package main is the entry point for the almanac CLI.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

// Version information set via ldflags during build.
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := rootCmd().ExecuteContext(ctx)
	stop()

	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:   "almanac",
		Short: "Map seed ranges through almanac layers",
		Long: `almanac reads an almanac (a seeds line followed by blocks of
"destination source length" mapping triples) and reports the lowest
location any seed reaches.

Settings are resolved in the following order (later sources override earlier):
  1. Defaults (variant: ranges, workers: 1, log level: info)
  2. The profile named by --profile, read from --config or the user config dir
  3. Environment variables ALMANAC_VARIANT, ALMANAC_WORKERS, ALMANAC_LOG_LEVEL
  4. Command line flags`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	opts.register(cmd)

	cmd.AddCommand(solveCmd(opts))
	cmd.AddCommand(traceCmd(opts))
	cmd.AddCommand(versionCmd())

	return cmd
}
