package main

import (
	"fmt"

	"github.com/menmos/almanac-go"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func solveCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "solve FILE",
		Short: "Print the lowest location reachable from the seeds",
		Long: `Print the lowest location reachable from the seeds of an almanac.

Use "-" as FILE to read the almanac from standard input.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSolve(cmd, opts, args[0])
		},
	}
}

func runSolve(cmd *cobra.Command, opts *options, path string) error {
	settings, err := opts.resolve(cmd)
	if err != nil {
		return err
	}

	logger, err := newLogger(settings.LogLevel)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	solver, err := almanac.NewFromProfile(settings, almanac.WithLogger(logger))
	if err != nil {
		return err
	}

	a, err := readAlmanac(cmd, path)
	if err != nil {
		return err
	}

	result, err := solver.Solve(cmd.Context(), a)
	if err != nil {
		return err
	}

	logger.Debug("Solve finished",
		zap.String("file", path),
		zap.Stringer("variant", result.Variant),
		zap.Int("seeds", result.Seeds),
		zap.Int("layers", result.Layers))

	fmt.Fprintln(cmd.OutOrStdout(), result.Lowest)
	return nil
}
