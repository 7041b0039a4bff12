package main

import (
	"fmt"
	"strings"

	"github.com/menmos/almanac-go"
	"github.com/spf13/cobra"
)

func traceCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "trace FILE",
		Short: "Print the intervals every seed maps to after each layer",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTrace(cmd, opts, args[0])
		},
	}
}

func runTrace(cmd *cobra.Command, opts *options, path string) error {
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

	traces, err := solver.Trace(a)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	for _, trace := range traces {
		fmt.Fprintf(out, "seed %s\n", trace.Seed)
		for _, stage := range trace.Stages {
			fmt.Fprintf(out, "  %s: %s\n", stage.Layer, joinIntervals(stage.Intervals))
		}
	}
	return nil
}

func joinIntervals(intervals []almanac.Interval) string {
	parts := make([]string, len(intervals))
	for i, interval := range intervals {
		parts[i] = interval.String()
	}
	return strings.Join(parts, " ")
}
