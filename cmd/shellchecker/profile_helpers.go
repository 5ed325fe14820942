package main

import (
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"shellchecker/internal/prof"
)

// setupProfiling enables the profilers named by the persistent flags and
// returns the function that stops them.
func setupProfiling(cmd *cobra.Command, logger *log.Logger) (func(), error) {
	var opts prof.Options
	var err error
	if opts.CPU, err = cmd.Flags().GetString("cpu-profile"); err != nil {
		return nil, fmt.Errorf("failed to get cpu-profile flag: %w", err)
	}
	if opts.Mem, err = cmd.Flags().GetString("mem-profile"); err != nil {
		return nil, fmt.Errorf("failed to get mem-profile flag: %w", err)
	}
	if opts.Trace, err = cmd.Flags().GetString("runtime-trace"); err != nil {
		return nil, fmt.Errorf("failed to get runtime-trace flag: %w", err)
	}
	if !opts.Enabled() {
		return func() {}, nil
	}

	session, err := prof.Start(opts)
	if err != nil {
		return nil, err
	}
	logger.Debug("profiling enabled", "cpu", opts.CPU, "mem", opts.Mem, "trace", opts.Trace)
	return func() {
		if err := session.Stop(); err != nil {
			logger.Warn("profiling", "err", err)
		}
	}, nil
}
