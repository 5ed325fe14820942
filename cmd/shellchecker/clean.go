package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"shellchecker/internal/driver"
)

func newCleanCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "clean",
		Short: "Remove cached check reports",
		Long:  "Remove the report cache that check --cache reads and writes.",
		Args:  cobra.NoArgs,
		RunE:  runClean,
	}
}

func runClean(cmd *cobra.Command, _ []string) error {
	quiet, err := cmd.Flags().GetBool("quiet")
	if err != nil {
		return fmt.Errorf("failed to get quiet flag: %w", err)
	}
	cache, err := driver.OpenCache(appName)
	if err != nil {
		return fmt.Errorf("failed to open report cache: %w", err)
	}
	return cleanCache(cmd.OutOrStdout(), cache, quiet)
}

func cleanCache(out io.Writer, cache *driver.Cache, quiet bool) error {
	if err := cache.DropAll(); err != nil {
		return fmt.Errorf("failed to remove %q: %w", cache.Dir(), err)
	}
	if !quiet {
		_, _ = fmt.Fprintf(out, "removed %s\n", cache.Dir())
	}
	return nil
}
