package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"shellchecker/internal/version"
)

const appName = "shellchecker"

// exitError carries a process exit code from RunE to main without printing
// anything.
type exitError struct {
	code int
}

func (e *exitError) Error() string {
	return fmt.Sprintf("exit status %d", e.code)
}

// newRootCmd assembles the command tree. Each call returns a fresh tree so
// tests can run commands in isolation.
func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           appName,
		Short:         "Static checker for bash and sh scripts",
		Long:          `shellchecker finds syntax problems, risky constructs and style issues in shell scripts`,
		Version:       version.Version,
		SilenceErrors: true,
		SilenceUsage:  true,
	}

	// Добавляем команды
	rootCmd.AddCommand(newCheckCmd())
	rootCmd.AddCommand(newRulesCmd())
	rootCmd.AddCommand(newCleanCmd())
	rootCmd.AddCommand(newVersionCmd())

	// Глобальные флаги
	rootCmd.PersistentFlags().String("color", "auto", "colorize output (auto|on|off)")
	rootCmd.PersistentFlags().Bool("quiet", false, "suppress non-essential output")
	rootCmd.PersistentFlags().Bool("timings", false, "show timing information")
	rootCmd.PersistentFlags().String("log-level", "warn", "log level (debug|info|warn|error)")
	rootCmd.PersistentFlags().String("cpu-profile", "", "write a CPU profile to the file")
	rootCmd.PersistentFlags().String("mem-profile", "", "write a heap profile to the file on exit")
	rootCmd.PersistentFlags().String("runtime-trace", "", "write a runtime trace to the file")

	return rootCmd
}

// main runs the root command and maps its error to the process exit status.
func main() {
	if err := newRootCmd().Execute(); err != nil {
		var ee *exitError
		if errors.As(err, &ee) {
			os.Exit(ee.code)
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// isTerminal проверяет, является ли файл терминалом
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
