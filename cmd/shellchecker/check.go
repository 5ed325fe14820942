package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"shellchecker/internal/diag"
	"shellchecker/internal/diagfmt"
	"shellchecker/internal/driver"
	"shellchecker/internal/i18n"
	"shellchecker/internal/rules"
	"shellchecker/internal/version"
)

type outputFormat string

const (
	formatText  outputFormat = "text"
	formatShort outputFormat = "short"
	formatJSON  outputFormat = "json"
	formatSarif outputFormat = "sarif"
)

func readFormat(value string) (outputFormat, error) {
	switch f := outputFormat(strings.ToLower(strings.TrimSpace(value))); f {
	case formatText, formatShort, formatJSON, formatSarif:
		return f, nil
	}
	return "", fmt.Errorf("unknown format %q (expected text|short|json|sarif)", value)
}

// checkSettings is the merged view of flags, config file and defaults.
type checkSettings struct {
	locale        i18n.Locale
	errorsOnly    bool
	recursive     bool
	jobs          int
	format        outputFormat
	exclude       []string
	maxLineLength int
	cache         bool
	pathMode      diagfmt.PathMode
	maxIssues     int
	ui            toggle
	color         bool
	quiet         bool
	timings       bool
	logLevel      string
}

func newCheckCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check [flags] <file|directory>",
		Short: "Check a shell script or every script in a directory",
		Long: `Check runs the syntax, best-practice, security and style rules on a script.
Given a directory it checks every file ending in .sh or starting with a bash/sh shebang.`,
		Args: cobra.ExactArgs(1),
		RunE: runCheck,
	}

	cmd.Flags().BoolP("recursive", "r", false, "scan directories recursively")
	cmd.Flags().BoolP("errors-only", "e", false, "show only errors")
	cmd.Flags().StringP("language", "l", "en", "output language (en|ja)")
	cmd.Flags().String("format", "text", "output format (text|short|json|sarif)")
	cmd.Flags().IntP("jobs", "j", 0, "max parallel workers for directory checks (0=auto)")
	cmd.Flags().StringArray("exclude", nil, "glob of paths to skip, relative to the directory (repeatable)")
	cmd.Flags().String("config", "", "path to "+configFileName+" (default: search upwards from the path)")
	cmd.Flags().Bool("cache", false, "reuse reports of unchanged files from the disk cache")
	cmd.Flags().String("ui", "auto", "progress UI for directory checks (auto|on|off)")
	cmd.Flags().Int("max-line-length", rules.DefaultMaxLineLength, "line length limit for the style rules")
	cmd.Flags().Bool("fullpath", false, "emit absolute file paths in machine-readable output (same as --path-mode absolute)")
	cmd.Flags().String("path-mode", "as-given", "file paths in machine-readable output (as-given|absolute|relative|basename|auto)")
	cmd.Flags().Int("max-issues", 0, "max issues in short/json output (0=unlimited)")
	return cmd
}

// resolveCheckSettings merges flags with cfg. An explicitly set flag wins over
// the config file, which wins over the flag default.
func resolveCheckSettings(cmd *cobra.Command, cfg *projectConfig) (checkSettings, error) {
	var s checkSettings
	flags := cmd.Flags()

	language, err := flags.GetString("language")
	if err != nil {
		return s, fmt.Errorf("failed to get language flag: %w", err)
	}
	if !flags.Changed("language") && cfg.isSet("language") {
		language = cfg.Check.Language
	}
	if s.locale, err = i18n.ParseLocale(language); err != nil {
		return s, err
	}

	if s.errorsOnly, err = flags.GetBool("errors-only"); err != nil {
		return s, fmt.Errorf("failed to get errors-only flag: %w", err)
	}
	if !flags.Changed("errors-only") && cfg.isSet("errors_only") {
		s.errorsOnly = cfg.Check.ErrorsOnly
	}

	if s.recursive, err = flags.GetBool("recursive"); err != nil {
		return s, fmt.Errorf("failed to get recursive flag: %w", err)
	}
	if !flags.Changed("recursive") && cfg.isSet("recursive") {
		s.recursive = cfg.Check.Recursive
	}

	if s.jobs, err = flags.GetInt("jobs"); err != nil {
		return s, fmt.Errorf("failed to get jobs flag: %w", err)
	}
	if !flags.Changed("jobs") && cfg.isSet("jobs") {
		s.jobs = cfg.Check.Jobs
	}
	if s.jobs < 0 {
		return s, fmt.Errorf("--jobs must not be negative")
	}

	format, err := flags.GetString("format")
	if err != nil {
		return s, fmt.Errorf("failed to get format flag: %w", err)
	}
	if !flags.Changed("format") && cfg.isSet("format") {
		format = cfg.Check.Format
	}
	if s.format, err = readFormat(format); err != nil {
		return s, err
	}

	exclude, err := flags.GetStringArray("exclude")
	if err != nil {
		return s, fmt.Errorf("failed to get exclude flag: %w", err)
	}
	if !flags.Changed("exclude") && cfg.isSet("exclude") {
		exclude = cfg.Check.Exclude
	}
	if err := driver.ValidatePatterns(exclude); err != nil {
		return s, err
	}
	s.exclude = exclude

	if s.maxLineLength, err = flags.GetInt("max-line-length"); err != nil {
		return s, fmt.Errorf("failed to get max-line-length flag: %w", err)
	}
	if !flags.Changed("max-line-length") && cfg.isSet("max_line_length") {
		s.maxLineLength = cfg.Check.MaxLineLength
	}
	if s.maxLineLength <= 0 {
		return s, fmt.Errorf("--max-line-length must be positive")
	}

	if s.cache, err = flags.GetBool("cache"); err != nil {
		return s, fmt.Errorf("failed to get cache flag: %w", err)
	}
	pathMode, err := flags.GetString("path-mode")
	if err != nil {
		return s, fmt.Errorf("failed to get path-mode flag: %w", err)
	}
	if s.pathMode, err = diagfmt.ParsePathMode(pathMode); err != nil {
		return s, err
	}
	fullPath, err := flags.GetBool("fullpath")
	if err != nil {
		return s, fmt.Errorf("failed to get fullpath flag: %w", err)
	}
	if fullPath {
		s.pathMode = diagfmt.PathModeAbsolute
	}
	if s.maxIssues, err = flags.GetInt("max-issues"); err != nil {
		return s, fmt.Errorf("failed to get max-issues flag: %w", err)
	}
	if s.maxIssues < 0 {
		return s, fmt.Errorf("--max-issues must not be negative")
	}

	uiValue, err := flags.GetString("ui")
	if err != nil {
		return s, fmt.Errorf("failed to get ui flag: %w", err)
	}
	if s.ui, err = readToggle("ui", uiValue); err != nil {
		return s, err
	}

	colorValue, err := cmd.Flags().GetString("color")
	if err != nil {
		return s, fmt.Errorf("failed to get color flag: %w", err)
	}
	colorMode, err := readToggle("color", colorValue)
	if err != nil {
		return s, err
	}
	s.color = colorMode.enabled(os.Stdout)

	if s.quiet, err = cmd.Flags().GetBool("quiet"); err != nil {
		return s, fmt.Errorf("failed to get quiet flag: %w", err)
	}
	if s.timings, err = cmd.Flags().GetBool("timings"); err != nil {
		return s, fmt.Errorf("failed to get timings flag: %w", err)
	}
	if s.logLevel, err = cmd.Flags().GetString("log-level"); err != nil {
		return s, fmt.Errorf("failed to get log-level flag: %w", err)
	}
	return s, nil
}

// runCheck executes the "check" command. It exits with status 1 when any
// checked script has an error-severity issue or could not be read.
func runCheck(cmd *cobra.Command, args []string) error {
	target := args[0]
	info, err := os.Stat(target)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("path does not exist: %s", target)
		}
		return fmt.Errorf("failed to stat %s: %w", target, err)
	}

	configPath, err := cmd.Flags().GetString("config")
	if err != nil {
		return fmt.Errorf("failed to get config flag: %w", err)
	}
	cfg, err := resolveConfig(configPath, target)
	if err != nil {
		return err
	}

	settings, err := resolveCheckSettings(cmd, cfg)
	if err != nil {
		return err
	}

	logger, err := newLogger(cmd.ErrOrStderr(), settings.logLevel)
	if err != nil {
		return err
	}
	if cfg != nil {
		logger.Debug("loaded config", "path", cfg.Path)
	}

	opts := driver.Options{
		Rules: rules.Options{
			Locale:        settings.locale,
			MaxLineLength: settings.maxLineLength,
		},
		Recursive: settings.recursive,
		Exclude:   settings.exclude,
		Jobs:      settings.jobs,
		Timings:   settings.timings,
		Logger:    logger,
	}
	if settings.cache {
		opts.Cache = openCache(logger)
	}

	stopProfiling, err := setupProfiling(cmd, logger)
	if err != nil {
		return err
	}
	defer stopProfiling()

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	var results []*driver.Result
	if info.IsDir() {
		results, err = checkDirectory(ctx, cmd, target, opts, settings)
		if errors.Is(err, driver.ErrNoScripts) {
			if !settings.quiet {
				fmt.Fprintln(cmd.ErrOrStderr(), i18n.Message(settings.locale, i18n.MsgNoScripts, target))
			}
			return nil
		}
		if err != nil {
			if ctx.Err() != nil {
				return err
			}
			fmt.Fprintln(cmd.ErrOrStderr(), i18n.Message(settings.locale, i18n.MsgWalkError, err.Error()))
			return &exitError{code: 1}
		}
	} else {
		res, err := driver.CheckFile(ctx, target, opts)
		if err != nil {
			if ctx.Err() != nil {
				return err
			}
			res = &driver.Result{Path: target, Err: err}
		}
		results = []*driver.Result{res}
	}

	baseDir := target
	if !info.IsDir() {
		baseDir = filepath.Dir(target)
	}
	if err := renderResults(cmd.OutOrStdout(), cmd.ErrOrStderr(), results, baseDir, info.IsDir(), settings); err != nil {
		return err
	}

	if settings.timings {
		printTimings(cmd.ErrOrStderr(), results)
	}

	for _, res := range results {
		if res.Failed() {
			return &exitError{code: 1}
		}
	}
	return nil
}

func checkDirectory(ctx context.Context, cmd *cobra.Command, root string, opts driver.Options, settings checkSettings) ([]*driver.Result, error) {
	if settings.format == formatText && !settings.quiet && settings.ui.enabled(os.Stdout) {
		return runCheckWithUI(ctx, cmd.OutOrStdout(), root, opts)
	}
	return driver.CheckDir(ctx, root, opts)
}

// openCache opens the shared report cache. A cache that cannot be opened
// only costs speed, so the run goes on without it.
func openCache(logger *log.Logger) *driver.Cache {
	cache, err := driver.OpenCache(appName)
	if err != nil {
		logger.Warn("report cache disabled", "err", err)
		return nil
	}
	logger.Debug("report cache", "dir", cache.Dir())
	return cache
}

// renderResults writes results in the selected format. Relative paths in
// machine-readable output are computed against baseDir.
func renderResults(out, errOut io.Writer, results []*driver.Result, baseDir string, dirMode bool, settings checkSettings) error {
	// ошибки чтения всегда идут в stderr
	for _, res := range results {
		if res.Err != nil {
			fmt.Fprintln(errOut, i18n.Message(settings.locale, i18n.MsgReadError, res.Path, res.Err.Error()))
		}
	}

	files := make([]diagfmt.FileReport, 0, len(results))
	for _, res := range results {
		files = append(files, diagfmt.FileReport{Path: res.Path, Report: res.Report, Err: res.Err})
	}

	switch settings.format {
	case formatShort:
		if err := diagfmt.Short(out, files, diagfmt.ShortOpts{
			ErrorsOnly: settings.errorsOnly,
			PathMode:   settings.pathMode,
			BaseDir:    baseDir,
			Max:        settings.maxIssues,
		}); err != nil {
			return fmt.Errorf("failed to write short output: %w", err)
		}
		return nil
	case formatJSON:
		if err := diagfmt.JSON(out, files, diagfmt.JSONOpts{
			ErrorsOnly: settings.errorsOnly,
			PathMode:   settings.pathMode,
			BaseDir:    baseDir,
			Max:        settings.maxIssues,
		}); err != nil {
			return fmt.Errorf("failed to write JSON output: %w", err)
		}
		return nil
	case formatSarif:
		if err := diagfmt.Sarif(out, files, diagfmt.SarifRunMeta{
			ToolName:    appName,
			ToolVersion: version.Version,
			Locale:      settings.locale,
			ErrorsOnly:  settings.errorsOnly,
			PathMode:    settings.pathMode,
			BaseDir:     baseDir,
		}); err != nil {
			return fmt.Errorf("failed to write SARIF output: %w", err)
		}
		return nil
	}

	for _, fr := range files {
		if fr.Err != nil {
			continue
		}
		if err := renderText(out, fr.Path, fr.Report, settings); err != nil {
			return err
		}
		if dirMode {
			if _, err := fmt.Fprintln(out); err != nil {
				return err
			}
		}
	}
	return nil
}

func renderText(out io.Writer, path string, report *diag.Report, settings checkSettings) error {
	if !settings.quiet {
		if err := diagfmt.Header(out, path, settings.locale); err != nil {
			return err
		}
	}
	return diagfmt.Text(out, report, diagfmt.TextOpts{
		ErrorsOnly: settings.errorsOnly,
		Locale:     settings.locale,
		Color:      settings.color,
	})
}
