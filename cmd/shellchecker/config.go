package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"shellchecker/internal/driver"
	"shellchecker/internal/i18n"
)

const configFileName = ".shellchecker.toml"

// projectConfig is the decoded .shellchecker.toml. Only keys present in the
// file override the built-in defaults; see isSet.
type projectConfig struct {
	Path  string
	Check checkConfig `toml:"check"`
	meta  toml.MetaData
}

type checkConfig struct {
	Language      string   `toml:"language"`
	ErrorsOnly    bool     `toml:"errors_only"`
	Recursive     bool     `toml:"recursive"`
	Jobs          int      `toml:"jobs"`
	Format        string   `toml:"format"`
	Exclude       []string `toml:"exclude"`
	MaxLineLength int      `toml:"max_line_length"`
}

// isSet reports whether [check].key was written in the file.
func (c *projectConfig) isSet(key string) bool {
	return c != nil && c.meta.IsDefined("check", key)
}

// findConfig walks from startDir up to the filesystem root looking for
// .shellchecker.toml.
func findConfig(startDir string) (string, bool, error) {
	if startDir == "" {
		startDir = "."
	}
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", false, fmt.Errorf("failed to resolve start directory: %w", err)
	}
	for {
		candidate := filepath.Join(dir, configFileName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true, nil
		} else if !errors.Is(err, os.ErrNotExist) {
			return "", false, fmt.Errorf("failed to stat %q: %w", candidate, err)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", false, nil
}

// resolveConfig loads the explicit --config file, or the nearest one above
// the checked path. A nil config with nil error means no file was found.
func resolveConfig(explicit, target string) (*projectConfig, error) {
	if explicit != "" {
		return loadConfig(explicit)
	}
	start := target
	if info, err := os.Stat(target); err == nil && !info.IsDir() {
		start = filepath.Dir(target)
	}
	path, ok, err := findConfig(start)
	if err != nil || !ok {
		return nil, err
	}
	return loadConfig(path)
}

func loadConfig(path string) (*projectConfig, error) {
	cfg := &projectConfig{Path: path}
	meta, err := toml.DecodeFile(path, cfg)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	cfg.meta = meta
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, 0, len(undecoded))
		for _, k := range undecoded {
			keys = append(keys, k.String())
		}
		return nil, fmt.Errorf("%s: unknown keys: %s", path, strings.Join(keys, ", "))
	}
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

func (c *projectConfig) validate() error {
	if c.isSet("language") {
		if _, err := i18n.ParseLocale(c.Check.Language); err != nil {
			return fmt.Errorf("[check].language: %w", err)
		}
	}
	if c.isSet("format") {
		if _, err := readFormat(c.Check.Format); err != nil {
			return fmt.Errorf("[check].format: %w", err)
		}
	}
	if c.isSet("jobs") && c.Check.Jobs < 0 {
		return fmt.Errorf("[check].jobs must not be negative")
	}
	if c.isSet("max_line_length") && c.Check.MaxLineLength <= 0 {
		return fmt.Errorf("[check].max_line_length must be positive")
	}
	if err := driver.ValidatePatterns(c.Check.Exclude); err != nil {
		return fmt.Errorf("[check].exclude: %w", err)
	}
	return nil
}
