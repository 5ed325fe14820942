package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/log"
)

func newLogger(w io.Writer, level string) (*log.Logger, error) {
	lvl, err := log.ParseLevel(strings.ToLower(strings.TrimSpace(level)))
	if err != nil {
		return nil, fmt.Errorf("invalid --log-level value %q: %w", level, err)
	}
	return log.NewWithOptions(w, log.Options{
		Prefix: appName,
		Level:  lvl,
	}), nil
}
