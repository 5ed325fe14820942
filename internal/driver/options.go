package driver

import (
	"io"

	"github.com/charmbracelet/log"

	"shellchecker/internal/rules"
)

// Options configures a check run.
type Options struct {
	Rules     rules.Options
	Recursive bool
	// Exclude holds doublestar patterns matched against slash paths
	// relative to the checked directory.
	Exclude []string
	// Jobs limits parallel workers; <= 0 means GOMAXPROCS.
	Jobs     int
	Cache    *Cache
	Progress ProgressSink
	// Timings records load/check phases on every Result.
	Timings bool
	Logger  *log.Logger
}

func (o *Options) logger() *log.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	return discardLogger
}

var discardLogger = log.New(io.Discard)
