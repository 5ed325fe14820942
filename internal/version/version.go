package version

import (
	"strings"

	"github.com/fatih/color"
)

// Version information for the shellchecker CLI.
// These variables can be overridden at build time via -ldflags.
var (
	// Version is the semantic version of the CLI.
	Version = "0.1.0-dev"

	// GitCommit is an optional git commit hash.
	GitCommit = ""

	// BuildDate is an optional build date in ISO-8601.
	BuildDate = ""
)

// Info is the machine-readable build description.
type Info struct {
	Version   string `json:"version"`
	GitCommit string `json:"git_commit,omitempty"`
	BuildDate string `json:"build_date,omitempty"`
}

// Current returns the build description.
func Current() Info {
	return Info{Version: Version, GitCommit: GitCommit, BuildDate: BuildDate}
}

// Colored renders Version with major, minor and patch in distinct colors.
// Pre-release and build suffixes stay plain.
func Colored(enabled bool) string {
	core, suffix := Version, ""
	if i := strings.IndexAny(core, "-+"); i >= 0 {
		core, suffix = core[:i], core[i:]
	}
	parts := strings.SplitN(core, ".", 3)
	if len(parts) != 3 {
		return Version
	}
	paint := func(attr color.Attribute, text string) string {
		c := color.New(attr, color.Bold)
		if enabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
		return c.Sprint(text)
	}
	return paint(color.FgYellow, parts[0]) + "." +
		paint(color.FgGreen, parts[1]) + "." +
		paint(color.FgBlue, parts[2]) + suffix
}
