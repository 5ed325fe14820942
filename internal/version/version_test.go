package version

import (
	"strings"
	"sync"
	"testing"
)

func TestVersion_DefaultValues(t *testing.T) {
	if Version == "" {
		t.Error("Version should have a default value")
	}
	if Current().Version != Version {
		t.Error("Current() must report Version")
	}
}

func TestColored(t *testing.T) {
	orig := Version
	defer func() { Version = orig }()

	tests := []struct {
		version string
		enabled bool
		want    string
	}{
		{"1.2.3", false, "1.2.3"},
		{"1.2.3-rc.1", false, "1.2.3-rc.1"},
		{"dev", true, "dev"},
	}
	for _, tt := range tests {
		Version = tt.version
		if got := Colored(tt.enabled); got != tt.want {
			t.Errorf("Colored(%v) with %q = %q, want %q", tt.enabled, tt.version, got, tt.want)
		}
	}

	Version = "1.2.3"
	got := Colored(true)
	if !strings.Contains(got, "\x1b[") {
		t.Errorf("expected ANSI colors, got %q", got)
	}
	if plain := stripANSI(got); plain != "1.2.3" {
		t.Errorf("stripped = %q, want %q", plain, "1.2.3")
	}
}

func TestColoredConcurrent(t *testing.T) {
	var wg sync.WaitGroup
	for i := range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			enabled := i%2 == 0
			got := Colored(enabled)
			if !enabled && got != Version {
				t.Errorf("Colored(false) = %q, want %q", got, Version)
			}
		}()
	}
	wg.Wait()
}

func stripANSI(s string) string {
	var b strings.Builder
	for i := 0; i < len(s); i++ {
		if s[i] == 0x1b {
			for i < len(s) && s[i] != 'm' {
				i++
			}
			continue
		}
		b.WriteByte(s[i])
	}
	return b.String()
}

func TestVersion_CanBeOverridden(t *testing.T) {
	origVersion, origCommit, origDate := Version, GitCommit, BuildDate
	defer func() { Version, GitCommit, BuildDate = origVersion, origCommit, origDate }()

	Version = "1.2.3"
	GitCommit = "abc123def456"
	BuildDate = "2024-01-15T10:30:00Z"

	info := Current()
	if info.Version != "1.2.3" || info.GitCommit != "abc123def456" || info.BuildDate != "2024-01-15T10:30:00Z" {
		t.Errorf("unexpected info: %+v", info)
	}
}
