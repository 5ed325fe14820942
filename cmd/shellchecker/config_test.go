package main

import (
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func TestFindConfigWalksUp(t *testing.T) {
	root := t.TempDir()
	cfgPath := filepath.Join(root, configFileName)
	writeFile(t, cfgPath, "[check]\n")
	deep := filepath.Join(root, "a", "b")
	writeFile(t, filepath.Join(deep, "x.sh"), cleanScript)

	got, ok, err := findConfig(deep)
	if err != nil || !ok {
		t.Fatalf("findConfig: ok=%v err=%v", ok, err)
	}
	if got != cfgPath {
		t.Fatalf("found %s, want %s", got, cfgPath)
	}
}

func TestResolveConfigFromFileTarget(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, configFileName), "[check]\njobs = 2\n")
	script := filepath.Join(root, "run.sh")
	writeFile(t, script, cleanScript)

	cfg, err := resolveConfig("", script)
	if err != nil {
		t.Fatalf("resolveConfig: %v", err)
	}
	if cfg == nil || cfg.Check.Jobs != 2 {
		t.Fatalf("unexpected config: %+v", cfg)
	}
}

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), configFileName)
	writeFile(t, path, `[check]
language = "ja"
errors_only = true
recursive = true
jobs = 4
format = "json"
exclude = ["vendor/**", "**/*.bak.sh"]
max_line_length = 100
`)
	cfg, err := loadConfig(path)
	if err != nil {
		t.Fatalf("loadConfig: %v", err)
	}
	want := checkConfig{
		Language:      "ja",
		ErrorsOnly:    true,
		Recursive:     true,
		Jobs:          4,
		Format:        "json",
		Exclude:       []string{"vendor/**", "**/*.bak.sh"},
		MaxLineLength: 100,
	}
	if !reflect.DeepEqual(cfg.Check, want) {
		t.Fatalf("got %+v, want %+v", cfg.Check, want)
	}
	for _, key := range []string{"language", "errors_only", "max_line_length"} {
		if !cfg.isSet(key) {
			t.Errorf("isSet(%q) = false", key)
		}
	}
}

func TestLoadConfigUnsetKeys(t *testing.T) {
	path := filepath.Join(t.TempDir(), configFileName)
	writeFile(t, path, "[check]\nerrors_only = false\n")
	cfg, err := loadConfig(path)
	if err != nil {
		t.Fatalf("loadConfig: %v", err)
	}
	if !cfg.isSet("errors_only") {
		t.Fatal("explicit false must count as set")
	}
	if cfg.isSet("recursive") {
		t.Fatal("absent key reported as set")
	}

	var none *projectConfig
	if none.isSet("recursive") {
		t.Fatal("nil config reported a key")
	}
}

func TestLoadConfigErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    string
	}{
		{"syntax", "[check\n", "failed to parse TOML"},
		{"unknown key", "[check]\ncolour = \"on\"\n", "unknown keys: check.colour"},
		{"language", "[check]\nlanguage = \"fr\"\n", "[check].language"},
		{"format", "[check]\nformat = \"xml\"\n", "[check].format"},
		{"jobs", "[check]\njobs = -1\n", "[check].jobs must not be negative"},
		{"line length", "[check]\nmax_line_length = 0\n", "[check].max_line_length must be positive"},
		{"exclude", "[check]\nexclude = [\"[\"]\n", "[check].exclude"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), configFileName)
			writeFile(t, path, tt.content)
			_, err := loadConfig(path)
			if err == nil {
				t.Fatal("expected an error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Fatalf("error %q does not mention %q", err, tt.want)
			}
		})
	}
}

func TestReadToggle(t *testing.T) {
	tests := []struct {
		in   string
		want toggle
		ok   bool
	}{
		{"", toggleAuto, true},
		{"auto", toggleAuto, true},
		{" ON ", toggleOn, true},
		{"off", toggleOff, true},
		{"sometimes", "", false},
	}
	for _, tt := range tests {
		got, err := readToggle("ui", tt.in)
		if (err == nil) != tt.ok || got != tt.want {
			t.Errorf("readToggle(%q) = %q, %v", tt.in, got, err)
		}
	}
}
