package driver

import (
	"bufio"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"mvdan.cc/sh/v3/fileutil"
)

// ValidatePatterns checks that every exclude pattern is a valid doublestar glob.
func ValidatePatterns(patterns []string) error {
	for _, pat := range patterns {
		if !doublestar.ValidatePattern(pat) {
			return fmt.Errorf("invalid exclude pattern %q: %w", pat, doublestar.ErrBadPattern)
		}
	}
	return nil
}

// ListScripts возвращает отсортированный список скриптов в root.
// Without recursive only the top level of root is scanned. Entries matching
// an exclude pattern are skipped; an excluded directory is not entered.
func ListScripts(root string, recursive bool, exclude []string) ([]string, error) {
	if err := ValidatePatterns(exclude); err != nil {
		return nil, err
	}

	var files []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if path == root {
			return nil
		}
		if isExcluded(root, path, exclude) {
			if d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if d.IsDir() {
			if !recursive {
				return filepath.SkipDir
			}
			return nil
		}
		if !d.Type().IsRegular() {
			return nil
		}
		ok, err := IsScript(path)
		if err != nil {
			return err
		}
		if ok {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	// Сортируем для детерминированного порядка
	sort.Strings(files)
	return files, nil
}

func isExcluded(root, path string, patterns []string) bool {
	if len(patterns) == 0 {
		return false
	}
	rel, err := filepath.Rel(root, path)
	if err != nil {
		return false
	}
	normalized := filepath.ToSlash(rel)
	for _, pat := range patterns {
		if matched, matchErr := doublestar.Match(pat, normalized); matchErr == nil && matched {
			return true
		}
	}
	return false
}

// IsScript reports whether path names a bash or sh script: a ".sh" name,
// or a first line that is a bash/sh shebang.
func IsScript(path string) (bool, error) {
	if strings.HasSuffix(path, ".sh") {
		return true, nil
	}
	first, err := firstLine(path)
	if err != nil {
		return false, err
	}
	switch fileutil.Shebang(first) {
	case "bash", "sh":
		return true, nil
	}
	return false, nil
}

// firstLine reads at most one line; binaries without newlines stop at the
// scanner's buffer size.
func firstLine(path string) ([]byte, error) {
	// #nosec G304 -- path comes from walking the user-supplied root
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	sc := bufio.NewScanner(f)
	sc.Buffer(make([]byte, 0, 256), 4096)
	if sc.Scan() {
		return append(sc.Bytes(), '\n'), nil
	}
	if err := sc.Err(); err != nil && err != bufio.ErrTooLong {
		return nil, err
	}
	return nil, nil
}
