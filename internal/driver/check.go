package driver

import (
	"context"
	"errors"
	"fmt"

	"shellchecker/internal/diag"
	"shellchecker/internal/observ"
	"shellchecker/internal/rules"
	"shellchecker/internal/source"
)

// ErrNoScripts is returned by CheckDir when the directory holds no script.
var ErrNoScripts = errors.New("no shell scripts found")

// Result is the outcome of checking one file.
type Result struct {
	Path   string
	File   *source.File // nil when the file could not be loaded
	Report *diag.Report // nil when Err is set
	Err    error
	Cached bool
	Timing *observ.Report
}

// Failed reports whether the file could not be checked or has errors.
func (r *Result) Failed() bool {
	return r.Err != nil || r.Report.HasErrors()
}

// CheckSource checks in-memory content. It performs no IO.
func CheckSource(name string, content []byte, opts Options) *Result {
	fs := source.NewFileSet()
	f := fs.Get(fs.AddVirtual(name, content))
	return &Result{
		Path:   name,
		File:   f,
		Report: rules.Check(f.Script(), opts.Rules),
	}
}

// CheckFile loads path through a FileSet and checks it. The report cache is
// consulted when opts.Cache is set.
func CheckFile(ctx context.Context, path string, opts Options) (*Result, error) {
	return checkFile(ctx, source.NewFileSet(), path, opts)
}

func checkFile(ctx context.Context, fs *source.FileSet, path string, opts Options) (*Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	logger := opts.logger()

	var timer *observ.Timer
	if opts.Timings {
		timer = observ.NewTimer()
	}

	loadIdx := timer.Begin("load")
	id, err := fs.Load(path)
	timer.End(loadIdx, "")
	if err != nil {
		return nil, fmt.Errorf("failed to load %s: %w", path, err)
	}
	f := fs.Get(id)
	logger.Debug("loaded script", "path", path, "lines", f.LineCount())
	if f.Flags&(source.FileHadBOM|source.FileNormalizedCRLF) != 0 {
		logger.Debug("normalised script", "path", path, "bom", f.Flags&source.FileHadBOM != 0, "crlf", f.Flags&source.FileNormalizedCRLF != 0)
	}

	res := &Result{Path: path, File: f}
	key := cacheKey(f.Hash, opts.Rules)

	checkIdx := timer.Begin("check")
	if cached, ok := opts.Cache.Load(key); ok {
		logger.Debug("cache hit", "path", path)
		res.Report = cached
		res.Cached = true
	} else {
		res.Report = rules.Check(f.Script(), opts.Rules)
		if err := opts.Cache.Store(key, res.Report); err != nil {
			logger.Warn("cache write failed", "path", path, "err", err)
		}
	}
	note := ""
	if res.Cached {
		note = "cached"
	}
	timer.End(checkIdx, note)

	if timer != nil {
		rep := timer.Report()
		res.Timing = &rep
	}
	return res, nil
}
