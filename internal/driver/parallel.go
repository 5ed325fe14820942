package driver

import (
	"context"
	"fmt"
	"runtime"
	"time"

	"golang.org/x/sync/errgroup"

	"shellchecker/internal/source"
)

// CheckDir checks every script under root in parallel. Results follow the
// sorted file order. A file that cannot be loaded gets a Result with Err
// set; it does not stop the run. The returned error covers listing failures,
// cancellation and ErrNoScripts.
func CheckDir(ctx context.Context, root string, opts Options) ([]*Result, error) {
	logger := opts.logger()

	files, err := ListScripts(root, opts.Recursive, opts.Exclude)
	if err != nil {
		return nil, fmt.Errorf("failed to list scripts in %s: %w", root, err)
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("%s: %w", root, ErrNoScripts)
	}
	logger.Debug("discovered scripts", "root", root, "count", len(files), "recursive", opts.Recursive)

	return CheckFiles(ctx, root, files, opts)
}

// CheckFiles checks the given files in parallel, keeping their order.
func CheckFiles(ctx context.Context, baseDir string, files []string, opts Options) ([]*Result, error) {
	logger := opts.logger()
	logger.Debug("checking scripts", "base", baseDir, "count", len(files))
	emitQueued(opts.Progress, files)

	// Настраиваем параллелизм
	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	// Результаты (индексы уникальны для каждой горутины, мьютекс не нужен)
	results := make([]*Result, len(files))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(max(1, min(jobs, len(files))))

	for i, path := range files {
		g.Go(func() error {
			// Проверка отмены
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}

			start := time.Now()
			emit(opts.Progress, Event{File: path, Stage: StageCheck, Status: StatusWorking})

			res, err := checkFile(gctx, source.NewFileSet(), path, opts)
			if err != nil {
				if gctx.Err() != nil {
					return gctx.Err()
				}
				logger.Warn("cannot check script", "path", path, "err", err)
				results[i] = &Result{Path: path, Err: err}
				emit(opts.Progress, Event{File: path, Stage: StageLoad, Status: StatusError, Err: err, Elapsed: time.Since(start)})
				return nil
			}

			results[i] = res
			emit(opts.Progress, Event{
				File:     path,
				Stage:    StageCheck,
				Status:   StatusDone,
				Elapsed:  time.Since(start),
				Errors:   res.Report.ErrorCount(),
				Warnings: res.Report.WarningCount(),
			})
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
