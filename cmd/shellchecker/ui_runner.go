package main

import (
	"context"
	"errors"
	"fmt"
	"io"

	tea "github.com/charmbracelet/bubbletea"

	"shellchecker/internal/driver"
	"shellchecker/internal/ui"
)

// errInterrupted is returned when the progress view is closed before every
// file was checked.
var errInterrupted = errors.New("check interrupted")

type checkOutcome struct {
	results []*driver.Result
	err     error
}

// progressView renders events until it returns. It may return before
// events is closed.
type progressView func(ctx context.Context, files []string, events <-chan driver.Event) error

// runCheckWithUI checks root like driver.CheckDir while a progress view
// renders the per-file events.
func runCheckWithUI(ctx context.Context, out io.Writer, root string, opts driver.Options) ([]*driver.Result, error) {
	files, err := driver.ListScripts(root, opts.Recursive, opts.Exclude)
	if err != nil {
		return nil, fmt.Errorf("failed to list scripts in %s: %w", root, err)
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("%s: %w", root, driver.ErrNoScripts)
	}

	view := func(ctx context.Context, files []string, events <-chan driver.Event) error {
		model := ui.NewProgressModel("checking "+root, files, events)
		_, err := tea.NewProgram(model, tea.WithOutput(out), tea.WithContext(ctx)).Run()
		return err
	}
	return checkWithProgress(ctx, root, files, opts, view)
}

// checkWithProgress runs driver.CheckFiles and view side by side. When the
// view returns first the check is cancelled.
func checkWithProgress(ctx context.Context, root string, files []string, opts driver.Options, view progressView) ([]*driver.Result, error) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	events := make(chan driver.Event, 256)
	outcomeCh := make(chan checkOutcome, 1)

	go func() {
		optsCopy := opts
		optsCopy.Progress = driver.ChannelSink{Ch: events}
		res, err := driver.CheckFiles(ctx, root, files, optsCopy)
		outcomeCh <- checkOutcome{results: res, err: err}
		close(events)
	}()

	uiErr := view(ctx, files, events)
	cancel()
	// воркеры не должны блокироваться на полном канале
	go func() {
		for range events {
		}
	}()

	outcome := <-outcomeCh
	if uiErr != nil {
		return outcome.results, uiErr
	}
	if outcome.err != nil && errors.Is(outcome.err, context.Canceled) && ctx.Err() != nil {
		return nil, errInterrupted
	}
	return outcome.results, outcome.err
}
