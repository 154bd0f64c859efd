package main

import (
	"context"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"lust/internal/driver"
	"lust/internal/source"
	"lust/internal/ui"
)

type parseOutcome struct {
	fs      *source.FileSet
	results []driver.FileResult
	err     error
}

// runParseWithUI разбирает files в фоне, пока bubbletea рисует прогресс в stderr.
func runParseWithUI(ctx context.Context, title, baseDir string, files []string, opts driver.Options) (*source.FileSet, []driver.FileResult, error) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	events := make(chan driver.ProgressEvent, 256)
	outcomeCh := make(chan parseOutcome, 1)

	go func() {
		optsCopy := opts
		optsCopy.Progress = func(ev driver.ProgressEvent) { events <- ev }
		fs, results, err := driver.ParseFiles(ctx, baseDir, files, optsCopy)
		outcomeCh <- parseOutcome{fs: fs, results: results, err: err}
		close(events)
	}()

	model := ui.NewProgressModel(title, files, events)
	program := tea.NewProgram(model, tea.WithOutput(os.Stderr), tea.WithContext(ctx))
	_, uiErr := program.Run()
	// Ctrl+C в UI останавливает и разбор; канал дочитываем, чтобы воркеры не встали
	cancel()
	go func() {
		for range events { //nolint:revive // drain
		}
	}()
	outcome := <-outcomeCh
	if uiErr != nil && outcome.err == nil {
		return outcome.fs, outcome.results, uiErr
	}
	return outcome.fs, outcome.results, outcome.err
}
