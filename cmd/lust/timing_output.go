package main

import (
	"errors"

	"github.com/spf13/cobra"

	"lust/internal/driver"
	"lust/internal/observ"
)

// errDiagnostics — команда отработала, но нашла ошибки; текст уже напечатан.
var errDiagnostics = errors.New("errors reported")

// printTimings пишет отчёт таймера в stderr, чтобы не смешивать его с выводом AST.
func printTimings(cmd *cobra.Command, kind, path string, timer *observ.Timer, asJSON bool) error {
	if timer == nil {
		return nil
	}
	payload := driver.NewTimingPayload(kind, path, timer)
	return driver.WriteTimings(cmd.ErrOrStderr(), payload, timer, asJSON)
}
