package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"lust/internal/trace"
)

// activeTracer закрывается в closeTracing после Execute, даже если команда упала.
var activeTracer trace.Tracer = trace.Nop

// setupTracing reads the trace flags and attaches a tracer to the command context.
func setupTracing(cmd *cobra.Command) error {
	flags := cmd.Root().PersistentFlags()

	levelStr, err := flags.GetString("trace")
	if err != nil {
		return fmt.Errorf("failed to get trace flag: %w", err)
	}
	output, err := flags.GetString("trace-output")
	if err != nil {
		return fmt.Errorf("failed to get trace-output flag: %w", err)
	}
	formatStr, err := flags.GetString("trace-format")
	if err != nil {
		return fmt.Errorf("failed to get trace-format flag: %w", err)
	}

	level, err := trace.ParseLevel(levelStr)
	if err != nil {
		return err
	}
	format, err := trace.ParseFormat(formatStr)
	if err != nil {
		return err
	}
	// --trace-output без уровня включает фазовый трейс
	if level == trace.LevelOff && output != "" {
		level = trace.LevelPhase
	}

	tracer, err := trace.New(trace.Config{
		Level:      level,
		Format:     format,
		OutputPath: output,
	})
	if err != nil {
		return fmt.Errorf("failed to create tracer: %w", err)
	}
	activeTracer = tracer
	cmd.SetContext(trace.WithTracer(cmd.Context(), tracer))
	return nil
}

// closeTracing flushes and closes the tracer attached by setupTracing.
func closeTracing() {
	tracer := activeTracer
	activeTracer = trace.Nop
	if !tracer.Enabled() {
		return
	}
	if err := tracer.Flush(); err != nil {
		fmt.Fprintf(os.Stderr, "trace: flush error: %v\n", err)
	}
	if err := tracer.Close(); err != nil {
		fmt.Fprintf(os.Stderr, "trace: close error: %v\n", err)
	}
}
