package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"lust/internal/prof"
)

var activeProfile *prof.Session

// setupProfiling запускает профили из --cpu-profile/--mem-profile/--runtime-trace.
func setupProfiling(cmd *cobra.Command) error {
	flags := cmd.Root().PersistentFlags()
	var (
		opts prof.Options
		err  error
	)
	if opts.CPU, err = flags.GetString("cpu-profile"); err != nil {
		return fmt.Errorf("failed to get cpu-profile flag: %w", err)
	}
	if opts.Mem, err = flags.GetString("mem-profile"); err != nil {
		return fmt.Errorf("failed to get mem-profile flag: %w", err)
	}
	if opts.Trace, err = flags.GetString("runtime-trace"); err != nil {
		return fmt.Errorf("failed to get runtime-trace flag: %w", err)
	}
	if !opts.Enabled() {
		return nil
	}
	activeProfile, err = prof.Start(opts)
	return err
}

func stopProfiling() {
	if err := activeProfile.Stop(); err != nil {
		fmt.Fprintf(os.Stderr, "profile: %v\n", err)
	}
	activeProfile = nil
}
