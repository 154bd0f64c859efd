package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"lust/internal/diag"
	"lust/internal/driver"
	"lust/internal/fix"
)

var fixCmd = &cobra.Command{
	Use:   "fix [flags] <file.lust|directory>",
	Short: "Apply suggested fixes from diagnostics",
	Long: `Parse the target and apply the edits attached to its diagnostics,
such as inserting a missing semicolon. By default only the first fix is applied.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runFix,
}

func init() {
	fixCmd.Flags().Bool("all", false, "apply every non-conflicting fix")
	fixCmd.Flags().Bool("dry-run", false, "print the fixed sources instead of writing them")
	fixCmd.Flags().Int("jobs", 0, "max parallel workers for directory processing (0=auto)")
}

func runFix(cmd *cobra.Command, args []string) error {
	target := "."
	if len(args) == 1 {
		target = args[0]
	}
	st, err := loadSettings(cmd, target)
	if err != nil {
		return err
	}
	all, err := cmd.Flags().GetBool("all")
	if err != nil {
		return fmt.Errorf("failed to get all flag: %w", err)
	}
	dryRun, err := cmd.Flags().GetBool("dry-run")
	if err != nil {
		return fmt.Errorf("failed to get dry-run flag: %w", err)
	}

	info, err := os.Stat(target)
	if err != nil {
		return fmt.Errorf("failed to stat path: %w", err)
	}
	baseDir, files := target, []string{target}
	if info.IsDir() {
		if files, err = st.sourcesFor(target); err != nil {
			return err
		}
	} else {
		baseDir = filepath.Dir(target)
	}

	// без кэша: в нём нет исходного текста, а правки должны совпасть с файлом на диске
	fs, results, err := driver.ParseFiles(cmd.Context(), baseDir, files, driver.Options{
		MaxDiagnostics: st.maxDiagnostics,
		Jobs:           st.jobs,
	})
	if err != nil {
		return fmt.Errorf("parsing failed: %w", err)
	}
	var diags []diag.Diagnostic
	for _, r := range results {
		if r.Bag != nil {
			diags = append(diags, r.Bag.Items()...)
		}
	}

	mode := fix.ApplyModeOnce
	if all {
		mode = fix.ApplyModeAll
	}
	res, err := fix.Apply(fs, diags, fix.ApplyOptions{Mode: mode, DryRun: dryRun})
	if errors.Is(err, fix.ErrNoFixes) {
		if !st.quiet {
			fmt.Fprintln(cmd.ErrOrStderr(), "no applicable fixes found")
		}
		return nil
	}
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if dryRun {
		for _, ch := range res.FileChanges {
			fmt.Fprintf(out, "== %s ==\n%s", ch.Path, ch.Content)
		}
	}
	if !st.quiet {
		errOut := cmd.ErrOrStderr()
		for _, a := range res.Applied {
			fmt.Fprintf(errOut, "fixed %s: %s (%s)\n", a.PrimaryPath, a.Title, a.Code.ID())
		}
		for _, s := range res.Skipped {
			fmt.Fprintf(errOut, "skipped %s: %s\n", s.Title, s.Reason)
		}
	}
	return nil
}
