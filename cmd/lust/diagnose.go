package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"lust/internal/diag"
	"lust/internal/diagfmt"
	"lust/internal/driver"
)

var diagCmd = &cobra.Command{
	Use:   "diag [flags] <file.lust|directory>",
	Short: "Run diagnostics on a lust source file or directory",
	Long: `Run the lexer and parser over a file or all *.lust files within a directory
and report diagnostics only. Results are cached on disk per file content.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runDiagnose,
}

func init() {
	diagCmd.Flags().String("format", "pretty", "output format (pretty|json)")
	diagCmd.Flags().Int("jobs", 0, "max parallel workers for directory processing (0=auto)")
	diagCmd.Flags().Bool("no-warnings", false, "ignore warnings in diagnostics")
	diagCmd.Flags().Bool("warnings-as-errors", false, "treat warnings as errors")
	diagCmd.Flags().Bool("with-notes", false, "include diagnostic notes in output")
	diagCmd.Flags().Bool("fullpath", false, "emit absolute file paths in output")
	diagCmd.Flags().Bool("no-cache", false, "do not read or write the disk cache")
	diagCmd.Flags().Bool("clear-cache", false, "drop the disk cache before running")
}

type diagFlags struct {
	noWarnings       bool
	warningsAsErrors bool
	withNotes        bool
	fullPath         bool
	noCache          bool
	clearCache       bool
}

func readDiagFlags(cmd *cobra.Command) (diagFlags, error) {
	var (
		f   diagFlags
		err error
	)
	for _, b := range []struct {
		name string
		dst  *bool
	}{
		{"no-warnings", &f.noWarnings},
		{"warnings-as-errors", &f.warningsAsErrors},
		{"with-notes", &f.withNotes},
		{"fullpath", &f.fullPath},
		{"no-cache", &f.noCache},
		{"clear-cache", &f.clearCache},
	} {
		if *b.dst, err = cmd.Flags().GetBool(b.name); err != nil {
			return f, fmt.Errorf("failed to get %s flag: %w", b.name, err)
		}
	}
	if f.noWarnings && f.warningsAsErrors {
		return f, fmt.Errorf("no-warnings and warnings-as-errors flags cannot be used together")
	}
	return f, nil
}

// runDiagnose parses the target and prints only its diagnostics. It returns
// errDiagnostics when any error (or, with --warnings-as-errors, warning) was found.
func runDiagnose(cmd *cobra.Command, args []string) error {
	target := "."
	if len(args) == 1 {
		target = args[0]
	}
	st, err := loadSettings(cmd, target)
	if err != nil {
		return err
	}
	if st.format != "pretty" && st.format != "json" {
		return fmt.Errorf("unknown format: %s", st.format)
	}
	flags, err := readDiagFlags(cmd)
	if err != nil {
		return err
	}

	info, err := os.Stat(target)
	if err != nil {
		return fmt.Errorf("failed to stat path: %w", err)
	}
	baseDir := target
	files := []string{target}
	if info.IsDir() {
		if files, err = st.sourcesFor(target); err != nil {
			return err
		}
	} else {
		baseDir = filepath.Dir(target)
	}

	timer := st.timer()
	opts := driver.Options{
		MaxDiagnostics: st.maxDiagnostics,
		Jobs:           st.jobs,
		Timer:          timer,
		Cache:          openCache(cmd, flags, len(files)),
	}
	fs, results, err := driver.ParseFiles(cmd.Context(), baseDir, files, opts)
	if err != nil {
		return fmt.Errorf("diagnose failed: %w", err)
	}

	bag := diag.NewBag(st.maxDiagnostics)
	for _, r := range results {
		bag.Merge(filterBag(r.Bag, flags.noWarnings))
	}
	bag.Sort()

	pathMode := diagfmt.PathModeAuto
	if flags.fullPath {
		pathMode = diagfmt.PathModeAbsolute
	}
	switch st.format {
	case "json":
		err = diagfmt.JSON(cmd.OutOrStdout(), bag, fs, diagfmt.JSONOpts{
			IncludePositions: true,
			PathMode:         pathMode,
			Max:              st.maxDiagnostics,
			IncludeNotes:     flags.withNotes,
			IncludeFixes:     true,
		})
	default:
		opts := st.prettyOpts()
		opts.PathMode = pathMode
		opts.ShowNotes = flags.withNotes
		diagfmt.Pretty(cmd.OutOrStdout(), bag, fs, opts)
		if !st.quiet {
			printSummary(cmd, bag, len(files))
		}
	}
	if err != nil {
		return err
	}
	if err := printTimings(cmd, "diag", target, timer, st.format == "json"); err != nil {
		return err
	}

	if bag.HasErrors() || (flags.warningsAsErrors && bag.HasWarnings()) {
		return errDiagnostics
	}
	return nil
}

// openCache собирает MemCache поверх DiskCache; без диска работаем без кэша.
func openCache(cmd *cobra.Command, flags diagFlags, files int) driver.Cache {
	if flags.noCache {
		return nil
	}
	disk, err := driver.OpenDiskCache("lust")
	if err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "warning: disk cache disabled: %v\n", err)
		return nil
	}
	if flags.clearCache {
		if err := disk.DropAll(); err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "warning: failed to clear cache %s: %v\n", disk.Dir(), err)
		}
	}
	return driver.NewMemCache(files, disk)
}

// filterBag отбрасывает предупреждения и info при --no-warnings.
func filterBag(bag *diag.Bag, noWarnings bool) *diag.Bag {
	if bag == nil || !noWarnings {
		return bag
	}
	out := diag.NewBag(bag.Cap())
	for _, d := range bag.Items() {
		if d.Severity >= diag.SevError {
			out.Add(d)
		}
	}
	return out
}

func printSummary(cmd *cobra.Command, bag *diag.Bag, files int) {
	errs := bag.CountErrors()
	warns := bag.Len() - errs
	fmt.Fprintf(cmd.ErrOrStderr(), "%d file(s) checked: %d error(s), %d other diagnostic(s)\n", files, errs, warns)
}
