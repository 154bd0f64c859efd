package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"slices"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"lust/internal/diagfmt"
	"lust/internal/driver"
	"lust/internal/project"
	"lust/internal/source"
)

var parseCmd = &cobra.Command{
	Use:   "parse [flags] <file.lust|directory>",
	Short: "Parse a lust source file or directory and output AST",
	Long:  `Parse analyzes a lust source file or all *.lust files in a directory and outputs their Abstract Syntax Trees`,
	Args:  cobra.MaximumNArgs(1),
	RunE:  runParse,
}

func init() {
	parseCmd.Flags().String("format", "pretty", "output format (pretty|tree|json|yaml|dot)")
	parseCmd.Flags().Int("jobs", 0, "max parallel workers for directory processing (0=auto)")
	parseCmd.Flags().String("ui", "auto", "progress view for directories (auto|on|off)")
	parseCmd.Flags().Bool("watch", false, "re-parse when sources change")
}

func runParse(cmd *cobra.Command, args []string) error {
	target := "."
	if len(args) == 1 {
		target = args[0]
	}

	st, err := loadSettings(cmd, target)
	if err != nil {
		return err
	}
	if !slices.Contains(diagfmt.ASTFormats, st.format) {
		return fmt.Errorf("unknown format: %s", st.format)
	}
	uiFlag, err := cmd.Flags().GetString("ui")
	if err != nil {
		return fmt.Errorf("failed to get ui flag: %w", err)
	}
	mode, err := readUIMode(uiFlag)
	if err != nil {
		return err
	}
	watch, err := cmd.Flags().GetBool("watch")
	if err != nil {
		return fmt.Errorf("failed to get watch flag: %w", err)
	}

	run := func(ctx context.Context, useUI bool) error {
		return parseTarget(ctx, cmd, st, target, useUI)
	}
	if !watch {
		return run(cmd.Context(), shouldUseTUI(mode, st.quiet))
	}
	return watchAndRun(cmd, target, st, func(ctx context.Context) error {
		// в режиме наблюдения прогресс-бар только мешает
		return run(ctx, false)
	})
}

func parseTarget(ctx context.Context, cmd *cobra.Command, st *settings, target string, useUI bool) error {
	info, err := os.Stat(target)
	if err != nil {
		return fmt.Errorf("failed to stat path: %w", err)
	}
	timer := st.timer()
	opts := driver.Options{MaxDiagnostics: st.maxDiagnostics, Jobs: st.jobs, Timer: timer}
	out := cmd.OutOrStdout()

	if !info.IsDir() {
		result, err := driver.Parse(ctx, target, opts)
		if err != nil {
			return fmt.Errorf("parsing failed: %w", err)
		}
		if result.Bag.Len() > 0 {
			result.Bag.Sort()
			diagfmt.Pretty(os.Stderr, result.Bag, result.FileSet, st.prettyOpts())
		}
		if err := diagfmt.FormatAST(out, st.format, result.Program, result.FileSet); err != nil {
			return err
		}
		if err := printTimings(cmd, "parse", target, timer, st.format == "json"); err != nil {
			return err
		}
		if result.Errored {
			return errDiagnostics
		}
		return nil
	}

	files, err := st.sourcesFor(target)
	if err != nil {
		return err
	}
	var (
		fs      *source.FileSet
		results []driver.FileResult
	)
	if useUI && len(files) > 0 {
		fs, results, err = runParseWithUI(ctx, "parsing", target, files, opts)
	} else {
		fs, results, err = driver.ParseFiles(ctx, target, files, opts)
	}
	if err != nil {
		return fmt.Errorf("parsing failed: %w", err)
	}

	errored := false
	for _, r := range results {
		errored = errored || r.Errored
		if r.Bag != nil && r.Bag.Len() > 0 {
			r.Bag.Sort()
			diagfmt.Pretty(os.Stderr, r.Bag, fs, st.prettyOpts())
		}
	}
	if err := writeResults(out, st, fs, results); err != nil {
		return err
	}
	if err := printTimings(cmd, "parse", target, timer, st.format == "json"); err != nil {
		return err
	}
	if errored {
		return errDiagnostics
	}
	return nil
}

// sourcesFor: корень проекта берёт [parse].include из манифеста, остальное — обход каталога.
func (s *settings) sourcesFor(dir string) ([]string, error) {
	if s.manifest != nil {
		abs, err := filepath.Abs(dir)
		if err == nil && abs == s.manifest.Root {
			return s.manifest.SourceFiles()
		}
	}
	return project.CollectSources(dir)
}

func displayPath(fs *source.FileSet, r driver.FileResult) string {
	if f := fs.Get(r.FileID); f != nil {
		return f.FormatPath("relative", fs.BaseDir())
	}
	return r.Path
}

// writeResults печатает AST всех файлов каталога; для json/yaml — одним документом.
func writeResults(out io.Writer, st *settings, fs *source.FileSet, results []driver.FileResult) error {
	switch st.format {
	case "json", "yaml":
		docs := make(map[string]*diagfmt.ASTNodeOutput, len(results))
		for _, r := range results {
			if r.Program == nil {
				docs[displayPath(fs, r)] = nil
				continue
			}
			node := diagfmt.BuildASTOutput(r.Program, fs)
			docs[displayPath(fs, r)] = &node
		}
		if st.format == "yaml" {
			enc := yaml.NewEncoder(out)
			enc.SetIndent(2)
			if err := enc.Encode(docs); err != nil {
				return err
			}
			return enc.Close()
		}
		encoder := json.NewEncoder(out)
		encoder.SetIndent("", "  ")
		return encoder.Encode(docs)
	}

	for idx, r := range results {
		if !st.quiet {
			if _, err := fmt.Fprintf(out, "== %s ==\n", displayPath(fs, r)); err != nil {
				return err
			}
		}
		if r.Program != nil {
			if err := diagfmt.FormatAST(out, st.format, r.Program, fs); err != nil {
				return err
			}
		}
		if !st.quiet && idx < len(results)-1 {
			if _, err := fmt.Fprintln(out); err != nil {
				return err
			}
		}
	}
	return nil
}

// watchAndRun выполняет run сразу и после каждой пачки изменений, до Ctrl+C.
func watchAndRun(cmd *cobra.Command, target string, st *settings, run func(context.Context) error) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	w, err := driver.NewWatcher([]string{target}, driver.DefaultDebounce)
	if err != nil {
		return err
	}
	defer w.Close()

	report := func(err error) {
		if err != nil && !errors.Is(err, errDiagnostics) {
			fmt.Fprintf(cmd.ErrOrStderr(), "error: %v\n", err)
		}
	}
	report(run(ctx))
	if !st.quiet {
		fmt.Fprintf(cmd.ErrOrStderr(), "watching %s (Ctrl+C to stop)\n", target)
	}
	err = w.Run(ctx, func(changed []string) error {
		if !st.quiet {
			fmt.Fprintf(cmd.ErrOrStderr(), "changed: %s\n", strings.Join(changed, ", "))
		}
		report(run(ctx))
		return nil
	})
	if ctx.Err() != nil {
		return nil
	}
	return err
}
