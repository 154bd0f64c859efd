package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"lust/internal/diagfmt"
	"lust/internal/driver"
)

var tokenizeCmd = &cobra.Command{
	Use:   "tokenize [flags] file.lust",
	Short: "Tokenize a lust source file",
	Long:  `Tokenize breaks down a lust source file into its constituent tokens`,
	Args:  cobra.ExactArgs(1),
	RunE:  runTokenize,
}

func init() {
	tokenizeCmd.Flags().String("format", "pretty", "output format (pretty|json)")
}

func runTokenize(cmd *cobra.Command, args []string) error {
	filePath := args[0]

	st, err := loadSettings(cmd, filePath)
	if err != nil {
		return err
	}
	if st.format != "pretty" && st.format != "json" {
		return fmt.Errorf("unknown format: %s", st.format)
	}
	timer := st.timer()

	result, err := driver.Tokenize(cmd.Context(), filePath, driver.Options{
		MaxDiagnostics: st.maxDiagnostics,
		Timer:          timer,
	})
	if err != nil {
		return fmt.Errorf("tokenization failed: %w", err)
	}

	// Выводим диагностику в stderr, если есть
	if result.Bag.Len() > 0 {
		result.Bag.Sort()
		diagfmt.Pretty(os.Stderr, result.Bag, result.FileSet, st.prettyOpts())
	}

	out := cmd.OutOrStdout()
	switch st.format {
	case "json":
		err = diagfmt.FormatTokensJSON(out, result.Tokens, result.FileSet)
	default:
		err = diagfmt.FormatTokensPretty(out, result.Tokens, result.FileSet)
	}
	if err != nil {
		return err
	}
	if st.timings {
		if err := printTimings(cmd, "tokenize", filePath, timer, st.format == "json"); err != nil {
			return err
		}
	}
	if result.Bag.HasErrors() {
		return errDiagnostics
	}
	return nil
}
