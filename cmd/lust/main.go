package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"lust/internal/version"
)

var rootCmd = &cobra.Command{
	Use:   "lust",
	Short: "Lust language front end and toolchain",
	Long:  `Lust tokenizes and parses lust sources and reports diagnostics`,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		if err := setupProfiling(cmd); err != nil {
			return err
		}
		return setupTracing(cmd)
	},
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	// Устанавливаем версию для автоматического флага --version
	rootCmd.Version = version.Version

	rootCmd.AddCommand(tokenizeCmd)
	rootCmd.AddCommand(parseCmd)
	rootCmd.AddCommand(diagCmd)
	rootCmd.AddCommand(fixCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(lspCmd)
	rootCmd.AddCommand(replCmd)
	rootCmd.AddCommand(versionCmd)

	// Глобальные флаги
	rootCmd.PersistentFlags().String("color", "auto", "colorize output (auto|on|off)")
	rootCmd.PersistentFlags().Bool("quiet", false, "suppress non-essential output")
	rootCmd.PersistentFlags().Bool("timings", false, "show timing information")
	rootCmd.PersistentFlags().Int("max-diagnostics", 100, "maximum number of diagnostics to show")
	rootCmd.PersistentFlags().String("trace", "off", "trace level (off|error|phase|detail|debug)")
	rootCmd.PersistentFlags().String("trace-output", "", "trace destination (- or empty for stderr, *.ndjson for NDJSON)")
	rootCmd.PersistentFlags().String("trace-format", "", "trace format (text|ndjson)")
	rootCmd.PersistentFlags().String("cpu-profile", "", "write CPU profile to file")
	rootCmd.PersistentFlags().String("mem-profile", "", "write heap profile to file on exit")
	rootCmd.PersistentFlags().String("runtime-trace", "", "write Go runtime execution trace to file")

	cobra.OnFinalize(closeTracing, stopProfiling)
}

// main executes the root command; any returned error exits with status 1.
func main() {
	if err := rootCmd.Execute(); err != nil {
		if !errors.Is(err, errDiagnostics) {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
		}
		os.Exit(1)
	}
}

// isTerminal проверяет, является ли файл терминалом
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd())) //nolint:gosec // fd fits in int
}
