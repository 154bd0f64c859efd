package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/tliron/commonlog"
	_ "github.com/tliron/commonlog/simple" // backend для commonlog

	"lust/internal/lsp"
)

var lspCmd = &cobra.Command{
	Use:   "lsp",
	Short: "Run the lust language server over stdio",
	RunE:  runLSP,
}

func init() {
	lspCmd.Flags().CountP("verbose", "v", "log verbosity (repeat for more)")
	lspCmd.Flags().String("log-file", "", "write server logs to this file instead of stderr")
	lspCmd.Flags().Bool("debug", false, "log every protocol message")
}

func runLSP(cmd *cobra.Command, _ []string) error {
	verbose, err := cmd.Flags().GetCount("verbose")
	if err != nil {
		return fmt.Errorf("failed to get verbose flag: %w", err)
	}
	logFile, err := cmd.Flags().GetString("log-file")
	if err != nil {
		return fmt.Errorf("failed to get log-file flag: %w", err)
	}
	debug, err := cmd.Flags().GetBool("debug")
	if err != nil {
		return fmt.Errorf("failed to get debug flag: %w", err)
	}
	maxDiagnostics, err := cmd.Root().PersistentFlags().GetInt("max-diagnostics")
	if err != nil {
		return fmt.Errorf("failed to get max-diagnostics flag: %w", err)
	}

	// stdout занят протоколом, логи только в stderr или файл
	var path *string
	if logFile != "" {
		path = &logFile
	}
	commonlog.Configure(verbose, path)

	server := lsp.NewServer(lsp.Options{MaxDiagnostics: maxDiagnostics, Debug: debug})
	return server.RunStdio()
}
