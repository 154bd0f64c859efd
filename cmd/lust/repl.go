package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"lust/internal/repl"
)

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Parse lust interactively",
	Long: `Start an interactive session: every complete input is parsed and its
diagnostics and syntax tree are printed. Type :help for commands.`,
	Args: cobra.NoArgs,
	RunE: runREPL,
}

func init() {
	replCmd.Flags().String("format", "tree", "AST output format (pretty|tree|json|yaml|dot)")
}

func runREPL(cmd *cobra.Command, _ []string) error {
	st, err := loadSettings(cmd, "")
	if err != nil {
		return err
	}
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}
	return repl.Start(cmd.Context(), cmd.OutOrStdout(), repl.Options{
		Color:          st.useColor(os.Stdout),
		MaxDiagnostics: st.maxDiagnostics,
		Format:         format,
	})
}
