package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"lust/internal/diagfmt"
	"lust/internal/observ"
	"lust/internal/project"
	"lust/internal/version"
)

// settings — итоговая конфигурация команды: манифест, поверх него флаги.
type settings struct {
	color          string
	quiet          bool
	timings        bool
	maxDiagnostics int
	jobs           int
	format         string
	manifest       *project.Manifest
}

// loadSettings находит lust.toml рядом с target (или выше) и накладывает явно
// заданные флаги. Отсутствие манифеста не ошибка.
func loadSettings(cmd *cobra.Command, target string) (*settings, error) {
	flags := cmd.Root().PersistentFlags()
	s := &settings{color: "auto", maxDiagnostics: 100, format: "pretty"}

	start := target
	if start == "" {
		start = "."
	}
	if st, err := os.Stat(start); err == nil && !st.IsDir() {
		start = filepath.Dir(start)
	}
	manifest, ok, err := project.LoadManifest(start)
	if err != nil {
		return nil, err
	}
	if ok {
		if err := project.CheckToolchain(manifest.Config.Package.Lust, version.Semver); err != nil {
			return nil, fmt.Errorf("%s: %w", manifest.Path, err)
		}
		s.manifest = manifest
		s.applyConfig(manifest.Config)
	}

	if flags.Changed("color") || !ok {
		if s.color, err = flags.GetString("color"); err != nil {
			return nil, fmt.Errorf("failed to get color flag: %w", err)
		}
	}
	if flags.Changed("max-diagnostics") || !ok {
		if s.maxDiagnostics, err = flags.GetInt("max-diagnostics"); err != nil {
			return nil, fmt.Errorf("failed to get max-diagnostics flag: %w", err)
		}
	}
	if s.quiet, err = flags.GetBool("quiet"); err != nil {
		return nil, fmt.Errorf("failed to get quiet flag: %w", err)
	}
	if s.timings, err = flags.GetBool("timings"); err != nil {
		return nil, fmt.Errorf("failed to get timings flag: %w", err)
	}

	// локальные флаги команды
	if f := cmd.Flags().Lookup("jobs"); f != nil && (f.Changed || !ok) {
		if s.jobs, err = cmd.Flags().GetInt("jobs"); err != nil {
			return nil, fmt.Errorf("failed to get jobs flag: %w", err)
		}
	}
	if f := cmd.Flags().Lookup("format"); f != nil {
		s.format = f.Value.String()
		// [output].format описывает вывод AST, к токенам и диагностикам не относится
		if ok && !f.Changed && cmd.Name() == "parse" {
			s.format = manifest.Config.Output.Format
		}
	}

	switch s.color {
	case "auto", "on", "off":
	default:
		return nil, fmt.Errorf("invalid --color value %q (expected auto|on|off)", s.color)
	}
	if s.maxDiagnostics < 0 {
		s.maxDiagnostics = 0
	}
	return s, nil
}

func (s *settings) applyConfig(cfg project.Config) {
	s.color = cfg.Output.Color
	s.maxDiagnostics = cfg.Parse.MaxDiagnostics
	s.jobs = cfg.Parse.Jobs
}

// useColor решает, красить ли вывод в f.
func (s *settings) useColor(f *os.File) bool {
	return s.color == "on" || (s.color == "auto" && isTerminal(f))
}

func (s *settings) prettyOpts() diagfmt.PrettyOpts {
	return diagfmt.PrettyOpts{
		Color:     s.useColor(os.Stderr),
		Context:   2,
		ShowNotes: true,
		ShowFixes: true,
	}
}

// timer возвращает таймер только при --timings; nil-таймер ничего не меряет.
func (s *settings) timer() *observ.Timer {
	if !s.timings {
		return nil
	}
	return observ.NewTimer()
}
