package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"lust/internal/project"
)

var initCmd = &cobra.Command{
	Use:   "init [path|name]",
	Short: "Initialize a new lust project",
	Long: `Initialize a new lust project by creating a project manifest (lust.toml)
and a sample source file (main.lust). If [path|name] is omitted, initializes
the current directory. If a non-existing name is provided, a directory will be
created.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runInit,
}

const defaultMainName = "main" + project.SourceExt

// runInit creates lust.toml and main.lust in the target directory (the working
// directory when no argument or "." is given). The project name is the directory
// basename. An existing manifest is never overwritten; an existing main.lust is kept.
func runInit(cmd *cobra.Command, args []string) error {
	target := "."
	if len(args) == 1 {
		target = args[0]
	}
	target, err := filepath.Abs(target)
	if err != nil {
		return err
	}

	// Ensure directory exists
	if st, err := os.Stat(target); err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			return err
		}
		if err = os.MkdirAll(target, 0o755); err != nil {
			return fmt.Errorf("failed to create directory %q: %w", target, err)
		}
	} else if !st.IsDir() {
		return fmt.Errorf("%q is not a directory", target)
	}

	name := strings.TrimSpace(filepath.Base(target))
	if name == "" || name == "." || name == string(filepath.Separator) {
		name = "lust-project"
	}

	manifestPath, err := project.WriteManifest(target, project.Default(name))
	if err != nil {
		if errors.Is(err, project.ErrManifestExists) {
			return fmt.Errorf("project already initialized: %w", err)
		}
		return err
	}

	mainPath := filepath.Join(target, defaultMainName)
	createdMain := false
	if _, err := os.Stat(mainPath); errors.Is(err, os.ErrNotExist) {
		if err := os.WriteFile(mainPath, []byte(defaultMainSource), 0o600); err != nil {
			return fmt.Errorf("failed to write %s: %w", defaultMainName, err)
		}
		createdMain = true
	}

	rel := target
	if wd, err := os.Getwd(); err == nil {
		if r, err2 := filepath.Rel(wd, target); err2 == nil {
			rel = r
		}
	}
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Initialized lust project in %s\n", rel)
	fmt.Fprintf(out, "  - %s\n", filepath.Base(manifestPath))
	if createdMain {
		fmt.Fprintf(out, "  - %s\n", defaultMainName)
	} else {
		fmt.Fprintf(out, "  - %s (existing)\n", defaultMainName)
	}
	return nil
}

// defaultMainSource — пример, который разбирается без диагностик.
const defaultMainSource = `// lust sample: parse it with "lust parse main.lust"

struct Greeting<T> {
    text: T,
    times: u32,
}

trait Greet {
    fn greet(self) -> bool;
}

pub fn main() {
    let hello: Greeting<&str> = make("Hello, lust!", 1);
    hello.greet();
}
`
