package project

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/Masterminds/semver/v3"
)

// SourceExt — расширение исходников lust.
const SourceExt = ".lust"

var (
	ErrPackageSectionMissing = errors.New("missing [package]")
	ErrPackageNameMissing    = errors.New("missing [package].name")
	ErrBadConstraint         = errors.New("invalid [package].lust constraint")
	ErrToolchainMismatch     = errors.New("toolchain version does not satisfy manifest")
	ErrBadOutputFormat       = errors.New("invalid [output].format")
	ErrBadOutputColor        = errors.New("invalid [output].color")
	ErrManifestExists        = errors.New("manifest already exists")
)

type Manifest struct {
	Path   string
	Root   string
	Config Config
}

type Config struct {
	Package PackageConfig `toml:"package"`
	Parse   ParseConfig   `toml:"parse"`
	Output  OutputConfig  `toml:"output"`
}

type PackageConfig struct {
	Name string `toml:"name"`
	// Lust — semver-ограничение на версию тулчейна, например ">= 0.1, < 1".
	Lust string `toml:"lust,omitempty"`
}

type ParseConfig struct {
	MaxDiagnostics int      `toml:"max_diagnostics"`
	Jobs           int      `toml:"jobs"`
	Include        []string `toml:"include"`
}

type OutputConfig struct {
	Color  string `toml:"color"`
	Format string `toml:"format"`
}

var (
	outputFormats = []string{"pretty", "tree", "json", "yaml", "dot"}
	colorModes    = []string{"auto", "on", "off"}
)

// Default возвращает конфигурацию, которую пишет `lust init`.
func Default(name string) Config {
	return Config{
		Package: PackageConfig{Name: name},
		Parse: ParseConfig{
			MaxDiagnostics: 100,
			Include:        []string{"."},
		},
		Output: OutputConfig{Color: "auto", Format: "pretty"},
	}
}

// LoadManifest ищет lust.toml вверх от startDir и разбирает его.
// ok=false без ошибки — манифеста нет.
func LoadManifest(startDir string) (*Manifest, bool, error) {
	manifestPath, ok, err := FindManifest(startDir)
	if err != nil || !ok {
		return nil, ok, err
	}
	cfg, err := LoadConfig(manifestPath)
	if err != nil {
		return nil, true, err
	}
	return &Manifest{
		Path:   manifestPath,
		Root:   filepath.Dir(manifestPath),
		Config: cfg,
	}, true, nil
}

func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	cfg, err := DecodeConfig(data)
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// DecodeConfig разбирает и валидирует содержимое манифеста.
// Незаданные поля [parse]/[output] берутся из Default.
func DecodeConfig(data []byte) (Config, error) {
	var cfg Config
	meta, err := toml.Decode(string(data), &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to parse TOML: %w", err)
	}
	if !meta.IsDefined("package") {
		return Config{}, ErrPackageSectionMissing
	}
	if !meta.IsDefined("package", "name") || strings.TrimSpace(cfg.Package.Name) == "" {
		return Config{}, ErrPackageNameMissing
	}

	def := Default(cfg.Package.Name)
	if !meta.IsDefined("parse", "max_diagnostics") {
		cfg.Parse.MaxDiagnostics = def.Parse.MaxDiagnostics
	}
	if !meta.IsDefined("parse", "include") {
		cfg.Parse.Include = def.Parse.Include
	}
	if !meta.IsDefined("output", "color") {
		cfg.Output.Color = def.Output.Color
	}
	if !meta.IsDefined("output", "format") {
		cfg.Output.Format = def.Output.Format
	}

	if cfg.Package.Lust != "" {
		if _, err := semver.NewConstraint(cfg.Package.Lust); err != nil {
			return Config{}, fmt.Errorf("%w %q: %w", ErrBadConstraint, cfg.Package.Lust, err)
		}
	}
	if !slices.Contains(outputFormats, cfg.Output.Format) {
		return Config{}, fmt.Errorf("%w %q (want one of %s)", ErrBadOutputFormat, cfg.Output.Format, strings.Join(outputFormats, ", "))
	}
	if !slices.Contains(colorModes, cfg.Output.Color) {
		return Config{}, fmt.Errorf("%w %q (want one of %s)", ErrBadOutputColor, cfg.Output.Color, strings.Join(colorModes, ", "))
	}
	if cfg.Parse.MaxDiagnostics < 0 {
		cfg.Parse.MaxDiagnostics = 0
	}
	if cfg.Parse.Jobs < 0 {
		cfg.Parse.Jobs = 0
	}
	return cfg, nil
}

// CheckToolchain сверяет ограничение [package].lust с версией тулчейна.
// Пустое ограничение принимает любую версию.
func CheckToolchain(constraint, toolchain string) error {
	if strings.TrimSpace(constraint) == "" {
		return nil
	}
	c, err := semver.NewConstraint(constraint)
	if err != nil {
		return fmt.Errorf("%w %q: %w", ErrBadConstraint, constraint, err)
	}
	v, err := semver.NewVersion(toolchain)
	if err != nil {
		return fmt.Errorf("bad toolchain version %q: %w", toolchain, err)
	}
	if ok, reasons := c.Validate(v); !ok {
		msgs := make([]string, 0, len(reasons))
		for _, r := range reasons {
			msgs = append(msgs, r.Error())
		}
		return fmt.Errorf("%w: %s", ErrToolchainMismatch, strings.Join(msgs, "; "))
	}
	return nil
}

// Encode сериализует конфигурацию в TOML.
func Encode(cfg Config) ([]byte, error) {
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(cfg); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// WriteManifest создаёт dir/lust.toml; существующий файл не трогает.
func WriteManifest(dir string, cfg Config) (string, error) {
	path := filepath.Join(dir, ManifestName)
	if _, err := os.Stat(path); err == nil {
		return "", fmt.Errorf("%s: %w", path, ErrManifestExists)
	} else if !errors.Is(err, os.ErrNotExist) {
		return "", fmt.Errorf("failed to stat %q: %w", path, err)
	}
	data, err := Encode(cfg)
	if err != nil {
		return "", fmt.Errorf("failed to encode manifest: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("failed to write %q: %w", path, err)
	}
	return path, nil
}

// SourceFiles собирает все *.lust из [parse].include относительно корня.
// Результат отсортирован и без дублей.
func (m *Manifest) SourceFiles() ([]string, error) {
	var out []string
	for _, inc := range m.Config.Parse.Include {
		p := filepath.Join(m.Root, filepath.FromSlash(inc))
		files, err := CollectSources(p)
		if err != nil {
			return nil, fmt.Errorf("%s: include %q: %w", m.Path, inc, err)
		}
		out = append(out, files...)
	}
	slices.Sort(out)
	return slices.Compact(out), nil
}

// CollectSources возвращает path, если это файл, или все *.lust внутри каталога.
// Скрытые каталоги пропускаются.
func CollectSources(path string) ([]string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, err
	}
	if !info.IsDir() {
		return []string{path}, nil
	}
	var files []string
	err = filepath.WalkDir(path, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if p != path && strings.HasPrefix(d.Name(), ".") {
				return filepath.SkipDir
			}
			return nil
		}
		if filepath.Ext(p) == SourceExt {
			files = append(files, p)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	slices.Sort(files)
	return files, nil
}
