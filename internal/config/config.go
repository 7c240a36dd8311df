// Package config loads and validates cowel's runtime configuration:
// the syntax-highlight theme, the bibliography database location, the
// roots \cowel_include may read from, section name aliases, and CLI
// defaults.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/eisenwave/cowel-sub001/internal/logging"
)

// Config holds all of cowel's configuration.
type Config struct {
	Name    string `yaml:"name"`
	Version string `yaml:"version"`

	Highlight    HighlightConfig    `yaml:"highlight"`
	Bibliography BibliographyConfig `yaml:"bibliography"`
	Files        FilesConfig        `yaml:"files"`
	Sections     SectionsConfig     `yaml:"sections"`
	CLI          CLIConfig          `yaml:"cli"`
	Logging      LoggingConfig      `yaml:"logging"`
}

// HighlightConfig holds a chroma theme name and a plain-text fallback
// flag. They are loaded from the config file, but the highlight
// package reads neither.
type HighlightConfig struct {
	Theme           string `yaml:"theme"`
	FallbackToPlain bool   `yaml:"fallback_to_plain"`
}

// BibliographyConfig locates the bibliography store.
type BibliographyConfig struct {
	DatabasePath string `yaml:"database_path"`
}

// FilesConfig bounds \cowel_include's filesystem access.
type FilesConfig struct {
	AllowedRoots []string `yaml:"allowed_roots"`
	MaxBytes     int64    `yaml:"max_bytes"`
}

// SectionsConfig maps alternate names onto cowel's well-known section
// buffers (e.g. "toc" -> "std.toc"), so templates can use shorter names.
type SectionsConfig struct {
	Aliases map[string]string `yaml:"aliases"`
}

// CLIConfig holds cmd/cowel's defaults.
type CLIConfig struct {
	OutputDir      string `yaml:"output_dir"`
	Untrusted      bool   `yaml:"untrusted"`
	WatchDebounce  string `yaml:"watch_debounce"`
	ConcurrentJobs int    `yaml:"concurrent_jobs"`
}

// LoggingConfig controls the logging package's debug-mode file logger.
type LoggingConfig struct {
	DebugMode  bool            `yaml:"debug_mode"`
	Level      string          `yaml:"level"`
	JSONFormat bool            `yaml:"json_format"`
	Categories map[string]bool `yaml:"categories"`
}

// DefaultConfig returns cowel's baseline configuration.
func DefaultConfig() *Config {
	return &Config{
		Name:    "cowel",
		Version: "0.1.0",

		Highlight: HighlightConfig{
			Theme:           "monokai",
			FallbackToPlain: true,
		},
		Bibliography: BibliographyConfig{
			DatabasePath: ".cowel/bib.db",
		},
		Files: FilesConfig{
			AllowedRoots: []string{"."},
			MaxBytes:     1 << 20,
		},
		Sections: SectionsConfig{
			Aliases: map[string]string{
				"toc":  "std.toc",
				"head": "std.head",
				"body": "std.body",
				"bib":  "std.bib",
			},
		},
		CLI: CLIConfig{
			OutputDir:      "out",
			Untrusted:      false,
			WatchDebounce:  "300ms",
			ConcurrentJobs: 4,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// Load reads configuration from a YAML file at path, falling back to
// DefaultConfig (with env overrides still applied) if the file is
// absent.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()
	logging.CLI("loading config from %s", path)

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			logging.CLI("config file not found, using defaults: %s", path)
			cfg.applyEnvOverrides()
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	cfg.applyEnvOverrides()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save writes cfg as YAML to path, creating parent directories as
// needed.
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	return os.WriteFile(path, data, 0644)
}

// applyEnvOverrides lets a handful of environment variables override
// file-based config, for CI and containerized runs.
func (c *Config) applyEnvOverrides() {
	if theme := os.Getenv("COWEL_HIGHLIGHT_THEME"); theme != "" {
		c.Highlight.Theme = theme
	}
	if db := os.Getenv("COWEL_BIB_DB"); db != "" {
		c.Bibliography.DatabasePath = db
	}
	if out := os.Getenv("COWEL_OUTPUT_DIR"); out != "" {
		c.CLI.OutputDir = out
	}
	if os.Getenv("COWEL_UNTRUSTED") == "1" {
		c.CLI.Untrusted = true
	}
}

// WatchDebounceDuration parses CLI.WatchDebounce, defaulting to 300ms
// on a malformed value.
func (c *Config) WatchDebounceDuration() time.Duration {
	d, err := time.ParseDuration(c.CLI.WatchDebounce)
	if err != nil {
		return 300 * time.Millisecond
	}
	return d
}

// ResolveSection expands a section alias (e.g. "toc") to its
// underlying buffer name ("std.toc"), or returns name unchanged if it
// is not an alias.
func (c *Config) ResolveSection(name string) string {
	if full, ok := c.Sections.Aliases[name]; ok {
		return full
	}
	return name
}

// IsRootAllowed reports whether path falls under one of the configured
// allowed roots for \cowel_include.
func (c *Config) IsRootAllowed(path string) bool {
	abs, err := filepath.Abs(path)
	if err != nil {
		return false
	}
	for _, root := range c.Files.AllowedRoots {
		rootAbs, err := filepath.Abs(root)
		if err != nil {
			continue
		}
		rel, err := filepath.Rel(rootAbs, abs)
		if err == nil && rel != ".." && !hasDotDotPrefix(rel) {
			return true
		}
	}
	return false
}

func hasDotDotPrefix(rel string) bool {
	return len(rel) >= 2 && rel[0] == '.' && rel[1] == '.' &&
		(len(rel) == 2 || rel[2] == filepath.Separator)
}

// Validate checks the configuration is internally consistent.
func (c *Config) Validate() error {
	if c.Files.MaxBytes <= 0 {
		return fmt.Errorf("files.max_bytes must be positive, got %d", c.Files.MaxBytes)
	}
	if c.CLI.ConcurrentJobs <= 0 {
		return fmt.Errorf("cli.concurrent_jobs must be positive, got %d", c.CLI.ConcurrentJobs)
	}
	if _, err := time.ParseDuration(c.CLI.WatchDebounce); err != nil {
		return fmt.Errorf("cli.watch_debounce is not a valid duration: %w", err)
	}
	return nil
}
