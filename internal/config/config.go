// Package config holds the runtime configuration for a rename batch and the
// layering that produces it: built-in defaults, an optional YAML file, and
// SHOTSEQ_* environment variables. Command-line flags are applied on top by
// the caller.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/shotseq/shotseq/internal/sequence"
)

// DefaultFile is the config file a bare run looks for in the working
// directory. A missing default file is not an error.
const DefaultFile = "shotseq.yaml"

const (
	// DefaultDir is the directory operated on when none is given.
	DefaultDir = "screenshots"

	// DefaultPrefix and DefaultOutputExt produce the classic screen_NN.jpg
	// sequence.
	DefaultPrefix    = "screen_"
	DefaultOutputExt = ".jpg"

	// DefaultPad is the minimum zero-padded index width.
	DefaultPad = 2
)

// Config holds all settings for one batch run.
type Config struct {
	// Dir is the target directory. Only its direct children are considered.
	Dir string `yaml:"dir"`

	// Extensions lists the literal name suffixes that qualify a file.
	// Matching is exact unless CaseInsensitive is set, so ".jpg" and ".JPG"
	// are distinct entries.
	Extensions      []string `yaml:"extensions"`
	CaseInsensitive bool     `yaml:"case_insensitive"`

	// Prefix, Pad, and OutputExt shape the final names. Pad is a minimum
	// width; larger indices widen the field.
	Prefix    string `yaml:"prefix"`
	Pad       int    `yaml:"pad"`
	OutputExt string `yaml:"output_ext"`

	// Atomic makes the batch all-or-nothing: any failure rolls every file
	// back to its original name. Off by default, in which case failed files
	// are skipped and the rest of the batch proceeds.
	Atomic bool `yaml:"atomic"`

	// DryRun reports the plan without renaming anything.
	DryRun bool `yaml:"dry_run"`

	LogLevel  string `yaml:"log_level"`
	LogFormat string `yaml:"log_format"`
}

// Default returns the built-in configuration: the classic screenshot
// suffixes, screen_NN.jpg output, and per-file error tolerance.
func Default() Config {
	return Config{
		Dir:        DefaultDir,
		Extensions: sequence.DefaultSuffixes(),
		Prefix:     DefaultPrefix,
		Pad:        DefaultPad,
		OutputExt:  DefaultOutputExt,
		LogLevel:   "info",
		LogFormat:  "console",
	}
}

// Load builds the effective configuration. An empty path means "use
// DefaultFile if it exists"; a non-empty path must exist. Environment
// variables override file values, and Normalize is applied before returning.
// Validation is left to the caller so flag overrides can land first.
func Load(path string) (Config, error) {
	cfg := Default()

	required := path != ""
	if path == "" {
		path = DefaultFile
	}
	if err := cfg.loadFile(path, required); err != nil {
		return cfg, err
	}

	cfg.applyEnv()
	cfg.Normalize()
	return cfg, nil
}

func (c *Config) loadFile(path string, required bool) error {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) && !required {
		return nil
	}
	if err != nil {
		return fmt.Errorf("config: reading %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("config: parsing %s: %w", path, err)
	}
	return nil
}

// applyEnv overlays SHOTSEQ_* environment variables. Unset or empty
// variables leave the current value alone.
func (c *Config) applyEnv() {
	c.Dir = envOr("SHOTSEQ_DIR", c.Dir)
	if v := os.Getenv("SHOTSEQ_EXTENSIONS"); v != "" {
		c.Extensions = splitList(v)
	}
	c.CaseInsensitive = envBool("SHOTSEQ_IGNORE_CASE", c.CaseInsensitive)
	c.Prefix = envOr("SHOTSEQ_PREFIX", c.Prefix)
	c.Pad = envInt("SHOTSEQ_PAD", c.Pad)
	c.OutputExt = envOr("SHOTSEQ_OUTPUT_EXT", c.OutputExt)
	c.Atomic = envBool("SHOTSEQ_ATOMIC", c.Atomic)
	c.DryRun = envBool("SHOTSEQ_DRY_RUN", c.DryRun)
	c.LogLevel = envOr("SHOTSEQ_LOG_LEVEL", c.LogLevel)
	c.LogFormat = envOr("SHOTSEQ_LOG_FORMAT", c.LogFormat)
}

// Normalize canonicalizes user input: whitespace is trimmed, empty list
// entries are dropped, and suffixes get their leading dot when omitted, so
// "jpg" and ".jpg" configure the same filter.
func (c *Config) Normalize() {
	c.Dir = strings.TrimSpace(c.Dir)

	exts := make([]string, 0, len(c.Extensions))
	for _, ext := range c.Extensions {
		ext = strings.TrimSpace(ext)
		if ext == "" {
			continue
		}
		if !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		exts = append(exts, ext)
	}
	c.Extensions = exts

	c.OutputExt = strings.TrimSpace(c.OutputExt)
	if c.OutputExt != "" && !strings.HasPrefix(c.OutputExt, ".") {
		c.OutputExt = "." + c.OutputExt
	}

	c.LogLevel = strings.ToLower(strings.TrimSpace(c.LogLevel))
	c.LogFormat = strings.ToLower(strings.TrimSpace(c.LogFormat))
}

// Validate checks the configuration after all layers are applied.
func (c *Config) Validate() error {
	if c.Dir == "" {
		return errors.New("config: target directory must not be empty")
	}
	if len(c.Extensions) == 0 {
		return errors.New("config: at least one extension is required")
	}
	for _, ext := range c.Extensions {
		if len(ext) < 2 || !strings.HasPrefix(ext, ".") {
			return fmt.Errorf("config: invalid extension %q (use a suffix like .jpg)", ext)
		}
		if strings.EqualFold(ext, sequence.StagingExt) {
			return fmt.Errorf("config: extension %q is reserved for staging", ext)
		}
	}
	if c.Prefix == "" {
		return errors.New("config: name prefix must not be empty")
	}
	if c.Pad < 2 {
		return fmt.Errorf("config: pad width must be at least 2, got %d", c.Pad)
	}
	if len(c.OutputExt) < 2 || !strings.HasPrefix(c.OutputExt, ".") {
		return fmt.Errorf("config: invalid output extension %q", c.OutputExt)
	}
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("config: invalid log level %q (use debug, info, warn, or error)", c.LogLevel)
	}
	switch c.LogFormat {
	case "console", "json":
	default:
		return fmt.Errorf("config: invalid log format %q (use console or json)", c.LogFormat)
	}
	return nil
}

func splitList(v string) []string {
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envBool(key string, fallback bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return b
}

func envInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}
