package main

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// configEnvVar names the environment variable consulted when --config is
// not given.
const configEnvVar = "HUF_CONFIG"

// Config holds the settings of the huf command.  Flags override values
// loaded from the config file.
type Config struct {
	// Suffix is appended to a file name to form the compressed name.
	Suffix string `yaml:"suffix"`

	// UncSuffix is inserted before the extension of a decompressed file,
	// so "notes.txt.huf" becomes "notes_unc.txt".
	UncSuffix string `yaml:"unc_suffix"`

	// LogLevel is one of debug, info, warn, error.
	LogLevel string `yaml:"log_level"`

	// Verify decompresses every artifact after writing it and compares
	// BLAKE3 digests with the input.
	Verify bool `yaml:"verify"`
}

// DefaultConfig returns the built-in settings.
func DefaultConfig() Config {
	return Config{
		Suffix:    ".huf",
		UncSuffix: "_unc",
		LogLevel:  "info",
	}
}

// LoadConfig reads a YAML config file on top of DefaultConfig.  Unknown
// keys are rejected.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	raw, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("reading config: %w", err)
	}

	decoder := yaml.NewDecoder(bytes.NewReader(raw))
	decoder.KnownFields(true)
	if err := decoder.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return cfg, fmt.Errorf("parsing config %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks that every setting is usable.
func (cfg Config) Validate() error {
	if cfg.Suffix == "" {
		return errors.New("suffix must not be empty")
	}
	if strings.ContainsRune(cfg.Suffix, os.PathSeparator) {
		return fmt.Errorf("suffix %q must not contain a path separator", cfg.Suffix)
	}
	if cfg.UncSuffix == "" {
		return errors.New("unc_suffix must not be empty")
	}
	if _, err := cfg.Level(); err != nil {
		return err
	}
	return nil
}

// Level parses LogLevel.
func (cfg Config) Level() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(cfg.LogLevel)); err != nil {
		return level, fmt.Errorf("invalid log_level %q", cfg.LogLevel)
	}
	return level, nil
}
