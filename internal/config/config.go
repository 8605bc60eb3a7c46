package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"textsum/internal/summarizer"
)

// SegmenterConfig selects the sentence-boundary detector.
type SegmenterConfig struct {
	Type string `yaml:"type"`
}

// SummarizerConfig selects the preset and per-call parameters. Nil
// fields fall back to the preset's own options.
type SummarizerConfig struct {
	Preset           string   `yaml:"preset"`
	Ratio            *float64 `yaml:"ratio,omitempty"`
	MinSentences     *int     `yaml:"min_sentences,omitempty"`
	ConciseThreshold *int     `yaml:"concise_threshold,omitempty"`
	Separator        *string  `yaml:"separator,omitempty"`
}

// Options overlays the fields set in c onto base.
func (c SummarizerConfig) Options(base summarizer.Options) summarizer.Options {
	opts := base
	if c.Ratio != nil {
		opts.Ratio = *c.Ratio
	}
	if c.MinSentences != nil {
		opts.MinSentences = *c.MinSentences
	}
	if c.ConciseThreshold != nil {
		opts.ConciseThreshold = *c.ConciseThreshold
	}
	if c.Separator != nil {
		opts.Separator = *c.Separator
	}
	return opts
}

// BatchConfig bounds how many documents are summarized at once.
type BatchConfig struct {
	Concurrency int `yaml:"concurrency"`
}

// OutputConfig selects the report format: text, json or yaml.
type OutputConfig struct {
	Format string `yaml:"format"`
}

// LogConfig sets the minimum log level.
type LogConfig struct {
	Level string `yaml:"level"`
}

// AppConfig is the root application configuration structure.
type AppConfig struct {
	Segmenter  SegmenterConfig  `yaml:"segmenter"`
	Summarizer SummarizerConfig `yaml:"summarizer"`
	Batch      BatchConfig      `yaml:"batch"`
	Output     OutputConfig     `yaml:"output"`
	Log        LogConfig        `yaml:"log"`
}

// Load reads a config from a specified path. If the file does not exist, returns defaults.
func Load(path string) (*AppConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Default(), nil
		}
		return nil, err
	}
	var cfg AppConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	applyConfigDefaults(&cfg)
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return &cfg, nil
}

// LoadDefault tries ./textsum.yaml first, then ~/.config/textsum/config.yaml.
// If neither exists, it writes defaults to ~/.config/textsum/config.yaml and returns them.
func LoadDefault() (*AppConfig, string, error) {
	cwdPath := "textsum.yaml"
	if _, err := os.Stat(cwdPath); err == nil {
		cfg, err := Load(cwdPath)
		return cfg, cwdPath, err
	}
	userPath, err := DefaultUserConfigPath()
	if err != nil {
		return nil, "", err
	}
	if _, err := os.Stat(userPath); err == nil {
		cfg, err := Load(userPath)
		return cfg, userPath, err
	}
	cfg := Default()
	if err := Save(userPath, cfg); err != nil {
		return nil, "", err
	}
	return cfg, userPath, nil
}

// Save writes the config to the given path, creating directories as needed.
func Save(path string, cfg *AppConfig) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

func DefaultUserConfigPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "textsum", "config.yaml"), nil
}

// Default returns the configuration used when no file is present.
func Default() *AppConfig {
	return &AppConfig{
		Segmenter:  SegmenterConfig{Type: "rule"},
		Summarizer: SummarizerConfig{Preset: "rich"},
		Batch:      BatchConfig{Concurrency: 4},
		Output:     OutputConfig{Format: "text"},
		Log:        LogConfig{Level: "info"},
	}
}

// Validate checks values that cannot be defaulted.
func (c *AppConfig) Validate() error {
	switch c.Output.Format {
	case "text", "json", "yaml":
	default:
		return fmt.Errorf("unknown output format: %s", c.Output.Format)
	}
	if r := c.Summarizer.Ratio; r != nil && (*r <= 0 || *r > 1) {
		return fmt.Errorf("summarizer.ratio must be in (0, 1], got %v", *r)
	}
	if m := c.Summarizer.MinSentences; m != nil && *m < 1 {
		return fmt.Errorf("summarizer.min_sentences must be at least 1, got %d", *m)
	}
	if ct := c.Summarizer.ConciseThreshold; ct != nil && *ct < 0 {
		return fmt.Errorf("summarizer.concise_threshold must not be negative, got %d", *ct)
	}
	return nil
}

func applyConfigDefaults(cfg *AppConfig) {
	if cfg.Segmenter.Type == "" {
		cfg.Segmenter.Type = "rule"
	}
	if cfg.Summarizer.Preset == "" {
		cfg.Summarizer.Preset = "rich"
	}
	if cfg.Batch.Concurrency <= 0 {
		cfg.Batch.Concurrency = 4
	}
	if cfg.Output.Format == "" {
		cfg.Output.Format = "text"
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = "info"
	}
}
