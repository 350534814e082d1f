// Package config loads the defaults of the textkit command from a YAML file.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/badele/textkit/internal/importer"
	"github.com/badele/textkit/internal/tokenizer"
)

// Output formats.
const (
	FormatText  = "text"
	FormatJSON  = "json"
	FormatTable = "table"
)

var ErrInvalidConfig = errors.New("invalid config")

type ChartConfig struct {
	Width  int `yaml:"width"`  // default: 60
	Height int `yaml:"height"` // default: 10
}

type Config struct {
	// Top is the ranking size of the top and chart commands.
	Top              int    `yaml:"top"` // default: 5
	IgnoreShort      int    `yaml:"ignore_short"`
	StripPunctuation bool   `yaml:"strip_punctuation"`
	Encoding         string `yaml:"encoding"`  // default: utf8
	Format           string `yaml:"format"`    // text, json or table; default: text
	LogLevel         string `yaml:"log_level"` // default: info

	Chart ChartConfig `yaml:"chart"`
}

func Default() Config {
	cfg := Config{Top: tokenizer.DefaultTopN}
	normalize(&cfg)
	return cfg
}

// Load reads the YAML file at path over the defaults. An empty path returns
// the defaults. Keys absent from the file keep their default; an explicit
// top of 0 is kept and yields empty rankings.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Default(), fmt.Errorf("read config: %w", err)
		}
		if len(data) > 0 {
			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return Default(), fmt.Errorf("parse config %s: %w", path, err)
			}
		}
	}

	normalize(&cfg)
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func normalize(cfg *Config) {
	cfg.Encoding = strings.ToLower(strings.TrimSpace(cfg.Encoding))
	if cfg.Encoding == "" {
		cfg.Encoding = importer.DefaultEncoding
	}
	cfg.Format = strings.ToLower(strings.TrimSpace(cfg.Format))
	if cfg.Format == "" {
		cfg.Format = FormatText
	}
	cfg.LogLevel = strings.ToLower(strings.TrimSpace(cfg.LogLevel))
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}
	if cfg.Chart.Width == 0 {
		cfg.Chart.Width = 60
	}
	if cfg.Chart.Height == 0 {
		cfg.Chart.Height = 10
	}
}

// Validate rejects values no command can use.
func (c Config) Validate() error {
	if c.Top < 0 {
		return fmt.Errorf("%w: top (%d) must be >= 0", ErrInvalidConfig, c.Top)
	}
	if c.IgnoreShort < 0 {
		return fmt.Errorf("%w: ignore_short (%d) must be >= 0", ErrInvalidConfig, c.IgnoreShort)
	}
	if !importer.IsSupported(c.Encoding) {
		return fmt.Errorf("%w: encoding %q not in %v", ErrInvalidConfig, c.Encoding, importer.Encodings())
	}
	switch c.Format {
	case FormatText, FormatJSON, FormatTable:
	default:
		return fmt.Errorf("%w: unknown format %q", ErrInvalidConfig, c.Format)
	}
	switch c.LogLevel {
	case "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("%w: unknown log_level %q", ErrInvalidConfig, c.LogLevel)
	}
	if c.Chart.Width < 0 || c.Chart.Height < 0 {
		return fmt.Errorf("%w: chart size %dx%d", ErrInvalidConfig, c.Chart.Width, c.Chart.Height)
	}
	return nil
}
