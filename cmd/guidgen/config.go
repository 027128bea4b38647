package main

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/Lzww0608/guid/sqlstore"
)

const (
	modeGenerate = "generate"
	modeParse    = "parse"
)

// Config is the serialisable guidgen configuration. Flags override values
// loaded from a YAML file; the zero value of a field falls back to
// DefaultConfig.
type Config struct {
	Mode    string        `json:"mode" yaml:"mode"`
	Count   int           `json:"count" yaml:"count"`
	Format  string        `json:"format" yaml:"format"`
	Source  string        `json:"source" yaml:"source"`
	Hash    bool          `json:"hash" yaml:"hash"`
	Strict  bool          `json:"strict" yaml:"strict"`
	Record  bool          `json:"record" yaml:"record"`
	Tag     string        `json:"tag" yaml:"tag"`
	Timeout time.Duration `json:"timeout" yaml:"timeout"`

	Ledger sqlstore.Config `json:"ledger" yaml:"ledger"`
}

// DefaultConfig returns the settings used when neither a file nor a flag
// says otherwise.
func DefaultConfig() *Config {
	return &Config{
		Mode:    modeGenerate,
		Count:   1,
		Format:  formatCanonical,
		Source:  sourceRandom,
		Tag:     "default",
		Timeout: 10 * time.Second,
		Ledger:  sqlstore.DefaultConfig(),
	}
}

// LoadConfig reads a YAML file on top of DefaultConfig.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate returns an error describing the first invalid setting or nil.
func (c *Config) Validate() error {
	switch c.Mode {
	case modeGenerate, modeParse:
	default:
		return fmt.Errorf("mode must be %q or %q, got %q", modeGenerate, modeParse, c.Mode)
	}
	if c.Count <= 0 {
		return fmt.Errorf("count must be > 0")
	}
	if _, ok := formatters[c.Format]; !ok {
		return fmt.Errorf("unknown format %q", c.Format)
	}
	if _, ok := sources[c.Source]; !ok {
		return fmt.Errorf("unknown source %q", c.Source)
	}
	if c.Timeout <= 0 {
		return fmt.Errorf("timeout must be > 0")
	}
	if c.Record {
		if c.Mode != modeGenerate {
			return fmt.Errorf("record is only supported in %s mode", modeGenerate)
		}
		if c.Tag == "" {
			return fmt.Errorf("tag is required when recording")
		}
		if err := c.Ledger.Validate(); err != nil {
			return err
		}
	}
	return nil
}
