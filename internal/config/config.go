// Package config holds the configuration of the tnp2yaixm command.
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
)

// Config holds the complete configuration.
type Config struct {
	Trace  TraceConfig  `toml:"trace"`
	Input  InputConfig  `toml:"input"`
	Output OutputConfig `toml:"output"`
}

// TraceConfig holds tracing settings.
type TraceConfig struct {
	Level string `toml:"level"` // error | info | debug
}

// InputConfig holds settings for reading TNP.
type InputConfig struct {
	Encoding string `toml:"encoding"` // utf-8 | latin1
}

// OutputConfig holds settings for writing YAIXM.
type OutputConfig struct {
	Dedup  bool `toml:"dedup"`
	Indent int  `toml:"indent"`
}

// Default returns the configuration used without a configuration file.
func Default() *Config {
	return &Config{
		Trace:  TraceConfig{Level: "error"},
		Input:  InputConfig{Encoding: "utf-8"},
		Output: OutputConfig{Dedup: true, Indent: 2},
	}
}

// Load reads a TOML configuration file. Settings missing from the file
// keep their default values.
func Load(path string) (*Config, error) {
	path = os.ExpandEnv(path)
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, fmt.Errorf("config file not found: %s", path)
	}
	cfg := Default()
	md, err := toml.DecodeFile(path, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("unknown config key %q in %s", undecoded[0].String(), path)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the values of a configuration and canonicalizes them.
func (c *Config) Validate() error {
	c.Trace.Level = strings.ToLower(c.Trace.Level)
	switch c.Trace.Level {
	case "error", "info", "debug":
	default:
		return fmt.Errorf("invalid trace level %q", c.Trace.Level)
	}
	c.Input.Encoding = strings.ToLower(c.Input.Encoding)
	switch c.Input.Encoding {
	case "utf-8", "utf8":
		c.Input.Encoding = "utf-8"
	case "latin1", "latin-1", "iso-8859-1":
		c.Input.Encoding = "latin1"
	default:
		return fmt.Errorf("invalid input encoding %q", c.Input.Encoding)
	}
	if c.Output.Indent < 2 || c.Output.Indent > 9 {
		return fmt.Errorf("invalid output indent %d", c.Output.Indent)
	}
	return nil
}
