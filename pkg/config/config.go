// Package config handles aoc.toml run configuration.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/BurntSushi/toml"
	"go.uber.org/zap/zapcore"

	"github.com/psilLang/advent/pkg/intcode"
)

// DefaultPath is the file read when no --config flag is given.
const DefaultPath = "aoc.toml"

// Config is the aoc.toml file.
type Config struct {
	LogLevel  string    `toml:"log_level"`
	Intcode   Intcode   `toml:"intcode"`
	Search    Search    `toml:"search"`
	Frequency Frequency `toml:"frequency"`
}

// Intcode configures single program runs.
type Intcode struct {
	MaxSteps int          `toml:"max_steps"`
	Patch    []PatchEntry `toml:"patch"`
}

// PatchEntry overwrites one address before the run.
type PatchEntry struct {
	Address int `toml:"address"`
	Value   int `toml:"value"`
}

// Search configures the noun/verb search.
type Search struct {
	Target  int `toml:"target"`
	Workers int `toml:"workers"`
	Max     int `toml:"max"`
}

// Frequency configures the repeated frequency search.
type Frequency struct {
	MaxPasses int `toml:"max_passes"`
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	return &Config{
		LogLevel: "info",
		Intcode: Intcode{
			MaxSteps: 1_000_000,
			Patch:    []PatchEntry{{Address: 1, Value: 12}, {Address: 2, Value: 2}},
		},
		Search: Search{
			Target:  19690720,
			Workers: 8,
			Max:     99,
		},
		Frequency: Frequency{MaxPasses: 1000},
	}
}

// Load parses a TOML file. Keys left out keep their defaults; an explicit
// empty patch list disables patching.
func Load(path string) (*Config, error) {
	c := Default()
	c.Intcode.Patch = nil
	md, err := toml.DecodeFile(path, c)
	if err != nil {
		return nil, fmt.Errorf("parse error in %s: %w", path, err)
	}
	if !md.IsDefined("intcode", "patch") {
		c.Intcode.Patch = Default().Intcode.Patch
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, fmt.Errorf("%s: unknown keys: %s", path, strings.Join(keys, ", "))
	}
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}

// LoadOrDefault is Load, except that a missing file yields Default.
func LoadOrDefault(path string) (*Config, error) {
	c, err := Load(path)
	if errors.Is(err, fs.ErrNotExist) {
		return Default(), nil
	}
	return c, err
}

// Validate checks ranges and the log level.
func (c *Config) Validate() error {
	if c.Intcode.MaxSteps < 0 {
		return fmt.Errorf("intcode.max_steps must be >= 0, got %d", c.Intcode.MaxSteps)
	}
	seen := make(map[int]bool)
	for _, p := range c.Intcode.Patch {
		if p.Address < 0 {
			return fmt.Errorf("intcode.patch: negative address %d", p.Address)
		}
		if seen[p.Address] {
			return fmt.Errorf("intcode.patch: address %d patched twice", p.Address)
		}
		seen[p.Address] = true
	}
	if c.Search.Workers < 1 {
		return fmt.Errorf("search.workers must be >= 1, got %d", c.Search.Workers)
	}
	if c.Search.Max < 1 {
		return fmt.Errorf("search.max must be >= 1, got %d", c.Search.Max)
	}
	if c.Frequency.MaxPasses < 1 {
		return fmt.Errorf("frequency.max_passes must be >= 1, got %d", c.Frequency.MaxPasses)
	}
	if _, err := c.Level(); err != nil {
		return err
	}
	return nil
}

// Level parses LogLevel.
func (c *Config) Level() (zapcore.Level, error) {
	lvl, err := zapcore.ParseLevel(c.LogLevel)
	if err != nil {
		return zapcore.InfoLevel, fmt.Errorf("log_level: %w", err)
	}
	return lvl, nil
}

// PatchMap converts the patch list for intcode.VM.Patch.
func (c *Config) PatchMap() intcode.Patch {
	p := make(intcode.Patch, len(c.Intcode.Patch))
	for _, e := range c.Intcode.Patch {
		p[e.Address] = e.Value
	}
	return p
}

// SearchOptions converts the search section.
func (c *Config) SearchOptions() intcode.SearchOptions {
	return intcode.SearchOptions{
		Max:      c.Search.Max,
		Workers:  c.Search.Workers,
		MaxSteps: c.Intcode.MaxSteps,
	}
}
