// Package config loads engine settings for the gooey command line tools.
package config

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"

	"github.com/duanebester/gooey-sub004/pkg/layout"
)

// Config holds the tunable engine settings. The zero value of any field
// falls back to the engine default.
type Config struct {
	Viewport Viewport `toml:"viewport"`
	Limits   Limits   `toml:"limits"`
	Debug    bool     `toml:"debug"`
}

// Viewport is the frame size commands lay out against.
type Viewport struct {
	Width  float32 `toml:"width"`
	Height float32 `toml:"height"`
}

// Limits caps the engine's per-frame collections.
type Limits struct {
	MaxElements int `toml:"max_elements"`
	MaxDepth    int `toml:"max_depth"`
	MaxFloating int `toml:"max_floating"`
	MaxLines    int `toml:"max_lines"`
	MaxWords    int `toml:"max_words"`
	MaxCommands int `toml:"max_commands"`
	ArenaBytes  int `toml:"arena_bytes"`
}

// Default returns the settings used when no config file is given.
func Default() Config {
	return Config{
		Viewport: Viewport{Width: 1280, Height: 720},
	}
}

// Load reads a TOML config file, layered over Default.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("reading config: %w", err)
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing %s: %w", path, err)
	}
	return cfg, nil
}

// Options translates the configured limits into engine options, skipping
// unset fields.
func (c Config) Options() []layout.Option {
	var opts []layout.Option
	if c.Limits.MaxElements > 0 {
		opts = append(opts, layout.WithMaxElements(c.Limits.MaxElements))
	}
	if c.Limits.MaxDepth > 0 {
		opts = append(opts, layout.WithMaxDepth(c.Limits.MaxDepth))
	}
	if c.Limits.MaxFloating > 0 {
		opts = append(opts, layout.WithMaxFloating(c.Limits.MaxFloating))
	}
	if c.Limits.MaxLines > 0 {
		opts = append(opts, layout.WithMaxLines(c.Limits.MaxLines))
	}
	if c.Limits.MaxWords > 0 {
		opts = append(opts, layout.WithMaxWords(c.Limits.MaxWords))
	}
	if c.Limits.MaxCommands > 0 {
		opts = append(opts, layout.WithMaxCommands(c.Limits.MaxCommands))
	}
	if c.Limits.ArenaBytes > 0 {
		opts = append(opts, layout.WithArenaBytes(c.Limits.ArenaBytes))
	}
	return opts
}
