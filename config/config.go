// Package config provides configuration loading for rawline using TOML.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/rawline/lineedit"
	"github.com/lixenwraith/rawline/terminal"
)

// Echo modes accepted in [echo] mode
const (
	EchoCopy = "copy"
	EchoMask = "mask"
	EchoNone = "none"
)

// History settings
type History struct {
	Capacity int `toml:"capacity"`
}

// Echo settings
type Echo struct {
	Mode string `toml:"mode"` // "copy", "mask" or "none"
	Mask string `toml:"mask"` // Single character, used when mode is "mask"
}

// Prompt settings
type Prompt struct {
	Colour  string `toml:"colour"`
	Style   string `toml:"style"`
	Newline bool   `toml:"newline"` // Echo a newline when a line is accepted
}

// Feedback settings
type Feedback struct {
	Sound bool `toml:"sound"` // Buzz on refused keys
}

// Config is the main configuration struct
type Config struct {
	History  History  `toml:"history"`
	Echo     Echo     `toml:"echo"`
	Prompt   Prompt   `toml:"prompt"`
	Feedback Feedback `toml:"feedback"`
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		History: History{
			Capacity: 100,
		},
		Echo: Echo{
			Mode: EchoCopy,
			Mask: "*",
		},
		Prompt: Prompt{
			Colour:  "std",
			Style:   "std",
			Newline: true,
		},
	}
}

// DefaultPath returns the path to the user's config file.
func DefaultPath() (string, error) {
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return filepath.Join(dir, "rawline", "config.toml"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "rawline", "config.toml"), nil
}

// Load reads path on top of the defaults.
// A missing file yields the defaults; keys absent from the file keep their default.
func Load(path string) (*Config, error) {
	cfg := Default()

	md, err := toml.DecodeFile(path, cfg)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Default(), nil
		}
		return nil, fmt.Errorf("loading config from %s: %w", path, err)
	}
	if undec := md.Undecoded(); len(undec) > 0 {
		return nil, fmt.Errorf("loading config from %s: unknown key %q", path, undec[0].String())
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("loading config from %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks value ranges and names
func (c *Config) Validate() error {
	if c.History.Capacity < 0 {
		return fmt.Errorf("history capacity %d is negative", c.History.Capacity)
	}
	if _, err := c.LineEcho(); err != nil {
		return err
	}
	if _, err := c.PromptColour(); err != nil {
		return err
	}
	if _, err := c.PromptStyle(); err != nil {
		return err
	}
	return nil
}

// LineEcho converts the [echo] section to an echo policy
func (c *Config) LineEcho() (lineedit.Echo, error) {
	switch c.Echo.Mode {
	case EchoCopy, "":
		return lineedit.Copy(), nil
	case EchoMask:
		if len(c.Echo.Mask) != 1 {
			return lineedit.Echo{}, fmt.Errorf("echo mask %q must be a single byte", c.Echo.Mask)
		}
		return lineedit.Substitute(c.Echo.Mask[0]), nil
	case EchoNone:
		return lineedit.Suppress(), nil
	}
	return lineedit.Echo{}, fmt.Errorf("unknown echo mode %q", c.Echo.Mode)
}

// PromptColour resolves the prompt colour name
// Besides the eight base names, any tcell colour name or #rrggbb value is accepted
// and folded onto the nearest base colour.
func (c *Config) PromptColour() (terminal.Colour, error) {
	if col, ok := terminal.ColourByName(c.Prompt.Colour); ok {
		return col, nil
	}
	tc := tcell.GetColor(strings.ToLower(c.Prompt.Colour))
	if tc == tcell.ColorDefault {
		return terminal.ColourStd, fmt.Errorf("unknown prompt colour %q", c.Prompt.Colour)
	}
	return terminal.ColourFromTcell(tc), nil
}

// PromptStyle resolves the prompt style name
func (c *Config) PromptStyle() (terminal.TextStyle, error) {
	st, ok := terminal.TextStyleByName(c.Prompt.Style)
	if !ok {
		return terminal.StyleStd, fmt.Errorf("unknown prompt style %q", c.Prompt.Style)
	}
	return st, nil
}
