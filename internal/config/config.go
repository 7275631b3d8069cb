package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Panel names used by the application layout.
const (
	PanelSidebar = "sidebar"
	PanelDetails = "details"
)

type Config struct {
	DataDir string `koanf:"data_dir"` // overrides the XDG data dir for the state db

	Log LogConfig `koanf:"log"`

	// Keyboard resize steps, in cells
	Keys KeysConfig `koanf:"keys"`

	Panels map[string]PanelConfig `koanf:"panels"`
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level string `koanf:"level"` // "debug", "info", "warn", "error", "disabled" (default: "info")
	File  string `koanf:"file"`  // default: $XDG_STATE_HOME/panes/panes.log
}

// KeysConfig holds keyboard resize steps.
type KeysConfig struct {
	Step      float64 `koanf:"step"`       // default: 2
	ShiftStep float64 `koanf:"shift_step"` // default: 10
}

// PanelConfig describes one resizable panel.
type PanelConfig struct {
	DefaultSize    float64 `koanf:"default_size"`
	MinSize        float64 `koanf:"min_size"`
	MaxSize        float64 `koanf:"max_size"`
	PersistenceKey string  `koanf:"persistence_key"` // empty disables persistence
	VariableName   string  `koanf:"variable_name"`   // empty disables the shared dimension
	Side           string  `koanf:"side"`            // handle side: "right" or "left"
	Resizable      *bool   `koanf:"resizable"`       // default: true
}

// IsResizable reports whether the panel has a resize handle.
func (p PanelConfig) IsResizable() bool {
	return p.Resizable == nil || *p.Resizable
}

var defaultPanels = map[string]PanelConfig{
	PanelSidebar: {
		DefaultSize:    32,
		MinSize:        24,
		MaxSize:        60,
		PersistenceKey: "sidebar",
		VariableName:   "--sidebar-width",
		Side:           "right",
	},
	PanelDetails: {
		DefaultSize:    40,
		MinSize:        28,
		MaxSize:        70,
		PersistenceKey: "details",
		VariableName:   "--details-width",
		Side:           "left",
	},
}

var fallbackPanel = PanelConfig{DefaultSize: 32, MinSize: 20, MaxSize: 60, Side: "right"}

func Load() (*Config, error) {
	return LoadFrom(getConfigPaths()...)
}

// LoadFrom loads the given files in order, later files overriding earlier
// ones. Missing files are skipped.
func LoadFrom(paths ...string) (*Config, error) {
	k := koanf.New(".")

	for _, path := range paths {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
				return nil, err
			}
		}
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, err
	}

	cfg.DataDir = expandPath(cfg.DataDir)
	cfg.Log.File = expandPath(cfg.Log.File)
	cfg.Log.Level = strings.ToLower(strings.TrimSpace(cfg.Log.Level))

	return cfg, nil
}

func getConfigPaths() []string {
	paths := []string{}

	// 1. ~/.config/panes/config.toml
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".config", "panes", "config.toml"))
	}

	// 2. ./config.toml (pwd, highest priority)
	paths = append(paths, "config.toml")

	return paths
}

func expandPath(path string) string {
	if path != "" && path[0] == '~' {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[1:])
		}
	}
	return path
}

// GetKeys returns the keyboard steps with defaults applied.
func (c *Config) GetKeys() KeysConfig {
	keys := c.Keys
	if keys.Step <= 0 {
		keys.Step = 2
	}
	if keys.ShiftStep <= 0 {
		keys.ShiftStep = 10
	}
	return keys
}

// LogLevel returns the configured log level, "info" when unset.
func (c *Config) LogLevel() string {
	if c.Log.Level == "" {
		return "info"
	}
	return c.Log.Level
}

// Panel returns the configuration of the named panel, filling unset fields
// from the built-in defaults and repairing the size ordering so that
// min <= default <= max.
func (c *Config) Panel(name string) PanelConfig {
	base, ok := defaultPanels[name]
	if !ok {
		base = fallbackPanel
	}
	p := c.Panels[name]

	if p.DefaultSize <= 0 {
		p.DefaultSize = base.DefaultSize
	}
	if p.MinSize <= 0 {
		p.MinSize = base.MinSize
	}
	if p.MaxSize <= 0 {
		p.MaxSize = base.MaxSize
	}
	if p.PersistenceKey == "" {
		p.PersistenceKey = base.PersistenceKey
	}
	if p.VariableName == "" {
		p.VariableName = base.VariableName
	}
	p.Side = strings.ToLower(p.Side)
	if p.Side != "left" && p.Side != "right" {
		p.Side = base.Side
	}

	if p.MinSize > p.MaxSize {
		p.MinSize, p.MaxSize = p.MaxSize, p.MinSize
	}
	p.DefaultSize = max(p.MinSize, min(p.MaxSize, p.DefaultSize))

	return p
}
