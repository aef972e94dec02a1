// Package config handles the mondrian configuration file: tiling spacing,
// per-monitor insets, the title blacklist, and animation settings.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/adrg/xdg"
	"github.com/pelletier/go-toml/v2"
)

const (
	// DefaultSpacing is the gap in pixels maintained around tiled windows.
	DefaultSpacing = 8
	// DefaultWorkspaces is the number of workspaces the demo desktop offers.
	DefaultWorkspaces = 9
	// DefaultAnimationDuration is the snap transition length in milliseconds.
	DefaultAnimationDuration = 250
	// FastAnimationDuration is used for small corrective moves, in milliseconds.
	FastAnimationDuration = 150
	// NormalFPS is the frame rate the demo renders animations at.
	NormalFPS = 60
	// MaxLogMessages caps the demo's in-memory log buffer.
	MaxLogMessages = 200
	// CPUUpdateInterval is how often the status bar samples CPU usage.
	CPUUpdateInterval = 500 * time.Millisecond
	// RAMUpdateInterval is how often the status bar samples memory usage.
	RAMUpdateInterval = 2 * time.Second
)

// AnimationsEnabled globally toggles the cosmetic transitions.
var AnimationsEnabled = true

// GetAnimationDuration returns the configured transition duration, or zero
// when animations are disabled.
func GetAnimationDuration() time.Duration {
	if !AnimationsEnabled {
		return 0
	}
	return DefaultAnimationDuration * time.Millisecond
}

// GetFastAnimationDuration returns the short transition duration, or zero
// when animations are disabled.
func GetFastAnimationDuration() time.Duration {
	if !AnimationsEnabled {
		return 0
	}
	return FastAnimationDuration * time.Millisecond
}

// Config is the top-level configuration file structure.
type Config struct {
	Tiling    TilingConfig    `toml:"tiling"`
	Animation AnimationConfig `toml:"animation"`
	Demo      DemoConfig      `toml:"demo"`
}

// TilingConfig holds the spacing, insets and window filter.
type TilingConfig struct {
	// Spacing is the gap in pixels between tiled windows.
	Spacing int `toml:"spacing"`

	// Insets reserve space on each monitor edge, excluded from tiling.
	InsetTop    int `toml:"inset_top"`
	InsetBottom int `toml:"inset_bottom"`
	InsetLeft   int `toml:"inset_left"`
	InsetRight  int `toml:"inset_right"`

	// IgnoreTitles lists window titles excluded from tiling.
	IgnoreTitles []string `toml:"ignore_titles"`
}

// AnimationConfig controls the cosmetic snap transitions.
type AnimationConfig struct {
	Enabled    bool `toml:"enabled"`
	DurationMS int  `toml:"duration_ms"`
}

// DemoConfig configures the simulated desktop of `mondrian run`.
type DemoConfig struct {
	Workspaces int `toml:"workspaces"`
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() *Config {
	return &Config{
		Tiling: TilingConfig{
			Spacing: DefaultSpacing,
		},
		Animation: AnimationConfig{
			Enabled:    true,
			DurationMS: DefaultAnimationDuration,
		},
		Demo: DemoConfig{
			Workspaces: DefaultWorkspaces,
		},
	}
}

// GetConfigPath returns the path of the configuration file under the XDG
// config home, creating parent directories as needed.
func GetConfigPath() (string, error) {
	path, err := xdg.ConfigFile("mondrian/mondrian.toml")
	if err != nil {
		return "", fmt.Errorf("resolving config path: %w", err)
	}
	return path, nil
}

// LoadUserConfig reads the configuration file, returning defaults when no
// file exists yet. Values missing from the file keep their defaults.
func LoadUserConfig() (*Config, error) {
	path, err := GetConfigPath()
	if err != nil {
		return nil, err
	}
	return LoadConfigFile(path)
}

// LoadConfigFile reads and normalizes the configuration at path.
func LoadConfigFile(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}

	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	cfg.normalize()
	return cfg, nil
}

// SaveConfig writes cfg to path as TOML.
func SaveConfig(cfg *Config, path string) error {
	data, err := toml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// normalize repairs nonsensical values instead of failing. Extreme insets
// are left alone here; the work-area resolver clamps them against the
// actual monitor size.
func (c *Config) normalize() {
	if c.Tiling.Spacing < 0 {
		c.Tiling.Spacing = 0
	}
	if c.Animation.DurationMS <= 0 {
		c.Animation.DurationMS = DefaultAnimationDuration
	}
	if c.Demo.Workspaces < 1 {
		c.Demo.Workspaces = DefaultWorkspaces
	}
}

// Overrides carries command line flag values that take precedence over the
// configuration file. Negative numbers mean "not set".
type Overrides struct {
	Spacing      int
	NoAnimations bool
	Workspaces   int
}

// ApplyOverrides folds flag overrides into cfg and the package-level
// animation toggle.
func ApplyOverrides(o Overrides, cfg *Config) {
	if cfg == nil {
		return
	}
	if o.Spacing >= 0 {
		cfg.Tiling.Spacing = o.Spacing
	}
	if o.Workspaces > 0 {
		cfg.Demo.Workspaces = o.Workspaces
	}
	if o.NoAnimations {
		cfg.Animation.Enabled = false
	}
	AnimationsEnabled = cfg.Animation.Enabled
}
