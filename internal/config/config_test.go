package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/mondrian-wm/mondrian/internal/config"
	"github.com/mondrian-wm/mondrian/internal/geometry"
)

// =============================================================================
// Default Configuration Tests
// =============================================================================

func TestDefaultConfig(t *testing.T) {
	cfg := config.DefaultConfig()

	if cfg == nil {
		t.Fatal("DefaultConfig returned nil")
	}

	if cfg.Tiling.Spacing != config.DefaultSpacing {
		t.Errorf("Spacing = %d, want %d", cfg.Tiling.Spacing, config.DefaultSpacing)
	}

	if !cfg.Animation.Enabled {
		t.Error("Expected animations enabled by default")
	}

	if cfg.Demo.Workspaces < 1 {
		t.Errorf("Expected at least one workspace, got %d", cfg.Demo.Workspaces)
	}
}

// =============================================================================
// File Loading Tests
// =============================================================================

func TestLoadConfigFileMissing(t *testing.T) {
	cfg, err := config.LoadConfigFile(filepath.Join(t.TempDir(), "nope.toml"))
	if err != nil {
		t.Fatalf("LoadConfigFile on a missing file: %v", err)
	}
	if cfg.Tiling.Spacing != config.DefaultSpacing {
		t.Error("Missing file should fall back to defaults")
	}
}

func TestLoadConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mondrian.toml")
	content := `
[tiling]
spacing = 12
inset_top = 32
ignore_titles = ["conky", "plank"]

[animation]
enabled = false
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := config.LoadConfigFile(path)
	if err != nil {
		t.Fatalf("LoadConfigFile: %v", err)
	}

	if cfg.Tiling.Spacing != 12 {
		t.Errorf("Spacing = %d, want 12", cfg.Tiling.Spacing)
	}
	if cfg.Tiling.InsetTop != 32 {
		t.Errorf("InsetTop = %d, want 32", cfg.Tiling.InsetTop)
	}
	if len(cfg.Tiling.IgnoreTitles) != 2 {
		t.Errorf("IgnoreTitles = %v, want two entries", cfg.Tiling.IgnoreTitles)
	}
	if cfg.Animation.Enabled {
		t.Error("Expected animations disabled")
	}
	// Sections absent from the file keep their defaults.
	if cfg.Demo.Workspaces != config.DefaultWorkspaces {
		t.Errorf("Workspaces = %d, want default %d", cfg.Demo.Workspaces, config.DefaultWorkspaces)
	}
}

func TestLoadConfigFileInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mondrian.toml")
	if err := os.WriteFile(path, []byte("[tiling\nspacing="), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := config.LoadConfigFile(path); err == nil {
		t.Error("Expected an error for malformed TOML")
	}
}

func TestLoadConfigNormalizes(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mondrian.toml")
	content := `
[tiling]
spacing = -4

[demo]
workspaces = 0
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := config.LoadConfigFile(path)
	if err != nil {
		t.Fatalf("LoadConfigFile: %v", err)
	}
	if cfg.Tiling.Spacing != 0 {
		t.Errorf("Spacing = %d, want 0 after normalization", cfg.Tiling.Spacing)
	}
	if cfg.Demo.Workspaces != config.DefaultWorkspaces {
		t.Errorf("Workspaces = %d, want default after normalization", cfg.Demo.Workspaces)
	}
}

func TestSaveRoundtrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sub", "mondrian.toml")

	cfg := config.DefaultConfig()
	cfg.Tiling.Spacing = 3
	cfg.Tiling.IgnoreTitles = []string{"panel"}

	if err := config.SaveConfig(cfg, path); err != nil {
		t.Fatalf("SaveConfig: %v", err)
	}

	loaded, err := config.LoadConfigFile(path)
	if err != nil {
		t.Fatalf("LoadConfigFile: %v", err)
	}
	if loaded.Tiling.Spacing != 3 {
		t.Errorf("Spacing = %d after roundtrip, want 3", loaded.Tiling.Spacing)
	}
	if len(loaded.Tiling.IgnoreTitles) != 1 || loaded.Tiling.IgnoreTitles[0] != "panel" {
		t.Errorf("IgnoreTitles = %v after roundtrip", loaded.Tiling.IgnoreTitles)
	}
}

// =============================================================================
// Overrides Tests
// =============================================================================

func TestApplyOverrides(t *testing.T) {
	cfg := config.DefaultConfig()
	config.ApplyOverrides(config.Overrides{Spacing: 2, NoAnimations: true, Workspaces: 4}, cfg)

	if cfg.Tiling.Spacing != 2 {
		t.Errorf("Spacing = %d, want 2", cfg.Tiling.Spacing)
	}
	if cfg.Animation.Enabled {
		t.Error("Expected animations disabled by override")
	}
	if cfg.Demo.Workspaces != 4 {
		t.Errorf("Workspaces = %d, want 4", cfg.Demo.Workspaces)
	}

	config.AnimationsEnabled = true // reset for other tests
}

func TestApplyOverridesUnset(t *testing.T) {
	cfg := config.DefaultConfig()
	config.ApplyOverrides(config.Overrides{Spacing: -1}, cfg)

	if cfg.Tiling.Spacing != config.DefaultSpacing {
		t.Errorf("Spacing = %d, want untouched default", cfg.Tiling.Spacing)
	}
}

// =============================================================================
// Store Tests
// =============================================================================

func TestStorePrefs(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Tiling.Spacing = 6
	cfg.Tiling.InsetTop = 24
	cfg.Tiling.IgnoreTitles = []string{"conky"}

	store := config.NewStore(cfg)

	if got := store.Spacing(); got != 6 {
		t.Errorf("Spacing() = %d, want 6", got)
	}
	if got := store.Insets(); got != (geometry.Insets{Top: 24}) {
		t.Errorf("Insets() = %+v, want top 24", got)
	}
	if !store.IgnoredTitle("conky") {
		t.Error("IgnoredTitle(conky) = false, want true")
	}
	if store.IgnoredTitle("editor") {
		t.Error("IgnoredTitle(editor) = true, want false")
	}
}

func TestStoreUpdate(t *testing.T) {
	store := config.NewStore(config.DefaultConfig())

	next := config.DefaultConfig()
	next.Tiling.Spacing = 20
	store.Update(next)

	if got := store.Spacing(); got != 20 {
		t.Errorf("Spacing() = %d after Update, want 20", got)
	}
}

// =============================================================================
// Animation Configuration Tests
// =============================================================================

func TestAnimationConfig(t *testing.T) {
	config.AnimationsEnabled = true

	duration := config.GetAnimationDuration()
	if duration == 0 {
		t.Error("Expected non-zero animation duration when enabled")
	}

	fastDuration := config.GetFastAnimationDuration()
	if fastDuration == 0 {
		t.Error("Expected non-zero fast animation duration when enabled")
	}

	if fastDuration >= duration {
		t.Error("Fast animation should be shorter than normal")
	}

	config.AnimationsEnabled = false

	if config.GetAnimationDuration() != 0 {
		t.Error("Expected zero duration when disabled")
	}

	config.AnimationsEnabled = true
}
