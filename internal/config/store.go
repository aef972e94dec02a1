package config

import (
	"sync"
	"time"

	"github.com/mondrian-wm/mondrian/internal/geometry"
)

// Store holds the active configuration and hands it out to the engine as
// preferences. It is safe for concurrent use so the file watcher can swap
// the configuration in while the engine reads from the event loop.
type Store struct {
	mu      sync.RWMutex
	cfg     *Config
	ignored map[string]struct{}
}

// NewStore wraps cfg. A nil cfg falls back to the defaults.
func NewStore(cfg *Config) *Store {
	s := &Store{}
	if cfg == nil {
		cfg = DefaultConfig()
	}
	s.Update(cfg)
	return s
}

// Update replaces the active configuration.
func (s *Store) Update(cfg *Config) {
	ignored := make(map[string]struct{}, len(cfg.Tiling.IgnoreTitles))
	for _, title := range cfg.Tiling.IgnoreTitles {
		ignored[title] = struct{}{}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.cfg = cfg
	s.ignored = ignored
}

// Config returns the active configuration.
func (s *Store) Config() *Config {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cfg
}

// Spacing returns the configured gap between tiled windows.
func (s *Store) Spacing() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cfg.Tiling.Spacing
}

// Insets returns the configured monitor edge margins.
func (s *Store) Insets() geometry.Insets {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return geometry.Insets{
		Top:    s.cfg.Tiling.InsetTop,
		Bottom: s.cfg.Tiling.InsetBottom,
		Left:   s.cfg.Tiling.InsetLeft,
		Right:  s.cfg.Tiling.InsetRight,
	}
}

// IgnoredTitle reports whether windows titled title are excluded from
// tiling.
func (s *Store) IgnoredTitle(title string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.ignored[title]
	return ok
}

// AnimationDuration returns the configured transition length, or zero when
// animations are off.
func (s *Store) AnimationDuration() time.Duration {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if !s.cfg.Animation.Enabled {
		return 0
	}
	return time.Duration(s.cfg.Animation.DurationMS) * time.Millisecond
}
