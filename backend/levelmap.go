package backend

import (
	"sync"

	"github.com/RIT-Landsat-Field-Radiometers/shared-utils/core"
)

// LevelMap is the category-to-minimum-level policy store. It holds a
// fallback level plus per-category overrides and answers the
// enablement query a backend serves to the facade.
//
// A LevelMap is safe for concurrent use. Reads take an RLock; the
// common case of a category without an override is a single map
// lookup and an integer compare.
type LevelMap struct {
	mu        sync.RWMutex
	def       core.Level
	overrides map[string]core.Level
}

// NewLevelMap returns a LevelMap whose fallback minimum is def and
// which has no category overrides.
func NewLevelMap(def core.Level) *LevelMap {
	return &LevelMap{
		def:       def,
		overrides: make(map[string]core.Level),
	}
}

// Enabled reports whether level is at or above the effective minimum
// for category. OffLevel is a threshold value, not an emission
// severity, so it is never enabled.
func (m *LevelMap) Enabled(level core.Level, category string) bool {
	if level >= core.OffLevel {
		return false
	}
	m.mu.RLock()
	min, ok := m.overrides[category]
	if !ok {
		min = m.def
	}
	m.mu.RUnlock()
	return level >= min
}

// Category returns the effective minimum level for category, which is
// the override if one is set and the fallback otherwise.
func (m *LevelMap) Category(category string) core.Level {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if min, ok := m.overrides[category]; ok {
		return min
	}
	return m.def
}

// Default returns the fallback minimum level.
func (m *LevelMap) Default() core.Level {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.def
}

// SetDefault changes the fallback minimum level used by categories
// without an override.
func (m *LevelMap) SetDefault(level core.Level) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.def = level
}

// SetCategory sets the minimum level for one category, overriding the
// fallback.
func (m *LevelMap) SetCategory(category string, level core.Level) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.overrides[category] = level
}

// ClearCategory removes the override for category so it falls back to
// the default level again.
func (m *LevelMap) ClearCategory(category string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.overrides, category)
}

// Reset drops every category override, leaving the fallback level in
// place.
func (m *LevelMap) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.overrides = make(map[string]core.Level)
}
