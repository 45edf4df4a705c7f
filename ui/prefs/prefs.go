// Package prefs stores previewer preferences as JSON.
package prefs

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

const (
	appDir    = "cartesian-plane"
	prefsFile = "preferences.json"
)

// Preference keys.
const (
	KeyWindowWidth  = "window.width"
	KeyWindowHeight = "window.height"
	KeyLastProfile  = "profile.last"
	KeyLastDir      = "dir.last"
)

// Prefs is a key-value preference store backed by one JSON file.
type Prefs struct {
	mu     sync.RWMutex
	values map[string]any
	path   string
}

// DefaultPath returns <user config dir>/cartesian-plane/preferences.json.
func DefaultPath() string {
	configDir, err := os.UserConfigDir()
	if err != nil {
		configDir = filepath.Join(os.Getenv("HOME"), ".config")
	}
	return filepath.Join(configDir, appDir, prefsFile)
}

// Load reads preferences from DefaultPath.
func Load() *Prefs {
	return LoadFrom(DefaultPath())
}

// LoadFrom reads preferences from path. A missing or unreadable file
// yields an empty store that saves to path.
func LoadFrom(path string) *Prefs {
	p := &Prefs{
		values: make(map[string]any),
		path:   path,
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return p
	}
	if err := json.Unmarshal(data, &p.values); err != nil {
		p.values = make(map[string]any)
	}
	return p
}

// Path returns the file the store saves to.
func (p *Prefs) Path() string {
	return p.path
}

// Save writes preferences to disk, creating the directory if needed.
func (p *Prefs) Save() error {
	p.mu.RLock()
	data, err := json.MarshalIndent(p.values, "", "  ")
	p.mu.RUnlock()
	if err != nil {
		return fmt.Errorf("encode preferences: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(p.path), 0o755); err != nil {
		return fmt.Errorf("create preferences dir: %w", err)
	}
	if err := os.WriteFile(p.path, data, 0o644); err != nil {
		return fmt.Errorf("write preferences: %w", err)
	}
	return nil
}

// Float returns a number preference, or fallback if not set.
func (p *Prefs) Float(key string, fallback float64) float64 {
	p.mu.RLock()
	defer p.mu.RUnlock()
	switch n := p.values[key].(type) {
	case float64:
		return n
	case int:
		return float64(n)
	}
	return fallback
}

// SetFloat stores a number preference.
func (p *Prefs) SetFloat(key string, val float64) {
	p.set(key, val)
}

// Int returns a number preference truncated to int, or fallback if not set.
func (p *Prefs) Int(key string, fallback int) int {
	p.mu.RLock()
	defer p.mu.RUnlock()
	switch n := p.values[key].(type) {
	case float64:
		return int(n)
	case int:
		return n
	}
	return fallback
}

// SetInt stores a number preference.
func (p *Prefs) SetInt(key string, val int) {
	p.set(key, val)
}

// String returns a string preference, or "" if not set.
func (p *Prefs) String(key string) string {
	p.mu.RLock()
	defer p.mu.RUnlock()
	s, _ := p.values[key].(string)
	return s
}

// SetString stores a string preference.
func (p *Prefs) SetString(key string, val string) {
	p.set(key, val)
}

// Bool returns a bool preference, or fallback if not set.
func (p *Prefs) Bool(key string, fallback bool) bool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if b, ok := p.values[key].(bool); ok {
		return b
	}
	return fallback
}

// SetBool stores a bool preference.
func (p *Prefs) SetBool(key string, val bool) {
	p.set(key, val)
}

func (p *Prefs) set(key string, val any) {
	p.mu.Lock()
	p.values[key] = val
	p.mu.Unlock()
}
