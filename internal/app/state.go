// Package app provides previewer state, profile watching and the theme.
package app

import (
	"sync"

	"cartesian-plane/internal/plane"
	"cartesian-plane/internal/profile"

	"github.com/charmbracelet/log"
)

// State holds the profile being previewed and where it came from.
type State struct {
	mu sync.RWMutex

	// ProfilePath is empty while the built-in defaults are shown.
	ProfilePath string

	profile *profile.Profile

	// Event listeners
	listeners map[EventType][]EventListener
}

// EventType identifies different application events.
type EventType int

const (
	// EventProfileLoaded carries the new *profile.Profile.
	EventProfileLoaded EventType = iota
	// EventProfileSaved carries the path written.
	EventProfileSaved
	// EventProfileError carries the error from a failed or partial load.
	EventProfileError
)

// EventListener is called when an event occurs.
type EventListener func(data any)

// NewState creates a state showing the default profile.
func NewState() *State {
	return &State{
		profile:   profile.Default(),
		listeners: make(map[EventType][]EventListener),
	}
}

// On registers an event listener for the specified event type.
func (s *State) On(event EventType, listener EventListener) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listeners[event] = append(s.listeners[event], listener)
}

// Emit triggers all listeners for the specified event type.
func (s *State) Emit(event EventType, data any) {
	s.mu.RLock()
	listeners := s.listeners[event]
	s.mu.RUnlock()

	for _, listener := range listeners {
		listener(data)
	}
}

// Profile returns a copy of the current profile.
func (s *State) Profile() *profile.Profile {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.profile.Clone()
}

// Config returns the paint configuration of the current profile.
func (s *State) Config() plane.Config {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.profile.Config()
}

// SetProfile replaces the current profile and emits EventProfileLoaded.
func (s *State) SetProfile(p *profile.Profile) {
	s.mu.Lock()
	s.profile = p.Clone()
	s.mu.Unlock()
	s.Emit(EventProfileLoaded, p)
}

// LoadProfile reads the profile at path and makes it current. A profile
// with invalid lines still replaces the current one; its error is
// returned and emitted. A file that cannot be read leaves the state
// unchanged.
func (s *State) LoadProfile(path string) error {
	p, err := profile.LoadFile(path)
	if p == nil {
		log.Error("Failed to load profile", "path", path, "error", err)
		s.Emit(EventProfileError, err)
		return err
	}

	s.mu.Lock()
	s.ProfilePath = path
	s.mu.Unlock()
	s.SetProfile(p)
	log.Info("Loaded profile", "path", path, "name", p.Name)

	if err != nil {
		log.Warn("Profile has invalid lines", "path", path, "error", err)
		s.Emit(EventProfileError, err)
	}
	return err
}

// SaveProfile writes the current profile to path.
func (s *State) SaveProfile(path string) error {
	if err := profile.SaveFile(path, s.Profile()); err != nil {
		return err
	}
	s.mu.Lock()
	s.ProfilePath = path
	s.mu.Unlock()
	s.Emit(EventProfileSaved, path)
	return nil
}

// Path returns the current profile path.
func (s *State) Path() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.ProfilePath
}
