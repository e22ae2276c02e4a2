package session

import (
	"errors"
	"sync"
)

// ErrSlotBusy is returned when a slot is already being played.
var ErrSlotBusy = errors.New("session: slot is in use")

// Registry tracks the sessions currently being played, one per slot.
// Thread-safe for concurrent access.
type Registry struct {
	mu       sync.RWMutex
	sessions map[string]*Session
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		sessions: make(map[string]*Session),
	}
}

// Acquire opens the session for cfg.Slot and registers it. The returned
// release func unregisters it and must be called when play ends.
func (r *Registry) Acquire(cfg Config) (*Session, func(), error) {
	cfg = cfg.withDefaults()

	r.mu.Lock()
	if _, busy := r.sessions[cfg.Slot]; busy {
		r.mu.Unlock()
		return nil, nil, ErrSlotBusy
	}
	// Reserve the slot while the save loads.
	r.sessions[cfg.Slot] = nil
	r.mu.Unlock()

	s, err := Open(cfg)
	if err != nil {
		r.unregister(cfg.Slot)
		return nil, nil, err
	}

	r.mu.Lock()
	r.sessions[cfg.Slot] = s
	r.mu.Unlock()

	var once sync.Once
	release := func() {
		once.Do(func() { r.unregister(cfg.Slot) })
	}
	return s, release, nil
}

func (r *Registry) unregister(slot string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.sessions, slot)
}

// Get retrieves the live session of slot.
func (r *Registry) Get(slot string) (*Session, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	s, ok := r.sessions[slot]
	return s, ok && s != nil
}

// Count returns the number of slots in play.
func (r *Registry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.sessions)
}
