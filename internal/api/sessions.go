/*
Package api
File: sessions.go
Description:
    The session registry. Each session owns exactly one Player State behind
    its own mutex; the engines assume a single mutator at a time, so every
    handler locks the session for the duration of the call.
*/

package api

import (
	"sync"

	"github.com/google/uuid"

	"github.com/starborn/traders-server/internal/game"
)

// Session binds a Player State to its lock.
type Session struct {
	ID     string
	Player *game.Player

	mu sync.Mutex
}

// Lock takes the session's single-writer lock.
func (s *Session) Lock() { s.mu.Lock() }

// Unlock releases it.
func (s *Session) Unlock() { s.mu.Unlock() }

// SessionStore tracks every live session by ID.
type SessionStore struct {
	mu       sync.RWMutex
	sessions map[string]*Session
}

// NewSessionStore creates an empty registry.
func NewSessionStore() *SessionStore {
	return &SessionStore{sessions: map[string]*Session{}}
}

// Create registers a new session around a freshly initialized player.
func (st *SessionStore) Create(p *game.Player) *Session {
	s := &Session{ID: uuid.NewString(), Player: p}
	st.mu.Lock()
	st.sessions[s.ID] = s
	st.mu.Unlock()
	return s
}

// Get returns a session by ID, nil when unknown.
func (st *SessionStore) Get(id string) *Session {
	st.mu.RLock()
	defer st.mu.RUnlock()
	return st.sessions[id]
}

// Each calls fn for every live session. Used by the market heartbeat.
func (st *SessionStore) Each(fn func(*Session)) {
	st.mu.RLock()
	snapshot := make([]*Session, 0, len(st.sessions))
	for _, s := range st.sessions {
		snapshot = append(snapshot, s)
	}
	st.mu.RUnlock()

	for _, s := range snapshot {
		fn(s)
	}
}
