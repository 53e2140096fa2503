package session

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// Manager holds the live sessions of this process. Sessions are
// in-memory only; persistence happens explicitly through the save and
// export operations.
type Manager struct {
	mu       sync.RWMutex
	sessions map[string]*Session

	// Hooks for tests. When nil the real implementations are used.
	NewID func() string
	Clock func() time.Time
}

// NewManager constructs an empty Manager.
func NewManager() *Manager {
	return &Manager{sessions: make(map[string]*Session)}
}

// Create registers a new empty session and returns it.
func (m *Manager) Create() *Session {
	sess := New(m.newID(), m.now())
	m.mu.Lock()
	m.sessions[sess.ID] = sess
	m.mu.Unlock()
	return sess
}

// Get returns the session with the given ID.
func (m *Manager) Get(id string) (*Session, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	sess, ok := m.sessions[id]
	if !ok {
		return nil, ErrNotFound
	}
	return sess, nil
}

// Remove deletes the session with the given ID, if present.
func (m *Manager) Remove(id string) {
	m.mu.Lock()
	delete(m.sessions, id)
	m.mu.Unlock()
}

func (m *Manager) newID() string {
	if m.NewID != nil {
		return m.NewID()
	}
	return uuid.NewString()
}

func (m *Manager) now() time.Time {
	if m.Clock != nil {
		return m.Clock().UTC()
	}
	return time.Now().UTC()
}
