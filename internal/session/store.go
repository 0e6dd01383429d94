// Package session provides the concurrent in-memory session store and the
// periodic full-reset sweeper for the support-intake conversation.
package session

import (
	"sync"

	"github.com/sushihelp/supportbot/internal/flow"
)

// Store keeps per-user conversation sessions. Implementations must be safe
// for concurrent use by many conversations plus the sweeper.
type Store interface {
	// Get returns the stored session for a user, or a fresh uninitialized
	// one when absent. It never fails.
	Get(userID int64) flow.Session
	// Put replaces the user's session with the given value.
	Put(userID int64, s flow.Session)
	// Update runs fn against the user's current session and stores the
	// returned value, all under the store lock, so two events for the same
	// user cannot interleave their read-modify-write. If fn returns an
	// error nothing is written.
	Update(userID int64, fn func(flow.Session) (flow.Session, error)) error
	// ClearAll discards every session.
	ClearAll()
	// Snapshot returns a copy of all sessions for diagnostics.
	Snapshot() []flow.Session
	// Len reports the number of stored sessions.
	Len() int
}

// MemoryStore is the single-process Store used in production; sessions are
// ephemeral by design and never survive a restart.
type MemoryStore struct {
	mu       sync.RWMutex
	sessions map[int64]flow.Session
}

// NewMemoryStore constructs an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{sessions: make(map[int64]flow.Session)}
}

func (m *MemoryStore) Get(userID int64) flow.Session {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if s, ok := m.sessions[userID]; ok {
		return s
	}
	return flow.Session{UserID: userID, State: flow.StateNone}
}

func (m *MemoryStore) Put(userID int64, s flow.Session) {
	m.mu.Lock()
	defer m.mu.Unlock()
	s.UserID = userID
	m.sessions[userID] = s
}

func (m *MemoryStore) Update(userID int64, fn func(flow.Session) (flow.Session, error)) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	cur, ok := m.sessions[userID]
	if !ok {
		cur = flow.Session{UserID: userID, State: flow.StateNone}
	}
	next, err := fn(cur)
	if err != nil {
		return err
	}
	next.UserID = userID
	m.sessions[userID] = next
	return nil
}

func (m *MemoryStore) ClearAll() {
	m.mu.Lock()
	defer m.mu.Unlock()
	clear(m.sessions)
}

func (m *MemoryStore) Snapshot() []flow.Session {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]flow.Session, 0, len(m.sessions))
	for _, s := range m.sessions {
		out = append(out, s)
	}
	return out
}

func (m *MemoryStore) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.sessions)
}
