package session

import (
	"container/list"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"log/slog"
	"sync"
	"time"
)

// Manager owns one Store per browser session, keyed by the session cookie
// value. Idle sessions expire after a TTL and the total number of live
// sessions is capped with LRU eviction, so an abandoned browser tab cannot
// pin memory forever.
type Manager struct {
	mu       sync.Mutex
	maxSize  int
	ttl      time.Duration
	sessions map[string]*list.Element
	lru      *list.List
}

type sessionEntry struct {
	id        string
	store     *Store
	expiresAt time.Time
}

func NewManager(maxSessions int, ttl time.Duration) *Manager {
	return &Manager{
		maxSize:  maxSessions,
		ttl:      ttl,
		sessions: make(map[string]*list.Element),
		lru:      list.New(),
	}
}

// Get returns the store for an existing session id, refreshing its TTL.
func (m *Manager) Get(id string) (*Store, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	elem, exists := m.sessions[id]
	if !exists {
		return nil, false
	}
	entry := elem.Value.(*sessionEntry)
	if time.Now().After(entry.expiresAt) {
		m.removeElement(elem)
		return nil, false
	}
	entry.expiresAt = time.Now().Add(m.ttl)
	m.lru.MoveToFront(elem)
	return entry.store, true
}

// Create allocates a fresh empty session and returns its id and store.
func (m *Manager) Create() (string, *Store) {
	id := newSessionID()
	store := NewStore()

	m.mu.Lock()
	defer m.mu.Unlock()

	elem := m.lru.PushFront(&sessionEntry{
		id:        id,
		store:     store,
		expiresAt: time.Now().Add(m.ttl),
	})
	m.sessions[id] = elem

	if m.lru.Len() > m.maxSize {
		oldest := m.lru.Back()
		if oldest != nil {
			evicted := oldest.Value.(*sessionEntry)
			m.removeElement(oldest)
			slog.Warn("Session evicted by LRU cap",
				"session_id", evicted.id,
				"max_sessions", m.maxSize)
		}
	}
	return id, store
}

// Len returns the number of live sessions.
func (m *Manager) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.lru.Len()
}

// SweepExpired removes all sessions past their TTL and reports how many.
func (m *Manager) SweepExpired() int {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := time.Now()
	var toRemove []*list.Element
	for elem := m.lru.Front(); elem != nil; elem = elem.Next() {
		if now.After(elem.Value.(*sessionEntry).expiresAt) {
			toRemove = append(toRemove, elem)
		}
	}
	for _, elem := range toRemove {
		m.removeElement(elem)
	}
	return len(toRemove)
}

// Sweep runs periodic expiry until stop is closed.
func (m *Manager) Sweep(interval time.Duration, stop <-chan struct{}) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			if n := m.SweepExpired(); n > 0 {
				slog.Debug("Session sweep completed", "sessions_removed", n)
			}
		case <-stop:
			return
		}
	}
}

func (m *Manager) removeElement(elem *list.Element) {
	entry := elem.Value.(*sessionEntry)
	delete(m.sessions, entry.id)
	m.lru.Remove(elem)
}

func newSessionID() string {
	bytes := make([]byte, 16)
	if _, err := rand.Read(bytes); err != nil {
		return fmt.Sprintf("sess_%d", time.Now().UnixNano())
	}
	return hex.EncodeToString(bytes)
}
