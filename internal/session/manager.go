package session

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// Manager issues opaque shopper session IDs and tracks their expiry. A
// session lives from its first request until it has been idle for the TTL;
// touching a session on each request slides the deadline. Expired sessions
// are reaped by Sweep, which also hands the ID to the registered reapers so
// dependent state (the session's cart) is dropped with it.
type Manager struct {
	mu       sync.Mutex
	ttl      time.Duration
	deadline map[string]time.Time
	reapers  []func(sessionID string)

	now func() time.Time
}

func NewManager(ttl time.Duration) *Manager {
	return &Manager{
		ttl:      ttl,
		deadline: make(map[string]time.Time),
		now:      time.Now,
	}
}

// TTL returns the idle lifetime sessions are created with.
func (m *Manager) TTL() time.Duration {
	return m.ttl
}

// OnExpire registers fn to run with each session ID removed by Sweep or
// Destroy.
func (m *Manager) OnExpire(fn func(sessionID string)) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.reapers = append(m.reapers, fn)
}

// Start creates a new session and returns its ID.
func (m *Manager) Start() string {
	id := uuid.NewString()
	m.mu.Lock()
	m.deadline[id] = m.now().Add(m.ttl)
	m.mu.Unlock()
	return id
}

// Touch reports whether the session is alive and, if so, slides its
// deadline.
func (m *Manager) Touch(id string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	dl, ok := m.deadline[id]
	if !ok || m.now().After(dl) {
		delete(m.deadline, id)
		return false
	}
	m.deadline[id] = m.now().Add(m.ttl)
	return true
}

// Destroy ends the session immediately and notifies the reapers.
func (m *Manager) Destroy(id string) {
	m.mu.Lock()
	_, ok := m.deadline[id]
	delete(m.deadline, id)
	reapers := m.reapers
	m.mu.Unlock()

	if !ok {
		return
	}
	for _, fn := range reapers {
		fn(id)
	}
}

// Sweep removes every expired session and returns how many were reaped.
func (m *Manager) Sweep() int {
	m.mu.Lock()
	now := m.now()
	var dead []string
	for id, dl := range m.deadline {
		if now.After(dl) {
			dead = append(dead, id)
		}
	}
	for _, id := range dead {
		delete(m.deadline, id)
	}
	reapers := m.reapers
	m.mu.Unlock()

	for _, id := range dead {
		for _, fn := range reapers {
			fn(id)
		}
	}
	return len(dead)
}

// Run sweeps on the given interval until the stop channel closes.
func (m *Manager) Run(interval time.Duration, stop <-chan struct{}) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			m.Sweep()
		case <-stop:
			return
		}
	}
}
