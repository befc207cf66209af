package session

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
)

type memoryEntry struct {
	userID    string
	expiresAt time.Time
}

// Memory is an in-process Store with explicit expiry timestamps. It
// backs tests and single-node development without Redis.
type Memory struct {
	mu      sync.Mutex
	entries map[string]memoryEntry
	ttl     time.Duration
	now     func() time.Time
}

func NewMemory(ttl time.Duration) *Memory {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Memory{
		entries: make(map[string]memoryEntry),
		ttl:     ttl,
		now:     time.Now,
	}
}

// SetClock overrides the time source, used by tests to force expiry.
func (m *Memory) SetClock(now func() time.Time) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.now = now
}

func (m *Memory) Create(_ context.Context, userID string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	token := uuid.NewString()
	m.entries[token] = memoryEntry{userID: userID, expiresAt: m.now().Add(m.ttl)}
	return token, nil
}

func (m *Memory) Resolve(_ context.Context, token string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	e, ok := m.entries[token]
	if !ok {
		return "", ErrNoSession
	}
	if m.now().After(e.expiresAt) {
		delete(m.entries, token)
		return "", ErrNoSession
	}
	return e.userID, nil
}

func (m *Memory) Destroy(_ context.Context, token string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.entries, token)
	return nil
}

var _ Store = (*Memory)(nil)
