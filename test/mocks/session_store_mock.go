package mocks

import (
	"context"
	"sync"
	"time"

	"github.com/Kumaraswamy-D/Kalpataru-Boys-Hostel-Management/internal/core/domain"
	"github.com/Kumaraswamy-D/Kalpataru-Boys-Hostel-Management/internal/core/ports"
)

// MockSessionStore implements ports.SessionStore for testing.
// This mock allows us to test auth and allocation flows without Redis.
type MockSessionStore struct {
	mu sync.RWMutex

	// In-memory sessions keyed by user id
	sessions map[string]domain.User

	// Call tracking for verification
	SaveSessionCalls  []domain.User
	SessionCalls      []string
	ClearSessionCalls []string

	// Last TTL passed to SaveSession
	LastTTL time.Duration

	// Error injection for testing error scenarios
	SaveSessionError  error
	SessionError      error
	ClearSessionError error
}

// Ensure MockSessionStore implements ports.SessionStore at compile time.
var _ ports.SessionStore = (*MockSessionStore)(nil)

// NewMockSessionStore creates a new mock session store.
func NewMockSessionStore() *MockSessionStore {
	return &MockSessionStore{
		sessions: make(map[string]domain.User),
	}
}

// SeedSession stores a session directly for test setup.
func (m *MockSessionStore) SeedSession(user domain.User) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sessions[user.ID] = user
}

// SaveSession implements ports.SessionStore.SaveSession
func (m *MockSessionStore) SaveSession(ctx context.Context, user domain.User, ttl time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.SaveSessionCalls = append(m.SaveSessionCalls, user)
	m.LastTTL = ttl

	if m.SaveSessionError != nil {
		return m.SaveSessionError
	}

	m.sessions[user.ID] = user
	return nil
}

// Session implements ports.SessionStore.Session
func (m *MockSessionStore) Session(ctx context.Context, userID string) (*domain.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.SessionCalls = append(m.SessionCalls, userID)

	if m.SessionError != nil {
		return nil, m.SessionError
	}

	user, ok := m.sessions[userID]
	if !ok {
		return nil, domain.ErrSessionNotFound
	}
	return &user, nil
}

// ClearSession implements ports.SessionStore.ClearSession
func (m *MockSessionStore) ClearSession(ctx context.Context, userID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.ClearSessionCalls = append(m.ClearSessionCalls, userID)

	if m.ClearSessionError != nil {
		return m.ClearSessionError
	}

	delete(m.sessions, userID)
	return nil
}
