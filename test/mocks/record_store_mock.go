// Package mocks provides mock implementations of port interfaces for testing.
// In hexagonal architecture, ports define the contracts between the core domain
// and external adapters. Mocks implement these interfaces to enable isolated testing.
package mocks

import (
	"context"
	"sync"

	"github.com/Kumaraswamy-D/Kalpataru-Boys-Hostel-Management/internal/core/ports"
)

// EnqueuedEvent is an outbox event captured during a mock transaction.
type EnqueuedEvent struct {
	EventType string
	Payload   []byte
}

// MockRecordStore implements ports.RecordStore for testing. It keeps every
// collection slot in an in-memory map, so the repository on top of it can be
// exercised without a real database connection.
type MockRecordStore struct {
	mu sync.RWMutex

	// In-memory collection slots keyed the same way as the real store
	data map[string][]byte

	// Outbox events captured by Enqueue inside Update transactions
	Enqueued []EnqueuedEvent

	// Call tracking for verification
	ReadCalls   []string
	WriteCalls  []string
	UpdateCalls int

	// Error injection for testing error scenarios
	ReadError   error
	WriteError  error
	UpdateError error
}

// Ensure MockRecordStore implements ports.RecordStore at compile time.
var _ ports.RecordStore = (*MockRecordStore)(nil)

// NewMockRecordStore creates a new mock store with empty slots.
func NewMockRecordStore() *MockRecordStore {
	return &MockRecordStore{
		data: make(map[string][]byte),
	}
}

// Seed writes a slot directly, bypassing call tracking, for test setup.
func (m *MockRecordStore) Seed(key string, data []byte) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = data
}

// Slot returns the current contents of a slot for verification.
func (m *MockRecordStore) Slot(key string) ([]byte, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	data, ok := m.data[key]
	return data, ok
}

// Read implements ports.RecordStore.Read
func (m *MockRecordStore) Read(ctx context.Context, key string) ([]byte, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.ReadCalls = append(m.ReadCalls, key)

	if m.ReadError != nil {
		return nil, false, m.ReadError
	}

	data, ok := m.data[key]
	if !ok {
		return nil, false, nil
	}
	return data, true, nil
}

// Write implements ports.RecordStore.Write
func (m *MockRecordStore) Write(ctx context.Context, key string, data []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.WriteCalls = append(m.WriteCalls, key)

	if m.WriteError != nil {
		return m.WriteError
	}

	m.data[key] = data
	return nil
}

// Update implements ports.RecordStore.Update. The transaction runs against a
// staged copy of the slots; writes and enqueued events only land when fn
// returns nil, matching the real store's commit semantics.
func (m *MockRecordStore) Update(ctx context.Context, fn func(tx ports.RecordTx) error) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.UpdateCalls++

	if m.UpdateError != nil {
		return m.UpdateError
	}

	tx := &mockRecordTx{
		store:  m,
		staged: make(map[string][]byte),
	}

	if err := fn(tx); err != nil {
		return err
	}

	for key, data := range tx.staged {
		m.data[key] = data
	}
	m.Enqueued = append(m.Enqueued, tx.enqueued...)
	return nil
}

// Reset clears slots, captured events, and tracking data.
func (m *MockRecordStore) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.data = make(map[string][]byte)
	m.Enqueued = nil
	m.ReadCalls = nil
	m.WriteCalls = nil
	m.UpdateCalls = 0
	m.ReadError = nil
	m.WriteError = nil
	m.UpdateError = nil
}

// mockRecordTx stages writes until the transaction function returns nil.
type mockRecordTx struct {
	store    *MockRecordStore
	staged   map[string][]byte
	enqueued []EnqueuedEvent
}

var _ ports.RecordTx = (*mockRecordTx)(nil)

func (t *mockRecordTx) Read(key string) ([]byte, bool, error) {
	if data, ok := t.staged[key]; ok {
		return data, true, nil
	}
	data, ok := t.store.data[key]
	if !ok {
		return nil, false, nil
	}
	return data, true, nil
}

func (t *mockRecordTx) Write(key string, data []byte) error {
	t.staged[key] = data
	return nil
}

func (t *mockRecordTx) Enqueue(eventType string, payload []byte) error {
	t.enqueued = append(t.enqueued, EnqueuedEvent{EventType: eventType, Payload: payload})
	return nil
}
