package mocks

import (
	"context"
	"sync"

	"github.com/Kumaraswamy-D/Kalpataru-Boys-Hostel-Management/internal/core/ports"
)

// MockHostelEventPublisher implements ports.HostelEventPublisher for testing.
// This mock allows us to test the outbox relay without a real RabbitMQ connection.
type MockHostelEventPublisher struct {
	mu sync.RWMutex

	// Track published events for verification
	PublishedEvents []ports.HostelEvent

	// Error injection for testing error scenarios
	PublishError error

	// Track number of calls
	PublishCallCount int
}

// Ensure MockHostelEventPublisher implements ports.HostelEventPublisher at compile time.
var _ ports.HostelEventPublisher = (*MockHostelEventPublisher)(nil)

// NewMockHostelEventPublisher creates a new mock publisher.
func NewMockHostelEventPublisher() *MockHostelEventPublisher {
	return &MockHostelEventPublisher{
		PublishedEvents: make([]ports.HostelEvent, 0),
	}
}

// PublishHostelEvent captures published events for verification.
// This implements ports.HostelEventPublisher.PublishHostelEvent
func (m *MockHostelEventPublisher) PublishHostelEvent(ctx context.Context, evt ports.HostelEvent) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.PublishCallCount++

	if m.PublishError != nil {
		return m.PublishError
	}

	m.PublishedEvents = append(m.PublishedEvents, evt)
	return nil
}

// GetPublishedEvents returns a copy of all events that were published.
func (m *MockHostelEventPublisher) GetPublishedEvents() []ports.HostelEvent {
	m.mu.RLock()
	defer m.mu.RUnlock()

	events := make([]ports.HostelEvent, len(m.PublishedEvents))
	copy(events, m.PublishedEvents)
	return events
}

// Reset clears all tracking data.
func (m *MockHostelEventPublisher) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.PublishedEvents = make([]ports.HostelEvent, 0)
	m.PublishError = nil
	m.PublishCallCount = 0
}
