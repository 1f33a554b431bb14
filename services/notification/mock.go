package notification

import (
	"context"
	"sync"
)

// MockNotifier records emails instead of sending them. Used in tests and
// when no email provider is configured.
type MockNotifier struct {
	mu   sync.Mutex
	Sent []Email
	// Err, when set, is returned by every Send call.
	Err error
}

func (m *MockNotifier) Send(_ context.Context, email Email) error {
	if m.Err != nil {
		return m.Err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Sent = append(m.Sent, email)
	return nil
}
