package db

import (
	"context"
	"errors"
	"fmt"
	"sync"
)

// MockKeyValueClient simulates a key/value store for testing purposes.
type MockKeyValueClient struct {
	data    map[string]string // Key-value store
	mu      sync.RWMutex      // Mutex for thread-safe operations
	context context.Context
	setErr  error
}

// NewMockKeyValueClient initializes a new MockKeyValueClient.
func NewMockKeyValueClient(ctx context.Context) *MockKeyValueClient {
	return &MockKeyValueClient{
		data:    make(map[string]string),
		context: ctx,
	}
}

// Set stores a key-value pair in the mock store.
func (m *MockKeyValueClient) Set(key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.setErr != nil {
		return m.setErr
	}
	m.data[key] = value
	return nil
}

// Get retrieves a value for a given key from the mock store.
func (m *MockKeyValueClient) Get(key string) (string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	value, exists := m.data[key]
	if !exists {
		return "", fmt.Errorf("%w: %s", ErrKeyNotFound, key)
	}
	return value, nil
}

func (m *MockKeyValueClient) Del(key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.data, key)
	return nil
}

// GetContext returns the mock client's context.
func (m *MockKeyValueClient) GetContext() context.Context {
	return m.context
}

// Ping always succeeds.
func (m *MockKeyValueClient) Ping() error {
	return nil
}

// Len returns the number of stored keys.
func (m *MockKeyValueClient) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.data)
}

var errMockWrite = errors.New("mock write failure")

// FailWrites makes every following Set fail.
func (m *MockKeyValueClient) FailWrites() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.setErr = errMockWrite
}
