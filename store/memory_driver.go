package store

import (
	"context"
	"sync"

	"github.com/samber/lo"
)

type MemoryDriver struct {
	Driver
	mu      sync.RWMutex
	buckets map[string]map[string]string
}

func NewMemoryDriver() *MemoryDriver {
	return &MemoryDriver{buckets: make(map[string]map[string]string)}
}

func (m *MemoryDriver) Get(_ context.Context, bucket, key string) (*string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	value, ok := m.buckets[bucket][key]
	if !ok {
		return nil, nil
	}
	return &value, nil
}

func (m *MemoryDriver) Set(_ context.Context, bucket, key string, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	values, ok := m.buckets[bucket]
	if !ok {
		values = make(map[string]string)
		m.buckets[bucket] = values
	}
	values[key] = value
	return nil
}

func (m *MemoryDriver) Del(_ context.Context, bucket, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.buckets[bucket], key)
	if len(m.buckets[bucket]) == 0 {
		delete(m.buckets, bucket)
	}
	return nil
}

func (m *MemoryDriver) GetAll(_ context.Context, bucket string) (map[string]string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return lo.Assign(m.buckets[bucket]), nil
}
