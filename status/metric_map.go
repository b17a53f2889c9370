package status

import (
	"slices"
	"sync"
)

// MetricMap names metrics of one type; publishers look a name up once and keep the pointer
// Keys are kept sorted on insert because the status bar ranges over them every frame
type MetricMap[T any] struct {
	mu      sync.RWMutex
	metrics map[string]*T
	keys    []string
}

// NewMetricMap creates an empty map
func NewMetricMap[T any]() *MetricMap[T] {
	return &MetricMap[T]{metrics: make(map[string]*T)}
}

// Get returns the metric named key, registering a zero value on first use
func (m *MetricMap[T]) Get(key string) *T {
	m.mu.RLock()
	ptr, ok := m.metrics[key]
	m.mu.RUnlock()
	if ok {
		return ptr
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if ptr, ok := m.metrics[key]; ok {
		return ptr
	}
	ptr = new(T)
	m.metrics[key] = ptr
	i, _ := slices.BinarySearch(m.keys, key)
	m.keys = slices.Insert(m.keys, i, key)
	return ptr
}

// Has reports whether key was registered
func (m *MetricMap[T]) Has(key string) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	_, ok := m.metrics[key]
	return ok
}

// Range calls fn for every metric in key order
// fn runs without the map lock held and may call Get
func (m *MetricMap[T]) Range(fn func(key string, ptr *T)) {
	m.mu.RLock()
	keys := slices.Clone(m.keys)
	ptrs := make([]*T, len(keys))
	for i, k := range keys {
		ptrs[i] = m.metrics[k]
	}
	m.mu.RUnlock()

	for i, k := range keys {
		fn(k, ptrs[i])
	}
}

// Count returns the number of registered metrics
func (m *MetricMap[T]) Count() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.keys)
}
