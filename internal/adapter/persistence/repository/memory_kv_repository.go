package repository

import (
	"context"
	"sort"
	"strings"
	"sync"

	"meraki_estimator/internal/usecase/interfaces"
)

// MemoryKVRepository keeps keys in a map. Nothing survives the process; it
// backs tests and STORE_DRIVER=memory.
type MemoryKVRepository struct {
	mu   sync.RWMutex
	data map[string]string
}

var _ interfaces.IKeyValueStore = (*MemoryKVRepository)(nil)

func NewMemoryKVRepository() *MemoryKVRepository {
	return &MemoryKVRepository{data: make(map[string]string)}
}

func (r *MemoryKVRepository) Get(_ context.Context, key string) (string, bool, error) {
	if !validKey(key) {
		return "", false, ErrEmptyKey
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	v, ok := r.data[key]
	return v, ok, nil
}

func (r *MemoryKVRepository) Set(_ context.Context, key, value string) error {
	if !validKey(key) {
		return ErrEmptyKey
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.data[key] = value
	return nil
}

func (r *MemoryKVRepository) Delete(_ context.Context, key string) error {
	if !validKey(key) {
		return ErrEmptyKey
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.data, key)
	return nil
}

// Keys lists the stored keys with the given prefix, sorted.
func (r *MemoryKVRepository) Keys(prefix string) []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]string, 0, len(r.data))
	for k := range r.data {
		if strings.HasPrefix(k, prefix) {
			out = append(out, k)
		}
	}
	sort.Strings(out)
	return out
}
