// api/policy/storage.go
package policy

import (
	"context"
	"sync"
)

// Persisted state lives under two independent keys: the full plan list (JSON
// array) and the plan-feature matrix (JSON object). Either key may be absent,
// in which case compiled-in defaults are seeded and persisted on first load.
const (
	StorageKeyPlans    = "aqari:plans"
	StorageKeyFeatures = "aqari:plan_features"
)

// Storage is the durable key-value port behind the Store. Implementations
// may target Redis, a file, or a database row without the Store changing.
type Storage interface {
	// Get returns the value for key, or (nil, nil) when the key is absent.
	Get(ctx context.Context, key string) ([]byte, error)

	// Set writes the value for key.
	Set(ctx context.Context, key string, value []byte) error

	// OnExternalChange registers fn to run when another writer changes key.
	// Implementations without external writers may make this a no-op.
	OnExternalChange(key string, fn func())
}

// MemoryStorage is an in-memory Storage used in tests and single-process
// deployments without a durable backend.
type MemoryStorage struct {
	mu   sync.Mutex
	data map[string][]byte
}

func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{data: make(map[string][]byte)}
}

func (m *MemoryStorage) Get(ctx context.Context, key string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	value, ok := m.data[key]
	if !ok {
		return nil, nil
	}
	out := make([]byte, len(value))
	copy(out, value)
	return out, nil
}

func (m *MemoryStorage) Set(ctx context.Context, key string, value []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	stored := make([]byte, len(value))
	copy(stored, value)
	m.data[key] = stored
	return nil
}

func (m *MemoryStorage) OnExternalChange(key string, fn func()) {}
