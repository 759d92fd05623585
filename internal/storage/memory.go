package storage

import "encoding/json"

// MemoryStore is an in-memory Store for tests and for sessions where the
// database could not be opened (the dashboard still renders, state is just
// not durable).
type MemoryStore struct {
	values map[string][]byte
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{values: map[string][]byte{}}
}

func (m *MemoryStore) Save(key string, v any) error {
	b, err := json.Marshal(v)
	if err != nil {
		return err
	}
	m.values[key] = b
	return nil
}

func (m *MemoryStore) Load(key string, dest any) bool {
	b, ok := m.values[key]
	if !ok {
		return false
	}
	return json.Unmarshal(b, dest) == nil
}

func (m *MemoryStore) Remove(key string) error {
	delete(m.values, key)
	return nil
}

func (m *MemoryStore) ClearAll() error {
	for _, key := range OwnedKeys() {
		delete(m.values, key)
	}
	return nil
}
