package session

// KV is the persistence surface behind a session: a flat string key-value
// store with delete. Implementations must be safe for use from a single
// goroutine; Session adds its own locking on top.
type KV interface {
	Get(key string) (string, bool)
	Set(key, value string) error
	Delete(key string) error
}

// MemoryKV is an in-process KV, used in tests and as a default when no
// persistence is configured.
type MemoryKV struct {
	data map[string]string
}

// NewMemoryKV creates an empty MemoryKV.
func NewMemoryKV() *MemoryKV {
	return &MemoryKV{data: make(map[string]string)}
}

func (m *MemoryKV) Get(key string) (string, bool) {
	v, ok := m.data[key]
	return v, ok
}

func (m *MemoryKV) Set(key, value string) error {
	m.data[key] = value
	return nil
}

func (m *MemoryKV) Delete(key string) error {
	delete(m.data, key)
	return nil
}
