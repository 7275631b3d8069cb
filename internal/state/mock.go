// internal/state/mock.go
package state

// Mock is an in-memory test double for Manager.
type Mock struct {
	values map[string]string
	sets   int
	closed bool
}

// NewMock creates a new mock state manager for testing.
func NewMock() *Mock {
	return &Mock{values: make(map[string]string)}
}

func (m *Mock) Get(key string) (string, bool) {
	v, ok := m.values[key]
	return v, ok
}

func (m *Mock) Set(key, value string) {
	m.values[key] = value
	m.sets++
}

func (m *Mock) Flush() error { return nil }

func (m *Mock) Close() error {
	m.closed = true
	return nil
}

// Test helpers

func (m *Mock) Preset(key, value string) { m.values[key] = value }

func (m *Mock) SetCount() int { return m.sets }

func (m *Mock) IsClosed() bool { return m.closed }

// Verify Mock implements Interface at compile time.
var _ Interface = (*Mock)(nil)
