package store

import "sync"

type memoryEntry struct {
	name  string
	value string
}

// Memory implements Store with thread-safe in-memory storage.
type Memory struct {
	mu     sync.RWMutex
	data   map[string]memoryEntry
	writes int
}

// NewMemory creates an empty in-memory Store.
func NewMemory() *Memory {
	return &Memory{data: make(map[string]memoryEntry)}
}

// Open returns a handle on m. It never fails.
func (m *Memory) Open() (Handle, error) {
	return &memoryHandle{m: m}, nil
}

// Values returns a copy of the stored variables keyed by their stored name.
func (m *Memory) Values() map[string]string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make(map[string]string, len(m.data))
	for _, e := range m.data {
		out[e.name] = e.value
	}
	return out
}

// Writes reports how many Set and Delete calls changed the store.
func (m *Memory) Writes() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.writes
}

type memoryHandle struct {
	m *Memory
}

func (h *memoryHandle) Get(name string) (string, error) {
	if err := checkText("name", name); err != nil {
		return "", err
	}
	h.m.mu.RLock()
	e, ok := h.m.data[foldName(name)]
	h.m.mu.RUnlock()
	if !ok {
		return "", notFound(name)
	}
	return e.value, nil
}

func (h *memoryHandle) Set(name, value string) error {
	if err := checkText("name", name); err != nil {
		return err
	}
	if err := checkText("value", value); err != nil {
		return err
	}
	key := foldName(name)
	h.m.mu.Lock()
	defer h.m.mu.Unlock()
	stored := name
	if e, ok := h.m.data[key]; ok {
		stored = e.name
	}
	h.m.data[key] = memoryEntry{name: stored, value: value}
	h.m.writes++
	return nil
}

func (h *memoryHandle) Delete(name string) error {
	if err := checkText("name", name); err != nil {
		return err
	}
	key := foldName(name)
	h.m.mu.Lock()
	defer h.m.mu.Unlock()
	if _, ok := h.m.data[key]; ok {
		delete(h.m.data, key)
		h.m.writes++
	}
	return nil
}

func (h *memoryHandle) Close() error { return nil }
