package security

import (
	"sync"

	"crylauncher/internal/random"
)

var memory *Memory

func init() {
	memory = NewMemory()
	PaddingMemory()
	FlushMemory()
}

// Memory is used to padding heap memory with random data, it makes
// dumped memory harder to search.
type Memory struct {
	rand    *random.Rand
	padding map[string][]byte
	mutex   sync.Mutex
}

// NewMemory is used to create a memory padder.
func NewMemory() *Memory {
	m := &Memory{
		rand:    random.New(0),
		padding: make(map[string][]byte),
	}
	m.Padding()
	return m
}

// Padding is used to padding memory.
func (m *Memory) Padding() {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	for i := 0; i < 16; i++ {
		data := m.rand.Bytes(8 + m.rand.Int(256))
		m.padding[m.rand.String(8)] = data
	}
}

// Flush is used to flush the padding memory.
func (m *Memory) Flush() {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	m.padding = make(map[string][]byte)
}

// PaddingMemory is used to padding the global memory.
func PaddingMemory() {
	memory.Padding()
}

// FlushMemory is used to flush the global memory.
func FlushMemory() {
	memory.Flush()
}

// FlushBytes is used to cover []byte that held something sensitive,
// like a materialized stub with an embedded handler address.
func FlushBytes(b []byte) {
	mem := NewMemory()
	mem.Padding()
	rand := random.New(0)
	copy(b, rand.Bytes(len(b)))
	mem.Flush()
}
