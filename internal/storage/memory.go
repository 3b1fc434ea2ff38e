package storage

import (
	"errors"
	"maps"
)

// ErrWriteRejected is returned by Memory when it is set to fail writes.
var ErrWriteRejected = errors.New("storage: write rejected")

// Memory is a map-backed KV for tests and throwaway sessions.
type Memory struct {
	data       map[string][]byte
	writes     map[string]int
	FailWrites bool
}

func NewMemory() *Memory {
	return &Memory{
		data:   map[string][]byte{},
		writes: map[string]int{},
	}
}

func (m *Memory) Get(key string) ([]byte, bool, error) {
	v, ok := m.data[key]
	return v, ok, nil
}

func (m *Memory) Set(key string, value []byte) error {
	m.writes[key]++
	if m.FailWrites {
		return ErrWriteRejected
	}
	m.data[key] = append([]byte(nil), value...)
	return nil
}

// Writes reports how many times key was written, failed attempts included.
func (m *Memory) Writes(key string) int {
	return m.writes[key]
}

func (m *Memory) Snapshot() map[string][]byte {
	return maps.Clone(m.data)
}
