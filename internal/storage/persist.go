package storage

import (
	"bytes"
	"encoding/json"
	"log/slog"

	"basket/internal/model"
	"basket/internal/state"
)

// Keys the three slices are stored under.
const (
	KeyLists         = "lists"
	KeySettings      = "settings"
	KeySearchHistory = "search-history"
)

// KV is the durable medium the Persister mirrors state into.
type KV interface {
	Get(key string) ([]byte, bool, error)
	Set(key string, value []byte) error
}

// Persister hydrates the initial state from a KV and, as a store listener,
// writes back each slice whose serialized form changed. Writes are
// fire-and-forget: failures are logged and the in-memory state stands.
type Persister struct {
	kv     KV
	logger *slog.Logger
	last   map[string][]byte
}

func NewPersister(kv KV, logger *slog.Logger) *Persister {
	if logger == nil {
		logger = slog.Default()
	}
	return &Persister{
		kv:     kv,
		logger: logger,
		last:   map[string][]byte{},
	}
}

// Load builds the starting state. A slice that is missing, unreadable or
// malformed falls back to its default without affecting the others.
func (p *Persister) Load() state.State {
	s := state.Initial()

	var lists []model.List
	if p.read(KeyLists, &lists) && len(lists) > 0 {
		s = state.Reduce(s, state.SetLists{Lists: lists})
		s = state.Reduce(s, state.Select(s.Lists[0]))
	}

	// Decoding into a patch merges over the defaults: absent and null
	// fields keep their compiled-in values.
	var patch state.SettingsPatch
	if p.read(KeySettings, &patch) {
		s = state.Reduce(s, state.UpdateSettings{Patch: patch})
	}

	var history []string
	if p.read(KeySearchHistory, &history) && history != nil {
		if len(history) > state.MaxSearchHistory {
			history = history[:state.MaxSearchHistory]
		}
		s.SearchHistory = history
	}

	for key, v := range persistedSlices(s) {
		if data, err := json.Marshal(v); err == nil {
			p.last[key] = data
		}
	}
	p.logger.Info("state loaded",
		"lists", len(s.Lists),
		"history", len(s.SearchHistory),
		"currency", s.Settings.Currency)
	return s
}

// Observe is a state.Listener.
func (p *Persister) Observe(_, next state.State) {
	for key, v := range persistedSlices(next) {
		data, err := json.Marshal(v)
		if err != nil {
			p.logger.Error("encode slice", "key", key, "err", err)
			continue
		}
		if bytes.Equal(data, p.last[key]) {
			continue
		}
		p.last[key] = data
		if err := p.kv.Set(key, data); err != nil {
			p.logger.Warn("persist slice", "key", key, "err", err)
			continue
		}
		p.logger.Debug("persisted slice", "key", key, "bytes", len(data))
	}
}

func (p *Persister) read(key string, dst any) bool {
	data, ok, err := p.kv.Get(key)
	if err != nil {
		p.logger.Warn("read slice, using defaults", "key", key, "err", err)
		return false
	}
	if !ok {
		return false
	}
	if err := json.Unmarshal(data, dst); err != nil {
		p.logger.Warn("malformed slice, using defaults", "key", key, "err", err)
		return false
	}
	return true
}

func persistedSlices(s state.State) map[string]any {
	return map[string]any{
		KeyLists:         s.Lists,
		KeySettings:      s.Settings,
		KeySearchHistory: s.SearchHistory,
	}
}
