package storage

import (
	"context"
	"encoding/json"
	"sort"
	"sync"

	"github.com/google/uuid"
	"github.com/modernzork/adventure-engine/pkg/achievements"
	"github.com/modernzork/adventure-engine/pkg/journal"
	"github.com/modernzork/adventure-engine/pkg/state"
)

// MemoryStorage is an in-memory Storage implementation. It backs tests
// and the console's no-Redis mode. Values are stored as JSON so the
// round-trip behavior matches durable backends.
type MemoryStorage struct {
	mu        sync.RWMutex
	record    []byte
	saves     map[uuid.UUID][]byte
	journal   []byte
	pingError error
}

// Ensure MemoryStorage implements Storage interface
var _ Storage = (*MemoryStorage)(nil)

// NewMemoryStorage creates an empty in-memory store.
func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{
		saves: make(map[uuid.UUID][]byte),
	}
}

// SetPingError configures Ping to fail, for error-path tests.
func (m *MemoryStorage) SetPingError(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.pingError = err
}

func (m *MemoryStorage) Ping(ctx context.Context) error {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.pingError
}

func (m *MemoryStorage) Close() error {
	return nil
}

func (m *MemoryStorage) SavePlayerRecord(ctx context.Context, record *achievements.PlayerRecord) error {
	data, err := json.Marshal(record)
	if err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.record = data
	return nil
}

func (m *MemoryStorage) LoadPlayerRecord(ctx context.Context) (*achievements.PlayerRecord, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.record == nil {
		return nil, nil
	}
	var record achievements.PlayerRecord
	if err := json.Unmarshal(m.record, &record); err != nil {
		return nil, err
	}
	return &record, nil
}

func (m *MemoryStorage) SaveGame(ctx context.Context, save *state.SaveGame) error {
	data, err := json.Marshal(save)
	if err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.saves[save.ID] = data
	return nil
}

func (m *MemoryStorage) LoadGame(ctx context.Context, id uuid.UUID) (*state.SaveGame, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	data, ok := m.saves[id]
	if !ok {
		return nil, nil
	}
	var save state.SaveGame
	if err := json.Unmarshal(data, &save); err != nil {
		return nil, err
	}
	return &save, nil
}

func (m *MemoryStorage) ListSaves(ctx context.Context) ([]state.SaveSummary, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]state.SaveSummary, 0, len(m.saves))
	for _, data := range m.saves {
		var save state.SaveGame
		if err := json.Unmarshal(data, &save); err != nil {
			continue
		}
		out = append(out, save.Summary())
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

func (m *MemoryStorage) DeleteSave(ctx context.Context, id uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.saves, id)
	return nil
}

func (m *MemoryStorage) SaveJournal(ctx context.Context, j *journal.Journal) error {
	data, err := json.Marshal(j)
	if err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.journal = data
	return nil
}

func (m *MemoryStorage) LoadJournal(ctx context.Context) (*journal.Journal, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.journal == nil {
		return nil, nil
	}
	var j journal.Journal
	if err := json.Unmarshal(m.journal, &j); err != nil {
		return nil, err
	}
	return &j, nil
}
