// Package storage defines the durable key-value persistence contract the
// engine consumes. The engine never assumes a specific backing store:
// implementations exist for Redis (internal/storage) and in-memory maps
// (MemoryStorage, also the test double).
package storage

import (
	"context"

	"github.com/google/uuid"
	"github.com/modernzork/adventure-engine/pkg/achievements"
	"github.com/modernzork/adventure-engine/pkg/journal"
	"github.com/modernzork/adventure-engine/pkg/state"
)

// Storage persists everything that outlives a single command: the player
// achievement record, save-game snapshots and the journal.
//
// Load operations return (nil, nil) when nothing is stored; callers fall
// back to fresh defaults. Corrupt payloads are treated the same way by
// implementations, logged but never surfaced as gameplay errors.
type Storage interface {
	Ping(ctx context.Context) error
	Close() error

	SavePlayerRecord(ctx context.Context, record *achievements.PlayerRecord) error
	LoadPlayerRecord(ctx context.Context) (*achievements.PlayerRecord, error)

	SaveGame(ctx context.Context, save *state.SaveGame) error
	LoadGame(ctx context.Context, id uuid.UUID) (*state.SaveGame, error)
	ListSaves(ctx context.Context) ([]state.SaveSummary, error)
	DeleteSave(ctx context.Context, id uuid.UUID) error

	SaveJournal(ctx context.Context, j *journal.Journal) error
	LoadJournal(ctx context.Context) (*journal.Journal, error)
}
