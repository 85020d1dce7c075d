// Package storage provides the Redis-backed implementation of the
// engine's persistence contract. Keys are namespaced by prefix:
// record: for the player record, save: for save games, journal: for the
// journal, plus a saves index set for listings.
package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/modernzork/adventure-engine/pkg/achievements"
	"github.com/modernzork/adventure-engine/pkg/journal"
	"github.com/modernzork/adventure-engine/pkg/state"
	"github.com/modernzork/adventure-engine/pkg/storage"
)

const (
	recordKey     = "record:player"
	journalKey    = "journal:player"
	savesIndexKey = "saves:index"
	saveKeyPrefix = "save:"
)

// RedisStorage implements the Storage interface on Redis.
type RedisStorage struct {
	client *redis.Client
	logger *slog.Logger
}

// Ensure RedisStorage implements Storage interface
var _ storage.Storage = (*RedisStorage)(nil)

// NewRedisStorage connects to Redis and verifies the connection.
func NewRedisStorage(ctx context.Context, redisURL string, logger *slog.Logger) (*RedisStorage, error) {
	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse redis URL: %w", err)
	}

	rdb := redis.NewClient(opt)
	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	return &RedisStorage{client: rdb, logger: logger}, nil
}

func (r *RedisStorage) Ping(ctx context.Context) error {
	if err := r.client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("redis ping failed: %w", err)
	}
	return nil
}

func (r *RedisStorage) Close() error {
	if err := r.client.Close(); err != nil {
		r.logger.Error("failed to close redis connection", "error", err)
		return err
	}
	return nil
}

func (r *RedisStorage) SavePlayerRecord(ctx context.Context, record *achievements.PlayerRecord) error {
	data, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("failed to marshal player record: %w", err)
	}
	if err := r.client.Set(ctx, recordKey, data, 0).Err(); err != nil {
		return fmt.Errorf("failed to save player record: %w", err)
	}
	return nil
}

// LoadPlayerRecord returns (nil, nil) when no record is stored. A corrupt
// payload is logged and treated as missing, so play falls back to a
// fresh record instead of failing.
func (r *RedisStorage) LoadPlayerRecord(ctx context.Context) (*achievements.PlayerRecord, error) {
	data, err := r.client.Get(ctx, recordKey).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load player record: %w", err)
	}

	var record achievements.PlayerRecord
	if err := json.Unmarshal([]byte(data), &record); err != nil {
		r.logger.Warn("corrupt player record in storage, ignoring", "error", err)
		return nil, nil
	}
	return &record, nil
}

func (r *RedisStorage) SaveGame(ctx context.Context, save *state.SaveGame) error {
	data, err := json.Marshal(save)
	if err != nil {
		return fmt.Errorf("failed to marshal save game: %w", err)
	}
	key := saveKeyPrefix + save.ID.String()
	if err := r.client.Set(ctx, key, data, 0).Err(); err != nil {
		return fmt.Errorf("failed to save game: %w", err)
	}
	if err := r.client.SAdd(ctx, savesIndexKey, save.ID.String()).Err(); err != nil {
		return fmt.Errorf("failed to index save game: %w", err)
	}
	return nil
}

func (r *RedisStorage) LoadGame(ctx context.Context, id uuid.UUID) (*state.SaveGame, error) {
	data, err := r.client.Get(ctx, saveKeyPrefix+id.String()).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load save game: %w", err)
	}

	var save state.SaveGame
	if err := json.Unmarshal([]byte(data), &save); err != nil {
		r.logger.Warn("corrupt save game in storage, ignoring", "id", id, "error", err)
		return nil, nil
	}
	return &save, nil
}

func (r *RedisStorage) ListSaves(ctx context.Context) ([]state.SaveSummary, error) {
	ids, err := r.client.SMembers(ctx, savesIndexKey).Result()
	if err != nil && err != redis.Nil {
		return nil, fmt.Errorf("failed to list saves: %w", err)
	}

	out := make([]state.SaveSummary, 0, len(ids))
	for _, raw := range ids {
		id, err := uuid.Parse(raw)
		if err != nil {
			r.logger.Warn("invalid save id in index, skipping", "id", raw)
			continue
		}
		save, err := r.LoadGame(ctx, id)
		if err != nil {
			return nil, err
		}
		if save == nil {
			// Stale index entry.
			continue
		}
		out = append(out, save.Summary())
	}
	return out, nil
}

func (r *RedisStorage) DeleteSave(ctx context.Context, id uuid.UUID) error {
	if err := r.client.Del(ctx, saveKeyPrefix+id.String()).Err(); err != nil {
		return fmt.Errorf("failed to delete save game: %w", err)
	}
	if err := r.client.SRem(ctx, savesIndexKey, id.String()).Err(); err != nil {
		return fmt.Errorf("failed to unindex save game: %w", err)
	}
	return nil
}

func (r *RedisStorage) SaveJournal(ctx context.Context, j *journal.Journal) error {
	data, err := json.Marshal(j)
	if err != nil {
		return fmt.Errorf("failed to marshal journal: %w", err)
	}
	if err := r.client.Set(ctx, journalKey, data, 0).Err(); err != nil {
		return fmt.Errorf("failed to save journal: %w", err)
	}
	return nil
}

func (r *RedisStorage) LoadJournal(ctx context.Context) (*journal.Journal, error) {
	data, err := r.client.Get(ctx, journalKey).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load journal: %w", err)
	}

	var j journal.Journal
	if err := json.Unmarshal([]byte(data), &j); err != nil {
		r.logger.Warn("corrupt journal in storage, ignoring", "error", err)
		return nil, nil
	}
	return &j, nil
}
