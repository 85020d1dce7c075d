package storage

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/modernzork/adventure-engine/pkg/achievements"
	"github.com/modernzork/adventure-engine/pkg/journal"
	"github.com/modernzork/adventure-engine/pkg/state"
)

func newTestRedis(t *testing.T) (*RedisStorage, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	rs, err := NewRedisStorage(context.Background(), "redis://"+mr.Addr(), logger)
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = rs.Close()
	})
	return rs, mr
}

func TestNewRedisStorageBadURL(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	_, err := NewRedisStorage(context.Background(), "not a url", logger)
	assert.Error(t, err)
}

func TestNewRedisStorageUnreachable(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	_, err := NewRedisStorage(context.Background(), "redis://127.0.0.1:1", logger)
	assert.Error(t, err)
}

func TestRedisPlayerRecord(t *testing.T) {
	ctx := context.Background()
	rs, _ := newTestRedis(t)

	record, err := rs.LoadPlayerRecord(ctx)
	require.NoError(t, err)
	assert.Nil(t, record, "missing record should be (nil, nil)")

	saved := achievements.NewPlayerRecord()
	saved.Stats.Add(achievements.StatRoomsVisited, 7)
	require.NoError(t, rs.SavePlayerRecord(ctx, saved))

	record, err = rs.LoadPlayerRecord(ctx)
	require.NoError(t, err)
	require.NotNil(t, record)
	assert.Equal(t, 7, record.Stats.Get(achievements.StatRoomsVisited))
}

func TestRedisPlayerRecordCorrupt(t *testing.T) {
	ctx := context.Background()
	rs, mr := newTestRedis(t)

	require.NoError(t, mr.Set("record:player", "{not json"))

	record, err := rs.LoadPlayerRecord(ctx)
	require.NoError(t, err)
	assert.Nil(t, record, "corrupt record should read as missing")
}

func TestRedisSaveGames(t *testing.T) {
	ctx := context.Background()
	rs, _ := newTestRedis(t)

	missing, err := rs.LoadGame(ctx, uuid.New())
	require.NoError(t, err)
	assert.Nil(t, missing)

	save := &state.SaveGame{
		ID:           uuid.New(),
		AdventureID:  "forgotten-cave",
		Name:         "crystal chamber",
		LocationName: "Crystal Chamber",
		State:        state.NewGameState("forgotten-cave", "crystal_chamber"),
	}
	save.State.Score = 15
	require.NoError(t, rs.SaveGame(ctx, save))

	got, err := rs.LoadGame(ctx, save.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "crystal chamber", got.Name)
	assert.Equal(t, "crystal_chamber", got.State.CurrentLocation)

	list, err := rs.ListSaves(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, save.ID, list[0].ID)
	assert.Equal(t, 15, list[0].Score)

	require.NoError(t, rs.DeleteSave(ctx, save.ID))
	list, err = rs.ListSaves(ctx)
	require.NoError(t, err)
	assert.Empty(t, list)

	got, err = rs.LoadGame(ctx, save.ID)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestRedisListSavesSkipsStaleIndex(t *testing.T) {
	ctx := context.Background()
	rs, mr := newTestRedis(t)

	// An index entry whose save key is gone, and one that is not a UUID.
	_, err := mr.SAdd("saves:index", uuid.NewString(), "not-a-uuid")
	require.NoError(t, err)

	list, err := rs.ListSaves(ctx)
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestRedisJournal(t *testing.T) {
	ctx := context.Background()
	rs, _ := newTestRedis(t)

	j, err := rs.LoadJournal(ctx)
	require.NoError(t, err)
	assert.Nil(t, j)

	saved := journal.New()
	saved.AddAutoEntry("forgotten-cave", "main_cavern", "The walls glitter here.")
	require.NoError(t, rs.SaveJournal(ctx, saved))

	j, err = rs.LoadJournal(ctx)
	require.NoError(t, err)
	require.NotNil(t, j)
	require.Len(t, j.Entries, 1)
	assert.Equal(t, "The walls glitter here.", j.Entries[0].Text)
	assert.True(t, j.Entries[0].Auto)
}

func TestRedisPingAfterServerStop(t *testing.T) {
	ctx := context.Background()
	rs, mr := newTestRedis(t)

	require.NoError(t, rs.Ping(ctx))

	mr.Close()
	assert.Error(t, rs.Ping(ctx))
}
