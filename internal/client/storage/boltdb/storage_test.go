package boltdb

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.etcd.io/bbolt"

	"github.com/iudanet/gophotel/internal/client/storage"
	"github.com/iudanet/gophotel/internal/models"
)

func TestNew_Success(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "testdb.db")

	store, err := New(context.Background(), dbPath)
	require.NoError(t, err)
	defer func() {
		require.NoError(t, store.Close())
	}()

	info, err := os.Stat(dbPath)
	require.NoError(t, err)
	assert.False(t, info.IsDir())

	err = store.db.View(func(tx *bbolt.Tx) error {
		for _, b := range [][]byte{bucketAuth, bucketRooms} {
			if tx.Bucket(b) == nil {
				return os.ErrNotExist
			}
		}
		return nil
	})
	require.NoError(t, err)
}

func TestNew_InvalidPath(t *testing.T) {
	store, err := New(context.Background(), filepath.Join(t.TempDir(), "missing", "dir", "db"))
	assert.Error(t, err)
	assert.Nil(t, store)
}

func TestClose(t *testing.T) {
	store, err := New(context.Background(), filepath.Join(t.TempDir(), "testdb.db"))
	require.NoError(t, err)

	assert.NoError(t, store.Close())
	assert.Nil(t, store.db)

	// Второй вызов Close ничего не делает
	assert.NoError(t, store.Close())

	_, err = store.GetAuth(context.Background())
	assert.ErrorIs(t, err, storage.ErrStorageClosed)
}

func TestRooms_SaveGet(t *testing.T) {
	ctx := context.Background()
	store := createTestStorage(t)

	fetched := time.Date(2024, 5, 1, 8, 30, 0, 0, time.UTC)
	snapshot := &storage.RoomSnapshot{
		FetchedAt:  fetched,
		PropertyID: "hotel-1",
		Rooms: []models.Room{
			{ID: "r2", PropertyID: "hotel-1", Number: 102, Occupancy: models.OccupancyVacant, Cleaning: models.CleaningDirty},
			{ID: "r1", PropertyID: "hotel-1", Number: 101, Occupancy: models.OccupancyOccupied, Cleaning: models.CleaningClean, Flagged: true},
		},
	}

	_, err := store.GetRooms(ctx, "hotel-1")
	assert.ErrorIs(t, err, storage.ErrSnapshotNotFound)

	require.NoError(t, store.SaveRooms(ctx, snapshot))

	got, err := store.GetRooms(ctx, "hotel-1")
	require.NoError(t, err)
	assert.True(t, fetched.Equal(got.FetchedAt))
	// порядок доски сохраняется
	require.Len(t, got.Rooms, 2)
	assert.Equal(t, "r2", got.Rooms[0].ID)
	assert.True(t, got.Rooms[1].Flagged)

	_, err = store.GetRooms(ctx, "hotel-2")
	assert.ErrorIs(t, err, storage.ErrSnapshotNotFound)
}

func TestRooms_SaveRejectsAnonymousSnapshot(t *testing.T) {
	store := createTestStorage(t)

	assert.Error(t, store.SaveRooms(context.Background(), &storage.RoomSnapshot{}))
	assert.Error(t, store.SaveRooms(context.Background(), nil))
}

func TestRooms_Clear(t *testing.T) {
	ctx := context.Background()
	store := createTestStorage(t)

	for _, p := range []string{"hotel-1", "hotel-2"} {
		require.NoError(t, store.SaveRooms(ctx, &storage.RoomSnapshot{PropertyID: p}))
	}

	require.NoError(t, store.ClearRooms(ctx))

	for _, p := range []string{"hotel-1", "hotel-2"} {
		_, err := store.GetRooms(ctx, p)
		assert.ErrorIs(t, err, storage.ErrSnapshotNotFound)
	}

	// После очистки снова можно писать
	require.NoError(t, store.SaveRooms(ctx, &storage.RoomSnapshot{PropertyID: "hotel-1"}))
}
