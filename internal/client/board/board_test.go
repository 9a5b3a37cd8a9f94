package board

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/gophotel/internal/client/storage"
	"github.com/iudanet/gophotel/internal/models"
	"github.com/iudanet/gophotel/internal/optimistic"
	"github.com/iudanet/gophotel/pkg/api"
)

const (
	testProperty = "grand-budapest"
	testActor    = "user-1"
)

var errBackend = errors.New("server error (503): unavailable")

func testRooms() []models.Room {
	return []models.Room{
		{ID: "r-101", PropertyID: testProperty, Number: 101, Floor: 1, Kind: models.RoomKindStandard,
			Occupancy: models.OccupancyVacant, Cleaning: models.CleaningClean},
		{ID: "r-102", PropertyID: testProperty, Number: 102, Floor: 1, Kind: models.RoomKindDouble,
			Occupancy: models.OccupancyOccupied, Cleaning: models.CleaningDirty},
		{ID: "r-201", PropertyID: testProperty, Number: 201, Floor: 2, Kind: models.RoomKindSuite,
			Occupancy: models.OccupancyVacant, Cleaning: models.CleaningInspected},
	}
}

func newTestBoard(t *testing.T, store RoomStore, cache storage.RoomCache, actor string) (*Board, *clockwork.FakeClock) {
	t.Helper()

	clock := clockwork.NewFakeClockAt(time.Date(2024, 6, 1, 9, 0, 0, 0, time.UTC))
	b, err := New(Config{
		Store:      store,
		Cache:      cache,
		Clock:      clock,
		Logger:     slog.New(slog.NewTextHandler(io.Discard, nil)),
		PropertyID: testProperty,
		ActorID:    actor,
	})
	require.NoError(t, err)
	return b, clock
}

// loadedStore возвращает хранилище с тестовыми номерами
func loadedStore() *RoomStoreMock {
	return &RoomStoreMock{
		ListRoomsFunc: func(ctx context.Context, propertyID string) ([]models.Room, error) {
			return testRooms(), nil
		},
	}
}

func loadedBoard(t *testing.T, store *RoomStoreMock, actor string) *Board {
	t.Helper()
	b, _ := newTestBoard(t, store, nil, actor)
	require.NoError(t, b.Refresh(context.Background()))
	return b
}

func roomNumbers(rooms []models.Room) []int {
	numbers := make([]int, 0, len(rooms))
	for _, r := range rooms {
		numbers = append(numbers, r.Number)
	}
	return numbers
}

func TestNew_Validation(t *testing.T) {
	_, err := New(Config{Store: &RoomStoreMock{}, PropertyID: "Bad Property"})
	assert.Error(t, err)

	_, err = New(Config{PropertyID: testProperty})
	assert.ErrorContains(t, err, "room store is required")
}

func TestRefresh_CachesSnapshot(t *testing.T) {
	store := loadedStore()
	cache := &storage.RoomCacheMock{
		SaveRoomsFunc: func(ctx context.Context, snapshot *storage.RoomSnapshot) error {
			return nil
		},
	}
	b, clock := newTestBoard(t, store, cache, testActor)

	require.NoError(t, b.Refresh(context.Background()))

	assert.Equal(t, []int{101, 102, 201}, roomNumbers(b.Rooms()))
	assert.Equal(t, clock.Now(), b.LastRefresh())
	require.Len(t, store.ListRoomsCalls(), 1)
	assert.Equal(t, testProperty, store.ListRoomsCalls()[0].PropertyID)

	require.Len(t, cache.SaveRoomsCalls(), 1)
	saved := cache.SaveRoomsCalls()[0].Snapshot
	assert.Equal(t, testProperty, saved.PropertyID)
	assert.Equal(t, clock.Now(), saved.FetchedAt)
	assert.Len(t, saved.Rooms, 3)
}

func TestRefresh_CacheWriteFailureIsIgnored(t *testing.T) {
	cache := &storage.RoomCacheMock{
		SaveRoomsFunc: func(ctx context.Context, snapshot *storage.RoomSnapshot) error {
			return storage.ErrStorageClosed
		},
	}
	b, _ := newTestBoard(t, loadedStore(), cache, testActor)

	require.NoError(t, b.Refresh(context.Background()))
	assert.Len(t, b.Rooms(), 3)
	assert.False(t, b.Alert().Show)
}

func TestRefresh_FallsBackToCache(t *testing.T) {
	fetchedAt := time.Date(2024, 5, 31, 22, 0, 0, 0, time.UTC)
	store := &RoomStoreMock{
		ListRoomsFunc: func(ctx context.Context, propertyID string) ([]models.Room, error) {
			return nil, errBackend
		},
	}
	cache := &storage.RoomCacheMock{
		GetRoomsFunc: func(ctx context.Context, propertyID string) (*storage.RoomSnapshot, error) {
			return &storage.RoomSnapshot{FetchedAt: fetchedAt, PropertyID: propertyID, Rooms: testRooms()[:2]}, nil
		},
	}
	b, _ := newTestBoard(t, store, cache, testActor)

	err := b.Refresh(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrStale)
	assert.ErrorIs(t, err, errBackend)

	assert.Equal(t, []int{101, 102}, roomNumbers(b.Rooms()))
	assert.Equal(t, fetchedAt, b.LastRefresh())
	alert := b.Alert()
	assert.True(t, alert.Show)
	assert.Contains(t, alert.Message, "Showing board cached at")
	assert.Empty(t, cache.SaveRoomsCalls())
}

func TestRefresh_NoCacheReturnsError(t *testing.T) {
	store := &RoomStoreMock{
		ListRoomsFunc: func(ctx context.Context, propertyID string) ([]models.Room, error) {
			return nil, errBackend
		},
	}

	t.Run("cache disabled", func(t *testing.T) {
		b, _ := newTestBoard(t, store, nil, testActor)
		err := b.Refresh(context.Background())
		assert.ErrorIs(t, err, errBackend)
		assert.NotErrorIs(t, err, ErrStale)
	})

	t.Run("nothing cached yet", func(t *testing.T) {
		cache := &storage.RoomCacheMock{
			GetRoomsFunc: func(ctx context.Context, propertyID string) (*storage.RoomSnapshot, error) {
				return nil, storage.ErrSnapshotNotFound
			},
		}
		b, _ := newTestBoard(t, store, cache, testActor)
		err := b.Refresh(context.Background())
		assert.ErrorIs(t, err, errBackend)
		assert.NotErrorIs(t, err, ErrStale)
		assert.Empty(t, b.Rooms())
		assert.False(t, b.Alert().Show)
	})
}

func TestSetCleaning_SendsPatch(t *testing.T) {
	store := loadedStore()
	store.UpdateRoomFunc = func(ctx context.Context, id string, patch api.RoomPatch) (models.Room, error) {
		return models.Room{}, nil
	}
	b := loadedBoard(t, store, testActor)

	p, err := b.SetCleaning(context.Background(), "r-102", models.CleaningInProgress)
	require.NoError(t, err)
	require.NoError(t, p.Wait(context.Background()))
	assert.Equal(t, optimistic.OutcomeSettled, p.Outcome())

	room, ok := b.Room("r-102")
	require.True(t, ok)
	assert.Equal(t, models.CleaningInProgress, room.Cleaning)

	require.Len(t, store.UpdateRoomCalls(), 1)
	call := store.UpdateRoomCalls()[0]
	assert.Equal(t, "r-102", call.Id)
	require.NotNil(t, call.Patch.Cleaning)
	assert.Equal(t, "in_progress", *call.Patch.Cleaning)
	assert.Nil(t, call.Patch.Occupancy)
	assert.Nil(t, call.Patch.Flagged)
}

func TestSetOccupancy_RevertsOnFailure(t *testing.T) {
	store := loadedStore()
	store.UpdateRoomFunc = func(ctx context.Context, id string, patch api.RoomPatch) (models.Room, error) {
		return models.Room{}, errBackend
	}
	b := loadedBoard(t, store, testActor)

	p, err := b.SetOccupancy(context.Background(), "r-101", models.OccupancyOccupied)
	require.NoError(t, err)
	err = p.Wait(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, errBackend)
	assert.Equal(t, optimistic.OutcomeReverted, p.Outcome())

	room, _ := b.Room("r-101")
	assert.Equal(t, models.OccupancyVacant, room.Occupancy)
	assert.Equal(t, []int{101, 102, 201}, roomNumbers(b.Rooms()))

	alert := b.Alert()
	assert.True(t, alert.Show)
	assert.Contains(t, alert.Message, "Room 101")

	b.DismissAlert()
	assert.False(t, b.Alert().Show)
}

func TestToggleFlag(t *testing.T) {
	store := loadedStore()
	store.UpdateRoomFunc = func(ctx context.Context, id string, patch api.RoomPatch) (models.Room, error) {
		return models.Room{}, nil
	}
	b := loadedBoard(t, store, testActor)

	p, err := b.ToggleFlag(context.Background(), "r-201")
	require.NoError(t, err)
	require.NoError(t, p.Wait(context.Background()))

	room, _ := b.Room("r-201")
	assert.True(t, room.Flagged)
	require.Len(t, store.UpdateRoomCalls(), 1)
	require.NotNil(t, store.UpdateRoomCalls()[0].Patch.Flagged)
	assert.True(t, *store.UpdateRoomCalls()[0].Patch.Flagged)
}

func TestUpdate_Errors(t *testing.T) {
	b := loadedBoard(t, loadedStore(), testActor)
	ctx := context.Background()

	_, err := b.SetCleaning(ctx, "r-101", models.CleaningStatus("sparkling"))
	assert.ErrorContains(t, err, "unknown cleaning status")

	_, err = b.SetOccupancy(ctx, "r-101", models.OccupancyStatus("booked"))
	assert.ErrorContains(t, err, "unknown occupancy")
}

func TestAddRoom_SwapsPlaceholder(t *testing.T) {
	history := &historyFake{}
	store := loadedStore()
	store.CreateRoomFunc = func(ctx context.Context, propertyID string, req api.CreateRoomRequest) (models.Room, error) {
		return models.Room{
			ID: "r-305", PropertyID: propertyID, Number: req.Number, Floor: req.Floor, Kind: req.Kind,
			Occupancy: models.OccupancyStatus(req.Occupancy), Cleaning: models.CleaningStatus(req.Cleaning),
		}, nil
	}
	clock := clockwork.NewFakeClock()
	b, err := New(Config{
		Store:      store,
		History:    history,
		Clock:      clock,
		Logger:     slog.New(slog.NewTextHandler(io.Discard, nil)),
		PropertyID: testProperty,
		ActorID:    testActor,
	})
	require.NoError(t, err)
	require.NoError(t, b.Refresh(context.Background()))

	p, err := b.AddRoom(context.Background(), 305, 3, models.RoomKindSuite)
	require.NoError(t, err)
	require.NoError(t, p.Wait(context.Background()))

	room, ok := b.FindByNumber(305)
	require.True(t, ok)
	assert.Equal(t, "r-305", room.ID)
	assert.Equal(t, []int{101, 102, 201, 305}, roomNumbers(b.Rooms()))

	require.Len(t, store.CreateRoomCalls(), 1)
	req := store.CreateRoomCalls()[0].Req
	assert.Equal(t, testProperty, store.CreateRoomCalls()[0].PropertyID)
	assert.Equal(t, 3, req.Floor)
	assert.Equal(t, "vacant", req.Occupancy)
	assert.Equal(t, "dirty", req.Cleaning)

	assert.Equal(t, []string{testActor + ":create:r-305"}, history.Entries())
	assert.Equal(t, optimistic.Toast{Message: "Room 305 created", Show: true}, b.Toast())
	require.NotNil(t, b.CurrentUndo())
	assert.Equal(t, "Room 305", b.CurrentUndo().Label())
}

func TestAddRoom_PlaceholderCannotBeEdited(t *testing.T) {
	release := make(chan struct{})
	store := loadedStore()
	store.CreateRoomFunc = func(ctx context.Context, propertyID string, req api.CreateRoomRequest) (models.Room, error) {
		<-release
		return models.Room{ID: "r-305", Number: 305, Occupancy: models.OccupancyVacant, Cleaning: models.CleaningDirty}, nil
	}
	b := loadedBoard(t, store, testActor)

	p, err := b.AddRoom(context.Background(), 305, 3, models.RoomKindStandard)
	require.NoError(t, err)

	placeholder, ok := b.FindByNumber(305)
	require.True(t, ok)
	assert.True(t, optimistic.IsLocalID(placeholder.ID))

	_, err = b.SetCleaning(context.Background(), placeholder.ID, models.CleaningClean)
	assert.ErrorContains(t, err, "still being created")
	_, err = b.DeleteRoom(context.Background(), placeholder.ID)
	assert.ErrorContains(t, err, "use undo instead")

	close(release)
	require.NoError(t, p.Wait(context.Background()))
	assert.Empty(t, store.UpdateRoomCalls())
}

func TestAddRoom_Rejections(t *testing.T) {
	ctx := context.Background()

	t.Run("duplicate number", func(t *testing.T) {
		b := loadedBoard(t, loadedStore(), testActor)
		_, err := b.AddRoom(ctx, 101, 1, models.RoomKindStandard)
		assert.ErrorIs(t, err, ErrDuplicateNumber)
	})

	t.Run("invalid room", func(t *testing.T) {
		b := loadedBoard(t, loadedStore(), testActor)
		_, err := b.AddRoom(ctx, 0, 1, models.RoomKindStandard)
		assert.Error(t, err)
		_, err = b.AddRoom(ctx, 305, 3, "penthouse")
		assert.Error(t, err)
	})

	t.Run("not logged in", func(t *testing.T) {
		store := loadedStore()
		b := loadedBoard(t, store, "")
		p, err := b.AddRoom(ctx, 305, 3, models.RoomKindStandard)
		require.NoError(t, err)
		assert.ErrorIs(t, p.Wait(ctx), optimistic.ErrAuthenticationMissing)
		assert.Equal(t, optimistic.OutcomeRejected, p.Outcome())
		assert.Len(t, b.Rooms(), 3)
		assert.Empty(t, store.CreateRoomCalls())
	})
}

func TestAddRoom_FailureRemovesPlaceholder(t *testing.T) {
	store := loadedStore()
	store.CreateRoomFunc = func(ctx context.Context, propertyID string, req api.CreateRoomRequest) (models.Room, error) {
		return models.Room{}, errBackend
	}
	b := loadedBoard(t, store, testActor)

	p, err := b.AddRoom(context.Background(), 305, 3, models.RoomKindStandard)
	require.NoError(t, err)
	assert.ErrorIs(t, p.Wait(context.Background()), errBackend)

	_, ok := b.FindByNumber(305)
	assert.False(t, ok)
	assert.True(t, b.Alert().Show)
}

func TestDeleteRoom_UndoRestores(t *testing.T) {
	store := loadedStore()
	store.DeleteRoomFunc = func(ctx context.Context, id string) error {
		return nil
	}
	store.RestoreRoomFunc = func(ctx context.Context, id string) (models.Room, error) {
		return models.Room{ID: id}, nil
	}
	b := loadedBoard(t, store, testActor)
	ctx := context.Background()

	p, err := b.DeleteRoom(ctx, "r-102")
	require.NoError(t, err)
	require.NoError(t, p.Wait(ctx))
	assert.Equal(t, []int{101, 201}, roomNumbers(b.Rooms()))
	require.Len(t, store.DeleteRoomCalls(), 1)
	assert.Equal(t, "r-102", store.DeleteRoomCalls()[0].Id)

	require.True(t, b.Undo())
	assert.Equal(t, []int{101, 102, 201}, roomNumbers(b.Rooms()))
	require.NoError(t, b.Drain(ctx))
	require.Len(t, store.RestoreRoomCalls(), 1)
	assert.Equal(t, "r-102", store.RestoreRoomCalls()[0].Id)

	assert.False(t, b.Undo(), "undo is single-shot")
}

func TestDeleteRoom_UndoExpires(t *testing.T) {
	store := loadedStore()
	store.DeleteRoomFunc = func(ctx context.Context, id string) error {
		return nil
	}
	b, clock := newTestBoard(t, store, nil, testActor)
	ctx := context.Background()
	require.NoError(t, b.Refresh(ctx))

	p, err := b.DeleteRoom(ctx, "r-101")
	require.NoError(t, err)
	require.NoError(t, p.Wait(ctx))

	clock.Advance(optimistic.DefaultUndoWindow)
	assert.Eventually(t, func() bool { return !b.CurrentUndo().Active() }, time.Second, time.Millisecond)
	assert.False(t, b.Undo())
	assert.Equal(t, []int{102, 201}, roomNumbers(b.Rooms()))
	assert.Empty(t, store.RestoreRoomCalls())
}

func TestMutations_UnknownRoomSkipped(t *testing.T) {
	store := loadedStore()
	b := loadedBoard(t, store, testActor)
	ctx := context.Background()

	mutations := map[string]func() (*optimistic.Pending, error){
		"cleaning":  func() (*optimistic.Pending, error) { return b.SetCleaning(ctx, "r-999", models.CleaningClean) },
		"occupancy": func() (*optimistic.Pending, error) { return b.SetOccupancy(ctx, "r-999", models.OccupancyOccupied) },
		"flag":      func() (*optimistic.Pending, error) { return b.ToggleFlag(ctx, "r-999") },
		"delete":    func() (*optimistic.Pending, error) { return b.DeleteRoom(ctx, "r-999") },
	}
	for name, mutate := range mutations {
		t.Run(name, func(t *testing.T) {
			p, err := mutate()
			require.NoError(t, err)
			require.NoError(t, p.Wait(ctx))
			assert.Equal(t, optimistic.OutcomeSkipped, p.Outcome())
		})
	}

	assert.Empty(t, store.UpdateRoomCalls())
	assert.Empty(t, store.DeleteRoomCalls())
	assert.False(t, b.Alert().Show)
	assert.Equal(t, []int{101, 102, 201}, roomNumbers(b.Rooms()))
}

// historyFake записывает журнал аудита в память
type historyFake struct {
	entries []string
	mu      sync.Mutex
}

func (h *historyFake) RecordHistory(ctx context.Context, actorID, entityID, action string) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.entries = append(h.entries, actorID+":"+action+":"+entityID)
	return nil
}

func (h *historyFake) Entries() []string {
	h.mu.Lock()
	defer h.mu.Unlock()
	return append([]string(nil), h.entries...)
}
