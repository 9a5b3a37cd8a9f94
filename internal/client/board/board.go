// Package board is the room status board: the optimistic coordinator bound
// to the rooms of one property, the backend and the local cache.
package board

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/iudanet/gophotel/internal/client/storage"
	"github.com/iudanet/gophotel/internal/models"
	"github.com/iudanet/gophotel/internal/optimistic"
	"github.com/iudanet/gophotel/internal/validation"
	"github.com/iudanet/gophotel/pkg/api"
)

//go:generate moq -out store_mock.go . RoomStore

// RoomStore is the remote record store for rooms
type RoomStore interface {
	ListRooms(ctx context.Context, propertyID string) ([]models.Room, error)
	CreateRoom(ctx context.Context, propertyID string, req api.CreateRoomRequest) (models.Room, error)
	UpdateRoom(ctx context.Context, id string, patch api.RoomPatch) (models.Room, error)
	DeleteRoom(ctx context.Context, id string) error
	RestoreRoom(ctx context.Context, id string) (models.Room, error)
}

var (
	// ErrStale wraps the remote error when Refresh fell back to the local cache
	ErrStale = errors.New("backend unavailable, showing cached board")
	// ErrRoomNotFound номер не найден на доске при поиске по номеру комнаты.
	// Мутации по id отсутствующей комнаты не ошибка: Pending завершается с OutcomeSkipped.
	ErrRoomNotFound = errors.New("room not found on board")
	// ErrDuplicateNumber номер уже есть на доске
	ErrDuplicateNumber = errors.New("room number already on board")
)

// Config holds the board's collaborators
type Config struct {
	Store    RoomStore
	Cache    storage.RoomCache // nil disables the offline fallback
	History  optimistic.HistoryLogger
	Recorder optimistic.Recorder
	Clock    clockwork.Clock
	Logger   *slog.Logger
	// PropertyID объект, чья доска показывается
	PropertyID string
	// ActorID сотрудник из сессии; пустой запрещает добавление и удаление
	ActorID    string
	UndoWindow time.Duration
}

// Board is the view-model behind the room status screen
type Board struct {
	coord       *optimistic.Coordinator[models.Room]
	store       RoomStore
	cache       storage.RoomCache
	clock       clockwork.Clock
	logger      *slog.Logger
	lastRefresh time.Time
	propertyID  string
	actorID     string
}

// New creates a board for one property. Call Refresh to load it.
func New(cfg Config) (*Board, error) {
	if err := validation.ValidatePropertyID(cfg.PropertyID); err != nil {
		return nil, err
	}
	if cfg.Store == nil {
		return nil, fmt.Errorf("room store is required")
	}
	if cfg.Clock == nil {
		cfg.Clock = clockwork.NewRealClock()
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}
	logger := cfg.Logger.With("property_id", cfg.PropertyID)

	coord := optimistic.New[models.Room](optimistic.Config{
		Clock:      cfg.Clock,
		Logger:     logger,
		History:    cfg.History,
		Recorder:   cfg.Recorder,
		UndoWindow: cfg.UndoWindow,
	})

	return &Board{
		coord:      coord,
		store:      cfg.Store,
		cache:      cfg.Cache,
		clock:      cfg.Clock,
		logger:     logger,
		propertyID: cfg.PropertyID,
		actorID:    cfg.ActorID,
	}, nil
}

// PropertyID returns the property shown on the board
func (b *Board) PropertyID() string {
	return b.propertyID
}

// LastRefresh returns when the shown data was fetched from the backend
func (b *Board) LastRefresh() time.Time {
	return b.lastRefresh
}

// Refresh reloads the board from the backend and caches it. When the
// backend fails and a cached board exists, the cached board is shown, the
// alert is raised and the returned error wraps ErrStale.
func (b *Board) Refresh(ctx context.Context) error {
	rooms, err := b.store.ListRooms(ctx, b.propertyID)
	if err == nil {
		b.coord.Replace(rooms)
		b.lastRefresh = b.clock.Now()
		b.saveSnapshot(ctx, rooms)
		return nil
	}

	b.logger.Warn("failed to load board", "error", err)
	if b.cache == nil {
		return fmt.Errorf("failed to load rooms: %w", err)
	}

	snapshot, cacheErr := b.cache.GetRooms(ctx, b.propertyID)
	if cacheErr != nil {
		if !errors.Is(cacheErr, storage.ErrSnapshotNotFound) {
			b.logger.Warn("failed to read cached board", "error", cacheErr)
		}
		return fmt.Errorf("failed to load rooms: %w", err)
	}

	b.coord.Replace(snapshot.Rooms)
	b.lastRefresh = snapshot.FetchedAt
	b.coord.Raise(fmt.Sprintf("Showing board cached at %s: %v",
		snapshot.FetchedAt.Local().Format("2006-01-02 15:04"), err))
	return fmt.Errorf("%w: %w", ErrStale, err)
}

func (b *Board) saveSnapshot(ctx context.Context, rooms []models.Room) {
	if b.cache == nil {
		return
	}
	snapshot := &storage.RoomSnapshot{
		FetchedAt:  b.lastRefresh,
		PropertyID: b.propertyID,
		Rooms:      rooms,
	}
	// Кэш вспомогательный: ошибка записи не мешает работе доски
	if err := b.cache.SaveRooms(ctx, snapshot); err != nil {
		b.logger.Warn("failed to cache board", "error", err)
	}
}

// SetOccupancy marks a room vacant or occupied
func (b *Board) SetOccupancy(ctx context.Context, id string, status models.OccupancyStatus) (*optimistic.Pending, error) {
	if !status.Valid() {
		return nil, fmt.Errorf("unknown occupancy %q", status)
	}
	value := string(status)
	return b.update(ctx, id, api.RoomPatch{Occupancy: &value}, func(r models.Room) models.Room {
		r.Occupancy = status
		return r
	})
}

// SetCleaning moves a room through the housekeeping states
func (b *Board) SetCleaning(ctx context.Context, id string, status models.CleaningStatus) (*optimistic.Pending, error) {
	if !status.Valid() {
		return nil, fmt.Errorf("unknown cleaning status %q", status)
	}
	value := string(status)
	return b.update(ctx, id, api.RoomPatch{Cleaning: &value}, func(r models.Room) models.Room {
		r.Cleaning = status
		return r
	})
}

// ToggleFlag flips the maintenance flag
func (b *Board) ToggleFlag(ctx context.Context, id string) (*optimistic.Pending, error) {
	room, ok := b.coord.Get(id)
	if !ok {
		// отсутствующий номер пропускается координатором
		return b.update(ctx, id, api.RoomPatch{}, func(r models.Room) models.Room { return r })
	}
	flagged := !room.Flagged
	return b.update(ctx, id, api.RoomPatch{Flagged: &flagged}, func(r models.Room) models.Room {
		r.Flagged = flagged
		return r
	})
}

func (b *Board) update(ctx context.Context, id string, patch api.RoomPatch, transform func(models.Room) models.Room) (*optimistic.Pending, error) {
	room, ok := b.coord.Get(id)
	if ok && optimistic.IsLocalID(id) {
		// Номер еще не создан на сервере, патчить нечего
		return nil, fmt.Errorf("room %d is still being created", room.Number)
	}

	return b.coord.ApplyUpdate(ctx, optimistic.UpdateIntent[models.Room]{
		ID:        id,
		Label:     roomLabel(room),
		Transform: transform,
		Commit: func(ctx context.Context, _ models.Room) error {
			_, err := b.store.UpdateRoom(ctx, id, patch)
			return err
		},
	}), nil
}

// AddRoom puts a placeholder on the board and creates the room remotely
func (b *Board) AddRoom(ctx context.Context, number, floor int, kind string) (*optimistic.Pending, error) {
	if err := validation.ValidateRoom(number, floor, kind); err != nil {
		return nil, err
	}
	if _, ok := b.FindByNumber(number); ok {
		return nil, fmt.Errorf("%w: %d", ErrDuplicateNumber, number)
	}

	now := b.clock.Now()
	placeholder := models.Room{
		CreatedAt:  now,
		UpdatedAt:  now,
		ID:         optimistic.NewLocalID(),
		PropertyID: b.propertyID,
		Kind:       kind,
		Occupancy:  models.OccupancyVacant,
		Cleaning:   models.CleaningDirty,
		Number:     number,
		Floor:      floor,
	}

	return b.coord.ApplyInsert(ctx, optimistic.InsertIntent[models.Room]{
		ActorID:     b.actorID,
		Label:       roomLabel(placeholder),
		Placeholder: placeholder,
		Create: func(ctx context.Context, p models.Room) (models.Room, error) {
			return b.store.CreateRoom(ctx, b.propertyID, api.CreateRoomRequest{
				Kind:      p.Kind,
				Occupancy: string(p.Occupancy),
				Cleaning:  string(p.Cleaning),
				Number:    p.Number,
				Floor:     p.Floor,
			})
		},
		Discard: func(ctx context.Context, created models.Room) error {
			return b.store.DeleteRoom(ctx, created.ID)
		},
	}), nil
}

// DeleteRoom removes a room from the board and soft-deletes it remotely
func (b *Board) DeleteRoom(ctx context.Context, id string) (*optimistic.Pending, error) {
	room, ok := b.coord.Get(id)
	if ok && optimistic.IsLocalID(id) {
		return nil, fmt.Errorf("room %d is still being created, use undo instead", room.Number)
	}

	return b.coord.ApplyDelete(ctx, optimistic.DeleteIntent[models.Room]{
		ActorID: b.actorID,
		ID:      id,
		Label:   roomLabel(room),
		Delete: func(ctx context.Context, r models.Room) error {
			return b.store.DeleteRoom(ctx, r.ID)
		},
		Restore: func(ctx context.Context, r models.Room) error {
			_, err := b.store.RestoreRoom(ctx, r.ID)
			return err
		},
	}), nil
}

// Undo reverses the latest add or delete if its window is still open
func (b *Board) Undo() bool {
	return b.coord.Undo()
}

// CurrentUndo returns the latest undo affordance, nil if none
func (b *Board) CurrentUndo() *optimistic.Undo {
	return b.coord.CurrentUndo()
}

// Rooms returns the board in display order
func (b *Board) Rooms() []models.Room {
	return b.coord.Items()
}

// Room returns one room by id
func (b *Board) Room(id string) (models.Room, bool) {
	return b.coord.Get(id)
}

// FindByNumber looks a room up by its door number
func (b *Board) FindByNumber(number int) (models.Room, bool) {
	for _, r := range b.coord.Items() {
		if r.Number == number {
			return r, true
		}
	}
	return models.Room{}, false
}

// Alert returns the current failure message
func (b *Board) Alert() optimistic.Alert {
	return b.coord.Alert()
}

// DismissAlert hides the failure message
func (b *Board) DismissAlert() {
	b.coord.DismissAlert()
}

// Toast returns the current success message
func (b *Board) Toast() optimistic.Toast {
	return b.coord.Toast()
}

// Drain waits for in-flight backend calls
func (b *Board) Drain(ctx context.Context) error {
	return b.coord.Drain(ctx)
}

func roomLabel(r models.Room) string {
	return fmt.Sprintf("Room %d", r.Number)
}
