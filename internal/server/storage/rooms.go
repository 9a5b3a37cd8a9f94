package storage

import (
	"context"
	"time"

	"github.com/iudanet/gophotel/internal/models"
)

// RoomChanges - изменяемые поля номера, nil поле не меняется
type RoomChanges struct {
	Occupancy *models.OccupancyStatus
	Cleaning  *models.CleaningStatus
	Notes     *string
	Flagged   *bool
}

// RoomStorage defines interface for room persistence.
// Deleted rooms are kept with a deletion mark so they can be restored.
type RoomStorage interface {
	// ListRooms returns live rooms of a property ordered by floor and number
	ListRooms(ctx context.Context, propertyID string) ([]models.Room, error)

	// GetRoom retrieves a live room
	// Returns ErrRoomNotFound if room doesn't exist or is deleted
	GetRoom(ctx context.Context, id string) (*models.Room, error)

	// CreateRoom inserts a new room
	// Returns ErrDuplicateRoomNumber if the number is taken by a live room
	CreateRoom(ctx context.Context, room *models.Room) error

	// UpdateRoom applies changes to a live room in one statement and returns
	// the stored room. Fields left nil keep their stored value.
	// Returns ErrRoomNotFound if room doesn't exist or is deleted
	UpdateRoom(ctx context.Context, id string, changes RoomChanges, at time.Time) (*models.Room, error)

	// SoftDeleteRoom marks a live room deleted
	// Returns ErrRoomNotFound if room doesn't exist or is already deleted
	SoftDeleteRoom(ctx context.Context, id string, at time.Time) error

	// RestoreRoom clears the deletion mark and returns the room.
	// Restoring a live room is a no-op.
	// Returns ErrRoomNotFound if room doesn't exist,
	// ErrDuplicateRoomNumber if its number was reused meanwhile
	RestoreRoom(ctx context.Context, id string, at time.Time) (*models.Room, error)
}
