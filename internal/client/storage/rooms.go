package storage

import (
	"context"
	"time"

	"github.com/iudanet/gophotel/internal/models"
)

//go:generate moq -out rooms_mock.go . RoomCache

// RoomCache keeps the last board fetched per property so the board can be
// shown when the backend is unreachable
type RoomCache interface {
	// SaveRooms replaces the snapshot for the property
	SaveRooms(ctx context.Context, snapshot *RoomSnapshot) error

	// GetRooms returns ErrSnapshotNotFound if the property was never fetched
	GetRooms(ctx context.Context, propertyID string) (*RoomSnapshot, error)

	// ClearRooms drops every cached snapshot (logout)
	ClearRooms(ctx context.Context) error
}

// RoomSnapshot - доска номеров на момент последнего успешного запроса
type RoomSnapshot struct {
	FetchedAt  time.Time     `json:"fetched_at"`
	PropertyID string        `json:"property_id"`
	Rooms      []models.Room `json:"rooms"`
}
