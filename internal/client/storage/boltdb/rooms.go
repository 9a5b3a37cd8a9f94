package boltdb

import (
	"context"
	"fmt"

	"go.etcd.io/bbolt"

	"github.com/iudanet/gophotel/internal/client/storage"
)

// SaveRooms replaces the cached board of one property
func (s *Storage) SaveRooms(ctx context.Context, snapshot *storage.RoomSnapshot) error {
	if snapshot == nil || snapshot.PropertyID == "" {
		return fmt.Errorf("snapshot must name a property")
	}

	// Ключ - ID объекта, значение - вся доска целиком
	return s.update(func(tx *bbolt.Tx) error {
		return putJSON(tx, bucketRooms, []byte(snapshot.PropertyID), snapshot)
	})
}

// GetRooms returns the cached board of one property
func (s *Storage) GetRooms(ctx context.Context, propertyID string) (*storage.RoomSnapshot, error) {
	snapshot := &storage.RoomSnapshot{}
	err := s.view(func(tx *bbolt.Tx) error {
		return getJSON(tx, bucketRooms, []byte(propertyID), snapshot, storage.ErrSnapshotNotFound)
	})
	if err != nil {
		return nil, err
	}
	return snapshot, nil
}

// ClearRooms drops all cached boards
func (s *Storage) ClearRooms(ctx context.Context) error {
	return s.update(func(tx *bbolt.Tx) error {
		if tx.Bucket(bucketRooms) != nil {
			if err := tx.DeleteBucket(bucketRooms); err != nil {
				return fmt.Errorf("failed to drop rooms bucket: %w", err)
			}
		}
		if _, err := tx.CreateBucket(bucketRooms); err != nil {
			return fmt.Errorf("failed to create rooms bucket: %w", err)
		}
		return nil
	})
}
