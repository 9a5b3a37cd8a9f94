package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/iudanet/gophotel/internal/models"
	"github.com/iudanet/gophotel/internal/server/storage"
)

const roomColumns = `id, property_id, number, floor, kind, occupancy, cleaning, notes, flagged, created_at, updated_at`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRoom(row rowScanner) (*models.Room, error) {
	room := &models.Room{}
	err := row.Scan(
		&room.ID,
		&room.PropertyID,
		&room.Number,
		&room.Floor,
		&room.Kind,
		&room.Occupancy,
		&room.Cleaning,
		&room.Notes,
		&room.Flagged,
		&room.CreatedAt,
		&room.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return room, nil
}

// ListRooms returns live rooms of a property ordered by floor and number
func (s *Storage) ListRooms(ctx context.Context, propertyID string) ([]models.Room, error) {
	query := `SELECT ` + roomColumns + `
		FROM rooms
		WHERE property_id = ? AND deleted_at IS NULL
		ORDER BY floor, number
	`

	rows, err := s.db.QueryContext(ctx, query, propertyID)
	if err != nil {
		return nil, fmt.Errorf("failed to query rooms: %w", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	rooms := make([]models.Room, 0)
	for rows.Next() {
		room, err := scanRoom(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan room: %w", err)
		}
		rooms = append(rooms, *room)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return rooms, nil
}

// GetRoom retrieves a live room
func (s *Storage) GetRoom(ctx context.Context, id string) (*models.Room, error) {
	query := `SELECT ` + roomColumns + ` FROM rooms WHERE id = ? AND deleted_at IS NULL`

	room, err := scanRoom(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrRoomNotFound
		}
		return nil, fmt.Errorf("failed to get room: %w", err)
	}

	return room, nil
}

// CreateRoom inserts a new room
func (s *Storage) CreateRoom(ctx context.Context, room *models.Room) error {
	query := `
		INSERT INTO rooms (` + roomColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	_, err := s.db.ExecContext(ctx, query,
		room.ID,
		room.PropertyID,
		room.Number,
		room.Floor,
		room.Kind,
		string(room.Occupancy),
		string(room.Cleaning),
		room.Notes,
		room.Flagged,
		room.CreatedAt.UTC(),
		room.UpdatedAt.UTC(),
	)

	if err != nil {
		if isUniqueViolation(err) {
			return storage.ErrDuplicateRoomNumber
		}
		return fmt.Errorf("failed to insert room: %w", err)
	}

	return nil
}

// UpdateRoom applies changes to a live room in one statement and returns the stored room.
// Параллельные PATCH разных полей не затирают друг друга: слияние делает COALESCE.
func (s *Storage) UpdateRoom(ctx context.Context, id string, changes storage.RoomChanges, at time.Time) (*models.Room, error) {
	query := `
		UPDATE rooms
		SET occupancy = COALESCE(?, occupancy),
			cleaning = COALESCE(?, cleaning),
			notes = COALESCE(?, notes),
			flagged = COALESCE(?, flagged),
			updated_at = ?
		WHERE id = ? AND deleted_at IS NULL
		RETURNING ` + roomColumns

	var occupancy, cleaning, notes, flagged any
	if changes.Occupancy != nil {
		occupancy = string(*changes.Occupancy)
	}
	if changes.Cleaning != nil {
		cleaning = string(*changes.Cleaning)
	}
	if changes.Notes != nil {
		notes = *changes.Notes
	}
	if changes.Flagged != nil {
		flagged = *changes.Flagged
	}

	room, err := scanRoom(s.db.QueryRowContext(ctx, query,
		occupancy, cleaning, notes, flagged, at.UTC(), id,
	))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrRoomNotFound
		}
		return nil, fmt.Errorf("failed to update room: %w", err)
	}

	return room, nil
}

// SoftDeleteRoom marks a live room deleted
func (s *Storage) SoftDeleteRoom(ctx context.Context, id string, at time.Time) error {
	query := `UPDATE rooms SET deleted_at = ?, updated_at = ? WHERE id = ? AND deleted_at IS NULL`

	result, err := s.db.ExecContext(ctx, query, at.UTC(), at.UTC(), id)
	if err != nil {
		return fmt.Errorf("failed to delete room: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rows == 0 {
		return storage.ErrRoomNotFound
	}

	return nil
}

// RestoreRoom clears the deletion mark and returns the room
func (s *Storage) RestoreRoom(ctx context.Context, id string, at time.Time) (*models.Room, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	var deletedAt sql.NullTime
	err = tx.QueryRowContext(ctx, `SELECT deleted_at FROM rooms WHERE id = ?`, id).Scan(&deletedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrRoomNotFound
		}
		return nil, fmt.Errorf("failed to get room: %w", err)
	}

	// Повторный restore ничего не меняет
	if deletedAt.Valid {
		_, err = tx.ExecContext(ctx,
			`UPDATE rooms SET deleted_at = NULL, updated_at = ? WHERE id = ?`, at.UTC(), id)
		if err != nil {
			if isUniqueViolation(err) {
				return nil, storage.ErrDuplicateRoomNumber
			}
			return nil, fmt.Errorf("failed to restore room: %w", err)
		}
	}

	room, err := scanRoom(tx.QueryRowContext(ctx, `SELECT `+roomColumns+` FROM rooms WHERE id = ?`, id))
	if err != nil {
		return nil, fmt.Errorf("failed to read restored room: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	return room, nil
}
