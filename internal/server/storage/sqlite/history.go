package sqlite

import (
	"context"
	"fmt"

	"github.com/iudanet/gophotel/internal/models"
)

// AddHistory appends an audit entry
func (s *Storage) AddHistory(ctx context.Context, entry *models.HistoryEntry) error {
	query := `
		INSERT INTO history (id, actor_id, entity_id, action, created_at)
		VALUES (?, ?, ?, ?, ?)
	`

	_, err := s.db.ExecContext(ctx, query,
		entry.ID,
		entry.ActorID,
		entry.EntityID,
		entry.Action,
		entry.CreatedAt.UTC(),
	)
	if err != nil {
		return fmt.Errorf("failed to insert history entry: %w", err)
	}

	return nil
}

// ListHistory returns entries for one room, newest first
func (s *Storage) ListHistory(ctx context.Context, entityID string) ([]models.HistoryEntry, error) {
	query := `
		SELECT id, actor_id, entity_id, action, created_at
		FROM history
		WHERE entity_id = ?
		ORDER BY created_at DESC, rowid DESC
	`

	rows, err := s.db.QueryContext(ctx, query, entityID)
	if err != nil {
		return nil, fmt.Errorf("failed to query history: %w", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	entries := make([]models.HistoryEntry, 0)
	for rows.Next() {
		var e models.HistoryEntry
		if err := rows.Scan(&e.ID, &e.ActorID, &e.EntityID, &e.Action, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan history entry: %w", err)
		}
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return entries, nil
}
