package storage

import (
	"context"

	"github.com/iudanet/gophotel/internal/models"
)

// HistoryStorage defines interface for the audit log
type HistoryStorage interface {
	// AddHistory appends an entry
	AddHistory(ctx context.Context, entry *models.HistoryEntry) error

	// ListHistory returns entries for one room, newest first
	ListHistory(ctx context.Context, entityID string) ([]models.HistoryEntry, error)
}
