package api

import (
	"fmt"
	"time"

	"github.com/iudanet/gophotel/internal/models"
)

// HistoryRequest - тело POST /api/v1/history
type HistoryRequest struct {
	ActorID  string `json:"actor_id"`  // должен совпадать с пользователем из токена
	EntityID string `json:"entity_id"` // ID номера
	Action   string `json:"action"`    // create, delete, restore, discard
}

// Validate checks required fields and the action name
func (r HistoryRequest) Validate() error {
	if r.ActorID == "" || r.EntityID == "" {
		return fmt.Errorf("actor_id and entity_id are required")
	}
	switch r.Action {
	case models.HistoryActionCreate, models.HistoryActionDelete,
		models.HistoryActionRestore, models.HistoryActionDiscard:
		return nil
	}
	return fmt.Errorf("unknown history action %q", r.Action)
}

// HistoryEntryDTO одна запись журнала
type HistoryEntryDTO struct {
	CreatedAt time.Time `json:"created_at"`
	ID        string    `json:"id"`
	ActorID   string    `json:"actor_id"`
	EntityID  string    `json:"entity_id"`
	Action    string    `json:"action"`
}

// HistoryListResponse - ответ GET /api/v1/rooms/{id}/history
type HistoryListResponse struct {
	Entries []HistoryEntryDTO `json:"entries"`
}
