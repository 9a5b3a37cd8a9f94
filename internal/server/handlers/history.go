package handlers

import (
	"log/slog"
	"net/http"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"

	"github.com/iudanet/gophotel/internal/models"
	"github.com/iudanet/gophotel/internal/server/storage"
	"github.com/iudanet/gophotel/pkg/api"
)

// HistoryHandler обрабатывает журнал аудита
type HistoryHandler struct {
	responder
	history storage.HistoryStorage
	clock   clockwork.Clock
}

// NewHistoryHandler создает handler журнала
func NewHistoryHandler(logger *slog.Logger, history storage.HistoryStorage, clock clockwork.Clock) *HistoryHandler {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	return &HistoryHandler{
		responder: responder{logger: logger},
		history:   history,
		clock:     clock,
	}
}

// Record обрабатывает POST /api/v1/history
// Сотрудник может писать в журнал только от своего имени
func (h *HistoryHandler) Record(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := GetUserID(ctx)
	if !ok {
		h.sendError(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	var req api.HistoryRequest
	if err := decodeJSON(w, r, &req); err != nil {
		h.logger.WarnContext(ctx, "failed to decode history request", slog.Any("error", err))
		h.sendError(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if err := req.Validate(); err != nil {
		h.sendError(w, err.Error(), http.StatusBadRequest)
		return
	}
	if req.ActorID != userID {
		h.logger.WarnContext(ctx, "history actor mismatch",
			slog.String("user_id", userID),
			slog.String("actor_id", req.ActorID))
		h.sendError(w, "actor_id does not match the authenticated user", http.StatusForbidden)
		return
	}

	entry := &models.HistoryEntry{
		CreatedAt: h.clock.Now(),
		ID:        uuid.New().String(),
		ActorID:   req.ActorID,
		EntityID:  req.EntityID,
		Action:    req.Action,
	}
	if err := h.history.AddHistory(ctx, entry); err != nil {
		h.logger.ErrorContext(ctx, "failed to record history", slog.Any("error", err))
		h.sendError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	h.sendJSON(w, historyDTO(*entry), http.StatusCreated)
}

// List обрабатывает GET /api/v1/rooms/{id}/history
func (h *HistoryHandler) List(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id := r.PathValue("id")

	entries, err := h.history.ListHistory(ctx, id)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to list history", slog.String("room_id", id), slog.Any("error", err))
		h.sendError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	resp := api.HistoryListResponse{Entries: make([]api.HistoryEntryDTO, 0, len(entries))}
	for _, e := range entries {
		resp.Entries = append(resp.Entries, historyDTO(e))
	}

	h.sendJSON(w, resp, http.StatusOK)
}

func historyDTO(e models.HistoryEntry) api.HistoryEntryDTO {
	return api.HistoryEntryDTO{
		CreatedAt: e.CreatedAt,
		ID:        e.ID,
		ActorID:   e.ActorID,
		EntityID:  e.EntityID,
		Action:    e.Action,
	}
}
