package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"

	"github.com/iudanet/gophotel/internal/models"
	"github.com/iudanet/gophotel/internal/server/storage"
	"github.com/iudanet/gophotel/internal/validation"
	"github.com/iudanet/gophotel/pkg/api"
)

// RoomHandler обрабатывает запросы к доске номеров
type RoomHandler struct {
	responder
	rooms storage.RoomStorage
	clock clockwork.Clock
}

// NewRoomHandler создает handler номеров
func NewRoomHandler(logger *slog.Logger, rooms storage.RoomStorage, clock clockwork.Clock) *RoomHandler {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	return &RoomHandler{
		responder: responder{logger: logger},
		rooms:     rooms,
		clock:     clock,
	}
}

// List обрабатывает GET /api/v1/properties/{property}/rooms
func (h *RoomHandler) List(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	propertyID := r.PathValue("property")
	if err := validation.ValidatePropertyID(propertyID); err != nil {
		h.sendError(w, err.Error(), http.StatusBadRequest)
		return
	}

	rooms, err := h.rooms.ListRooms(ctx, propertyID)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to list rooms", slog.String("property_id", propertyID), slog.Any("error", err))
		h.sendError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	resp := api.RoomListResponse{Rooms: make([]api.RoomDTO, 0, len(rooms))}
	for _, room := range rooms {
		resp.Rooms = append(resp.Rooms, api.RoomFromModel(room))
	}

	h.sendJSON(w, resp, http.StatusOK)
}

// Create обрабатывает POST /api/v1/properties/{property}/rooms
func (h *RoomHandler) Create(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	propertyID := r.PathValue("property")
	if err := validation.ValidatePropertyID(propertyID); err != nil {
		h.sendError(w, err.Error(), http.StatusBadRequest)
		return
	}

	var req api.CreateRoomRequest
	if err := decodeJSON(w, r, &req); err != nil {
		h.logger.WarnContext(ctx, "failed to decode create room request", slog.Any("error", err))
		h.sendError(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if err := req.Validate(); err != nil {
		h.sendError(w, err.Error(), http.StatusBadRequest)
		return
	}
	if err := validation.ValidateRoom(req.Number, req.Floor, req.Kind); err != nil {
		h.sendError(w, err.Error(), http.StatusBadRequest)
		return
	}

	now := h.clock.Now()
	room := &models.Room{
		CreatedAt:  now,
		UpdatedAt:  now,
		ID:         uuid.New().String(),
		PropertyID: propertyID,
		Kind:       req.Kind,
		Occupancy:  models.OccupancyStatus(req.Occupancy),
		Cleaning:   models.CleaningStatus(req.Cleaning),
		Notes:      req.Notes,
		Number:     req.Number,
		Floor:      req.Floor,
		Flagged:    req.Flagged,
	}

	if err := h.rooms.CreateRoom(ctx, room); err != nil {
		if errors.Is(err, storage.ErrDuplicateRoomNumber) {
			h.sendError(w, "room number already exists", http.StatusConflict)
			return
		}
		h.logger.ErrorContext(ctx, "failed to create room", slog.Any("error", err))
		h.sendError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	h.logger.InfoContext(ctx, "room created",
		slog.String("property_id", propertyID),
		slog.String("room_id", room.ID),
		slog.Int("number", room.Number))

	h.sendJSON(w, api.RoomFromModel(*room), http.StatusCreated)
}

// Patch обрабатывает PATCH /api/v1/rooms/{id}
func (h *RoomHandler) Patch(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id := r.PathValue("id")

	var patch api.RoomPatch
	if err := decodeJSON(w, r, &patch); err != nil {
		h.logger.WarnContext(ctx, "failed to decode room patch", slog.Any("error", err))
		h.sendError(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if err := patch.Validate(); err != nil {
		h.sendError(w, err.Error(), http.StatusBadRequest)
		return
	}

	updated, err := h.rooms.UpdateRoom(ctx, id, roomChanges(patch), h.clock.Now())
	if err != nil {
		h.sendStorageError(w, r, "failed to update room", err)
		return
	}

	h.logger.DebugContext(ctx, "room updated", slog.String("room_id", id))

	h.sendJSON(w, api.RoomFromModel(*updated), http.StatusOK)
}

// Delete обрабатывает DELETE /api/v1/rooms/{id}
// Номер помечается удаленным и может быть восстановлен
func (h *RoomHandler) Delete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id := r.PathValue("id")

	if err := h.rooms.SoftDeleteRoom(ctx, id, h.clock.Now()); err != nil {
		h.sendStorageError(w, r, "failed to delete room", err)
		return
	}

	h.logger.InfoContext(ctx, "room deleted", slog.String("room_id", id))

	w.WriteHeader(http.StatusNoContent)
}

// Restore обрабатывает POST /api/v1/rooms/{id}/restore
func (h *RoomHandler) Restore(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id := r.PathValue("id")

	room, err := h.rooms.RestoreRoom(ctx, id, h.clock.Now())
	if err != nil {
		h.sendStorageError(w, r, "failed to restore room", err)
		return
	}

	h.logger.InfoContext(ctx, "room restored", slog.String("room_id", id))

	h.sendJSON(w, api.RoomFromModel(*room), http.StatusOK)
}

// roomChanges переводит тело PATCH в изменения хранилища
func roomChanges(patch api.RoomPatch) storage.RoomChanges {
	changes := storage.RoomChanges{Notes: patch.Notes, Flagged: patch.Flagged}
	if patch.Occupancy != nil {
		occupancy := models.OccupancyStatus(*patch.Occupancy)
		changes.Occupancy = &occupancy
	}
	if patch.Cleaning != nil {
		cleaning := models.CleaningStatus(*patch.Cleaning)
		changes.Cleaning = &cleaning
	}
	return changes
}

// sendStorageError переводит ошибки хранилища в HTTP статусы
func (h *RoomHandler) sendStorageError(w http.ResponseWriter, r *http.Request, msg string, err error) {
	switch {
	case errors.Is(err, storage.ErrRoomNotFound):
		h.sendError(w, "room not found", http.StatusNotFound)
	case errors.Is(err, storage.ErrDuplicateRoomNumber):
		h.sendError(w, "room number already exists", http.StatusConflict)
	default:
		h.logger.ErrorContext(r.Context(), msg, slog.String("room_id", r.PathValue("id")), slog.Any("error", err))
		h.sendError(w, "internal server error", http.StatusInternalServerError)
	}
}
