package api

import (
	"errors"
	"fmt"
	"time"

	"github.com/iudanet/gophotel/internal/models"
)

// ErrEmptyPatch is returned by RoomPatch.Validate when nothing would change
var ErrEmptyPatch = errors.New("patch has no fields")

// RoomDTO - номер в том виде, в каком он ходит по сети
type RoomDTO struct {
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
	ID         string    `json:"id"`
	PropertyID string    `json:"property_id"`
	Kind       string    `json:"kind"`
	Occupancy  string    `json:"occupancy"`
	Cleaning   string    `json:"cleaning"`
	Notes      string    `json:"notes"`
	Number     int       `json:"number"`
	Floor      int       `json:"floor"`
	Flagged    bool      `json:"flagged"`
}

// Validate rejects responses that do not describe a usable room
func (d RoomDTO) Validate() error {
	if d.PropertyID == "" {
		return fmt.Errorf("room %s: property_id is empty", d.ID)
	}
	return d.ToModel().Validate()
}

// ToModel converts the wire form into the domain model
func (d RoomDTO) ToModel() models.Room {
	return models.Room{
		CreatedAt:  d.CreatedAt,
		UpdatedAt:  d.UpdatedAt,
		ID:         d.ID,
		PropertyID: d.PropertyID,
		Kind:       d.Kind,
		Occupancy:  models.OccupancyStatus(d.Occupancy),
		Cleaning:   models.CleaningStatus(d.Cleaning),
		Notes:      d.Notes,
		Number:     d.Number,
		Floor:      d.Floor,
		Flagged:    d.Flagged,
	}
}

// RoomFromModel converts a domain room into its wire form
func RoomFromModel(r models.Room) RoomDTO {
	return RoomDTO{
		CreatedAt:  r.CreatedAt,
		UpdatedAt:  r.UpdatedAt,
		ID:         r.ID,
		PropertyID: r.PropertyID,
		Kind:       r.Kind,
		Occupancy:  string(r.Occupancy),
		Cleaning:   string(r.Cleaning),
		Notes:      r.Notes,
		Number:     r.Number,
		Floor:      r.Floor,
		Flagged:    r.Flagged,
	}
}

// CreateRoomRequest - тело POST /api/v1/properties/{property}/rooms
type CreateRoomRequest struct {
	Kind      string `json:"kind"`
	Occupancy string `json:"occupancy"`
	Cleaning  string `json:"cleaning"`
	Notes     string `json:"notes,omitempty"`
	Number    int    `json:"number"`
	Floor     int    `json:"floor"`
	Flagged   bool   `json:"flagged"`
}

// Validate checks the request before it reaches storage
func (r CreateRoomRequest) Validate() error {
	if r.Number <= 0 {
		return fmt.Errorf("number must be positive, got %d", r.Number)
	}
	if !models.OccupancyStatus(r.Occupancy).Valid() {
		return fmt.Errorf("unknown occupancy %q", r.Occupancy)
	}
	if !models.CleaningStatus(r.Cleaning).Valid() {
		return fmt.Errorf("unknown cleaning status %q", r.Cleaning)
	}
	return nil
}

// RoomPatch - тело PATCH /api/v1/rooms/{id}. nil поля не меняются.
type RoomPatch struct {
	Occupancy *string `json:"occupancy,omitempty"`
	Cleaning  *string `json:"cleaning,omitempty"`
	Notes     *string `json:"notes,omitempty"`
	Flagged   *bool   `json:"flagged,omitempty"`
}

// Validate rejects empty patches and unknown status values
func (p RoomPatch) Validate() error {
	if p.Occupancy == nil && p.Cleaning == nil && p.Notes == nil && p.Flagged == nil {
		return ErrEmptyPatch
	}
	if p.Occupancy != nil && !models.OccupancyStatus(*p.Occupancy).Valid() {
		return fmt.Errorf("unknown occupancy %q", *p.Occupancy)
	}
	if p.Cleaning != nil && !models.CleaningStatus(*p.Cleaning).Valid() {
		return fmt.Errorf("unknown cleaning status %q", *p.Cleaning)
	}
	return nil
}

// RoomListResponse - ответ GET /api/v1/properties/{property}/rooms
type RoomListResponse struct {
	Rooms []RoomDTO `json:"rooms"`
}
