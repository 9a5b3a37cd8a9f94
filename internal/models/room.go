package models

import (
	"fmt"
	"time"
)

// OccupancyStatus состояние заселенности номера
type OccupancyStatus string

const (
	OccupancyVacant   OccupancyStatus = "vacant"
	OccupancyOccupied OccupancyStatus = "occupied"
)

// Valid reports whether s is a known occupancy status
func (s OccupancyStatus) Valid() bool {
	switch s {
	case OccupancyVacant, OccupancyOccupied:
		return true
	}
	return false
}

// CleaningStatus состояние уборки номера
type CleaningStatus string

const (
	CleaningDirty      CleaningStatus = "dirty"
	CleaningInProgress CleaningStatus = "in_progress"
	CleaningClean      CleaningStatus = "clean"
	CleaningInspected  CleaningStatus = "inspected"
)

// Valid reports whether s is a known cleaning status
func (s CleaningStatus) Valid() bool {
	switch s {
	case CleaningDirty, CleaningInProgress, CleaningClean, CleaningInspected:
		return true
	}
	return false
}

// RoomKind тип номера
const (
	RoomKindStandard = "standard"
	RoomKindDouble   = "double"
	RoomKindSuite    = "suite"
)

// Room представляет гостиничный номер на доске статусов.
type Room struct {
	CreatedAt  time.Time       `json:"created_at"`  // CreatedAt время создания (выставляется сервером)
	UpdatedAt  time.Time       `json:"updated_at"`  // UpdatedAt время последнего изменения
	ID         string          `json:"id"`          // ID серверный UUID, либо local-<uuid> для черновика
	PropertyID string          `json:"property_id"` // PropertyID объект размещения (отель)
	Kind       string          `json:"kind"`        // Kind тип номера: standard, double, suite
	Occupancy  OccupancyStatus `json:"occupancy"`   // Occupancy заселен или свободен
	Cleaning   CleaningStatus  `json:"cleaning"`    // Cleaning состояние уборки
	Notes      string          `json:"notes"`       // Notes заметки для горничных
	Number     int             `json:"number"`      // Number номер комнаты (205)
	Floor      int             `json:"floor"`       // Floor этаж
	Flagged    bool            `json:"flagged"`     // Flagged требуется внимание (ремонт, жалоба)
}

// EntityID возвращает идентификатор записи
func (r Room) EntityID() string {
	return r.ID
}

// Validate проверяет, что запись пришла в ожидаемом виде
func (r Room) Validate() error {
	if r.ID == "" {
		return fmt.Errorf("room id is empty")
	}
	if r.Number <= 0 {
		return fmt.Errorf("room %s: number must be positive, got %d", r.ID, r.Number)
	}
	if !r.Occupancy.Valid() {
		return fmt.Errorf("room %s: unknown occupancy %q", r.ID, r.Occupancy)
	}
	if !r.Cleaning.Valid() {
		return fmt.Errorf("room %s: unknown cleaning status %q", r.ID, r.Cleaning)
	}
	return nil
}

// HistoryAction действие, попадающее в журнал аудита
const (
	HistoryActionCreate  = "create"
	HistoryActionDelete  = "delete"
	HistoryActionRestore = "restore"
	HistoryActionDiscard = "discard"
)

// HistoryEntry запись журнала аудита: кто и что сделал с записью
type HistoryEntry struct {
	CreatedAt time.Time `json:"created_at"`
	ID        string    `json:"id"`
	ActorID   string    `json:"actor_id"`
	EntityID  string    `json:"entity_id"`
	Action    string    `json:"action"`
}
