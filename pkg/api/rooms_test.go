package api

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/gophotel/internal/models"
)

func strPtr(s string) *string { return &s }
func boolPtr(b bool) *bool    { return &b }

func validRoom() RoomDTO {
	return RoomDTO{
		ID:         "room-1",
		PropertyID: "hotel-1",
		Kind:       models.RoomKindStandard,
		Occupancy:  "vacant",
		Cleaning:   "clean",
		Number:     101,
		Floor:      1,
	}
}

func TestRoomDTO_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(d *RoomDTO)
		wantErr bool
	}{
		{name: "valid", mutate: func(d *RoomDTO) {}},
		{name: "missing id", mutate: func(d *RoomDTO) { d.ID = "" }, wantErr: true},
		{name: "missing property", mutate: func(d *RoomDTO) { d.PropertyID = "" }, wantErr: true},
		{name: "zero number", mutate: func(d *RoomDTO) { d.Number = 0 }, wantErr: true},
		{name: "unknown occupancy", mutate: func(d *RoomDTO) { d.Occupancy = "booked" }, wantErr: true},
		{name: "unknown cleaning", mutate: func(d *RoomDTO) { d.Cleaning = "sparkling" }, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := validRoom()
			tt.mutate(&d)
			err := d.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestRoomDTO_ModelConversion(t *testing.T) {
	d := validRoom()
	d.Flagged = true
	d.Notes = "leaking tap"

	m := d.ToModel()
	assert.Equal(t, models.OccupancyVacant, m.Occupancy)
	assert.Equal(t, models.CleaningClean, m.Cleaning)
	assert.Equal(t, d, RoomFromModel(m))
}

func TestRoomPatch_Validate(t *testing.T) {
	assert.ErrorIs(t, RoomPatch{}.Validate(), ErrEmptyPatch)
	assert.NoError(t, RoomPatch{Flagged: boolPtr(true)}.Validate())
	assert.NoError(t, RoomPatch{Occupancy: strPtr("occupied")}.Validate())
	assert.Error(t, RoomPatch{Occupancy: strPtr("booked")}.Validate())
	assert.Error(t, RoomPatch{Cleaning: strPtr("")}.Validate())
}

func TestCreateRoomRequest_Validate(t *testing.T) {
	req := CreateRoomRequest{Number: 205, Floor: 2, Occupancy: "vacant", Cleaning: "dirty"}
	require.NoError(t, req.Validate())

	req.Number = -1
	assert.Error(t, req.Validate())
}

func TestHistoryRequest_Validate(t *testing.T) {
	ok := HistoryRequest{ActorID: "u1", EntityID: "r1", Action: models.HistoryActionRestore}
	assert.NoError(t, ok.Validate())

	assert.Error(t, HistoryRequest{ActorID: "u1", EntityID: "r1", Action: "update"}.Validate())
	assert.Error(t, HistoryRequest{EntityID: "r1", Action: "create"}.Validate())
}
