package dto

import (
	"github.com/google/uuid"

	"github.com/Fairanova/2026-room-booking-backend/internal/domains/room/model"
	"github.com/Fairanova/2026-room-booking-backend/shared"
	gDto "github.com/Fairanova/2026-room-booking-backend/shared/dto"
	gModel "github.com/Fairanova/2026-room-booking-backend/shared/model"
	"github.com/Fairanova/2026-room-booking-backend/shared/timezone"
)

type CreateRoomRequest struct {
	RoomCode   string   `json:"room_code"  validate:"required,max=20"`
	RoomName   string   `json:"room_name"  validate:"required,max=100"`
	Building   string   `json:"building"   validate:"omitempty,max=100"`
	Floor      int      `json:"floor"      validate:"omitempty"`
	Capacity   int      `json:"capacity"   validate:"omitempty,min=0"`
	Facilities []string `json:"facilities" validate:"omitempty,dive,max=50"`
	Active     *bool    `json:"active"     validate:"omitempty"`
}

func (c *CreateRoomRequest) ToModel(user string) model.Room {
	active := true
	if c.Active != nil {
		active = *c.Active
	}

	return model.Room{
		ID:         uuid.NewString(),
		RoomCode:   c.RoomCode,
		RoomName:   c.RoomName,
		Building:   c.Building,
		Floor:      c.Floor,
		Capacity:   c.Capacity,
		Facilities: c.Facilities,
		Active:     active,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type UpdateRoomRequest struct {
	RoomCode   string   `db:"room_code"  json:"room_code"  validate:"omitempty,max=20"`
	RoomName   string   `db:"room_name"  json:"room_name"  validate:"omitempty,max=100"`
	Building   string   `db:"building"   json:"building"   validate:"omitempty,max=100"`
	Floor      *int     `db:"floor"      json:"floor"      validate:"omitempty"`
	Capacity   *int     `db:"capacity"   json:"capacity"   validate:"omitempty,min=0"`
	Facilities []string `json:"facilities" validate:"omitempty,dive,max=50"`
	Active     *bool    `db:"active"     json:"active"     validate:"omitempty"`
}

type RoomResponse struct {
	ID         string   `json:"id"`
	RoomCode   string   `json:"room_code"`
	RoomName   string   `json:"room_name"`
	Building   string   `json:"building"`
	Floor      int      `json:"floor"`
	Capacity   int      `json:"capacity"`
	Facilities []string `json:"facilities"`
	Active     bool     `json:"active"`
	gDto.Metadata
}

func (r *RoomResponse) FromModel(mod model.Room) {
	r.ID = mod.ID
	r.RoomCode = mod.RoomCode
	r.RoomName = mod.RoomName
	r.Building = mod.Building
	r.Floor = mod.Floor
	r.Capacity = mod.Capacity
	r.Facilities = mod.Facilities
	r.Active = mod.Active
	r.Metadata.FromModel(mod.Metadata)
}

type GetRoomsResponse struct {
	Rooms     []RoomResponse `json:"rooms"`
	TotalPage int            `json:"total_page"`
	TotalData int            `json:"total_data"`
}

func (r *GetRoomsResponse) FromModels(models []model.Room, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Rooms = make([]RoomResponse, len(models))
	for i, mod := range models {
		r.Rooms[i].FromModel(mod)
	}
}
