package model

import (
	"github.com/lib/pq"

	"github.com/Fairanova/2026-room-booking-backend/shared/model"
)

const (
	TableName  = "rooms"
	EntityName = "room"

	FieldID         = "id"
	FieldRoomCode   = "room_code"
	FieldRoomName   = "room_name"
	FieldBuilding   = "building"
	FieldFloor      = "floor"
	FieldCapacity   = "capacity"
	FieldFacilities = "facilities"
	FieldActive     = "active"
)

type Room struct {
	ID         string         `db:"id"`
	RoomCode   string         `db:"room_code"`
	RoomName   string         `db:"room_name"`
	Building   string         `db:"building"`
	Floor      int            `db:"floor"`
	Capacity   int            `db:"capacity"`
	Facilities pq.StringArray `db:"facilities"`
	Active     bool           `db:"active"`
	model.Metadata
}
