package model

import (
	"time"

	"github.com/Fairanova/2026-room-booking-backend/shared/model"
)

const (
	TableName  = "room_bookings"
	EntityName = "booking"

	FieldID              = "id"
	FieldRoomID          = "room_id"
	FieldBookingDate     = "booking_date"
	FieldStartTime       = "start_time"
	FieldEndTime         = "end_time"
	FieldPurpose         = "purpose"
	FieldStatus          = "status"
	FieldRejectionReason = "rejection_reason"
	FieldCreatedBy       = "created_by"
)

const (
	StatusPending   = "pending"
	StatusApproved  = "approved"
	StatusRejected  = "rejected"
	StatusCancelled = "cancelled"
)

type Booking struct {
	ID              string    `db:"id"`
	RoomID          string    `db:"room_id"`
	BookingDate     time.Time `db:"booking_date"`
	StartTime       time.Time `db:"start_time"`
	EndTime         time.Time `db:"end_time"`
	Purpose         string    `db:"purpose"`
	Status          string    `db:"status"`
	RejectionReason *string   `db:"rejection_reason"`
	RoomCode        string    `db:"room_code" table:"rooms"`
	RoomName        string    `db:"room_name" table:"rooms"`
	OwnerName       string    `db:"owner_name" column:"name" table:"users"`
	model.Metadata
}

func (Booking) GetJoinQuery() string {
	return "JOIN rooms ON rooms.id = room_bookings.room_id JOIN users ON users.id = room_bookings.created_by"
}
