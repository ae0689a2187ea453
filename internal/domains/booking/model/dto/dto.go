package dto

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/Fairanova/2026-room-booking-backend/internal/domains/booking/model"
	"github.com/Fairanova/2026-room-booking-backend/internal/domains/booking/schedule"
	"github.com/Fairanova/2026-room-booking-backend/shared"
	"github.com/Fairanova/2026-room-booking-backend/shared/constant"
	gDto "github.com/Fairanova/2026-room-booking-backend/shared/dto"
	"github.com/Fairanova/2026-room-booking-backend/shared/failure"
	gModel "github.com/Fairanova/2026-room-booking-backend/shared/model"
	"github.com/Fairanova/2026-room-booking-backend/shared/timezone"
)

type CreateBookingRequest struct {
	RoomID      string `json:"room_id" validate:"required,uuid"`
	BookingDate string `json:"booking_date" validate:"required,dateformat"`
	StartTime   string `json:"start_time" validate:"required,clockformat"`
	EndTime     string `json:"end_time" validate:"required,clockformat"`
	Purpose     string `json:"purpose" validate:"required,max=500"`
}

func (c *CreateBookingRequest) ToModel(user string) (model.Booking, error) {
	bookingDate, err := timezone.Parse(constant.DateFormat, c.BookingDate)
	if err != nil {
		return model.Booking{}, failure.BadRequest(fmt.Errorf("invalid booking date: %w", err)) //nolint:wrapcheck
	}

	startTime, err := timezone.Parse(constant.ClockFormat, c.StartTime)
	if err != nil {
		return model.Booking{}, failure.BadRequest(fmt.Errorf("invalid start time: %w", err)) //nolint:wrapcheck
	}

	endTime, err := timezone.Parse(constant.ClockFormat, c.EndTime)
	if err != nil {
		return model.Booking{}, failure.BadRequest(fmt.Errorf("invalid end time: %w", err)) //nolint:wrapcheck
	}

	return model.Booking{
		ID:          uuid.NewString(),
		RoomID:      c.RoomID,
		BookingDate: bookingDate,
		StartTime:   startTime,
		EndTime:     endTime,
		Purpose:     c.Purpose,
		Status:      model.StatusPending,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}, nil
}

type AvailableRoomsRequest struct {
	Date      string `json:"date"       validate:"required,dateformat"`
	StartTime string `json:"start_time" validate:"required,clockformat"`
	EndTime   string `json:"end_time"   validate:"required,clockformat"`
}

func (a *AvailableRoomsRequest) ToSlot() (schedule.Slot, error) {
	date, err := timezone.Parse(constant.DateFormat, a.Date)
	if err != nil {
		return schedule.Slot{}, failure.BadRequest(fmt.Errorf("invalid date: %w", err)) //nolint:wrapcheck
	}

	start, err := timezone.Parse(constant.ClockFormat, a.StartTime)
	if err != nil {
		return schedule.Slot{}, failure.BadRequest(fmt.Errorf("invalid start time: %w", err)) //nolint:wrapcheck
	}

	end, err := timezone.Parse(constant.ClockFormat, a.EndTime)
	if err != nil {
		return schedule.Slot{}, failure.BadRequest(fmt.Errorf("invalid end time: %w", err)) //nolint:wrapcheck
	}

	return schedule.Slot{Date: date, Start: start, End: end}, nil
}

type UpdateStatusRequest struct {
	Status          string `json:"status" validate:"required"`
	RejectionReason string `json:"rejection_reason" validate:"required_if=Status rejected,omitempty,max=500"`
}

type BookingResponse struct {
	ID              string  `json:"id"`
	RoomID          string  `json:"room_id"`
	RoomCode        string  `json:"room_code"`
	RoomName        string  `json:"room_name"`
	OwnerName       string  `json:"owner_name"`
	BookingDate     string  `json:"booking_date"`
	StartTime       string  `json:"start_time"`
	EndTime         string  `json:"end_time"`
	Purpose         string  `json:"purpose"`
	Status          string  `json:"status"`
	RejectionReason *string `json:"rejection_reason,omitempty"`
	gDto.Metadata
}

func (r *BookingResponse) FromModel(mod model.Booking) {
	r.ID = mod.ID
	r.RoomID = mod.RoomID
	r.RoomCode = mod.RoomCode
	r.RoomName = mod.RoomName
	r.OwnerName = mod.OwnerName
	r.BookingDate = mod.BookingDate.Format(constant.DateFormat)
	r.StartTime = mod.StartTime.Format(constant.ClockFormat)
	r.EndTime = mod.EndTime.Format(constant.ClockFormat)
	r.Purpose = mod.Purpose
	r.Status = mod.Status
	r.RejectionReason = mod.RejectionReason
	r.Metadata.FromModel(mod.Metadata)
}

type GetBookingsResponse struct {
	Bookings  []BookingResponse `json:"bookings"`
	TotalPage int               `json:"total_page"`
	TotalData int               `json:"total_data"`
}

func (r *GetBookingsResponse) FromModels(models []model.Booking, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Bookings = make([]BookingResponse, len(models))
	for i, mod := range models {
		r.Bookings[i].FromModel(mod)
	}
}
