// Package schedule holds the booking rules that do not touch storage:
// time-slot conflict detection, the status lifecycle, and role policy.
package schedule

import (
	"time"

	"github.com/Fairanova/2026-room-booking-backend/internal/domains/booking/model"
)

// Slot is a half-open interval [Start, End) on a single calendar day.
// Only the clock component of Start and End is significant, so values
// parsed from requests and values scanned from the database compare
// equally regardless of their date or location.
type Slot struct {
	Date  time.Time
	Start time.Time
	End   time.Time
}

func FromBooking(booking model.Booking) Slot {
	return Slot{
		Date:  booking.BookingDate,
		Start: booking.StartTime,
		End:   booking.EndTime,
	}
}

func minutesOfDay(t time.Time) int {
	return t.Hour()*60 + t.Minute()
}

func sameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}

// IsValid reports whether the slot has a positive duration.
func (s Slot) IsValid() bool {
	return minutesOfDay(s.Start) < minutesOfDay(s.End)
}

// Overlaps reports whether two slots intersect. Intervals are half-open,
// so a slot ending at 10:00 does not conflict with one starting at 10:00.
func (s Slot) Overlaps(other Slot) bool {
	if !sameDay(s.Date, other.Date) {
		return false
	}

	return minutesOfDay(s.Start) < minutesOfDay(other.End) && minutesOfDay(s.End) > minutesOfDay(other.Start)
}

// IsBlocking reports whether a booking with the given status occupies its
// slot for conflict purposes. Rejected and cancelled bookings release the
// slot immediately.
func IsBlocking(status string) bool {
	return status == model.StatusPending || status == model.StatusApproved
}

// HasConflict reports whether the requested slot collides with any blocking
// booking in the given set, skipping the booking identified by excludeID.
func HasConflict(requested Slot, bookings []model.Booking, excludeID string) bool {
	for _, booking := range bookings {
		if booking.ID == excludeID {
			continue
		}

		if !IsBlocking(booking.Status) {
			continue
		}

		if requested.Overlaps(FromBooking(booking)) {
			return true
		}
	}

	return false
}
