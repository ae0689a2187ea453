package schedule

import (
	"github.com/Fairanova/2026-room-booking-backend/internal/domains/booking/model"
	"github.com/Fairanova/2026-room-booking-backend/shared/constant"
	"github.com/Fairanova/2026-room-booking-backend/shared/failure"
)

// Actor is the authenticated principal a booking operation runs as.
type Actor struct {
	ID   string
	Role string
}

// IsModerator reports whether the actor may decide booking requests.
func (a Actor) IsModerator() bool {
	return a.Role == constant.RoleStaff || a.Role == constant.RoleAdmin
}

// IsAdmin reports whether the actor has unrestricted booking access.
func (a Actor) IsAdmin() bool {
	return a.Role == constant.RoleAdmin
}

// Owns reports whether the actor created the given booking.
func (a Actor) Owns(booking model.Booking) bool {
	return a.ID != "" && a.ID == booking.CreatedBy
}

// CanSee reports whether the actor may read the given booking. Students
// only see their own bookings; callers hide the rest as not found so the
// response does not leak that the booking exists.
func (a Actor) CanSee(booking model.Booking) bool {
	return a.IsModerator() || a.Owns(booking)
}

// ScopedToOwn reports whether listings for the actor must be restricted
// to bookings they created.
func (a Actor) ScopedToOwn() bool {
	return !a.IsModerator()
}

// AuthorizeDecision checks whether the actor may approve or reject bookings.
func (a Actor) AuthorizeDecision() error {
	if !a.IsModerator() {
		return failure.Forbidden("only staff can decide booking requests") //nolint:wrapcheck
	}

	return nil
}

// AuthorizeCancellation checks whether the actor may cancel the given
// booking. Admins cancel any active booking; everyone else only their own,
// and only while it is still pending.
func (a Actor) AuthorizeCancellation(booking model.Booking) error {
	if a.IsAdmin() {
		return ValidateCancellation(booking.Status)
	}

	if !a.Owns(booking) {
		return failure.Forbidden("booking belongs to another user") //nolint:wrapcheck
	}

	if err := ValidateCancellation(booking.Status); err != nil {
		return err
	}

	if booking.Status != model.StatusPending {
		return failure.NotCancellable("only pending bookings can be cancelled by their owner") //nolint:wrapcheck
	}

	return nil
}
