package schedule

import (
	"fmt"

	"github.com/Fairanova/2026-room-booking-backend/internal/domains/booking/model"
	"github.com/Fairanova/2026-room-booking-backend/shared/failure"
)

// ValidStatus reports whether the given value is a known booking status.
func ValidStatus(status string) bool {
	switch status {
	case model.StatusPending, model.StatusApproved, model.StatusRejected, model.StatusCancelled:
		return true
	default:
		return false
	}
}

// ValidateTransition checks a moderation decision against the lifecycle.
// Cancelled is terminal, and moderation can only land on approved or
// rejected; re-deciding an already decided booking is allowed so a
// rejection can be reversed.
func ValidateTransition(current, next string) error {
	if !ValidStatus(next) {
		return failure.BadRequestFromString(fmt.Sprintf("unknown booking status: %s", next)) //nolint:wrapcheck
	}

	if current == model.StatusCancelled {
		return failure.InvalidTransition("booking has been cancelled and can no longer change status") //nolint:wrapcheck
	}

	if next != model.StatusApproved && next != model.StatusRejected {
		return failure.InvalidTransition(fmt.Sprintf("booking status cannot be set to %s", next)) //nolint:wrapcheck
	}

	return nil
}

// ValidateCancellation checks whether a booking in the given status can
// still be cancelled.
func ValidateCancellation(current string) error {
	if current == model.StatusCancelled {
		return failure.NotCancellable("booking is already cancelled") //nolint:wrapcheck
	}

	return nil
}
