package failure

import (
	"errors"
	"net/http"
)

// Kind tags a Failure so callers can branch on the class of error without
// matching on message text.
const (
	KindValidation        = "validation"
	KindNotFound          = "not_found"
	KindForbidden         = "forbidden"
	KindUnauthorized      = "unauthorized"
	KindSlotConflict      = "slot_conflict"
	KindInvalidTransition = "invalid_transition"
	KindNotCancellable    = "not_cancellable"
)

// Failure is a wrapper for error messages and codes using standard HTTP response codes.
type Failure struct {
	Code    int    `json:"code"`
	Kind    string `json:"kind,omitempty"`
	Message string `json:"message"`
}

var InvalidPageParam = &Failure{Code: http.StatusBadRequest, Kind: KindValidation, Message: "invalid page parameter"}
var InvalidLimitParam = &Failure{Code: http.StatusBadRequest, Kind: KindValidation, Message: "invalid limit parameter"}
var ForbiddenError = &Failure{Code: http.StatusForbidden, Kind: KindForbidden, Message: "You don't have the required permissions"}

// Error returns the error message.
func (e *Failure) Error() string {
	return e.Message
}

// BadRequest returns a new Failure with code for bad requests.
func BadRequest(err error) error {
	if err != nil {
		return &Failure{
			Code:    http.StatusBadRequest,
			Kind:    KindValidation,
			Message: err.Error(),
		}
	}

	return nil
}

// BadRequestFromString returns a new Failure with code for bad requests with message set from string.
func BadRequestFromString(msg string) error {
	return &Failure{
		Code:    http.StatusBadRequest,
		Kind:    KindValidation,
		Message: msg,
	}
}

// Unauthorized returns a new Failure with code for unauthorized requests.
func Unauthorized(msg string) error {
	return &Failure{
		Code:    http.StatusUnauthorized,
		Kind:    KindUnauthorized,
		Message: msg,
	}
}

// InternalError returns a new Failure with code for internal error and message derived from an error interface.
func InternalError(err error) error {
	if err != nil {
		return &Failure{
			Code:    http.StatusInternalServerError,
			Message: err.Error(),
		}
	}

	return nil
}

// NotFound returns a new Failure with code for entity not found.
func NotFound(entityName string) error {
	return &Failure{
		Code:    http.StatusNotFound,
		Kind:    KindNotFound,
		Message: entityName,
	}
}

// Forbidden returns a new Failure with code for requests the actor may not perform.
func Forbidden(msg string) error {
	return &Failure{
		Code:    http.StatusForbidden,
		Kind:    KindForbidden,
		Message: msg,
	}
}

// SlotConflict returns a new Failure for a booking window that overlaps an
// existing non-terminal booking. Surfaced distinctly from plain validation so
// clients can offer picking another time.
func SlotConflict(msg string) error {
	return &Failure{
		Code:    http.StatusConflict,
		Kind:    KindSlotConflict,
		Message: msg,
	}
}

// InvalidTransition returns a new Failure for a status change the booking
// lifecycle does not permit.
func InvalidTransition(msg string) error {
	return &Failure{
		Code:    http.StatusUnprocessableEntity,
		Kind:    KindInvalidTransition,
		Message: msg,
	}
}

// NotCancellable returns a new Failure for a cancel attempt on a booking the
// actor may no longer cancel.
func NotCancellable(msg string) error {
	return &Failure{
		Code:    http.StatusConflict,
		Kind:    KindNotCancellable,
		Message: msg,
	}
}

// GetCode returns the error code of an error interface.
func GetCode(err error) int {
	var fail *Failure
	if errors.As(err, &fail) {
		return fail.Code
	}

	return http.StatusInternalServerError
}

// GetKind returns the failure kind of an error interface, or empty for
// infrastructure errors.
func GetKind(err error) string {
	var fail *Failure
	if errors.As(err, &fail) {
		return fail.Kind
	}

	return ""
}

// IsKind reports whether err is a Failure of the given kind.
func IsKind(err error, kind string) bool {
	return GetKind(err) == kind
}
