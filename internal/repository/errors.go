// Package repository defines error types that are reused across multiple
// repositories. These sentinel values allow higher layers such as
// handlers to distinguish between different failure scenarios. For
// example, ErrForbidden indicates that the current user is not
// authorized to perform an operation on a resource owned by
// someone else, while ErrConflict signals that an operation
// cannot proceed because of the record's current state (e.g.
// canceling a completed booking).
package repository

import "errors"

// ErrEmailExists is returned when a registration collides with an
// existing account.  Handlers translate this into HTTP 409.
var ErrEmailExists = errors.New("email already exists")

// ErrUserNotFound is returned when a referenced user row is absent.
var ErrUserNotFound = errors.New("user not found")

// ErrHotelNotFound is returned when a referenced hotel row is absent.
var ErrHotelNotFound = errors.New("hotel not found")

// ErrRoomTypeNotFound is returned when a booking references a room type
// that does not exist or does not belong to the given hotel.
var ErrRoomTypeNotFound = errors.New("room type not found")

// ErrBookingNotFound is returned when a referenced booking row is absent.
var ErrBookingNotFound = errors.New("booking not found")

// ErrForbidden is returned when the caller attempts an operation
// on a resource they do not own. Handlers should translate this
// into an HTTP 403 response.
var ErrForbidden = errors.New("forbidden")

// ErrConflict is returned when an update cannot be performed because of
// conflicting state, such as canceling a booking that already completed.
// Handlers should translate this into an HTTP 409 response.
var ErrConflict = errors.New("conflict")
