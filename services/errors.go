// Package services holds the reservation service: the room and user
// registries, the booking ledger and the booking engine that ties them
// together. Failures are business-rule violations, never system errors, and
// are exposed as sentinel values so controllers can translate each kind into
// its own HTTP status.
package services

import "errors"

var (
	// ErrInvalidDateRange is returned when check-out is not strictly after
	// check-in (this also covers swapped dates).
	ErrInvalidDateRange = errors.New("invalid date range")

	// ErrUserNotFound is returned for an unknown user identifier.
	ErrUserNotFound = errors.New("user not found")

	// ErrRoomNotFound is returned for an unknown room identifier.
	ErrRoomNotFound = errors.New("room not found")

	// ErrRoomUnavailable is returned when the requested range overlaps an
	// existing booking for the same room.
	ErrRoomUnavailable = errors.New("room unavailable")

	// ErrInsufficientBalance is returned when the user cannot cover the
	// total price of the stay.
	ErrInsufficientBalance = errors.New("insufficient balance")
)
