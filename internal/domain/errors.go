package domain

import "errors"

var (
	// Malformed schedule configuration: no segments, a non-positive day count
	// or an empty route name.
	ErrInvalidSchedule = errors.New("invalid schedule")
	// Window end before window start, or a window over the size cap.
	ErrInvalidWindow = errors.New("invalid window")

	ErrUnknownVehicle = errors.New("unknown vehicle")
	ErrNotFound       = errors.New("not found")
	ErrInvalidInput   = errors.New("invalid input")

	ErrInvalidMovement      = errors.New("invalid movement")
	ErrInvalidTransition    = errors.New("invalid status transition")
	ErrConfirmationRequired = errors.New("confirmation required")
)
