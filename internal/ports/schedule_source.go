package ports

import (
	"context"
	"route-roster-service/internal/domain"
)

// Contract for looking up the rotation of each vehicle.
type ScheduleSource interface {
	// Return the rotation of a vehicle, or domain.ErrUnknownVehicle.
	Schedule(ctx context.Context, vehicleID string) (domain.RouteSchedule, error)
	// Return every known vehicle identifier.
	Vehicles(ctx context.Context) ([]string, error)
}
