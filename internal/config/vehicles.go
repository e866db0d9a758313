package config

import (
	"errors"
	"fmt"
	"route-roster-service/internal/domain"
)

// VehicleConfig is one row of the schedule table.
type VehicleConfig struct {
	ID string `json:"id"`
	// Start is the first day of the rotation, YYYY-MM-DD.
	Start    string          `json:"start"`
	Segments []SegmentConfig `json:"segments"`
}

type SegmentConfig struct {
	Route string `json:"route"`
	Days  int    `json:"days"`
}

// Schedules converts the schedule table to domain schedules.
// Every schedule is validated.
func (c Config) Schedules() ([]domain.RouteSchedule, error) {
	if len(c.Vehicles) == 0 {
		return nil, errors.New("at least one vehicle is required")
	}

	out := make([]domain.RouteSchedule, 0, len(c.Vehicles))
	for i, v := range c.Vehicles {
		start, err := domain.ParseDate(v.Start)
		if err != nil {
			return nil, fmt.Errorf("vehicle %q (entry %d): start: %w", v.ID, i+1, err)
		}

		segments := make([]domain.Segment, len(v.Segments))
		for j, s := range v.Segments {
			segments[j] = domain.Segment{Route: s.Route, Days: s.Days}
		}

		sch := domain.RouteSchedule{VehicleID: v.ID, StartDate: start, Segments: segments}
		if err := sch.Validate(); err != nil {
			return nil, fmt.Errorf("vehicle %q (entry %d): %w", v.ID, i+1, err)
		}
		out = append(out, sch)
	}
	return out, nil
}
