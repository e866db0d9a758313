package schedules

import (
	"context"
	"fmt"
	"route-roster-service/internal/domain"
	"sort"
	"strconv"
	"strings"
)

// In-memory ScheduleSource backed by the configured schedule table.
type StaticSource struct {
	byVehicle map[string]domain.RouteSchedule
	vehicles  []string
}

// NewStaticSource indexes the schedules by vehicle id.
// Schedules are stored as given; they are validated when a roster is generated.
func NewStaticSource(schedules []domain.RouteSchedule) (*StaticSource, error) {
	s := &StaticSource{byVehicle: make(map[string]domain.RouteSchedule, len(schedules))}

	for i, sch := range schedules {
		id := strings.TrimSpace(sch.VehicleID)
		if id == "" {
			return nil, fmt.Errorf("static schedule source: entry %d: empty vehicle id", i+1)
		}
		if _, dup := s.byVehicle[id]; dup {
			return nil, fmt.Errorf("static schedule source: duplicate vehicle %q", id)
		}
		sch.VehicleID = id
		s.byVehicle[id] = sch
		s.vehicles = append(s.vehicles, id)
	}

	sortVehicleIDs(s.vehicles)
	return s, nil
}

// Return the rotation of a vehicle.
func (s *StaticSource) Schedule(_ context.Context, vehicleID string) (domain.RouteSchedule, error) {
	sch, ok := s.byVehicle[strings.TrimSpace(vehicleID)]
	if !ok {
		return domain.RouteSchedule{}, fmt.Errorf("vehicle %q: %w", vehicleID, domain.ErrUnknownVehicle)
	}

	sch.Segments = append([]domain.Segment(nil), sch.Segments...)
	return sch, nil
}

// Return every vehicle id, numeric ids in numeric order first.
func (s *StaticSource) Vehicles(_ context.Context) ([]string, error) {
	return append([]string(nil), s.vehicles...), nil
}

func sortVehicleIDs(ids []string) {
	sort.SliceStable(ids, func(i, j int) bool {
		a, errA := strconv.Atoi(ids[i])
		b, errB := strconv.Atoi(ids[j])
		switch {
		case errA == nil && errB == nil:
			return a < b
		case errA == nil:
			return true
		case errB == nil:
			return false
		default:
			return ids[i] < ids[j]
		}
	})
}
