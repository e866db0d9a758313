package services

import (
	"context"
	"errors"
	"fmt"
	"route-roster-service/internal/domain"
	"route-roster-service/internal/platform/logger"
	"route-roster-service/internal/platform/metrics"
	"route-roster-service/internal/platform/obs"
	"route-roster-service/internal/ports"
	"strings"
	"time"
)

// Roster is the generated calendar of one vehicle over a window.
type Roster struct {
	VehicleID   string
	Window      domain.Window
	Assignments []domain.Assignment
	Months      []domain.MonthGroup
}

// RosterService resolves vehicle schedules and generates their rosters.
// Cache and Metrics are optional.
type RosterService struct {
	Source   ports.ScheduleSource
	Cache    ports.RosterCache
	CacheTTL time.Duration
	Policy   domain.WindowPolicy
	Locale   Locale
	Metrics  *metrics.Recorder
	Log      logger.Logger
}

func (s *RosterService) log() logger.Logger {
	if s.Log == nil {
		return logger.NopLogger{}
	}
	return s.Log
}

// Vehicles lists the vehicles that have a schedule.
func (s *RosterService) Vehicles(ctx context.Context) ([]string, error) {
	ids, err := s.Source.Vehicles(ctx)
	if err != nil {
		return nil, fmt.Errorf("list vehicles: %w", err)
	}
	return ids, nil
}

// WindowAround applies the configured display policy to today.
func (s *RosterService) WindowAround(today domain.Date) domain.Window {
	return s.Policy.Around(today)
}

// Build generates the roster of a vehicle over w and groups it by month.
func (s *RosterService) Build(ctx context.Context, vehicleID string, w domain.Window) (_ *Roster, err error) {
	defer obs.Time(ctx, "roster.Build")(&err)

	// Ids come from request paths; only resolved vehicles get their own series.
	label, outcome := metrics.VehicleUnknown, metrics.OutcomeFailed
	defer func() { s.Metrics.ObserveRoster(label, outcome) }()

	vehicleID = strings.TrimSpace(vehicleID)
	if vehicleID == "" {
		return nil, fmt.Errorf("build roster: %w: vehicle id must not be empty", domain.ErrUnknownVehicle)
	}
	if err := s.Policy.Check(w); err != nil {
		return nil, fmt.Errorf("build roster vehicle=%q: %w", vehicleID, err)
	}

	schedule, err := s.Source.Schedule(ctx, vehicleID)
	if err != nil {
		return nil, fmt.Errorf("build roster vehicle=%q: %w", vehicleID, err)
	}
	label = vehicleID

	var assignments []domain.Assignment
	assignments, outcome, err = s.assignments(ctx, vehicleID, schedule, w)
	if err != nil {
		return nil, fmt.Errorf("build roster vehicle=%q: %w", vehicleID, err)
	}

	return &Roster{
		VehicleID:   vehicleID,
		Window:      w,
		Assignments: assignments,
		Months:      GroupByMonth(assignments, s.Locale),
	}, nil
}

func (s *RosterService) assignments(ctx context.Context, vehicleID string, schedule domain.RouteSchedule, w domain.Window) ([]domain.Assignment, string, error) {
	key := domain.RosterKey{VehicleID: vehicleID, Schedule: schedule.Fingerprint(), Window: w}

	// Cache errors never fail the request; the roster is cheap to regenerate.
	if s.Cache != nil {
		cached, ok, err := s.Cache.Get(ctx, key)
		switch {
		case err != nil:
			s.log().Warnf("roster cache read failed vehicle=%s: %v", key.VehicleID, err)
		case ok:
			return cached, metrics.OutcomeCached, nil
		}
	}

	assignments, err := GenerateRoster(schedule, w.Start, w.End)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidSchedule) {
			s.log().Errorf("schedule configuration defect vehicle=%s: %v", key.VehicleID, err)
		}
		return nil, metrics.OutcomeFailed, err
	}

	if s.Cache != nil {
		if err := s.Cache.Put(ctx, key, assignments, s.CacheTTL); err != nil {
			s.log().Warnf("roster cache write failed vehicle=%s: %v", key.VehicleID, err)
		}
	}

	return assignments, metrics.OutcomeGenerated, nil
}
