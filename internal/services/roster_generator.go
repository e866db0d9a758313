package services

import (
	"fmt"
	"route-roster-service/internal/domain"
	"sort"
)

// cycle is a RouteSchedule flattened into cumulative day boundaries.
// ends[i] is the first day offset after segment i within one cycle.
type cycle struct {
	start  domain.Date
	ends   []int
	routes []string
	length int
}

func newCycle(schedule domain.RouteSchedule) (cycle, error) {
	if err := schedule.Validate(); err != nil {
		return cycle{}, err
	}

	c := cycle{
		start:  schedule.StartDate,
		ends:   make([]int, len(schedule.Segments)),
		routes: make([]string, len(schedule.Segments)),
	}
	for i, seg := range schedule.Segments {
		c.length += seg.Days
		c.ends[i] = c.length
		c.routes[i] = seg.Route
	}

	return c, nil
}

// routeOn returns the route assigned to d. Offsets before the start date wrap
// with floor modulo so the day before day zero is the last day of the cycle.
func (c cycle) routeOn(d domain.Date) string {
	pos := d.DaysSince(c.start) % c.length
	if pos < 0 {
		pos += c.length
	}

	i := sort.Search(len(c.ends), func(i int) bool { return c.ends[i] > pos })
	return c.routes[i]
}

// GenerateRoster assigns a route to every day of [windowStart, windowEnd].
//
// The schedule's segments repeat forever from StartDate in both directions.
// Each date is resolved independently through the cycle's prefix sums, so the
// cost depends on the window size only, not on how far the window lies from
// the start date.
func GenerateRoster(
	schedule domain.RouteSchedule,
	windowStart domain.Date,
	windowEnd domain.Date,
) ([]domain.Assignment, error) {
	c, err := newCycle(schedule)
	if err != nil {
		return nil, fmt.Errorf("generate roster: %w", err)
	}

	if !windowStart.IsValid() || !windowEnd.IsValid() {
		return nil, fmt.Errorf("generate roster: %w: window bounds must be calendar dates", domain.ErrInvalidWindow)
	}

	if windowEnd.Before(windowStart) {
		return nil, fmt.Errorf(
			"generate roster: %w: end %s is before start %s",
			domain.ErrInvalidWindow, windowEnd, windowStart,
		)
	}

	days := windowEnd.DaysSince(windowStart) + 1
	out := make([]domain.Assignment, 0, days)
	for d := windowStart; !d.After(windowEnd); d = d.AddDays(1) {
		out = append(out, domain.Assignment{Date: d, Route: c.routeOn(d)})
	}

	return out, nil
}
